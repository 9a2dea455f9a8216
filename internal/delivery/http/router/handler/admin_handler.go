package handler

import (
	"log/slog"
	"net/http"

	"storely/internal/delivery/http/response"
	"storely/internal/domain/entity"
	"storely/internal/domain/repository"
	"storely/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the administrator endpoints.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

type statsView struct {
	TotalUsers   int64 `json:"total_users"`
	TotalStores  int64 `json:"total_stores"`
	TotalRatings int64 `json:"total_ratings"`
}

type createUserRequest struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Address  string `json:"address" validate:"max=400"`
	Role     string `json:"role" validate:"required,oneof=normal_user store_owner system_admin"`
}

type adminUserView struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Address          string `json:"address,omitempty"`
	Role             string `json:"role"`
	OwnedStoreRating string `json:"owned_store_rating,omitempty"`
}

type createStoreRequest struct {
	StoreName    string `json:"store_name" validate:"required,min=3,max=100"`
	StoreEmail   string `json:"store_email" validate:"required,email"`
	StoreAddress string `json:"store_address" validate:"required,max=400"`

	OwnerName     string `json:"owner_name" validate:"required,min=20,max=60"`
	OwnerEmail    string `json:"owner_email" validate:"required,email"`
	OwnerPassword string `json:"owner_password" validate:"required"`
	OwnerAddress  string `json:"owner_address" validate:"max=400"`
}

type adminStoreView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	OverallRating string `json:"overall_rating"`
	OwnerName     string `json:"owner_name,omitempty"`
	OwnerEmail    string `json:"owner_email,omitempty"`
}

// Stats handles the platform statistics request.
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, statsView{
		TotalUsers:   stats.TotalUsers,
		TotalStores:  stats.TotalStores,
		TotalRatings: stats.TotalRatings,
	})
}

// CreateUser handles admin user provisioning with an explicit role.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Role:     req.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserView(output.User))
}

// ListUsers handles the filtered, sorted user listing.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	filter := repository.UserFilter{
		Name:    c.QueryParam("name"),
		Email:   c.QueryParam("email"),
		Address: c.QueryParam("address"),
		Sort:    sortFromQuery(c),
	}
	if role := c.QueryParam("role"); role != "" {
		filter.Role = entity.Role(role)
	}

	items, err := h.uc.ListUsers(c.Request().Context(), &filter)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]adminUserView, 0, len(items))
	for _, item := range items {
		views = append(views, adminUserView{
			ID:               item.ID,
			Name:             item.Name,
			Email:            item.Email,
			Address:          item.Address,
			Role:             item.Role,
			OwnedStoreRating: item.OwnedStoreRating,
		})
	}

	return response.Success(c, http.StatusOK, views)
}

// CreateStore handles store registration together with its owner account.
func (h *AdminHandler) CreateStore(c echo.Context) error {
	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid store input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.CreateStore(c.Request().Context(), &usecase.CreateStoreInput{
		StoreName:     req.StoreName,
		StoreEmail:    req.StoreEmail,
		StoreAddress:  req.StoreAddress,
		OwnerName:     req.OwnerName,
		OwnerEmail:    req.OwnerEmail,
		OwnerPassword: req.OwnerPassword,
		OwnerAddress:  req.OwnerAddress,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, adminStoreView{
		ID:            item.ID,
		Name:          item.Name,
		Email:         item.Email,
		Address:       item.Address,
		OverallRating: item.OverallRating,
		OwnerName:     item.OwnerName,
		OwnerEmail:    item.OwnerEmail,
	})
}

// ListStores handles the filtered, sorted store listing.
func (h *AdminHandler) ListStores(c echo.Context) error {
	filter := repository.StoreFilter{
		Name:    c.QueryParam("name"),
		Email:   c.QueryParam("email"),
		Address: c.QueryParam("address"),
		Sort:    sortFromQuery(c),
	}

	items, err := h.uc.ListStores(c.Request().Context(), &filter)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]adminStoreView, 0, len(items))
	for _, item := range items {
		views = append(views, adminStoreView{
			ID:            item.ID,
			Name:          item.Name,
			Email:         item.Email,
			Address:       item.Address,
			OverallRating: item.OverallRating,
			OwnerName:     item.OwnerName,
			OwnerEmail:    item.OwnerEmail,
		})
	}

	return response.Success(c, http.StatusOK, views)
}
