package handler

import (
	"log/slog"
	"net/http"

	"storely/internal/delivery/http/middleware"
	"storely/internal/delivery/http/response"
	"storely/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler holds dependencies for the store browsing and rating endpoints.
type StoreHandler struct {
	uc     usecase.StoreUsecase
	logger *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		uc:     uc,
		logger: logger,
	}
}

type storeListItemView struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Address             string `json:"address"`
	OverallRating       string `json:"overall_rating"`
	UserSubmittedRating *int   `json:"user_submitted_rating"`
}

type submitRatingRequest struct {
	Value int `json:"value" validate:"required,min=1,max=5"`
}

type ratingView struct {
	StoreID string `json:"store_id"`
	Value   int    `json:"value"`
}

// ListStores handles the store listing request for authenticated users.
func (h *StoreHandler) ListStores(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authorized")
	}

	items, err := h.uc.ListStores(c.Request().Context(), user.ID, &usecase.StoreQuery{
		Name:    c.QueryParam("name"),
		Address: c.QueryParam("address"),
		Sort:    sortFromQuery(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]storeListItemView, 0, len(items))
	for _, item := range items {
		views = append(views, storeListItemView{
			ID:                  item.ID.String(),
			Name:                item.Name,
			Address:             item.Address,
			OverallRating:       item.OverallRating,
			UserSubmittedRating: item.UserSubmittedRating,
		})
	}

	return response.Success(c, http.StatusOK, views)
}

// SubmitRating handles rating submission. The first submission for a store
// answers 201, a resubmission overwrites the value and answers 200.
func (h *StoreHandler) SubmitRating(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authorized")
	}

	storeID, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		return response.BindingError(c, "Invalid store ID")
	}

	var req submitRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid rating input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SubmitRating(c.Request().Context(), &usecase.SubmitRatingInput{
		UserID:  user.ID,
		StoreID: storeID,
		Value:   req.Value,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	statusCode := http.StatusOK
	if output.Created {
		statusCode = http.StatusCreated
	}

	return response.Success(c, statusCode, ratingView{
		StoreID: output.StoreID.String(),
		Value:   output.Value,
	})
}
