package handler

import (
	"log/slog"
	"net/http"

	"storely/internal/delivery/http/middleware"
	"storely/internal/delivery/http/response"
	"storely/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OwnerHandler holds dependencies for the store owner endpoints.
type OwnerHandler struct {
	uc     usecase.OwnerUsecase
	logger *slog.Logger
}

// NewOwnerHandler is the constructor for OwnerHandler, injected by Fx.
func NewOwnerHandler(uc usecase.OwnerUsecase, logger *slog.Logger) *OwnerHandler {
	return &OwnerHandler{
		uc:     uc,
		logger: logger,
	}
}

type dashboardRaterView struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Rating int    `json:"rating"`
}

type dashboardStoreView struct {
	StoreID       string               `json:"store_id"`
	StoreName     string               `json:"store_name"`
	AverageRating string               `json:"average_rating"`
	Raters        []dashboardRaterView `json:"raters"`
}

// Dashboard handles the owner dashboard request: every owned store with its
// average rating and the users who rated it.
func (h *OwnerHandler) Dashboard(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authorized")
	}

	stores, err := h.uc.Dashboard(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]dashboardStoreView, 0, len(stores))
	for _, store := range stores {
		view := dashboardStoreView{
			StoreID:       store.StoreID.String(),
			StoreName:     store.StoreName,
			AverageRating: store.AverageRating,
			Raters:        make([]dashboardRaterView, 0, len(store.Raters)),
		}
		for _, rater := range store.Raters {
			view.Raters = append(view.Raters, dashboardRaterView{
				UserID: rater.UserID.String(),
				Name:   rater.Name,
				Email:  rater.Email,
				Rating: rater.Value,
			})
		}
		views = append(views, view)
	}

	return response.Success(c, http.StatusOK, views)
}
