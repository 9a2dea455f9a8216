// Package handler contains the HTTP handlers for the application.
package handler

import (
	"storely/internal/domain/entity"
	"storely/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

// userView is the public shape of a user account. The password hash never
// leaves the service.
type userView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
	Role    string `json:"role"`
}

func newUserView(user *entity.User) userView {
	return userView{
		ID:      user.ID.String(),
		Name:    user.Name,
		Email:   user.Email,
		Address: user.Address,
		Role:    user.Role.String(),
	}
}

// sortFromQuery reads the sort_by / sort_order query parameters. Unknown
// columns are handled by the repository's whitelist, which falls back to its
// default ordering.
func sortFromQuery(c echo.Context) repository.Sort {
	return repository.Sort{
		By:         c.QueryParam("sort_by"),
		Descending: c.QueryParam("sort_order") == "desc",
	}
}
