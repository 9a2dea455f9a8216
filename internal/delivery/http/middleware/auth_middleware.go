package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "storely/internal/delivery/context"
	"storely/internal/delivery/http/response"
	"storely/internal/domain/entity"
	"storely/internal/domain/repository"
	"storely/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddleware provides middleware for token authentication and role
// authorization. The token carries only the user ID; identity and role are
// loaded from storage on every request so role changes take effect
// immediately.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenService,
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// CurrentUser returns the authenticated user stashed by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(deliverycontext.KeyCurrentUser)).(*entity.User)

	return user, ok
}

// Authenticate validates the bearer token and loads the caller's identity.
// All token failures collapse into the same generic 401; the distinction
// between expired and malformed stays in the logs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Not authorized")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "Not authorized")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			m.logger.Warn("Token verification failed",
				slog.String("path", c.Request().URL.Path),
				slog.Any("error", err))

			return response.Unauthorized(c, "Not authorized")
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			m.logger.Warn("Token subject no longer exists",
				slog.Any("userID", claims.UserID),
				slog.Any("error", err))

			return response.Unauthorized(c, "Not authorized")
		}

		c.Set(string(deliverycontext.KeyCurrentUser), user)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the authenticated user's
// role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return response.Unauthorized(c, "Not authorized")
			}

			if user.Role != requiredRole {
				return response.Forbidden(c, "Access denied")
			}

			return next(c)
		}
	}
}
