package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storely/internal/domain/entity"
	"storely/internal/domain/repository"
	"storely/internal/domain/service"
	mockRepo "storely/internal/mocks/repository"
	mockSvc "storely/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *mockSvc.MockTokenService
	userRepo   *mockRepo.MockUserRepository
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	m := NewAuthMiddleware(AuthMiddlewareParams{
		TokenService: tokenSvc,
		UserRepo:     userRepo,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return authMiddlewareFixtures{
		middleware: m,
		tokenSvc:   tokenSvc,
		userRepo:   userRepo,
	}
}

func runRequest(t *testing.T, handler echo.HandlerFunc, authHeader string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return rec, handler(c)
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	userID := uuid.New()
	user := &entity.User{ID: userID, Role: entity.RoleNormalUser}

	fx.tokenSvc.On("Verify", "valid.token").Return(&service.Claims{UserID: userID}, nil)
	fx.userRepo.On("FindByID", mock.Anything, userID).Return(user, nil)

	var seenUser *entity.User
	handler := fx.middleware.Authenticate(func(c echo.Context) error {
		current, ok := CurrentUser(c)
		require.True(t, ok)
		seenUser = current

		return c.NoContent(http.StatusOK)
	})

	rec, err := runRequest(t, handler, "Bearer valid.token")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, seenUser.ID)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	handler := fx.middleware.Authenticate(okHandler)
	rec, err := runRequest(t, handler, "")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_MalformedHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	handler := fx.middleware.Authenticate(okHandler)
	rec, err := runRequest(t, handler, "Token abcdef")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.On("Verify", "bad.token").Return(nil, service.ErrTokenInvalid)

	handler := fx.middleware.Authenticate(okHandler)
	rec, err := runRequest(t, handler, "Bearer bad.token")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_UserDeleted(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	userID := uuid.New()
	fx.tokenSvc.On("Verify", "orphan.token").Return(&service.Claims{UserID: userID}, nil)
	fx.userRepo.On("FindByID", mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	handler := fx.middleware.Authenticate(okHandler)
	rec, err := runRequest(t, handler, "Bearer orphan.token")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	e := echo.New()

	run := func(user *entity.User, required entity.Role) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if user != nil {
			c.Set("current_user", user)
		}

		handler := fx.middleware.RequireRole(required)(okHandler)
		require.NoError(t, handler(c))

		return rec
	}

	admin := &entity.User{ID: uuid.New(), Role: entity.RoleSystemAdmin}
	assert.Equal(t, http.StatusOK, run(admin, entity.RoleSystemAdmin).Code)
	assert.Equal(t, http.StatusForbidden, run(admin, entity.RoleStoreOwner).Code)

	// No authenticated user in context at all.
	assert.Equal(t, http.StatusUnauthorized, run(nil, entity.RoleSystemAdmin).Code)
}
