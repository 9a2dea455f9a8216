package impl

import (
	"context"
	"testing"

	"storely/internal/domain/entity"
	domainerrors "storely/internal/domain/errors"
	"storely/internal/domain/repository"
	mockRepo "storely/internal/mocks/repository"
	mockSvc "storely/internal/mocks/service"
	"storely/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// passthroughExecute makes the transaction manager mock run the callback
// against the given factory and propagate its error.
func passthroughExecute(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.On("Execute", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Jonathan Archer Starfleet",
		Email:    "archer@example.com",
		Password: "Str0ng!pwd",
		Address:  "42 Warp Lane",
		Role:     "store_owner",
	}

	fx.hasher.On("ValidatePasswordStrength", input.Password).Return(nil)
	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	txUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = uuid.New()
		}).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("UserRepo").Return(txUserRepo)
	passthroughExecute(fx.txManager, factory)

	fx.tokenService.On("Issue", mock.AnythingOfType("uuid.UUID")).Return("signed.jwt.token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.Equal(t, entity.RoleStoreOwner, output.User.Role)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
	assert.Equal(t, "signed.jwt.token", output.Token)
}

func TestAuthService_Register_UnknownRoleFallsBackToNormalUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Kathryn Janeway of Voyager",
		Email:    "janeway@example.com",
		Password: "Str0ng!pwd",
		Role:     "captain",
	}

	fx.hasher.On("ValidatePasswordStrength", input.Password).Return(nil)
	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	txUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("UserRepo").Return(txUserRepo)
	passthroughExecute(fx.txManager, factory)

	fx.tokenService.On("Issue", mock.AnythingOfType("uuid.UUID")).Return("signed.jwt.token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleNormalUser, output.User.Role)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Benjamin Sisko Deep Space",
		Email:    "taken@example.com",
		Password: "Str0ng!pwd",
	}

	fx.hasher.On("ValidatePasswordStrength", input.Password).Return(nil)
	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.On("FindByEmail", ctx, input.Email).
		Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("UserRepo").Return(txUserRepo)
	passthroughExecute(fx.txManager, factory)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Some Perfectly Valid Name",
		Email:    "weak@example.com",
		Password: "short",
	}

	fx.hasher.On("ValidatePasswordStrength", input.Password).
		Return(domainerrors.ErrPasswordStrength)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "login@example.com",
		PasswordHash: "stored_hash",
		Role:         entity.RoleNormalUser,
	}

	fx.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fx.hasher.On("Check", "Str0ng!pwd", "stored_hash").Return(true)
	fx.tokenService.On("Issue", userID).Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Str0ng!pwd"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.On("FindByEmail", ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "Str0ng!pwd"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "login@example.com",
		PasswordHash: "stored_hash",
	}

	fx.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fx.hasher.On("Check", "Wr0ng!pwd", "stored_hash").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Wr0ng!pwd"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, PasswordHash: "old_hash"}

	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	fx.hasher.On("Check", "Old!passwd1", "old_hash").Return(true)
	fx.hasher.On("ValidatePasswordStrength", "N3w!passwd").Return(nil)
	fx.hasher.On("Hash", "N3w!passwd").Return("new_hash", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.On("FindByID", ctx, userID).Return(user, nil)
	txUserRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(*entity.User)
			assert.Equal(t, "new_hash", updated.PasswordHash)
		}).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("UserRepo").Return(txUserRepo)
	passthroughExecute(fx.txManager, factory)

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		UserID:          userID,
		CurrentPassword: "Old!passwd1",
		NewPassword:     "N3w!passwd",
	})

	require.NoError(t, err)
}

func TestAuthService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, PasswordHash: "old_hash"}

	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	fx.hasher.On("Check", "Wr0ng!pwd", "old_hash").Return(false)

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		UserID:          userID,
		CurrentPassword: "Wr0ng!pwd",
		NewPassword:     "N3w!passwd",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAuthService_ChangePassword_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, PasswordHash: "old_hash"}

	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	fx.hasher.On("Check", "Old!passwd1", "old_hash").Return(true)
	fx.hasher.On("ValidatePasswordStrength", "weak").
		Return(domainerrors.ErrPasswordStrength)

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		UserID:          userID,
		CurrentPassword: "Old!passwd1",
		NewPassword:     "weak",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
