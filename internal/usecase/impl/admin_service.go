package impl

import (
	"context"
	"log/slog"

	deliverycontext "storely/internal/delivery/context"
	"storely/internal/domain/entity"
	domainerrors "storely/internal/domain/errors"
	"storely/internal/domain/repository"
	"storely/internal/domain/service"
	"storely/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	hasher     service.PasswordHasher
	logger     *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	StoreRepo  repository.StoreRepository
	RatingRepo repository.RatingRepository
	Hasher     service.PasswordHasher
	Logger     *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		storeRepo:  params.StoreRepo,
		ratingRepo: params.RatingRepo,
		hasher:     params.Hasher,
		logger:     params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Stats returns the platform-wide totals for the admin dashboard.
func (srv *adminService) Stats(ctx context.Context) (*usecase.PlatformStats, error) {
	totalUsers, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	totalStores, err := srv.storeRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count stores")
	}

	totalRatings, err := srv.ratingRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count ratings")
	}

	return &usecase.PlatformStats{
		TotalUsers:   totalUsers,
		TotalStores:  totalStores,
		TotalRatings: totalRatings,
	}, nil
}

// CreateUser provisions a user with the role the administrator chose,
// including other administrators.
func (srv *adminService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*usecase.RegisterOutput, error) {
	role := entity.RoleFromString(input.Role)
	srv.log(ctx).Info("Admin creating user", slog.String("email", input.Email), slog.Any("role", role))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Address:      input.Address,
		Role:         role,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check for existing user")
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Admin user creation failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user creation transaction")
	}

	return &usecase.RegisterOutput{User: newUser}, nil
}

// ListUsers returns users matching the filter. Store owners carry the average
// rating across all the stores they own; other roles carry no rating.
func (srv *adminService) ListUsers(ctx context.Context, filter *repository.UserFilter) ([]*usecase.AdminUserListItem, error) {
	userFilter := repository.UserFilter{}
	if filter != nil {
		userFilter = *filter
	}

	users, err := srv.userRepo.List(ctx, userFilter)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	items := make([]*usecase.AdminUserListItem, 0, len(users))
	for _, user := range users {
		item := &usecase.AdminUserListItem{
			ID:      user.ID.String(),
			Name:    user.Name,
			Email:   user.Email,
			Address: user.Address,
			Role:    user.Role.String(),
		}
		if user.Role == entity.RoleStoreOwner {
			item.OwnedStoreRating = ownedStoreRating(user)
		}
		items = append(items, item)
	}

	return items, nil
}

// ownedStoreRating averages the ratings across every store the user owns.
func ownedStoreRating(user *entity.User) string {
	var values []int
	for _, store := range user.OwnedStores {
		for _, rating := range store.Ratings {
			values = append(values, rating.Value)
		}
	}

	return entity.AverageRating(values)
}

// CreateStore registers a store and its owner account in one transaction.
// The owner always receives the store_owner role regardless of input, and a
// duplicate store name, store email or owner email rolls the whole pair back.
func (srv *adminService) CreateStore(ctx context.Context, input *usecase.CreateStoreInput) (*usecase.AdminStoreListItem, error) {
	srv.log(ctx).Info("Admin creating store",
		slog.String("storeName", input.StoreName),
		slog.String("ownerEmail", input.OwnerEmail))

	if err := srv.hasher.ValidatePasswordStrength(input.OwnerPassword); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.OwnerPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash owner password")
	}

	var createdStore *entity.Store
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		storeRepo := repoFactory.StoreRepo()

		_, findErr := storeRepo.FindByEmail(ctx, input.StoreEmail)
		if findErr == nil {
			return domainerrors.ErrStoreAlreadyExists.WrapMessage("store email already registered")
		}
		if !errors.Is(findErr, repository.ErrStoreNotFound) {
			return errors.Wrap(findErr, "failed to check for existing store")
		}

		_, findErr = userRepo.FindByEmail(ctx, input.OwnerEmail)
		if findErr == nil {
			return domainerrors.ErrOwnerAlreadyExists.WrapMessage("owner email already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check for existing owner")
		}

		owner := &entity.User{
			Name:         input.OwnerName,
			Email:        input.OwnerEmail,
			PasswordHash: hashedPassword,
			Address:      input.OwnerAddress,
			Role:         entity.RoleStoreOwner,
		}
		if createErr := userRepo.Create(ctx, owner); createErr != nil {
			return errors.Wrap(createErr, "failed to create store owner")
		}

		store := &entity.Store{
			Name:    input.StoreName,
			Email:   input.StoreEmail,
			Address: input.StoreAddress,
			OwnerID: &owner.ID,
		}
		if createErr := storeRepo.Create(ctx, store); createErr != nil {
			return errors.Wrap(createErr, "failed to create store")
		}

		createdStore = store

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Store creation failed",
			slog.String("storeName", input.StoreName),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute store creation transaction")
	}

	srv.log(ctx).Debug("Store created", slog.Any("storeID", createdStore.ID))

	return &usecase.AdminStoreListItem{
		ID:            createdStore.ID.String(),
		Name:          createdStore.Name,
		Email:         createdStore.Email,
		Address:       createdStore.Address,
		OverallRating: createdStore.OverallRating(),
		OwnerName:     input.OwnerName,
		OwnerEmail:    input.OwnerEmail,
	}, nil
}

// ListStores returns stores matching the filter with their overall ratings
// and owning accounts.
func (srv *adminService) ListStores(ctx context.Context, filter *repository.StoreFilter) ([]*usecase.AdminStoreListItem, error) {
	storeFilter := repository.StoreFilter{}
	if filter != nil {
		storeFilter = *filter
	}

	stores, err := srv.storeRepo.ListWithOwners(ctx, storeFilter)
	if err != nil {
		srv.log(ctx).Error("Failed to list stores", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list stores")
	}

	items := make([]*usecase.AdminStoreListItem, 0, len(stores))
	for _, store := range stores {
		item := &usecase.AdminStoreListItem{
			ID:            store.ID.String(),
			Name:          store.Name,
			Email:         store.Email,
			Address:       store.Address,
			OverallRating: store.OverallRating(),
		}
		if store.Owner != nil {
			item.OwnerName = store.Owner.Name
			item.OwnerEmail = store.Owner.Email
		}
		items = append(items, item)
	}

	return items, nil
}
