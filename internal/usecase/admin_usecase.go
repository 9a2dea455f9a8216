package usecase

import (
	"context"

	"storely/internal/domain/repository"
)

// PlatformStats holds the aggregate counters shown on the admin dashboard.
type PlatformStats struct {
	TotalUsers   int64
	TotalStores  int64
	TotalRatings int64
}

// CreateUserInput defines the data an administrator supplies to provision a
// user with an explicit role.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Address  string
	Role     string
}

// AdminUserListItem is a single user row in the admin listing. OwnedStoreRating
// is only populated for store owners; it averages the ratings across the
// stores they own.
type AdminUserListItem struct {
	ID               string
	Name             string
	Email            string
	Address          string
	Role             string
	OwnedStoreRating string
}

// CreateStoreInput defines the data required to register a store together
// with its owner account. The owner is created in the same transaction and
// always receives the store_owner role.
type CreateStoreInput struct {
	StoreName    string
	StoreEmail   string
	StoreAddress string

	OwnerName     string
	OwnerEmail    string
	OwnerPassword string
	OwnerAddress  string
}

// AdminStoreListItem is a single store row in the admin listing. OwnerName
// and OwnerEmail are empty when the store has no owner account.
type AdminStoreListItem struct {
	ID            string
	Name          string
	Email         string
	Address       string
	OverallRating string
	OwnerName     string
	OwnerEmail    string
}

// AdminUsecase defines the administrative operations over users and stores.
type AdminUsecase interface {
	Stats(ctx context.Context) (*PlatformStats, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*RegisterOutput, error)
	ListUsers(ctx context.Context, filter *repository.UserFilter) ([]*AdminUserListItem, error)
	CreateStore(ctx context.Context, input *CreateStoreInput) (*AdminStoreListItem, error)
	ListStores(ctx context.Context, filter *repository.StoreFilter) ([]*AdminStoreListItem, error)
}
