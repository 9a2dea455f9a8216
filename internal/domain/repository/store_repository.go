// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storely/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStoreNotFound is a domain-specific error returned when a store is not found.
var ErrStoreNotFound = errors.New("store not found")

// StoreFilter narrows and orders store listings. All text fields are
// case-insensitive substring matches.
type StoreFilter struct {
	Name    string
	Email   string
	Address string
	Sort    Sort
}

// StoreRepository defines the standard operations for store persistence.
type StoreRepository interface {
	// FindByID retrieves a single store by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// FindByEmail retrieves a single store by its contact email.
	FindByEmail(ctx context.Context, email string) (*entity.Store, error)

	// Create persists a new store entity to the storage.
	Create(ctx context.Context, store *entity.Store) error

	// List retrieves stores matching the filter with ratings preloaded, so
	// callers can compute aggregates without further queries. Stores with no
	// ratings are included.
	List(ctx context.Context, filter StoreFilter) ([]*entity.Store, error)

	// ListWithOwners is List with the owning user summarized on each store.
	ListWithOwners(ctx context.Context, filter StoreFilter) ([]*entity.Store, error)

	// ListByOwner retrieves the stores owned by the given user, with ratings
	// and each rating's author preloaded.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Store, error)

	// Count returns the total number of stores.
	Count(ctx context.Context) (int64, error)
}
