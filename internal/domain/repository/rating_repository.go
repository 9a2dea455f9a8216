// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storely/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRatingNotFound is returned when no rating exists for a (user, store) pair.
var ErrRatingNotFound = errors.New("rating not found")

// ErrRatingConflict is returned by Create when the (user, store) uniqueness
// constraint rejects the insert. It signals that a concurrent submission won
// and the caller should retry as an update.
var ErrRatingConflict = errors.New("rating already exists for this user and store")

// RatingRepository defines the operations of the rating ledger. The ledger
// holds at most one rating per (user, store) pair, enforced by a storage
// level uniqueness constraint rather than application logic alone.
type RatingRepository interface {
	// FindByUserAndStore retrieves the rating a user submitted for a store.
	FindByUserAndStore(ctx context.Context, userID, storeID uuid.UUID) (*entity.Rating, error)

	// Create inserts a new rating. Returns ErrRatingConflict when the unique
	// (user_id, store_id) index rejects the row.
	Create(ctx context.Context, rating *entity.Rating) error

	// Update overwrites the value (and bumps the timestamp) of an existing rating.
	Update(ctx context.Context, rating *entity.Rating) error

	// Count returns the total number of ratings.
	Count(ctx context.Context) (int64, error)
}
