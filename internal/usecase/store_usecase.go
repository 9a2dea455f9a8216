package usecase

import (
	"context"

	"storely/internal/domain/repository"

	"github.com/google/uuid"
)

// StoreQuery carries the optional filters and sort order for store listings.
type StoreQuery struct {
	Name    string
	Address string
	Sort    repository.Sort
}

// StoreListItem is a single store row as seen by a browsing user. The
// submitted rating is the caller's own rating, or nil when they have not
// rated the store yet.
type StoreListItem struct {
	ID                  uuid.UUID
	Name                string
	Address             string
	OverallRating       string
	UserSubmittedRating *int
}

// SubmitRatingInput defines the data required to rate a store.
type SubmitRatingInput struct {
	UserID  uuid.UUID
	StoreID uuid.UUID
	Value   int
}

// SubmitRatingOutput reports the persisted rating value and whether the
// submission created a new rating row or modified an existing one.
type SubmitRatingOutput struct {
	StoreID uuid.UUID
	Value   int
	Created bool
}

// StoreUsecase defines the store browsing and rating operations available
// to authenticated users.
type StoreUsecase interface {
	ListStores(ctx context.Context, userID uuid.UUID, query *StoreQuery) ([]*StoreListItem, error)
	SubmitRating(ctx context.Context, input *SubmitRatingInput) (*SubmitRatingOutput, error)
}
