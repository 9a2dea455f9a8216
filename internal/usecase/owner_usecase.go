package usecase

import (
	"context"

	"github.com/google/uuid"
)

// DashboardRater is one user who has rated an owner's store.
type DashboardRater struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Value  int
}

// DashboardStore aggregates a single owned store's rating activity.
type DashboardStore struct {
	StoreID       uuid.UUID
	StoreName     string
	AverageRating string
	Raters        []*DashboardRater
}

// OwnerUsecase defines the operations available to store owners.
type OwnerUsecase interface {
	Dashboard(ctx context.Context, ownerID uuid.UUID) ([]*DashboardStore, error)
}
