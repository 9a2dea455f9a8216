package impl

import (
	"context"
	"log/slog"

	deliverycontext "storely/internal/delivery/context"
	"storely/internal/domain/repository"
	"storely/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ownerService implements the OwnerUsecase interface.
type ownerService struct {
	storeRepo repository.StoreRepository
	logger    *slog.Logger
}

// OwnerServiceParams holds dependencies for ownerService, injected by Fx.
type OwnerServiceParams struct {
	fx.In

	StoreRepo repository.StoreRepository
	Logger    *slog.Logger
}

// NewOwnerService is the constructor for ownerService.
func NewOwnerService(params OwnerServiceParams) usecase.OwnerUsecase {
	return &ownerService{
		storeRepo: params.StoreRepo,
		logger:    params.Logger,
	}
}

func (srv *ownerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dashboard returns every store the owner holds, with its average rating and
// the users who rated it. An owner without stores gets an empty slice.
func (srv *ownerService) Dashboard(ctx context.Context, ownerID uuid.UUID) ([]*usecase.DashboardStore, error) {
	srv.log(ctx).Debug("Building owner dashboard", slog.Any("ownerID", ownerID))

	stores, err := srv.storeRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list owned stores", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list owned stores")
	}

	dashboard := make([]*usecase.DashboardStore, 0, len(stores))
	for _, store := range stores {
		entry := &usecase.DashboardStore{
			StoreID:       store.ID,
			StoreName:     store.Name,
			AverageRating: store.OverallRating(),
			Raters:        make([]*usecase.DashboardRater, 0, len(store.Ratings)),
		}

		for _, rating := range store.Ratings {
			rater := &usecase.DashboardRater{
				UserID: rating.UserID,
				Value:  rating.Value,
			}
			if rating.Rater != nil {
				rater.Name = rating.Rater.Name
				rater.Email = rating.Rater.Email
			}
			entry.Raters = append(entry.Raters, rater)
		}

		dashboard = append(dashboard, entry)
	}

	return dashboard, nil
}
