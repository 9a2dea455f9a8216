package impl

import (
	"context"
	"log/slog"

	deliverycontext "storely/internal/delivery/context"
	"storely/internal/domain/entity"
	domainerrors "storely/internal/domain/errors"
	"storely/internal/domain/repository"
	"storely/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// storeService implements the StoreUsecase interface.
type storeService struct {
	txManager repository.TransactionManager
	storeRepo repository.StoreRepository
	logger    *slog.Logger
}

// StoreServiceParams holds dependencies for storeService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	StoreRepo repository.StoreRepository
	Logger    *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		txManager: params.TxManager,
		storeRepo: params.StoreRepo,
		logger:    params.Logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListStores returns all stores matching the query, each annotated with its
// overall rating and the caller's own rating when present.
func (srv *storeService) ListStores(ctx context.Context, userID uuid.UUID, query *usecase.StoreQuery) ([]*usecase.StoreListItem, error) {
	filter := repository.StoreFilter{}
	if query != nil {
		filter.Name = query.Name
		filter.Address = query.Address
		filter.Sort = query.Sort
	}

	stores, err := srv.storeRepo.List(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list stores", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list stores")
	}

	items := make([]*usecase.StoreListItem, 0, len(stores))
	for _, store := range stores {
		item := &usecase.StoreListItem{
			ID:            store.ID,
			Name:          store.Name,
			Address:       store.Address,
			OverallRating: store.OverallRating(),
		}
		if own := store.RatingBy(userID); own != nil {
			value := own.Value
			item.UserSubmittedRating = &value
		}
		items = append(items, item)
	}

	return items, nil
}

// SubmitRating records the caller's rating for a store, creating a new rating
// on first submission and modifying the existing one afterwards. A concurrent
// first submission that loses the unique-index race is retried as an update,
// so each (user, store) pair ends up with exactly one rating row.
func (srv *storeService) SubmitRating(ctx context.Context, input *usecase.SubmitRatingInput) (*usecase.SubmitRatingOutput, error) {
	if !entity.ValidRatingValue(input.Value) {
		return nil, domainerrors.ErrInvalidRatingValue.WrapMessage("rating value out of range")
	}

	srv.log(ctx).Debug("Submitting rating",
		slog.Any("userID", input.UserID),
		slog.Any("storeID", input.StoreID),
		slog.Int("value", input.Value))

	var created bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		storeRepo := repoFactory.StoreRepo()
		ratingRepo := repoFactory.RatingRepo()

		if _, findErr := storeRepo.FindByID(ctx, input.StoreID); findErr != nil {
			if errors.Is(findErr, repository.ErrStoreNotFound) {
				return domainerrors.ErrStoreNotFound.WrapMessage("store not found for rating")
			}

			return errors.Wrap(findErr, "failed to load store for rating")
		}

		existing, findErr := ratingRepo.FindByUserAndStore(ctx, input.UserID, input.StoreID)
		if findErr != nil && !errors.Is(findErr, repository.ErrRatingNotFound) {
			return errors.Wrap(findErr, "failed to look up existing rating")
		}

		if existing == nil {
			newRating := &entity.Rating{
				Value:   input.Value,
				UserID:  input.UserID,
				StoreID: input.StoreID,
			}

			createErr := ratingRepo.Create(ctx, newRating)
			if createErr == nil {
				created = true

				return nil
			}
			if !errors.Is(createErr, repository.ErrRatingConflict) {
				return errors.Wrap(createErr, "failed to create rating")
			}

			// Lost the race against a concurrent first submission; the row
			// exists now, so modify it instead.
			existing, findErr = ratingRepo.FindByUserAndStore(ctx, input.UserID, input.StoreID)
			if findErr != nil {
				return errors.Wrap(findErr, "failed to reload rating after conflict")
			}
		}

		existing.Value = input.Value

		if updateErr := ratingRepo.Update(ctx, existing); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update rating")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to submit rating",
			slog.Any("userID", input.UserID),
			slog.Any("storeID", input.StoreID),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute rating transaction")
	}

	return &usecase.SubmitRatingOutput{
		StoreID: input.StoreID,
		Value:   input.Value,
		Created: created,
	}, nil
}
