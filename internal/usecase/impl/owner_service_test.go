package impl

import (
	"context"
	"testing"

	"storely/internal/domain/entity"
	mockRepo "storely/internal/mocks/repository"
	"storely/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestOwnerService(t *testing.T) (usecase.OwnerUsecase, *mockRepo.MockStoreRepository) {
	storeRepo := mockRepo.NewMockStoreRepository(t)

	service := NewOwnerService(OwnerServiceParams{
		StoreRepo: storeRepo,
		Logger:    newDiscardLogger(),
	})

	return service, storeRepo
}

func TestOwnerService_Dashboard(t *testing.T) {
	service, storeRepo := createTestOwnerService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	raterID := uuid.New()

	stores := []*entity.Store{
		{
			ID:   uuid.New(),
			Name: "Corner Grocery",
			Ratings: []*entity.Rating{
				{
					UserID: raterID,
					Value:  5,
					Rater:  &entity.User{ID: raterID, Name: "Miles Edward River OBrien", Email: "miles@example.com"},
				},
				{
					UserID: uuid.New(),
					Value:  2,
				},
			},
		},
		{
			ID:   uuid.New(),
			Name: "New Bakery",
		},
	}

	storeRepo.On("ListByOwner", ctx, ownerID).Return(stores, nil)

	dashboard, err := service.Dashboard(ctx, ownerID)

	require.NoError(t, err)
	require.Len(t, dashboard, 2)

	assert.Equal(t, "Corner Grocery", dashboard[0].StoreName)
	assert.Equal(t, "3.5", dashboard[0].AverageRating)
	require.Len(t, dashboard[0].Raters, 2)
	assert.Equal(t, "Miles Edward River OBrien", dashboard[0].Raters[0].Name)
	assert.Equal(t, "miles@example.com", dashboard[0].Raters[0].Email)
	assert.Equal(t, 5, dashboard[0].Raters[0].Value)

	assert.Equal(t, entity.NoRating, dashboard[1].AverageRating)
	assert.Empty(t, dashboard[1].Raters)
}

func TestOwnerService_Dashboard_NoStores(t *testing.T) {
	service, storeRepo := createTestOwnerService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	storeRepo.On("ListByOwner", ctx, ownerID).Return([]*entity.Store{}, nil)

	dashboard, err := service.Dashboard(ctx, ownerID)

	require.NoError(t, err)
	assert.Empty(t, dashboard)
}

func TestOwnerService_Dashboard_RepositoryError(t *testing.T) {
	service, storeRepo := createTestOwnerService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	storeRepo.On("ListByOwner", ctx, ownerID).Return(nil, errors.New("connection reset"))

	dashboard, err := service.Dashboard(ctx, ownerID)

	require.Error(t, err)
	assert.Nil(t, dashboard)
}
