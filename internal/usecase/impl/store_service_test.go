package impl

import (
	"context"
	"testing"

	"storely/internal/domain/entity"
	domainerrors "storely/internal/domain/errors"
	"storely/internal/domain/repository"
	mockRepo "storely/internal/mocks/repository"
	"storely/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// storeServiceFixtures holds all test dependencies for store service tests.
type storeServiceFixtures struct {
	service   usecase.StoreUsecase
	txManager *mockRepo.MockTransactionManager
	storeRepo *mockRepo.MockStoreRepository
}

func createTestStoreService(t *testing.T) storeServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)

	service := NewStoreService(StoreServiceParams{
		TxManager: txManager,
		StoreRepo: storeRepo,
		Logger:    newDiscardLogger(),
	})

	return storeServiceFixtures{
		service:   service,
		txManager: txManager,
		storeRepo: storeRepo,
	}
}

func TestStoreService_ListStores_AnnotatesRatings(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	userID := uuid.New()
	otherUser := uuid.New()

	rated := &entity.Store{
		ID:      uuid.New(),
		Name:    "Corner Grocery",
		Address: "12 Market Street",
		Ratings: []*entity.Rating{
			{UserID: userID, Value: 4},
			{UserID: otherUser, Value: 5},
		},
	}
	unrated := &entity.Store{
		ID:      uuid.New(),
		Name:    "New Bakery",
		Address: "9 Oven Road",
	}

	fx.storeRepo.On("List", ctx, repository.StoreFilter{Name: "o"}).
		Return([]*entity.Store{rated, unrated}, nil)

	items, err := fx.service.ListStores(ctx, userID, &usecase.StoreQuery{Name: "o"})

	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "4.5", items[0].OverallRating)
	require.NotNil(t, items[0].UserSubmittedRating)
	assert.Equal(t, 4, *items[0].UserSubmittedRating)

	assert.Equal(t, entity.NoRating, items[1].OverallRating)
	assert.Nil(t, items[1].UserSubmittedRating)
}

func TestStoreService_ListStores_NilQuery(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	fx.storeRepo.On("List", ctx, repository.StoreFilter{}).
		Return([]*entity.Store{}, nil)

	items, err := fx.service.ListStores(ctx, uuid.New(), nil)

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStoreService_SubmitRating_CreatesFirstRating(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	userID := uuid.New()
	storeID := uuid.New()

	txStoreRepo := mockRepo.NewMockStoreRepository(t)
	txStoreRepo.On("FindByID", ctx, storeID).Return(&entity.Store{ID: storeID}, nil)

	txRatingRepo := mockRepo.NewMockRatingRepository(t)
	txRatingRepo.On("FindByUserAndStore", ctx, userID, storeID).
		Return(nil, repository.ErrRatingNotFound)
	txRatingRepo.On("Create", ctx, mock.AnythingOfType("*entity.Rating")).
		Run(func(args mock.Arguments) {
			rating := args.Get(1).(*entity.Rating)
			assert.Equal(t, 4, rating.Value)
			assert.Equal(t, userID, rating.UserID)
			assert.Equal(t, storeID, rating.StoreID)
		}).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("StoreRepo").Return(txStoreRepo)
	factory.On("RatingRepo").Return(txRatingRepo)
	passthroughExecute(fx.txManager, factory)

	output, err := fx.service.SubmitRating(ctx, &usecase.SubmitRatingInput{
		UserID:  userID,
		StoreID: storeID,
		Value:   4,
	})

	require.NoError(t, err)
	assert.True(t, output.Created)
	assert.Equal(t, 4, output.Value)
}

func TestStoreService_SubmitRating_ModifiesExistingRating(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	userID := uuid.New()
	storeID := uuid.New()
	existing := &entity.Rating{ID: uuid.New(), UserID: userID, StoreID: storeID, Value: 2}

	txStoreRepo := mockRepo.NewMockStoreRepository(t)
	txStoreRepo.On("FindByID", ctx, storeID).Return(&entity.Store{ID: storeID}, nil)

	txRatingRepo := mockRepo.NewMockRatingRepository(t)
	txRatingRepo.On("FindByUserAndStore", ctx, userID, storeID).Return(existing, nil)
	txRatingRepo.On("Update", ctx, mock.AnythingOfType("*entity.Rating")).
		Run(func(args mock.Arguments) {
			rating := args.Get(1).(*entity.Rating)
			assert.Equal(t, existing.ID, rating.ID)
			assert.Equal(t, 5, rating.Value)
		}).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("StoreRepo").Return(txStoreRepo)
	factory.On("RatingRepo").Return(txRatingRepo)
	passthroughExecute(fx.txManager, factory)

	output, err := fx.service.SubmitRating(ctx, &usecase.SubmitRatingInput{
		UserID:  userID,
		StoreID: storeID,
		Value:   5,
	})

	require.NoError(t, err)
	assert.False(t, output.Created)
	assert.Equal(t, 5, output.Value)
}

func TestStoreService_SubmitRating_ConflictRetriesAsUpdate(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	userID := uuid.New()
	storeID := uuid.New()
	raced := &entity.Rating{ID: uuid.New(), UserID: userID, StoreID: storeID, Value: 3}

	txStoreRepo := mockRepo.NewMockStoreRepository(t)
	txStoreRepo.On("FindByID", ctx, storeID).Return(&entity.Store{ID: storeID}, nil)

	txRatingRepo := mockRepo.NewMockRatingRepository(t)
	// First lookup sees nothing, the insert loses the unique-index race, and
	// the second lookup finds the row the concurrent writer created.
	txRatingRepo.On("FindByUserAndStore", ctx, userID, storeID).
		Return(nil, repository.ErrRatingNotFound).Once()
	txRatingRepo.On("Create", ctx, mock.AnythingOfType("*entity.Rating")).
		Return(repository.ErrRatingConflict)
	txRatingRepo.On("FindByUserAndStore", ctx, userID, storeID).
		Return(raced, nil).Once()
	txRatingRepo.On("Update", ctx, mock.AnythingOfType("*entity.Rating")).
		Run(func(args mock.Arguments) {
			rating := args.Get(1).(*entity.Rating)
			assert.Equal(t, raced.ID, rating.ID)
			assert.Equal(t, 5, rating.Value)
		}).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("StoreRepo").Return(txStoreRepo)
	factory.On("RatingRepo").Return(txRatingRepo)
	passthroughExecute(fx.txManager, factory)

	output, err := fx.service.SubmitRating(ctx, &usecase.SubmitRatingInput{
		UserID:  userID,
		StoreID: storeID,
		Value:   5,
	})

	require.NoError(t, err)
	assert.False(t, output.Created)
	assert.Equal(t, 5, output.Value)
}

func TestStoreService_SubmitRating_ValueOutOfRange(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()

	for _, value := range []int{0, 6, -1} {
		output, err := fx.service.SubmitRating(ctx, &usecase.SubmitRatingInput{
			UserID:  uuid.New(),
			StoreID: uuid.New(),
			Value:   value,
		})

		require.Error(t, err)
		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidRatingValue))
	}

	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestStoreService_SubmitRating_StoreNotFound(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	storeID := uuid.New()

	txStoreRepo := mockRepo.NewMockStoreRepository(t)
	txStoreRepo.On("FindByID", ctx, storeID).Return(nil, repository.ErrStoreNotFound)

	txRatingRepo := mockRepo.NewMockRatingRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("StoreRepo").Return(txStoreRepo)
	factory.On("RatingRepo").Return(txRatingRepo)
	passthroughExecute(fx.txManager, factory)

	output, err := fx.service.SubmitRating(ctx, &usecase.SubmitRatingInput{
		UserID:  uuid.New(),
		StoreID: storeID,
		Value:   3,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotFound))
}
