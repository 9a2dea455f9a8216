package repository

import (
	"context"
	"testing"

	"storely/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRatingRepository is a mock implementation of repository.RatingRepository.
type MockRatingRepository struct {
	mock.Mock
}

// NewMockRatingRepository creates a new mock and registers expectation checks
// with the test's cleanup.
func NewMockRatingRepository(t *testing.T) *MockRatingRepository {
	m := &MockRatingRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRatingRepository) FindByUserAndStore(ctx context.Context, userID, storeID uuid.UUID) (*entity.Rating, error) {
	args := m.Called(ctx, userID, storeID)
	if rating, ok := args.Get(0).(*entity.Rating); ok {
		return rating, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockRatingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	args := m.Called(ctx, rating)

	return args.Error(0)
}

func (m *MockRatingRepository) Update(ctx context.Context, rating *entity.Rating) error {
	args := m.Called(ctx, rating)

	return args.Error(0)
}

func (m *MockRatingRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}
