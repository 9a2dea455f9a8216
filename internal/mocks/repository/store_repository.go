package repository

import (
	"context"
	"testing"

	"storely/internal/domain/entity"
	"storely/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStoreRepository is a mock implementation of repository.StoreRepository.
type MockStoreRepository struct {
	mock.Mock
}

// NewMockStoreRepository creates a new mock and registers expectation checks
// with the test's cleanup.
func NewMockStoreRepository(t *testing.T) *MockStoreRepository {
	m := &MockStoreRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	args := m.Called(ctx, id)
	if store, ok := args.Get(0).(*entity.Store); ok {
		return store, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockStoreRepository) FindByEmail(ctx context.Context, email string) (*entity.Store, error) {
	args := m.Called(ctx, email)
	if store, ok := args.Get(0).(*entity.Store); ok {
		return store, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockStoreRepository) Create(ctx context.Context, store *entity.Store) error {
	args := m.Called(ctx, store)

	return args.Error(0)
}

func (m *MockStoreRepository) List(ctx context.Context, filter repository.StoreFilter) ([]*entity.Store, error) {
	args := m.Called(ctx, filter)
	if stores, ok := args.Get(0).([]*entity.Store); ok {
		return stores, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockStoreRepository) ListWithOwners(ctx context.Context, filter repository.StoreFilter) ([]*entity.Store, error) {
	args := m.Called(ctx, filter)
	if stores, ok := args.Get(0).([]*entity.Store); ok {
		return stores, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockStoreRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Store, error) {
	args := m.Called(ctx, ownerID)
	if stores, ok := args.Get(0).([]*entity.Store); ok {
		return stores, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockStoreRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}
