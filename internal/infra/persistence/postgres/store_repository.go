// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"storely/internal/domain/entity"
	domainerrors "storely/internal/domain/errors"
	"storely/internal/domain/repository"
	"storely/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeSortColumns whitelists the columns store listings may be ordered by.
var storeSortColumns = map[string]string{
	"name":       "name",
	"email":      "email",
	"address":    "address",
	"created_at": "created_at",
}

// storeRepository implements the repository.StoreRepository interface using GORM.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// FindByID retrieves a single store by its unique ID.
func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&storeM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	return toStoreDomain(&storeM), nil
}

// FindByEmail retrieves a single store by its contact email.
func (repo *storeRepository) FindByEmail(ctx context.Context, email string) (*entity.Store, error) {
	var storeM model.StoreModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&storeM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by email")
	}

	return toStoreDomain(&storeM), nil
}

// Create persists a new store entity to the database.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrStoreAlreadyExists.WrapMessage("store name or email already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStoreCreationFailed.WrapMessage("invalid owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// List retrieves stores matching the filter with ratings preloaded.
// Left-join semantics: stores with no ratings are still returned.
func (repo *storeRepository) List(ctx context.Context, filter repository.StoreFilter) ([]*entity.Store, error) {
	storeModels, err := repo.list(ctx, filter, "Ratings")
	if err != nil {
		return nil, err
	}

	return toStoreDomainList(storeModels), nil
}

// ListWithOwners is List with the owning user loaded on each store.
func (repo *storeRepository) ListWithOwners(ctx context.Context, filter repository.StoreFilter) ([]*entity.Store, error) {
	storeModels, err := repo.list(ctx, filter, "Ratings", "Owner")
	if err != nil {
		return nil, err
	}

	return toStoreDomainList(storeModels), nil
}

// ListByOwner retrieves the stores owned by the given user, with each
// rating's author preloaded for the owner dashboard.
func (repo *storeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel
	err := repo.db.WithContext(ctx).
		Preload("Ratings.Rater").
		Where("owner_id = ?", ownerID).
		Order("name ASC, id ASC").
		Find(&storeModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores by owner")
	}

	return toStoreDomainList(storeModels), nil
}

// Count returns the total number of stores.
func (repo *storeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.StoreModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count stores")
	}

	return count, nil
}

func (repo *storeRepository) list(ctx context.Context, filter repository.StoreFilter, preloads ...string) ([]*model.StoreModel, error) {
	query := repo.db.WithContext(ctx).Model(&model.StoreModel{})
	for _, preload := range preloads {
		query = query.Preload(preload)
	}

	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Email != "" {
		query = query.Where("email ILIKE ?", "%"+filter.Email+"%")
	}
	if filter.Address != "" {
		query = query.Where("address ILIKE ?", "%"+filter.Address+"%")
	}

	var storeModels []*model.StoreModel
	if err := query.Order(orderClause(storeSortColumns, filter.Sort, "name")).Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return storeModels, nil
}

// --- Mapper Functions ---

// toStoreDomain converts a GORM StoreModel to a domain Store entity.
func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	store := &entity.Store{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Address:   data.Address,
		OwnerID:   data.OwnerID,
		Owner:     toUserDomain(data.Owner),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	for _, ratingM := range data.Ratings {
		store.Ratings = append(store.Ratings, toRatingDomain(ratingM))
	}

	return store
}

func toStoreDomainList(storeModels []*model.StoreModel) []*entity.Store {
	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores
}

// fromStoreDomain converts a domain Store entity to a GORM StoreModel for persistence.
func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:      data.ID,
		Name:    data.Name,
		Email:   data.Email,
		Address: data.Address,
		OwnerID: data.OwnerID,
	}
}
