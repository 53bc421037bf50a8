package gormstore

import (
	"context"

	"kurvalgom/internal/domain/entity"
	domainerrors "kurvalgom/internal/domain/errors"
	"kurvalgom/internal/domain/repository"
	"kurvalgom/internal/errors"
	"kurvalgom/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository is the constructor for historyRepository.
func NewHistoryRepository(db *gorm.DB) repository.HistoryRepository {
	return &historyRepository{db: db}
}

func (repo *historyRepository) Create(ctx context.Context, entry *entity.HistoryEntry) error {
	if entry.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate history id")
		}
		entry.ID = id
	}
	if entry.RestaurantRef == "" {
		entry.RestaurantRef = entry.Restaurant.Ref()
	}

	entryM := &model.HistoryEntryModel{
		ID:            entry.ID,
		UserID:        entry.UserID,
		RestaurantRef: entry.RestaurantRef,
		Restaurant:    model.RestaurantSnapshot(entry.Restaurant),
		CreatedAt:     entry.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create history entry")
	}

	entry.CreatedAt = entryM.CreatedAt

	return nil
}

func (repo *historyRepository) FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.HistoryEntry, error) {
	return repo.find(ctx, "user_id = ?", userID)
}

func (repo *historyRepository) FindByRestaurant(ctx context.Context, restaurantRef string) ([]*entity.HistoryEntry, error) {
	return repo.find(ctx, "restaurant_ref = ?", restaurantRef)
}

func (repo *historyRepository) find(ctx context.Context, query string, arg any) ([]*entity.HistoryEntry, error) {
	var entryMs []model.HistoryEntryModel
	if err := repo.db.WithContext(ctx).Where(query, arg).Find(&entryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list history entries")
	}

	entries := make([]*entity.HistoryEntry, 0, len(entryMs))
	for i := range entryMs {
		entries = append(entries, &entity.HistoryEntry{
			ID:            entryMs[i].ID,
			UserID:        entryMs[i].UserID,
			RestaurantRef: entryMs[i].RestaurantRef,
			Restaurant:    entity.Restaurant(entryMs[i].Restaurant),
			CreatedAt:     entryMs[i].CreatedAt,
		})
	}

	return entries, nil
}
