package repository

import (
	"context"

	"kurvalgom/internal/domain/entity"

	"github.com/google/uuid"
)

// HistoryRepository defines persistence operations for discovery history.
type HistoryRepository interface {
	Create(ctx context.Context, entry *entity.HistoryEntry) error
	FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.HistoryEntry, error)
	FindByRestaurant(ctx context.Context, restaurantRef string) ([]*entity.HistoryEntry, error)
}
