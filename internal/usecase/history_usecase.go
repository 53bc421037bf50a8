package usecase

import (
	"context"

	"kurvalgom/internal/domain/entity"

	"github.com/google/uuid"
)

// HistoryUsecase records and lists the restaurants shown to a user.
type HistoryUsecase interface {
	AddHistoryEntry(ctx context.Context, ownerID uuid.UUID, restaurant entity.Restaurant) (*entity.HistoryEntry, error)

	// ListHistoryForUser returns the user's entries, newest first.
	ListHistoryForUser(ctx context.Context, ownerID uuid.UUID) ([]*entity.HistoryEntry, error)
}
