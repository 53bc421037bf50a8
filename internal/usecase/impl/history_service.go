package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	deliverycontext "kurvalgom/internal/delivery/context"
	"kurvalgom/internal/domain/entity"
	"kurvalgom/internal/domain/repository"
	"kurvalgom/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type historyService struct {
	historyRepo repository.HistoryRepository
	logger      *slog.Logger
}

// HistoryServiceParams holds dependencies for HistoryService, injected by Fx.
type HistoryServiceParams struct {
	fx.In

	HistoryRepo repository.HistoryRepository
	Logger      *slog.Logger
}

func NewHistoryService(params HistoryServiceParams) usecase.HistoryUsecase {
	return &historyService{
		historyRepo: params.HistoryRepo,
		logger:      params.Logger,
	}
}

func (srv *historyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddHistoryEntry records a visit. Repeated visits produce separate entries.
func (srv *historyService) AddHistoryEntry(ctx context.Context, ownerID uuid.UUID, restaurant entity.Restaurant) (*entity.HistoryEntry, error) {
	entry := &entity.HistoryEntry{
		UserID:        ownerID,
		RestaurantRef: restaurant.Ref(),
		Restaurant:    restaurant,
	}

	if err := srv.historyRepo.Create(ctx, entry); err != nil {
		srv.log(ctx).Error("Failed to add history entry",
			slog.String("user_id", ownerID.String()),
			slog.String("restaurant", entry.RestaurantRef),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Debug("History entry added", slog.String("entry_id", entry.ID.String()))

	return entry, nil
}

func (srv *historyService) ListHistoryForUser(ctx context.Context, ownerID uuid.UUID) ([]*entity.HistoryEntry, error) {
	entries, err := srv.historyRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(entries, func(a, b *entity.HistoryEntry) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})

	return entries, nil
}
