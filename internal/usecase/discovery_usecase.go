package usecase

import (
	"context"

	"kurvalgom/internal/domain/entity"
)

// PickOutput is the result of a random pick.
type PickOutput struct {
	Restaurant entity.Restaurant    `json:"restaurant"`
	Radius     int                  `json:"radius"`            // Radius actually searched, after clamping.
	Candidates int                  `json:"candidates"`        // Number of restaurants the pick was drawn from.
	History    *entity.HistoryEntry `json:"history,omitempty"` // Set when the pick was recorded for a signed-in user.
}

// DiscoveryUsecase finds restaurants around a point.
type DiscoveryUsecase interface {
	Nearby(ctx context.Context, lat, lng float64, radius int) ([]entity.Restaurant, error)

	// PickRandom draws one restaurant uniformly and resolves its address. A nil actor
	// skips the history entry. No candidates yields errors.ErrNoRestaurants.
	PickRandom(ctx context.Context, actor *entity.Identity, lat, lng float64, radius int) (*PickOutput, error)
}
