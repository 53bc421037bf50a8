package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"

	deliverycontext "kurvalgom/internal/delivery/context"
	"kurvalgom/internal/domain/entity"
	domainerrors "kurvalgom/internal/domain/errors"
	"kurvalgom/internal/domain/service"
	"kurvalgom/internal/usecase"

	"go.uber.org/fx"
)

type discoveryService struct {
	lookup   service.RestaurantLookup
	geocoder service.ReverseGeocoder
	history  usecase.HistoryUsecase
	logger   *slog.Logger
	intN     func(n int) int
}

// DiscoveryServiceParams holds dependencies for DiscoveryService, injected by Fx.
type DiscoveryServiceParams struct {
	fx.In

	Lookup   service.RestaurantLookup
	Geocoder service.ReverseGeocoder
	History  usecase.HistoryUsecase
	Logger   *slog.Logger
}

func NewDiscoveryService(params DiscoveryServiceParams) usecase.DiscoveryUsecase {
	return &discoveryService{
		lookup:   params.Lookup,
		geocoder: params.Geocoder,
		history:  params.History,
		logger:   params.Logger,
		intN:     rand.IntN,
	}
}

func (srv *discoveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Nearby returns the decorated restaurants around the point, sorted as the cache stored them.
func (srv *discoveryService) Nearby(ctx context.Context, lat, lng float64, radius int) ([]entity.Restaurant, error) {
	return srv.lookup.Lookup(ctx, lat, lng, radius)
}

// PickRandom draws one restaurant uniformly and resolves its address.
// A signed-in actor gets the pick appended to their history.
func (srv *discoveryService) PickRandom(ctx context.Context, actor *entity.Identity, lat, lng float64, radius int) (*usecase.PickOutput, error) {
	radius = srv.lookup.ClampRadius(radius)

	restaurants, err := srv.lookup.Lookup(ctx, lat, lng, radius)
	if err != nil {
		return nil, err
	}
	if len(restaurants) == 0 {
		return nil, domainerrors.ErrNoRestaurants
	}

	picked := restaurants[srv.intN(len(restaurants))]
	picked.Address = srv.address(ctx, picked)

	out := &usecase.PickOutput{
		Restaurant: picked,
		Radius:     radius,
		Candidates: len(restaurants),
	}

	if actor != nil {
		entry, err := srv.history.AddHistoryEntry(ctx, actor.UserID, picked)
		if err != nil {
			return nil, err
		}
		out.History = entry
	}

	srv.log(ctx).Info("Restaurant picked",
		slog.String("restaurant", picked.Ref()),
		slog.Int("radius", radius),
		slog.Int("candidates", len(restaurants)),
	)

	return out, nil
}

func (srv *discoveryService) address(ctx context.Context, restaurant entity.Restaurant) string {
	if street := restaurant.Street(); street != "" {
		return street
	}
	if srv.geocoder == nil {
		return service.AddressNotAvailable
	}

	return srv.geocoder.Reverse(ctx, restaurant.Lat(), restaurant.Lng())
}
