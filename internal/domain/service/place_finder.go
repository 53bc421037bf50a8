package service

import (
	"context"

	"kurvalgom/internal/domain/entity"
	"kurvalgom/internal/errors"
)

var (
	// ErrUpstreamTimeout is returned when the map data source does not answer in time.
	ErrUpstreamTimeout = errors.New("upstream timeout")

	// ErrUpstreamTransport is returned on network failures and non-2xx responses.
	ErrUpstreamTransport = errors.New("upstream transport failure")
)

// Place is a raw map element as returned by the data source.
// Lat and Lon are nil when the element has no resolvable position.
type Place struct {
	ID   int64
	Type string
	Lat  *float64
	Lon  *float64
	Tags map[string]string
}

// PlaceFinder queries a map data source for restaurants around a point.
type PlaceFinder interface {
	// FindRestaurants returns the raw elements tagged as restaurants within radius meters.
	// Elements may lack a name or coordinates; callers filter them.
	FindRestaurants(ctx context.Context, lat, lng float64, radius int) ([]Place, error)
}

// RestaurantLookup answers "restaurants near a point" through the cache in front of a PlaceFinder.
type RestaurantLookup interface {
	// Lookup clamps radius into the configured bounds and returns named restaurants with coordinates.
	Lookup(ctx context.Context, lat, lng float64, radius int) ([]entity.Restaurant, error)

	// ClampRadius returns radius forced into the configured bounds.
	ClampRadius(radius int) int
}
