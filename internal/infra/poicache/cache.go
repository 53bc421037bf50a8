// Package poicache answers nearby-restaurant lookups from a persisted response
// cache and falls back to the map data source on a miss.
package poicache

import (
	"context"
	"encoding/json"
	"log/slog"
	"maps"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"kurvalgom/config"
	"kurvalgom/internal/domain/entity"
	domainerrors "kurvalgom/internal/domain/errors"
	"kurvalgom/internal/domain/service"
	"kurvalgom/internal/errors"
	"kurvalgom/internal/infra/metrics"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// TableKey is the key/value store key holding the whole cache table.
const TableKey = "osm_restaurant_cache"

// entry is one cached response. Timestamp is the fetch time in Unix milliseconds.
type entry struct {
	Data      []entity.Restaurant `json:"data"`
	Timestamp int64               `json:"timestamp"`
}

// Options tunes a Cache. Zero values fall back to the POI defaults.
type Options struct {
	MinRadius      int
	MaxRadius      int
	TTL            time.Duration
	FetchTimeout   time.Duration
	SimulateRating bool

	// Now and Rand are overridable for tests.
	Now  func() time.Time
	Rand func() float64
}

// Cache implements service.RestaurantLookup. It is safe for concurrent use.
type Cache struct {
	finder  service.PlaceFinder
	store   service.KVStore
	logger  *slog.Logger
	metrics metrics.Recorder
	opts    Options

	mu      sync.Mutex
	entries map[string]entry
	flights singleflight.Group
}

// Params defines the parameters required for the cache
type Params struct {
	fx.In

	Config  *config.Config
	Finder  service.PlaceFinder
	Store   service.KVStore
	Logger  *slog.Logger
	Metrics metrics.Recorder
}

// New builds the cache from configuration and loads the persisted table.
func New(params Params) (*Cache, error) {
	poi := params.Config.POI

	return NewWithOptions(context.Background(), params.Finder, params.Store, params.Logger, params.Metrics, Options{
		MinRadius:      poi.MinRadius,
		MaxRadius:      poi.MaxRadius,
		TTL:            poi.CacheTTL,
		FetchTimeout:   poi.FetchTimeout,
		SimulateRating: poi.SimulateRating,
	})
}

// NewWithOptions builds a cache and loads the persisted table, dropping expired entries.
// An unreadable table is logged and replaced by an empty one.
func NewWithOptions(ctx context.Context, finder service.PlaceFinder, store service.KVStore, logger *slog.Logger, recorder metrics.Recorder, opts Options) (*Cache, error) {
	if finder == nil || store == nil {
		return nil, errors.New("poicache requires a place finder and a key/value store")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	c := &Cache{
		finder:  finder,
		store:   store,
		logger:  logger,
		metrics: recorder,
		opts:    withDefaults(opts),
		entries: make(map[string]entry),
	}

	if err := c.load(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

func withDefaults(opts Options) Options {
	if opts.MinRadius <= 0 {
		opts.MinRadius = 500
	}
	if opts.MaxRadius < opts.MinRadius {
		opts.MaxRadius = 5000
	}
	if opts.TTL <= 0 {
		opts.TTL = 24 * time.Hour
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = 15 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.Float64
	}

	return opts
}

// ClampRadius forces radius into [MinRadius, MaxRadius].
func (c *Cache) ClampRadius(radius int) int {
	return min(max(radius, c.opts.MinRadius), c.opts.MaxRadius)
}

// Key returns the cache key for a query. Coordinates are used verbatim, never bucketed.
func Key(lat, lng float64, radius int) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + ":" +
		strconv.FormatFloat(lng, 'f', -1, 64) + ":" +
		strconv.Itoa(radius)
}

// Lookup returns the restaurants around a point. Fresh entries are served
// without network access. Concurrent misses on one key share a single upstream call.
func (c *Cache) Lookup(ctx context.Context, lat, lng float64, radius int) ([]entity.Restaurant, error) {
	radius = c.ClampRadius(radius)
	key := Key(lat, lng, radius)

	if data, ok := c.fresh(key); ok {
		c.metrics.RecordCacheHit()

		return data, nil
	}

	result, err, _ := c.flights.Do(key, func() (any, error) {
		// A flight that finished just before this one may already have filled the key.
		if data, ok := c.fresh(key); ok {
			return data, nil
		}
		c.metrics.RecordCacheMiss()

		return c.fetch(ctx, key, lat, lng, radius)
	})
	if err != nil {
		return nil, err
	}

	return cloneRestaurants(result.([]entity.Restaurant)), nil
}

// Len returns the number of entries held in memory, expired ones included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

func (c *Cache) fresh(key string) ([]entity.Restaurant, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || c.expired(e) {
		return nil, false
	}

	return cloneRestaurants(e.Data), true
}

func (c *Cache) expired(e entry) bool {
	return c.opts.Now().Sub(time.UnixMilli(e.Timestamp)) >= c.opts.TTL
}

func (c *Cache) fetch(ctx context.Context, key string, lat, lng float64, radius int) ([]entity.Restaurant, error) {
	// Waiters share this call, so one caller going away must not fail the rest.
	fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.opts.FetchTimeout)
	defer cancel()

	started := time.Now()
	places, err := c.finder.FindRestaurants(fetchCtx, lat, lng, radius)
	c.metrics.RecordFetchLatency(time.Since(started))
	if err != nil {
		reason := failureReason(err)
		c.metrics.RecordFetchFailure(reason)
		c.logger.ErrorContext(ctx, "Restaurant fetch failed",
			slog.String("key", key),
			slog.String("reason", reason),
			slog.String("error", err.Error()),
		)

		return nil, domainerrors.ErrFetchFailed
	}

	restaurants := c.decorate(places, orb.Point{lng, lat})
	c.metrics.RecordFetchSuccess(len(restaurants))

	c.mu.Lock()
	c.entries[key] = entry{Data: restaurants, Timestamp: c.opts.Now().UnixMilli()}
	snapshot, marshalErr := json.Marshal(c.entries)
	count := len(c.entries)
	c.mu.Unlock()

	c.metrics.SetCacheEntries(count)
	c.persist(ctx, snapshot, marshalErr)

	return restaurants, nil
}

// cloneRestaurants copies a cached result deeply enough that callers may edit it, tags included.
func cloneRestaurants(src []entity.Restaurant) []entity.Restaurant {
	if src == nil {
		return nil
	}
	out := make([]entity.Restaurant, len(src))
	for i, r := range src {
		r.Tags = maps.Clone(r.Tags)
		out[i] = r
	}

	return out
}

// persist rewrites the whole table. Failures only cost the next process a refetch.
func (c *Cache) persist(ctx context.Context, snapshot []byte, marshalErr error) {
	if marshalErr != nil {
		c.logger.WarnContext(ctx, "Encoding restaurant cache failed", slog.String("error", marshalErr.Error()))

		return
	}
	if err := c.store.Set(context.WithoutCancel(ctx), TableKey, snapshot); err != nil {
		c.logger.WarnContext(ctx, "Persisting restaurant cache failed", slog.String("error", err.Error()))
	}
}

func (c *Cache) load(ctx context.Context) error {
	raw, err := c.store.Get(ctx, TableKey)
	if err != nil {
		if errors.Is(err, service.ErrKeyNotFound) {
			return nil
		}

		return errors.Wrap(err, "load restaurant cache")
	}

	var table map[string]entry
	if err := json.Unmarshal(raw, &table); err != nil {
		c.logger.WarnContext(ctx, "Discarding unreadable restaurant cache", slog.String("error", err.Error()))

		return nil
	}

	for key, e := range table {
		if !c.expired(e) {
			c.entries[key] = e
		}
	}
	c.metrics.SetCacheEntries(len(c.entries))

	return nil
}

func failureReason(err error) string {
	if errors.Is(err, service.ErrUpstreamTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}

	return "transport"
}
