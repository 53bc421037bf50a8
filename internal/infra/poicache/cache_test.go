package poicache

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	domainerrors "kurvalgom/internal/domain/errors"
	"kurvalgom/internal/domain/service"
	"kurvalgom/internal/errors"
	"kurvalgom/internal/infra/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFinder struct {
	calls   atomic.Int32
	radii   chan int
	places  []service.Place
	err     error
	started chan struct{}
	release chan struct{}
}

func (f *fakeFinder) FindRestaurants(ctx context.Context, _, _ float64, radius int) ([]service.Place, error) {
	f.calls.Add(1)
	if f.radii != nil {
		f.radii <- radius
	}
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return f.places, f.err
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func ptr(v float64) *float64 { return &v }

func samplePlaces() []service.Place {
	return []service.Place{
		{ID: 1, Type: "node", Lat: ptr(54.6872), Lon: ptr(25.2797), Tags: map[string]string{"name": "Lokys", "cuisine": "lithuanian", "contact:phone": "+370 5 262 9046"}},
		{ID: 2, Type: "way", Lat: ptr(54.6800), Lon: ptr(25.2800), Tags: map[string]string{"name": "Ertlio Namas"}},
		{ID: 3, Type: "node", Lat: ptr(54.6900), Lon: ptr(25.2700), Tags: map[string]string{"amenity": "restaurant"}},
		{ID: 4, Type: "relation", Tags: map[string]string{"name": "Nowhere"}},
	}
}

func newTestCache(t *testing.T, finder service.PlaceFinder, store service.KVStore, clock *testClock) *Cache {
	t.Helper()

	if store == nil {
		var err error
		store, err = kv.Open(context.Background(), "mem://")
		require.NoError(t, err)
		t.Cleanup(func() { _ = store.Close() })
	}

	c, err := NewWithOptions(context.Background(), finder, store, slog.New(slog.NewTextHandler(io.Discard, nil)), nil, Options{
		MinRadius:      500,
		MaxRadius:      5000,
		TTL:            24 * time.Hour,
		FetchTimeout:   time.Second,
		SimulateRating: true,
		Now:            clock.Now,
		Rand:           func() float64 { return 0.5 },
	})
	require.NoError(t, err)

	return c
}

func newClock() *testClock {
	return &testClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func TestCache_FiltersAndDecorates(t *testing.T) {
	finder := &fakeFinder{places: samplePlaces()}
	c := newTestCache(t, finder, nil, newClock())

	got, err := c.Lookup(context.Background(), 54.6872, 25.2797, 1000)
	require.NoError(t, err)

	require.Len(t, got, 2, "elements without a name or position are dropped")
	assert.Equal(t, "Lokys", got[0].Name)
	assert.Equal(t, "node/1", got[0].Ref())
	assert.Equal(t, "lithuanian", got[0].Cuisine)
	assert.Equal(t, "+370 5 262 9046", got[0].Phone)
	assert.Equal(t, "4.0", got[0].SimulatedRating)
	assert.Zero(t, got[0].DistanceMeters)
	assert.InDelta(t, 54.68, got[1].Lat(), 1e-9)
	assert.Greater(t, got[1].DistanceMeters, 700.0)
	assert.Less(t, got[1].DistanceMeters, 900.0)
}

func TestCache_HitWithinTTL(t *testing.T) {
	clock := newClock()
	finder := &fakeFinder{places: samplePlaces()}
	c := newTestCache(t, finder, nil, clock)
	ctx := context.Background()

	first, err := c.Lookup(ctx, 54.6872, 25.2797, 1000)
	require.NoError(t, err)

	clock.Advance(23 * time.Hour)
	second, err := c.Lookup(ctx, 54.6872, 25.2797, 1000)
	require.NoError(t, err)

	assert.Equal(t, int32(1), finder.calls.Load())
	assert.Equal(t, first, second)
}

func TestCache_ResultsAreIndependentCopies(t *testing.T) {
	places := samplePlaces()
	finder := &fakeFinder{places: places}
	c := newTestCache(t, finder, nil, newClock())
	ctx := context.Background()

	first, err := c.Lookup(ctx, 54.6872, 25.2797, 1000)
	require.NoError(t, err)
	first[0].Name = "Edited"
	first[0].Tags["cuisine"] = "edited"
	places[0].Tags["cuisine"] = "upstream-edited"

	second, err := c.Lookup(ctx, 54.6872, 25.2797, 1000)
	require.NoError(t, err)

	assert.Equal(t, int32(1), finder.calls.Load())
	assert.Equal(t, "Lokys", second[0].Name)
	assert.Equal(t, "lithuanian", second[0].Tags["cuisine"])
}

func TestCache_RefetchAfterExpiry(t *testing.T) {
	clock := newClock()
	finder := &fakeFinder{places: samplePlaces()}
	c := newTestCache(t, finder, nil, clock)
	ctx := context.Background()

	_, err := c.Lookup(ctx, 54.6872, 25.2797, 1000)
	require.NoError(t, err)

	clock.Advance(24*time.Hour + time.Second)
	_, err = c.Lookup(ctx, 54.6872, 25.2797, 1000)
	require.NoError(t, err)

	assert.Equal(t, int32(2), finder.calls.Load())
}

func TestCache_ClampsRadius(t *testing.T) {
	finder := &fakeFinder{radii: make(chan int, 3)}
	c := newTestCache(t, finder, nil, newClock())
	ctx := context.Background()

	testCases := []struct {
		requested int
		want      int
	}{
		{requested: 100, want: 500},
		{requested: 999999, want: 5000},
		{requested: 1500, want: 1500},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, c.ClampRadius(tc.requested))

		_, err := c.Lookup(ctx, 1, 2, tc.requested)
		require.NoError(t, err)
		assert.Equal(t, tc.want, <-finder.radii)
	}

	// 100 and 500 normalize to the same key.
	_, err := c.Lookup(ctx, 1, 2, 500)
	require.NoError(t, err)
	assert.Equal(t, int32(3), finder.calls.Load())
}

func TestKey(t *testing.T) {
	assert.Equal(t, "54.6872:25.2797:1000", Key(54.6872, 25.2797, 1000))
	assert.Equal(t, "-33.5:151:500", Key(-33.5, 151, 500))
	assert.NotEqual(t, Key(54.68720, 25.2797, 1000), Key(54.68721, 25.2797, 1000))
}

func TestCache_UpstreamFailuresNormalize(t *testing.T) {
	testCases := []struct {
		name string
		err  error
	}{
		{name: "timeout", err: errors.Wrap(service.ErrUpstreamTimeout, "overpass")},
		{name: "transport", err: errors.Wrap(service.ErrUpstreamTransport, "status 504")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			finder := &fakeFinder{err: tc.err}
			c := newTestCache(t, finder, nil, newClock())

			_, err := c.Lookup(context.Background(), 1, 2, 1000)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrFetchFailed))
			assert.Equal(t, "Failed to fetch restaurants. Please try again later.", err.Error())
			assert.Equal(t, 0, c.Len(), "failures are not cached")
		})
	}
}

func TestCache_FetchTimeout(t *testing.T) {
	finder := &fakeFinder{release: make(chan struct{})}
	defer close(finder.release)

	store, err := kv.Open(context.Background(), "mem://")
	require.NoError(t, err)
	c, err := NewWithOptions(context.Background(), finder, store, nil, nil, Options{FetchTimeout: 20 * time.Millisecond})
	require.NoError(t, err)

	_, err = c.Lookup(context.Background(), 1, 2, 1000)
	assert.True(t, errors.Is(err, domainerrors.ErrFetchFailed))
	assert.Equal(t, "timeout", failureReason(context.DeadlineExceeded))
}

func TestCache_ConcurrentMissesShareOneCall(t *testing.T) {
	finder := &fakeFinder{places: samplePlaces(), started: make(chan struct{}, 8), release: make(chan struct{})}
	c := newTestCache(t, finder, nil, newClock())

	const callers = 8
	var wg sync.WaitGroup
	results := make([]int, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.Lookup(context.Background(), 54.6872, 25.2797, 1000)
			if err == nil {
				results[i] = len(got)
			}
		}()
	}

	<-finder.started
	// Give the other callers time to join the in-flight call.
	time.Sleep(50 * time.Millisecond)
	close(finder.release)
	wg.Wait()

	assert.Equal(t, int32(1), finder.calls.Load())
	for _, n := range results {
		assert.Equal(t, 2, n)
	}
}

func TestCache_PersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	store, err := kv.Open(ctx, "mem://")
	require.NoError(t, err)
	defer store.Close()

	finder := &fakeFinder{places: samplePlaces()}
	first := newTestCache(t, finder, store, clock)
	_, err = first.Lookup(ctx, 54.6872, 25.2797, 1000)
	require.NoError(t, err)

	raw, err := store.Get(ctx, TableKey)
	require.NoError(t, err)
	var table map[string]entry
	require.NoError(t, json.Unmarshal(raw, &table))
	require.Contains(t, table, "54.6872:25.2797:1000")
	assert.Equal(t, clock.Now().UnixMilli(), table["54.6872:25.2797:1000"].Timestamp)

	second := newTestCache(t, finder, store, clock)
	assert.Equal(t, 1, second.Len())
	got, err := second.Lookup(ctx, 54.6872, 25.2797, 1000)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, int32(1), finder.calls.Load(), "reloaded entry served without network")
}

func TestCache_LoadDropsExpiredEntries(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	store, err := kv.Open(ctx, "mem://")
	require.NoError(t, err)
	defer store.Close()

	table := map[string]entry{
		"1:2:500":  {Timestamp: clock.Now().Add(-25 * time.Hour).UnixMilli()},
		"3:4:1000": {Timestamp: clock.Now().Add(-time.Hour).UnixMilli()},
	}
	raw, err := json.Marshal(table)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, TableKey, raw))

	c := newTestCache(t, &fakeFinder{}, store, clock)
	assert.Equal(t, 1, c.Len())
}

func TestCache_LoadIgnoresCorruptTable(t *testing.T) {
	ctx := context.Background()
	store, err := kv.Open(ctx, "mem://")
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Set(ctx, TableKey, []byte("{not json")))

	c := newTestCache(t, &fakeFinder{}, store, newClock())
	assert.Equal(t, 0, c.Len())
}

func TestSimulatedRating(t *testing.T) {
	assert.Equal(t, "3.0", SimulatedRating(0))
	assert.Equal(t, "4.0", SimulatedRating(0.5))
	assert.Equal(t, "5.0", SimulatedRating(0.9999))
}
