package overpass

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kurvalgom/config"
	"kurvalgom/internal/domain/service"
	"kurvalgom/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
  "elements": [
    {"type": "node", "id": 1, "lat": 54.6872, "lon": 25.2797, "tags": {"amenity": "restaurant", "name": "Lokys", "cuisine": "lithuanian"}},
    {"type": "way", "id": 2, "center": {"lat": 54.6800, "lon": 25.2800}, "tags": {"amenity": "restaurant", "name": "Ertlio Namas"}},
    {"type": "node", "id": 3, "lat": 54.6900, "lon": 25.2700, "tags": {"amenity": "restaurant"}},
    {"type": "relation", "id": 4, "tags": {"amenity": "restaurant", "name": "Nowhere"}}
  ]
}`

func newTestClient(endpoint string, timeout time.Duration) *Client {
	cfg := &config.Config{POI: &config.POIConfig{
		OverpassURL:  endpoint,
		UserAgent:    "KurValgomTest/1.0",
		FetchTimeout: timeout,
	}}

	return NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestQuery(t *testing.T) {
	got := Query(54.6872, 25.2797, 1000, 15*time.Second)
	assert.Equal(t, "[out:json][timeout:15];nwr[amenity=restaurant](around:1000,54.6872,25.2797);out center tags;", got)
}

func TestClient_FindRestaurants(t *testing.T) {
	var gotQuery, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("data")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, sampleResponse)
	}))
	defer server.Close()

	places, err := newTestClient(server.URL, 5*time.Second).FindRestaurants(context.Background(), 54.6872, 25.2797, 1000)
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "around:1000,54.6872,25.2797")
	assert.Equal(t, "KurValgomTest/1.0", gotUA)

	require.Len(t, places, 4)
	assert.Equal(t, int64(1), places[0].ID)
	assert.Equal(t, "node", places[0].Type)
	require.NotNil(t, places[0].Lat)
	assert.InDelta(t, 54.6872, *places[0].Lat, 1e-9)

	require.NotNil(t, places[1].Lat, "way centre should be used as position")
	assert.InDelta(t, 54.68, *places[1].Lat, 1e-9)
	assert.InDelta(t, 25.28, *places[1].Lon, 1e-9)

	assert.Nil(t, places[3].Lat)
	assert.Nil(t, places[3].Lon)
}

func TestClient_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, time.Second).FindRestaurants(context.Background(), 1, 2, 500)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrUpstreamTransport))
	assert.False(t, errors.Is(err, service.ErrUpstreamTimeout))
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	_, err := newTestClient(server.URL, 50*time.Millisecond).FindRestaurants(context.Background(), 1, 2, 500)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrUpstreamTimeout))
}

func TestClient_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	endpoint := server.URL
	server.Close()

	_, err := newTestClient(endpoint, time.Second).FindRestaurants(context.Background(), 1, 2, 500)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrUpstreamTransport))
}

func TestClient_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "<html>maintenance</html>")
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, time.Second).FindRestaurants(context.Background(), 1, 2, 500)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrUpstreamTransport))
}
