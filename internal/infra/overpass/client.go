// Package overpass queries the OpenStreetMap Overpass API for restaurants.
package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"kurvalgom/config"
	"kurvalgom/internal/domain/service"
	"kurvalgom/internal/errors"
)

// maxResponseBytes caps the decoded body; dense city centres stay far below it.
const maxResponseBytes = 32 << 20

// Client is a PlaceFinder backed by an Overpass interpreter endpoint.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	endpoint   string
	userAgent  string
	timeout    time.Duration
}

// NewClient builds a client from the poi configuration section.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		logger:     logger,
		endpoint:   cfg.POI.OverpassURL,
		userAgent:  cfg.POI.UserAgent,
		timeout:    cfg.POI.FetchTimeout,
	}
}

// NewPlaceFinder exposes the client as a service.PlaceFinder for dependency injection.
func NewPlaceFinder(cfg *config.Config, logger *slog.Logger) service.PlaceFinder {
	return NewClient(cfg, logger)
}

type response struct {
	Elements []element `json:"elements"`
}

type element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *center           `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Query renders the Overpass QL for restaurants within radius meters of a point.
// Ways and relations are returned with their computed centre.
func Query(lat, lng float64, radius int, timeout time.Duration) string {
	seconds := int(timeout / time.Second)
	if seconds <= 0 {
		seconds = 15
	}

	return fmt.Sprintf("[out:json][timeout:%d];nwr[amenity=restaurant](around:%d,%s,%s);out center tags;",
		seconds, radius, formatCoord(lat), formatCoord(lng))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FindRestaurants runs one Overpass query bounded by the configured timeout.
// Deadline expiry maps to ErrUpstreamTimeout, everything else to ErrUpstreamTransport.
func (c *Client) FindRestaurants(ctx context.Context, lat, lng float64, radius int) ([]service.Place, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	reqURL, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "parse overpass endpoint")
	}
	q := reqURL.Query()
	q.Set("data", Query(lat, lng, radius, c.timeout))
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build overpass request")
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classify(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little of the body so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))

		return nil, errors.Wrapf(service.ErrUpstreamTransport, "overpass returned status %d", resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		if ctxErr := classify(ctx, err); errors.Is(ctxErr, service.ErrUpstreamTimeout) {
			return nil, ctxErr
		}

		return nil, errors.Wrapf(service.ErrUpstreamTransport, "decode overpass response: %v", err)
	}

	places := make([]service.Place, 0, len(body.Elements))
	for _, el := range body.Elements {
		place := service.Place{ID: el.ID, Type: el.Type, Lat: el.Lat, Lon: el.Lon, Tags: el.Tags}
		if (place.Lat == nil || place.Lon == nil) && el.Center != nil {
			lat, lon := el.Center.Lat, el.Center.Lon
			place.Lat, place.Lon = &lat, &lon
		}
		places = append(places, place)
	}

	if c.logger != nil {
		c.logger.DebugContext(ctx, "Overpass query completed",
			slog.Int("elements", len(places)),
			slog.Int("radius", radius),
		)
	}

	return places, nil
}

func classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.Wrapf(service.ErrUpstreamTimeout, "overpass: %v", err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errors.Wrapf(service.ErrUpstreamTimeout, "overpass: %v", err)
	}

	return errors.Wrapf(service.ErrUpstreamTransport, "overpass: %v", err)
}
