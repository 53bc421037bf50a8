// Package nominatim resolves coordinates to street addresses through the Nominatim reverse API.
package nominatim

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"kurvalgom/config"
	"kurvalgom/internal/domain/service"
)

// Client is a service.ReverseGeocoder. It never returns an error to the caller.
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
		endpoint:   strings.TrimRight(cfg.POI.NominatimURL, "/"),
		userAgent:  cfg.POI.UserAgent,
		timeout:    cfg.POI.GeocodeTimeout,
	}
}

// NewReverseGeocoder exposes the client as a service.ReverseGeocoder for dependency injection.
func NewReverseGeocoder(cfg *config.Config, logger *slog.Logger) service.ReverseGeocoder {
	return NewClient(cfg, logger)
}

type reverseResponse struct {
	Address struct {
		Road        string `json:"road"`
		HouseNumber string `json:"house_number"`
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		Country     string `json:"country"`
	} `json:"address"`
}

// Reverse returns "road, house_number, city, country" with empty parts skipped,
// or service.AddressNotAvailable when nothing could be resolved.
func (c *Client) Reverse(ctx context.Context, lat, lng float64) string {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	address, err := c.reverse(ctx, lat, lng)
	if err != nil {
		if c.logger != nil {
			c.logger.WarnContext(ctx, "Reverse geocoding failed",
				slog.Float64("lat", lat),
				slog.Float64("lng", lng),
				slog.String("error", err.Error()),
			)
		}

		return service.AddressNotAvailable
	}
	if address == "" {
		return service.AddressNotAvailable
	}

	return address
}

func (c *Client) reverse(ctx context.Context, lat, lng float64) (string, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &statusError{code: resp.StatusCode}
	}

	var body reverseResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err != nil {
		return "", err
	}

	a := body.Address
	city := a.City
	if city == "" {
		city = a.Town
	}
	if city == "" {
		city = a.Village
	}

	return joinNonEmpty(", ", a.Road, a.HouseNumber, city, a.Country), nil
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, sep)
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return "nominatim returned status " + strconv.Itoa(e.code)
}
