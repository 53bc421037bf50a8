package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kurvalgom/config"
	"kurvalgom/internal/delivery/api/router"
	deliverycontext "kurvalgom/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, bodyLimit string) (*apiServer, *bytes.Buffer) {
	t.Helper()

	cfg := &config.Config{Metrics: &config.MetricsConfig{Path: "/metrics"}}
	cfg.HTTP.MaxRequestBodySize = bodyLimit

	var logs bytes.Buffer
	srv, err := newAPIServer(cfg, slog.New(slog.NewTextHandler(&logs, nil)), router.RouterParams{Config: cfg})
	require.NoError(t, err)

	return srv, &logs
}

func TestNewAPIServer_RejectsMalformedBodyLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "lots"

	_, err := newAPIServer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), router.RouterParams{Config: cfg})

	assert.ErrorContains(t, err, "invalid http.maxRequestBodySize")
}

func TestAPIServer_HealthCarriesRequestID(t *testing.T) {
	srv, _ := newTestServer(t, "1KB")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "probe-1")
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "probe-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestAPIServer_BodyLimit(t *testing.T) {
	srv, _ := newTestServer(t, "1KB")
	srv.echo.POST("/echo", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("x", 2048)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestAPIServer_RecoversFromPanic(t *testing.T) {
	srv, logs := newTestServer(t, "1KB")
	srv.echo.GET("/panic", func(echo.Context) error {
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.Contains(t, logs.String(), "Recovered from panic")
}
