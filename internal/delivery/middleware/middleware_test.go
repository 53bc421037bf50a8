package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kurvalgom/config"
	deliverycontext "kurvalgom/internal/delivery/context"
	"kurvalgom/internal/domain/entity"
	domainerrors "kurvalgom/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	m := NewRequestIDMiddleware(logger)

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when absent", incoming: "", keep: false},
		{name: "client id kept", incoming: "req-123", keep: true},
		{name: "oversized id replaced", incoming: strings.Repeat("x", maxRequestIDLength+1), keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var ctxID string
			err := m.Process(func(c echo.Context) error {
				ctxID = deliverycontext.RequestIDFrom(c.Request().Context())
				deliverycontext.LoggerFrom(c.Request().Context()).Info("inside")

				return nil
			})(c)
			require.NoError(t, err)

			headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, headerID)
			assert.Equal(t, headerID, ctxID)
			assert.Equal(t, headerID, deliverycontext.RequestID(c))
			if tt.keep {
				assert.Equal(t, tt.incoming, headerID)
			} else {
				assert.NotEqual(t, tt.incoming, headerID)
			}
			assert.Contains(t, buf.String(), "request_id="+headerID)
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	cfg := &config.Config{Metrics: &config.MetricsConfig{Path: "/metrics"}}
	m := NewLoggerMiddleware(logger, cfg)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, m.Handle)
	e.GET("/posts/:id", func(c echo.Context) error { return domainerrors.ErrPostNotFound }, m.Handle)
	e.GET("/boom", func(c echo.Context) error { return assert.AnError }, m.Handle)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, buf.String(), "probe requests are not logged outside debug")

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/posts/1", nil))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "status=404")

	buf.Reset()
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "status=500")
}

func TestLoggerMiddleware_DebugLogsProbes(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, m.Handle)
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health?verbose=1", nil))

	assert.Contains(t, buf.String(), "uri=/health")
	assert.Contains(t, buf.String(), "verbose=1")
}

func TestLoggerMiddleware_IncludesSignedInUser(t *testing.T) {
	var buf bytes.Buffer
	m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), &config.Config{})
	userID := uuid.New()

	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		deliverycontext.SetIdentity(c, &entity.Identity{UserID: userID, Username: "alice"})

		return c.NoContent(http.StatusOK)
	}, m.Handle)
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Contains(t, buf.String(), "user_id="+userID.String())
}
