// Package context carries request-scoped values from the echo pipeline down to the usecases.
package context

import (
	"context"
	"log/slog"

	"kurvalgom/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

type key int

const (
	requestIDKey key = iota
	loggerKey
)

// echo.Context keys; echo stores them in a string map.
const (
	echoRequestIDKey = "request_id"
	echoIdentityKey  = "identity"
)

// HeaderXRequestID is the header echoing the request ID back to the client.
const HeaderXRequestID = echo.HeaderXRequestID

// Attach records the request ID on c and puts it, together with the
// request-scoped logger, into the request's context.Context.
func Attach(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(echoRequestIDKey, requestID)

	ctx := context.WithValue(c.Request().Context(), requestIDKey, requestID)
	ctx = context.WithValue(ctx, loggerKey, logger)
	c.SetRequest(c.Request().WithContext(ctx))
}

// RequestID returns the ID assigned by the request ID middleware, or "" before it ran.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok {
		return id
	}

	return RequestIDFrom(c.Request().Context())
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// LoggerFrom returns the request-scoped logger, or nil outside a request.
func LoggerFrom(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault is LoggerFrom with a fallback for background work and tests.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := LoggerFrom(ctx); logger != nil {
		return logger
	}

	return fallback
}

// SetIdentity stores the authenticated identity in echo.Context.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(echoIdentityKey, identity)
}

// GetIdentity returns the identity set by the auth middleware, if any.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(echoIdentityKey).(*entity.Identity)

	return identity, ok && identity != nil
}
