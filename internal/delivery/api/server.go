// Package api serves the JSON API consumed by the web client.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"kurvalgom/config"
	"kurvalgom/internal/delivery"
	apimiddleware "kurvalgom/internal/delivery/api/middleware"
	"kurvalgom/internal/delivery/api/router"
	"kurvalgom/internal/delivery/api/validator"
	deliverycontext "kurvalgom/internal/delivery/context"
	"kurvalgom/internal/delivery/middleware"
	"kurvalgom/internal/domain/lifecycle"
	"kurvalgom/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/bytes"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// ServerParams holds dependencies for the API server, injected by Fx.
type ServerParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	echo   *echo.Echo
}

// NewServer builds the API server and stops it with the application.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv, err := newAPIServer(params.Config, params.Logger, params.RouterParams)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newAPIServer(cfg *config.Config, logger *slog.Logger, routes router.RouterParams) (*apiServer, error) {
	// echo's BodyLimit panics on a malformed size.
	if _, err := bytes.Parse(cfg.HTTP.MaxRequestBodySize); err != nil {
		return nil, errors.Wrapf(err, "invalid http.maxRequestBodySize %q", cfg.HTTP.MaxRequestBodySize)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Order matters: panics are recovered first and every later step logs with the request ID.
	e.Use(
		echomiddleware.RecoverWithConfig(echomiddleware.RecoverConfig{
			LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
				logger.Error("Recovered from panic", slog.Any("error", err), slog.String("stack", string(stack)))

				return err
			},
		}),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
		echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins:  []string{"*"},
			AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, deliverycontext.HeaderXRequestID},
			ExposeHeaders: []string{deliverycontext.HeaderXRequestID},
		}),
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	)

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(routes).RegisterRoutes(e)

	return &apiServer{cfg: cfg, logger: logger, echo: e}, nil
}

// Serve listens with cleartext HTTP/2 support and blocks until shutdown.
func (s *apiServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API server",
		slog.String("host_port", hostPort),
		slog.String("service", s.cfg.Env.ServiceName),
	)

	err := s.echo.StartH2CServer(hostPort, &http2.Server{IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout})
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve api")
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
