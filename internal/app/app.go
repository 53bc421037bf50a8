// Package app groups the fx providers shared by the server and the CLI.
package app

import (
	"context"
	"net/http"

	"kurvalgom/config"
	"kurvalgom/internal/domain/service"
	"kurvalgom/internal/infra/auth"
	"kurvalgom/internal/infra/kv"
	logs "kurvalgom/internal/infra/log"
	"kurvalgom/internal/infra/metrics"
	"kurvalgom/internal/infra/nominatim"
	"kurvalgom/internal/infra/overpass"
	"kurvalgom/internal/infra/persistence/gormstore"
	"kurvalgom/internal/infra/poicache"
	"kurvalgom/internal/usecase/impl"

	"go.uber.org/fx"
)

// Infra provides configuration, logging and the two stores.
func Infra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		gormstore.New,
		kv.New,
	)
}

func Repositories() fx.Option {
	return fx.Options(
		fx.Provide(
			gormstore.NewUserRepository,
			gormstore.NewBlogPostRepository,
			gormstore.NewHistoryRepository,
			gormstore.NewTransactionManager,
		),
	)
}

// Services provides the domain service implementations. The restaurant lookup is the POI cache.
func Services() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPasswordService,
			auth.NewJWTService,
			overpass.NewPlaceFinder,
			nominatim.NewReverseGeocoder,
			fx.Annotate(
				poicache.New,
				fx.As(new(service.RestaurantLookup)),
			),
		),
	)
}

func Usecases() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewPostService,
			impl.NewHistoryService,
			impl.NewDiscoveryService,
		),
	)
}

// Metrics provides the cache recorder and, when enabled, the scrape handler.
func Metrics() fx.Option {
	return fx.Provide(newMetrics)
}

// NopMetrics provides a recorder that drops everything, for short-lived processes.
func NopMetrics() fx.Option {
	return fx.Provide(func() metrics.Recorder { return metrics.Nop{} })
}

type metricsResult struct {
	fx.Out

	Recorder metrics.Recorder
	Handler  http.Handler `name:"metrics"`
}

func newMetrics(cfg *config.Config) metricsResult {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return metricsResult{Recorder: metrics.Nop{}}
	}

	registry := metrics.NewRegistry()

	return metricsResult{
		Recorder: metrics.NewCollector(registry),
		Handler:  metrics.Handler(registry),
	}
}
