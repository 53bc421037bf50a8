package main

import (
	"context"
	"log/slog"
	"os"

	"kurvalgom/internal/app"
	"kurvalgom/internal/delivery"
	"kurvalgom/internal/delivery/api"
	"kurvalgom/internal/delivery/api/middleware"
	"kurvalgom/internal/delivery/api/router/handler"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		options(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func options() fx.Option {
	return fx.Options(
		app.Infra(),
		app.Repositories(),
		app.Services(),
		app.Usecases(),
		app.Metrics(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewRestaurantHandler,
			handler.NewPostHandler,
			handler.NewHistoryHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
