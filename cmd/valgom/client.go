package main

import (
	"context"
	"io"
	"os"

	"kurvalgom/config"
	"kurvalgom/internal/app"
	"kurvalgom/internal/domain/lifecycle"
	"kurvalgom/internal/infra/session"
	"kurvalgom/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// client runs the core in-process. The session token lives in the key/value store.
type client struct {
	cfg       *config.Config
	auth      usecase.AuthUsecase
	posts     usecase.PostUsecase
	history   usecase.HistoryUsecase
	discovery usecase.DiscoveryUsecase
	keeper    *session.Keeper
	out       io.Writer
}

func clientOptions(c *client) fx.Option {
	return fx.Options(
		app.Infra(),
		app.Repositories(),
		app.Services(),
		app.Usecases(),
		app.NopMetrics(),
		fx.Provide(
			fx.Annotate(
				func() io.Writer { return os.Stderr },
				fx.ResultTags(`name:"log_output"`),
			),
			session.NewKeeper,
		),
		fx.NopLogger,
		fx.Populate(&c.cfg, &c.auth, &c.posts, &c.history, &c.discovery, &c.keeper),
	)
}

// withClient starts the stores, runs fn and stops them again.
func withClient(ctx context.Context, fn func(*client) error) (err error) {
	c := &client{out: os.Stdout}

	fxApp := fx.New(clientOptions(c))
	if err := fxApp.Err(); err != nil {
		return errors.Wrap(err, "failed to build client")
	}

	startCtx, cancelStart := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancelStart()

	if err := fxApp.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start client")
	}

	defer func() {
		stopCtx, cancelStop := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
		defer cancelStop()

		if stopErr := fxApp.Stop(stopCtx); stopErr != nil && err == nil {
			err = errors.Wrap(stopErr, "failed to stop client")
		}
	}()

	return fn(c)
}
