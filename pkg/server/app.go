package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"Nivesh/internal/handler/api"
	"Nivesh/pkg/config"
	xhttp "Nivesh/pkg/http"
	applogger "Nivesh/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// App encapsulates the web dashboard lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	httpServer *xhttp.Server
	sessions   *api.Sessions
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, logger *applogger.Logger, httpServer *xhttp.Server, sessions *api.Sessions) *App {
	return &App{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
		sessions:   sessions,
	}
}

// Run serves until ctx is done or an interrupt arrives, then shuts down.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.httpServer.Start()
	})

	g.Go(func() error {
		a.sessions.Run(gctx, a.cfg.Sessions.SweepInterval)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutdown signal received")
		return a.shutdown()
	})

	a.logger.Info("dashboard started",
		applogger.String("addr", a.httpServer.Addr()),
		applogger.String("remote", a.cfg.Remote.BaseURL),
	)
	if err := g.Wait(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	return nil
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	// The run context is already done; shutdown gets its own deadline.
	if err := a.httpServer.Stop(context.Background()); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		return err
	}
	a.sessions.Close()
	a.logger.Info("shutdown complete")
	return nil
}
