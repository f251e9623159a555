//go:build wireinject
// +build wireinject

package di

import (
	"Nivesh/internal/tui"
	"Nivesh/pkg/config"
	applogger "Nivesh/pkg/logger"
	"Nivesh/pkg/server"

	"github.com/google/wire"
)

var coreSet = wire.NewSet(
	// Metrics
	ProvideMetrics,

	// Remote client
	ProvideMarketClient,

	// Use cases
	ProvideStockList,
	ProvideDetailViewFactory,
)

// InitializeApp wires the web dashboard.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config, logger *applogger.Logger) (*server.App, error) {
	wire.Build(
		coreSet,

		// Web surface
		ProvideSessions,
		ProvideGenerateLimiter,
		ProvideDashboardHandler,
		ProvideHTTPServer,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}

// InitializeTerminal wires the terminal dashboard.
func InitializeTerminal(cfg *config.Config, logger *applogger.Logger) (*tui.Dashboard, error) {
	wire.Build(
		coreSet,
		tui.NewDashboard,
	)
	return &tui.Dashboard{}, nil
}
