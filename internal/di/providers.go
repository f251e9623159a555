package di

import (
	"Nivesh/internal/domain/repository"
	"Nivesh/internal/handler/api"
	"Nivesh/internal/service/nivesh"
	"Nivesh/internal/service/ratelimit"
	"Nivesh/internal/usecase"
	"Nivesh/pkg/config"
	xhttp "Nivesh/pkg/http"
	applogger "Nivesh/pkg/logger"
	"Nivesh/pkg/metrics"
	"Nivesh/pkg/server"
)

// ProvideMetrics creates a Prometheus metrics recorder, or a no-op one when
// metrics are disabled.
func ProvideMetrics(cfg *config.Config) repository.Metrics {
	if !cfg.Metrics.Enabled {
		return repository.NopMetrics{}
	}
	return metrics.New()
}

// ProvideMarketClient creates the prediction service client.
func ProvideMarketClient(cfg *config.Config, m repository.Metrics) *nivesh.Client {
	return nivesh.New(cfg.Remote.BaseURL, cfg.Remote.Timeout, m)
}

// ProvideStockList creates the landing list use case.
func ProvideStockList(client *nivesh.Client, logger *applogger.Logger, cfg *config.Config) *usecase.StockList {
	return usecase.NewStockList(client, logger.With(applogger.String("component", "stock_list")), cfg.Dashboard.ListLimit)
}

// ProvideDetailViewFactory creates detail views over the shared client.
func ProvideDetailViewFactory(client *nivesh.Client, logger *applogger.Logger, m repository.Metrics, cfg *config.Config) usecase.DetailViewFactory {
	return usecase.NewDetailViewFactory(client, client,
		logger.With(applogger.String("component", "detail_view")),
		usecase.WithHistoryDays(cfg.Dashboard.HistoryDays),
		usecase.WithMetrics(m),
	)
}

// ProvideSessions creates the viewer registry.
func ProvideSessions(factory usecase.DetailViewFactory, cfg *config.Config, logger *applogger.Logger) *api.Sessions {
	return api.NewSessions(factory, cfg.Sessions.IdleTTL, logger.With(applogger.String("component", "sessions")))
}

// ProvideGenerateLimiter creates the per-viewer limiter of the generate action.
func ProvideGenerateLimiter(cfg *config.Config) *ratelimit.Limiter {
	return ratelimit.New(cfg.RateLimit.GenerateBurst, cfg.RateLimit.GenerateRefillSec)
}

// ProvideDashboardHandler creates the echo handler of the web dashboard.
func ProvideDashboardHandler(logger *applogger.Logger, list *usecase.StockList, sessions *api.Sessions, limiter *ratelimit.Limiter) *api.DashboardEchoHandler {
	return api.NewDashboardEchoHandler(logger, list, sessions, limiter)
}

// ProvideHTTPServer creates the echo server.
func ProvideHTTPServer(cfg *config.Config, logger *applogger.Logger, h *api.DashboardEchoHandler) *xhttp.Server {
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	return xhttp.NewServer(h,
		xhttp.WithHost(cfg.Server.Host),
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(cfg.Server.CORS),
		xhttp.WithMetricsPath(metricsPath),
		xhttp.WithLogger(logger),
	)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, logger *applogger.Logger, srv *xhttp.Server, sessions *api.Sessions) *server.App {
	return server.New(cfg, logger, srv, sessions)
}
