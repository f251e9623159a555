package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"Nivesh/internal/domain/models"
	"Nivesh/internal/presenter"
	imetrics "Nivesh/internal/service/metrics"
	"Nivesh/internal/service/ratelimit"
	"Nivesh/internal/usecase"
	xhttp "Nivesh/pkg/http"
	xlogger "Nivesh/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ViewerCookie carries the viewer id of a browser.
const ViewerCookie = "nivesh_viewer"

// GenerateResponse is returned by a successful generate action.
type GenerateResponse struct {
	Ack  *models.GenerationAck `json:"ack"`
	Page presenter.DetailPage  `json:"page"`
}

// DashboardEchoHandler serves the web dashboard.
type DashboardEchoHandler struct {
	logger   *xlogger.Logger
	list     *usecase.StockList
	sessions *Sessions
	limiter  *ratelimit.Limiter
}

func NewDashboardEchoHandler(logger *xlogger.Logger, list *usecase.StockList, sessions *Sessions, limiter *ratelimit.Limiter) *DashboardEchoHandler {
	if logger == nil {
		logger = xlogger.Nop()
	}
	sessions.OnEvict(limiter.Forget)
	imetrics.Register()
	return &DashboardEchoHandler{logger: logger, list: list, sessions: sessions, limiter: limiter}
}

func (h *DashboardEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	g := e.Group("/api/stocks")
	g.GET("", h.ListStocks)
	g.GET("/:ticker/view", h.View)
	g.POST("/:ticker/predictions/generate", h.Generate)
}

func (h *DashboardEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"status":  "ok",
		"viewers": h.sessions.Len(),
	})
}

func (h *DashboardEchoHandler) ListStocks(c echo.Context) error {
	defer observe("list_stocks", time.Now())
	req := &models.ListStocksRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	stocks, err := h.list.Page(c.Request().Context(), req.Offset, req.Limit)
	if err != nil {
		imetrics.HandlerErrors.WithLabelValues("list_stocks").Inc()
		return xhttp.AppErrorResponse(c, xhttp.BadGatewayError("ERR_REMOTE", err.Error()).WithError(err))
	}
	page := presenter.BuildListPage(stocks, req.Q)
	return xhttp.ListResponse(c, page.Rows, int64(page.Total))
}

// View navigates the viewer to the ticker unless it is already on screen and
// returns the current detail page.
func (h *DashboardEchoHandler) View(c echo.Context) error {
	defer observe("view", time.Now())
	req := &models.StockViewRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	ticker := models.NormalizeTicker(req.Ticker)
	if ticker == "" {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(models.ErrTickerRequired.Error()))
	}
	viewer := h.viewer(c)

	switch {
	case viewer.View.Ticker() != ticker:
		viewer.View.Open(ticker)
	case req.Reload:
		viewer.View.Reload()
	}

	state := viewer.View.Snapshot()
	if req.WaitMs > 0 {
		state = waitSettled(c.Request().Context(), viewer.View, time.Duration(req.WaitMs)*time.Millisecond)
	}
	return xhttp.SuccessResponse(c, presenter.BuildDetailPage(state))
}

// Generate runs the generate action for the ticker on screen.
func (h *DashboardEchoHandler) Generate(c echo.Context) error {
	defer observe("generate", time.Now())
	req := &models.GenerateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	ticker := models.NormalizeTicker(req.Ticker)
	if ticker == "" {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(models.ErrTickerRequired.Error()))
	}
	viewer := h.viewer(c)

	if viewer.View.Ticker() != ticker {
		imetrics.GenerateRequests.WithLabelValues("conflict").Inc()
		return xhttp.AppErrorResponse(c, xhttp.ConflictError("open "+ticker+" before generating predictions"))
	}
	if !h.limiter.Allow(viewer.ID) {
		imetrics.GenerateRequests.WithLabelValues("rate_limited").Inc()
		return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("too many generate requests, slow down"))
	}

	ack, err := viewer.View.GenerateForecast(c.Request().Context())
	switch {
	case errors.Is(err, models.ErrViewNotReady), errors.Is(err, models.ErrGenerateInProgress):
		imetrics.GenerateRequests.WithLabelValues("conflict").Inc()
		return xhttp.AppErrorResponse(c, xhttp.ConflictError(err.Error()).WithError(err))
	case err != nil:
		imetrics.GenerateRequests.WithLabelValues("failed").Inc()
		imetrics.HandlerErrors.WithLabelValues("generate").Inc()
		h.logger.Warn("generate action failed",
			xlogger.String("viewer", viewer.ID),
			xlogger.String("ticker", ticker),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, xhttp.BadGatewayError("ERR_GENERATE_FAILED", presenter.GenerateFailedText).WithError(err))
	}

	imetrics.GenerateRequests.WithLabelValues("ok").Inc()
	return xhttp.SuccessResponse(c, GenerateResponse{
		Ack:  ack,
		Page: presenter.BuildDetailPage(viewer.View.Snapshot()),
	})
}

func (h *DashboardEchoHandler) viewer(c echo.Context) *Viewer {
	var id string
	if ck, err := c.Cookie(ViewerCookie); err == nil {
		id = ck.Value
	}
	v, created := h.sessions.Acquire(id)
	if created {
		c.SetCookie(&http.Cookie{
			Name:     ViewerCookie,
			Value:    v.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return v
}

// waitSettled blocks until the view has no pending slot, d elapsed or ctx is
// done, and returns the last snapshot.
func waitSettled(ctx context.Context, view *usecase.DetailView, d time.Duration) models.ViewState {
	ch, cancel := view.Subscribe()
	defer cancel()
	timer := time.NewTimer(d)
	defer timer.Stop()

	for {
		s := view.Snapshot()
		if settled(s) {
			return s
		}
		select {
		case <-ctx.Done():
			return view.Snapshot()
		case <-timer.C:
			return view.Snapshot()
		case _, ok := <-ch:
			if !ok {
				return view.Snapshot()
			}
		}
	}
}

func settled(s models.ViewState) bool {
	return s.Phase != models.PhaseLoading && !s.HistoryPending && !s.ForecastPending && !s.Generating
}

func observe(endpoint string, start time.Time) {
	imetrics.HandlerLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
