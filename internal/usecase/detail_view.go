package usecase

import (
	"context"
	"errors"
	"sync"

	"Nivesh/internal/domain/models"
	domrepo "Nivesh/internal/domain/repository"
	domsvc "Nivesh/internal/domain/service"
	xlogger "Nivesh/pkg/logger"
)

// DefaultHistoryDays is the lookback of the detail view chart.
const DefaultHistoryDays = 180

// Result slots of a detail view.
const (
	slotDetail   = "detail"
	slotHistory  = "history"
	slotForecast = "forecast"
	slotGenerate = "generate"
)

// viewKey identifies one navigation. Epoch grows on every Open, Reload and
// Leave so a revisit of the same ticker never accepts results of an earlier visit.
type viewKey struct {
	Ticker string
	Epoch  uint64
}

// isCurrent reports whether a result issued for issued may be applied while
// active is on screen.
func isCurrent(issued, active viewKey) bool {
	return issued == active
}

// DetailView orchestrates the detail page of one instrument at a time. It is
// safe for concurrent use; all writes to the state go through the staleness guard.
// Once Close has started, Open, Reload, Leave and GenerateForecast are no-ops.
type DetailView struct {
	stocks      domsvc.StockReader
	preds       domsvc.PredictionService
	logger      *xlogger.Logger
	metrics     domrepo.Metrics
	historyDays int

	baseCtx context.Context
	stop    context.CancelFunc
	wg      sync.WaitGroup

	mu        sync.Mutex
	active    viewKey
	cancelNav context.CancelFunc
	state     models.ViewState
	closed    bool

	subsMu     sync.Mutex
	nextSubID  int
	subs       map[int]chan struct{}
	subsClosed bool
}

// DetailViewOption configures a DetailView.
type DetailViewOption func(*DetailView)

// WithHistoryDays sets the price history lookback.
func WithHistoryDays(days int) DetailViewOption {
	return func(v *DetailView) {
		if days > 0 {
			v.historyDays = days
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m domrepo.Metrics) DetailViewOption {
	return func(v *DetailView) {
		if m != nil {
			v.metrics = m
		}
	}
}

// NewDetailView creates an idle view. Call Open to navigate to a ticker and
// Close when the view is discarded.
func NewDetailView(stocks domsvc.StockReader, preds domsvc.PredictionService, logger *xlogger.Logger, opts ...DetailViewOption) *DetailView {
	if logger == nil {
		logger = xlogger.Nop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	v := &DetailView{
		stocks:      stocks,
		preds:       preds,
		logger:      logger,
		metrics:     domrepo.NopMetrics{},
		historyDays: DefaultHistoryDays,
		baseCtx:     ctx,
		stop:        cancel,
		state:       models.ViewState{Phase: models.PhaseIdle},
		subs:        make(map[int]chan struct{}),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// DetailViewFactory builds independent detail views over shared clients.
type DetailViewFactory func() *DetailView

// NewDetailViewFactory returns a factory of views configured with opts.
func NewDetailViewFactory(stocks domsvc.StockReader, preds domsvc.PredictionService, logger *xlogger.Logger, opts ...DetailViewOption) DetailViewFactory {
	return func() *DetailView {
		return NewDetailView(stocks, preds, logger, opts...)
	}
}

// Open navigates to ticker: prior state is discarded, the phase resets to
// Loading and detail, history and forecast are fetched concurrently. Open does
// not block.
func (v *DetailView) Open(ticker string) {
	ticker = models.NormalizeTicker(ticker)

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	key, ctx := v.beginLocked(ticker)
	if ticker == "" {
		v.state.Phase = models.PhaseFailed
		v.state.ErrorMessage = models.ErrTickerRequired.Error()
		v.mu.Unlock()
		v.metrics.RecordPhase(string(models.PhaseFailed))
		v.notify()
		return
	}
	v.state.HistoryPending = true
	v.state.ForecastPending = true
	// Workers are registered under v.mu so Close never waits on a group that is still growing.
	v.spawnLocked(func() { v.loadDetail(ctx, key) })
	v.spawnLocked(func() { v.loadHistory(ctx, key) })
	v.spawnLocked(func() { v.loadForecast(ctx, key) })
	v.mu.Unlock()

	v.metrics.RecordPhase(string(models.PhaseLoading))
	v.notify()
}

// Reload re-opens the active ticker. It is the manual retry after a failure.
func (v *DetailView) Reload() {
	v.Open(v.Ticker())
}

// Leave navigates away: state is cleared and in-flight results are dropped.
func (v *DetailView) Leave() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.beginLocked("")
	v.state = models.ViewState{Phase: models.PhaseIdle}
	v.mu.Unlock()
	v.notify()
}

// Close cancels in-flight requests, waits for the workers to return and
// closes every subscription. It is idempotent.
func (v *DetailView) Close() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	v.beginLocked("")
	v.state = models.ViewState{Phase: models.PhaseIdle}
	v.mu.Unlock()
	v.notify()

	v.stop()
	v.wg.Wait()

	v.subsMu.Lock()
	v.subsClosed = true
	for id, ch := range v.subs {
		close(ch)
		delete(v.subs, id)
	}
	v.subsMu.Unlock()
}

// Ticker returns the ticker on screen, or "" when idle.
func (v *DetailView) Ticker() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.active.Ticker
}

// Snapshot returns a copy of the current state.
func (v *DetailView) Snapshot() models.ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.state
	if v.state.History != nil {
		s.History = make([]models.PricePoint, len(v.state.History))
		copy(s.History, v.state.History)
	}
	return s
}

// GenerateForecast requests a forecast job for the active ticker and then
// re-reads the forecast once. A still-missing forecast is not an error. On
// failure the returned error is meant for a transient notice; the view state
// other than the forecast slot is never touched.
func (v *DetailView) GenerateForecast(ctx context.Context) (*models.GenerationAck, error) {
	v.mu.Lock()
	key := v.active
	if v.closed || key.Ticker == "" || v.state.Phase != models.PhaseReady {
		v.mu.Unlock()
		return nil, models.ErrViewNotReady
	}
	if v.state.Generating {
		v.mu.Unlock()
		return nil, models.ErrGenerateInProgress
	}
	v.state.Generating = true
	v.mu.Unlock()
	v.notify()

	defer v.apply(key, slotGenerate, func(s *models.ViewState) {
		s.Generating = false
	})

	ack, err := v.preds.GeneratePredictions(ctx, key.Ticker)
	if err != nil {
		v.logger.Error("generate predictions failed",
			xlogger.String("ticker", key.Ticker),
			xlogger.Error(err),
		)
		v.metrics.RecordError(slotGenerate)
		return nil, err
	}
	v.logger.Info("prediction generation requested",
		xlogger.String("ticker", key.Ticker),
		xlogger.String("status", ack.Status),
	)

	summary, err := v.preds.GetPredictions(ctx, key.Ticker)
	switch {
	case err == nil:
		v.apply(key, slotGenerate, func(s *models.ViewState) {
			s.Forecast = summary
			s.ForecastPending = false
		})
	case errors.Is(err, models.ErrNotFound):
		v.logger.Info("predictions not yet available", xlogger.String("ticker", key.Ticker))
		v.apply(key, slotGenerate, func(s *models.ViewState) {
			s.Forecast = nil
			s.ForecastPending = false
		})
	default:
		v.logger.Error("reload predictions failed",
			xlogger.String("ticker", key.Ticker),
			xlogger.Error(err),
		)
		v.metrics.RecordError(slotGenerate)
		return ack, err
	}
	return ack, nil
}

// Subscribe returns a channel that receives a signal after every applied
// change. Signals coalesce; read Snapshot after each one. The channel is
// closed by the returned cancel func or by Close.
func (v *DetailView) Subscribe() (<-chan struct{}, func()) {
	v.subsMu.Lock()
	defer v.subsMu.Unlock()
	ch := make(chan struct{}, 1)
	if v.subsClosed {
		close(ch)
		return ch, func() {}
	}
	id := v.nextSubID
	v.nextSubID++
	v.subs[id] = ch
	return ch, func() {
		v.subsMu.Lock()
		defer v.subsMu.Unlock()
		if c, ok := v.subs[id]; ok {
			close(c)
			delete(v.subs, id)
		}
	}
}

func (v *DetailView) loadDetail(ctx context.Context, key viewKey) {
	detail, err := v.stocks.GetStockDetail(ctx, key.Ticker)
	if err != nil {
		applied := v.apply(key, slotDetail, func(s *models.ViewState) {
			s.Phase = models.PhaseFailed
			s.ErrorMessage = err.Error()
			s.Detail = nil
			s.Forecast = nil
			s.History = nil
			s.HistoryPending = false
			s.ForecastPending = false
		})
		if applied {
			v.logger.Error("load stock detail failed",
				xlogger.String("ticker", key.Ticker),
				xlogger.Error(err),
			)
			v.metrics.RecordPhase(string(models.PhaseFailed))
		}
		return
	}

	if v.apply(key, slotDetail, func(s *models.ViewState) {
		s.Detail = detail
		s.Phase = models.PhaseReady
	}) {
		v.metrics.RecordPhase(string(models.PhaseReady))
	}
}

func (v *DetailView) loadHistory(ctx context.Context, key viewKey) {
	history, err := v.stocks.GetPriceHistory(ctx, key.Ticker, v.historyDays)
	if err != nil {
		v.logger.Warn("price history unavailable",
			xlogger.String("ticker", key.Ticker),
			xlogger.Error(err),
		)
		history = []models.PricePoint{}
	}
	v.apply(key, slotHistory, func(s *models.ViewState) {
		if s.Phase == models.PhaseFailed {
			return
		}
		s.History = history
		s.HistoryPending = false
	})
}

func (v *DetailView) loadForecast(ctx context.Context, key viewKey) {
	summary, err := v.preds.GetPredictions(ctx, key.Ticker)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			v.logger.Debug("no predictions yet", xlogger.String("ticker", key.Ticker))
		} else {
			v.logger.Warn("predictions unavailable",
				xlogger.String("ticker", key.Ticker),
				xlogger.Error(err),
			)
		}
		summary = nil
	}
	v.apply(key, slotForecast, func(s *models.ViewState) {
		if s.Phase == models.PhaseFailed {
			return
		}
		s.Forecast = summary
		s.ForecastPending = false
	})
}

// beginLocked starts a new navigation to ticker and returns its key and the
// context its fetches run under. v.mu must be held.
func (v *DetailView) beginLocked(ticker string) (viewKey, context.Context) {
	if v.cancelNav != nil {
		v.cancelNav()
	}
	ctx, cancel := context.WithCancel(v.baseCtx)
	v.cancelNav = cancel
	v.active = viewKey{Ticker: ticker, Epoch: v.active.Epoch + 1}
	v.state = models.ViewState{Ticker: ticker, Phase: models.PhaseLoading}
	return v.active, ctx
}

// apply runs mutate on the state if key is still the active navigation.
func (v *DetailView) apply(key viewKey, slot string, mutate func(*models.ViewState)) bool {
	v.mu.Lock()
	if !isCurrent(key, v.active) {
		v.mu.Unlock()
		v.metrics.RecordStaleResult(slot)
		v.logger.Debug("dropped stale result",
			xlogger.String("slot", slot),
			xlogger.String("ticker", key.Ticker),
		)
		return false
	}
	mutate(&v.state)
	v.mu.Unlock()
	v.notify()
	return true
}

// spawnLocked starts fn as a worker of the view. v.mu must be held.
func (v *DetailView) spawnLocked(fn func()) {
	v.wg.Add(1)
	go func() {
		defer v.wg.Done()
		fn()
	}()
}

func (v *DetailView) notify() {
	v.subsMu.Lock()
	defer v.subsMu.Unlock()
	for _, ch := range v.subs {
		select {
		case ch <- struct{}{}:
		default:
			// A signal is already pending.
		}
	}
}
