package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"Nivesh/internal/domain/models"
)

// fakeMarket is a scriptable MarketAPI. Unset hooks fall back to fixtures
// derived from the ticker.
type fakeMarket struct {
	listFn     func(ctx context.Context, offset, limit int) ([]models.Stock, error)
	detailFn   func(ctx context.Context, ticker string) (*models.StockDetail, error)
	historyFn  func(ctx context.Context, ticker string, days int) ([]models.PricePoint, error)
	predsFn    func(ctx context.Context, ticker string) (*models.PredictionSummary, error)
	generateFn func(ctx context.Context, ticker string) (*models.GenerationAck, error)

	predCalls     atomic.Int32
	generateCalls atomic.Int32
	historyDays   atomic.Int32
}

func (f *fakeMarket) ListStocks(ctx context.Context, offset, limit int) ([]models.Stock, error) {
	if f.listFn != nil {
		return f.listFn(ctx, offset, limit)
	}
	return nil, nil
}

func (f *fakeMarket) GetStockDetail(ctx context.Context, ticker string) (*models.StockDetail, error) {
	if f.detailFn != nil {
		return f.detailFn(ctx, ticker)
	}
	return detailFor(ticker), nil
}

func (f *fakeMarket) GetPriceHistory(ctx context.Context, ticker string, days int) ([]models.PricePoint, error) {
	f.historyDays.Store(int32(days))
	if f.historyFn != nil {
		return f.historyFn(ctx, ticker, days)
	}
	return historyFor(ticker), nil
}

func (f *fakeMarket) GetPredictions(ctx context.Context, ticker string) (*models.PredictionSummary, error) {
	f.predCalls.Add(1)
	if f.predsFn != nil {
		return f.predsFn(ctx, ticker)
	}
	return nil, notFound(ticker)
}

func (f *fakeMarket) GeneratePredictions(ctx context.Context, ticker string) (*models.GenerationAck, error) {
	f.generateCalls.Add(1)
	if f.generateFn != nil {
		return f.generateFn(ctx, ticker)
	}
	return &models.GenerationAck{Ticker: ticker, Status: "queued"}, nil
}

func ptr(v float64) *float64 { return &v }

func detailFor(ticker string) *models.StockDetail {
	return &models.StockDetail{
		Stock:         models.Stock{Ticker: ticker, Name: ticker + " Ltd"},
		LatestPrice:   &models.LatestPrice{Date: "2024-01-02", Close: 105},
		PriceChange1D: ptr(2.5),
	}
}

func historyFor(ticker string) []models.PricePoint {
	return []models.PricePoint{
		{Date: "2024-01-01", Close: 100},
		{Date: "2024-01-02", Close: 105},
	}
}

func summaryFor(ticker string) *models.PredictionSummary {
	return &models.PredictionSummary{
		Ticker:  ticker,
		NextDay: &models.Prediction{PredictedPrice: 107, Direction: models.DirectionUp, Confidence: 0.7},
	}
}

func notFound(ticker string) error {
	return &models.RemoteError{
		Op:     "get_predictions",
		Status: 404,
		Detail: "No predictions found for " + ticker,
		Err:    fmt.Errorf("%w: 404", models.ErrNotFound),
	}
}

// gate blocks callers until released, regardless of their context, so a
// result can be delivered after the view has moved on.
type gate struct {
	once sync.Once
	ch   chan struct{}
}

func newGate() *gate { return &gate{ch: make(chan struct{})} }

func (g *gate) wait()    { <-g.ch }
func (g *gate) release() { g.once.Do(func() { close(g.ch) }) }

var errBoom = errors.New("boom")
