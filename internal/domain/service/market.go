package service

import (
	"context"

	"Nivesh/internal/domain/models"
)

// StockReader reads instruments and their price data from the prediction service.
type StockReader interface {
	ListStocks(ctx context.Context, offset, limit int) ([]models.Stock, error)
	GetStockDetail(ctx context.Context, ticker string) (*models.StockDetail, error)
	GetPriceHistory(ctx context.Context, ticker string, days int) ([]models.PricePoint, error)
}

// PredictionService reads forecasts and starts forecast generation jobs.
// GetPredictions fails with models.ErrNotFound when nothing was generated yet.
type PredictionService interface {
	GetPredictions(ctx context.Context, ticker string) (*models.PredictionSummary, error)
	GeneratePredictions(ctx context.Context, ticker string) (*models.GenerationAck, error)
}

// MarketAPI is the full surface of the prediction service.
type MarketAPI interface {
	StockReader
	PredictionService
}
