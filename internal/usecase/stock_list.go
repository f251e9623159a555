package usecase

import (
	"context"
	"fmt"
	"strings"

	"Nivesh/internal/domain/models"
	domsvc "Nivesh/internal/domain/service"
	xlogger "Nivesh/pkg/logger"
)

// DefaultListLimit is the page size of the landing list.
const DefaultListLimit = 50

// StockList loads the landing page list.
type StockList struct {
	stocks domsvc.StockReader
	logger *xlogger.Logger
	limit  int
}

func NewStockList(stocks domsvc.StockReader, logger *xlogger.Logger, limit int) *StockList {
	if logger == nil {
		logger = xlogger.Nop()
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return &StockList{stocks: stocks, logger: logger, limit: limit}
}

// Load fetches the first page of stocks.
func (l *StockList) Load(ctx context.Context) ([]models.Stock, error) {
	return l.Page(ctx, 0, l.limit)
}

// Page fetches one page of stocks. A non-positive limit falls back to the
// configured page size.
func (l *StockList) Page(ctx context.Context, offset, limit int) ([]models.Stock, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = l.limit
	}
	stocks, err := l.stocks.ListStocks(ctx, offset, limit)
	if err != nil {
		l.logger.Error("list stocks failed",
			xlogger.Int("offset", offset),
			xlogger.Int("limit", limit),
			xlogger.Error(err),
		)
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	return stocks, nil
}

// FilterStocks keeps the stocks whose ticker or name contains q, ignoring
// case and surrounding blanks. An empty query keeps everything.
func FilterStocks(stocks []models.Stock, q string) []models.Stock {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return stocks
	}
	out := make([]models.Stock, 0, len(stocks))
	for _, s := range stocks {
		if strings.Contains(strings.ToLower(s.Ticker), q) || strings.Contains(strings.ToLower(s.Name), q) {
			out = append(out, s)
		}
	}
	return out
}
