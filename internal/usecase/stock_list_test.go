package usecase

import (
	"context"
	"errors"
	"testing"

	"Nivesh/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var listed = []models.Stock{
	{ID: 1, Ticker: "TCS", Name: "Tata Consultancy"},
	{ID: 2, Ticker: "INFY", Name: "Infosys"},
}

func TestFilterStocks(t *testing.T) {
	got := FilterStocks(listed, "inf")
	require.Len(t, got, 1)
	assert.Equal(t, "INFY", got[0].Ticker)

	assert.Len(t, FilterStocks(listed, "TATA"), 1)
	assert.Len(t, FilterStocks(listed, "  "), 2)
	assert.Empty(t, FilterStocks(listed, "wipro"))
	assert.Len(t, FilterStocks(listed, "inf "), 1, "surrounding blanks are ignored")
}

func TestStockListLoad(t *testing.T) {
	var gotOffset, gotLimit int
	api := &fakeMarket{
		listFn: func(_ context.Context, offset, limit int) ([]models.Stock, error) {
			gotOffset, gotLimit = offset, limit
			return listed, nil
		},
	}

	stocks, err := NewStockList(api, nil, 0).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, stocks, 2)
	assert.Equal(t, 0, gotOffset)
	assert.Equal(t, DefaultListLimit, gotLimit)
}

func TestStockListLoadError(t *testing.T) {
	api := &fakeMarket{
		listFn: func(context.Context, int, int) ([]models.Stock, error) {
			return nil, errBoom
		},
	}

	_, err := NewStockList(api, nil, 10).Page(context.Background(), -5, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errBoom))
}
