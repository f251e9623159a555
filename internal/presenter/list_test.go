package presenter

import (
	"testing"

	"Nivesh/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListPage(t *testing.T) {
	stocks := []models.Stock{
		{ID: 1, Ticker: "TCS", Name: "Tata Consultancy"},
		{ID: 2, Ticker: "INFY", Name: "Infosys"},
	}

	page := BuildListPage(stocks, "inf")
	require.Len(t, page.Rows, 1)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, "INFY", page.Rows[0].Ticker)
	assert.Equal(t, "/api/stocks/INFY/view", page.Rows[0].Link)

	all := BuildListPage(stocks, "")
	assert.Equal(t, 2, all.Total)
}

func TestBuildListPageEmpty(t *testing.T) {
	page := BuildListPage(nil, "x")
	assert.NotNil(t, page.Rows)
	assert.Zero(t, page.Total)
}
