package usecase

import (
	"testing"
	"time"

	"Nivesh/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectSeries(t *testing.T) {
	got := ProjectSeries([]models.PricePoint{
		{Date: "2024-01-01", Close: 100},
		{Date: "2024-01-02", Close: 105},
	})

	require.Len(t, got, 2)
	assert.Equal(t, 100.0, got[0].Value)
	assert.Equal(t, 105.0, got[1].Value)
	assert.Equal(t, "Jan 01", got[0].Label)
	assert.Equal(t, "Jan 02", got[1].Label)
	assert.True(t, got[0].SortKey.Before(got[1].SortKey))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), got[0].SortKey)
}

func TestProjectSeriesKeepsOrderAndDuplicates(t *testing.T) {
	got := ProjectSeries([]models.PricePoint{
		{Date: "2024-01-03", Close: 3},
		{Date: "2024-01-01", Close: 1},
		{Date: "2024-01-01", Close: 1},
	})

	require.Len(t, got, 3)
	assert.Equal(t, []float64{3, 1, 1}, []float64{got[0].Value, got[1].Value, got[2].Value})
}

func TestProjectSeriesEmpty(t *testing.T) {
	got := ProjectSeries(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestProjectSeriesUnparseableDate(t *testing.T) {
	got := ProjectSeries([]models.PricePoint{{Date: "yesterday", Close: 1}})
	require.Len(t, got, 1)
	assert.Equal(t, "yesterday", got[0].Label)
	assert.True(t, got[0].SortKey.IsZero())
}

func TestPercentChange(t *testing.T) {
	v, ok := PercentChange(100, 105)
	require.True(t, ok)
	assert.InDelta(t, 5.0, v, 1e-9)

	v, ok = PercentChange(200, 150)
	require.True(t, ok)
	assert.InDelta(t, -25.0, v, 1e-9)

	_, ok = PercentChange(0, 10)
	assert.False(t, ok)
}
