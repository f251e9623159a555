package presenter

import (
	"testing"

	"Nivesh/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyState() models.ViewState {
	sector := "IT"
	return models.ViewState{
		Ticker: "TCS",
		Phase:  models.PhaseReady,
		Detail: &models.StockDetail{
			Stock:         models.Stock{ID: 1, Ticker: "TCS", Name: "Tata Consultancy", Sector: &sector},
			LatestPrice:   &models.LatestPrice{Date: "2024-01-02", Close: 100},
			PriceChange1D: ptr(2.5),
			PriceChange5D: ptr(-1.2),
		},
		History: []models.PricePoint{
			{Date: "2024-01-01", Close: 98},
			{Date: "2024-01-02", Close: 100},
		},
	}
}

func TestBuildDetailPageLoading(t *testing.T) {
	page := BuildDetailPage(models.ViewState{Ticker: "TCS", Phase: models.PhaseLoading})
	assert.True(t, page.Loading)
	assert.Nil(t, page.Price)
	assert.Nil(t, page.CallToAction)
	assert.Empty(t, page.Error)
}

func TestBuildDetailPageFailed(t *testing.T) {
	page := BuildDetailPage(models.ViewState{
		Ticker:       "TCS",
		Phase:        models.PhaseFailed,
		ErrorMessage: "Stock not found",
	})
	assert.Equal(t, "Stock not found", page.Error)
	assert.True(t, page.CanRetry)
	assert.Nil(t, page.Chart)
	assert.Nil(t, page.Forecast)
	assert.Nil(t, page.CallToAction)
	assert.False(t, page.Loading)
}

func TestBuildDetailPageReadyWithoutForecast(t *testing.T) {
	page := BuildDetailPage(readyState())

	assert.Equal(t, "Tata Consultancy", page.Name)
	assert.Equal(t, "IT", page.Sector)
	require.NotNil(t, page.Price)
	assert.Equal(t, "₹100.00", page.Price.Text)

	require.Len(t, page.Changes, 2, "the nil 20 day change is omitted")
	assert.Equal(t, "+2.50%", page.Changes[0].Text)
	assert.Equal(t, TrendUp, page.Changes[0].Trend)
	assert.Equal(t, "-1.20%", page.Changes[1].Text)
	assert.Equal(t, 5, page.Changes[1].Days)

	require.Len(t, page.Chart, 2)
	assert.Equal(t, "Jan 01", page.Chart[0].Label)

	assert.Nil(t, page.Forecast)
	require.NotNil(t, page.CallToAction)
	assert.Equal(t, CallToActionText, page.CallToAction.Message)
	assert.Empty(t, page.Error)
}

func TestBuildDetailPageOmitsOneDayBlock(t *testing.T) {
	s := readyState()
	s.Detail.PriceChange1D = nil
	page := BuildDetailPage(s)
	for _, c := range page.Changes {
		assert.NotEqual(t, 1, c.Days)
	}
}

func TestBuildDetailPageWithoutPriceOrHistory(t *testing.T) {
	s := readyState()
	s.Detail.LatestPrice = nil
	s.History = []models.PricePoint{}
	page := BuildDetailPage(s)
	assert.Nil(t, page.Price)
	assert.Empty(t, page.Changes, "changes are shown only with a price")
	assert.Nil(t, page.Chart)
}

func TestBuildDetailPagePendingForecast(t *testing.T) {
	s := readyState()
	s.ForecastPending = true
	s.HistoryPending = true
	s.History = nil
	page := BuildDetailPage(s)
	assert.True(t, page.ForecastLoading)
	assert.True(t, page.ChartLoading)
	assert.Nil(t, page.CallToAction)
}

func TestBuildDetailPageForecastPanel(t *testing.T) {
	s := readyState()
	acc := 58.6
	s.Forecast = &models.PredictionSummary{
		Ticker:   "TCS",
		NextDay:  &models.Prediction{PredictedPrice: 105, Direction: models.DirectionUp, Confidence: 0.68},
		NextWeek: &models.Prediction{PredictedPrice: 95, Direction: models.DirectionDown, Confidence: 61, ModelAccuracy: &acc},
	}
	page := BuildDetailPage(s)

	assert.Nil(t, page.CallToAction)
	require.NotNil(t, page.Forecast)
	require.Len(t, page.Forecast.Rows, 2)

	day := page.Forecast.Rows[0]
	assert.Equal(t, "Next Day", day.Label)
	assert.Equal(t, "₹105.00", day.PredictedPrice)
	assert.Equal(t, "68%", day.Confidence)
	assert.Equal(t, "+5.00%", day.ExpectedChange)
	assert.Equal(t, TrendUp, day.Trend)

	week := page.Forecast.Rows[1]
	assert.Equal(t, "-5.00%", week.ExpectedChange)
	assert.Equal(t, "61%", week.Confidence)
	assert.Equal(t, "59%", week.ModelAccuracy)
}

func TestBuildDetailPageGenerating(t *testing.T) {
	s := readyState()
	s.Generating = true
	page := BuildDetailPage(s)
	assert.True(t, page.Generating)
	require.NotNil(t, page.CallToAction)
	assert.True(t, page.CallToAction.Busy)
}
