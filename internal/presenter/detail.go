package presenter

import (
	"Nivesh/internal/domain/models"
	"Nivesh/internal/usecase"
)

const (
	// CallToActionText is shown when a stock has no forecast yet.
	CallToActionText = "No predictions available for this stock yet."
	// GenerateActionText labels the generate action.
	GenerateActionText = "Generate Predictions"
	// GenerateFailedText is the transient notice after a failed generation.
	GenerateFailedText = "Failed to generate prediction. Please try again."
)

var horizonLabels = map[string]string{
	models.HorizonNextDay:  "Next Day",
	models.HorizonNextWeek: "Next Week",
}

// PriceBlock is the latest close of a stock.
type PriceBlock struct {
	Close float64 `json:"close"`
	Text  string  `json:"text"`
	AsOf  string  `json:"as_of,omitempty"`
}

// ChangeBlock is one server-provided percentage change.
type ChangeBlock struct {
	Days  int    `json:"days"`
	Label string `json:"label"`
	Text  string `json:"text"`
	Trend string `json:"trend"`
}

// ForecastRow is one horizon of the forecast panel.
type ForecastRow struct {
	Horizon        string `json:"horizon"`
	Label          string `json:"label"`
	PredictedPrice string `json:"predicted_price"`
	Direction      string `json:"direction,omitempty"`
	Confidence     string `json:"confidence"`
	ExpectedChange string `json:"expected_change,omitempty"`
	Trend          string `json:"trend,omitempty"`
	ModelAccuracy  string `json:"model_accuracy,omitempty"`
	TargetDate     string `json:"target_date,omitempty"`
}

// ForecastPanel lists the available horizons of a forecast.
type ForecastPanel struct {
	Ticker string        `json:"ticker"`
	Rows   []ForecastRow `json:"rows"`
}

// CallToAction invites the viewer to request a forecast.
type CallToAction struct {
	Message string `json:"message"`
	Action  string `json:"action"`
	Busy    bool   `json:"busy"`
}

// DetailPage is the rendered form of a detail view snapshot. Exactly one of
// Loading, Error or the Ready blocks is populated.
type DetailPage struct {
	Ticker string       `json:"ticker"`
	Phase  models.Phase `json:"phase"`

	Loading  bool   `json:"loading,omitempty"`
	Error    string `json:"error,omitempty"`
	CanRetry bool   `json:"can_retry,omitempty"`

	Name            string              `json:"name,omitempty"`
	Sector          string              `json:"sector,omitempty"`
	Price           *PriceBlock         `json:"price,omitempty"`
	Changes         []ChangeBlock       `json:"changes,omitempty"`
	Chart           []models.ChartPoint `json:"chart,omitempty"`
	ChartLoading    bool                `json:"chart_loading,omitempty"`
	Forecast        *ForecastPanel      `json:"forecast,omitempty"`
	ForecastLoading bool                `json:"forecast_loading,omitempty"`
	CallToAction    *CallToAction       `json:"call_to_action,omitempty"`
	Generating      bool                `json:"generating,omitempty"`
}

// BuildDetailPage renders s. A failed view shows only its error and a retry
// affordance; history and forecast are never rendered next to an error.
func BuildDetailPage(s models.ViewState) DetailPage {
	page := DetailPage{Ticker: s.Ticker, Phase: s.Phase}

	switch s.Phase {
	case models.PhaseLoading:
		page.Loading = true
		return page
	case models.PhaseFailed:
		page.Error = s.ErrorMessage
		page.CanRetry = s.Ticker != ""
		return page
	case models.PhaseReady:
	default:
		return page
	}
	if s.Detail == nil {
		page.Loading = true
		return page
	}

	d := s.Detail
	page.Ticker = d.Stock.Ticker
	page.Name = d.Stock.Name
	if d.Stock.Sector != nil {
		page.Sector = *d.Stock.Sector
	}
	// Change blocks belong to the price section and are hidden with it.
	if d.LatestPrice != nil {
		page.Price = &PriceBlock{
			Close: d.LatestPrice.Close,
			Text:  FormatPrice(d.LatestPrice.Close),
			AsOf:  d.LatestPrice.Date,
		}
		for _, ch := range d.Changes() {
			text, ok := FormatChange(ch.Percent)
			if !ok {
				continue
			}
			page.Changes = append(page.Changes, ChangeBlock{
				Days:  ch.Days,
				Label: changeLabel(ch.Days),
				Text:  text,
				Trend: TrendOf(*ch.Percent),
			})
		}
	}

	if len(s.History) > 0 {
		page.Chart = usecase.ProjectSeries(s.History)
	}
	page.ChartLoading = s.HistoryPending

	page.Generating = s.Generating
	switch {
	case s.Forecast != nil:
		page.Forecast = buildForecastPanel(s.Forecast, page.Price)
	case s.ForecastPending:
		page.ForecastLoading = true
	default:
		page.CallToAction = &CallToAction{
			Message: CallToActionText,
			Action:  GenerateActionText,
			Busy:    s.Generating,
		}
	}
	return page
}

func buildForecastPanel(f *models.PredictionSummary, price *PriceBlock) *ForecastPanel {
	panel := &ForecastPanel{Ticker: f.Ticker}
	for _, h := range f.Horizons() {
		p := h.Prediction
		row := ForecastRow{
			Horizon:        h.Horizon,
			Label:          horizonLabels[h.Horizon],
			PredictedPrice: FormatPrice(p.PredictedPrice),
			Direction:      p.Direction,
			Confidence:     FormatConfidence(p.Confidence),
			TargetDate:     p.TargetDate,
		}
		if price != nil {
			if pct, ok := usecase.PercentChange(price.Close, p.PredictedPrice); ok {
				row.ExpectedChange, _ = FormatChange(&pct)
				row.Trend = TrendOf(pct)
			}
		}
		if p.ModelAccuracy != nil {
			row.ModelAccuracy = FormatConfidence(*p.ModelAccuracy)
		}
		panel.Rows = append(panel.Rows, row)
	}
	return panel
}

func changeLabel(days int) string {
	switch days {
	case 1:
		return "1 Day Change"
	case 5:
		return "5 Day Change"
	default:
		return "20 Day Change"
	}
}
