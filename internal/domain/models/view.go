package models

import "time"

// Phase is the lifecycle stage of a detail view.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseFailed  Phase = "failed"
)

// ViewState is the state of one instrument detail view. Ready implies Detail
// is set; a nil Forecast under Ready means no forecast was generated yet.
type ViewState struct {
	Ticker       string
	Detail       *StockDetail
	Forecast     *PredictionSummary
	History      []PricePoint
	Phase        Phase
	ErrorMessage string

	HistoryPending  bool
	ForecastPending bool
	Generating      bool
}

// ChartPoint is one chart-ready sample of a price series.
type ChartPoint struct {
	Label   string    `json:"label"`
	Value   float64   `json:"value"`
	SortKey time.Time `json:"sort_key"`
}
