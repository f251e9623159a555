package models

// Forecast horizons served by the prediction service.
const (
	HorizonNextDay  = "next_day"
	HorizonNextWeek = "next_week"
)

// Prediction directions.
const (
	DirectionUp      = "up"
	DirectionDown    = "down"
	DirectionNeutral = "neutral"
)

// Prediction is a single horizon forecast.
type Prediction struct {
	PredictedPrice float64  `json:"predicted_price" validate:"gte=0"`
	Direction      string   `json:"direction" validate:"omitempty,oneof=up down neutral"`
	Confidence     float64  `json:"confidence" validate:"gte=0,lte=100"`
	ModelAccuracy  *float64 `json:"model_accuracy,omitempty" validate:"omitempty,gte=0,lte=100"`
	PredictionDate string   `json:"prediction_date,omitempty"`
	TargetDate     string   `json:"target_date,omitempty"`
}

// PredictionSummary holds the forecasts generated for one ticker.
type PredictionSummary struct {
	Ticker   string      `json:"ticker" validate:"required"`
	NextDay  *Prediction `json:"next_day,omitempty" validate:"required_without=NextWeek"`
	NextWeek *Prediction `json:"next_week,omitempty" validate:"required_without=NextDay"`
}

// HorizonPrediction pairs a Prediction with its horizon key.
type HorizonPrediction struct {
	Horizon    string
	Prediction Prediction
}

// Horizons lists the present predictions, shortest horizon first.
func (s *PredictionSummary) Horizons() []HorizonPrediction {
	out := make([]HorizonPrediction, 0, 2)
	if s.NextDay != nil {
		out = append(out, HorizonPrediction{Horizon: HorizonNextDay, Prediction: *s.NextDay})
	}
	if s.NextWeek != nil {
		out = append(out, HorizonPrediction{Horizon: HorizonNextWeek, Prediction: *s.NextWeek})
	}
	return out
}

// GenerationAck acknowledges that a forecast job was started. It never
// carries the forecast itself.
type GenerationAck struct {
	Ticker  string `json:"ticker"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
