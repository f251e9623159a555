package models

import "strings"

// Stock is a tradable instrument as listed by the prediction service.
type Stock struct {
	ID     int     `json:"id"`
	Ticker string  `json:"ticker" validate:"required"`
	Name   string  `json:"name"`
	Sector *string `json:"sector,omitempty"`
}

// LatestPrice is the most recent daily bar known to the service.
type LatestPrice struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close" validate:"gte=0"`
	Volume float64 `json:"volume"`
}

// StockDetail is a Stock plus its latest price and server-computed changes.
// Each change is nil when the service lacks enough history for that window.
type StockDetail struct {
	Stock          Stock        `json:"stock"`
	LatestPrice    *LatestPrice `json:"latest_price,omitempty"`
	PriceChange1D  *float64     `json:"price_change_1d"`
	PriceChange5D  *float64     `json:"price_change_5d"`
	PriceChange20D *float64     `json:"price_change_20d"`
}

// PriceChange is one lookback window of a StockDetail.
type PriceChange struct {
	Days    int
	Percent *float64
}

// Changes returns the 1, 5 and 20 day windows in display order. Values are
// passed through untouched; they are never recomputed from price history.
func (d *StockDetail) Changes() []PriceChange {
	return []PriceChange{
		{Days: 1, Percent: d.PriceChange1D},
		{Days: 5, Percent: d.PriceChange5D},
		{Days: 20, Percent: d.PriceChange20D},
	}
}

// PricePoint is one close of a daily series. Date is an ISO date string.
type PricePoint struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

// NormalizeTicker trims and upper-cases a ticker.
func NormalizeTicker(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
