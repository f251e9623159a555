// Package presenter builds the view models both dashboard surfaces render.
// Builders are pure: they read a snapshot and never call the network.
package presenter

import (
	"fmt"
	"math"
)

// Trend of a signed value.
const (
	TrendUp   = "up"
	TrendDown = "down"
	TrendFlat = "flat"
)

// FormatChange renders a percentage change with two decimals and an explicit
// plus sign for gains. It reports false for nil so the block can be omitted.
func FormatChange(p *float64) (string, bool) {
	if p == nil {
		return "", false
	}
	v := *p
	if v > 0 {
		return fmt.Sprintf("+%.2f%%", v), true
	}
	if v == 0 {
		return "0.00%", true
	}
	return fmt.Sprintf("%.2f%%", v), true
}

// FormatPrice renders a rupee price.
func FormatPrice(v float64) string {
	return fmt.Sprintf("₹%.2f", v)
}

// TrendOf classifies v by sign.
func TrendOf(v float64) string {
	switch {
	case v > 0:
		return TrendUp
	case v < 0:
		return TrendDown
	default:
		return TrendFlat
	}
}

// NormalizeConfidence maps a confidence given either as a fraction in [0, 1]
// or as a percentage to a percentage clamped to [0, 100].
func NormalizeConfidence(c float64) float64 {
	if math.IsNaN(c) || c < 0 {
		return 0
	}
	if c <= 1 {
		c *= 100
	}
	return math.Min(c, 100)
}

// FormatConfidence renders a confidence as a whole percentage.
func FormatConfidence(c float64) string {
	return fmt.Sprintf("%.0f%%", NormalizeConfidence(c))
}
