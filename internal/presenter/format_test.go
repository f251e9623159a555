package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestFormatChange(t *testing.T) {
	cases := []struct {
		in   *float64
		want string
		ok   bool
	}{
		{ptr(2.5), "+2.50%", true},
		{ptr(-1.2), "-1.20%", true},
		{ptr(0), "0.00%", true},
		{ptr(12.345), "+12.35%", true},
		{nil, "", false},
	}
	for _, tc := range cases {
		got, ok := FormatChange(tc.in)
		assert.Equal(t, tc.ok, ok)
		assert.Equal(t, tc.want, got)
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "₹1234.50", FormatPrice(1234.5))
	assert.Equal(t, "₹0.00", FormatPrice(0))
}

func TestNormalizeConfidence(t *testing.T) {
	assert.InDelta(t, 68.0, NormalizeConfidence(0.68), 1e-9)
	assert.InDelta(t, 61.0, NormalizeConfidence(61), 1e-9)
	assert.InDelta(t, 100.0, NormalizeConfidence(1), 1e-9)
	assert.Equal(t, 100.0, NormalizeConfidence(250))
	assert.Equal(t, 0.0, NormalizeConfidence(-3))
	assert.Equal(t, "68%", FormatConfidence(0.68))
}

func TestTrendOf(t *testing.T) {
	assert.Equal(t, TrendUp, TrendOf(0.1))
	assert.Equal(t, TrendDown, TrendOf(-0.1))
	assert.Equal(t, TrendFlat, TrendOf(0))
}
