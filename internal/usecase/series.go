package usecase

import (
	"Nivesh/internal/domain/models"
	"Nivesh/pkg/util"
)

// ProjectSeries turns a price history into chart points. Input order is kept
// as delivered; the supplier guarantees ascending unique dates. A date that
// cannot be parsed keeps its raw text as the label and a zero sort key.
func ProjectSeries(points []models.PricePoint) []models.ChartPoint {
	out := make([]models.ChartPoint, 0, len(points))
	for _, p := range points {
		cp := models.ChartPoint{Label: p.Date, Value: p.Close}
		if t, ok := util.ParseDate(p.Date); ok {
			cp.Label = util.FormatShortDate(t)
			cp.SortKey = t
		}
		out = append(out, cp)
	}
	return out
}

// PercentChange returns (to - from) / from * 100. It reports false when from
// is zero.
func PercentChange(from, to float64) (float64, bool) {
	if from == 0 {
		return 0, false
	}
	return (to - from) / from * 100, true
}
