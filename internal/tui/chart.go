package tui

import (
	"Nivesh/internal/domain/models"
	"Nivesh/internal/presenter"

	"github.com/guptarohit/asciigraph"
)

const chartHeight = 10

// renderChart plots the closes of points. The caption spans the first and
// last label.
func renderChart(points []models.ChartPoint, width int) string {
	if len(points) == 0 {
		return ""
	}
	if len(points) == 1 {
		return points[0].Label + "  " + presenter.FormatPrice(points[0].Value)
	}

	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}
	opts := []asciigraph.Option{
		asciigraph.Height(chartHeight),
		asciigraph.Precision(2),
		asciigraph.Caption(points[0].Label + " to " + points[len(points)-1].Label),
	}
	// Leave room for the y axis labels.
	if w := width - 14; w > 10 {
		opts = append(opts, asciigraph.Width(w))
	}
	return asciigraph.Plot(values, opts...)
}
