package http

import (
	"fmt"
	"strings"

	"weather-dashboard/internal/models"
)

const (
	chartWidth   = 720
	chartHeight  = 240
	chartPadding = 20
)

// chart is an SVG polyline of the temperature series, first point on the
// left, warmest at the top.
type chart struct {
	Width  int
	Height int
	Points string
	Min    float64
	Max    float64
}

func newChart(series []models.Point) *chart {
	if len(series) == 0 {
		return nil
	}

	lo, hi := series[0].Temperature, series[0].Temperature
	for _, p := range series[1:] {
		lo = min(lo, p.Temperature)
		hi = max(hi, p.Temperature)
	}

	span := hi - lo
	if span == 0 {
		span = 1
	}
	step := float64(chartWidth-2*chartPadding) / float64(max(len(series)-1, 1))
	plotHeight := float64(chartHeight - 2*chartPadding)

	points := make([]string, len(series))
	for i, p := range series {
		x := chartPadding + float64(i)*step
		y := chartPadding + (hi-p.Temperature)/span*plotHeight
		points[i] = fmt.Sprintf("%.1f,%.1f", x, y)
	}

	return &chart{
		Width:  chartWidth,
		Height: chartHeight,
		Points: strings.Join(points, " "),
		Min:    lo,
		Max:    hi,
	}
}
