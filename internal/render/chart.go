package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/jwulff/glucodash/internal/aggregate"
	"github.com/jwulff/glucodash/internal/status"
)

// Chart glyphs.
const (
	GlyphPoint  = '●'
	GlyphLine   = '·'
	GlyphTarget = '┄'
)

// Data range bounds in mg/dL.
const (
	minChartRange = 30
	chartFloor    = 40
	chartCeiling  = 400
)

const axisGutter = 6 // "nnnn ┤"

// ChartConfig configures the chart rendering.
type ChartConfig struct {
	Width   int  // plot columns, excluding the axis
	Height  int  // plot rows
	Padding int  // mg/dL above and below the data range
	Targets bool // draw guide lines at the target range edges
}

// NewChartConfig creates a chart config with sensible defaults.
func NewChartConfig(width, height int) ChartConfig {
	return ChartConfig{
		Width:   width,
		Height:  height,
		Padding: 15,
		Targets: true,
	}
}

// ApplyDefaults applies default values to zero fields.
func (c *ChartConfig) ApplyDefaults() {
	if c.Width <= 0 {
		c.Width = 60
	}
	if c.Height <= 0 {
		c.Height = 12
	}
	if c.Padding == 0 {
		c.Padding = 15
	}
}

// Chart is a rendered daily-average glucose line.
type Chart struct {
	Canvas *Canvas
	Points []aggregate.DailyPoint
	Min    int // value at the bottom row
	Max    int // value at the top row
}

// RenderChart plots daily averages left to right in input order. It returns
// nil when there is nothing to plot.
func RenderChart(points []aggregate.DailyPoint, cfg ChartConfig) *Chart {
	cfg.ApplyDefaults()

	if len(points) == 0 {
		return nil
	}

	minValue, maxValue := calculateDataRange(points, cfg.Padding)
	canvas := NewCanvas(cfg.Width, cfg.Height)

	// Guides first so the data line appears on top.
	if cfg.Targets {
		for _, target := range []int{status.GlucoseLowBelow, status.GlucoseHighAbove} {
			if target >= minValue && target <= maxValue {
				color := ColorChartTarget
				canvas.DrawHLine(valueToY(target, minValue, maxValue, cfg.Height), GlyphTarget, &color)
			}
		}
	}

	colorAt := func(_, y int) *RGB {
		c := ChartGlucoseColor(yToValue(y, minValue, maxValue, cfg.Height))
		return &c
	}

	prevX, prevY := 0, 0
	for i, p := range points {
		x := indexToX(i, len(points), cfg.Width)
		y := valueToY(p.Value, minValue, maxValue, cfg.Height)
		if i > 0 {
			canvas.DrawLine(prevX, prevY, x, y, GlyphLine, colorAt)
		}
		prevX, prevY = x, y
	}

	for i, p := range points {
		color := ChartGlucoseColor(p.Value)
		canvas.Set(indexToX(i, len(points), cfg.Width), valueToY(p.Value, minValue, maxValue, cfg.Height), GlyphPoint, &color)
	}

	return &Chart{
		Canvas: canvas,
		Points: points,
		Min:    minValue,
		Max:    maxValue,
	}
}

// calculateDataRange computes the min/max value with padding.
func calculateDataRange(points []aggregate.DailyPoint, padding int) (int, int) {
	if len(points) == 0 {
		return status.GlucoseLowBelow, status.GlucoseHighAbove
	}

	dataMin := points[0].Value
	dataMax := points[0].Value
	for _, p := range points[1:] {
		if p.Value < dataMin {
			dataMin = p.Value
		}
		if p.Value > dataMax {
			dataMax = p.Value
		}
	}

	rawRange := dataMax - dataMin
	extraPadding := 0
	if rawRange < minChartRange {
		extraPadding = (minChartRange - rawRange) / 2
	}

	minValue := dataMin - padding - extraPadding
	maxValue := dataMax + padding + extraPadding

	if minValue < chartFloor {
		minValue = chartFloor
	}
	if maxValue > chartCeiling {
		maxValue = chartCeiling
	}

	return minValue, maxValue
}

// indexToX spreads n points across width columns.
func indexToX(i, n, width int) int {
	if n <= 1 {
		return 0
	}
	return int(math.Round(float64(i) / float64(n-1) * float64(width-1)))
}

// valueToY converts a value to a row; higher values sit nearer the top.
func valueToY(value, minValue, maxValue, height int) int {
	valueRange := maxValue - minValue
	if valueRange == 0 {
		return height / 2
	}

	if value < minValue {
		value = minValue
	}
	if value > maxValue {
		value = maxValue
	}

	normalized := float64(value-minValue) / float64(valueRange)
	return height - 1 - int(math.Round(normalized*float64(height-1)))
}

// yToValue converts a row back to the value it represents.
func yToValue(y, minValue, maxValue, height int) int {
	if height <= 1 {
		return minValue
	}
	normalized := float64(height-1-y) / float64(height-1)
	return minValue + int(normalized*float64(maxValue-minValue))
}

// Lines renders the chart with a labelled value axis and a date footer.
func (ch *Chart) Lines(color bool) []string {
	height := ch.Canvas.Height
	labelled := map[int]int{
		0:          ch.Max,
		height - 1: ch.Min,
	}
	for _, target := range []int{status.GlucoseLowBelow, status.GlucoseHighAbove} {
		if target > ch.Min && target < ch.Max {
			labelled[valueToY(target, ch.Min, ch.Max, height)] = target
		}
	}

	plot := ch.Canvas.Lines(color)
	out := make([]string, 0, height+2)
	for y, row := range plot {
		if v, ok := labelled[y]; ok {
			out = append(out, fmt.Sprintf("%4d ┤", v)+row)
			continue
		}
		out = append(out, "     │"+row)
	}

	out = append(out, "     └"+strings.Repeat("─", ch.Canvas.Width))

	first := ch.Points[0].Date.Format("01-02")
	last := ch.Points[len(ch.Points)-1].Date.Format("01-02")
	footer := strings.Repeat(" ", axisGutter) + first
	if len(ch.Points) > 1 {
		gap := ch.Canvas.Width - len(first) - len(last)
		if gap < 1 {
			gap = 1
		}
		footer += strings.Repeat(" ", gap) + last
	}
	out = append(out, footer)

	return out
}

// String renders the chart without color.
func (ch *Chart) String() string {
	return strings.Join(ch.Lines(false), "\n")
}
