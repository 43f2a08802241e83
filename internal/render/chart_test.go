package render

import (
	"strings"
	"testing"
	"time"

	"github.com/jwulff/glucodash/internal/aggregate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func days(values ...int) []aggregate.DailyPoint {
	start := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	points := make([]aggregate.DailyPoint, len(values))
	for i, v := range values {
		points[i] = aggregate.DailyPoint{Date: start.AddDate(0, 0, i), Value: v}
	}
	return points
}

func TestNewChartConfig(t *testing.T) {
	cfg := NewChartConfig(40, 10)

	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 10, cfg.Height)
	assert.Equal(t, 15, cfg.Padding)
	assert.True(t, cfg.Targets)
}

func TestApplyDefaults(t *testing.T) {
	var cfg ChartConfig
	cfg.ApplyDefaults()

	assert.Equal(t, 60, cfg.Width)
	assert.Equal(t, 12, cfg.Height)
	assert.Equal(t, 15, cfg.Padding)
}

func TestRenderChartEmptyPoints(t *testing.T) {
	assert.Nil(t, RenderChart(nil, NewChartConfig(10, 5)))
	assert.Nil(t, RenderChart([]aggregate.DailyPoint{}, NewChartConfig(10, 5)))
}

func TestRenderChartSinglePoint(t *testing.T) {
	ch := RenderChart(days(120), NewChartConfig(10, 5))
	require.NotNil(t, ch)

	found := false
	for y := 0; y < ch.Canvas.Height; y++ {
		if cell, _ := ch.Canvas.Get(0, y); cell.Glyph == GlyphPoint {
			found = true
		}
	}
	assert.True(t, found, "point should be drawn in the first column")
}

func TestRenderChartMultiplePoints(t *testing.T) {
	points := days(100, 150, 200, 130)
	ch := RenderChart(points, NewChartConfig(31, 11))
	require.NotNil(t, ch)

	assert.Equal(t, 100-15, ch.Min)
	assert.Equal(t, 200+15, ch.Max)

	// Each point sits in its spread column at its scaled row.
	for i, x := range []int{0, 10, 20, 30} {
		y := valueToY(points[i].Value, ch.Min, ch.Max, 11)
		cell, _ := ch.Canvas.Get(x, y)
		assert.Equal(t, GlyphPoint, cell.Glyph, "point %d", i)
	}
	high, _ := ch.Canvas.Get(20, 1)
	assert.Equal(t, GlyphPoint, high.Glyph)

	last := false
	for y := 0; y < ch.Canvas.Height; y++ {
		if cell, _ := ch.Canvas.Get(30, y); cell.Glyph == GlyphPoint {
			last = true
		}
	}
	assert.True(t, last)

	// Segments between points are filled.
	assert.Contains(t, ch.Canvas.String(), string(GlyphLine))
}

func TestRenderChartTargets(t *testing.T) {
	ch := RenderChart(days(60, 200), NewChartConfig(20, 10))
	require.NotNil(t, ch)
	assert.Contains(t, ch.Canvas.String(), string(GlyphTarget))

	cfg := NewChartConfig(20, 10)
	cfg.Targets = false
	ch = RenderChart(days(60, 200), cfg)
	assert.NotContains(t, ch.Canvas.String(), string(GlyphTarget))
}

func TestCalculateDataRange(t *testing.T) {
	tests := []struct {
		name     string
		points   []aggregate.DailyPoint
		padding  int
		min, max int
	}{
		{"empty", nil, 15, 70, 180},
		{"wide range", days(100, 200), 15, 85, 215},
		{"flat widened to thirty", days(120, 120), 15, 90, 150},
		{"clamped", days(45, 395), 15, 40, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := calculateDataRange(tt.points, tt.padding)
			assert.Equal(t, tt.min, lo)
			assert.Equal(t, tt.max, hi)
		})
	}
}

func TestValueToY(t *testing.T) {
	assert.Equal(t, 9, valueToY(100, 100, 200, 10))
	assert.Equal(t, 0, valueToY(200, 100, 200, 10))
	assert.Equal(t, 0, valueToY(500, 100, 200, 10))
	assert.Equal(t, 9, valueToY(0, 100, 200, 10))
	assert.Equal(t, 5, valueToY(150, 150, 150, 10))
}

func TestYToValue(t *testing.T) {
	assert.Equal(t, 200, yToValue(0, 100, 200, 11))
	assert.Equal(t, 100, yToValue(10, 100, 200, 11))
	assert.Equal(t, 100, yToValue(3, 100, 200, 1))
}

func TestIndexToX(t *testing.T) {
	assert.Equal(t, 0, indexToX(0, 1, 40))
	assert.Equal(t, 0, indexToX(0, 5, 41))
	assert.Equal(t, 20, indexToX(2, 5, 41))
	assert.Equal(t, 40, indexToX(4, 5, 41))
}

func TestChartLines(t *testing.T) {
	ch := RenderChart(days(100, 200), NewChartConfig(20, 8))
	require.NotNil(t, ch)

	lines := ch.Lines(false)
	require.Len(t, lines, 10)

	assert.True(t, strings.HasPrefix(lines[0], " 215 ┤"))
	assert.True(t, strings.HasPrefix(lines[7], "  85 ┤"))
	assert.True(t, strings.HasPrefix(lines[8], "     └"))
	assert.Contains(t, lines[9], "10-01")
	assert.True(t, strings.HasSuffix(lines[9], "10-02"))

	// The 180 guide gets its own label.
	assert.Contains(t, ch.String(), " 180 ┤")
}
