package render

import (
	"fmt"

	"github.com/jwulff/glucodash/internal/status"
)

// Status colors.
var (
	ColorGray = NewRGB(128, 128, 128)

	// Glucose colors follow the usual CGM scheme
	ColorGlucoseUrgentLow  = NewRGB(255, 0, 0)     // Red - below 55
	ColorGlucoseLow        = NewRGB(255, 100, 100) // Light red - 55-70
	ColorGlucoseNormal     = NewRGB(0, 255, 0)     // Green - 70-180
	ColorGlucoseHigh       = NewRGB(255, 255, 0)   // Yellow - 180-250
	ColorGlucoseUrgentHigh = NewRGB(255, 165, 0)   // Orange - above 250

	ColorGood      = NewRGB(0, 200, 0)
	ColorFair      = NewRGB(255, 200, 0)
	ColorAttention = NewRGB(255, 80, 80)

	ColorChartTarget = NewRGB(0, 100, 0)
)

// Urgent glucose thresholds, in mg/dL.
const (
	UrgentLow  = 55
	UrgentHigh = 250
)

// TargetCenter is the glucose value drawn in pure green.
const TargetCenter = 120

// GlucoseColor returns the color for a glucose value.
func GlucoseColor(mgdl int) RGB {
	switch {
	case mgdl < UrgentLow:
		return ColorGlucoseUrgentLow
	case status.Glucose(mgdl) == status.GlucoseLow:
		return ColorGlucoseLow
	case status.Glucose(mgdl) == status.GlucoseNormal:
		return ColorGlucoseNormal
	case mgdl <= UrgentHigh:
		return ColorGlucoseHigh
	default:
		return ColorGlucoseUrgentHigh
	}
}

// ChartGlucoseColor is GlucoseColor with a gradient inside the normal range,
// shading toward the low and high colors near the edges.
func ChartGlucoseColor(mgdl int) RGB {
	if status.Glucose(mgdl) != status.GlucoseNormal {
		return GlucoseColor(mgdl)
	}

	if mgdl <= TargetCenter {
		t := float64(mgdl-status.GlucoseLowBelow) / float64(TargetCenter-status.GlucoseLowBelow)
		edge := LerpColor(ColorGlucoseLow, ColorGlucoseNormal, 0.3)
		return LerpColor(edge, ColorGlucoseNormal, t)
	}

	t := float64(mgdl-TargetCenter) / float64(status.GlucoseHighAbove-TargetCenter)
	edge := LerpColor(ColorGlucoseNormal, ColorGlucoseHigh, 0.7)
	return LerpColor(ColorGlucoseNormal, edge, t)
}

// A1CColor maps an A1C status to a badge color.
func A1CColor(s status.A1CStatus) RGB {
	switch s {
	case status.A1CGood:
		return ColorGood
	case status.A1CFair:
		return ColorFair
	default:
		return ColorAttention
	}
}

// ComplianceColor maps a compliance status to a badge color.
func ComplianceColor(s status.ComplianceStatus) RGB {
	switch s {
	case status.ComplianceExcellent, status.ComplianceGood:
		return ColorGood
	case status.ComplianceFair:
		return ColorFair
	default:
		return ColorAttention
	}
}

// LerpColor linearly interpolates between two colors.
func LerpColor(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return NewRGB(
		uint8(float64(a.R)+t*float64(int(b.R)-int(a.R))),
		uint8(float64(a.G)+t*float64(int(b.G)-int(a.G))),
		uint8(float64(a.B)+t*float64(int(b.B)-int(a.B))),
	)
}

// Paint wraps text in a 24-bit ANSI foreground color.
func Paint(text string, c RGB) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", c.R, c.G, c.B, text)
}

// Badge renders "[label]", painted when color is set.
func Badge(label string, c RGB, color bool) string {
	text := "[" + label + "]"
	if !color {
		return text
	}
	return Paint(text, c)
}
