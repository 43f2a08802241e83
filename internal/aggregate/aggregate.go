// Package aggregate reduces reading series into the summaries used by charts,
// tables and reports. Functions never modify their input slices.
package aggregate

import (
	"time"

	"github.com/jwulff/glucodash/internal/health"
)

// DailyPoint is the average glucose for one calendar day.
type DailyPoint struct {
	Date  time.Time `json:"date"`
	Value int       `json:"value"`
}

// Last returns the final n readings. The result shares no backing array with
// the input.
func Last[R health.Reading](readings []R, n int) []R {
	if n <= 0 {
		return []R{}
	}
	if n > len(readings) {
		n = len(readings)
	}
	out := make([]R, n)
	copy(out, readings[len(readings)-n:])
	return out
}

// DailyAverage averages the last window glucose readings by date. The window
// counts entries, not days. Dates appear in first-occurrence order.
func DailyAverage(readings []health.GlucoseReading, window int) []DailyPoint {
	recent := Last(readings, window)

	type bucket struct {
		date  time.Time
		total int
		count int
	}
	var buckets []*bucket
	index := make(map[time.Time]*bucket)

	for _, r := range recent {
		b, ok := index[r.Date]
		if !ok {
			b = &bucket{date: r.Date}
			index[r.Date] = b
			buckets = append(buckets, b)
		}
		b.total += r.Value
		b.count++
	}

	points := make([]DailyPoint, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, DailyPoint{
			Date:  b.date,
			Value: health.RoundInt(float64(b.total) / float64(b.count)),
		})
	}
	return points
}

// RecentByDate keeps readings dated on or after today minus daysBack days.
// Input order is preserved.
func RecentByDate[R health.Reading](readings []R, daysBack int, now time.Time) []R {
	cutoff := health.DateOf(now).AddDate(0, 0, -daysBack)

	out := make([]R, 0, len(readings))
	for _, r := range readings {
		if !r.Day().Before(cutoff) {
			out = append(out, r)
		}
	}
	return out
}

// Change pairs a reading with its difference from the previous reading.
// The earliest reading has no predecessor and HasDelta is false.
type Change[R health.Reading] struct {
	Reading  R       `json:"reading"`
	Delta    float64 `json:"delta"`
	HasDelta bool    `json:"hasDelta"`
}

// ChangeSeries computes per-entry deltas for a chronologically sorted series.
// Deltas are rounded to one decimal place.
func ChangeSeries[R health.Reading](readings []R) []Change[R] {
	changes := make([]Change[R], len(readings))
	for i, r := range readings {
		changes[i].Reading = r
		if i == 0 {
			continue
		}
		changes[i].Delta = health.Round1(r.Measurement() - readings[i-1].Measurement())
		changes[i].HasDelta = true
	}
	return changes
}

// Direction labels the sign of a change.
type Direction string

const (
	DirectionNone       Direction = ""
	DirectionDecreasing Direction = "decreasing"
	DirectionIncreasing Direction = "increasing"
	DirectionStable     Direction = "stable"
)

// directionArrows maps directions to display arrows.
var directionArrows = map[Direction]string{
	DirectionDecreasing: "↓",
	DirectionIncreasing: "↑",
	DirectionStable:     "→",
}

// Arrow returns a display arrow for the direction, or "" for none.
func (d Direction) Arrow() string {
	return directionArrows[d]
}

// DirectionOf returns the direction of a change. Changes without a
// predecessor have no direction.
func DirectionOf[R health.Reading](c Change[R]) Direction {
	switch {
	case !c.HasDelta:
		return DirectionNone
	case c.Delta < 0:
		return DirectionDecreasing
	case c.Delta > 0:
		return DirectionIncreasing
	default:
		return DirectionStable
	}
}

// Summary holds simple descriptive statistics over a series.
type Summary struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Summarize computes count, mean, min and max. An empty series yields a zero
// Summary.
func Summarize[R health.Reading](readings []R) Summary {
	if len(readings) == 0 {
		return Summary{}
	}

	s := Summary{
		Count: len(readings),
		Min:   readings[0].Measurement(),
		Max:   readings[0].Measurement(),
	}
	var total float64
	for _, r := range readings {
		v := r.Measurement()
		total += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = total / float64(len(readings))
	return s
}

// MeanGlucose returns the rounded average of a glucose series, or fallback
// when the series is empty.
func MeanGlucose(readings []health.GlucoseReading, fallback int) int {
	if len(readings) == 0 {
		return fallback
	}
	return health.RoundInt(Summarize(readings).Mean)
}
