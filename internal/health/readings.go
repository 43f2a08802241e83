// Package health holds the reading and patient record types shared by the
// generator, aggregation and classification packages.
package health

import (
	"math"
	"time"
)

// DateLayout is the calendar-day layout used for reading dates.
const DateLayout = "2006-01-02"

// Times of day used for the three daily glucose readings.
const (
	TimeMorning   = "08:00"
	TimeAfternoon = "13:00"
	TimeEvening   = "20:00"
)

// Reading is implemented by every measurement type.
type Reading interface {
	GlucoseReading | A1CReading | WeightReading
	Day() time.Time
	Measurement() float64
}

// GlucoseReading is a single blood glucose measurement in mg/dL.
type GlucoseReading struct {
	Date  time.Time `json:"date"`
	Time  string    `json:"time,omitempty"` // Optional time-of-day label
	Value int       `json:"value"`
}

// Day returns the calendar day of the reading.
func (r GlucoseReading) Day() time.Time { return r.Date }

// Measurement returns the reading value as a float.
func (r GlucoseReading) Measurement() float64 { return float64(r.Value) }

// A1CReading is a glycated hemoglobin percentage, one decimal place.
type A1CReading struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

func (r A1CReading) Day() time.Time { return r.Date }
func (r A1CReading) Measurement() float64 { return r.Value }

// WeightReading is a body weight in pounds, one decimal place.
type WeightReading struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

func (r WeightReading) Day() time.Time { return r.Date }
func (r WeightReading) Measurement() float64 { return r.Value }

// HealthData groups the generated reading collections for one patient.
// Every collection is ordered oldest to newest.
type HealthData struct {
	PatientID string           `json:"patientId"`
	Glucose   []GlucoseReading `json:"glucoseReadings"`
	A1C       []A1CReading     `json:"a1cReadings"`
	Weight    []WeightReading  `json:"weightReadings"`
}

// LatestGlucose returns the most recent glucose reading.
func (h *HealthData) LatestGlucose() (GlucoseReading, bool) {
	if h == nil || len(h.Glucose) == 0 {
		return GlucoseReading{}, false
	}
	return h.Glucose[len(h.Glucose)-1], true
}

// DateOf truncates t to its calendar day, expressed as UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MustParseDate parses a YYYY-MM-DD literal. It panics on malformed input and
// is meant for fixture tables only.
func MustParseDate(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// RoundInt rounds half away from zero to the nearest integer.
func RoundInt(v float64) int {
	return int(math.Round(v))
}

// Round1 rounds half away from zero to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
