// Package generator produces synthetic glucose, A1C and weight histories.
//
// The shape of every series (day range, slot assignment, trend) is fully
// determined by the inputs and the injected clock. The noise is drawn from
// the injected Noise, which is wall-clock seeded in the application and
// fixed-seeded in tests.
package generator

import (
	"time"

	"github.com/jwulff/glucodash/internal/health"
)

// Glucose bounds applied after noise is added, in mg/dL.
const (
	GlucoseFloor   = 70
	GlucoseCeiling = 300
)

// Defaults used when building a patient's full history.
const (
	DefaultGlucoseDays = 90
	DefaultA1CQuarters = 8
	DefaultWeightWeeks = 26
)

// Trend step sizes per period.
const (
	a1cStepPerQuarter  = 0.15
	a1cStableJitter    = 0.1
	weightLossPerWeek  = 0.5
	weightGainPerWeek  = 0.3
	weightStableJitter = 1.0
)

// PoundsPerKilogram converts kilogram fixture baselines to pounds.
const PoundsPerKilogram = 2.20462

// KilogramsToPounds converts kg to lbs without rounding.
func KilogramsToPounds(kg float64) float64 {
	return kg * PoundsPerKilogram
}

// Generator builds reading series ending at a fixed "today".
type Generator struct {
	noise Noise
	now   time.Time
}

// New creates a generator. now anchors the most recent reading of every
// series.
func New(noise Noise, now time.Time) *Generator {
	if noise == nil {
		noise = NoNoise{}
	}
	return &Generator{noise: noise, now: now}
}

// Now returns the anchor time of the generator.
func (g *Generator) Now() time.Time {
	return g.now
}

type glucoseSlot struct {
	time     string
	baseline float64
}

// Glucose emits three readings per day for days days, oldest first. Morning
// uses the fasting baseline, afternoon the postprandial baseline and evening
// the midpoint of the two.
func (g *Generator) Glucose(fasting, postprandial, variance float64, days int) []health.GlucoseReading {
	if days <= 0 {
		return []health.GlucoseReading{}
	}

	slots := []glucoseSlot{
		{time: health.TimeMorning, baseline: fasting},
		{time: health.TimeAfternoon, baseline: postprandial},
		{time: health.TimeEvening, baseline: (fasting + postprandial) / 2},
	}

	today := health.DateOf(g.now)
	readings := make([]health.GlucoseReading, 0, days*len(slots))
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		for _, slot := range slots {
			value := health.RoundInt(slot.baseline + g.noise.Uniform(-variance/2, variance/2))
			readings = append(readings, health.GlucoseReading{
				Date:  date,
				Time:  slot.time,
				Value: health.ClampInt(value, GlucoseFloor, GlucoseCeiling),
			})
		}
	}

	return readings
}

// A1C emits one reading per quarter, oldest first, with the newest equal to
// current for every trend. Stable history jitters the older quarters only.
// Unrecognized trends are generated as stable.
func (g *Generator) A1C(current float64, trend health.A1CTrend, quarters int) []health.A1CReading {
	if quarters <= 0 {
		return []health.A1CReading{}
	}

	readings := make([]health.A1CReading, 0, quarters)
	for i := quarters - 1; i >= 0; i-- {
		var value float64
		switch trend {
		case health.A1CImproving:
			value = current + float64(i)*a1cStepPerQuarter
		case health.A1CWorsening:
			value = current - float64(i)*a1cStepPerQuarter
		default:
			value = current
			if i > 0 {
				value += g.noise.Uniform(-a1cStableJitter, a1cStableJitter)
			}
		}
		readings = append(readings, health.A1CReading{
			Date:  health.DateOf(g.now.AddDate(0, -3*i, 0)),
			Value: health.Round1(value),
		})
	}

	return readings
}

// Weight emits one reading per week, oldest first, ending at currentLbs.
// Unrecognized trends are generated as stable.
func (g *Generator) Weight(currentLbs float64, trend health.WeightTrend, weeks int) []health.WeightReading {
	if weeks <= 0 {
		return []health.WeightReading{}
	}

	readings := make([]health.WeightReading, 0, weeks)
	for i := weeks - 1; i >= 0; i-- {
		var value float64
		switch trend {
		case health.WeightLosing:
			value = currentLbs + float64(i)*weightLossPerWeek
		case health.WeightGaining:
			value = currentLbs - float64(i)*weightGainPerWeek
		default:
			value = currentLbs + g.noise.Uniform(-weightStableJitter, weightStableJitter)
		}
		readings = append(readings, health.WeightReading{
			Date:  health.DateOf(g.now.AddDate(0, 0, -7*i)),
			Value: health.Round1(value),
		})
	}

	return readings
}

// HealthData builds every series for a profile using the default lengths,
// except glucoseDays which callers may shorten.
func (g *Generator) HealthData(p health.Profile, glucoseDays int) health.HealthData {
	return health.HealthData{
		PatientID: p.PatientID,
		Glucose:   g.Glucose(p.FastingGlucose, p.PostprandialGlucose, p.GlucoseVariance, glucoseDays),
		A1C:       g.A1C(p.CurrentA1C, p.A1CTrend, DefaultA1CQuarters),
		Weight:    g.Weight(KilogramsToPounds(p.CurrentWeightKg), p.WeightTrend, DefaultWeightWeeks),
	}
}
