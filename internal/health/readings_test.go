package health

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoundInt(t *testing.T) {
	tests := []struct {
		in       float64
		expected int
	}{
		{1.4, 1},
		{1.5, 2},
		{2.5, 3},
		{-1.5, -2},
		{-2.5, -3},
		{99.49, 99},
	}

	for _, tt := range tests {
		result := RoundInt(tt.in)
		if result != tt.expected {
			t.Errorf("RoundInt(%v) = %d, want %d", tt.in, result, tt.expected)
		}
	}
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 7.2, Round1(7.2))
	assert.Equal(t, 7.4, Round1(7.35000001))
	assert.Equal(t, 8.3, Round1(8.25+0.05))
	assert.Equal(t, 178.6, Round1(178.5764))
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 70, ClampInt(12, 70, 300))
	assert.Equal(t, 300, ClampInt(451, 70, 300))
	assert.Equal(t, 150, ClampInt(150, 70, 300))
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("PDT", -7*3600)
	in := time.Date(2026, 3, 14, 23, 30, 0, 0, loc)

	day := DateOf(in)

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), day)
}

func TestMustParseDate(t *testing.T) {
	assert.Equal(t, time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC), MustParseDate("2025-10-20"))
	assert.Panics(t, func() { MustParseDate("10/20/2025") })
}

func TestLatestGlucose(t *testing.T) {
	var empty *HealthData
	_, ok := empty.LatestGlucose()
	assert.False(t, ok)

	data := &HealthData{Glucose: []GlucoseReading{{Value: 100}, {Value: 140}}}
	latest, ok := data.LatestGlucose()
	assert.True(t, ok)
	assert.Equal(t, 140, latest.Value)
}

func TestPatientHelpers(t *testing.T) {
	p := Patient{
		Name:          "Ava Müller",
		DiagnosisDate: MustParseDate("2016-06-08"),
	}

	assert.Equal(t, "Ava", p.FirstName())
	assert.False(t, p.HasNextAppointment())
	assert.Equal(t, 10, p.YearsSinceDiagnosis(MustParseDate("2026-10-19")))
	assert.Equal(t, 0, p.YearsSinceDiagnosis(MustParseDate("2010-01-01")))
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleDoctor.Valid())
	assert.True(t, RolePatient.Valid())
	assert.False(t, Role("nurse").Valid())
}
