package chat

import (
	"strings"
	"testing"
	"time"

	"github.com/jwulff/glucodash/internal/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func a1c(values ...float64) []health.A1CReading {
	out := make([]health.A1CReading, len(values))
	for i, v := range values {
		out[i] = health.A1CReading{Value: v}
	}
	return out
}

func testContext() Context {
	return Context{
		Patient: health.Patient{
			ID:                   "P2001",
			Name:                 "Ava Müller",
			LastAppointment:      health.MustParseDate("2025-09-08"),
			AverageGlucose:       168,
			MedicationCompliance: 92,
			WeightLbs:            165,
			HeightIn:             65,
			RecentAlerts:         []string{"Glucose spike detected on Nov 3", "Missed morning medication on Nov 1"},
		},
		A1C: a1c(7.5, 7.2),
	}
}

func TestRespondA1CImprovement(t *testing.T) {
	m := NewMatcher()

	resp := m.Respond("What was the A1C trend?", testContext())

	assert.Contains(t, resp, "shown improvement over the past 8 quarters")
	assert.Contains(t, resp, "current A1C of 7.2% is moderately controlled")
	assert.Contains(t, resp, "considering adjustments to medication or lifestyle interventions")
}

func TestRespondA1CVariants(t *testing.T) {
	tests := []struct {
		name     string
		history  []health.A1CReading
		contains []string
	}{
		{"well controlled upward", a1c(6.5, 6.8), []string{"an upward trajectory", "6.8% is well-controlled", "continued adherence"}},
		{"stable attention", a1c(8.4, 8.4), []string{"stability", "8.4% is requiring attention"}},
		{"boundary seven", a1c(7.1, 7.0), []string{"improvement", "7% is moderately controlled"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			ctx.A1C = tt.history

			resp := NewMatcher().Respond("hemoglobin a1c?", ctx)

			for _, s := range tt.contains {
				assert.Contains(t, resp, s)
			}
		})
	}
}

func TestRespondA1CInsufficientHistoryFallsThrough(t *testing.T) {
	ctx := testContext()
	ctx.A1C = a1c(7.2)

	assert.Equal(t, HelpText, NewMatcher().Respond("What was the A1C trend?", ctx))

	// A later rule still gets its chance.
	resp := NewMatcher().Respond("weight trend", ctx)
	assert.Contains(t, resp, "current weight is 165 lbs (height: 65 inches)")
}

func TestRespondGlucose(t *testing.T) {
	resp := NewMatcher().Respond("Any Blood Sugar patterns?", testContext())

	assert.Contains(t, resp, "average glucose is 168 mg/dL, which is fair")
}

func TestRespondMedication(t *testing.T) {
	tests := []struct {
		compliance float64
		contains   string
	}{
		{98, "98%. This is considered excellent. The patient is doing an outstanding job"},
		{92, "92%. This is considered good. Consider discussing"},
		{78, "78%. This is considered fair."},
		{60, "60%. This is considered concerning."},
		{94.5, "94.5%. This is considered good."},
	}

	for _, tt := range tests {
		ctx := testContext()
		ctx.Patient.MedicationCompliance = tt.compliance

		resp := NewMatcher().Respond("how is medication adherence", ctx)

		assert.Contains(t, resp, tt.contains)
	}
}

func TestRespondAppointment(t *testing.T) {
	resp := NewMatcher().Respond("When was the last visit?", testContext())
	assert.Contains(t, resp, "last appointment was on 2025-09-08")

	ctx := testContext()
	ctx.Patient.LastAppointment = time.Time{}
	assert.Contains(t, NewMatcher().Respond("appointment", ctx), "was on unknown")
}

func TestRespondWeight(t *testing.T) {
	resp := NewMatcher().Respond("What is the BMI?", testContext())

	assert.Contains(t, resp, "current weight is 165 lbs (height: 65 inches)")
}

func TestRespondAlerts(t *testing.T) {
	resp := NewMatcher().Respond("any alerts?", testContext())
	assert.Contains(t, resp, "Glucose spike detected on Nov 3; Missed morning medication on Nov 1")

	ctx := testContext()
	ctx.Patient.RecentAlerts = nil
	resp = NewMatcher().Respond("any alerts?", ctx)
	assert.Equal(t, NoAlertsText, resp)
	assert.NotEmpty(t, resp)
}

func TestRespondDefaultHelp(t *testing.T) {
	assert.Equal(t, HelpText, NewMatcher().Respond("hello there", testContext()))
	assert.Equal(t, HelpText, NewMatcher().Respond("", testContext()))
}

func TestFirstMatchWins(t *testing.T) {
	// "glucose" and "medication" both match; glucose comes first.
	resp := NewMatcher().Respond("glucose and medication", testContext())
	assert.True(t, strings.HasPrefix(resp, "Analyzing the glucose patterns"))

	// "trend" belongs to the A1C rule even when asking about weight.
	resp = NewMatcher().Respond("weight trend", testContext())
	assert.True(t, strings.HasPrefix(resp, "Based on the patient's historical data"))
}

func TestCustomRules(t *testing.T) {
	m := NewMatcher(
		Rule{Name: "decline", Keywords: []string{"ping"}, Respond: func(Context) (string, bool) { return "", false }},
		Rule{Name: "pong", Keywords: []string{"ping"}, Respond: func(Context) (string, bool) { return "pong", true }},
	)

	assert.Equal(t, "pong", m.Respond("PING", Context{}))
	assert.Equal(t, HelpText, m.Respond("other", Context{}))
	require.Len(t, m.Rules(), 2)
	assert.Equal(t, "decline", m.Rules()[0].Name)
}

func TestDefaultRuleOrder(t *testing.T) {
	var names []string
	for _, r := range DefaultRules() {
		names = append(names, r.Name)
	}

	assert.Equal(t, []string{"a1c", "glucose", "medication", "appointment", "weight", "alerts"}, names)
}

func TestRuleMatches(t *testing.T) {
	rule := Rule{Keywords: []string{"blood sugar", "glucose"}}

	assert.True(t, rule.Matches("my blood sugar is high"))
	assert.False(t, rule.Matches("my blood is fine"))
}
