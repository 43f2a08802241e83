// Package chat answers free-text questions about a patient from an ordered
// table of keyword rules.
package chat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jwulff/glucodash/internal/health"
	"github.com/jwulff/glucodash/internal/status"
)

// HelpText is returned when no rule answers a query.
const HelpText = `I can help you analyze this patient's diabetes data. You can ask me about:
- A1C trends and hemoglobin levels
- Glucose patterns and blood sugar levels
- Medication compliance and adherence
- Recent appointments and visit summaries
- Weight trends and BMI
- Recent alerts or concerns
- General recommendations

What specific aspect would you like to know more about?`

// NoAlertsText is returned by the alert rule when the patient has no alerts.
const NoAlertsText = "There are no recent alerts for this patient. Their diabetes management appears to be stable and well-controlled."

// Context is the patient data a response may draw on.
type Context struct {
	Patient health.Patient
	A1C     []health.A1CReading // Oldest to newest
}

// Rule answers queries containing any of its keywords. Respond may decline
// by returning false, in which case matching continues with the next rule.
type Rule struct {
	Name     string
	Keywords []string
	Respond  func(Context) (string, bool)
}

// Matches reports whether a lower-cased query contains any keyword.
func (r Rule) Matches(lowerQuery string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lowerQuery, kw) {
			return true
		}
	}
	return false
}

// Matcher evaluates rules in order; the first rule that matches and answers
// wins.
type Matcher struct {
	rules []Rule
}

// NewMatcher creates a matcher. With no rules it uses DefaultRules.
func NewMatcher(rules ...Rule) *Matcher {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Matcher{rules: rules}
}

// Rules returns the matcher's rules in evaluation order.
func (m *Matcher) Rules() []Rule {
	out := make([]Rule, len(m.rules))
	copy(out, m.rules)
	return out
}

// Respond returns the answer to query, or HelpText when no rule answers.
func (m *Matcher) Respond(query string, ctx Context) string {
	lower := strings.ToLower(query)
	for _, rule := range m.rules {
		if !rule.Matches(lower) {
			continue
		}
		if text, ok := rule.Respond(ctx); ok {
			return text
		}
	}
	return HelpText
}

// DefaultRules returns the standard rule table.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "a1c", Keywords: []string{"a1c", "trend"}, Respond: respondA1C},
		{Name: "glucose", Keywords: []string{"glucose", "blood sugar", "pattern"}, Respond: respondGlucose},
		{Name: "medication", Keywords: []string{"medication", "compliance", "adherence"}, Respond: respondMedication},
		{Name: "appointment", Keywords: []string{"appointment", "visit"}, Respond: respondAppointment},
		{Name: "weight", Keywords: []string{"weight", "bmi"}, Respond: respondWeight},
		{Name: "alerts", Keywords: []string{"alert", "warning", "concern"}, Respond: respondAlerts},
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// a1cHistoryQuarters is the history window named in the A1C answer.
const a1cHistoryQuarters = 8

func respondA1C(ctx Context) (string, bool) {
	if len(ctx.A1C) < 2 {
		return "", false
	}

	current := ctx.A1C[len(ctx.A1C)-1].Value
	previous := ctx.A1C[len(ctx.A1C)-2].Value

	trend := "stability"
	switch {
	case current < previous:
		trend = "improvement"
	case current > previous:
		trend = "an upward trajectory"
	}

	var control string
	switch status.A1C(current) {
	case status.A1CGood:
		control = "well-controlled"
	case status.A1CFair:
		control = "moderately controlled"
	default:
		control = "requiring attention"
	}

	recommendation := "considering adjustments to medication or lifestyle interventions"
	if status.A1C(current) == status.A1CGood {
		recommendation = "continued adherence to the current treatment plan"
	}

	return fmt.Sprintf(
		"Based on the patient's historical data, their A1C has shown %s over the past %d quarters. Their current A1C of %s%% is %s. The trend suggests %s.",
		trend, a1cHistoryQuarters, formatNumber(current), control, recommendation,
	), true
}

func respondGlucose(ctx Context) (string, bool) {
	avg := ctx.Patient.AverageGlucose
	return fmt.Sprintf(
		"Analyzing the glucose patterns over the last 90 days, I've observed that the patient's average glucose is %d mg/dL, which is %s. Peak values typically occur in the late afternoon (13:00-15:00), and the lowest readings are generally seen in the morning before breakfast. The patient should continue monitoring regularly and maintain consistent meal timing.",
		avg, status.AverageGlucoseRating(avg),
	), true
}

func respondMedication(ctx Context) (string, bool) {
	compliance := ctx.Patient.MedicationCompliance

	var rating, recommendation string
	switch status.Compliance(compliance) {
	case status.ComplianceExcellent:
		rating = "excellent"
		recommendation = "The patient is doing an outstanding job maintaining their medication schedule."
	case status.ComplianceGood:
		rating = "good"
		recommendation = "Consider discussing any barriers to medication adherence to improve consistency."
	case status.ComplianceFair:
		rating = "fair"
		recommendation = "It would be beneficial to explore challenges the patient faces with medication timing and develop strategies to improve adherence."
	default:
		rating = "concerning"
		recommendation = "It would be beneficial to explore challenges the patient faces with medication timing and develop strategies to improve adherence."
	}

	return fmt.Sprintf("The patient's medication compliance rate is %s%%. This is considered %s. %s",
		formatNumber(compliance), rating, recommendation), true
}

func respondAppointment(ctx Context) (string, bool) {
	last := "unknown"
	if !ctx.Patient.LastAppointment.IsZero() {
		last = ctx.Patient.LastAppointment.Format(health.DateLayout)
	}
	return fmt.Sprintf(
		"The patient's last appointment was on %s. During this visit, we discussed their glucose management, medication adherence, and lifestyle factors. The patient has been making good progress with dietary changes and regular physical activity.",
		last,
	), true
}

func respondWeight(ctx Context) (string, bool) {
	return fmt.Sprintf(
		"The patient's current weight is %s lbs (height: %s inches). Over the past 6 months, their weight has been relatively stable with minor fluctuations. Maintaining a healthy weight positively impacts their diabetes management and insulin sensitivity.",
		formatNumber(ctx.Patient.WeightLbs), formatNumber(ctx.Patient.HeightIn),
	), true
}

func respondAlerts(ctx Context) (string, bool) {
	if len(ctx.Patient.RecentAlerts) == 0 {
		return NoAlertsText, true
	}
	return fmt.Sprintf(
		"Recent alerts for this patient include: %s. These should be addressed during the next appointment to ensure optimal diabetes management.",
		strings.Join(ctx.Patient.RecentAlerts, "; "),
	), true
}
