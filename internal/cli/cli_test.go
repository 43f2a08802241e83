package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwulff/glucodash/internal/aggregate"
	"github.com/jwulff/glucodash/internal/chat"
	"github.com/jwulff/glucodash/internal/dataset"
	"github.com/jwulff/glucodash/internal/fixtures"
	"github.com/jwulff/glucodash/internal/generator"
	"github.com/jwulff/glucodash/internal/health"
	"github.com/jwulff/glucodash/internal/report"
)

var testNow = time.Date(2025, 10, 19, 14, 30, 0, 0, time.UTC)

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) string {
	t.Helper()
	formatFlag, noColor, dbPath = "text", false, ""

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	require.NoError(t, RootCmd.Execute())
	return out.String()
}

func TestCommandFlow(t *testing.T) {
	t.Setenv("GLUCODASH_SEED", "42")
	t.Setenv("GLUCODASH_DB", filepath.Join(t.TempDir(), "glucodash.db"))

	assert.Contains(t, execute(t, "whoami"), "Not logged in")

	assert.Contains(t, execute(t, "login"), "Logged in as Dr. Sarah Smith (doctor)")
	assert.Contains(t, execute(t, "whoami"), "Dr. Sarah Smith (doctor) id=doctor-1")

	roster := execute(t, "patients", "--search", "müller")
	assert.Contains(t, roster, "P2001")
	assert.Contains(t, roster, "P2007")
	assert.NotContains(t, roster, "P2000")

	overview := execute(t, "overview")
	assert.Contains(t, overview, "Total patients:      20")

	assert.Equal(t, "No patient selected\n", execute(t, "use"))
	assert.Contains(t, execute(t, "use", "P2009"), "Selected Vivaan Khan (P2009)")
	assert.Equal(t, "P2009\n", execute(t, "use"))

	// Commands fall back to the selected patient.
	appts := execute(t, "appointments")
	assert.Contains(t, appts, "A030")
	assert.Contains(t, appts, "A026")

	var meds []health.Medication
	require.NoError(t, json.Unmarshal([]byte(execute(t, "--format", "json", "medications", "P2004")), &meds))
	require.Len(t, meds, 3)
	assert.Equal(t, "Lisinopril", meds[2].Name)

	assert.Contains(t, execute(t, "snapshot", "save", "P2001"), "Stored 270 glucose, 8 A1C and 26 weight readings for P2001")
	assert.Equal(t, "P2001\n", execute(t, "snapshot", "list"))
	assert.Contains(t, execute(t, "snapshot", "show", "P2001"), "Stored readings for Ava Müller (P2001)")

	dir := t.TempDir()
	wrote := execute(t, "export", "P2001", "--out", dir)
	require.True(t, strings.HasPrefix(wrote, "Wrote "))
	path := strings.TrimSpace(strings.TrimPrefix(wrote, "Wrote "))
	assert.Equal(t, dir, filepath.Dir(path))
	_, err := os.Stat(path)
	assert.NoError(t, err)

	assert.Contains(t, execute(t, "chat", "P2001", "--ask", "any alerts?"), "Recent alerts for this patient include: ")

	assert.Equal(t, "Logged out\n", execute(t, "logout"))
	assert.Contains(t, execute(t, "whoami"), "Not logged in")

	assert.Contains(t, execute(t, "login", "--role", "patient", "--patient", "P2004"), "Logged in as Riya Sharma (patient)")
	assert.Contains(t, execute(t, "health", "--days", "2"), "Riya Sharma (P2004)")
}

func TestStatusCommand(t *testing.T) {
	assert.Equal(t, "High (10.0 mmol/L, lab range High)\n", execute(t, "status", "glucose", "181"))
	assert.Equal(t, "Fair (Diabetic - Fair Control)\n", execute(t, "status", "a1c", "7.5"))
	assert.Equal(t, "Poor\n", execute(t, "status", "compliance", "74.9"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		metric string
		value  float64
		status string
		detail string
	}{
		{"glucose", 69, "Low", "3.8 mmol/L, lab range Low"},
		{"glucose", 69.6, "Low", "3.9 mmol/L, lab range Low"},
		{"glucose", 180.4, "High", "10.0 mmol/L, lab range High"},
		{"glucose", 70, "Normal", "3.9 mmol/L, lab range Normal"},
		{"glucose", 150, "Normal", "8.3 mmol/L, lab range Elevated"},
		{"a1c", 6.9, "Good", "Diabetic - Good Control"},
		{"a1c", 8.0, "Needs Attention", "Diabetic - Poor Control"},
		{"bmi", 29.9, "Overweight", "Overweight"},
		{"bmi", 36, "Obese", "Obese (Class II)"},
		{"compliance", 95, "Excellent", ""},
	}

	for _, tt := range tests {
		t.Run(tt.metric, func(t *testing.T) {
			c, err := classify(tt.metric, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.status, c.Status)
			assert.Equal(t, tt.detail, c.Detail)
		})
	}

	_, err := classify("ketones", 1)
	assert.ErrorContains(t, err, `"ketones"`)
}

func TestFormatChange(t *testing.T) {
	a1c := []health.A1CReading{{Value: 7.5}, {Value: 7.2}, {Value: 7.2}, {Value: 7.6}}
	changes := make([]string, 0, len(a1c))
	for _, c := range aggregate.ChangeSeries(a1c) {
		changes = append(changes, formatChange(c, "%"))
	}
	assert.Equal(t, []string{"-", "↓ -0.3%", "→ +0.0%", "↑ +0.4%"}, changes)
}

func TestExportPath(t *testing.T) {
	p := health.Patient{Name: "Ava Müller"}
	name := report.FileName(p, testNow)

	assert.Equal(t, name, exportPath("", p, testNow))
	assert.Equal(t, "out/record.xlsx", exportPath("out/record.xlsx", p, testNow))
	assert.Equal(t, filepath.Join("reports", name), exportPath("reports", p, testNow))
}

func TestParseDay(t *testing.T) {
	fallback := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	got, err := parseDay("", fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, got)

	got, err = parseDay("2025-10-19", fallback)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC), got)

	_, err = parseDay("19/10/2025", fallback)
	assert.ErrorContains(t, err, "19/10/2025")
}

func testDataset() *dataset.Dataset {
	return dataset.New(fixtures.Default(), generator.New(generator.NoNoise{}, testNow))
}

func TestReportInput(t *testing.T) {
	d := testDataset()

	p, err := d.Patient("P2001")
	require.NoError(t, err)
	in, err := reportInput(d, p, "notes", testNow)
	require.NoError(t, err)
	require.NotNil(t, in.LatestTranscript)
	assert.Equal(t, "t-P2001-1", in.LatestTranscript.ID)
	assert.Equal(t, "notes", in.Notes)
	assert.NotEmpty(t, in.Health.Glucose)

	p, err = d.Patient("P2000")
	require.NoError(t, err)
	in, err = reportInput(d, p, "", testNow)
	require.NoError(t, err)
	assert.Nil(t, in.LatestTranscript)
	assert.Empty(t, in.Medications)
}

func TestPlayTranscript(t *testing.T) {
	tr, err := testDataset().Transcript("t-P2001-1")
	require.NoError(t, err)
	require.Greater(t, len(tr.Lines), 2)

	t.Run("plays every line", func(t *testing.T) {
		ticks := make(chan time.Time, len(tr.Lines))
		for range tr.Lines {
			ticks <- testNow
		}

		var out bytes.Buffer
		assert.True(t, playTranscript(&out, tr, ticks, make(chan os.Signal)))
		assert.Equal(t, len(tr.Lines), strings.Count(out.String(), "\n"))
		assert.True(t, strings.HasPrefix(out.String(), "[09:00:00] doctor:"))
	})

	t.Run("stops on signal", func(t *testing.T) {
		ticks := make(chan time.Time, 1)
		ticks <- testNow
		stop := make(chan os.Signal, 1)
		stop <- os.Interrupt

		var out bytes.Buffer
		assert.False(t, playTranscript(&out, tr, ticks, stop))
		lines := strings.Count(out.String(), "\n")
		assert.GreaterOrEqual(t, lines, 1)
		assert.LessOrEqual(t, lines, 2)
	})
}

func TestConverse(t *testing.T) {
	formatFlag = "text"
	d := testDataset()
	ctx, err := d.ChatContext("P2001")
	require.NoError(t, err)
	session, err := chat.NewSession(nil, ctx, testNow)
	require.NoError(t, err)

	in := strings.NewReader("what is the a1c trend?\n\n   \nhow is the weight?\nexit\nnever asked\n")
	var out bytes.Buffer
	require.NoError(t, converse(context.Background(), in, &out, session, 0))

	msgs := session.Messages()
	require.Len(t, msgs, 5)
	assert.Equal(t, health.ChatUser, msgs[1].Role)
	assert.Equal(t, "what is the a1c trend?", msgs[1].Text)
	assert.Equal(t, "how is the weight?", msgs[3].Text)
	assert.Contains(t, out.String(), "assistant: Hello!")
	assert.NotContains(t, out.String(), "never asked")
}

func TestAskHonoursCancellation(t *testing.T) {
	ctx, err := testDataset().ChatContext("P2001")
	require.NoError(t, err)
	session, err := chat.NewSession(nil, ctx, testNow)
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = ask(cancelled, session, "alerts", time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, session.Messages(), 1)
}
