package fixtures

import (
	"fmt"
	"testing"
	"time"

	"github.com/jwulff/glucodash/internal/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRoster(t *testing.T) {
	set := Default()

	require.Len(t, set.Patients, 20)
	require.Len(t, set.Profiles, 20)

	for i, p := range set.Patients {
		id := fmt.Sprintf("P%d", 2000+i)
		assert.Equal(t, id, p.ID)
		assert.Equal(t, id, set.Profiles[i].PatientID)
		assert.NotEmpty(t, p.Name)
		assert.Equal(t, set.Profiles[i].CurrentA1C, p.LatestA1C)
	}
}

func TestDefaultPatientDerivedFields(t *testing.T) {
	p := Default().Patients[1]

	assert.Equal(t, "Ava Müller", p.Name)
	assert.Equal(t, 179, p.AverageGlucose) // (138.7 + 220.0) / 2 = 179.35
	assert.Equal(t, 304.9, p.WeightLbs)    // 138.3 kg
	assert.Equal(t, health.MustParseDate("2025-12-08"), p.NextAppointment)
	assert.Len(t, p.RecentAlerts, 3)
}

func TestPrescriptionsReferenceKnownMedications(t *testing.T) {
	set := Default()

	known := map[string]bool{}
	for _, m := range set.Medications {
		known[m.ID] = true
	}
	require.Len(t, known, 32)

	for patientID, ids := range set.Prescriptions {
		for _, id := range ids {
			assert.True(t, known[id], "%s references unknown %s", patientID, id)
		}
	}
	assert.Empty(t, set.Prescriptions["P2000"])
}

func TestAppointments(t *testing.T) {
	appts := Default().Appointments
	require.Len(t, appts, 56)

	first := appts[0]
	assert.Equal(t, "A001", first.ID)
	assert.Equal(t, time.Date(2025, 8, 19, 9, 0, 0, 0, time.UTC), first.Start)
	assert.Equal(t, 30*time.Minute, first.Duration)
	assert.Equal(t, health.AppointmentCompleted, first.Status)
}

func TestTranscripts(t *testing.T) {
	ts := Default().Transcripts
	require.Len(t, ts, 3)

	tr := ts[0]
	assert.Equal(t, "t-P2001-1", tr.ID)
	assert.Equal(t, 28*time.Minute, tr.Duration)
	require.NotEmpty(t, tr.Lines)
	assert.Equal(t, time.Date(2025, 6, 8, 9, 0, 0, 0, time.UTC), tr.Lines[0].At)
	assert.Equal(t, time.Date(2025, 6, 8, 9, 0, 30, 0, time.UTC), tr.Lines[1].At)

	for _, tr := range ts {
		for i := 1; i < len(tr.Lines); i++ {
			assert.False(t, tr.Lines[i].At.Before(tr.Lines[i-1].At), "%s line %d", tr.ID, i)
		}
	}
}

func TestDefaultReturnsFreshCopies(t *testing.T) {
	a := Default()
	a.Patients[0].Name = "changed"
	a.Prescriptions["P2001"][0] = "M999"

	b := Default()
	assert.Equal(t, "Mateo Gonzalez", b.Patients[0].Name)
	assert.Equal(t, "M001", b.Prescriptions["P2001"][0])
}
