// Package fixtures provides the static demo data set: the patient roster with
// generator profiles, prescriptions, appointments and transcripts.
//
// Default builds a fresh Set on every call; callers own the result and tests
// may substitute their own Set.
package fixtures

import (
	"github.com/jwulff/glucodash/internal/health"
)

// Set is a complete read-only fixture collection.
type Set struct {
	Doctor        health.User
	Patients      []health.Patient
	Profiles      []health.Profile
	Medications   []health.Medication
	Prescriptions map[string][]string // patient id -> medication ids
	Appointments  []health.Appointment
	Transcripts   []health.Transcript
}

// Default returns the demo data set.
func Default() Set {
	patients, profiles := roster()
	return Set{
		Doctor: health.User{
			ID:    "doctor-1",
			Name:  "Dr. Sarah Smith",
			Role:  health.RoleDoctor,
			Email: "dr.smith@hospital.com",
		},
		Patients:      patients,
		Profiles:      profiles,
		Medications:   medications(),
		Prescriptions: prescriptions(),
		Appointments:  appointments(),
		Transcripts:   transcripts(),
	}
}
