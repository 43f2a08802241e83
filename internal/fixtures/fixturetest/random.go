// Package fixturetest builds randomized fixture sets for tests.
package fixturetest

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jaswdr/faker"

	"github.com/jwulff/glucodash/internal/fixtures"
	"github.com/jwulff/glucodash/internal/health"
)

// DefaultSeed is the seed RandomSet uses.
const DefaultSeed = 20261019

// Builder draws random fixtures from its own seeded faker. A Builder is not
// safe for concurrent use; parallel tests each create their own.
type Builder struct {
	Faker faker.Faker
}

// New returns a builder whose output is fixed by seed.
func New(seed int64) *Builder {
	return &Builder{Faker: faker.NewWithSeed(rand.NewSource(seed))}
}

// RandomSet builds a set from a fresh DefaultSeed builder.
func RandomSet(n int, now time.Time) fixtures.Set {
	return New(DefaultSeed).Set(n, now)
}

func (b *Builder) Patient(id string) health.Patient {
	f := b.Faker
	return health.Patient{
		ID:                   id,
		Name:                 f.Person().Name(),
		Age:                  f.IntBetween(18, 90),
		DiagnosisDate:        health.DateOf(f.Time().TimeBetween(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))),
		DiabetesType:         f.RandomStringElement([]string{"Type 1", "Type 2", "Prediabetes"}),
		LastAppointment:      health.MustParseDate("2025-09-01"),
		LatestA1C:            f.Float64(2, 5, 11),
		AverageGlucose:       f.IntBetween(90, 250),
		MedicationCompliance: float64(f.IntBetween(40, 100)),
		WeightLbs:            f.Float64(1, 110, 300),
		HeightIn:             float64(f.IntBetween(58, 76)),
		Email:                f.Internet().Email(),
		Phone:                f.Phone().Number(),
	}
}

func (b *Builder) Profile(p health.Patient) health.Profile {
	f := b.Faker
	fasting := f.Float64(1, 80, 170)
	return health.Profile{
		PatientID:           p.ID,
		FastingGlucose:      fasting,
		PostprandialGlucose: fasting + f.Float64(1, 20, 90),
		GlucoseVariance:     float64(f.IntBetween(10, 40)),
		CurrentA1C:          p.LatestA1C,
		A1CTrend:            health.A1CTrend(f.RandomStringElement([]string{"improving", "stable", "worsening"})),
		CurrentWeightKg:     p.WeightLbs / 2.20462,
		WeightTrend:         health.WeightTrend(f.RandomStringElement([]string{"losing", "stable", "gaining"})),
	}
}

// Set returns n patients with ids T0000, T0001, ... and matching
// profiles. Every patient gets one completed and one scheduled appointment
// around now; the first patient also gets a medication and a transcript.
func (b *Builder) Set(n int, now time.Time) fixtures.Set {
	f := b.Faker
	set := fixtures.Set{
		Doctor:        health.User{ID: "doctor-test", Name: f.Person().Name(), Role: health.RoleDoctor},
		Prescriptions: map[string][]string{},
	}

	for i := 0; i < n; i++ {
		p := b.Patient(fmt.Sprintf("T%04d", i))
		set.Patients = append(set.Patients, p)
		set.Profiles = append(set.Profiles, b.Profile(p))
		set.Appointments = append(set.Appointments,
			health.Appointment{
				ID:        fmt.Sprintf("%s-past", p.ID),
				PatientID: p.ID,
				Start:     now.AddDate(0, 0, -30),
				Duration:  30 * time.Minute,
				Status:    health.AppointmentCompleted,
			},
			health.Appointment{
				ID:        fmt.Sprintf("%s-next", p.ID),
				PatientID: p.ID,
				Start:     now.AddDate(0, 0, 30),
				Duration:  30 * time.Minute,
				Status:    health.AppointmentScheduled,
			},
		)
	}

	if n > 0 {
		first := set.Patients[0].ID
		set.Medications = append(set.Medications, health.Medication{
			ID:        "TM01",
			Name:      f.Lorem().Word(),
			Dosage:    "10mg",
			Frequency: "Once daily",
			Status:    health.MedicationActive,
		})
		set.Prescriptions[first] = []string{"TM01"}
		set.Transcripts = append(set.Transcripts, health.Transcript{
			ID:        "t-" + first + "-1",
			PatientID: first,
			Date:      health.DateOf(now.AddDate(0, 0, -30)),
			Duration:  20 * time.Minute,
			Summary:   f.Lorem().Sentence(8),
			Lines: []health.TranscriptLine{
				{At: now.AddDate(0, 0, -30), Speaker: health.SpeakerDoctor, Message: f.Lorem().Sentence(6)},
				{At: now.AddDate(0, 0, -30).Add(time.Minute), Speaker: health.SpeakerPatient, Message: f.Lorem().Sentence(6)},
			},
		})
	}

	return set
}
