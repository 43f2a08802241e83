// Package dataset is the read-only access layer over a fixture set. Health
// series are generated once, at construction, so repeated reads within a run
// agree with each other.
package dataset

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jwulff/glucodash/internal/aggregate"
	"github.com/jwulff/glucodash/internal/chat"
	"github.com/jwulff/glucodash/internal/fixtures"
	"github.com/jwulff/glucodash/internal/generator"
	"github.com/jwulff/glucodash/internal/health"
	"github.com/jwulff/glucodash/internal/status"
)

// ErrNotFound is returned for unknown patient, transcript or medication ids.
var ErrNotFound = errors.New("not found")

// Option configures a Dataset.
type Option func(*Dataset)

// WithGlucoseDays sets how many days of glucose readings are generated per
// patient.
func WithGlucoseDays(days int) Option {
	return func(d *Dataset) {
		d.glucoseDays = days
	}
}

// Dataset answers queries about the roster.
type Dataset struct {
	set         fixtures.Set
	gen         *generator.Generator
	glucoseDays int

	byID   map[string]int
	series map[string]health.HealthData
	meds   map[string]health.Medication
}

// New indexes set and generates every patient's health series with gen.
func New(set fixtures.Set, gen *generator.Generator, opts ...Option) *Dataset {
	d := &Dataset{
		set:         set,
		gen:         gen,
		glucoseDays: generator.DefaultGlucoseDays,
		byID:        make(map[string]int, len(set.Patients)),
		series:      make(map[string]health.HealthData, len(set.Profiles)),
		meds:        make(map[string]health.Medication, len(set.Medications)),
	}
	for _, opt := range opts {
		opt(d)
	}

	for i, p := range set.Patients {
		d.byID[p.ID] = i
	}
	for _, prof := range set.Profiles {
		d.series[prof.PatientID] = gen.HealthData(prof, d.glucoseDays)
	}
	for _, m := range set.Medications {
		d.meds[m.ID] = m
	}
	return d
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}

// Doctor returns the demo clinician.
func (d *Dataset) Doctor() health.User {
	return d.set.Doctor
}

// Patients returns the full roster in fixture order.
func (d *Dataset) Patients() []health.Patient {
	out := make([]health.Patient, len(d.set.Patients))
	copy(out, d.set.Patients)
	return out
}

// Patient looks up one patient.
func (d *Dataset) Patient(id string) (health.Patient, error) {
	i, ok := d.byID[id]
	if !ok {
		return health.Patient{}, notFound("patient", id)
	}
	return d.set.Patients[i], nil
}

// Search returns patients whose name or id contains query under Unicode case
// folding. An empty query matches everyone.
func (d *Dataset) Search(query string) []health.Patient {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	if q == "" {
		return d.Patients()
	}

	var out []health.Patient
	for _, p := range d.set.Patients {
		if strings.Contains(fold.String(p.Name), q) || strings.Contains(fold.String(p.ID), q) {
			out = append(out, p)
		}
	}
	return out
}

// HealthData returns a copy of the patient's generated series.
func (d *Dataset) HealthData(id string) (health.HealthData, error) {
	h, ok := d.series[id]
	if !ok {
		return health.HealthData{}, notFound("health data", id)
	}
	return health.HealthData{
		PatientID: h.PatientID,
		Glucose:   aggregate.Last(h.Glucose, len(h.Glucose)),
		A1C:       aggregate.Last(h.A1C, len(h.A1C)),
		Weight:    aggregate.Last(h.Weight, len(h.Weight)),
	}, nil
}

// RecentGlucose returns the readings from the last days calendar days,
// measured from the generator's clock.
func (d *Dataset) RecentGlucose(id string, days int) ([]health.GlucoseReading, error) {
	h, ok := d.series[id]
	if !ok {
		return nil, notFound("health data", id)
	}
	return aggregate.RecentByDate(h.Glucose, days, d.gen.Now()), nil
}

// Medications returns the patient's prescriptions in assignment order.
func (d *Dataset) Medications(id string) ([]health.Medication, error) {
	if _, err := d.Patient(id); err != nil {
		return nil, err
	}
	var out []health.Medication
	for _, medID := range d.set.Prescriptions[id] {
		if m, ok := d.meds[medID]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (d *Dataset) appointments(id string, keep func(health.Appointment) bool) ([]health.Appointment, error) {
	if _, err := d.Patient(id); err != nil {
		return nil, err
	}
	var out []health.Appointment
	for _, a := range d.set.Appointments {
		if a.PatientID == id && keep(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

// Appointments returns all of the patient's appointments, newest first.
func (d *Dataset) Appointments(id string) ([]health.Appointment, error) {
	out, err := d.appointments(id, func(health.Appointment) bool { return true })
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.After(out[j].Start) })
	return out, err
}

// Upcoming returns appointments dated today or later, soonest first.
func (d *Dataset) Upcoming(id string) ([]health.Appointment, error) {
	today := health.DateOf(d.gen.Now())
	out, err := d.appointments(id, func(a health.Appointment) bool {
		return !health.DateOf(a.Start).Before(today)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, err
}

// Past returns appointments dated before today, newest first.
func (d *Dataset) Past(id string) ([]health.Appointment, error) {
	today := health.DateOf(d.gen.Now())
	out, err := d.appointments(id, func(a health.Appointment) bool {
		return health.DateOf(a.Start).Before(today)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.After(out[j].Start) })
	return out, err
}

// Transcripts returns the patient's transcripts, newest first.
func (d *Dataset) Transcripts(id string) ([]health.Transcript, error) {
	if _, err := d.Patient(id); err != nil {
		return nil, err
	}
	var out []health.Transcript
	for _, t := range d.set.Transcripts {
		if t.PatientID == id {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// Transcript looks up a transcript by its id.
func (d *Dataset) Transcript(id string) (health.Transcript, error) {
	for _, t := range d.set.Transcripts {
		if t.ID == id {
			return t, nil
		}
	}
	return health.Transcript{}, notFound("transcript", id)
}

// LatestTranscript returns the patient's most recent transcript.
func (d *Dataset) LatestTranscript(patientID string) (health.Transcript, error) {
	ts, err := d.Transcripts(patientID)
	if err != nil {
		return health.Transcript{}, err
	}
	if len(ts) == 0 {
		return health.Transcript{}, notFound("transcript for patient", patientID)
	}
	return ts[0], nil
}

// Overview summarizes the roster for the doctor's landing view.
type Overview struct {
	Total             int
	WellControlled    int     // latest A1C below 7%
	NeedsAttention    int     // latest A1C at or above 8%
	AverageCompliance float64 // mean medication compliance, one decimal
}

// Overview computes roster-wide counts.
func (d *Dataset) Overview() Overview {
	o := Overview{Total: len(d.set.Patients)}
	if o.Total == 0 {
		return o
	}

	var compliance float64
	for _, p := range d.set.Patients {
		switch status.A1C(p.LatestA1C) {
		case status.A1CGood:
			o.WellControlled++
		case status.A1CNeedsAttention:
			o.NeedsAttention++
		}
		compliance += p.MedicationCompliance
	}
	o.AverageCompliance = health.Round1(compliance / float64(o.Total))
	return o
}

// ChatContext gathers what the chat matcher needs for one patient.
func (d *Dataset) ChatContext(id string) (chat.Context, error) {
	p, err := d.Patient(id)
	if err != nil {
		return chat.Context{}, err
	}
	ctx := chat.Context{Patient: p}
	if h, ok := d.series[id]; ok {
		ctx.A1C = aggregate.Last(h.A1C, len(h.A1C))
	}
	return ctx, nil
}
