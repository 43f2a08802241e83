// Package report exports a patient's health record as an xlsx workbook.
package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/jwulff/glucodash/internal/aggregate"
	"github.com/jwulff/glucodash/internal/health"
	"github.com/jwulff/glucodash/internal/status"
)

const (
	ReportSheetNameRecord     = "Health Record"
	ReportSheetNameGlucose    = "Glucose Readings"
	ReportSheetNameTranscript = "Transcript"
)

// Window sizes for the health data summary.
const (
	RecentGlucoseReadings = 21 // seven days at three readings per day
	RecentA1CReadings     = 4
)

const (
	confidentialityNotice = "CONFIDENTIAL MEDICAL RECORD - Protected Health Information"
	footerNotice          = "This document contains confidential medical information. Unauthorized disclosure is prohibited."
	centimetersPerInch    = 2.54
	kilogramsPerPound     = 0.453592
)

// Section names a selectable part of the record.
type Section string

const (
	SectionPatientInfo       Section = "patientInfo"
	SectionVitals            Section = "vitalSigns"
	SectionLabs              Section = "labResults"
	SectionMedications       Section = "medications"
	SectionHealthData        Section = "healthData"
	SectionRecentAppointment Section = "recentAppointment"
	SectionAlerts            Section = "alerts"
	SectionNotes             Section = "clinicalNotes"
)

// AllSections lists every section in document order.
var AllSections = []Section{
	SectionPatientInfo,
	SectionVitals,
	SectionLabs,
	SectionMedications,
	SectionHealthData,
	SectionRecentAppointment,
	SectionAlerts,
	SectionNotes,
}

// DefaultSections is every section except free-text notes.
var DefaultSections = AllSections[: len(AllSections)-1 : len(AllSections)-1]

// ErrNoSections is returned when a report is generated with nothing selected.
var ErrNoSections = errors.New("report: no sections selected")

// ParseSections validates section names.
func ParseSections(names []string) ([]Section, error) {
	out := make([]Section, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		found := false
		for _, s := range AllSections {
			if string(s) == name {
				out = append(out, s)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("report: unknown section %q", name)
		}
	}
	return out, nil
}

// Input is everything the record draws on.
type Input struct {
	Patient          health.Patient
	Health           health.HealthData
	Medications      []health.Medication
	LatestTranscript *health.Transcript
	Notes            string
	GeneratedAt      time.Time
}

type Report struct {
	in       Input
	sections map[Section]bool
}

func NewReport(in Input, sections ...Section) Report {
	selected := make(map[Section]bool, len(sections))
	for _, s := range sections {
		selected[s] = true
	}
	return Report{in: in, sections: selected}
}

// FileName is the suggested file name for a patient's record.
func FileName(p health.Patient, at time.Time) string {
	return fmt.Sprintf("%s_Health_Record_%s.xlsx", strings.Join(strings.Fields(p.Name), "_"), at.Format(health.DateLayout))
}

func (r Report) Generate() (*xlsx.File, error) {
	if len(r.sections) == 0 {
		return nil, ErrNoSections
	}

	report := xlsx.NewFile()

	components := []func(report *xlsx.File) error{
		r.addRecordSheet,
		r.addGlucoseSheet,
		r.addTranscriptSheet,
	}
	for _, fn := range components {
		if err := fn(report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

func (r Report) addRecordSheet(report *xlsx.File) error {
	sh, err := report.AddSheet(ReportSheetNameRecord)
	if err != nil {
		return err
	}

	components := []struct {
		section Section
		fn      func(sh *xlsx.Sheet)
	}{
		{SectionPatientInfo, r.addDemographics},
		{SectionVitals, r.addVitals},
		{SectionLabs, r.addLabs},
		{SectionMedications, r.addMedications},
		{SectionHealthData, r.addHealthSummary},
		{SectionRecentAppointment, r.addRecentAppointment},
		{SectionAlerts, r.addAlerts},
		{SectionNotes, r.addNotes},
	}

	r.addHeader(sh)
	for _, c := range components {
		if r.sections[c.section] {
			c.fn(sh)
		}
	}
	sh.AddRow().AddCell().SetValue(footerNotice)

	return nil
}

// addGlucoseSheet lists the readings behind the health data summary.
func (r Report) addGlucoseSheet(report *xlsx.File) error {
	if !r.sections[SectionHealthData] || len(r.in.Health.Glucose) == 0 {
		return nil
	}
	sh, err := report.AddSheet(ReportSheetNameGlucose)
	if err != nil {
		return err
	}

	addRow(sh, "Date ---", "Time ---", "Value (mg/dL) ---", "Status ---")
	for _, g := range aggregate.Last(r.in.Health.Glucose, RecentGlucoseReadings) {
		addRow(sh, g.Date.Format(health.DateLayout), g.Time, fmt.Sprintf("%d", g.Value), string(status.Glucose(g.Value)))
	}
	return nil
}

func (r Report) addTranscriptSheet(report *xlsx.File) error {
	if !r.sections[SectionRecentAppointment] || r.in.LatestTranscript == nil {
		return nil
	}
	sh, err := report.AddSheet(ReportSheetNameTranscript)
	if err != nil {
		return err
	}

	addRow(sh, "Time ---", "Speaker ---", "Message ---")
	for _, line := range r.in.LatestTranscript.Lines {
		addRow(sh, line.At.Format("15:04"), string(line.Speaker), line.Message)
	}
	return nil
}

func addRow(sh *xlsx.Sheet, values ...string) {
	row := sh.AddRow()
	for _, v := range values {
		row.AddCell().SetValue(v)
	}
}

func addTitle(sh *xlsx.Sheet, title string) {
	sh.AddRow()
	sh.AddRow().AddCell().SetValue(title)
}

func (r Report) addHeader(sh *xlsx.Sheet) {
	sh.AddRow().AddCell().SetValue("PATIENT HEALTH RECORD")
	addRow(sh, "Generated", r.in.GeneratedAt.Format(time.RFC3339))
	sh.AddRow().AddCell().SetValue(confidentialityNotice)
}

func (r Report) addDemographics(sh *xlsx.Sheet) {
	p := r.in.Patient
	addTitle(sh, "PATIENT DEMOGRAPHICS")
	addRow(sh, "Full Name", p.Name)
	addRow(sh, "Patient ID", p.ID)
	addRow(sh, "Age", fmt.Sprintf("%d years", p.Age))
	addRow(sh, "Date of Birth", fmt.Sprintf("~%d", r.in.GeneratedAt.Year()-p.Age))
	addRow(sh, "Email", p.Email)
	addRow(sh, "Phone", p.Phone)
	addRow(sh, "Diagnosis Date", p.DiagnosisDate.Format(health.DateLayout))
	addRow(sh, "Diabetes Type", p.DiabetesType)
	addRow(sh, "Years with Diabetes", fmt.Sprintf("%d years", p.YearsSinceDiagnosis(r.in.GeneratedAt)))
}

func (r Report) addVitals(sh *xlsx.Sheet) {
	p := r.in.Patient
	bmi := status.CalculateBMI(p.WeightLbs, p.HeightIn)

	addTitle(sh, "VITAL SIGNS & MEASUREMENTS")
	addRow(sh, "Measurement ---", "Value ---", "Status ---")
	addRow(sh, "Height", fmt.Sprintf("%g inches (%.1f cm)", p.HeightIn, p.HeightIn*centimetersPerInch), "-")
	addRow(sh, "Weight", fmt.Sprintf("%g lbs (%.1f kg)", p.WeightLbs, p.WeightLbs*kilogramsPerPound), string(status.BMI(bmi)))
	addRow(sh, "BMI", fmt.Sprintf("%.1f", bmi), status.BMIClass(bmi))
}

func (r Report) addLabs(sh *xlsx.Sheet) {
	p := r.in.Patient

	lastTest := "N/A"
	if n := len(r.in.Health.A1C); n > 0 {
		lastTest = r.in.Health.A1C[n-1].Date.Format(health.DateLayout)
	}

	addTitle(sh, "LABORATORY RESULTS")
	addRow(sh, "Test ---", "Result ---", "Reference Range ---", "Status ---")
	addRow(sh, "HbA1c (Hemoglobin A1C)", fmt.Sprintf("%.2f%%", p.LatestA1C), "< 7.0% (Target)", status.A1CCategory(p.LatestA1C))
	addRow(sh, "Average Glucose", fmt.Sprintf("%d mg/dL", p.AverageGlucose), "70-130 mg/dL (Fasting)", status.LabGlucose(p.AverageGlucose))
	addRow(sh, "Last A1C Test Date", lastTest, "-", "-")
}

func (r Report) addMedications(sh *xlsx.Sheet) {
	p := r.in.Patient

	addTitle(sh, "MEDICATION INFORMATION")
	addRow(sh, "Compliance Rate", fmt.Sprintf("%g%%", p.MedicationCompliance), string(status.Compliance(p.MedicationCompliance)))
	if len(r.in.Medications) == 0 {
		sh.AddRow().AddCell().SetValue("No medications on record.")
		return
	}
	addRow(sh, "Medication ---", "Dosage ---", "Frequency ---", "Prescribed By ---", "Status ---")
	for _, m := range r.in.Medications {
		addRow(sh, m.Name, m.Dosage, m.Frequency, m.PrescribedBy, string(m.Status))
	}
}

func (r Report) addHealthSummary(sh *xlsx.Sheet) {
	addTitle(sh, "HEALTH DATA SUMMARY")

	recent := aggregate.Last(r.in.Health.Glucose, RecentGlucoseReadings)
	if len(recent) == 0 {
		sh.AddRow().AddCell().SetValue("No glucose readings available.")
	} else {
		summary := aggregate.Summarize(recent)
		addRow(sh, "Recent Glucose (last 7 days)", fmt.Sprintf("%d readings", summary.Count))
		addRow(sh, "Average", fmt.Sprintf("%d mg/dL", health.RoundInt(summary.Mean)))
		addRow(sh, "Range", fmt.Sprintf("%d-%d mg/dL", int(summary.Min), int(summary.Max)))
	}

	a1c := aggregate.Last(r.in.Health.A1C, RecentA1CReadings)
	if len(a1c) == 0 {
		return
	}
	sh.AddRow()
	addRow(sh, "Date ---", "A1C Value ---", "Trend ---")
	for _, c := range aggregate.ChangeSeries(a1c) {
		addRow(sh, c.Reading.Date.Format(health.DateLayout), fmt.Sprintf("%.1f%%", c.Reading.Value), a1cTrendLabel(aggregate.DirectionOf(c)))
	}
}

func a1cTrendLabel(d aggregate.Direction) string {
	switch d {
	case aggregate.DirectionDecreasing:
		return d.Arrow() + " Improving"
	case aggregate.DirectionIncreasing:
		return d.Arrow() + " Increasing"
	case aggregate.DirectionStable:
		return d.Arrow() + " Stable"
	default:
		return "-"
	}
}

func (r Report) addRecentAppointment(sh *xlsx.Sheet) {
	addTitle(sh, "MOST RECENT APPOINTMENT")

	t := r.in.LatestTranscript
	if t == nil {
		sh.AddRow().AddCell().SetValue("No appointment transcripts available.")
		return
	}
	addRow(sh, "Date", t.Date.Format(health.DateLayout))
	addRow(sh, "Duration", fmt.Sprintf("%d minutes", int(t.Duration.Minutes())))
	addRow(sh, "Summary", t.Summary)
}

func (r Report) addAlerts(sh *xlsx.Sheet) {
	addTitle(sh, "ACTIVE ALERTS & CONCERNS")

	if len(r.in.Patient.RecentAlerts) == 0 {
		sh.AddRow().AddCell().SetValue("No active alerts.")
		return
	}
	for i, alert := range r.in.Patient.RecentAlerts {
		addRow(sh, fmt.Sprintf("%d.", i+1), alert)
	}
}

func (r Report) addNotes(sh *xlsx.Sheet) {
	notes := strings.TrimSpace(r.in.Notes)
	if notes == "" {
		return
	}
	addTitle(sh, "CLINICAL NOTES")
	for _, line := range strings.Split(notes, "\n") {
		sh.AddRow().AddCell().SetValue(line)
	}
}
