package fixtures

import (
	"fmt"

	"github.com/jwulff/glucodash/internal/generator"
	"github.com/jwulff/glucodash/internal/health"
)

type rosterRow struct {
	id, name, email   string
	age               int
	diabetesType      string
	diagnosed         string
	lastVisit         string
	nextVisit         string
	compliance        float64
	heightIn          float64
	fasting, postMeal float64
	variance          float64
	a1c               float64
	a1cTrend          health.A1CTrend
	weightKg          float64
	weightTrend       health.WeightTrend
	alerts            []string
}

var rosterRows = []rosterRow{
	{"P2000", "Mateo Gonzalez", "mateo.gonzalez@email.com", 52, "Prediabetes", "2023-08-19", "2025-08-19", "2025-12-15", 97, 70, 92.6, 144.6, 15, 5.79, health.A1CStable, 81.0, health.WeightStable, nil},
	{"P2001", "Ava Müller", "ava.mueller@email.com", 47, "Type 2", "2016-06-08", "2025-09-08", "2025-12-08", 72, 64, 138.7, 220.0, 30, 8.21, health.A1CWorsening, 138.3, health.WeightGaining,
		[]string{"A1C trending upward", "Missed morning medication on Nov 1", "Glucose spike above 250 mg/dL"}},
	{"P2002", "Rami Al-Masri", "rami.almasri@email.com", 71, "Type 2", "2005-06-05", "2025-06-05", "2025-09-05", 88, 68, 171.9, 201.5, 25, 7.64, health.A1CStable, 66.9, health.WeightStable,
		[]string{"Annual kidney panel overdue"}},
	{"P2003", "Sofia Rodriguez", "sofia.rodriguez@email.com", 38, "Prediabetes", "2024-05-16", "2025-05-16", "2025-11-16", 99, 66, 92.8, 126.5, 12, 5.25, health.A1CStable, 79.4, health.WeightLosing, nil},
	{"P2004", "Riya Sharma", "riya.sharma@email.com", 59, "Type 2", "2019-08-13", "2025-08-13", "2025-11-13", 81, 62, 145.3, 160.2, 25, 8.19, health.A1CWorsening, 84.3, health.WeightStable,
		[]string{"Retinopathy follow-up required", "Blood pressure 157/96 at last visit"}},
	{"P2005", "Isabella Gonzalez", "isabella.gonzalez@email.com", 44, "Type 2", "2022-10-19", "2025-10-19", "2026-01-19", 93, 65, 125.3, 177.3, 28, 6.89, health.A1CImproving, 82.5, health.WeightStable, nil},
	{"P2006", "Lucia Garcia", "lucia.garcia@email.com", 33, "Prediabetes", "2024-11-16", "2025-05-16", "2025-11-16", 100, 63, 81.3, 101.3, 10, 5.3, health.A1CStable, 61.0, health.WeightStable, nil},
	{"P2007", "Emma Müller", "emma.mueller@email.com", 41, "Type 2", "2025-06-01", "2025-07-01", "2025-09-01", 86, 67, 141.5, 212.0, 30, 7.54, health.A1CWorsening, 87.1, health.WeightGaining,
		[]string{"Recently diagnosed, education pending"}},
	{"P2008", "Amelia Taylor", "amelia.taylor@email.com", 56, "Type 2", "2014-06-22", "2025-06-22", "2025-09-22", 96, 64, 122.1, 233.8, 35, 6.7, health.A1CImproving, 65.6, health.WeightStable, nil},
	{"P2009", "Vivaan Khan", "vivaan.khan@email.com", 68, "Type 1", "1989-03-02", "2025-09-29", "2025-11-15", 55, 69, 152.3, 215.3, 40, 9.57, health.A1CWorsening, 91.2, health.WeightStable,
		[]string{"Critical A1C of 9.57%", "Not taking insulin for several months", "History of heart failure and stroke"}},
	{"P2010", "Ava Schneider", "ava.schneider@email.com", 49, "Type 2", "2019-05-11", "2025-05-11", "2025-08-11", 94, 66, 141.7, 182.6, 25, 6.86, health.A1CImproving, 89.6, health.WeightLosing, nil},
	{"P2011", "Thabo Okeke", "thabo.okeke@email.com", 74, "Type 2", "2000-07-30", "2025-07-30", "2025-10-30", 89, 71, 106.5, 173.4, 30, 7.42, health.A1CStable, 78.4, health.WeightStable,
		[]string{"Nephropathy monitoring", "eGFR declined since last panel"}},
	{"P2012", "Isabella Lopez", "isabella.lopez@email.com", 51, "Type 2", "2016-09-02", "2025-09-02", "2025-12-02", 91, 61, 121.7, 173.5, 25, 7.41, health.A1CImproving, 48.2, health.WeightGaining, nil},
	{"P2013", "Thabo Diallo", "thabo.diallo@email.com", 45, "Type 2", "2024-08-23", "2025-08-23", "2025-11-23", 83, 72, 139.1, 250.1, 40, 7.68, health.A1CWorsening, 94.1, health.WeightGaining,
		[]string{"Frequent postprandial spikes"}},
	{"P2014", "Mateo Gonzalez Jr", "mateo.gonzalez.jr@email.com", 63, "Type 2", "2025-05-14", "2025-06-14", "2025-08-14", 84, 70, 167.2, 197.5, 30, 7.71, health.A1CWorsening, 106.7, health.WeightGaining,
		[]string{"Heart failure follow-up with cardiology"}},
	{"P2015", "Rami Farah", "rami.farah@email.com", 36, "Type 2", "2025-09-23", "2025-09-23", "2025-12-23", 90, 67, 106.6, 212.8, 35, 7.36, health.A1CStable, 52.3, health.WeightStable, nil},
	{"P2016", "Hassan Saleh", "hassan.saleh@email.com", 29, "Type 1", "2010-09-14", "2025-09-14", "2025-12-14", 79, 69, 149.7, 228.8, 40, 8.5, health.A1CWorsening, 60.7, health.WeightStable,
		[]string{"Insulin dose adjustment recommended", "Hypertension"}},
	{"P2017", "Li Wang", "li.wang@email.com", 58, "Type 2", "2025-09-19", "2025-09-19", "2025-12-19", 95, 62, 111.2, 170.8, 25, 7.71, health.A1CStable, 55.0, health.WeightLosing, nil},
	{"P2018", "Lerato Mensah", "lerato.mensah@email.com", 66, "Type 2", "2021-10-06", "2025-10-06", "2026-01-06", 87, 65, 116.0, 186.1, 30, 7.86, health.A1CWorsening, 95.4, health.WeightStable,
		[]string{"Stroke history, blood pressure management"}},
	{"P2019", "Riya Iyer", "riya.iyer@email.com", 54, "Type 2", "2012-09-02", "2025-09-02", "2025-12-02", 76, 64, 85.5, 170.1, 30, 6.54, health.A1CImproving, 87.8, health.WeightStable,
		[]string{"Low compliance this month"}},
}

func roster() ([]health.Patient, []health.Profile) {
	patients := make([]health.Patient, 0, len(rosterRows))
	profiles := make([]health.Profile, 0, len(rosterRows))

	for i, row := range rosterRows {
		p := health.Patient{
			ID:                   row.id,
			Name:                 row.name,
			Age:                  row.age,
			DiagnosisDate:        health.MustParseDate(row.diagnosed),
			DiabetesType:         row.diabetesType,
			LastAppointment:      health.MustParseDate(row.lastVisit),
			LatestA1C:            row.a1c,
			AverageGlucose:       health.RoundInt((row.fasting + row.postMeal) / 2),
			MedicationCompliance: row.compliance,
			WeightLbs:            health.Round1(generator.KilogramsToPounds(row.weightKg)),
			HeightIn:             row.heightIn,
			Email:                row.email,
			Phone:                fmt.Sprintf("(555) %03d-%04d", 200+i, 4100+i*37),
			RecentAlerts:         append([]string(nil), row.alerts...),
		}
		if row.nextVisit != "" {
			p.NextAppointment = health.MustParseDate(row.nextVisit)
		}
		patients = append(patients, p)

		profiles = append(profiles, health.Profile{
			PatientID:           row.id,
			FastingGlucose:      row.fasting,
			PostprandialGlucose: row.postMeal,
			GlucoseVariance:     row.variance,
			CurrentA1C:          row.a1c,
			A1CTrend:            row.a1cTrend,
			CurrentWeightKg:     row.weightKg,
			WeightTrend:         row.weightTrend,
		})
	}

	return patients, profiles
}
