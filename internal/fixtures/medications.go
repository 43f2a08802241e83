package fixtures

import (
	"github.com/jwulff/glucodash/internal/health"
)

type medicationRow struct {
	id, name, dosage, frequency string
	started, prescriber         string
	instructions                string
	status                      health.MedicationStatus
}

var medicationRows = []medicationRow{
	{"M001", "Metformin", "1000mg", "Twice daily", "2020-06-08", "Dr. Smith", "Take with meals", health.MedicationActive},
	{"M002", "Glipizide", "10mg", "Once daily", "2022-03-15", "Dr. Smith", "Take 30 minutes before breakfast", health.MedicationActive},
	{"M003", "Metformin", "850mg", "Twice daily", "2005-06-05", "Dr. Johnson", "Take with meals", health.MedicationActive},
	{"M004", "Atorvastatin", "20mg", "Once daily", "2010-01-10", "Dr. Johnson", "Take at bedtime", health.MedicationActive},
	{"M005", "Metformin", "500mg", "Twice daily", "2019-08-13", "Dr. Williams", "Take with meals", health.MedicationActive},
	{"M006", "Sitagliptin", "100mg", "Once daily", "2023-02-01", "Dr. Williams", "Can be taken with or without food", health.MedicationActive},
	{"M007", "Lisinopril", "10mg", "Once daily", "2020-05-20", "Dr. Williams", "For blood pressure control", health.MedicationActive},
	{"M008", "Metformin", "750mg", "Twice daily", "2022-10-19", "Dr. Martinez", "Take with meals", health.MedicationActive},
	{"M009", "Metformin", "500mg", "Twice daily", "2025-06-01", "Dr. Brown", "Take with meals, may increase dosage after 2 weeks", health.MedicationActive},
	{"M010", "Metformin", "1000mg", "Twice daily", "2014-06-22", "Dr. Davis", "Take with meals", health.MedicationActive},
	{"M011", "Empagliflozin", "10mg", "Once daily", "2020-09-10", "Dr. Davis", "Take in the morning", health.MedicationActive},
	{"M012", "Insulin Glargine (Lantus)", "20 units", "Once daily", "2024-10-01", "Dr. Wilson", "Inject at bedtime", health.MedicationActive},
	{"M013", "Insulin Lispro (Humalog)", "Variable", "Before meals", "2024-10-01", "Dr. Wilson", "Adjust dose based on carb intake and blood glucose", health.MedicationActive},
	{"M014", "Metformin", "850mg", "Twice daily", "2019-05-11", "Dr. Anderson", "Take with meals", health.MedicationActive},
	{"M015", "Insulin Glargine", "30 units", "Once daily", "2015-03-20", "Dr. Thompson", "Inject at bedtime", health.MedicationActive},
	{"M016", "Metformin", "1000mg", "Twice daily", "2000-07-30", "Dr. Thompson", "Take with meals", health.MedicationActive},
	{"M017", "Lisinopril", "20mg", "Once daily", "2010-04-15", "Dr. Thompson", "For kidney protection", health.MedicationActive},
	{"M018", "Metformin", "850mg", "Twice daily", "2016-09-02", "Dr. Garcia", "Take with meals", health.MedicationActive},
	{"M019", "Ramipril", "5mg", "Once daily", "2018-02-10", "Dr. Garcia", "For blood pressure", health.MedicationActive},
	{"M020", "Metformin", "1000mg", "Twice daily", "2024-08-23", "Dr. Lee", "Take with meals", health.MedicationActive},
	{"M021", "Metformin", "850mg", "Twice daily", "2025-05-14", "Dr. Rodriguez", "Take with meals", health.MedicationActive},
	{"M022", "Lisinopril", "10mg", "Once daily", "2025-05-14", "Dr. Rodriguez", "For heart failure and blood pressure", health.MedicationActive},
	{"M023", "Metformin", "500mg", "Twice daily", "2025-09-23", "Dr. Ahmed", "Take with meals", health.MedicationActive},
	{"M024", "Insulin Glargine", "25 units", "Once daily", "2020-09-14", "Dr. Hassan", "Inject at bedtime", health.MedicationActive},
	{"M025", "Insulin Aspart (NovoLog)", "Variable", "Before meals", "2020-09-14", "Dr. Hassan", "Adjust based on carb counting", health.MedicationActive},
	{"M026", "Lisinopril", "5mg", "Once daily", "2023-06-01", "Dr. Hassan", "For blood pressure", health.MedicationActive},
	{"M027", "Metformin", "750mg", "Twice daily", "2025-09-19", "Dr. Chen", "Take with meals", health.MedicationActive},
	{"M028", "Lisinopril", "10mg", "Once daily", "2025-09-19", "Dr. Chen", "For kidney protection and blood pressure", health.MedicationActive},
	{"M029", "Metformin", "1000mg", "Twice daily", "2021-10-06", "Dr. Okafor", "Take with meals", health.MedicationActive},
	{"M030", "Aspirin", "81mg", "Once daily", "2022-01-15", "Dr. Okafor", "For stroke prevention", health.MedicationActive},
	{"M031", "Metformin", "850mg", "Twice daily", "2012-09-02", "Dr. Patel", "Take with meals", health.MedicationActive},
	{"M032", "Sitagliptin", "100mg", "Once daily", "2018-04-10", "Dr. Patel", "Can be taken with or without food", health.MedicationActive},
}

func medications() []health.Medication {
	out := make([]health.Medication, len(medicationRows))
	for i, r := range medicationRows {
		out[i] = health.Medication{
			ID:           r.id,
			Name:         r.name,
			Dosage:       r.dosage,
			Frequency:    r.frequency,
			StartDate:    health.MustParseDate(r.started),
			PrescribedBy: r.prescriber,
			Instructions: r.instructions,
			Status:       r.status,
		}
	}
	return out
}

// prescriptions maps each patient to the medication ids they are on.
// Patients absent from the map take nothing.
func prescriptions() map[string][]string {
	return map[string][]string{
		"P2001": {"M001", "M002"},
		"P2002": {"M003", "M004"},
		"P2004": {"M005", "M006", "M007"},
		"P2005": {"M008"},
		"P2007": {"M009"},
		"P2008": {"M010", "M011"},
		"P2009": {"M012", "M013"},
		"P2010": {"M014"},
		"P2011": {"M015", "M016", "M017"},
		"P2012": {"M018", "M019"},
		"P2013": {"M020"},
		"P2014": {"M021", "M022"},
		"P2015": {"M023"},
		"P2016": {"M024", "M025", "M026"},
		"P2017": {"M027", "M028"},
		"P2018": {"M029", "M030"},
		"P2019": {"M031", "M032"},
	}
}
