package fixtures

import (
	"time"

	"github.com/jwulff/glucodash/internal/health"
)

const appointmentLayout = "2006-01-02 15:04"

type appointmentRow struct {
	id, patientID string
	start         string
	minutes       int
	status        health.AppointmentStatus
	notes         string
}

var appointmentRows = []appointmentRow{
	{"A001", "P2000", "2025-08-19 09:00", 30, health.AppointmentCompleted, "Routine checkup"},
	{"A002", "P2000", "2025-12-15 10:30", 30, health.AppointmentScheduled, "Follow-up on blood pressure"},
	{"A003", "P2001", "2025-03-08 14:00", 45, health.AppointmentCompleted, "Diabetes management review"},
	{"A004", "P2001", "2025-06-08 11:00", 45, health.AppointmentCompleted, "A1C results discussion"},
	{"A005", "P2001", "2025-09-08 14:30", 45, health.AppointmentCompleted, "Medication adjustment"},
	{"A006", "P2001", "2025-12-08 10:00", 45, health.AppointmentScheduled, "Quarterly review"},
	{"A007", "P2002", "2025-03-05 09:30", 30, health.AppointmentCompleted, ""},
	{"A008", "P2002", "2025-06-05 09:30", 30, health.AppointmentCompleted, ""},
	{"A009", "P2002", "2025-09-05 09:30", 30, health.AppointmentScheduled, "Routine quarterly checkup"},
	{"A010", "P2003", "2025-05-16 15:00", 30, health.AppointmentCompleted, ""},
	{"A011", "P2003", "2025-11-16 15:00", 30, health.AppointmentScheduled, "Semi-annual checkup"},
	{"A012", "P2004", "2025-05-13 10:00", 45, health.AppointmentCompleted, ""},
	{"A013", "P2004", "2025-08-13 10:00", 45, health.AppointmentCompleted, "Retinopathy screening"},
	{"A014", "P2004", "2025-11-13 10:00", 45, health.AppointmentScheduled, "A1C review and medication adjustment"},
	{"A015", "P2005", "2025-07-19 13:00", 30, health.AppointmentCompleted, ""},
	{"A016", "P2005", "2025-10-19 13:00", 30, health.AppointmentCompleted, ""},
	{"A017", "P2005", "2026-01-19 13:00", 30, health.AppointmentScheduled, ""},
	{"A018", "P2006", "2025-05-16 11:30", 30, health.AppointmentCompleted, ""},
	{"A019", "P2006", "2025-11-16 11:30", 30, health.AppointmentScheduled, ""},
	{"A020", "P2007", "2025-06-01 09:00", 60, health.AppointmentCompleted, "New diagnosis consultation"},
	{"A021", "P2007", "2025-07-01 09:00", 45, health.AppointmentCompleted, "Follow-up after starting Metformin"},
	{"A022", "P2007", "2025-09-01 09:00", 45, health.AppointmentScheduled, "Three-month review"},
	{"A023", "P2008", "2025-03-22 14:00", 30, health.AppointmentCompleted, ""},
	{"A024", "P2008", "2025-06-22 14:00", 30, health.AppointmentCompleted, ""},
	{"A025", "P2008", "2025-09-22 14:00", 30, health.AppointmentScheduled, ""},
	{"A026", "P2009", "2025-07-29 10:00", 60, health.AppointmentCompleted, "Critical A1C review"},
	{"A027", "P2009", "2025-08-29 10:00", 45, health.AppointmentCompleted, "Insulin initiation"},
	{"A028", "P2009", "2025-09-29 10:00", 45, health.AppointmentCompleted, "Heart failure assessment"},
	{"A029", "P2009", "2025-11-15 10:00", 60, health.AppointmentScheduled, "Urgent follow-up"},
	{"A030", "P2009", "2025-12-29 10:00", 45, health.AppointmentScheduled, "Monthly review"},
	{"A031", "P2010", "2025-05-11 11:00", 30, health.AppointmentCompleted, ""},
	{"A032", "P2010", "2025-08-11 11:00", 30, health.AppointmentScheduled, ""},
	{"A033", "P2011", "2025-04-30 13:30", 45, health.AppointmentCompleted, "Nephropathy monitoring"},
	{"A034", "P2011", "2025-07-30 13:30", 45, health.AppointmentCompleted, "Kidney function review"},
	{"A035", "P2011", "2025-10-30 13:30", 45, health.AppointmentScheduled, "Quarterly complication screening"},
	{"A036", "P2012", "2025-06-02 10:30", 45, health.AppointmentCompleted, ""},
	{"A037", "P2012", "2025-09-02 10:30", 45, health.AppointmentCompleted, "Retinopathy check"},
	{"A038", "P2012", "2025-12-02 10:30", 45, health.AppointmentScheduled, ""},
	{"A039", "P2013", "2025-08-23 15:30", 45, health.AppointmentCompleted, "One-year checkup"},
	{"A040", "P2013", "2025-11-23 15:30", 45, health.AppointmentScheduled, "Postprandial glucose management"},
	{"A041", "P2014", "2025-05-14 09:00", 60, health.AppointmentCompleted, "Initial diagnosis"},
	{"A042", "P2014", "2025-06-14 09:00", 45, health.AppointmentCompleted, "Heart failure follow-up"},
	{"A043", "P2014", "2025-08-14 09:00", 45, health.AppointmentScheduled, "Cardiology coordination"},
	{"A044", "P2015", "2025-09-23 11:00", 60, health.AppointmentCompleted, "New patient consultation"},
	{"A045", "P2015", "2025-12-23 11:00", 45, health.AppointmentScheduled, "Three-month review"},
	{"A046", "P2016", "2025-06-14 13:00", 45, health.AppointmentCompleted, "Type 1 management review"},
	{"A047", "P2016", "2025-09-14 13:00", 45, health.AppointmentCompleted, "Insulin adjustment"},
	{"A048", "P2016", "2025-12-14 13:00", 45, health.AppointmentScheduled, "A1C review"},
	{"A049", "P2017", "2025-09-19 14:00", 60, health.AppointmentCompleted, "Initial diagnosis"},
	{"A050", "P2017", "2025-12-19 14:00", 45, health.AppointmentScheduled, "Nephropathy screening"},
	{"A051", "P2018", "2025-07-06 10:00", 45, health.AppointmentCompleted, "Stroke history review"},
	{"A052", "P2018", "2025-10-06 10:00", 45, health.AppointmentCompleted, ""},
	{"A053", "P2018", "2026-01-06 10:00", 45, health.AppointmentScheduled, "Blood pressure management"},
	{"A054", "P2019", "2025-06-02 15:00", 45, health.AppointmentCompleted, "Compliance discussion"},
	{"A055", "P2019", "2025-09-02 15:00", 45, health.AppointmentCompleted, "Alcohol use counseling"},
	{"A056", "P2019", "2025-12-02 15:00", 45, health.AppointmentScheduled, "Quarterly review"},
}

func appointments() []health.Appointment {
	out := make([]health.Appointment, len(appointmentRows))
	for i, r := range appointmentRows {
		start, err := time.Parse(appointmentLayout, r.start)
		if err != nil {
			panic("fixtures: bad appointment time " + r.start)
		}
		out[i] = health.Appointment{
			ID:        r.id,
			PatientID: r.patientID,
			Start:     start,
			Duration:  time.Duration(r.minutes) * time.Minute,
			Status:    r.status,
			Notes:     r.notes,
		}
	}
	return out
}
