package health

import (
	"strings"
	"time"
)

// A1CTrend is the direction an A1C history is generated with.
type A1CTrend string

const (
	A1CImproving A1CTrend = "improving"
	A1CStable    A1CTrend = "stable"
	A1CWorsening A1CTrend = "worsening"
)

// WeightTrend is the direction a weight history is generated with.
type WeightTrend string

const (
	WeightLosing  WeightTrend = "losing"
	WeightStable  WeightTrend = "stable"
	WeightGaining WeightTrend = "gaining"
)

// Patient is an immutable reference record: identity, demographics and a
// snapshot of summary metrics.
type Patient struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Age                  int       `json:"age"`
	DiagnosisDate        time.Time `json:"diagnosisDate"`
	DiabetesType         string    `json:"diabetesType"`
	LastAppointment      time.Time `json:"lastAppointment"`
	NextAppointment      time.Time `json:"nextAppointment,omitempty"`
	LatestA1C            float64   `json:"latestA1C"`
	AverageGlucose       int       `json:"averageGlucose"`
	MedicationCompliance float64   `json:"medicationCompliance"` // Percent of doses taken as directed
	WeightLbs            float64   `json:"weight"`
	HeightIn             float64   `json:"height"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone"`
	RecentAlerts         []string  `json:"recentAlerts,omitempty"`
}

// FirstName returns the first word of the patient's name.
func (p Patient) FirstName() string {
	first, _, _ := strings.Cut(p.Name, " ")
	return first
}

// HasNextAppointment reports whether a follow-up is booked.
func (p Patient) HasNextAppointment() bool {
	return !p.NextAppointment.IsZero()
}

// YearsSinceDiagnosis returns whole years between diagnosis and now.
func (p Patient) YearsSinceDiagnosis(now time.Time) int {
	if p.DiagnosisDate.IsZero() || now.Before(p.DiagnosisDate) {
		return 0
	}
	return int(now.Sub(p.DiagnosisDate).Hours() / (24 * 365))
}

// Profile is the generator input for one patient: baselines and trend tags.
type Profile struct {
	PatientID           string      `json:"patientId"`
	FastingGlucose      float64     `json:"fastingGlucose"`
	PostprandialGlucose float64     `json:"postprandialGlucose"`
	GlucoseVariance     float64     `json:"glucoseVariance"`
	CurrentA1C          float64     `json:"currentA1C"`
	A1CTrend            A1CTrend    `json:"a1cTrend"`
	CurrentWeightKg     float64     `json:"currentWeightKg"`
	WeightTrend         WeightTrend `json:"weightTrend"`
}

// MedicationStatus is the prescription state.
type MedicationStatus string

const (
	MedicationActive       MedicationStatus = "active"
	MedicationDiscontinued MedicationStatus = "discontinued"
)

// Medication is a prescription record.
type Medication struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Dosage       string           `json:"dosage"`
	Frequency    string           `json:"frequency"`
	StartDate    time.Time        `json:"startDate"`
	PrescribedBy string           `json:"prescribedBy"`
	Instructions string           `json:"instructions,omitempty"`
	Status       MedicationStatus `json:"status"`
}

// AppointmentStatus is the scheduling state of an appointment.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment is a static scheduling record.
type Appointment struct {
	ID        string            `json:"id"`
	PatientID string            `json:"patientId"`
	Start     time.Time         `json:"start"`
	Duration  time.Duration     `json:"duration"`
	Status    AppointmentStatus `json:"status"`
	Notes     string            `json:"notes,omitempty"`
}

// Speaker identifies who said a transcript line.
type Speaker string

const (
	SpeakerDoctor  Speaker = "doctor"
	SpeakerPatient Speaker = "patient"
)

// TranscriptLine is one utterance in an appointment transcript.
type TranscriptLine struct {
	At      time.Time `json:"timestamp"`
	Speaker Speaker   `json:"speaker"`
	Message string    `json:"message"`
}

// Transcript is a synthetic appointment transcript with its summary.
type Transcript struct {
	ID        string           `json:"id"`
	PatientID string           `json:"patientId"`
	Date      time.Time        `json:"date"`
	Duration  time.Duration    `json:"duration"`
	Summary   string           `json:"summary"`
	Lines     []TranscriptLine `json:"fullTranscript"`
}

// Role tags a dashboard user.
type Role string

const (
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleDoctor || r == RolePatient
}

// User is the logged-in identity. It carries a role tag only.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
	Email string `json:"email,omitempty"`
}

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatUser      ChatRole = "user"
	ChatAssistant ChatRole = "assistant"
)

// ChatMessage is one entry in a chat conversation.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Text      string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
