// Package status maps numeric readings to clinical status labels.
//
// Every function is total: each input maps to exactly one label. Cut points
// are shared by every badge, table and report column.
package status

import "math"

// Glucose thresholds in mg/dL.
const (
	GlucoseLowBelow  = 70
	GlucoseHighAbove = 180
)

// A1C thresholds in percent.
const (
	A1CFairFrom        = 7.0
	A1CAttentionFrom   = 8.0
	A1CPrediabeticFrom = 5.7
	A1CDiabeticFrom    = 6.5
)

// BMI thresholds.
const (
	BMINormalFrom     = 18.5
	BMIOverweightFrom = 25.0
	BMIObeseFrom      = 30.0
	BMIObeseIIFrom    = 35.0
	BMIObeseIIIFrom   = 40.0
)

// Compliance thresholds in percent.
const (
	ComplianceExcellentFrom = 95.0
	ComplianceGoodFrom      = 85.0
	ComplianceFairFrom      = 75.0
)

// GlucoseStatus is the range classification of a glucose reading.
type GlucoseStatus string

const (
	GlucoseLow    GlucoseStatus = "Low"
	GlucoseNormal GlucoseStatus = "Normal"
	GlucoseHigh   GlucoseStatus = "High"
)

// Mgdl is a glucose value in mg/dL: whole readings or raw user input.
type Mgdl interface {
	~int | ~float64
}

// Glucose classifies a reading in mg/dL. 70 and 180 are both Normal.
func Glucose[T Mgdl](mgdl T) GlucoseStatus {
	if mgdl < GlucoseLowBelow {
		return GlucoseLow
	}
	if mgdl <= GlucoseHighAbove {
		return GlucoseNormal
	}
	return GlucoseHigh
}

// A1CStatus is the control classification of an A1C value.
type A1CStatus string

const (
	A1CGood           A1CStatus = "Good"
	A1CFair           A1CStatus = "Fair"
	A1CNeedsAttention A1CStatus = "Needs Attention"
)

// A1C classifies an A1C percentage.
func A1C(percent float64) A1CStatus {
	if percent < A1CFairFrom {
		return A1CGood
	}
	if percent < A1CAttentionFrom {
		return A1CFair
	}
	return A1CNeedsAttention
}

// A1CCategory is the diagnostic band used in exported reports.
func A1CCategory(percent float64) string {
	switch {
	case percent < A1CPrediabeticFrom:
		return "Normal"
	case percent < A1CDiabeticFrom:
		return "Prediabetic"
	case percent < A1CFairFrom:
		return "Diabetic - Good Control"
	case percent < A1CAttentionFrom:
		return "Diabetic - Fair Control"
	default:
		return "Diabetic - Poor Control"
	}
}

// BMIStatus is the weight classification of a body-mass index.
type BMIStatus string

const (
	BMIUnderweight BMIStatus = "Underweight"
	BMINormal      BMIStatus = "Normal"
	BMIOverweight  BMIStatus = "Overweight"
	BMIObese       BMIStatus = "Obese"
)

// BMI classifies a body-mass index.
func BMI(bmi float64) BMIStatus {
	switch {
	case bmi < BMINormalFrom:
		return BMIUnderweight
	case bmi < BMIOverweightFrom:
		return BMINormal
	case bmi < BMIObeseFrom:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// BMIClass refines BMI with obesity classes I-III.
func BMIClass(bmi float64) string {
	switch {
	case bmi < BMINormalFrom:
		return "Underweight"
	case bmi < BMIOverweightFrom:
		return "Normal Weight"
	case bmi < BMIObeseFrom:
		return "Overweight"
	case bmi < BMIObeseIIFrom:
		return "Obese (Class I)"
	case bmi < BMIObeseIIIFrom:
		return "Obese (Class II)"
	default:
		return "Obese (Class III)"
	}
}

// CalculateBMI derives BMI from imperial units. It returns 0 for a
// non-positive height.
func CalculateBMI(weightLbs, heightIn float64) float64 {
	if heightIn <= 0 {
		return 0
	}
	return weightLbs / (heightIn * heightIn) * 703
}

// ComplianceStatus is the classification of a medication compliance rate.
type ComplianceStatus string

const (
	ComplianceExcellent ComplianceStatus = "Excellent"
	ComplianceGood      ComplianceStatus = "Good"
	ComplianceFair      ComplianceStatus = "Fair"
	CompliancePoor      ComplianceStatus = "Poor"
)

// Compliance classifies a compliance percentage.
func Compliance(percent float64) ComplianceStatus {
	switch {
	case percent >= ComplianceExcellentFrom:
		return ComplianceExcellent
	case percent >= ComplianceGoodFrom:
		return ComplianceGood
	case percent >= ComplianceFairFrom:
		return ComplianceFair
	default:
		return CompliancePoor
	}
}

// FastingNormalMax is the upper bound of the fasting reference range.
const FastingNormalMax = 130

// LabGlucose grades an average glucose against the fasting reference range:
// Low, Normal (up to 130), Elevated (up to 180) or High.
func LabGlucose[T Mgdl](mgdl T) string {
	switch {
	case mgdl < GlucoseLowBelow:
		return "Low"
	case mgdl <= FastingNormalMax:
		return "Normal"
	case mgdl <= GlucoseHighAbove:
		return "Elevated"
	default:
		return "High"
	}
}

// MgdlToMmol converts mg/dL to mmol/L, rounded to one decimal.
func MgdlToMmol[T Mgdl](mgdl T) float64 {
	return math.Round(float64(mgdl)/18.0182*10) / 10
}

// AverageGlucoseRating rates a long-run average glucose.
func AverageGlucoseRating(mgdl int) string {
	switch {
	case mgdl < 140:
		return "excellent"
	case mgdl < 160:
		return "good"
	case mgdl < 180:
		return "fair"
	default:
		return "needs improvement"
	}
}
