package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlucose(t *testing.T) {
	tests := []struct {
		mgdl     int
		expected GlucoseStatus
	}{
		{40, GlucoseLow},
		{69, GlucoseLow},
		{70, GlucoseNormal},
		{120, GlucoseNormal},
		{180, GlucoseNormal},
		{181, GlucoseHigh},
		{300, GlucoseHigh},
	}

	for _, tt := range tests {
		result := Glucose(tt.mgdl)
		if result != tt.expected {
			t.Errorf("Glucose(%d) = %s, want %s", tt.mgdl, result, tt.expected)
		}
	}
}

func TestGlucoseFractional(t *testing.T) {
	assert.Equal(t, GlucoseLow, Glucose(69.6))
	assert.Equal(t, GlucoseNormal, Glucose(70.0))
	assert.Equal(t, GlucoseNormal, Glucose(180.0))
	assert.Equal(t, GlucoseHigh, Glucose(180.4))
	assert.Equal(t, "Low", LabGlucose(69.9))
	assert.Equal(t, "Elevated", LabGlucose(130.5))
	assert.Equal(t, 3.9, MgdlToMmol(69.6))
}

func TestA1C(t *testing.T) {
	tests := []struct {
		percent  float64
		expected A1CStatus
	}{
		{5.2, A1CGood},
		{6.99, A1CGood},
		{7.0, A1CFair},
		{7.2, A1CFair},
		{7.99, A1CFair},
		{8.0, A1CNeedsAttention},
		{9.57, A1CNeedsAttention},
	}

	for _, tt := range tests {
		result := A1C(tt.percent)
		if result != tt.expected {
			t.Errorf("A1C(%v) = %s, want %s", tt.percent, result, tt.expected)
		}
	}
}

func TestA1CCategory(t *testing.T) {
	assert.Equal(t, "Normal", A1CCategory(5.25))
	assert.Equal(t, "Prediabetic", A1CCategory(5.7))
	assert.Equal(t, "Diabetic - Good Control", A1CCategory(6.5))
	assert.Equal(t, "Diabetic - Fair Control", A1CCategory(7.0))
	assert.Equal(t, "Diabetic - Poor Control", A1CCategory(8.0))
}

func TestBMI(t *testing.T) {
	tests := []struct {
		bmi    float64
		status BMIStatus
		class  string
	}{
		{17.0, BMIUnderweight, "Underweight"},
		{18.5, BMINormal, "Normal Weight"},
		{24.99, BMINormal, "Normal Weight"},
		{25.0, BMIOverweight, "Overweight"},
		{29.99, BMIOverweight, "Overweight"},
		{30.0, BMIObese, "Obese (Class I)"},
		{35.0, BMIObese, "Obese (Class II)"},
		{40.0, BMIObese, "Obese (Class III)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, BMI(tt.bmi), "BMI(%v)", tt.bmi)
		assert.Equal(t, tt.class, BMIClass(tt.bmi), "BMIClass(%v)", tt.bmi)
	}
}

func TestCalculateBMI(t *testing.T) {
	assert.InDelta(t, 27.46, CalculateBMI(165, 65), 0.01)
	assert.InDelta(t, 25.02, CalculateBMI(155, 66), 0.01)
	assert.Zero(t, CalculateBMI(165, 0))
}

func TestCompliance(t *testing.T) {
	tests := []struct {
		percent  float64
		expected ComplianceStatus
	}{
		{100, ComplianceExcellent},
		{95, ComplianceExcellent},
		{94.9, ComplianceGood},
		{85, ComplianceGood},
		{84.99, ComplianceFair},
		{75, ComplianceFair},
		{74.9, CompliancePoor},
		{0, CompliancePoor},
	}

	for _, tt := range tests {
		result := Compliance(tt.percent)
		if result != tt.expected {
			t.Errorf("Compliance(%v) = %s, want %s", tt.percent, result, tt.expected)
		}
	}
}

func TestAverageGlucoseRating(t *testing.T) {
	assert.Equal(t, "excellent", AverageGlucoseRating(139))
	assert.Equal(t, "good", AverageGlucoseRating(140))
	assert.Equal(t, "fair", AverageGlucoseRating(179))
	assert.Equal(t, "needs improvement", AverageGlucoseRating(180))
}

func TestMgdlToMmol(t *testing.T) {
	assert.Equal(t, 5.5, MgdlToMmol(100))
	assert.Equal(t, 10.0, MgdlToMmol(180))
	assert.Equal(t, 3.9, MgdlToMmol(70))
	assert.Equal(t, 0.0, MgdlToMmol(0))
}

func TestLabGlucose(t *testing.T) {
	tests := []struct {
		mgdl     int
		expected string
	}{
		{69, "Low"},
		{70, "Normal"},
		{130, "Normal"},
		{131, "Elevated"},
		{180, "Elevated"},
		{181, "High"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LabGlucose(tt.mgdl), "mgdl=%d", tt.mgdl)
	}
}
