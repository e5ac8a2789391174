package engine

import (
	"math"
	"testing"
)

func TestVO2MaxCooper(t *testing.T) {
	// (2400 - 504.9) / 44.73 = 42.37
	v, warning := VO2MaxCooper(2400)
	if math.Abs(v-42.4) > 0.05 {
		t.Errorf("VO2MaxCooper(2400) = %v, want ~42.4", v)
	}
	if warning != "" {
		t.Errorf("unexpected warning: %q", warning)
	}

	// Below the formula offset the estimate is non-positive and must be
	// flagged, not silently returned.
	v, warning = VO2MaxCooper(450)
	if v > 0 {
		t.Errorf("VO2MaxCooper(450) = %v, want non-positive", v)
	}
	if warning == "" {
		t.Error("expected a warning for an implausible distance")
	}
}

func TestVO2MaxHRRatio(t *testing.T) {
	// 15.3 * 190/60 = 48.45
	v, err := VO2MaxHRRatio(190, 60)
	if err != nil {
		t.Fatalf("VO2MaxHRRatio: %v", err)
	}
	if math.Abs(v-48.5) > 0.05 {
		t.Errorf("VO2MaxHRRatio(190, 60) = %v, want ~48.5", v)
	}

	if _, err := VO2MaxHRRatio(190, 0); err == nil {
		t.Error("expected guard for zero resting heart rate")
	}
}

func TestVO2MaxClassificationTiers(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{20, "Average"},
		{34.9, "Average"},
		{35, "Good"},
		{44.9, "Good"},
		{45, "Excellent"},
		{54.9, "Excellent"},
		{55, "Elite"},
		{80, "Elite"},
	}
	for _, tt := range tests {
		if got := vo2maxTable.Classify(tt.value); got != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
