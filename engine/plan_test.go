package engine

import "testing"

func TestWeeklyLossPlan(t *testing.T) {
	// 85kg at 1.2%/week: 1.02 kg/week, round(1.02*7700/7) = 1122 kcal/day
	res, err := WeeklyLossPlan(85, 1.2)
	if err != nil {
		t.Fatalf("WeeklyLossPlan: %v", err)
	}
	if res.KgPerWeek != 1.02 {
		t.Errorf("kg/week = %v, want 1.02", res.KgPerWeek)
	}
	if res.DailyDeficitKcal != 1122 {
		t.Errorf("daily deficit = %v, want 1122", res.DailyDeficitKcal)
	}
	if res.SafetyTier != "Danger" {
		t.Errorf("safety tier = %q, want Danger", res.SafetyTier)
	}
}

func TestWeeklyLossPlanTierBoundaries(t *testing.T) {
	// Tiers are upper-inclusive: exactly 1.0 is still Maximum, exactly 1.3
	// still Danger; only strictly past the bound does the tier degrade.
	tests := []struct {
		pct  float64
		want string
	}{
		{0.5, "Conservative"},
		{0.51, "Maximum"},
		{1.0, "Maximum"},
		{1.01, "Danger"},
		{1.3, "Danger"},
		{1.31, "Extreme"},
	}
	for _, tt := range tests {
		res, err := WeeklyLossPlan(80, tt.pct)
		if err != nil {
			t.Fatalf("WeeklyLossPlan(80, %v): %v", tt.pct, err)
		}
		if res.SafetyTier != tt.want {
			t.Errorf("tier at %v%% = %q, want %q", tt.pct, res.SafetyTier, tt.want)
		}
	}
}

func TestWeeklyLossPlanGuards(t *testing.T) {
	if _, err := WeeklyLossPlan(0, 1); err == nil {
		t.Error("expected guard for non-positive weight")
	}
	if _, err := WeeklyLossPlan(80, 0); err == nil {
		t.Error("expected guard for non-positive percentage")
	}
}
