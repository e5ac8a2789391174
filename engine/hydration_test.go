package engine

import (
	"math"
	"testing"
)

func TestSweatRate(t *testing.T) {
	// (70.5 - 69.2 + 0.5) / 1 = 1.8 L/h; dehydration (70.5-69.2)/70.5 = 1.84%
	res, err := SweatRate(70.5, 69.2, 0.5, 1.0)
	if err != nil {
		t.Fatalf("SweatRate: %v", err)
	}
	if res.RateLph != 1.8 {
		t.Errorf("rate = %v L/h, want 1.8", res.RateLph)
	}
	if math.Abs(res.DehydrationPct-1.84) > 0.005 {
		t.Errorf("dehydration = %v%%, want ~1.84", res.DehydrationPct)
	}
	if res.Critical {
		t.Error("1.84% dehydration must stay below the critical threshold")
	}
	if res.SodiumMgPerH != 1260 {
		t.Errorf("sodium = %v mg/h, want 1260", res.SodiumMgPerH)
	}
}

func TestSweatRateCriticalThreshold(t *testing.T) {
	// Exactly 2% is still controlled; the threshold is strictly greater.
	res, err := SweatRate(70, 68.6, 0, 1)
	if err != nil {
		t.Fatalf("SweatRate: %v", err)
	}
	if res.DehydrationPct != 2.0 || res.Critical {
		t.Errorf("dehydration %v%% critical=%v, want 2%% controlled", res.DehydrationPct, res.Critical)
	}

	res, err = SweatRate(70, 68.5, 0, 1)
	if err != nil {
		t.Fatalf("SweatRate: %v", err)
	}
	if !res.Critical {
		t.Errorf("dehydration %v%% should be critical", res.DehydrationPct)
	}
}

func TestSweatRateGuards(t *testing.T) {
	if _, err := SweatRate(70, 69, 0.5, 0); err == nil {
		t.Error("expected guard for zero duration")
	}
	if _, err := SweatRate(0, 69, 0.5, 1); err == nil {
		t.Error("expected guard for zero pre-session weight")
	}
}

func TestHydrationPlan(t *testing.T) {
	tests := []struct {
		name      string
		intensity string
		climate   string
		hourly    float64
		sodium    float64
		capped    bool
	}{
		{"moderate cold", "moderate", "cold", 350, 500, false},
		{"moderate temperate", "moderate", "moderate", 500, 500, false},
		{"high hot", "high", "hot", 910, 800, false},
		{"elite hot capped", "elite", "hot", 950, 800, true},     // 850*1.3 = 1105
		{"high extreme capped", "high", "extreme", 950, 800, true}, // 700*1.6 = 1120
		{"elite temperate", "elite", "moderate", 850, 800, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := HydrationPlan(2, tt.intensity, tt.climate)
			if err != nil {
				t.Fatalf("HydrationPlan: %v", err)
			}
			if res.HourlyMl != tt.hourly || res.SodiumMgPerH != tt.sodium || res.Capped != tt.capped {
				t.Errorf("got %v ml/h %v mg/h capped=%v, want %v/%v/%v",
					res.HourlyMl, res.SodiumMgPerH, res.Capped, tt.hourly, tt.sodium, tt.capped)
			}
			if want := Round1(res.HourlyMl * 2 / 1000); res.TotalL != want {
				t.Errorf("total = %v L, want %v", res.TotalL, want)
			}
		})
	}
}

func TestHydrationPlanGuards(t *testing.T) {
	if _, err := HydrationPlan(0, "high", "hot"); err == nil {
		t.Error("expected guard for zero duration")
	}
	if _, err := HydrationPlan(2, "casual", "hot"); err == nil {
		t.Error("expected error for unknown intensity")
	}
	if _, err := HydrationPlan(2, "high", "arctic"); err == nil {
		t.Error("expected error for unknown climate")
	}
}
