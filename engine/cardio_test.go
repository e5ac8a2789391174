package engine

import "testing"

func TestHeartRateZonesKarvonen(t *testing.T) {
	// age 40, resting 60: maxHR 180, HRR 120
	zones, err := HeartRateZones(40, 60, DefaultZoneBreakpoints)
	if err != nil {
		t.Fatalf("HeartRateZones: %v", err)
	}
	if len(zones) != 5 {
		t.Fatalf("expected 5 zones, got %d", len(zones))
	}

	wantLow := []float64{120, 132, 144, 156, 168}
	wantHigh := []float64{132, 144, 156, 168, 180}
	for i, z := range zones {
		if z.MinBPM != wantLow[i] || z.MaxBPM != wantHigh[i] {
			t.Errorf("zone %d = %v-%v bpm, want %v-%v", z.Zone, z.MinBPM, z.MaxBPM, wantLow[i], wantHigh[i])
		}
	}
}

func TestHeartRateZonesStrictlyIncreasing(t *testing.T) {
	for age := 10; age <= 100; age += 5 {
		for resting := 30.0; resting <= 120; resting += 10 {
			if resting >= 220-float64(age) {
				continue
			}
			zones, err := HeartRateZones(age, resting, DefaultZoneBreakpoints)
			if err != nil {
				t.Fatalf("HeartRateZones(%d, %v): %v", age, resting, err)
			}
			prev := -1.0
			for _, z := range zones {
				if z.MinBPM >= z.MaxBPM {
					t.Fatalf("age %d resting %v: zone %d not increasing (%v >= %v)", age, resting, z.Zone, z.MinBPM, z.MaxBPM)
				}
				if z.MinBPM <= prev {
					t.Fatalf("age %d resting %v: zones overlap at zone %d", age, resting, z.Zone)
				}
				prev = z.MinBPM
			}
		}
	}
}

func TestHeartRateZonesZeroBreakpointStartsAtResting(t *testing.T) {
	zones, err := HeartRateZones(30, 55, []float64{0, 50, 100})
	if err != nil {
		t.Fatalf("HeartRateZones: %v", err)
	}
	if zones[0].MinBPM != 55 {
		t.Errorf("lowest bound = %v, want resting HR 55", zones[0].MinBPM)
	}
}

func TestHeartRateZonesFatBurnSpecialCase(t *testing.T) {
	zones, err := HeartRateZones(40, 60, FatBurnBreakpoints)
	if err != nil {
		t.Fatalf("HeartRateZones: %v", err)
	}
	if len(zones) != 1 {
		t.Fatalf("expected single fat-burn band, got %d", len(zones))
	}
	// 120*0.60+60 .. 120*0.70+60
	if zones[0].MinBPM != 132 || zones[0].MaxBPM != 144 {
		t.Errorf("fat-burn band = %v-%v, want 132-144", zones[0].MinBPM, zones[0].MaxBPM)
	}
}

func TestHeartRateZonesGuards(t *testing.T) {
	if _, err := HeartRateZones(100, 120, DefaultZoneBreakpoints); err == nil {
		t.Error("expected guard for resting HR at or above max HR")
	}
	if _, err := HeartRateZones(40, 60, []float64{70, 60}); err == nil {
		t.Error("expected guard for non-increasing breakpoints")
	}
	if _, err := HeartRateZones(40, 60, []float64{50}); err == nil {
		t.Error("expected guard for a single breakpoint")
	}
}
