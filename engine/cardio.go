package engine

import "fmt"

// DefaultZoneBreakpoints are the five-zone Karvonen percentage breakpoints.
var DefaultZoneBreakpoints = []float64{50, 60, 70, 80, 90, 100}

// FatBurnBreakpoints are the two-point special case used by the fat-burning
// zone calculator.
var FatBurnBreakpoints = []float64{60, 70}

// HeartRateZone is one training zone bounded in beats per minute.
type HeartRateZone struct {
	Zone   int     `json:"zone"`
	MinPct float64 `json:"min_pct"`
	MaxPct float64 `json:"max_pct"`
	MinBPM float64 `json:"min_bpm"`
	MaxBPM float64 `json:"max_bpm"`
}

// HeartRateZones generates Karvonen heart-rate-reserve zones from
// consecutive percentage breakpoints: each bound is hrr*pct + restingHR
// rounded to the nearest beat, with maxHR = 220 - age. Breakpoints must be
// strictly increasing; restingHR must sit below maxHR. Both violations are
// guarded here even though validated input ranges cannot produce them.
func HeartRateZones(age int, restingHR float64, breakpoints []float64) ([]HeartRateZone, error) {
	maxHR := 220 - float64(age)
	if restingHR >= maxHR {
		return nil, fmt.Errorf("resting heart rate %.0f must be below max heart rate %.0f", restingHR, maxHR)
	}
	if len(breakpoints) < 2 {
		return nil, fmt.Errorf("at least two zone breakpoints required")
	}
	hrr := maxHR - restingHR

	zones := make([]HeartRateZone, 0, len(breakpoints)-1)
	for i := 1; i < len(breakpoints); i++ {
		lowPct, highPct := breakpoints[i-1], breakpoints[i]
		if highPct <= lowPct {
			return nil, fmt.Errorf("zone breakpoints must be strictly increasing (%.0f >= %.0f)", lowPct, highPct)
		}
		zones = append(zones, HeartRateZone{
			Zone:   i,
			MinPct: lowPct,
			MaxPct: highPct,
			MinBPM: Round0(hrr*lowPct/100 + restingHR),
			MaxBPM: Round0(hrr*highPct/100 + restingHR),
		})
	}
	return zones, nil
}

var heartRateZoneSchema = Schema{
	Numbers: []NumField{
		{Name: "age", Min: 10, Max: 100, Unit: "years"},
		{Name: "resting_hr", Min: 30, Max: 120, Unit: "bpm"},
	},
	Categories: []CatField{
		{Name: "profile", Allowed: []string{"training", "fat_burn"}, Optional: true},
	},
}

func computeHeartRateZones(rec Record) (*Envelope, error) {
	breakpoints := DefaultZoneBreakpoints
	if rec.Category("profile") == "fat_burn" {
		breakpoints = FatBurnBreakpoints
	}
	zones, err := HeartRateZones(int(rec.Number("age")), rec.Number("resting_hr"), breakpoints)
	if err != nil {
		return nil, err
	}

	env := &Envelope{Value: 220 - rec.Number("age"), Unit: "bpm"}
	env.addMetric("Max heart rate", env.Value, "bpm")
	env.addMetric("Heart rate reserve", env.Value-rec.Number("resting_hr"), "bpm")
	for _, z := range zones {
		env.addMetric(fmt.Sprintf("Zone %d (%.0f-%.0f%%) low", z.Zone, z.MinPct, z.MaxPct), z.MinBPM, "bpm")
		env.addMetric(fmt.Sprintf("Zone %d (%.0f-%.0f%%) high", z.Zone, z.MinPct, z.MaxPct), z.MaxBPM, "bpm")
	}
	return env, nil
}
