package engine

import "fmt"

// Sodium recommendation scales linearly with fluid loss.
const sodiumMgPerLiter = 700

// Dehydration beyond this share of pre-exercise body weight is flagged
// critical.
const criticalDehydrationPct = 2.0

// SweatRateResult holds a training-session fluid balance analysis.
type SweatRateResult struct {
	RateLph        float64
	DehydrationPct float64
	SodiumMgPerH   float64
	Critical       bool
}

// SweatRate estimates fluid loss per hour from pre/post session weights and
// intake, the dehydration percentage of body weight, and the matching sodium
// replacement rate.
func SweatRate(preWeightKg, postWeightKg, fluidIntakeL, durationH float64) (SweatRateResult, error) {
	if durationH <= 0 {
		return SweatRateResult{}, fmt.Errorf("session duration must be positive")
	}
	if preWeightKg <= 0 {
		return SweatRateResult{}, fmt.Errorf("pre-session weight must be positive")
	}
	rate := Round2(((preWeightKg - postWeightKg) + fluidIntakeL) / durationH)
	dehydration := Round2((preWeightKg - postWeightKg) / preWeightKg * 100)
	return SweatRateResult{
		RateLph:        rate,
		DehydrationPct: dehydration,
		SodiumMgPerH:   Round0(rate * sodiumMgPerLiter),
		Critical:       dehydration > criticalDehydrationPct,
	}, nil
}

// Hourly hydration base rates (ml/h) by session intensity.
var hydrationBaseRates = map[string]float64{
	"moderate": 500,
	"high":     700,
	"elite":    850,
}

// Climate multipliers applied to the base rate.
var climateFactors = map[string]float64{
	"cold":     0.7,
	"moderate": 1.0,
	"hot":      1.3,
	"extreme":  1.6,
}

// Gut absorption limits what an athlete can usefully drink per hour.
const maxHourlyIntakeMl = 950

// Sodium targets per hour: the base, and the bumped rate for hot/extreme
// climates or elite intensity.
const (
	baseSodiumMgPerH   = 500
	raisedSodiumMgPerH = 800
)

// HydrationPlanResult is a competition fluid and sodium plan.
type HydrationPlanResult struct {
	HourlyMl     float64
	SodiumMgPerH float64
	TotalL       float64
	Capped       bool
}

// HydrationPlan builds a competition hydration plan: intensity base rate
// scaled by climate, capped at the absorbable hourly maximum, with the
// sodium target raised for hot or extreme climates and elite intensity.
func HydrationPlan(durationH float64, intensity, climate string) (HydrationPlanResult, error) {
	if durationH <= 0 {
		return HydrationPlanResult{}, fmt.Errorf("competition duration must be positive")
	}
	base, ok := hydrationBaseRates[intensity]
	if !ok {
		return HydrationPlanResult{}, fmt.Errorf("unknown intensity %q", intensity)
	}
	factor, ok := climateFactors[climate]
	if !ok {
		return HydrationPlanResult{}, fmt.Errorf("unknown climate %q", climate)
	}

	hourly := base * factor
	capped := hourly > maxHourlyIntakeMl
	if capped {
		hourly = maxHourlyIntakeMl
	}

	sodium := float64(baseSodiumMgPerH)
	if climate == "hot" || climate == "extreme" || intensity == "elite" {
		sodium = raisedSodiumMgPerH
	}

	return HydrationPlanResult{
		HourlyMl:     Round0(hourly),
		SodiumMgPerH: sodium,
		TotalL:       Round1(hourly * durationH / 1000),
		Capped:       capped,
	}, nil
}

var sweatRateSchema = Schema{
	Numbers: []NumField{
		{Name: "pre_weight_kg", Min: 30, Max: 300, Unit: "kg"},
		{Name: "post_weight_kg", Min: 30, Max: 300, Unit: "kg"},
		{Name: "fluid_intake_l", Min: 0, Max: 10, Unit: "L"},
		{Name: "duration_h", Min: 0.25, Max: 24, Unit: "h"},
	},
}

func computeSweatRate(rec Record) (*Envelope, error) {
	res, err := SweatRate(rec.Number("pre_weight_kg"), rec.Number("post_weight_kg"), rec.Number("fluid_intake_l"), rec.Number("duration_h"))
	if err != nil {
		return nil, err
	}
	label := "Controlled"
	if res.Critical {
		label = "Critical"
	}
	env := &Envelope{Value: res.RateLph, Unit: "L/h", Classification: label}
	env.addMetric("Dehydration", res.DehydrationPct, "%")
	env.addMetric("Sodium replacement", res.SodiumMgPerH, "mg/h")
	if res.Critical {
		env.warnf("dehydration %.2f%% exceeds the %.0f%% safety threshold", res.DehydrationPct, criticalDehydrationPct)
	}
	return env, nil
}

var hydrationPlanSchema = Schema{
	Numbers: []NumField{
		{Name: "duration_h", Min: 0.5, Max: 24, Unit: "h"},
	},
	Categories: []CatField{
		{Name: "intensity", Allowed: []string{"moderate", "high", "elite"}},
		{Name: "climate", Allowed: []string{"cold", "moderate", "hot", "extreme"}},
	},
}

func computeHydrationPlan(rec Record) (*Envelope, error) {
	res, err := HydrationPlan(rec.Number("duration_h"), rec.Category("intensity"), rec.Category("climate"))
	if err != nil {
		return nil, err
	}
	env := &Envelope{Value: res.HourlyMl, Unit: "ml/h"}
	env.addMetric("Sodium target", res.SodiumMgPerH, "mg/h")
	env.addMetric("Total fluid", res.TotalL, "L")
	if res.Capped {
		env.warnf("hourly intake capped at %d ml/h (gut absorption limit)", maxHourlyIntakeMl)
	}
	return env, nil
}
