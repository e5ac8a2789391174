package engine

import "fmt"

// kcalPerKgFat is the energy content of one kilogram of body fat.
const kcalPerKgFat = 7700

// lossSafetyTable grades a weekly loss percentage of body weight with
// upper-inclusive bands: past one percent the deficit stops being
// sustainable for most athletes, past 1.3 percent it risks lean mass.
var lossSafetyTable = Table{
	{Lower: 0, Upper: 0.5, Label: "Conservative"},
	{Lower: 0.5, Upper: 1.0, Label: "Maximum"},
	{Lower: 1.0, Upper: 1.3, Label: "Danger"},
	{Lower: 1.3, Upper: 5, Label: "Extreme"},
}

// WeeklyLossPlanResult is a weekly weight-loss rate plan.
type WeeklyLossPlanResult struct {
	KgPerWeek        float64
	DailyDeficitKcal float64
	SafetyTier       string
}

// WeeklyLossPlan converts a target weekly loss percentage of body weight
// into a kg/week rate and the daily calorie deficit it implies, graded by
// safety tier. When a weekly percentage is supplied this plan supersedes the
// fixed 500 kcal goal band of the energy calculator.
func WeeklyLossPlan(weightKg, pctPerWeek float64) (WeeklyLossPlanResult, error) {
	if weightKg <= 0 {
		return WeeklyLossPlanResult{}, fmt.Errorf("weight must be positive")
	}
	if pctPerWeek <= 0 {
		return WeeklyLossPlanResult{}, fmt.Errorf("weekly loss percentage must be positive")
	}
	kgPerWeek := Round2(weightKg * pctPerWeek / 100)
	return WeeklyLossPlanResult{
		KgPerWeek:        kgPerWeek,
		DailyDeficitKcal: Round0(kgPerWeek * kcalPerKgFat / 7),
		SafetyTier:       lossSafetyTable.ClassifyUpper(pctPerWeek),
	}, nil
}

var weeklyLossSchema = Schema{
	Numbers: []NumField{
		{Name: "weight_kg", Min: 30, Max: 300, Unit: "kg"},
		{Name: "pct_per_week", Min: 0.1, Max: 2, Unit: "%"},
	},
}

func computeWeeklyLossPlan(rec Record) (*Envelope, error) {
	res, err := WeeklyLossPlan(rec.Number("weight_kg"), rec.Number("pct_per_week"))
	if err != nil {
		return nil, err
	}
	env := &Envelope{Value: res.KgPerWeek, Unit: "kg/week", Classification: res.SafetyTier}
	env.addMetric("Daily deficit", res.DailyDeficitKcal, "kcal/day")
	if res.SafetyTier == "Danger" || res.SafetyTier == "Extreme" {
		env.warnf("losing %.2f%% of body weight per week risks lean mass; 1.0%% or less is recommended", rec.Number("pct_per_week"))
	}
	return env, nil
}
