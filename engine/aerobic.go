package engine

import "fmt"

// Cooper 12-minute field test constants: VO2max = (distance - 504.9) / 44.73.
const (
	cooperOffset  = 504.9
	cooperDivisor = 44.73
)

// hrRatioFactor scales the max/resting heart rate ratio to ml/kg/min.
const hrRatioFactor = 15.3

// vo2maxTable classifies an aerobic capacity estimate. Both estimators feed
// the same tiers.
var vo2maxTable = Table{
	{Lower: 0, Upper: 35, Label: "Average"},
	{Lower: 35, Upper: 45, Label: "Good"},
	{Lower: 45, Upper: 55, Label: "Excellent"},
	{Lower: 55, Upper: 100, Label: "Elite"},
}

// VO2MaxCooper estimates aerobic capacity from a 12-minute run distance.
// Distances below the formula offset produce a non-positive estimate, which
// is returned alongside a warning rather than silently.
func VO2MaxCooper(distanceM float64) (float64, string) {
	v := Round1((distanceM - cooperOffset) / cooperDivisor)
	if v <= 0 {
		return v, fmt.Sprintf("distance %.0f m is below the Cooper test's measurable range", distanceM)
	}
	return v, ""
}

// VO2MaxHRRatio estimates aerobic capacity from the max/resting heart rate
// ratio.
func VO2MaxHRRatio(maxHR, restingHR float64) (float64, error) {
	if restingHR <= 0 {
		return 0, fmt.Errorf("resting heart rate must be positive")
	}
	return Round1(hrRatioFactor * maxHR / restingHR), nil
}

var vo2maxCooperSchema = Schema{
	Numbers: []NumField{
		{Name: "distance_m", Min: 400, Max: 5000, Unit: "m"},
	},
}

func computeVO2MaxCooper(rec Record) (*Envelope, error) {
	v, warning := VO2MaxCooper(rec.Number("distance_m"))
	env := &Envelope{Value: v, Unit: "ml/kg/min", Classification: vo2maxTable.Classify(v)}
	if warning != "" {
		env.Warnings = append(env.Warnings, warning)
		env.Classification = ""
	}
	return env, nil
}

var vo2maxHRSchema = Schema{
	Numbers: []NumField{
		{Name: "max_hr", Min: 120, Max: 220, Unit: "bpm"},
		{Name: "resting_hr", Min: 30, Max: 120, Unit: "bpm"},
	},
}

func computeVO2MaxHRRatio(rec Record) (*Envelope, error) {
	v, err := VO2MaxHRRatio(rec.Number("max_hr"), rec.Number("resting_hr"))
	if err != nil {
		return nil, err
	}
	return &Envelope{Value: v, Unit: "ml/kg/min", Classification: vo2maxTable.Classify(v)}, nil
}
