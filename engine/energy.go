package engine

import "fmt"

// ActivityFactors maps activity level names to their TDEE multiplier. This
// is the single source of truth for valid levels; the TDEE schema derives
// its categorical set from it.
var ActivityFactors = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// Fixed calorie band applied either side of maintenance for the simple
// loss/gain goals. The weekly-rate planner supersedes it when a target loss
// percentage is supplied.
const calorieGoalBand = 500

// RestingEnergyMifflin estimates resting energy expenditure (kcal/day) via
// the Mifflin-St Jeor equation.
func RestingEnergyMifflin(weightKg, heightCm float64, age int, sex string) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return Round0(bmr)
}

// RestingEnergyKatchMcArdle estimates resting energy expenditure (kcal/day)
// from body composition: 370 + 21.6 * lean body mass.
func RestingEnergyKatchMcArdle(weightKg, bodyFatPct float64) float64 {
	lbm := weightKg * (1 - bodyFatPct/100)
	return Round0(370 + 21.6*lbm)
}

// TotalDailyEnergy scales resting energy by the named activity level.
func TotalDailyEnergy(restingKcal float64, activityLevel string) (float64, error) {
	factor, ok := ActivityFactors[activityLevel]
	if !ok {
		return 0, fmt.Errorf("unknown activity level %q", activityLevel)
	}
	return Round0(restingKcal * factor), nil
}

var energySchema = Schema{
	Numbers: []NumField{
		{Name: "weight_kg", Min: 30, Max: 300, Unit: "kg"},
		{Name: "height_cm", Min: 120, Max: 230, Unit: "cm"},
		{Name: "age", Min: 15, Max: 100, Unit: "years"},
		{Name: "body_fat_pct", Min: 3, Max: 60, Unit: "%", Optional: true},
	},
	Categories: []CatField{
		sexField(),
		{Name: "activity", Allowed: activityLevels(), Optional: true},
	},
}

func activityLevels() []string {
	return []string{"sedentary", "light", "moderate", "active", "very_active"}
}

// computeEnergy builds the full energy expenditure envelope: Mifflin-St Jeor
// resting energy (Katch-McArdle in the breakdown when body fat is known),
// and when an activity level is given, TDEE with the fixed loss/gain band.
func computeEnergy(rec Record) (*Envelope, error) {
	bmr := RestingEnergyMifflin(rec.Number("weight_kg"), rec.Number("height_cm"), int(rec.Number("age")), rec.Category("sex"))

	env := &Envelope{Value: bmr, Unit: "kcal/day"}
	env.addMetric("Resting energy (Mifflin-St Jeor)", bmr, "kcal/day")

	if bf, ok := rec.Numbers["body_fat_pct"]; ok {
		env.addMetric("Resting energy (Katch-McArdle)", RestingEnergyKatchMcArdle(rec.Number("weight_kg"), bf), "kcal/day")
	}

	if level := rec.Category("activity"); level != "" {
		tdee, err := TotalDailyEnergy(bmr, level)
		if err != nil {
			return nil, err
		}
		env.Value = tdee
		env.addMetric("Total daily energy", tdee, "kcal/day")
		env.addMetric("Weight loss target", tdee-calorieGoalBand, "kcal/day")
		env.addMetric("Weight gain target", tdee+calorieGoalBand, "kcal/day")
	}
	return env, nil
}
