package engine

import "fmt"

// Powerlifting category tables, one per scheme: the simplified linear
// formulas produce different point scales, so the thresholds differ while
// the labels match.
var (
	wilks2Table = Table{
		{Lower: 0, Upper: 1500, Label: "Novice"},
		{Lower: 1500, Upper: 2000, Label: "Intermediate"},
		{Lower: 2000, Upper: 2500, Label: "Advanced"},
		{Lower: 2500, Upper: 3000, Label: "Elite"},
		{Lower: 3000, Upper: 10000, Label: "World Class"},
	}
	glTable = Table{
		{Lower: 0, Upper: 300, Label: "Novice"},
		{Lower: 300, Upper: 400, Label: "Intermediate"},
		{Lower: 400, Upper: 500, Label: "Advanced"},
		{Lower: 500, Upper: 600, Label: "Elite"},
		{Lower: 600, Upper: 2000, Label: "World Class"},
	}
)

// StrengthScore normalizes a lifted total by bodyweight. The wilks2 and gl
// schemes use simplified linear forms of the official coefficient formulas;
// the simplification is intentional and must not be "corrected" to the
// official polynomials. Both are strictly decreasing in bodyweight for a
// fixed total and strictly increasing in total for a fixed bodyweight.
func StrengthScore(bodyweightKg, totalKg float64, scheme string) (float64, error) {
	if bodyweightKg <= 0 {
		return 0, fmt.Errorf("bodyweight must be positive")
	}
	switch scheme {
	case "wilks2":
		return Round1(totalKg * (600 / (50 + 0.85*bodyweightKg))), nil
	case "gl":
		return Round1(totalKg * (100 / (bodyweightKg + 20))), nil
	default:
		return 0, fmt.Errorf("unknown strength scoring scheme %q", scheme)
	}
}

var strengthSchema = Schema{
	Numbers: []NumField{
		{Name: "bodyweight_kg", Min: 30, Max: 250, Unit: "kg"},
		{Name: "total_kg", Min: 20, Max: 1200, Unit: "kg"},
	},
	Categories: []CatField{
		{Name: "scheme", Allowed: []string{"wilks2", "gl"}},
	},
}

func computeStrengthScore(rec Record) (*Envelope, error) {
	points, err := StrengthScore(rec.Number("bodyweight_kg"), rec.Number("total_kg"), rec.Category("scheme"))
	if err != nil {
		return nil, err
	}
	table := wilks2Table
	if rec.Category("scheme") == "gl" {
		table = glTable
	}
	env := &Envelope{Value: points, Unit: "points", Classification: table.Classify(points)}
	env.addMetric("Relative strength", Round2(rec.Number("total_kg")/rec.Number("bodyweight_kg")), "x bodyweight")
	return env, nil
}
