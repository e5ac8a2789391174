package engine

import "fmt"

// LeanBodyMass holds the Boer estimate and its derived composition split.
type LeanBodyMass struct {
	LBMKg  float64
	FatKg  float64
	LBMPct float64
}

// LeanBodyMassBoer estimates lean body mass with sex-specific Boer
// coefficients and derives fat mass and the lean percentage of total weight.
func LeanBodyMassBoer(weightKg, heightCm float64, sex string) LeanBodyMass {
	var lbm float64
	if sex == SexMale {
		lbm = 0.407*weightKg + 0.267*heightCm - 19.2
	} else {
		lbm = 0.252*weightKg + 0.473*heightCm - 48.3
	}
	lbm = Round1(lbm)
	return LeanBodyMass{
		LBMKg:  lbm,
		FatKg:  Round1(weightKg - lbm),
		LBMPct: Round1(lbm / weightKg * 100),
	}
}

// idealWeightCoeffs holds one classical estimator's base weight at 60 inches
// and its per-inch-over-60 increment, per sex.
type idealWeightCoeffs struct {
	name                    string
	maleBase, malePerIn     float64
	femaleBase, femalePerIn float64
}

// The four classical ideal-weight estimators. Heights feed a single
// inches-over-60 conversion; coefficients are taken as given rather than
// re-derived from the historical imperial formulas.
var idealWeightFormulas = []idealWeightCoeffs{
	{name: "Devine", maleBase: 50.0, malePerIn: 2.3, femaleBase: 45.5, femalePerIn: 2.3},
	{name: "Robinson", maleBase: 52.0, malePerIn: 1.9, femaleBase: 49.0, femalePerIn: 1.7},
	{name: "Miller", maleBase: 56.2, malePerIn: 1.41, femaleBase: 53.1, femalePerIn: 1.36},
	{name: "Hamwi", maleBase: 48.0, malePerIn: 2.7, femaleBase: 45.5, femalePerIn: 2.2},
}

// IdealWeightResult is the averaged ideal weight with the per-formula values
// and the BMI-derived healthy range for the height.
type IdealWeightResult struct {
	AverageKg  float64
	ByFormula  []Metric
	HealthyMin float64
	HealthyMax float64
}

// IdealWeight averages the four classical estimators for the height and sex
// and attaches the BMI 18.5-24.9 healthy weight range.
func IdealWeight(heightCm float64, sex string) IdealWeightResult {
	over60 := CmToIn(heightCm) - 60

	res := IdealWeightResult{}
	sum := 0.0
	for _, f := range idealWeightFormulas {
		base, perIn := f.maleBase, f.malePerIn
		if sex == SexFemale {
			base, perIn = f.femaleBase, f.femalePerIn
		}
		kg := Round1(base + perIn*over60)
		res.ByFormula = append(res.ByFormula, Metric{Label: f.name, Value: kg, Unit: "kg"})
		sum += kg
	}
	res.AverageKg = Round1(sum / float64(len(idealWeightFormulas)))

	hM := heightCm / 100
	res.HealthyMin = Round1(18.5 * hM * hM)
	res.HealthyMax = Round1(24.9 * hM * hM)
	return res
}

// Waist-to-hip ratio risk bands (sex-aware) and the universal
// waist-to-height bands. Upper bounds of the top bands are generous caps so
// the tables stay total over any valid ratio.
var (
	whrMaleTable = Table{
		{Lower: 0, Upper: 0.90, Label: "Normal"},
		{Lower: 0.90, Upper: 1.00, Label: "Moderate"},
		{Lower: 1.00, Upper: 10, Label: "High"},
	}
	whrFemaleTable = Table{
		{Lower: 0, Upper: 0.80, Label: "Normal"},
		{Lower: 0.80, Upper: 0.85, Label: "Moderate"},
		{Lower: 0.85, Upper: 10, Label: "High"},
	}
	whtrTable = Table{
		{Lower: 0, Upper: 0.40, Label: "Moderate"},
		{Lower: 0.40, Upper: 0.50, Label: "Normal"},
		{Lower: 0.50, Upper: 10, Label: "High"},
	}
)

// WaistHipRatio computes waist/hip rounded to two decimals and classifies it
// against the sex-specific risk table.
func WaistHipRatio(waistCm, hipCm float64, sex string) (float64, string, error) {
	if hipCm <= 0 {
		return 0, "", fmt.Errorf("hip circumference must be positive")
	}
	ratio := Round2(waistCm / hipCm)
	table := whrMaleTable
	if sex == SexFemale {
		table = whrFemaleTable
	}
	return ratio, table.Classify(ratio), nil
}

// WaistHeightRatio computes waist/height rounded to two decimals and
// classifies it against the universal 0.5-threshold table.
func WaistHeightRatio(waistCm, heightCm float64) (float64, string, error) {
	if heightCm <= 0 {
		return 0, "", fmt.Errorf("height must be positive")
	}
	ratio := Round2(waistCm / heightCm)
	return ratio, whtrTable.Classify(ratio), nil
}

var bodyCompSchema = Schema{
	Numbers: []NumField{
		{Name: "weight_kg", Min: 30, Max: 300, Unit: "kg"},
		{Name: "height_cm", Min: 120, Max: 230, Unit: "cm"},
	},
	Categories: []CatField{sexField()},
}

func computeLeanBodyMass(rec Record) (*Envelope, error) {
	lbm := LeanBodyMassBoer(rec.Number("weight_kg"), rec.Number("height_cm"), rec.Category("sex"))
	env := &Envelope{Value: lbm.LBMKg, Unit: "kg"}
	env.addMetric("Lean body mass", lbm.LBMKg, "kg")
	env.addMetric("Fat mass", lbm.FatKg, "kg")
	env.addMetric("Lean mass share", lbm.LBMPct, "%")
	return env, nil
}

var idealWeightSchema = Schema{
	Numbers: []NumField{
		{Name: "height_cm", Min: 120, Max: 230, Unit: "cm"},
	},
	Categories: []CatField{sexField()},
}

func computeIdealWeight(rec Record) (*Envelope, error) {
	res := IdealWeight(rec.Number("height_cm"), rec.Category("sex"))
	env := &Envelope{Value: res.AverageKg, Unit: "kg"}
	env.Breakdown = append(env.Breakdown, res.ByFormula...)
	env.addMetric("Healthy range low (BMI 18.5)", res.HealthyMin, "kg")
	env.addMetric("Healthy range high (BMI 24.9)", res.HealthyMax, "kg")
	return env, nil
}

var waistHipSchema = Schema{
	Numbers: []NumField{
		{Name: "waist_cm", Min: 40, Max: 200, Unit: "cm"},
		{Name: "hip_cm", Min: 50, Max: 200, Unit: "cm"},
	},
	Categories: []CatField{sexField()},
}

func computeWaistHip(rec Record) (*Envelope, error) {
	ratio, label, err := WaistHipRatio(rec.Number("waist_cm"), rec.Number("hip_cm"), rec.Category("sex"))
	if err != nil {
		return nil, err
	}
	return &Envelope{Value: ratio, Unit: "ratio", Classification: label}, nil
}

var waistHeightSchema = Schema{
	Numbers: []NumField{
		{Name: "waist_cm", Min: 40, Max: 200, Unit: "cm"},
		{Name: "height_cm", Min: 120, Max: 230, Unit: "cm"},
	},
}

func computeWaistHeight(rec Record) (*Envelope, error) {
	ratio, label, err := WaistHeightRatio(rec.Number("waist_cm"), rec.Number("height_cm"))
	if err != nil {
		return nil, err
	}
	return &Envelope{Value: ratio, Unit: "ratio", Classification: label}, nil
}
