package engine

import "fmt"

// FTP test scaling factors.
const (
	ftpFactor20Min = 0.95
	ftpFactorRamp  = 0.75
)

// cogganZones are the five Coggan training zones as percentage bands of FTP.
var cogganZones = []struct {
	name   string
	minPct float64
	maxPct float64
}{
	{"Z1 Active Recovery", 0, 55},
	{"Z2 Endurance", 56, 75},
	{"Z3 Tempo", 76, 90},
	{"Z4 Threshold", 91, 105},
	{"Z5 VO2max", 106, 120},
}

// powerToWeightTable maps W/kg to rider tiers.
var powerToWeightTable = Table{
	{Lower: 0, Upper: 2.0, Label: "Recreational"},
	{Lower: 2.0, Upper: 3.0, Label: "Fair"},
	{Lower: 3.0, Upper: 4.0, Label: "Good"},
	{Lower: 4.0, Upper: 5.0, Label: "Very Good"},
	{Lower: 5.0, Upper: 6.0, Label: "Excellent"},
	{Lower: 6.0, Upper: 10.0, Label: "World Class"},
}

// PowerZone is one Coggan zone bounded in watts.
type PowerZone struct {
	Name  string  `json:"name"`
	LowW  float64 `json:"low_w"`
	HighW float64 `json:"high_w"`
}

// FTPFromTest derives functional threshold power from a field test result:
// 95% of 20-minute average power, or 75% of the final ramp-test minute.
func FTPFromTest(powerW float64, method string) (float64, error) {
	switch method {
	case "20min":
		return Round0(powerW * ftpFactor20Min), nil
	case "ramp":
		return Round0(powerW * ftpFactorRamp), nil
	default:
		return 0, fmt.Errorf("unknown FTP test method %q", method)
	}
}

// PowerZones expands an FTP into the five Coggan zones as watt ranges.
func PowerZones(ftpW float64) []PowerZone {
	zones := make([]PowerZone, 0, len(cogganZones))
	for _, z := range cogganZones {
		zones = append(zones, PowerZone{
			Name:  z.name,
			LowW:  Round0(ftpW * z.minPct / 100),
			HighW: Round0(ftpW * z.maxPct / 100),
		})
	}
	return zones
}

// PowerToWeight computes W/kg rounded to two decimals and classifies the
// rider tier.
func PowerToWeight(watts, totalWeightKg float64) (float64, string, error) {
	if totalWeightKg <= 0 {
		return 0, "", fmt.Errorf("total weight must be positive")
	}
	wkg := Round2(watts / totalWeightKg)
	return wkg, powerToWeightTable.Classify(wkg), nil
}

var ftpSchema = Schema{
	Numbers: []NumField{
		{Name: "power_w", Min: 50, Max: 600, Unit: "W"},
		{Name: "weight_kg", Min: 30, Max: 300, Unit: "kg", Optional: true},
	},
	Categories: []CatField{
		{Name: "method", Allowed: []string{"20min", "ramp"}},
	},
}

func computeFTP(rec Record) (*Envelope, error) {
	ftp, err := FTPFromTest(rec.Number("power_w"), rec.Category("method"))
	if err != nil {
		return nil, err
	}

	env := &Envelope{Value: ftp, Unit: "W"}
	for _, z := range PowerZones(ftp) {
		env.addMetric(z.Name+" low", z.LowW, "W")
		env.addMetric(z.Name+" high", z.HighW, "W")
	}
	if weight, ok := rec.Numbers["weight_kg"]; ok {
		wkg, tier, err := PowerToWeight(ftp, weight)
		if err != nil {
			return nil, err
		}
		env.Classification = tier
		env.addMetric("Power to weight", wkg, "W/kg")
	}
	return env, nil
}

var powerToWeightSchema = Schema{
	Numbers: []NumField{
		{Name: "power_w", Min: 50, Max: 600, Unit: "W"},
		{Name: "weight_kg", Min: 30, Max: 300, Unit: "kg"},
	},
}

func computePowerToWeight(rec Record) (*Envelope, error) {
	wkg, tier, err := PowerToWeight(rec.Number("power_w"), rec.Number("weight_kg"))
	if err != nil {
		return nil, err
	}
	return &Envelope{Value: wkg, Unit: "W/kg", Classification: tier}, nil
}
