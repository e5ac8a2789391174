package engine

// Calculator binds one named calculation to its input schema and compute
// function. Presentation consumers invoke calculators through this registry
// so formulas and thresholds live in exactly one place.
type Calculator struct {
	Name    string
	Title   string
	Schema  Schema
	compute func(Record) (*Envelope, error)
}

// Eval validates rec against the calculator's schema, then computes. A
// non-empty FieldErrors means validation failed and no computation ran; a
// non-nil error is a joint domain guard violation (values individually in
// range but invalid together).
func (c Calculator) Eval(rec Record) (*Envelope, FieldErrors, error) {
	if errs := c.Schema.Validate(rec); len(errs) > 0 {
		return nil, errs, nil
	}
	env, err := c.compute(rec)
	return env, nil, err
}

// Registry order is the catalogue display order.
var calculators = []Calculator{
	{Name: "energy", Title: "Energy expenditure (BMR / TDEE)", Schema: energySchema, compute: computeEnergy},
	{Name: "lbm", Title: "Lean body mass (Boer)", Schema: bodyCompSchema, compute: computeLeanBodyMass},
	{Name: "idealweight", Title: "Ideal weight (four-formula average)", Schema: idealWeightSchema, compute: computeIdealWeight},
	{Name: "whr", Title: "Waist-to-hip ratio", Schema: waistHipSchema, compute: computeWaistHip},
	{Name: "whtr", Title: "Waist-to-height ratio", Schema: waistHeightSchema, compute: computeWaistHeight},
	{Name: "zones", Title: "Heart rate training zones (Karvonen)", Schema: heartRateZoneSchema, compute: computeHeartRateZones},
	{Name: "vo2max-cooper", Title: "VO2max (Cooper 12-minute test)", Schema: vo2maxCooperSchema, compute: computeVO2MaxCooper},
	{Name: "vo2max-hr", Title: "VO2max (heart rate ratio)", Schema: vo2maxHRSchema, compute: computeVO2MaxHRRatio},
	{Name: "ftp", Title: "FTP and power zones (Coggan)", Schema: ftpSchema, compute: computeFTP},
	{Name: "wkg", Title: "Power to weight", Schema: powerToWeightSchema, compute: computePowerToWeight},
	{Name: "css", Title: "Critical swim speed (400/200 test)", Schema: cssSchema, compute: computeCSS},
	{Name: "strength", Title: "Strength score (Wilks 2.0 / IPF GL)", Schema: strengthSchema, compute: computeStrengthScore},
	{Name: "bikefit", Title: "Bike frame and saddle sizing", Schema: bikeFitSchema, compute: computeBikeFit},
	{Name: "sweat", Title: "Sweat rate and electrolytes", Schema: sweatRateSchema, compute: computeSweatRate},
	{Name: "hydration", Title: "Competition hydration plan", Schema: hydrationPlanSchema, compute: computeHydrationPlan},
	{Name: "sleep", Title: "Sleep cycle schedule", Schema: sleepSchema, compute: computeSleepSchedule},
	{Name: "lossplan", Title: "Weekly weight-loss plan", Schema: weeklyLossSchema, compute: computeWeeklyLossPlan},
}

// Calculators returns the catalogue in display order.
func Calculators() []Calculator {
	out := make([]Calculator, len(calculators))
	copy(out, calculators)
	return out
}

// Lookup finds a calculator by name.
func Lookup(name string) (Calculator, bool) {
	for _, c := range calculators {
		if c.Name == name {
			return c, true
		}
	}
	return Calculator{}, false
}
