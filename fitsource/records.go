package fitsource

import "github.com/maxibaudrix/sporvit/engine"

// FTPRecord builds an FTP calculator record from the best 20-minute power of
// the ride, treating it as a 20-minute test effort. Reports false when the
// activity carries no usable power data. A positive weight adds the
// power-to-weight classification.
func (in *Inputs) FTPRecord(weightKg float64) (engine.Record, bool) {
	if in.Best20MinPowerW <= 0 {
		return engine.Record{}, false
	}
	rec := engine.Record{
		Numbers:    map[string]float64{"power_w": in.Best20MinPowerW},
		Categories: map[string]string{"method": "20min"},
	}
	if weightKg > 0 {
		rec.Numbers["weight_kg"] = weightKg
	}
	return rec, true
}

// VO2MaxRecord builds a heart-rate-ratio VO2max record from the session's
// max heart rate and the athlete's resting heart rate. Reports false when
// the activity carries no heart rate data.
func (in *Inputs) VO2MaxRecord(restingHR float64) (engine.Record, bool) {
	if in.MaxHeartRate <= 0 {
		return engine.Record{}, false
	}
	return engine.Record{
		Numbers: map[string]float64{"max_hr": in.MaxHeartRate, "resting_hr": restingHR},
	}, true
}

// SweatRateRecord builds a sweat-rate record from the session duration and
// the athlete's scale readings around it.
func (in *Inputs) SweatRateRecord(preWeightKg, postWeightKg, fluidIntakeL float64) (engine.Record, bool) {
	if in.DurationH <= 0 {
		return engine.Record{}, false
	}
	return engine.Record{
		Numbers: map[string]float64{
			"pre_weight_kg":  preWeightKg,
			"post_weight_kg": postWeightKg,
			"fluid_intake_l": fluidIntakeL,
			"duration_h":     in.DurationH,
		},
	}, true
}
