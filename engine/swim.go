package engine

import "fmt"

// Companion pace offsets either side of the critical swim speed pace.
const (
	cssAerobicOffsetS = 5
	cssSprintOffsetS  = 3
)

// CSSResult holds the critical swim speed and its derived training paces,
// all per 100 m.
type CSSResult struct {
	SpeedMps float64
	Pace100S float64
	AerobicS float64
	SprintS  float64
}

// CriticalSwimSpeed derives threshold swim pace from a 400 m / 200 m
// time-trial pair: css = 200 / (t400 - t200) m/s. The pair is jointly
// invalid when the 400 m time does not exceed the 200 m time.
func CriticalSwimSpeed(time400S, time200S float64) (CSSResult, error) {
	if time200S <= 0 {
		return CSSResult{}, fmt.Errorf("200m time must be positive")
	}
	if time400S <= time200S {
		return CSSResult{}, fmt.Errorf("400m time (%.0fs) must exceed 200m time (%.0fs)", time400S, time200S)
	}
	css := 200 / (time400S - time200S)
	pace := Round1(100 / css)
	return CSSResult{
		SpeedMps: Round2(css),
		Pace100S: pace,
		AerobicS: pace + cssAerobicOffsetS,
		SprintS:  pace - cssSprintOffsetS,
	}, nil
}

var cssSchema = Schema{
	Numbers: []NumField{
		{Name: "time_400_s", Min: 180, Max: 1200, Unit: "s"},
		{Name: "time_200_s", Min: 90, Max: 600, Unit: "s"},
	},
}

func computeCSS(rec Record) (*Envelope, error) {
	res, err := CriticalSwimSpeed(rec.Number("time_400_s"), rec.Number("time_200_s"))
	if err != nil {
		return nil, err
	}
	env := &Envelope{Value: res.Pace100S, Unit: "s/100m"}
	env.addMetric("Critical swim speed", res.SpeedMps, "m/s")
	env.addMetric("Threshold pace ("+FormatMMSS(res.Pace100S)+")", res.Pace100S, "s/100m")
	env.addMetric("Aerobic pace ("+FormatMMSS(res.AerobicS)+")", res.AerobicS, "s/100m")
	env.addMetric("Sprint pace ("+FormatMMSS(res.SprintS)+")", res.SprintS, "s/100m")
	return env, nil
}
