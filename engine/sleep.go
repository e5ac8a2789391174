package engine

import (
	"fmt"
	"time"
)

const (
	sleepCycleMinutes = 90
	maxSleepCycles    = 6

	// DefaultFallAsleepMinutes is the average sleep-onset latency assumed
	// when the caller does not supply one.
	DefaultFallAsleepMinutes = 14
)

// Sleep directions: forward from going to bed now, or backward from a target
// wake time.
const (
	SleepDirectionWake = "wake" // anchor is bedtime; options are wake times
	SleepDirectionBed  = "bed"  // anchor is wake time; options are bedtimes
)

// SleepOption is one candidate schedule of full 90-minute cycles.
type SleepOption struct {
	Cycles  int       `json:"cycles"`
	Time    time.Time `json:"time"`
	Quality string    `json:"quality"`
}

// sleepQuality labels a cycle count: five or more full cycles is optimal,
// three to four fair, fewer poor.
func sleepQuality(cycles int) string {
	switch {
	case cycles >= 5:
		return "optimal"
	case cycles >= 3:
		return "fair"
	default:
		return "poor"
	}
}

// SleepSchedule generates 1-6 full sleep-cycle options around an anchor
// time. With direction "wake" the anchor is bedtime and each option is a
// wake time (sleep-onset latency added once); with "bed" the anchor is the
// target wake time and each option is a bedtime. The anchor is an explicit
// argument so the schedule stays a pure function of its inputs; callers pass
// time.Now() when they mean now. Times are truncated to whole minutes.
func SleepSchedule(anchor time.Time, direction string, fallAsleepMinutes int) ([]SleepOption, error) {
	if fallAsleepMinutes < 0 {
		return nil, fmt.Errorf("fall-asleep latency must not be negative")
	}
	if direction != SleepDirectionWake && direction != SleepDirectionBed {
		return nil, fmt.Errorf("unknown sleep direction %q", direction)
	}

	anchor = anchor.Truncate(time.Minute)
	latency := time.Duration(fallAsleepMinutes) * time.Minute

	options := make([]SleepOption, 0, maxSleepCycles)
	for cycles := 1; cycles <= maxSleepCycles; cycles++ {
		span := time.Duration(cycles*sleepCycleMinutes)*time.Minute + latency
		var at time.Time
		if direction == SleepDirectionWake {
			at = anchor.Add(span)
		} else {
			at = anchor.Add(-span)
		}
		options = append(options, SleepOption{
			Cycles:  cycles,
			Time:    at,
			Quality: sleepQuality(cycles),
		})
	}
	return options, nil
}

var sleepSchema = Schema{
	Numbers: []NumField{
		{Name: "fall_asleep_min", Min: 0, Max: 120, Unit: "min", Optional: true},
	},
	Categories: []CatField{
		{Name: "direction", Allowed: []string{SleepDirectionWake, SleepDirectionBed}},
	},
	Times: []TimeField{
		{Name: "anchor"},
	},
}

func computeSleepSchedule(rec Record) (*Envelope, error) {
	latency := DefaultFallAsleepMinutes
	if v, ok := rec.Numbers["fall_asleep_min"]; ok {
		latency = int(v)
	}
	options, err := SleepSchedule(rec.Times["anchor"], rec.Category("direction"), latency)
	if err != nil {
		return nil, err
	}

	// Primary value is the recommended (longest optimal) option in hours of
	// actual sleep.
	best := options[len(options)-1]
	env := &Envelope{
		Value:          Round1(float64(best.Cycles*sleepCycleMinutes) / 60),
		Unit:           "h",
		Classification: best.Quality,
	}
	for _, o := range options {
		env.addMetric(
			fmt.Sprintf("%d cycles at %s (%s)", o.Cycles, o.Time.Format("15:04"), o.Quality),
			Round1(float64(o.Cycles*sleepCycleMinutes)/60),
			"h",
		)
	}
	return env, nil
}
