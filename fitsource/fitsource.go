// Package fitsource derives calculator inputs from recorded FIT activity
// files, so athletes who test with a head unit do not have to re-type their
// numbers. It extracts the session aggregates the engine calculators ask
// for and leaves all computation to the engine.
package fitsource

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"time"

	"github.com/tormoder/fit"
)

// Inputs are session aggregates usable as engine calculator inputs.
type Inputs struct {
	Sport           string    `json:"sport"`
	StartTime       time.Time `json:"start_time"`
	DurationH       float64   `json:"duration_h"`
	DistanceM       float64   `json:"distance_m"`
	AvgHeartRate    float64   `json:"avg_heart_rate_bpm"`
	MaxHeartRate    float64   `json:"max_heart_rate_bpm"`
	AvgPowerW       float64   `json:"avg_power_w"`
	Best20MinPowerW float64   `json:"best_20min_power_w"`
}

// FromFile decodes an activity FIT file and extracts calculator inputs.
func FromFile(path string) (*Inputs, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open FIT file: %w", err)
	}
	defer f.Close()
	return FromReader(f)
}

// FromReader decodes FIT data from r and extracts calculator inputs.
func FromReader(r io.Reader) (*Inputs, error) {
	decoded, err := fit.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode FIT data: %w", err)
	}
	activity, err := decoded.Activity()
	if err != nil {
		return nil, fmt.Errorf("activity FIT expected: %w", err)
	}
	if len(activity.Sessions) == 0 {
		return nil, fmt.Errorf("activity file has no session message")
	}
	return fromActivity(activity), nil
}

func fromActivity(activity *fit.ActivityFile) *Inputs {
	session := activity.Sessions[0]
	series := buildSeries(activity.Records)

	in := &Inputs{
		Sport:     fmt.Sprint(session.Sport),
		StartTime: validTimeOrZero(session.StartTime),
	}
	if in.StartTime.IsZero() {
		in.StartTime = series.start
	}

	elapsed := safePositive(session.GetTotalTimerTimeScaled())
	if elapsed == 0 {
		elapsed = series.durationSec
	}
	in.DurationH = elapsed / 3600

	in.DistanceM = safePositive(session.GetTotalDistanceScaled())
	if in.DistanceM == 0 {
		in.DistanceM = series.lastDistanceM
	}

	in.AvgHeartRate = float64(validUint8(session.AvgHeartRate))
	if in.AvgHeartRate == 0 {
		in.AvgHeartRate = average(series.hrSamples)
	}
	in.MaxHeartRate = float64(validUint8(session.MaxHeartRate))
	if in.MaxHeartRate == 0 {
		in.MaxHeartRate = maxValue(series.hrSamples)
	}

	in.AvgPowerW = float64(validUint16(session.AvgPower))
	if in.AvgPowerW == 0 {
		in.AvgPowerW = average(series.powerSamples)
	}
	in.Best20MinPowerW = bestRollingPower(series.powerContinuous, 20*60)

	return in
}

type series struct {
	start         time.Time
	end           time.Time
	durationSec   float64
	lastDistanceM float64

	hrSamples    []float64
	powerSamples []float64

	// powerContinuous fills short recording gaps with the previous sample
	// so rolling averages stay time-accurate.
	powerContinuous []float64
}

func buildSeries(records []*fit.RecordMsg) series {
	s := series{}
	if len(records) == 0 {
		return s
	}

	sorted := make([]*fit.RecordMsg, 0, len(records))
	for _, rec := range records {
		if rec != nil {
			sorted = append(sorted, rec)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	var (
		lastTS      time.Time
		lastPower   float64
		havePrevPwr bool
	)
	for _, rec := range sorted {
		ts := validTimeOrZero(rec.Timestamp)
		if !ts.IsZero() {
			if s.start.IsZero() {
				s.start = ts
			}
			s.end = ts
		}

		if rec.HeartRate != math.MaxUint8 {
			s.hrSamples = append(s.hrSamples, float64(rec.HeartRate))
		}

		if distance := safePositive(rec.GetDistanceScaled()); distance > 0 {
			s.lastDistanceM = distance
		}

		if rec.Power != math.MaxUint16 {
			power := float64(rec.Power)
			s.powerSamples = append(s.powerSamples, power)
			if havePrevPwr && !ts.IsZero() && !lastTS.IsZero() && ts.After(lastTS) {
				missing := int(math.Round(ts.Sub(lastTS).Seconds())) - 1
				if missing > 0 && missing <= 30 {
					for i := 0; i < missing; i++ {
						s.powerContinuous = append(s.powerContinuous, lastPower)
					}
				}
			}
			s.powerContinuous = append(s.powerContinuous, power)
			lastPower = power
			havePrevPwr = true
		}

		if !ts.IsZero() {
			lastTS = ts
		}
	}

	if !s.start.IsZero() && s.end.After(s.start) {
		s.durationSec = s.end.Sub(s.start).Seconds()
	}
	return s
}

func bestRollingPower(samples []float64, seconds int) float64 {
	if len(samples) == 0 || seconds <= 0 {
		return 0
	}
	if len(samples) < seconds {
		return average(samples)
	}

	sum := 0.0
	for i := 0; i < seconds; i++ {
		sum += samples[i]
	}
	best := sum / float64(seconds)
	for i := seconds; i < len(samples); i++ {
		sum += samples[i] - samples[i-seconds]
		if current := sum / float64(seconds); current > best {
			best = current
		}
	}
	return best
}

func validTimeOrZero(t time.Time) time.Time {
	if t.IsZero() || fit.IsBaseTime(t) {
		return time.Time{}
	}
	return t
}

func validUint8(v uint8) uint8 {
	if v == math.MaxUint8 {
		return 0
	}
	return v
}

func validUint16(v uint16) uint16 {
	if v == math.MaxUint16 {
		return 0
	}
	return v
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

func maxValue(values []float64) float64 {
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	return max
}

func safePositive(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return v
}
