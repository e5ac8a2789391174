package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	cmPerInch = 2.54
	lbPerKg   = 2.20462
)

// CmToIn converts centimeters to inches.
func CmToIn(cm float64) float64 { return cm / cmPerInch }

// InToCm converts inches to centimeters.
func InToCm(in float64) float64 { return in * cmPerInch }

// KgToLb converts kilograms to pounds.
func KgToLb(kg float64) float64 { return kg * lbPerKg }

// LbToKg converts pounds to kilograms.
func LbToKg(lb float64) float64 { return lb / lbPerKg }

// ParseMMSS parses a "m:ss" or "mm:ss" duration into seconds.
func ParseMMSS(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("duration %q: expected mm:ss", s)
	}
	minutes, err := strconv.Atoi(parts[0])
	if err != nil || minutes < 0 {
		return 0, fmt.Errorf("duration %q: invalid minutes", s)
	}
	if len(parts[1]) != 2 {
		return 0, fmt.Errorf("duration %q: seconds must be two digits", s)
	}
	seconds, err := strconv.Atoi(parts[1])
	if err != nil || seconds < 0 || seconds > 59 {
		return 0, fmt.Errorf("duration %q: invalid seconds", s)
	}
	return float64(minutes*60 + seconds), nil
}

// FormatMMSS renders seconds as "m:ss", rounding to the nearest second.
// FormatMMSS(ParseMMSS(s)) round-trips for every valid mm:ss string without
// a leading zero on the minutes.
func FormatMMSS(seconds float64) string {
	s := int(math.Round(math.Max(seconds, 0)))
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// Display rounding policy: whole units for kcal, bpm and watts; one decimal
// for kilograms and percentages; two decimals for ratios. Centralized so
// golden-value tests stay stable across calculators.

// Round0 rounds to a whole unit.
func Round0(v float64) float64 { return math.Round(v) }

// Round1 rounds to one decimal place.
func Round1(v float64) float64 { return math.Round(v*10) / 10 }

// Round2 rounds to two decimal places.
func Round2(v float64) float64 { return math.Round(v*100) / 100 }
