// Package engine implements the SPORVIT sports physiology calculation
// engine: deterministic formulas turning anthropometric and performance
// inputs into energy, body composition, cardiovascular, aerobic capacity,
// sport performance and hydration/recovery results.
//
// Every calculator is a pure function over a validated input record. The
// package performs no I/O, reads no clocks (callers supply any anchor time
// explicitly) and holds no state, so any call is safe to repeat or run
// concurrently.
package engine

import "fmt"

// Metric is one labeled sub-result inside an Envelope breakdown.
type Metric struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

// Envelope is the uniform result shape every calculator returns.
type Envelope struct {
	Value          float64  `json:"value"`
	Unit           string   `json:"unit"`
	Classification string   `json:"classification,omitempty"`
	Breakdown      []Metric `json:"breakdown,omitempty"`
	Warnings       []string `json:"warnings,omitempty"`
}

func (e *Envelope) addMetric(label string, value float64, unit string) {
	e.Breakdown = append(e.Breakdown, Metric{Label: label, Value: value, Unit: unit})
}

func (e *Envelope) warnf(format string, args ...any) {
	e.Warnings = append(e.Warnings, fmt.Sprintf(format, args...))
}

// Band is one half-open classification interval [Lower, Upper).
type Band struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Label string  `json:"label"`
}

// Table is an ordered list of contiguous classification bands. The first
// band's lower bound and the last band's upper bound are the table's closed
// range; Classify clamps values outside it to the outermost labels, so the
// mapping is total.
type Table []Band

// Classify returns the label of the band containing v. Bands are half-open
// [lower, upper); a value below the first lower bound takes the first label,
// a value at or above the last upper bound takes the last label.
func (t Table) Classify(v float64) string {
	if len(t) == 0 {
		return ""
	}
	for _, b := range t {
		if v >= b.Lower && v < b.Upper {
			return b.Label
		}
	}
	if v < t[0].Lower {
		return t[0].Label
	}
	return t[len(t)-1].Label
}

// ClassifyUpper is the upper-inclusive variant: bands are treated as
// (lower, upper], for modules whose thresholds are specified as "value past
// the bound". Clamping at the table edges matches Classify.
func (t Table) ClassifyUpper(v float64) string {
	if len(t) == 0 {
		return ""
	}
	for _, b := range t {
		if v > b.Lower && v <= b.Upper {
			return b.Label
		}
	}
	if v <= t[0].Lower {
		return t[0].Label
	}
	return t[len(t)-1].Label
}

// Check verifies the structural invariants of the table: at least one band,
// every band non-empty, and each band starting exactly where the previous
// one ends. Tables are package constants, so Check is exercised by tests
// rather than on every call.
func (t Table) Check() error {
	if len(t) == 0 {
		return fmt.Errorf("classification table is empty")
	}
	for i, b := range t {
		if b.Upper <= b.Lower {
			return fmt.Errorf("band %d (%q): upper %.4g <= lower %.4g", i, b.Label, b.Upper, b.Lower)
		}
		if i > 0 && b.Lower != t[i-1].Upper {
			return fmt.Errorf("band %d (%q): lower %.4g != previous upper %.4g", i, b.Label, b.Lower, t[i-1].Upper)
		}
	}
	return nil
}
