package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Record carries raw calculator inputs: numeric fields by domain name,
// categorical fields drawn from closed sets, and the rare explicit time
// anchor (sleep scheduling). Callers parse any textual input before building
// a Record; the engine never parses display formats itself.
type Record struct {
	Numbers    map[string]float64
	Categories map[string]string
	Times      map[string]time.Time
}

// Number returns a numeric field, or 0 when absent. Schemas mark required
// fields, so computation only sees populated records.
func (r Record) Number(name string) float64 {
	return r.Numbers[name]
}

// Category returns a categorical field, or the empty string when absent.
func (r Record) Category(name string) string {
	return r.Categories[name]
}

// FieldErrors maps field names to human-readable violation messages. An
// empty map means the record is valid.
type FieldErrors map[string]string

// Error summarizes all violations in field order.
func (fe FieldErrors) Error() string {
	names := make([]string, 0, len(fe))
	for name := range fe {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+fe[name])
	}
	return strings.Join(parts, "; ")
}

// NumField describes one numeric input: an inclusive valid range and a unit
// used in violation messages.
type NumField struct {
	Name     string
	Min, Max float64
	Unit     string
	Optional bool
}

// CatField describes one categorical input drawn from a closed set.
type CatField struct {
	Name     string
	Allowed  []string
	Optional bool
}

// TimeField describes one explicit time input. Only presence is validated;
// the caller supplies an already parsed time.Time.
type TimeField struct {
	Name     string
	Optional bool
}

// Schema enumerates the input fields of one calculator.
type Schema struct {
	Numbers    []NumField
	Categories []CatField
	Times      []TimeField
}

// Validate checks every field of rec against the schema and collects all
// violations. Out-of-range and missing values are reported per field; a
// record is only handed to computation when the returned map is empty.
func (s Schema) Validate(rec Record) FieldErrors {
	errs := FieldErrors{}
	for _, f := range s.Numbers {
		v, ok := rec.Numbers[f.Name]
		if !ok {
			if !f.Optional {
				errs[f.Name] = "required"
			}
			continue
		}
		if v < f.Min || v > f.Max {
			unit := ""
			if f.Unit != "" {
				unit = " " + f.Unit
			}
			errs[f.Name] = fmt.Sprintf("must be between %.4g and %.4g%s", f.Min, f.Max, unit)
		}
	}
	for _, f := range s.Times {
		if t, ok := rec.Times[f.Name]; !ok || t.IsZero() {
			if !f.Optional {
				errs[f.Name] = "required"
			}
		}
	}
	for _, f := range s.Categories {
		v, ok := rec.Categories[f.Name]
		if !ok || v == "" {
			if !f.Optional {
				errs[f.Name] = "required"
			}
			continue
		}
		found := false
		for _, a := range f.Allowed {
			if v == a {
				found = true
				break
			}
		}
		if !found {
			errs[f.Name] = "must be one of " + strings.Join(f.Allowed, ", ")
		}
	}
	return errs
}

// Sex is the closed biological-sex set shared by several calculators.
const (
	SexMale   = "male"
	SexFemale = "female"
)

func sexField() CatField {
	return CatField{Name: "sex", Allowed: []string{SexMale, SexFemale}}
}
