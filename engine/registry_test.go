package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLookupKnowsEveryCalculator(t *testing.T) {
	names := []string{
		"energy", "lbm", "idealweight", "whr", "whtr", "zones",
		"vo2max-cooper", "vo2max-hr", "ftp", "wkg", "css", "strength",
		"bikefit", "sweat", "hydration", "sleep", "lossplan",
	}
	for _, name := range names {
		if _, ok := Lookup(name); !ok {
			t.Errorf("calculator %q not registered", name)
		}
	}
	if _, ok := Lookup("bmi"); ok {
		t.Error("unexpected calculator registered under bmi")
	}
	if got := len(Calculators()); got != len(names) {
		t.Errorf("catalogue has %d calculators, want %d", got, len(names))
	}
}

func TestEvalCollectsAllFieldErrors(t *testing.T) {
	calc, _ := Lookup("sweat")
	env, fieldErrs, err := calc.Eval(Record{
		Numbers: map[string]float64{
			"pre_weight_kg":  20,  // below range
			"post_weight_kg": 350, // above range
			"fluid_intake_l": 0.5,
			// duration_h missing
		},
	})
	if err != nil {
		t.Fatalf("unexpected domain error: %v", err)
	}
	if env != nil {
		t.Fatal("expected validation to block computation")
	}

	want := FieldErrors{
		"pre_weight_kg":  "must be between 30 and 300 kg",
		"post_weight_kg": "must be between 30 and 300 kg",
		"duration_h":     "required",
	}
	if diff := cmp.Diff(want, fieldErrs); diff != "" {
		t.Errorf("field errors mismatch (-want +got):\n%s", diff)
	}
}

func TestEvalReportsDomainGuardAsError(t *testing.T) {
	calc, _ := Lookup("css")
	// Both times individually valid, jointly impossible.
	env, fieldErrs, err := calc.Eval(Record{
		Numbers: map[string]float64{"time_400_s": 200, "time_200_s": 210},
	})
	if len(fieldErrs) > 0 {
		t.Fatalf("unexpected field errors: %v", fieldErrs)
	}
	if err == nil {
		t.Fatal("expected a domain guard error")
	}
	if env != nil {
		t.Fatal("expected no envelope alongside a guard error")
	}
}

func TestEvalIsDeterministic(t *testing.T) {
	calc, _ := Lookup("idealweight")
	rec := Record{
		Numbers:    map[string]float64{"height_cm": 175},
		Categories: map[string]string{"sex": SexMale},
	}
	a, _, err := calc.Eval(rec)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	b, _, err := calc.Eval(rec)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("identical inputs produced different envelopes (-first +second):\n%s", diff)
	}
}

func TestCategoricalValidation(t *testing.T) {
	calc, _ := Lookup("bikefit")
	_, fieldErrs, _ := calc.Eval(Record{
		Numbers:    map[string]float64{"inseam_cm": 84},
		Categories: map[string]string{"bike_type": "unicycle"},
	})
	if _, ok := fieldErrs["bike_type"]; !ok {
		t.Errorf("expected bike_type violation, got %v", fieldErrs)
	}
}
