package engine

import "testing"

func moduleTables() map[string]Table {
	return map[string]Table{
		"whr male":        whrMaleTable,
		"whr female":      whrFemaleTable,
		"whtr":            whtrTable,
		"vo2max":          vo2maxTable,
		"power to weight": powerToWeightTable,
		"wilks2":          wilks2Table,
		"gl":              glTable,
		"loss safety":     lossSafetyTable,
	}
}

func TestModuleTablesAreContiguous(t *testing.T) {
	for name, table := range moduleTables() {
		if err := table.Check(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

// Every value across and at each band boundary must map to exactly one
// label, including values outside the declared range (clamped to the
// outermost labels).
func TestClassifyIsTotal(t *testing.T) {
	for name, table := range moduleTables() {
		samples := []float64{table[0].Lower - 1, table[len(table)-1].Upper + 1}
		for _, b := range table {
			samples = append(samples, b.Lower, b.Upper, (b.Lower+b.Upper)/2)
		}
		for _, v := range samples {
			if got := table.Classify(v); got == "" {
				t.Errorf("%s: Classify(%v) returned no label", name, v)
			}
			if got := table.ClassifyUpper(v); got == "" {
				t.Errorf("%s: ClassifyUpper(%v) returned no label", name, v)
			}
		}
	}
}

func TestClassifyBoundaryConventions(t *testing.T) {
	table := Table{
		{Lower: 0, Upper: 10, Label: "low"},
		{Lower: 10, Upper: 20, Label: "high"},
	}
	// Lower-inclusive: the boundary belongs to the upper band.
	if got := table.Classify(10); got != "high" {
		t.Errorf("Classify(10) = %q, want high", got)
	}
	// Upper-inclusive: the boundary belongs to the lower band.
	if got := table.ClassifyUpper(10); got != "low" {
		t.Errorf("ClassifyUpper(10) = %q, want low", got)
	}
	// Clamping at the edges.
	if got := table.Classify(-5); got != "low" {
		t.Errorf("Classify(-5) = %q, want low", got)
	}
	if got := table.Classify(25); got != "high" {
		t.Errorf("Classify(25) = %q, want high", got)
	}
}

func TestTableCheckRejectsMalformedTables(t *testing.T) {
	bad := []Table{
		{},
		{{Lower: 0, Upper: 0, Label: "empty"}},
		{{Lower: 0, Upper: 10, Label: "a"}, {Lower: 11, Upper: 20, Label: "gap"}},
		{{Lower: 0, Upper: 10, Label: "a"}, {Lower: 5, Upper: 20, Label: "overlap"}},
	}
	for i, table := range bad {
		if err := table.Check(); err == nil {
			t.Errorf("table %d: expected Check to fail", i)
		}
	}
}
