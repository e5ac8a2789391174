package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maxibaudrix/sporvit/engine"
)

func TestParseRecordShapes(t *testing.T) {
	rec, err := parseRecord([]string{
		"weight_kg=75",
		"time_400_s=6:30",
		"anchor=2026-03-02T07:00:00Z",
		"sex=male",
	})
	if err != nil {
		t.Fatalf("parseRecord failed: %v", err)
	}

	if got := rec.Numbers["weight_kg"]; got != 75 {
		t.Errorf("weight_kg = %v, want 75", got)
	}
	if got := rec.Numbers["time_400_s"]; got != 390 {
		t.Errorf("time_400_s = %v, want 390 (6:30 in seconds)", got)
	}
	want := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	if got := rec.Times["anchor"]; !got.Equal(want) {
		t.Errorf("anchor = %v, want %v", got, want)
	}
	if got := rec.Categories["sex"]; got != "male" {
		t.Errorf("sex = %q, want male", got)
	}
}

func TestParseRecordRejectsBareArguments(t *testing.T) {
	for _, arg := range []string{"weight_kg", "=75", "weight_kg="} {
		if _, err := parseRecord([]string{arg}); err == nil {
			t.Errorf("parseRecord(%q) succeeded, want error", arg)
		}
	}
}

func TestCalculatorCommandsCoverCatalogue(t *testing.T) {
	cmds := calculatorCommands()
	if len(cmds) != len(engine.Calculators()) {
		t.Fatalf("generated %d commands for %d calculators", len(cmds), len(engine.Calculators()))
	}
	for i, calc := range engine.Calculators() {
		if got := cmds[i].Name(); got != calc.Name {
			t.Errorf("command %d named %q, want %q", i, got, calc.Name)
		}
	}
}

func TestRunCalculator(t *testing.T) {
	logger = zap.NewNop()
	energy, ok := engine.Lookup("energy")
	if !ok {
		t.Fatal("energy calculator missing")
	}

	err := runCalculator(energy, []string{"weight_kg=75", "height_cm=180", "age=25", "sex=male"})
	if err != nil {
		t.Fatalf("runCalculator failed: %v", err)
	}

	if err := runCalculator(energy, []string{"weight_kg=75"}); err == nil {
		t.Error("runCalculator accepted an incomplete record")
	}
}

func TestRunBatchCmd(t *testing.T) {
	logger = zap.NewNop()
	dir := t.TempDir()
	plan := filepath.Join(dir, "plan.yaml")
	content := "requests:\n  - name: bmr\n    calculator: energy\n    numbers: {weight_kg: 75, height_cm: 180, age: 25}\n    categories: {sex: male}\n"
	if err := os.WriteFile(plan, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	batchOpts.PlanPath = plan
	batchOpts.OutDir = filepath.Join(dir, "out")
	batchOpts.Format = "csv"
	batchOpts.Overwrite = true
	defer func() { batchOpts.PlanPath = ""; batchOpts.OutDir = "" }()

	if err := runBatch(&cobra.Command{}, nil); err != nil {
		t.Fatalf("runBatch failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out", "manifest.json")); err != nil {
		t.Errorf("manifest.json not written: %v", err)
	}
}

func TestRunListCoversCatalogue(t *testing.T) {
	if err := runList(&cobra.Command{}, nil); err != nil {
		t.Fatalf("runList failed: %v", err)
	}
}
