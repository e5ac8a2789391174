// Package batch evaluates a YAML plan of calculator requests through the
// engine registry and writes the outcomes as reviewable artifacts: a JSONL
// stream of result envelopes, a flat parquet or CSV table, and a manifest.
package batch

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/maxibaudrix/sporvit/engine"
)

// Run loads the plan, evaluates every request and writes all artifacts.
// Invalid or jointly-impossible requests become per-request outcomes; only
// plan or artifact I/O problems fail the run.
func Run(opts Options, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(opts.PlanPath) == "" {
		return nil, fmt.Errorf("plan path is required")
	}
	if strings.TrimSpace(opts.OutDir) == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "parquet"
	}
	if format != "parquet" && format != "csv" {
		return nil, fmt.Errorf("unsupported format %q (expected parquet|csv)", format)
	}

	plan, err := LoadPlan(opts.PlanPath)
	if err != nil {
		return nil, err
	}

	if err := prepareOutDir(opts.OutDir, opts.Overwrite); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger.Info("starting batch run",
		zap.String("run_id", runID),
		zap.String("plan", opts.PlanPath),
		zap.Int("requests", len(plan.Requests)),
	)

	outcomes := make([]Outcome, 0, len(plan.Requests))
	counts := map[string]int{}
	for _, req := range plan.Requests {
		outcome := evaluate(req)
		counts[outcome.Status]++
		if outcome.Status != StatusOK {
			logger.Warn("request did not evaluate cleanly",
				zap.String("request", req.Name),
				zap.String("status", outcome.Status),
			)
		}
		outcomes = append(outcomes, outcome)
	}

	resultsPath := filepath.Join(opts.OutDir, "results.jsonl")
	if err := writeJSONL(resultsPath, outcomes); err != nil {
		return nil, fmt.Errorf("write results.jsonl: %w", err)
	}

	tablePath := filepath.Join(opts.OutDir, "results."+format)
	switch format {
	case "csv":
		err = writeTableCSV(tablePath, outcomes)
	case "parquet":
		err = writeTableParquet(tablePath, outcomes)
	}
	if err != nil {
		return nil, fmt.Errorf("write results table: %w", err)
	}

	manifest := Manifest{
		RunID:        runID,
		PlanPath:     opts.PlanPath,
		RequestCount: len(outcomes),
		OKCount:      counts[StatusOK],
		InvalidCount: counts[StatusInvalid],
		ErrorCount:   counts[StatusError],
		ResultsPath:  resultsPath,
		TablePath:    tablePath,
	}
	manifestPath := filepath.Join(opts.OutDir, "manifest.json")
	if err := writeJSON(manifestPath, manifest); err != nil {
		return nil, fmt.Errorf("write manifest.json: %w", err)
	}

	logger.Info("batch run complete",
		zap.String("run_id", runID),
		zap.Int("ok", counts[StatusOK]),
		zap.Int("invalid", counts[StatusInvalid]),
		zap.Int("error", counts[StatusError]),
	)

	return &Result{
		RunID:        runID,
		OutputDir:    opts.OutDir,
		ManifestPath: manifestPath,
		ResultsPath:  resultsPath,
		TablePath:    tablePath,
		OKCount:      counts[StatusOK],
		InvalidCount: counts[StatusInvalid],
		ErrorCount:   counts[StatusError],
	}, nil
}

// LoadPlan reads and parses a YAML request plan.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parse plan: %w", err)
	}
	if len(plan.Requests) == 0 {
		return nil, fmt.Errorf("plan %s contains no requests", path)
	}
	for i, req := range plan.Requests {
		if strings.TrimSpace(req.Name) == "" {
			return nil, fmt.Errorf("plan request %d has no name", i)
		}
		if strings.TrimSpace(req.Calculator) == "" {
			return nil, fmt.Errorf("plan request %q has no calculator", req.Name)
		}
	}
	return &plan, nil
}

func evaluate(req Request) Outcome {
	outcome := Outcome{Request: req.Name, Calculator: req.Calculator}

	calc, ok := engine.Lookup(req.Calculator)
	if !ok {
		outcome.Status = StatusError
		outcome.Error = fmt.Sprintf("unknown calculator %q", req.Calculator)
		return outcome
	}

	env, fieldErrs, err := calc.Eval(req.Record())
	switch {
	case len(fieldErrs) > 0:
		outcome.Status = StatusInvalid
		outcome.FieldErrors = fieldErrs
	case err != nil:
		outcome.Status = StatusError
		outcome.Error = err.Error()
	default:
		outcome.Status = StatusOK
		outcome.Result = env
	}
	return outcome
}

func prepareOutDir(dir string, overwrite bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if overwrite {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return fmt.Errorf("output directory %s is not empty (use --overwrite)", dir)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func writeJSONL(path string, outcomes []Outcome) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, o := range outcomes {
		if err := enc.Encode(o); err != nil {
			return err
		}
	}
	return f.Sync()
}

func writeTableCSV(path string, outcomes []Outcome) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"request", "calculator", "status", "value", "unit", "classification", "warnings", "error"}); err != nil {
		return err
	}
	for _, o := range outcomes {
		row := tableRowFromOutcome(o)
		if err := w.Write([]string{
			row.Request, row.Calculator, row.Status,
			strconv.FormatFloat(row.Value, 'f', -1, 64),
			row.Unit, row.Classification, row.Warnings, row.Error,
		}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func tableRowFromOutcome(o Outcome) tableRow {
	row := tableRow{
		Request:    o.Request,
		Calculator: o.Calculator,
		Status:     o.Status,
		Error:      o.Error,
	}
	if len(o.FieldErrors) > 0 {
		row.Error = o.FieldErrors.Error()
	}
	if o.Result != nil {
		row.Value = o.Result.Value
		row.Unit = o.Result.Unit
		row.Classification = o.Result.Classification
		row.Warnings = strings.Join(o.Result.Warnings, "; ")
	}
	return row
}
