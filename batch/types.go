package batch

import (
	"time"

	"github.com/maxibaudrix/sporvit/engine"
)

// Options configures a batch evaluation run.
type Options struct {
	PlanPath  string
	OutDir    string
	Format    string // parquet|csv
	Overwrite bool
}

// Plan is a YAML batch of calculator requests.
type Plan struct {
	Requests []Request `yaml:"requests"`
}

// Request is one named calculator invocation.
type Request struct {
	Name       string               `yaml:"name"`
	Calculator string               `yaml:"calculator"`
	Numbers    map[string]float64   `yaml:"numbers"`
	Categories map[string]string    `yaml:"categories"`
	Times      map[string]time.Time `yaml:"times"`
}

// Record converts the request into an engine input record.
func (r Request) Record() engine.Record {
	return engine.Record{
		Numbers:    r.Numbers,
		Categories: r.Categories,
		Times:      r.Times,
	}
}

// Request statuses.
const (
	StatusOK      = "ok"
	StatusInvalid = "invalid"
	StatusError   = "error"
)

// Outcome is one evaluated request, one line of results.jsonl.
type Outcome struct {
	Request     string             `json:"request"`
	Calculator  string             `json:"calculator"`
	Status      string             `json:"status"`
	Result      *engine.Envelope   `json:"result,omitempty"`
	FieldErrors engine.FieldErrors `json:"field_errors,omitempty"`
	Error       string             `json:"error,omitempty"`
}

// Manifest describes one run's artifacts.
type Manifest struct {
	RunID        string `json:"run_id"`
	PlanPath     string `json:"plan_path"`
	RequestCount int    `json:"request_count"`
	OKCount      int    `json:"ok_count"`
	InvalidCount int    `json:"invalid_count"`
	ErrorCount   int    `json:"error_count"`
	ResultsPath  string `json:"results_path"`
	TablePath    string `json:"table_path"`
}

// Result returns generated output paths.
type Result struct {
	RunID        string `json:"run_id"`
	OutputDir    string `json:"output_dir"`
	ManifestPath string `json:"manifest_path"`
	ResultsPath  string `json:"results_path"`
	TablePath    string `json:"table_path"`
	OKCount      int    `json:"ok_count"`
	InvalidCount int    `json:"invalid_count"`
	ErrorCount   int    `json:"error_count"`
}
