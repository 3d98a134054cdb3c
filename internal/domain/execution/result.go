// Package execution provides domain models for validation run results.
package execution

import (
	"time"

	"github.com/soustack/recipes/internal/domain/values"
)

// FindingKind classifies a validation finding.
type FindingKind string

const (
	// KindParse is an unreadable file or malformed JSON
	KindParse FindingKind = "parse"
	// KindMissingField is an absent required top-level field
	KindMissingField FindingKind = "missing_field"
	// KindInvalidProfile is a profile outside the allowed set
	KindInvalidProfile FindingKind = "invalid_profile"
	// KindProfileMismatch is a profile that differs from the parent directory
	KindProfileMismatch FindingKind = "profile_mismatch"
	// KindStepsShape is a missing, non-array or empty steps value
	KindStepsShape FindingKind = "steps_shape"
	// KindStepShape is a non-object step or a step missing id/uses
	KindStepShape FindingKind = "step_shape"
	// KindSchema is a strict-mode finding
	KindSchema FindingKind = "schema"
)

// Finding is a single problem found in a recipe file.
type Finding struct {
	Path    string      `json:"path" yaml:"path"`
	Kind    FindingKind `json:"kind" yaml:"kind"`
	Message string      `json:"message" yaml:"message"`
}

// String renders the finding as "<path>: <message>".
func (f Finding) String() string {
	return f.Path + ": " + f.Message
}

// FileResult is the outcome of validating one recipe file.
type FileResult struct {
	Path     string        `json:"path" yaml:"path"`
	Status   values.Status `json:"status" yaml:"status"`
	Findings []Finding     `json:"findings,omitempty" yaml:"findings,omitempty"`
}

// NewFileResult derives the file status from its findings.
func NewFileResult(path string, findings []Finding) FileResult {
	status := values.StatusPass
	for _, f := range findings {
		s := values.StatusFail
		if f.Kind == KindParse {
			s = values.StatusError
		}
		if s.Precedence() > status.Precedence() {
			status = s
		}
	}
	return FileResult{Path: path, Status: status, Findings: findings}
}

// ResultSummary provides aggregate statistics about the run.
type ResultSummary struct {
	TotalFiles    int `json:"total_files" yaml:"total_files"`
	PassedFiles   int `json:"passed_files" yaml:"passed_files"`
	FailedFiles   int `json:"failed_files" yaml:"failed_files"`
	ErrorFiles    int `json:"error_files" yaml:"error_files"`
	TotalFindings int `json:"total_findings" yaml:"total_findings"`
}

// ValidationReport is the complete result of one validation run.
type ValidationReport struct {
	StartTime        time.Time     `json:"start_time" yaml:"start_time"`
	EndTime          time.Time     `json:"end_time" yaml:"end_time"`
	ValidatorVersion string        `json:"validator_version,omitempty" yaml:"validator_version,omitempty"`
	Root             string        `json:"root" yaml:"root"`
	Files            []FileResult  `json:"files" yaml:"files"`
	Findings         []Finding     `json:"findings" yaml:"findings"`
	Summary          ResultSummary `json:"summary" yaml:"summary"`
	Duration         time.Duration `json:"duration" yaml:"duration"`
	RunID            values.RunID  `json:"run_id" yaml:"run_id"`
	Strict           bool          `json:"strict" yaml:"strict"`
}

// NewValidationReport creates an empty report for a run over root.
func NewValidationReport(root string) *ValidationReport {
	return NewValidationReportWithID(values.NewRunID(), root)
}

// NewValidationReportWithID creates an empty report with a specific run ID.
func NewValidationReportWithID(id values.RunID, root string) *ValidationReport {
	return &ValidationReport{
		RunID:     id,
		Root:      root,
		StartTime: time.Now(),
		Files:     make([]FileResult, 0),
		Findings:  make([]Finding, 0),
	}
}

// AddFileResult records a validated file and accumulates its findings.
func (r *ValidationReport) AddFileResult(fr FileResult) {
	r.Files = append(r.Files, fr)
	r.Findings = append(r.Findings, fr.Findings...)
}

// Passed reports whether no file produced a finding.
func (r *ValidationReport) Passed() bool {
	return len(r.Findings) == 0
}

// Messages returns every finding rendered as "<path>: <message>".
func (r *ValidationReport) Messages() []string {
	out := make([]string, len(r.Findings))
	for i, f := range r.Findings {
		out[i] = f.String()
	}
	return out
}

// Finalize stamps the end time and calculates the summary.
func (r *ValidationReport) Finalize() {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
	r.calculateSummary()
}

func (r *ValidationReport) calculateSummary() {
	r.Summary = ResultSummary{
		TotalFiles:    len(r.Files),
		TotalFindings: len(r.Findings),
	}

	for _, f := range r.Files {
		switch f.Status {
		case values.StatusPass:
			r.Summary.PassedFiles++
		case values.StatusFail:
			r.Summary.FailedFiles++
		case values.StatusError:
			r.Summary.ErrorFiles++
		}
	}
}
