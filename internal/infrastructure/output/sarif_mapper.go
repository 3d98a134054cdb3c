package output

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"
	"github.com/soustack/recipes/internal/domain/execution"
)

// sarifRule describes one finding kind.
type sarifRule struct {
	kind        execution.FindingKind
	name        string
	description string
}

var sarifRules = []sarifRule{
	{execution.KindParse, "InvalidJSON", "The recipe file could not be read or is not a JSON object."},
	{execution.KindMissingField, "MissingRequiredField", "A required top-level field is absent."},
	{execution.KindInvalidProfile, "InvalidProfile", "The profile is not one of the allowed profiles."},
	{execution.KindProfileMismatch, "ProfileDirectoryMismatch", "The profile does not match the containing directory name."},
	{execution.KindStepsShape, "StepsNotNonEmptyArray", "Steps must be a non-empty array."},
	{execution.KindStepShape, "InvalidStep", "A step is not an object or lacks id/uses."},
	{execution.KindSchema, "StrictSchema", "The recipe violates a strict-mode check."},
}

type sarifMapper struct {
	report    *execution.ValidationReport
	cwd       string                     // Current working directory
	artifacts map[string]*sarif.Artifact // Deduplicated artifacts
	order     []string                   // Artifact insertion order
}

func newSARIFMapper(report *execution.ValidationReport) *sarifMapper {
	cwd, _ := os.Getwd() // Best effort, ignore error
	return &sarifMapper{
		report:    report,
		cwd:       cwd,
		artifacts: make(map[string]*sarif.Artifact),
	}
}

// mapToRun populates the SARIF run with rules, results, artifacts, and invocations.
func (m *sarifMapper) mapToRun(run *sarif.Run) {
	m.addRules(run)
	m.addResults(run)
	m.addArtifacts(run)
	m.addInvocation(run)
	m.addProperties(run)
}

// addRules registers one rule per finding kind.
func (m *sarifMapper) addRules(run *sarif.Run) {
	for _, r := range sarifRules {
		rule := sarif.NewReportingDescriptor().WithID(string(r.kind))
		rule.WithName(r.name)

		name := r.name
		desc := r.description
		rule.WithShortDescription(&sarif.MultiformatMessageString{Text: &name})
		rule.WithFullDescription(&sarif.MultiformatMessageString{Text: &desc})
		rule.WithDefaultConfiguration(&sarif.ReportingConfiguration{Level: "error"})

		run.Tool.Driver.AddRule(rule)
	}
}

// addResults converts every finding into a SARIF result.
func (m *sarifMapper) addResults(run *sarif.Run) {
	for _, file := range m.report.Files {
		m.registerArtifact(file.Path)
		for _, finding := range file.Findings {
			run.AddResult(m.mapFinding(finding))
		}
	}
}

func (m *sarifMapper) mapFinding(finding execution.Finding) *sarif.Result {
	result := sarif.NewRuleResult(string(finding.Kind))
	result.Level = "error"
	result.Kind = "fail"
	result.Message = sarif.NewTextMessage(finding.Message)
	result.Locations = []*sarif.Location{m.createLocation(finding.Path)}
	return result
}

func (m *sarifMapper) createLocation(path string) *sarif.Location {
	pLoc := sarif.NewPhysicalLocation().
		WithArtifactLocation(sarif.NewArtifactLocation().WithURI(m.normalizeURI(path)))
	return sarif.NewLocation().WithPhysicalLocation(pLoc)
}

// normalizeURI converts a file path to a SARIF-compliant URI.
func (m *sarifMapper) normalizeURI(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.ToSlash(path) // Fallback to original
	}

	// Try to make relative to CWD
	if m.cwd != "" {
		if rel, err := filepath.Rel(m.cwd, abs); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}

	// Use absolute file:// URI
	return "file://" + filepath.ToSlash(abs)
}

// registerArtifact adds a recipe file to the artifacts map (deduplicated).
func (m *sarifMapper) registerArtifact(path string) {
	uri := m.normalizeURI(path)
	if _, exists := m.artifacts[uri]; exists {
		return
	}

	artifact := sarif.NewArtifact().
		WithLocation(sarif.NewArtifactLocation().WithURI(uri))
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		artifact.WithLength(int(info.Size()))
	}

	m.artifacts[uri] = artifact
	m.order = append(m.order, uri)
}

// addArtifacts adds collected artifacts to the run in discovery order.
func (m *sarifMapper) addArtifacts(run *sarif.Run) {
	for _, uri := range m.order {
		run.AddArtifact(m.artifacts[uri])
	}
}

// addInvocation adds run metadata.
func (m *sarifMapper) addInvocation(run *sarif.Run) {
	invocation := sarif.NewInvocation()

	// The tool itself ran to completion; findings are reported as results
	invocation.ExecutionSuccessful = ptrBool(true)

	startTime := m.report.StartTime.UTC().Format("2006-01-02T15:04:05.000Z")
	endTime := m.report.EndTime.UTC().Format("2006-01-02T15:04:05.000Z")
	invocation.StartTimeUtc = &startTime
	invocation.EndTimeUtc = &endTime

	if m.cwd != "" {
		cwd := "file://" + filepath.ToSlash(m.cwd)
		invocation.WorkingDirectory = sarif.NewArtifactLocation().WithURI(cwd)
	}

	props := sarif.NewPropertyBag()
	props.Add("runId", m.report.RunID.String())
	props.Add("strict", m.report.Strict)
	invocation.WithProperties(props)

	run.AddInvocation(invocation)
}

// addProperties adds summary statistics to run properties.
func (m *sarifMapper) addProperties(run *sarif.Run) {
	props := sarif.NewPropertyBag()
	props.Add("summary", m.report.Summary)
	run.WithProperties(props)
}
