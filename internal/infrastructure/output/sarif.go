// Package output provides formatters for recipe validation reports.
package output

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"
	"github.com/soustack/recipes/internal/domain/execution"
)

// SARIFFormatter formats validation reports as SARIF 2.1.0 JSON.
// Finding kinds map to SARIF rules, findings to results located in the
// recipe file.
//
// Usage:
//
//	formatter := output.NewSARIFFormatter(os.Stdout)
//	if err := formatter.Format(report); err != nil {
//	    log.Fatal(err)
//	}
type SARIFFormatter struct {
	writer io.Writer
}

// NewSARIFFormatter creates a new SARIF formatter.
func NewSARIFFormatter(writer io.Writer) *SARIFFormatter {
	return &SARIFFormatter{
		writer: writer,
	}
}

// Format writes the validation report as SARIF 2.1.0 JSON.
func (f *SARIFFormatter) Format(report *execution.ValidationReport) error {
	sarifReport := sarif.NewReport()

	run := sarif.NewRunWithInformationURI("validate-recipes", "https://github.com/soustack/recipes")
	if report.ValidatorVersion != "" {
		run.Tool.Driver.Version = ptrString(report.ValidatorVersion)
	}
	run.Tool.Driver.Organization = ptrString("Soustack")

	mapper := newSARIFMapper(report)
	mapper.mapToRun(run)

	sarifReport.AddRun(run)

	if err := sarifReport.Write(f.writer); err != nil {
		return fmt.Errorf("failed to write SARIF output: %w", err)
	}

	_, err := f.writer.Write([]byte("\n"))
	return err
}

func ptrString(s string) *string {
	return &s
}

func ptrBool(b bool) *bool {
	return &b
}
