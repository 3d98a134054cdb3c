package output

import (
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/soustack/recipes/internal/domain/execution"
	"github.com/soustack/recipes/internal/domain/values"
)

// JUnitFormatter formats validation reports as JUnit XML.
// Each recipe file becomes one test case.
type JUnitFormatter struct {
	writer io.Writer
}

// NewJUnitFormatter creates a new JUnit formatter.
func NewJUnitFormatter(w io.Writer) *JUnitFormatter {
	return &JUnitFormatter{
		writer: w,
	}
}

// JUnitTestSuites JUnit XML structures
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Name       string           `xml:"name,attr"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Errors     int              `xml:"errors,attr"`
	Time       float64          `xml:"time,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

type JUnitTestSuite struct {
	XMLName   xml.Name        `xml:"testsuite"`
	Name      string          `xml:"name,attr"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	Errors    int             `xml:"errors,attr"`
	Time      float64         `xml:"time,attr"`
	TestCases []JUnitTestCase `xml:"testcase"`
}

type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	ClassName string        `xml:"classname,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	Error     *JUnitError   `xml:"error,omitempty"`
}

type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Content string `xml:",chardata"`
}

type JUnitError struct {
	Message string `xml:"message,attr"`
	Content string `xml:",chardata"`
}

// Format writes the validation report as JUnit XML.
func (f *JUnitFormatter) Format(report *execution.ValidationReport) error {
	suite := JUnitTestSuite{
		Name:     "recipes",
		Tests:    report.Summary.TotalFiles,
		Failures: report.Summary.FailedFiles,
		Errors:   report.Summary.ErrorFiles,
		Time:     report.Duration.Seconds(),
	}

	for _, file := range report.Files {
		c := JUnitTestCase{
			Name:      file.Path,
			ClassName: filepath.Base(filepath.Dir(file.Path)), // Directory name is the expected profile
		}

		switch file.Status {
		case values.StatusFail:
			c.Failure = &JUnitFailure{
				Message: fmt.Sprintf("%d finding(s)", len(file.Findings)),
				Content: formatFindings(file.Findings),
			}
		case values.StatusError:
			c.Error = &JUnitError{
				Message: file.Findings[0].Message,
				Content: formatFindings(file.Findings),
			}
		}

		suite.TestCases = append(suite.TestCases, c)
	}

	suites := JUnitTestSuites{
		Name:       "Recipe Validation",
		Tests:      report.Summary.TotalFiles,
		Failures:   report.Summary.FailedFiles,
		Errors:     report.Summary.ErrorFiles,
		Time:       report.Duration.Seconds(),
		TestSuites: []JUnitTestSuite{suite},
	}

	_, err := f.writer.Write([]byte(xml.Header))
	if err != nil {
		return err
	}

	encoder := xml.NewEncoder(f.writer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(suites); err != nil {
		return err
	}

	_, err = f.writer.Write([]byte("\n"))
	return err
}

func formatFindings(findings []execution.Finding) string {
	var sb strings.Builder
	for _, finding := range findings {
		fmt.Fprintf(&sb, "[%s] %s\n", finding.Kind, finding.Message)
	}
	return sb.String()
}
