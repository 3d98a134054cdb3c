package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/soustack/recipes/internal/domain/execution"
)

var (
	colorRed   = lipgloss.Color("1")
	colorGreen = lipgloss.Color("2")
)

// TextFormatter writes the plain console report:
//
//	Validated 3 recipe(s) successfully.
//
// or
//
//	Validation failed:
//	- recipes/lite/a.soustack.json: missing required field 'name'
type TextFormatter struct {
	writer      io.Writer
	renderer    *lipgloss.Renderer
	EnableColor bool
}

// NewTextFormatter creates a new text formatter. Colour is off by default.
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{
		writer:   w,
		renderer: lipgloss.NewRenderer(w),
	}
}

// colorize styles the header line when colour is enabled.
func (f *TextFormatter) colorize(text string, color lipgloss.Color) string {
	if !f.EnableColor {
		return text
	}
	f.renderer.SetColorProfile(termenv.ANSI)
	return f.renderer.NewStyle().Bold(true).Foreground(color).Render(text)
}

// Format writes the summary line on success, or the header followed by
// one bullet per finding.
func (f *TextFormatter) Format(report *execution.ValidationReport) error {
	if report.Passed() {
		_, err := fmt.Fprintln(f.writer, f.colorize(
			fmt.Sprintf("Validated %d recipe(s) successfully.", len(report.Files)), colorGreen))
		return err
	}

	if _, err := fmt.Fprintln(f.writer, f.colorize("Validation failed:", colorRed)); err != nil {
		return err
	}
	for _, finding := range report.Findings {
		if _, err := fmt.Fprintf(f.writer, "- %s\n", finding); err != nil {
			return err
		}
	}
	return nil
}

// WriteNoRecipes writes the single line reported when discovery finds nothing.
func WriteNoRecipes(w io.Writer, dir string) error {
	_, err := fmt.Fprintf(w, "No recipes found under %s\n", dir)
	return err
}
