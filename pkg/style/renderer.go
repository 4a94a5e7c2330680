package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/classifiles/pkg/types"
)

// Renderer formats run summaries for the terminal
type Renderer struct{}

// NewRenderer creates a terminal renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderScanSummary formats the end-of-run summary for scan
func (r *Renderer) RenderScanSummary(result *types.ScanResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s linked", SuccessIndicator, countNoun(result.Linked, "file")))
	if result.Skipped > 0 {
		b.WriteString(fmt.Sprintf(", %s %d skipped", InfoIndicator, result.Skipped))
	}
	if result.Failed > 0 {
		b.WriteString(fmt.Sprintf(", %s %d failed", ErrorIndicator, result.Failed))
	}
	b.WriteString(r.renderFileErrors(result.Errors))

	return b.String()
}

// RenderConvertSummary formats the end-of-run summary for backup/restore.
// action is the past-tense phrase, e.g. "backed up" or "restored".
func (r *Renderer) RenderConvertSummary(action string, result *types.ConvertResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s %s", SuccessIndicator, countNoun(result.Converted, "link"), action))
	if result.Passed > 0 {
		b.WriteString(fmt.Sprintf(", %s %d carried through", InfoIndicator, result.Passed))
	}
	if result.Failed > 0 {
		b.WriteString(fmt.Sprintf(", %s %d failed", ErrorIndicator, result.Failed))
	}
	b.WriteString(r.renderFileErrors(result.Errors))

	return b.String()
}

// RenderError formats a fatal error
func (r *Renderer) RenderError(err error) string {
	return ErrorStyle.Render(fmt.Sprintf("Error: %v", err))
}

func (r *Renderer) renderFileErrors(errs []types.FileError) string {
	if len(errs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	for _, fe := range errs {
		b.WriteString(fmt.Sprintf("\n  %s %s: %s",
			WarningIndicator, PathStyle.Render(fe.Path), MutedStyle.Render(fe.Err.Error())))
	}
	return b.String()
}

func countNoun(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
