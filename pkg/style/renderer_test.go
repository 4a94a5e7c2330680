package style

import (
	"fmt"
	"testing"

	"github.com/arthur-debert/classifiles/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestRenderScanSummary(t *testing.T) {
	r := NewRenderer()

	out := r.RenderScanSummary(&types.ScanResult{Linked: 3, Skipped: 1})
	assert.Contains(t, out, "3 files linked")
	assert.Contains(t, out, "1 skipped")
	assert.NotContains(t, out, "failed")

	out = r.RenderScanSummary(&types.ScanResult{Linked: 1})
	assert.Contains(t, out, "1 file linked")
}

func TestRenderScanSummaryWithErrors(t *testing.T) {
	r := NewRenderer()
	result := &types.ScanResult{
		Linked: 2,
		Failed: 1,
		Errors: []types.FileError{
			{Path: "/in/broken.bin", Err: fmt.Errorf("permission denied")},
		},
	}

	out := r.RenderScanSummary(result)
	assert.Contains(t, out, "1 failed")
	assert.Contains(t, out, "/in/broken.bin")
	assert.Contains(t, out, "permission denied")
}

func TestRenderConvertSummary(t *testing.T) {
	r := NewRenderer()

	out := r.RenderConvertSummary("backed up", &types.ConvertResult{Converted: 2, Passed: 3})
	assert.Contains(t, out, "2 links backed up")
	assert.Contains(t, out, "3 carried through")
}

func TestRenderError(t *testing.T) {
	out := NewRenderer().RenderError(fmt.Errorf("boom"))
	assert.Contains(t, out, "boom")
}
