// Package types defines the core types shared across classifiles:
// the filesystem interface, detection results, and per-run summaries.
//
// Keeping these in a leaf package lets pkg/detect, pkg/commands and the
// CLI depend on the same contracts without import cycles.
package types
