package types

// FileType is the result of content detection for a single file.
// An empty Label means the content could not be identified; an empty
// Ext means the label has no canonical extension.
type FileType struct {
	Label string // canonical lowercase MIME label, e.g. "image/png"
	Ext   string // canonical extension without leading dot, e.g. "png"
}

// Known reports whether detection produced a usable label
func (ft FileType) Known() bool {
	return ft.Label != ""
}

// FileError records a per-file failure that did not abort the run
type FileError struct {
	Path string
	Err  error
}

// ScanResult summarizes a scan run. Per-file failures are collected
// here rather than aborting the walk.
type ScanResult struct {
	Linked  int // symlinks created
	Skipped int // non-regular entries and already-linked destinations
	Failed  int
	Errors  []FileError
}

// ConvertResult summarizes a backup or restore run
type ConvertResult struct {
	Converted int // symlinks turned into markers, or markers into symlinks
	Passed    int // entries carried through unchanged
	Failed    int
	Errors    []FileError
}
