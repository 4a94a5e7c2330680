// Package commands implements the classifiles operations: scan, backup
// and restore. Each is a function taking an Options struct and returning
// a result summary; per-file failures are collected into the result
// rather than aborting the run, and only setup failures (missing input,
// unusable output) return an error.
package commands
