// Package filesystem provides filesystem implementations for classifiles.
//
// This package contains implementations of the types.FS interface.
// Production code uses the OS filesystem; tests may substitute their own.
package filesystem
