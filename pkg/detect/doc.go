// Package detect identifies file content types from magic bytes.
//
// Detection never trusts a file's existing extension: the sniffer reads a
// header chunk and matches it against known signatures. The canonical
// extension for a label is resolved from the shared-mime-info XML database
// when one is available, falling back to the sniffer's own extension table,
// and cached per detector.
package detect
