package types

import "io/fs"

// FS abstracts the filesystem operations classifiles performs
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// ReadDir returns the entries of a directory sorted by filename;
	// tree traversal goes through it so doubles see the whole walk
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Remove(name string) error

	// Lstat must not follow symlinks; implementations without symlink
	// support may fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}
