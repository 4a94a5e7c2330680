package commands

import (
	iofs "io/fs"
	"path/filepath"

	"github.com/arthur-debert/classifiles/pkg/types"
)

// walkDir mirrors filepath.WalkDir but reads directories through fsys, so
// an injected filesystem sees the traversal and not just the per-file
// operations. Entries are visited in lexical order per directory.
func walkDir(fsys types.FS, root string, fn iofs.WalkDirFunc) error {
	info, err := fsys.Lstat(root)
	if err != nil {
		err = fn(root, nil, err)
	} else {
		err = walkEntry(fsys, root, iofs.FileInfoToDirEntry(info), fn)
	}
	if err == filepath.SkipDir {
		return nil
	}
	return err
}

func walkEntry(fsys types.FS, path string, d iofs.DirEntry, fn iofs.WalkDirFunc) error {
	if err := fn(path, d, nil); err != nil {
		if err == filepath.SkipDir && d.IsDir() {
			return nil
		}
		return err
	}
	if !d.IsDir() {
		return nil
	}

	entries, err := fsys.ReadDir(path)
	if err != nil {
		// report the unreadable directory; a nil return from fn resumes
		// the walk with its siblings
		return fn(path, d, err)
	}
	for _, entry := range entries {
		if err := walkEntry(fsys, filepath.Join(path, entry.Name()), entry, fn); err != nil {
			return err
		}
	}
	return nil
}
