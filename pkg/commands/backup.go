package commands

import (
	iofs "io/fs"
	"path/filepath"

	"github.com/arthur-debert/classifiles/pkg/config"
	"github.com/arthur-debert/classifiles/pkg/errors"
	"github.com/arthur-debert/classifiles/pkg/filesystem"
	"github.com/arthur-debert/classifiles/pkg/logging"
	"github.com/arthur-debert/classifiles/pkg/types"
	"github.com/rs/zerolog"
)

// ConvertOptions configures backup and restore
type ConvertOptions struct {
	InputDir  string
	OutputDir string

	// MarkerSuffix tags converted-link files; the config default is ".symlink"
	MarkerSuffix string

	// FS defaults to the OS filesystem
	FS types.FS
}

// converter carries the shared state of a backup or restore walk
type converter struct {
	fs      types.FS
	in      string
	out     string
	inPlace bool
	suffix  string
	logger  zerolog.Logger
	result  *types.ConvertResult
}

func newConverter(opts ConvertOptions, component string) (*converter, error) {
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}
	suffix := opts.MarkerSuffix
	if suffix == "" {
		suffix = config.Default().Backup.MarkerSuffix
	}

	info, err := fs.Stat(opts.InputDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputAccess, "cannot access input %s", opts.InputDir)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "input %s is not a directory", opts.InputDir)
	}

	absIn, err := filepath.Abs(opts.InputDir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInputAccess, "cannot resolve input path")
	}
	absOut, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrOutputAccess, "cannot resolve output path")
	}

	inPlace := absIn == absOut
	if !inPlace {
		if err := fs.MkdirAll(absOut, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrOutputAccess, "cannot create output %s", opts.OutputDir)
		}
	}

	return &converter{
		fs:      fs,
		in:      absIn,
		out:     absOut,
		inPlace: inPlace,
		suffix:  suffix,
		logger:  logging.GetLogger(component),
		result:  &types.ConvertResult{},
	}, nil
}

// outPath maps an input entry to its path under the output root
func (c *converter) outPath(path string) (string, error) {
	rel, err := filepath.Rel(c.in, path)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot relativize path")
	}
	return filepath.Join(c.out, rel), nil
}

func (c *converter) recordError(path string, err error) {
	c.logger.Warn().Err(err).Str("path", path).Msg("skipping entry")
	c.result.Failed++
	c.result.Errors = append(c.result.Errors, types.FileError{Path: path, Err: err})
}

// copyThrough reproduces a non-converted regular file in the output tree
func (c *converter) copyThrough(path string, info iofs.FileInfo) error {
	outPath, err := c.outPath(path)
	if err != nil {
		return err
	}
	data, err := c.fs.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileCopy, "cannot read file")
	}
	if err := c.fs.WriteFile(outPath, data, info.Mode().Perm()); err != nil {
		return errors.Wrap(err, errors.ErrFileCopy, "cannot write file")
	}
	return nil
}

// Backup replaces every symlink under InputDir with a regular marker file
// at the corresponding OutputDir path. The marker is named
// <linkname><MarkerSuffix> and contains the link target followed by a
// newline. With InputDir == OutputDir the conversion happens in place and
// the symlink is removed once the marker is written; otherwise other
// entries are copied through unchanged.
func Backup(opts ConvertOptions) (*types.ConvertResult, error) {
	c, err := newConverter(opts, "commands.backup")
	if err != nil {
		return nil, err
	}

	walkErr := walkDir(c.fs, c.in, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			// directory-level read failures are fatal for backup: a marker
			// tree missing entries would restore incompletely
			return err
		}
		if path == c.in {
			return nil
		}

		switch {
		case d.IsDir():
			if !c.inPlace {
				outPath, perr := c.outPath(path)
				if perr != nil {
					return perr
				}
				if merr := c.fs.MkdirAll(outPath, 0755); merr != nil {
					return errors.Wrapf(merr, errors.ErrOutputAccess, "cannot create %s", outPath)
				}
			}

		case d.Type()&iofs.ModeSymlink != 0:
			c.backupLink(path)

		case d.Type().IsRegular():
			if c.inPlace {
				c.result.Passed++
				break
			}
			info, ierr := d.Info()
			if ierr != nil {
				c.recordError(path, errors.Wrap(ierr, errors.ErrFileCopy, "cannot stat file"))
				break
			}
			if cerr := c.copyThrough(path, info); cerr != nil {
				c.recordError(path, cerr)
				break
			}
			c.result.Passed++

		default:
			// special files cannot be copied; leave them where they are
			c.logger.Debug().Str("path", path).Str("mode", d.Type().String()).Msg("passing over special entry")
			c.result.Passed++
		}
		return nil
	})
	if walkErr != nil {
		return nil, errors.Wrapf(walkErr, errors.ErrInputAccess, "cannot walk input %s", opts.InputDir)
	}

	c.logger.Info().
		Int("converted", c.result.Converted).
		Int("passed", c.result.Passed).
		Int("failed", c.result.Failed).
		Msg("backup finished")
	return c.result, nil
}

// backupLink converts one symlink into a marker file
func (c *converter) backupLink(path string) {
	target, err := c.fs.Readlink(path)
	if err != nil {
		c.recordError(path, errors.Wrap(err, errors.ErrLinkRead, "cannot read link target"))
		return
	}

	outPath, err := c.outPath(path)
	if err != nil {
		c.recordError(path, err)
		return
	}
	markerPath := outPath + c.suffix

	// WriteFile would follow a symlink sitting at the marker path and
	// clobber its target, so anything already there is a hard stop for
	// this entry; the link itself stays untouched
	if _, err := c.fs.Lstat(markerPath); err == nil {
		c.recordError(path, errors.Newf(errors.ErrFileWrite, "marker destination %s already exists", markerPath))
		return
	}

	if err := c.fs.WriteFile(markerPath, []byte(target+"\n"), 0644); err != nil {
		c.recordError(path, errors.Wrapf(err, errors.ErrFileWrite, "cannot write marker %s", markerPath))
		return
	}

	if c.inPlace {
		if err := c.fs.Remove(path); err != nil {
			c.recordError(path, errors.Wrap(err, errors.ErrFileWrite, "cannot remove converted link"))
			return
		}
	}

	c.logger.Debug().Str("link", path).Str("marker", markerPath).Msg("link converted")
	c.result.Converted++
}
