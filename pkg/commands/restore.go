package commands

import (
	iofs "io/fs"
	"strings"

	"github.com/arthur-debert/classifiles/pkg/errors"
	"github.com/arthur-debert/classifiles/pkg/types"
)

// Restore is the inverse of Backup: every regular file carrying the
// marker suffix is read back as a single-line target path, and a symlink
// named without the suffix is created at the corresponding OutputDir
// path. With InputDir == OutputDir the marker file is removed once the
// link exists, which makes restore(backup(tree)) reproduce the tree
// exactly. Malformed markers are reported and skipped; the run continues.
func Restore(opts ConvertOptions) (*types.ConvertResult, error) {
	c, err := newConverter(opts, "commands.restore")
	if err != nil {
		return nil, err
	}

	walkErr := walkDir(c.fs, c.in, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
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

		case d.Type().IsRegular() && c.isMarker(d.Name()):
			c.restoreLink(path)

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

		case d.Type()&iofs.ModeSymlink != 0:
			// a symlink in a backed-up tree is unexpected but harmless;
			// carry it through unchanged
			if c.inPlace {
				c.result.Passed++
				break
			}
			target, rerr := c.fs.Readlink(path)
			if rerr != nil {
				c.recordError(path, errors.Wrap(rerr, errors.ErrLinkRead, "cannot read link target"))
				break
			}
			outPath, perr := c.outPath(path)
			if perr != nil {
				c.recordError(path, perr)
				break
			}
			if serr := c.fs.Symlink(target, outPath); serr != nil {
				c.recordError(path, errors.Wrapf(serr, errors.ErrSymlinkCreate, "cannot link %s", outPath))
				break
			}
			c.result.Passed++

		default:
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
		Msg("restore finished")
	return c.result, nil
}

// isMarker reports whether name carries the marker suffix with a
// non-empty stem
func (c *converter) isMarker(name string) bool {
	return strings.HasSuffix(name, c.suffix) && len(name) > len(c.suffix)
}

// restoreLink turns one marker file back into a symlink
func (c *converter) restoreLink(path string) {
	target, err := c.readMarker(path)
	if err != nil {
		c.recordError(path, err)
		return
	}

	outPath, err := c.outPath(path)
	if err != nil {
		c.recordError(path, err)
		return
	}
	linkPath := strings.TrimSuffix(outPath, c.suffix)

	if _, err := c.fs.Lstat(linkPath); err == nil {
		if existing, rerr := c.fs.Readlink(linkPath); rerr == nil && existing == target {
			// re-running restore over a mixed tree is idempotent
			c.result.Passed++
			return
		}
		c.recordError(path, errors.Newf(errors.ErrSymlinkCreate, "destination %s already exists", linkPath))
		return
	}

	if err := c.fs.Symlink(target, linkPath); err != nil {
		c.recordError(path, errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot link %s", linkPath))
		return
	}

	if c.inPlace {
		if err := c.fs.Remove(path); err != nil {
			c.recordError(path, errors.Wrap(err, errors.ErrFileWrite, "cannot remove marker"))
			return
		}
	}

	c.logger.Debug().Str("marker", path).Str("link", linkPath).Str("target", target).Msg("link restored")
	c.result.Converted++
}

// readMarker validates and parses a converted-link file: exactly one
// non-empty line, terminated by at most one newline
func (c *converter) readMarker(path string) (string, error) {
	data, err := c.fs.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRestoreMarker, "cannot read marker")
	}

	content := string(data)
	content = strings.TrimSuffix(content, "\n")
	if content == "" || strings.ContainsAny(content, "\n\r") {
		return "", errors.Newf(errors.ErrRestoreMarker, "malformed marker %s", path)
	}
	return content, nil
}
