package commands

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/classifiles/pkg/config"
	"github.com/arthur-debert/classifiles/pkg/detect"
	"github.com/arthur-debert/classifiles/pkg/errors"
	"github.com/arthur-debert/classifiles/pkg/filesystem"
	"github.com/arthur-debert/classifiles/pkg/logging"
	"github.com/arthur-debert/classifiles/pkg/types"
	"github.com/rs/zerolog"
)

// ScanOptions configures the scan operation
type ScanOptions struct {
	// Input is a directory to walk, or a single regular file
	Input string

	// OutputDir receives the classified symlink tree; created if missing
	OutputDir string

	// Config supplies the detect and scan sections; Default() when nil
	Config *config.Config

	// FS defaults to the OS filesystem
	FS types.FS

	// Detector defaults to one built from Config
	Detector *detect.Detector
}

// Scan classifies every regular file under Input and links it from
// OutputDir/<sanitized label>/. Traversal is lexicographic, so collision
// suffixes are deterministic and re-running scan is reproducible.
func Scan(opts ScanOptions) (*types.ScanResult, error) {
	logger := logging.GetLogger("commands.scan")

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}
	detector := opts.Detector
	if detector == nil {
		detector = detect.New(cfg.Detect)
	}
	unknownDir := cfg.Scan.UnknownDir
	if unknownDir == "" {
		unknownDir = config.Default().Scan.UnknownDir
	}

	inputInfo, err := fs.Stat(opts.Input)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputAccess, "cannot access input %s", opts.Input)
	}

	absInput, err := filepath.Abs(opts.Input)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInputAccess, "cannot resolve input path")
	}

	if err := fs.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrOutputAccess, "cannot create output %s", opts.OutputDir)
	}

	sc := &scanner{
		fs:         fs,
		detector:   detector,
		outputDir:  opts.OutputDir,
		unknownDir: unknownDir,
		logger:     logger,
		result:     &types.ScanResult{},
	}

	if inputInfo.Mode().IsRegular() {
		sc.processFile(absInput)
		return sc.result, nil
	}
	if !inputInfo.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "input %s is neither a regular file nor a directory", opts.Input)
	}

	// lexical order per directory keeps collision numbering stable
	// across runs
	walkErr := walkDir(fs, absInput, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			if path == absInput {
				return err
			}
			sc.recordError(path, errors.Wrap(err, errors.ErrInputAccess, "cannot read entry"))
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			// symlinks and special files are never classified
			logger.Debug().Str("path", path).Str("mode", d.Type().String()).Msg("skipping non-regular entry")
			sc.result.Skipped++
			return nil
		}
		sc.processFile(path)
		return nil
	})
	if walkErr != nil {
		return nil, errors.Wrapf(walkErr, errors.ErrInputAccess, "cannot walk input %s", opts.Input)
	}

	logger.Info().
		Int("linked", sc.result.Linked).
		Int("skipped", sc.result.Skipped).
		Int("failed", sc.result.Failed).
		Msg("scan finished")
	return sc.result, nil
}

type scanner struct {
	fs         types.FS
	detector   *detect.Detector
	outputDir  string
	unknownDir string
	logger     zerolog.Logger
	result     *types.ScanResult
}

// processFile classifies one file and links it into the output tree.
// Failures are recorded on the result; they never abort the walk.
func (s *scanner) processFile(path string) {
	ft, err := s.detector.Detect(path)
	if err != nil {
		s.recordError(path, err)
		return
	}

	destDir := filepath.Join(s.outputDir, s.labelDir(ft))
	if err := s.fs.MkdirAll(destDir, 0755); err != nil {
		s.recordError(path, errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", destDir))
		return
	}

	name := destName(filepath.Base(path), ft.Ext)
	created, err := s.linkWithSuffix(path, destDir, name)
	if err != nil {
		s.recordError(path, err)
		return
	}
	if !created {
		// an identical link already exists; re-scans are idempotent
		s.result.Skipped++
		return
	}
	s.result.Linked++
}

// linkWithSuffix creates the symlink under destDir, appending -1, -2, ...
// before the extension until a free name is found. It reports false when
// an existing link already points at target.
func (s *scanner) linkWithSuffix(target, destDir, name string) (bool, error) {
	for n := 0; ; n++ {
		candidate := name
		if n > 0 {
			candidate = suffixedName(name, n)
		}
		destPath := filepath.Join(destDir, candidate)

		if _, err := s.fs.Lstat(destPath); err != nil {
			// name is free
			if err := s.fs.Symlink(target, destPath); err != nil {
				return false, errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot link %s", destPath)
			}
			s.logger.Debug().Str("link", destPath).Str("target", target).Msg("symlink created")
			return true, nil
		}

		if existing, err := s.fs.Readlink(destPath); err == nil && existing == target {
			s.logger.Debug().Str("link", destPath).Msg("already linked, skipping")
			return false, nil
		}
	}
}

// labelDir maps a detected label to a single output path segment
func (s *scanner) labelDir(ft types.FileType) string {
	if !ft.Known() {
		return s.unknownDir
	}
	return SanitizeLabel(ft.Label, s.unknownDir)
}

// SanitizeLabel makes a type label safe to use as one path segment:
// separators become dashes ("image/png" -> "image-png") and degenerate
// results fall back to the unknown directory name.
func SanitizeLabel(label, fallback string) string {
	sanitized := strings.Map(func(r rune) rune {
		if r == '/' || r == filepath.Separator || r == 0 {
			return '-'
		}
		return r
	}, label)

	switch sanitized {
	case "", ".", "..":
		return fallback
	}
	return sanitized
}

// destName appends the canonical extension when the original filename
// lacks it or carries a different one
func destName(base, ext string) string {
	if ext == "" {
		return base
	}
	if strings.EqualFold(filepath.Ext(base), "."+ext) {
		return base
	}
	return base + "." + ext
}

// suffixedName inserts -n before the extension: "photo.png" -> "photo-1.png"
func suffixedName(name string, n int) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s-%d%s", stem, n, ext)
}

func (s *scanner) recordError(path string, err error) {
	s.logger.Warn().Err(err).Str("path", path).Msg("skipping file")
	s.result.Failed++
	s.result.Errors = append(s.result.Errors, types.FileError{Path: path, Err: err})
}
