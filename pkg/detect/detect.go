package detect

import (
	"slices"
	"strings"

	"github.com/arthur-debert/classifiles/pkg/config"
	"github.com/arthur-debert/classifiles/pkg/errors"
	"github.com/arthur-debert/classifiles/pkg/logging"
	"github.com/arthur-debert/classifiles/pkg/types"
	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
)

// headerLimit caps how much of a file the sniffer reads on the first pass.
// Labels listed in refine_with get a second, uncapped pass.
const headerLimit = 3072

// Detector classifies files by content
type Detector struct {
	mimeInfo   *MimeInfoDB
	refineWith []string
	logger     zerolog.Logger
}

// New creates a Detector from the detect section of the config
func New(cfg config.DetectConfig) *Detector {
	return &Detector{
		mimeInfo:   NewMimeInfoDB(cfg.MimeInfoRoot),
		refineWith: cfg.RefineWith,
		logger:     logging.GetLogger("detect"),
	}
}

// Detect sniffs the content of the file at path and returns its type.
// The file must be openable; unreadable files (permission, broken
// symlink, I/O error) yield a DETECT_FAILED error that callers should
// treat as a per-file failure.
func (d *Detector) Detect(path string) (types.FileType, error) {
	mimetype.SetLimit(headerLimit)
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return types.FileType{}, errors.Wrap(err, errors.ErrDetectFailed, "cannot sniff content").
			WithDetail("path", path)
	}

	label := canonicalLabel(mtype.String())

	// Container formats like zip hide their real type deeper in the file
	if slices.Contains(d.refineWith, label) {
		d.logger.Debug().Str("path", path).Str("label", label).Msg("coarse match, re-sniffing whole file")
		mimetype.SetLimit(0)
		refined, rerr := mimetype.DetectFile(path)
		mimetype.SetLimit(headerLimit)
		if rerr == nil {
			mtype = refined
			label = canonicalLabel(refined.String())
		}
	}

	d.logger.Debug().Str("path", path).Str("label", label).Msg("content matched")

	if ext, ok := d.mimeInfo.Lookup(label); ok {
		return types.FileType{Label: label, Ext: ext}, nil
	}

	if ext := strings.TrimPrefix(mtype.Extension(), "."); ext != "" {
		// cache the sniffer's answer so the XML database is not probed
		// again for this label
		d.mimeInfo.Set(label, ext)
		return types.FileType{Label: label, Ext: ext}, nil
	}

	return types.FileType{Label: label}, nil
}

// canonicalLabel lowercases a sniffed MIME string and strips parameters,
// e.g. "text/plain; charset=utf-8" becomes "text/plain".
func canonicalLabel(s string) string {
	if i := strings.IndexByte(s, ';'); i >= 0 {
		s = s[:i]
	}
	return strings.ToLower(strings.TrimSpace(s))
}
