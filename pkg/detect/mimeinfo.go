package detect

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/classifiles/pkg/logging"
	"github.com/beevik/etree"
	"github.com/rs/zerolog"
)

// MimeInfoDB resolves canonical extensions from a shared-mime-info
// database root (usually /usr/share/mime). For a label like "image/png"
// it reads <root>/image/png.xml and takes the first <glob> pattern of
// the form "*.ext". Lookups are cached, including misses.
type MimeInfoDB struct {
	root  string // empty when the database is unavailable
	cache map[string]string
}

// NewMimeInfoDB creates a MimeInfoDB rooted at root. A root that is not
// an existing directory disables the XML lookup (callers fall back to
// their own extension source) rather than failing.
func NewMimeInfoDB(root string) *MimeInfoDB {
	logger := logging.GetLogger("detect.mimeinfo")
	if root != "" {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			logger.Warn().Str("root", root).Msg("ignoring mime_info_root, not a directory")
			root = ""
		}
	}
	return &MimeInfoDB{
		root:  root,
		cache: make(map[string]string),
	}
}

// Lookup returns the canonical extension for label, if known
func (db *MimeInfoDB) Lookup(label string) (string, bool) {
	if ext, hit := db.cache[label]; hit {
		return ext, ext != ""
	}

	ext := ""
	if db.root != "" {
		ext = db.loadGlob(label)
	}
	db.cache[label] = ext
	return ext, ext != ""
}

// Set primes the cache with a known label-to-extension mapping
func (db *MimeInfoDB) Set(label, ext string) {
	db.cache[label] = ext
}

// loadGlob parses <root>/<label>.xml and extracts the first glob extension
func (db *MimeInfoDB) loadGlob(label string) string {
	path := filepath.Join(db.root, label+".xml")
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return ""
	}
	return extractGlobExt(doc, logging.GetLogger("detect.mimeinfo"))
}

func extractGlobExt(doc *etree.Document, logger zerolog.Logger) string {
	for _, glob := range doc.FindElements("//glob") {
		pattern := glob.SelectAttrValue("pattern", "")
		if strings.HasPrefix(pattern, "*.") && len(pattern) > 2 {
			return strings.TrimPrefix(pattern, "*.")
		}
		logger.Trace().Str("pattern", pattern).Msg("skipping non-extension glob pattern")
	}
	return ""
}
