// Package config loads the classifiles configuration.
//
// Configuration is layered with koanf: embedded TOML defaults first,
// then the first config file found among the paths.ConfigFileCandidates
// locations. Both TOML and the legacy YAML format (config.yaml, kept for
// compatibility with earlier releases) are accepted; the parser is picked
// by file extension.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/classifiles/pkg/errors"
	"github.com/arthur-debert/classifiles/pkg/paths"
	tomlparser "github.com/knadh/koanf/parsers/toml"
	yamlparser "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	toml "github.com/pelletier/go-toml/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// DetectConfig controls the type detector
type DetectConfig struct {
	// MimeInfoRoot is the root of the shared-mime-info database
	// (usually /usr/share/mime). An empty or missing root disables the
	// XML lookup; detection then relies on the sniffer's own extension map.
	MimeInfoRoot string `koanf:"mime_info_root" toml:"mime_info_root"`

	// RefineWith lists labels considered too coarse; files matching one
	// are re-sniffed without the header cap.
	RefineWith []string `koanf:"refine_with" toml:"refine_with"`
}

// ScanConfig controls the scan command
type ScanConfig struct {
	// UnknownDir is the output subdirectory for undetectable files
	UnknownDir string `koanf:"unknown_dir" toml:"unknown_dir"`
}

// BackupConfig controls the backup/restore commands
type BackupConfig struct {
	// MarkerSuffix is the filename suffix that tags a converted-link file
	MarkerSuffix string `koanf:"marker_suffix" toml:"marker_suffix"`
}

// Config is the complete classifiles configuration
type Config struct {
	Detect DetectConfig `koanf:"detect" toml:"detect"`
	Scan   ScanConfig   `koanf:"scan" toml:"scan"`
	Backup BackupConfig `koanf:"backup" toml:"backup"`
}

// Load builds the configuration from defaults plus the first config file
// found. An explicit non-empty path skips the search; a missing explicit
// path is an error, a missing searched path is not.
func Load(explicitPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, tomlparser.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Config file
	if explicitPath != "" {
		if err := loadFile(k, explicitPath); err != nil {
			return nil, err
		}
	} else {
		for _, candidate := range paths.ConfigFileCandidates() {
			if _, err := os.Stat(candidate); err != nil {
				continue
			}
			if err := loadFile(k, candidate); err != nil {
				return nil, err
			}
			break
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}
	return &cfg, nil
}

// Default returns the built-in configuration
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, tomlparser.Parser()); err != nil {
		// the embedded defaults are compiled in; failing to parse them is a bug
		panic(err)
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		panic(err)
	}
	return &cfg
}

// DefaultTOML renders the built-in configuration as TOML, for genconfig
func DefaultTOML() (string, error) {
	out, err := toml.Marshal(Default())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal defaults")
	}
	return string(out), nil
}

func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser = tomlparser.Parser()
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
		parser = yamlparser.Parser()
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
	}
	return nil
}
