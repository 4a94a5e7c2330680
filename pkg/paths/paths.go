// Package paths provides centralized path handling for classifiles.
// It implements XDG Base Directory lookups for the config file and the
// log file, with environment variable overrides for testability.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigFile points at an explicit config file, bypassing the search
	EnvConfigFile = "CLASSIFILES_CONFIG"

	// EnvStateDir overrides the XDG state directory for classifiles
	EnvStateDir = "CLASSIFILES_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for classifiles-specific files
	AppDirName = "classifiles"

	// ConfigFileName is the primary config file name
	ConfigFileName = "classifiles.toml"

	// CompatConfigFileName is accepted for compatibility with older setups
	CompatConfigFileName = "config.yaml"

	// LogFileName is the name of the log file
	LogFileName = "classifiles.log"
)

// ConfigFileCandidates returns the config file locations in search order:
// an explicit CLASSIFILES_CONFIG path, the working directory (both the
// TOML name and the legacy YAML name), then the XDG config directory.
func ConfigFileCandidates() []string {
	if explicit := os.Getenv(EnvConfigFile); explicit != "" {
		return []string{explicit}
	}
	return []string{
		ConfigFileName,
		CompatConfigFileName,
		filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName),
	}
}

// LogFilePath returns the path of the append-mode log file, under the
// XDG state directory unless CLASSIFILES_STATE_DIR overrides it.
func LogFilePath() string {
	stateDir := os.Getenv(EnvStateDir)
	if stateDir == "" {
		stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}
	return filepath.Join(stateDir, LogFileName)
}
