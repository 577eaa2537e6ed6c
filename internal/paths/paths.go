// Package paths resolves the configuration directory and document
// locations for the folio CLI.
package paths

import (
	"os"
	"path/filepath"
)

// CWD-relative defaults matching the static site's layout: the document
// lives beside the assets it references.
const (
	DefaultConfigDirName = ".folio"
	DefaultDataFilePath  = "data/portfolio-data.json"
	BackupDirName        = "backups"
)

// Environment variable names for location overrides.
const (
	EnvConfigDir = "FOLIO_CONFIG_DIR"
	EnvDataFile  = "FOLIO_DATA_FILE"
)

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > FOLIO_CONFIG_DIR env > $(CWD)/.folio.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultConfigDirName), nil
}

// ResolveDataFile returns the canonical document path following the
// precedence chain: flag > config.yaml data_file > FOLIO_DATA_FILE env >
// $(CWD)/data/portfolio-data.json.
func ResolveDataFile(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataFile); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, filepath.FromSlash(DefaultDataFilePath)), nil
}

// BackupDir returns the backup directory for a document path: a sibling
// directory named "backups" (data/portfolio-data.json -> data/backups).
func BackupDir(dataFile string) string {
	return filepath.Join(filepath.Dir(dataFile), BackupDirName)
}

// SiteRoot returns the static site root for a document path: the parent
// of the data directory. Asset paths in the document are relative to it.
func SiteRoot(dataFile string) string {
	return filepath.Dir(filepath.Dir(dataFile))
}
