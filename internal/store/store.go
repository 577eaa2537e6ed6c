// Package store persists the portfolio document to disk. Saves are
// atomic (temp file + rename) and, by default, preceded by a timestamped
// full copy of the previous file into the backup directory.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/folio/pkg/types"
)

// Backup file naming: portfolio-data_YYYYMMDD_HHMMSS.json. Two backups
// within the same second overwrite each other; the canonical file is
// never at risk, only the backup trail.
const (
	backupPrefix     = "portfolio-data_"
	backupTimeFormat = "20060102_150405"
	backupExt        = ".json"
)

// timeNow is replaced in tests to pin the backup timestamp.
var timeNow = time.Now

// Config holds the filesystem locations the store operates on. Passing
// it at construction keeps tests on isolated temporary paths.
type Config struct {
	// DataFile is the canonical document path.
	DataFile string
	// BackupDir receives timestamped copies of DataFile. Created on
	// first use; nothing in it is ever deleted by the store.
	BackupDir string
}

// Store owns the on-disk document and its backup trail.
type Store struct {
	cfg Config
	log *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for operational warnings. The default is a
// no-op logger so library use stays silent.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a Store for the given locations.
func New(cfg Config, opts ...Option) *Store {
	s := &Store{cfg: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DataFile returns the canonical document path.
func (s *Store) DataFile() string { return s.cfg.DataFile }

// BackupDir returns the backup directory path.
func (s *Store) BackupDir() string { return s.cfg.BackupDir }

// Load reads and decodes the canonical document.
// Returns a types.ErrDocumentNotFound wrap when the file does not exist
// and a types.ErrMalformedDocument wrap when it is not valid JSON. Both
// are fatal to the calling session; no default document is fabricated.
func (s *Store) Load() (*types.Document, error) {
	data, err := os.ReadFile(s.cfg.DataFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", types.ErrDocumentNotFound, s.cfg.DataFile)
		}
		return nil, fmt.Errorf("reading %s: %w", s.cfg.DataFile, err)
	}

	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrMalformedDocument, s.cfg.DataFile, err)
	}
	return &doc, nil
}

// Save writes the document as pretty-printed, human-diffable JSON:
// 2-space indent, fixed key order, raw Unicode (no HTML escaping). When
// backup is true the previous on-disk file is copied into the backup
// directory first. A failed write returns a types.ErrPersistence wrap
// and leaves both the in-memory document and the previous file intact.
func (s *Store) Save(doc *types.Document, backup bool) error {
	if backup {
		if _, err := s.Backup(); err != nil {
			// The canonical write still proceeds; losing one backup is
			// acceptable, losing the document is not.
			s.log.Warn("backup failed", zap.Error(err))
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("%w: encoding document: %v", types.ErrPersistence, err)
	}

	if err := writeFileAtomic(s.cfg.DataFile, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: writing %s: %v", types.ErrPersistence, s.cfg.DataFile, err)
	}
	return nil
}

// Backup copies the current on-disk document into the backup directory
// under a sortable second-resolution timestamp and returns the backup
// path. A missing canonical file is a no-op warning, not an error, so a
// first save can proceed. Backups are append-only.
func (s *Store) Backup() (string, error) {
	data, err := os.ReadFile(s.cfg.DataFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("no document to back up", zap.String("path", s.cfg.DataFile))
			return "", nil
		}
		return "", fmt.Errorf("%w: reading %s: %v", types.ErrPersistence, s.cfg.DataFile, err)
	}

	if err := os.MkdirAll(s.cfg.BackupDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: creating backup dir: %v", types.ErrPersistence, err)
	}

	name := backupPrefix + timeNow().Format(backupTimeFormat) + backupExt
	path := filepath.Join(s.cfg.BackupDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: writing backup %s: %v", types.ErrPersistence, path, err)
	}
	return path, nil
}

// Backups returns the backup file names in the backup directory, sorted
// lexically. Timestamped names make lexical order chronological order.
// A missing backup directory yields an empty list.
func (s *Store) Backups() ([]string, error) {
	entries, err := os.ReadDir(s.cfg.BackupDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading backup dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// writeFileAtomic writes data using the temp-file, sync, rename pattern
// so a failed write never truncates the existing file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".portfolio-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
