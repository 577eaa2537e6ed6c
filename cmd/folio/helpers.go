// Shared helpers for folio CLI commands.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/folio/internal/assets"
	"github.com/mesh-intelligence/folio/internal/paths"
	"github.com/mesh-intelligence/folio/internal/repo"
	"github.com/mesh-intelligence/folio/internal/session"
	"github.com/mesh-intelligence/folio/internal/store"
	"github.com/mesh-intelligence/folio/pkg/types"
)

// openStore resolves the document location and builds a Store for it.
func openStore() (*store.Store, error) {
	dataFile, err := resolveDataFile()
	if err != nil {
		return nil, fmt.Errorf("resolve data file: %w", err)
	}
	return store.New(store.Config{
		DataFile:  dataFile,
		BackupDir: paths.BackupDir(dataFile),
	}, store.WithLogger(appLogger)), nil
}

// assetDirs returns the asset destinations for the resolved document.
func assetDirs() (assets.Dirs, error) {
	dataFile, err := resolveDataFile()
	if err != nil {
		return assets.Dirs{}, fmt.Errorf("resolve data file: %w", err)
	}
	return assets.Dirs{SiteRoot: paths.SiteRoot(dataFile)}, nil
}

// withSession opens an editing session, runs fn, and closes the session
// without saving. Used by read-only commands.
func withSession(fn func(*session.Session) error) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	s, err := session.Open(st, session.WithLogger(appLogger))
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

// mutate opens an editing session, applies fn to the repository, and
// commits (saving with a backup of the previous file). Each mutating
// CLI invocation is its own short session: open, apply, commit, close.
func mutate(fn func(*repo.Repository) error) error {
	return withSession(func(s *session.Session) error {
		if err := s.Apply(fn); err != nil {
			return err
		}
		return s.Commit()
	})
}

// parseIndex converts a 1-based user-facing position argument into a
// 0-based index. Bounds are checked by the repository.
func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: position %q is not a number", types.ErrValidation, arg)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: position %d (numbering starts at 1)", types.ErrIndexOutOfRange, n)
	}
	return n - 1, nil
}

// printJSON writes v as indented JSON without HTML escaping.
func printJSON(v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Print(buf.String())
	return nil
}
