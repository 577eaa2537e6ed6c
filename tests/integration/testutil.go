// Package integration provides CLI integration tests for folio.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// folioBin is the path to the built folio binary.
	folioBin string
	// buildErr captures any build error.
	buildErr error
)

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// TestEnv provides an isolated test environment with its own config
// directory and document path.
type TestEnv struct {
	t         *testing.T
	TempDir   string
	ConfigDir string
	SiteRoot  string
	DataFile  string
	BackupDir string
}

// NewTestEnv creates a new isolated test environment. The document does
// not exist yet; tests call Init or seed the file themselves.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build folio: %v", buildErr)
	}
	if folioBin == "" {
		t.Fatal("folio binary not built (folioBin is empty)")
	}

	tempDir := t.TempDir()
	siteRoot := filepath.Join(tempDir, "site")
	dataFile := filepath.Join(siteRoot, "data", "portfolio-data.json")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	return &TestEnv{
		t:         t,
		TempDir:   tempDir,
		ConfigDir: configDir,
		SiteRoot:  siteRoot,
		DataFile:  dataFile,
		BackupDir: filepath.Join(siteRoot, "data", "backups"),
	}
}

// Result holds one CLI invocation's outcome.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes the folio binary with the environment's config and
// document flags appended.
func (e *TestEnv) Run(args ...string) Result {
	e.t.Helper()

	full := append([]string{}, args...)
	full = append(full, "--config-dir", e.ConfigDir, "--data-file", e.DataFile)

	cmd := exec.Command(folioBin, full...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	code := 0
	if err := cmd.Run(); err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			e.t.Fatalf("running folio %v: %v", args, err)
		}
		code = exitErr.ExitCode()
	}
	return Result{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: code}
}

// MustRun executes folio and fails the test on a non-zero exit.
func (e *TestEnv) MustRun(args ...string) Result {
	e.t.Helper()
	res := e.Run(args...)
	if res.ExitCode != 0 {
		e.t.Fatalf("folio %v exited %d\nstdout: %s\nstderr: %s", args, res.ExitCode, res.Stdout, res.Stderr)
	}
	return res
}

// Init creates a starter document via the init command.
func (e *TestEnv) Init() {
	e.t.Helper()
	e.MustRun("init")
}

// SeedDocument writes raw JSON to the environment's document path.
func (e *TestEnv) SeedDocument(raw string) {
	e.t.Helper()
	if err := os.MkdirAll(filepath.Dir(e.DataFile), 0o755); err != nil {
		e.t.Fatalf("failed to create data dir: %v", err)
	}
	if err := os.WriteFile(e.DataFile, []byte(raw), 0o644); err != nil {
		e.t.Fatalf("failed to seed document: %v", err)
	}
}

// Document reads and decodes the on-disk document into a generic map.
func (e *TestEnv) Document() map[string]any {
	e.t.Helper()
	raw, err := os.ReadFile(e.DataFile)
	if err != nil {
		e.t.Fatalf("failed to read document: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		e.t.Fatalf("document is not valid JSON: %v", err)
	}
	return doc
}
