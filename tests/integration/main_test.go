package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestMain(m *testing.M) {
	root, err := FindProjectRoot()
	if err != nil {
		buildErr = err
		os.Exit(m.Run())
	}

	binDir, err := os.MkdirTemp("", "folio-integration")
	if err != nil {
		buildErr = err
		os.Exit(m.Run())
	}
	defer os.RemoveAll(binDir)

	bin := filepath.Join(binDir, "folio")
	cmd := exec.Command("go", "build", "-o", bin, "./cmd/folio")
	cmd.Dir = root
	if out, err := cmd.CombinedOutput(); err != nil {
		buildErr = &BuildError{Err: err, Output: string(out)}
		os.Exit(m.Run())
	}
	folioBin = bin

	os.Exit(m.Run())
}

// BuildError wraps a build error with its output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}
