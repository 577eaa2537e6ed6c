// Package main provides the folio CLI, a scripted editor for the
// portfolio document behind the static site.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/folio/pkg/types"
)

// Exit codes. Load-time failures get distinct codes so scripts can tell
// a missing document from a corrupt one.
const (
	exitSuccess     = 0
	exitUserError   = 1
	exitSysError    = 2
	exitNoDocument  = 3
	exitBadDocument = 4
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "folio:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error chain to the CLI exit code.
func exitCode(err error) int {
	switch {
	case errors.Is(err, types.ErrDocumentNotFound):
		return exitNoDocument
	case errors.Is(err, types.ErrMalformedDocument):
		return exitBadDocument
	case errors.Is(err, types.ErrPersistence):
		return exitSysError
	case errors.Is(err, types.ErrValidation),
		errors.Is(err, types.ErrIndexOutOfRange),
		errors.Is(err, types.ErrSectionUnknown):
		return exitUserError
	}
	return exitUserError
}
