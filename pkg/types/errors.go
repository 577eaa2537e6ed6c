package types

import "errors"

// Standard errors. Callers match against these with errors.Is; the
// wrapped message carries the detail (path, index, field).
var (
	// ErrDocumentNotFound is returned when the canonical document file
	// does not exist. Fatal to the session: no default document is
	// fabricated in its place.
	ErrDocumentNotFound = errors.New("portfolio document not found")

	// ErrMalformedDocument is returned when the canonical document file
	// exists but is not valid JSON. Fatal to the session.
	ErrMalformedDocument = errors.New("portfolio document is not valid JSON")

	// ErrIndexOutOfRange is returned by list operations that reference a
	// position outside the current bounds. Recoverable; no mutation is
	// applied.
	ErrIndexOutOfRange = errors.New("list index out of range")

	// ErrValidation is returned when an input violates a hard schema rule
	// with no sensible silent correction. Recoverable; no mutation is
	// applied.
	ErrValidation = errors.New("invalid input")

	// ErrPersistence is returned when a save or backup write fails. The
	// in-memory document is preserved and the commit may be retried.
	ErrPersistence = errors.New("failed to persist portfolio document")

	// ErrSessionClosed is returned by operations on a closed editing
	// session.
	ErrSessionClosed = errors.New("editing session is closed")

	// ErrSectionUnknown is returned when a list operation names a section
	// that has no list.
	ErrSectionUnknown = errors.New("unknown list section")
)
