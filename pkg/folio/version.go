// Package folio exposes module-level metadata shared by the CLI and
// build tooling.
package folio

// Version is the current release of the folio module.
const Version = "0.1.0"
