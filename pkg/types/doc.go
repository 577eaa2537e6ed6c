// Package types defines the portfolio document schema, section entity
// types, and standard errors for the Folio content system.
package types
