// Package errors provides error handling for pipecheck.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for user-facing messages
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := loadManifest(path); err != nil {
//	    return errors.Wrapf(err, "load manifest %s", path)
//	}
//
//	// Check error class
//	if errors.Is(err, errors.ErrManifestInvalid) {
//	    // catalog integrity failure — abort the run
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Sentinel errors for the fatal error classes of a validation run.
// Wrap these with errors.Wrap() to add context while preserving the class;
// check with errors.Is().
var (
	// ErrBadConfig indicates the resolved configuration is unusable
	// (a root path missing, or not a directory).
	ErrBadConfig = New("invalid configuration")

	// ErrManifestInvalid indicates an integration manifest that failed to
	// parse or lacks required keys. Always fatal: there is no
	// partial-catalog mode.
	ErrManifestInvalid = New("invalid manifest")

	// ErrPipelineInvalid indicates a pipeline definition file that failed
	// to parse or carries no id. Always fatal.
	ErrPipelineInvalid = New("invalid pipeline definition")

	// ErrAmbiguousAlias indicates a pipeline id that aliases more than one
	// integration. Treated as a hard error rather than silently crediting
	// the first match.
	ErrAmbiguousAlias = New("ambiguous pipeline alias")
)

// IsFatalLoadError reports whether err belongs to a catalog integrity class
// that must abort the run before any report is emitted.
func IsFatalLoadError(err error) bool {
	return err != nil && IsAny(err, ErrBadConfig, ErrManifestInvalid, ErrPipelineInvalid, ErrAmbiguousAlias)
}

// NewManifestError creates a manifest integrity error with a formatted message.
func NewManifestError(format string, args ...interface{}) error {
	return Wrap(ErrManifestInvalid, Newf(format, args...).Error())
}

// NewPipelineError creates a pipeline integrity error with a formatted message.
func NewPipelineError(format string, args ...interface{}) error {
	return Wrap(ErrPipelineInvalid, Newf(format, args...).Error())
}
