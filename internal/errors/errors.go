// Package errors provides error handling for sealgen.
//
// This package re-exports github.com/cockroachdb/errors so every layer wraps
// and inspects errors the same way:
//
//	if err := loader.Load(ctx, patterns...); err != nil {
//	    return errors.Wrap(err, "loading packages")
//	}
//
//	return errors.WithHint(err, "manifest files must end in .yaml, .toml or .hcl")
//
// Diagnostics about blueprints are not errors. They travel through
// internal/diagnostic; this package is for I/O, loading and rendering failures.
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
	Mark         = crdb.Mark
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
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Sentinel errors. Wrap them to add context; match them with Is.
var (
	// ErrInvalidManifest indicates a blueprint manifest that could not be decoded
	// or uses an unsupported schema version.
	ErrInvalidManifest = New("invalid manifest")

	// ErrUnsupportedFormat indicates a manifest file extension with no decoder.
	ErrUnsupportedFormat = New("unsupported manifest format")

	// ErrStale indicates generated files on disk differ from a fresh generation.
	ErrStale = New("generated files are stale")

	// ErrDiagnostics indicates at least one blueprint failed validation.
	ErrDiagnostics = New("blueprint validation failed")
)
