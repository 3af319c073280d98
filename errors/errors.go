// Package errors provides error handling for dynspv.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Assertion errors for grammar structural violations
//
// Usage:
//
//	// Create new error
//	err := errors.Newf("unknown operand kind: %s", kind)
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, ErrStaleOutput) {
//	    // handle stale generated header
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
	Is        = crdb.Is
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions. Generation failures that can only come from a malformed
// grammar or an incomplete mapping table are assertion errors: the fix
// is a data update, never a runtime recovery path.
var (
	AssertionFailedf    = crdb.AssertionFailedf
	HasAssertionFailure = crdb.HasAssertionFailure
)

// Sentinel errors for use across dynspv.
// Use these with errors.Is() for type-safe error checking.
var (
	// ErrStaleOutput indicates the generated header no longer matches
	// what the grammar would produce (reported by check mode).
	ErrStaleOutput = New("generated output is stale")
)
