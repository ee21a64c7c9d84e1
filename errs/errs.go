// Package errs collects the sentinel errors and panic types the writer
// raises, grouped by the component that detects them (spec.md §7). Callers
// compare against these with errors.Is rather than string-matching.
package errs

import "errors"

// Configuration errors.
var (
	ErrInvalidStripeSize     = errors.New("orc: stripe size must be positive")
	ErrInvalidBlockSize      = errors.New("orc: compression block size must be positive")
	ErrInvalidRowIndexStride = errors.New("orc: row index stride must be positive, or 0 to disable row indexes")
	ErrUnsupportedCompression = errors.New("orc: unsupported compression kind")
)

// Schema errors.
var (
	ErrEmptySchema       = errors.New("orc: schema must have at least one field")
	ErrInvalidDecimal    = errors.New("orc: decimal precision/scale out of range")
	ErrInvalidCharLength = errors.New("orc: char/varchar max length must be positive")
	ErrDuplicateField    = errors.New("orc: struct has duplicate field name")
)

// Column write errors (spec.md §7 "ValueContract").
var (
	ErrBatchLengthMismatch = errors.New("orc: value count does not match batch row count")
	ErrChildCountMismatch  = errors.New("orc: list/map child value count does not match declared lengths")
	ErrUnionTagOutOfRange  = errors.New("orc: union tag out of range for declared variants")
	ErrDecimalOutOfRange   = errors.New("orc: decimal unscaled value exceeds declared precision")
)

// File assembly errors.
var (
	ErrNoRows      = errors.New("orc: finish called with zero rows written")
	ErrAlreadyDone = errors.New("orc: writer already finished")
)

// ContractError wraps a ValueContract violation: a caller bug that makes
// the file being built invalid. It is always raised as a panic, never
// returned, so that batch-local mistakes cannot be silently swallowed by a
// caller that only checks error returns on the happy path.
type ContractError struct {
	Err error
}

func (e *ContractError) Error() string { return "orc: contract violation: " + e.Err.Error() }
func (e *ContractError) Unwrap() error { return e.Err }

// NewContractError panics with a *ContractError wrapping err.
func NewContractError(err error) {
	panic(&ContractError{Err: err})
}

// InternalError wraps an InternalInvariant violation: a bug in the writer
// itself (e.g. a compression block overflowing its length field, or an
// encoder position desynchronizing from the stream it belongs to).
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string { return "orc: internal invariant violated: " + e.Err.Error() }
func (e *InternalError) Unwrap() error { return e.Err }

// NewInternalError panics with an *InternalError wrapping err.
func NewInternalError(err error) {
	panic(&InternalError{Err: err})
}
