package ad

import "errors"

// Common errors. Derivative calls wrap these with the offending detail;
// match with errors.Is.
var (
	// ErrInvalidTrace reports a malformed or incomplete trace: an operand
	// from another trace, arithmetic after the trace ended, a second
	// output designation, no inputs, or no recorded operations.
	ErrInvalidTrace = errors.New("invalid trace")

	// ErrDimensionMismatch reports a vector argument whose length
	// disagrees with what the tape declares. Vectors are never truncated
	// or padded.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrUnsupportedOp reports an operation code outside the supported set.
	ErrUnsupportedOp = errors.New("unsupported operation")

	// Tape file errors.
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported tape format version")
	ErrChecksumMismatch   = errors.New("checksum mismatch: tape file may be corrupted")
	ErrDTypeMismatch      = errors.New("tape scalar type mismatch")
	ErrCorruptTape        = errors.New("corrupt tape")
)
