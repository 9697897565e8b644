package tokenizer

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrOutOfRange      = errors.New("token id out of range")
	ErrInvalidSize     = errors.New("vocabulary size must be 0 (unbounded) or at least 3")
	ErrUnknownSplitter = errors.New("unknown splitter")
)

// OutOfRangeError reports an id that was never assigned by Fit.
type OutOfRangeError struct {
	ID   int32 // Offending id
	Size int   // Vocabulary size at lookup time
}

// Error implements the error interface.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("token id %d out of range [0, %d)", e.ID, e.Size)
}

// Unwrap lets errors.Is match ErrOutOfRange.
func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}
