package entropy

import (
	"errors"
	"fmt"
)

// Domain errors for analysis operations.
var (
	// ErrInvalidBlockSize indicates a block size that is zero or negative.
	ErrInvalidBlockSize = errors.New("entropy: block size must be positive")

	// ErrFileNotFound indicates the analyzed path does not exist.
	ErrFileNotFound = errors.New("entropy: file not found")

	// ErrNoSamples indicates an aggregate was requested over an empty profile.
	ErrNoSamples = errors.New("entropy: no samples")
)

// AnalysisError wraps an I/O failure with the path and the offset of the
// block being read when it happened.
type AnalysisError struct {
	Path    string
	Offset  int64
	Wrapped error
}

func (e *AnalysisError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("entropy: read at offset %d: %v", e.Offset, e.Wrapped)
	}
	return fmt.Sprintf("entropy: %s at offset %d: %v", e.Path, e.Offset, e.Wrapped)
}

func (e *AnalysisError) Unwrap() error {
	return e.Wrapped
}
