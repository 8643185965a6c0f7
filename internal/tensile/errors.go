package tensile

import (
	"errors"
	"fmt"
)

// Domain errors for analysis operations.
var (
	// ErrInvalidParameter indicates non-positive or non-finite specimen geometry or unit factors.
	ErrInvalidParameter = errors.New("tensile: invalid parameter")

	// ErrInsufficientData indicates fewer than two samples.
	ErrInsufficientData = errors.New("tensile: insufficient data (need at least 2 samples)")

	// ErrLengthMismatch indicates displacement and load series of different length.
	ErrLengthMismatch = errors.New("tensile: displacement and load length mismatch")

	// ErrNonFiniteSample indicates a NaN or Inf sample in the input series.
	ErrNonFiniteSample = errors.New("tensile: non-finite sample")
)

// AnalysisError wraps a domain error with the offending field.
type AnalysisError struct {
	Field   string
	Value   float64
	Index   int
	Wrapped error
}

func (e *AnalysisError) Error() string {
	switch {
	case errors.Is(e.Wrapped, ErrNonFiniteSample):
		return fmt.Sprintf("%v: %s[%d] = %v", e.Wrapped, e.Field, e.Index, e.Value)
	case e.Field != "":
		return fmt.Sprintf("%v: %s = %g", e.Wrapped, e.Field, e.Value)
	default:
		return e.Wrapped.Error()
	}
}

func (e *AnalysisError) Unwrap() error {
	return e.Wrapped
}
