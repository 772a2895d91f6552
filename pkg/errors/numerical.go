package errors

import (
	"fmt"
	"math"
)

// NumericalInstabilityError is returned when a computation produced NaN or
// Inf, e.g. a metric evaluated on a degenerate assessment set.
type NumericalInstabilityError struct {
	Operation string
	Value     float64
}

func (e *NumericalInstabilityError) Error() string {
	return fmt.Sprintf("resample: numerical instability detected in %s (value: %g)", e.Operation, e.Value)
}

// NewNumericalInstabilityError creates a NumericalInstabilityError with a
// stack trace attached.
func NewNumericalInstabilityError(operation string, value float64) error {
	return WithStack(&NumericalInstabilityError{Operation: operation, Value: value})
}

// CheckScalar returns an error if the value is NaN or Inf.
func CheckScalar(operation string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewNumericalInstabilityError(operation, value)
	}
	return nil
}

// CheckSlice returns an error on the first NaN or Inf in values.
func CheckSlice(operation string, values []float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewNumericalInstabilityError(operation, v)
		}
	}
	return nil
}
