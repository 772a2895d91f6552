package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/resample/pkg/errors"
)

// Func is a named pure metric: it maps equal-length observed and predicted
// vectors to a scalar.
type Func func(yTrue, yPred *mat.VecDense) (float64, error)

// Set maps metric names to metric functions. The runner evaluates every
// entry against the same prediction pair.
type Set map[string]Func

// NewSet builds a metric set. At least one metric is required and names
// must be non-empty.
func NewSet(ms map[string]Func) (Set, error) {
	if len(ms) == 0 {
		return nil, errors.NewValidationError("metrics", "metric set must not be empty", len(ms))
	}
	set := make(Set, len(ms))
	for name, fn := range ms {
		if name == "" {
			return nil, errors.NewValidationError("metrics", "metric name must not be empty", name)
		}
		if fn == nil {
			return nil, errors.NewValidationError("metrics", "metric function must not be nil", name)
		}
		set[name] = fn
	}
	return set, nil
}

// RegressionSet returns the default regression metric set: rmse, mae, r2.
func RegressionSet() Set {
	return Set{
		"rmse": RMSE,
		"mae":  MAE,
		"r2":   R2Score,
	}
}
