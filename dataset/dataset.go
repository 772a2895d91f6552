// Package dataset provides the row-addressable table the resampling
// machinery operates on: named predictor columns backed by a gonum matrix
// plus one designated outcome column. A Dataset is read-only after
// construction; splits reference it by row index and Subset materializes
// copies, never views, so concurrent split executions share it safely.
package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/resample/pkg/errors"
)

// Dataset is an ordered collection of rows with named predictor fields and
// one outcome field. Rows are addressable by 0-based index; the index is
// what joins resampled predictions back to their source rows.
type Dataset struct {
	features []string
	outcome  string
	x        *mat.Dense
	y        *mat.VecDense
}

// New builds a Dataset from predictor columns x (one column per name in
// features), the outcome column name, and the outcome values y. The row
// counts of x and y must match, and column names must be unique.
func New(features []string, x *mat.Dense, outcome string, y *mat.VecDense) (*Dataset, error) {
	if x == nil || y == nil {
		return nil, errors.NewModelError("dataset.New", "nil data", errors.ErrEmptyData)
	}
	r, c := x.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewModelError("dataset.New", "empty data", errors.ErrEmptyData)
	}
	if len(features) != c {
		return nil, errors.NewDimensionError("dataset.New", c, len(features), 1)
	}
	if y.Len() != r {
		return nil, errors.NewDimensionError("dataset.New", r, y.Len(), 0)
	}
	if outcome == "" {
		return nil, errors.NewValidationError("outcome", "outcome field name must not be empty", outcome)
	}
	seen := make(map[string]bool, c+1)
	for _, name := range features {
		if name == "" {
			return nil, errors.NewValidationError("features", "feature name must not be empty", name)
		}
		if seen[name] {
			return nil, errors.NewValidationError("features", "duplicate feature name", name)
		}
		seen[name] = true
	}
	if seen[outcome] {
		return nil, errors.NewValidationError("outcome", "outcome name collides with a feature name", outcome)
	}

	names := make([]string, len(features))
	copy(names, features)
	return &Dataset{features: names, outcome: outcome, x: x, y: y}, nil
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	r, _ := d.x.Dims()
	return r
}

// NumFeatures returns the number of predictor columns.
func (d *Dataset) NumFeatures() int {
	_, c := d.x.Dims()
	return c
}

// Features returns a copy of the predictor column names.
func (d *Dataset) Features() []string {
	names := make([]string, len(d.features))
	copy(names, d.features)
	return names
}

// Outcome returns the outcome column name.
func (d *Dataset) Outcome() string {
	return d.outcome
}

// X returns the predictor matrix. Callers must treat it as read-only.
func (d *Dataset) X() mat.Matrix {
	return d.x
}

// Y returns the outcome vector. Callers must treat it as read-only.
func (d *Dataset) Y() *mat.VecDense {
	return d.y
}

// Column returns a copy of the values of the named column. The outcome name
// is accepted alongside feature names, which is what stratified splitting
// on the outcome relies on.
func (d *Dataset) Column(name string) ([]float64, error) {
	n := d.Len()
	if name == d.outcome {
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			out[i] = d.y.AtVec(i)
		}
		return out, nil
	}
	for j, f := range d.features {
		if f == name {
			out := make([]float64, n)
			for i := 0; i < n; i++ {
				out[i] = d.x.At(i, j)
			}
			return out, nil
		}
	}
	return nil, errors.NewValidationError("column", "no such column", name)
}

// Subset returns a new Dataset holding copies of the rows at the given
// indices, in the given order. Out-of-range indices are rejected.
func (d *Dataset) Subset(indices []int) (*Dataset, error) {
	n := d.Len()
	_, c := d.x.Dims()
	if len(indices) == 0 {
		return nil, errors.NewModelError("dataset.Subset", "empty index set", errors.ErrEmptyData)
	}

	xs := mat.NewDense(len(indices), c, nil)
	ys := mat.NewVecDense(len(indices), nil)
	for i, idx := range indices {
		if idx < 0 || idx >= n {
			return nil, errors.NewValidationError("indices", "row index out of range", idx)
		}
		for j := 0; j < c; j++ {
			xs.Set(i, j, d.x.At(idx, j))
		}
		ys.SetVec(i, d.y.AtVec(idx))
	}
	return &Dataset{features: d.features, outcome: d.outcome, x: xs, y: ys}, nil
}
