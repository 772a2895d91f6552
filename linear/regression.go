// Package linear implements ordinary least squares regression. It is the
// stock predictor the resampling examples and end-to-end tests evaluate;
// any other model satisfying core/model.Estimator slots into the same
// place.
package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/resample/core/model"
	"github.com/YuminosukeSato/resample/core/parallel"
	"github.com/YuminosukeSato/resample/metrics"
	"github.com/YuminosukeSato/resample/pkg/errors"
)

// Row count below which the design matrix is assembled sequentially.
const parallelThreshold = 1000

// LinearRegression fits y = Xw + b by least squares, optionally with L2
// regularization.
type LinearRegression struct {
	model.BaseEstimator

	// Weights holds the fitted coefficients, one per feature.
	Weights *mat.VecDense

	// Intercept holds the fitted intercept, 0 when fitIntercept is false.
	Intercept float64

	// NFeatures is the number of features seen during Fit.
	NFeatures int

	fitIntercept bool
	lambda       float64
}

// NewLinearRegression creates a linear regression model. By default an
// intercept is fitted and no regularization is applied.
func NewLinearRegression(opts ...Option) *LinearRegression {
	lr := &LinearRegression{fitIntercept: true}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// Fit estimates the coefficients from training data. The least-squares
// problem is solved through QR factorization; with ridge regularization the
// system is augmented with sqrt(lambda)·I rows so the same solver applies.
func (lr *LinearRegression) Fit(X, y mat.Matrix) error {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.NewModelError("LinearRegression.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return errors.NewDimensionError("LinearRegression.Fit", r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("LinearRegression.Fit", "y must be a column vector")
	}

	lr.NFeatures = c

	cols := c
	if lr.fitIntercept {
		cols++
	}

	rows := r
	if lr.lambda > 0 {
		// Ridge: append one sqrt(lambda) row per coefficient. The intercept
		// column, when present, is not penalized.
		rows += c
	}

	design := mat.NewDense(rows, cols, nil)
	rhs := mat.NewVecDense(rows, nil)

	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			col := 0
			if lr.fitIntercept {
				design.Set(i, 0, 1.0)
				col = 1
			}
			for j := 0; j < c; j++ {
				design.Set(i, col+j, X.At(i, j))
			}
			rhs.SetVec(i, y.At(i, 0))
		}
	})

	if lr.lambda > 0 {
		offset := 0
		if lr.fitIntercept {
			offset = 1
		}
		sqrtLambda := math.Sqrt(lr.lambda)
		for j := 0; j < c; j++ {
			design.Set(r+j, offset+j, sqrtLambda)
		}
	}

	var solution mat.Dense
	if err := solution.Solve(design, rhs); err != nil {
		return errors.NewModelError("LinearRegression.Fit", "singular design matrix", errors.ErrSingularMatrix)
	}

	lr.Weights = mat.NewVecDense(c, nil)
	if lr.fitIntercept {
		lr.Intercept = solution.At(0, 0)
		for j := 0; j < c; j++ {
			lr.Weights.SetVec(j, solution.At(j+1, 0))
		}
	} else {
		lr.Intercept = 0
		for j := 0; j < c; j++ {
			lr.Weights.SetVec(j, solution.At(j, 0))
		}
	}

	lr.SetFitted()
	return nil
}

// Predict returns predictions for X as an n×1 matrix.
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Predict")
	}

	r, c := X.Dims()
	if c != lr.NFeatures {
		return nil, errors.NewDimensionError("LinearRegression.Predict", lr.NFeatures, c, 1)
	}

	predictions := mat.NewVecDense(r, nil)
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			sum := lr.Intercept
			for j := 0; j < c; j++ {
				sum += X.At(i, j) * lr.Weights.AtVec(j)
			}
			predictions.SetVec(i, sum)
		}
	})
	return predictions, nil
}

// Score returns the coefficient of determination R² on the given data.
func (lr *LinearRegression) Score(X, y mat.Matrix) (float64, error) {
	predicted, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}

	r, _ := y.Dims()
	yTrue := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		yTrue.SetVec(i, y.At(i, 0))
	}
	return metrics.R2Score(yTrue, predicted.(*mat.VecDense))
}
