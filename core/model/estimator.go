// Package model defines the capabilities the resampling machinery requires
// of a predictor. The evaluation runner never inspects a predictor beyond
// these interfaces; any trainable procedure that can fit a matrix of
// predictors against an outcome vector and produce aligned predictions can
// be evaluated.
package model

import "gonum.org/v1/gonum/mat"

// Fitter is a model that can be trained.
type Fitter interface {
	// Fit trains the model on the given predictors X and outcome y
	// (an n×1 column matrix).
	Fit(X, y mat.Matrix) error
}

// Predictor is a model that can produce predictions.
type Predictor interface {
	// Predict returns predictions for X as an n×1 column matrix, row-aligned
	// with the input.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Estimator is the trainable-predictor capability: fit on an analysis set,
// then predict an assessment set.
type Estimator interface {
	Fitter
	Predictor
}

// Scorer is a model that can compute its own goodness-of-fit score.
type Scorer interface {
	// Score returns the coefficient of determination R² of the prediction.
	Score(X, y mat.Matrix) (float64, error)
}

// Regressor combines the interfaces a regression model exposes.
type Regressor interface {
	Estimator
	Scorer
}

// Transformer is a feature transformation that is fitted on one subset and
// applied to another, e.g. a scaler fitted on an analysis set only.
type Transformer interface {
	Fit(X mat.Matrix) error
	Transform(X mat.Matrix) (mat.Matrix, error)
}
