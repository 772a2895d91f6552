package linear

// Option is a function that configures LinearRegression.
type Option func(*LinearRegression)

// WithFitIntercept sets whether to estimate an intercept term. When false,
// the regression is forced through the origin.
func WithFitIntercept(fit bool) Option {
	return func(lr *LinearRegression) {
		lr.fitIntercept = fit
	}
}

// WithRidge adds L2 regularization with the given strength. A small lambda
// keeps the normal equations solvable on degenerate analysis sets, which
// matters when a resampling split happens to produce collinear predictors.
func WithRidge(lambda float64) Option {
	return func(lr *LinearRegression) {
		lr.lambda = lambda
	}
}
