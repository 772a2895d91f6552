// Package resample provides resampling-based estimation of predictive-model
// performance: cross-validation, bootstrapping, Monte Carlo and
// rolling-origin resampling, with a worker-pool evaluation runner and
// metric aggregation.
//
// The library is split into small packages:
//
//   - dataset: the row-addressable table splits are generated over
//   - split: split generators for every resampling strategy
//   - metrics: regression metrics and metric sets
//   - eval: the fit/predict/evaluate runner and result aggregation
//   - linear: a stock least-squares predictor
//   - preprocessing: transformations fitted per analysis set
//
// # Quick Start
//
//	X := mat.NewDense(n, 2, data)
//	y := mat.NewVecDense(n, outcome)
//	ds, _ := dataset.New([]string{"sqft", "age"}, X, "price", y)
//
//	kf, _ := split.NewKFold(10, 55)
//	res, err := eval.FitResamples(ctx,
//	    func() model.Estimator { return linear.NewLinearRegression() },
//	    ds, kf, metrics.RegressionSet(),
//	    eval.WithWorkers(4),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for name, s := range res.Summary() {
//	    fmt.Printf("%s: %.4f ± %.4f (n=%d)\n", name, s.Mean, s.StdErr, s.N)
//	}
//
// Predictors are opaque to the runner: anything implementing
// core/model.Estimator (Fit + Predict) can be evaluated.
package resample
