// Package eval runs the fit/predict/evaluate cycle over a resample
// collection and aggregates the per-split results.
//
// For every split the runner extracts the analysis subset, obtains a fresh
// predictor from the caller's factory, fits it, predicts the assessment
// subset, and applies the configured metric set. Splits are independent;
// with WithWorkers they run on a bounded pool and results are reassembled
// in split order. A failing split records its error and the run carries on
// with the remaining splits.
package eval

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/resample/core/model"
	"github.com/YuminosukeSato/resample/core/parallel"
	"github.com/YuminosukeSato/resample/dataset"
	"github.com/YuminosukeSato/resample/metrics"
	"github.com/YuminosukeSato/resample/pkg/errors"
	"github.com/YuminosukeSato/resample/pkg/log"
	"github.com/YuminosukeSato/resample/split"
)

// Factory produces a fresh, unfitted predictor for one split. It is called
// once per split so no fitted state leaks between splits.
type Factory func() model.Estimator

// ExtractFunc is an optional caller-supplied hook invoked on each split's
// fitted predictor; its return value is stored on the split's result as an
// opaque artifact (e.g. fitted coefficients).
type ExtractFunc func(model.Estimator) any

// Prediction is one retained assessment-row prediction, joined back to the
// source dataset by row index.
type Prediction struct {
	Row       int
	Observed  float64
	Predicted float64
}

// Result is the outcome of one split's fit/predict/evaluate sequence.
// Either Metrics is populated, or Err records why the split failed and the
// split contributes no metric values.
type Result struct {
	Split       split.Split
	Metrics     map[string]float64
	Predictions []Prediction
	Extract     any
	Err         error
}

// SplitError records a per-split execution failure and the stage it
// happened in. It is stored on the split's Result and never aborts the run.
type SplitError struct {
	SplitID string
	Stage   string // "subset", "fit", "predict", "evaluate", "extract"
	Err     error
}

func (e *SplitError) Error() string {
	return fmt.Sprintf("resample: split %s failed during %s: %v", e.SplitID, e.Stage, e.Err)
}

func (e *SplitError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *SplitError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("split", e.SplitID).
		Str("stage", e.Stage).
		AnErr("cause", e.Err).
		Str("type", "SplitError")
}

// Resamples holds the per-split results of one evaluation run, in split
// order. The caller may keep it around after the run to inspect retained
// predictions and extracted artifacts.
type Resamples struct {
	Strategy string
	Results  []Result
}

// Len returns the number of splits in the run.
func (r *Resamples) Len() int { return len(r.Results) }

// MetricValues returns the metric's value from every split that produced
// one, in split order.
func (r *Resamples) MetricValues(name string) []float64 {
	values := make([]float64, 0, len(r.Results))
	for _, res := range r.Results {
		if res.Err != nil {
			continue
		}
		if v, ok := res.Metrics[name]; ok {
			values = append(values, v)
		}
	}
	return values
}

// FailedSplits returns the results of splits that recorded an error.
func (r *Resamples) FailedSplits() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

type config struct {
	workers         int
	savePredictions bool
	extract         ExtractFunc
	logger          log.Logger
}

// Option configures an evaluation run.
type Option func(*config)

// WithWorkers sets the number of concurrent split executions. The default
// is 1 (sequential); values below 1 use all CPU cores.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithPredictions retains (row, observed, predicted) tuples for every
// assessment row of every split.
func WithPredictions() Option {
	return func(c *config) { c.savePredictions = true }
}

// WithExtract stores fn's return value on each split's result.
func WithExtract(fn ExtractFunc) Option {
	return func(c *config) { c.extract = fn }
}

// WithLogger routes the run's log records to l instead of the library
// default.
func WithLogger(l log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// FitResamples evaluates the predictor produced by factory over every split
// the splitter generates from ds, applying every metric in ms to each
// split's assessment predictions.
//
// Configuration errors (nil capabilities, invalid splitter parameters) are
// returned immediately. Per-split failures are recorded on the split's
// Result and do not abort the run. When ctx is cancelled, splits not yet
// started are abandoned with the cancellation error recorded; completed
// results remain valid for partial aggregation.
func FitResamples(ctx context.Context, factory Factory, ds *dataset.Dataset, sp split.Splitter, ms metrics.Set, opts ...Option) (*Resamples, error) {
	if factory == nil {
		return nil, errors.NewValidationError("factory", "predictor factory must not be nil", nil)
	}
	if ds == nil {
		return nil, errors.NewModelError("eval.FitResamples", "nil dataset", errors.ErrEmptyData)
	}
	if sp == nil {
		return nil, errors.NewValidationError("splitter", "splitter must not be nil", nil)
	}
	if len(ms) == 0 {
		return nil, errors.NewValidationError("metrics", "metric set must not be empty", len(ms))
	}

	cfg := config{workers: 1, logger: log.GetLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	splits, err := sp.Split(ds)
	if err != nil {
		return nil, err
	}

	logger := cfg.logger.With(
		log.ComponentKey, "eval",
		log.StrategyKey, sp.Strategy(),
		log.SplitsKey, len(splits),
		log.WorkersKey, cfg.workers,
	)
	logger.Info("resampling run started",
		log.SamplesKey, ds.Len(),
		log.FeaturesKey, ds.NumFeatures(),
	)

	results := make([]Result, len(splits))
	errs := parallel.ForEach(ctx, len(splits), cfg.workers, func(i int) error {
		results[i] = runSplit(ds, splits[i], factory, ms, &cfg)
		return results[i].Err
	})

	failed := 0
	for i := range results {
		if results[i].Err == nil && results[i].Metrics == nil && errs[i] != nil {
			// Abandoned before starting: cancellation reached this split
			// first.
			results[i] = Result{Split: splits[i], Err: errs[i]}
		}
		if results[i].Err != nil {
			failed++
			logger.Warn("split failed",
				log.SplitKey, results[i].Split.ID(),
				log.ErrAttrKey, results[i].Err,
			)
		}
	}

	logger.Info("resampling run finished", "failed_splits", failed)
	return &Resamples{Strategy: sp.Strategy(), Results: results}, nil
}

// runSplit executes the strictly ordered fit → predict → evaluate →
// extract sequence for one split. Panics in caller-supplied code are
// recovered and recorded as the split's error.
func runSplit(ds *dataset.Dataset, sp split.Split, factory Factory, ms metrics.Set, cfg *config) Result {
	res := Result{Split: sp}
	stage := "subset"

	err := errors.SafeExecute("split "+sp.ID(), func() error {
		analysis, err := ds.Subset(sp.Analysis)
		if err != nil {
			return err
		}
		assessment, err := ds.Subset(sp.Assessment)
		if err != nil {
			return err
		}

		stage = "fit"
		est := factory()
		if est == nil {
			return errors.NewValidationError("factory", "predictor factory returned nil", nil)
		}
		if err := est.Fit(analysis.X(), analysis.Y()); err != nil {
			return err
		}

		stage = "predict"
		predicted, err := est.Predict(assessment.X())
		if err != nil {
			return err
		}
		yPred, err := columnVector(predicted, assessment.Len())
		if err != nil {
			return err
		}
		yObs := assessment.Y()

		stage = "evaluate"
		values := make(map[string]float64, len(ms))
		for name, fn := range ms {
			v, err := fn(yObs, yPred)
			if err != nil {
				return errors.Wrapf(err, "metric %q", name)
			}
			if err := errors.CheckScalar("metric "+name, v); err != nil {
				return err
			}
			values[name] = v
		}
		res.Metrics = values

		if cfg.savePredictions {
			preds := make([]Prediction, len(sp.Assessment))
			for j, rowIdx := range sp.Assessment {
				preds[j] = Prediction{
					Row:       rowIdx,
					Observed:  yObs.AtVec(j),
					Predicted: yPred.AtVec(j),
				}
			}
			res.Predictions = preds
		}

		if cfg.extract != nil {
			stage = "extract"
			res.Extract = cfg.extract(est)
		}
		return nil
	})

	if err != nil {
		res = Result{Split: sp, Err: errors.WithStack(&SplitError{SplitID: sp.ID(), Stage: stage, Err: err})}
	}
	return res
}

// columnVector converts a predictor's n×1 output matrix into a vector,
// validating its shape against the assessment subset.
func columnVector(m mat.Matrix, wantRows int) (*mat.VecDense, error) {
	r, c := m.Dims()
	if c != 1 {
		return nil, errors.NewValueError("eval.columnVector", "predictions must be a single column")
	}
	if r != wantRows {
		return nil, errors.NewDimensionError("eval.columnVector", wantRows, r, 0)
	}
	if v, ok := m.(*mat.VecDense); ok {
		return v, nil
	}
	vec := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		vec.SetVec(i, m.At(i, 0))
	}
	return vec, nil
}
