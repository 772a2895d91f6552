// Package log defines standard attribute keys for resampling operations.
//
// Using these keys consistently makes run logs filterable: every record from
// an evaluation run carries the strategy, split counts, and worker
// configuration under the same names.

package log

// Run and strategy context.
const (
	// StrategyKey identifies the resampling strategy.
	// Examples: "kfold", "bootstrap", "rolling_origin"
	StrategyKey = "resample.strategy"

	// SplitsKey is the number of splits in the resample collection.
	SplitsKey = "resample.splits"

	// SplitKey identifies one split within a run, e.g. "Repeat1/Fold03".
	SplitKey = "resample.split"

	// WorkersKey is the configured worker count for the run.
	WorkersKey = "resample.workers"

	// SeedKey is the random seed the split generator was configured with.
	SeedKey = "resample.seed"
)

// Model and operation context.
const (
	// ModelNameKey identifies the predictor type being evaluated.
	// Examples: "LinearRegression", "MeanRegressor"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "evaluate", "extract"
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation.
	// Examples: "split", "eval", "metrics"
	ComponentKey = "ml.component"
)

// Data shape.
const (
	// SamplesKey is the number of rows in the dataset or subset.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of predictor columns.
	FeaturesKey = "data.features"

	// AnalysisSizeKey is the number of rows in a split's analysis set.
	AnalysisSizeKey = "data.analysis_size"

	// AssessmentSizeKey is the number of rows in a split's assessment set.
	AssessmentSizeKey = "data.assessment_size"
)

// Performance.
const (
	// DurationMsKey is an elapsed time in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// MetricKey names a performance metric, e.g. "mae".
	MetricKey = "metric.name"

	// MetricValueKey is a metric's scalar value.
	MetricValueKey = "metric.value"
)
