package eval

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/resample/pkg/errors"
)

// MetricSummary is the aggregate of one metric across the splits that
// produced a value for it.
type MetricSummary struct {
	// Mean is the arithmetic mean across contributing splits.
	Mean float64

	// StdErr is the sample standard error, sd / sqrt(n). Zero when fewer
	// than two splits contributed.
	StdErr float64

	// N is the number of contributing splits.
	N int
}

// Summary reduces the per-split results to one MetricSummary per metric.
// Splits that recorded an error contribute to neither the mean nor the
// count. A metric whose contributing-split count falls short of the total
// raises an IncompleteMetricWarning through the warning handler; the
// summary itself is still returned.
//
// Summary is deterministic: calling it twice on the same Resamples yields
// identical output.
func (r *Resamples) Summary() map[string]MetricSummary {
	values := make(map[string][]float64)
	for _, res := range r.Results {
		if res.Err != nil {
			continue
		}
		for name, v := range res.Metrics {
			values[name] = append(values[name], v)
		}
	}

	total := len(r.Results)
	summary := make(map[string]MetricSummary, len(values))
	for name, vals := range values {
		n := len(vals)
		if n < total {
			errors.Warn(errors.NewIncompleteMetricWarning(name, n, total))
		}
		s := MetricSummary{Mean: stat.Mean(vals, nil), N: n}
		if n > 1 {
			s.StdErr = stat.StdDev(vals, nil) / math.Sqrt(float64(n))
		}
		summary[name] = s
	}
	return summary
}

// Predictions returns the retained predictions across all splits. Without
// summarize the tuples are returned split by split, in split order. With
// summarize they are grouped by source row index: multiple predicted values
// for one row (repeated k-fold, bootstrap) are replaced by their mean, rows
// are sorted ascending, and the observed value is passed through unchanged.
// An observed-value mismatch between occurrences of the same row is an
// invariant violation and is returned as an error.
//
// Predictions are only present when the run was made with WithPredictions;
// otherwise the result is empty.
func (r *Resamples) Predictions(summarize bool) ([]Prediction, error) {
	var all []Prediction
	for _, res := range r.Results {
		all = append(all, res.Predictions...)
	}
	if !summarize {
		return all, nil
	}

	type group struct {
		observed float64
		sum      float64
		count    int
	}
	groups := make(map[int]*group)
	for _, p := range all {
		g, ok := groups[p.Row]
		if !ok {
			groups[p.Row] = &group{observed: p.Observed, sum: p.Predicted, count: 1}
			continue
		}
		if g.observed != p.Observed {
			return nil, errors.NewValidationError("predictions",
				"observed value differs between occurrences of the same row", p.Row)
		}
		g.sum += p.Predicted
		g.count++
	}

	rows := make([]int, 0, len(groups))
	for row := range groups {
		rows = append(rows, row)
	}
	sort.Ints(rows)

	out := make([]Prediction, len(rows))
	for i, row := range rows {
		g := groups[row]
		out[i] = Prediction{
			Row:       row,
			Observed:  g.observed,
			Predicted: g.sum / float64(g.count),
		}
	}
	return out, nil
}
