// Package split generates resampling splits: ordered sequences of
// (analysis, assessment) row-index partitions over a dataset. Strategies
// cover k-fold (plain, repeated, stratified), leave-one-out, Monte Carlo,
// bootstrap, rolling-origin, and a single validation split.
//
// All randomized splitters take an explicit seed and derive their draws from
// a PCG source, so a resample collection is fully reproducible. Splitters
// never mutate the dataset; they only read its length and, for stratified
// k-fold, one column.
package split

import (
	"fmt"
	"math/rand/v2"

	"github.com/YuminosukeSato/resample/dataset"
)

// Split is one resample: the analysis set indices used to fit a model and
// the assessment set indices used to evaluate it. For k-fold, rolling-origin
// and validation strategies the two sets are disjoint; Monte Carlo and
// bootstrap assessment sets may overlap across splits.
type Split struct {
	// Analysis holds the row indices the model is fitted on. For bootstrap
	// splits it contains repeated indices (n draws with replacement).
	Analysis []int

	// Assessment holds the row indices the fitted model is evaluated on.
	Assessment []int

	// Repeat identifies the repetition for repeated strategies, e.g.
	// "Repeat2". Empty for single-pass strategies.
	Repeat string

	// Label identifies the split within its repeat, e.g. "Fold03",
	// "Bootstrap07", "Slice4".
	Label string
}

// ID returns the split's identifier, e.g. "Repeat1/Fold03" or "Bootstrap07".
func (s Split) ID() string {
	if s.Repeat != "" {
		return s.Repeat + "/" + s.Label
	}
	return s.Label
}

// Splitter produces a resample collection from a dataset. The order of the
// returned splits is deterministic for a fixed configuration and seed.
type Splitter interface {
	// Split generates the splits for ds. Configuration problems that depend
	// on the dataset size (e.g. a rolling window larger than the dataset)
	// are reported here; size-independent ones are reported by the
	// splitter's constructor.
	Split(ds *dataset.Dataset) ([]Split, error)

	// Strategy returns the strategy name, e.g. "kfold" or "bootstrap".
	Strategy() string
}

// newRNG builds the deterministic random source splitters draw from.
func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// permutation returns a shuffled copy of [0, n).
func permutation(r *rand.Rand, n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	r.Shuffle(n, func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})
	return indices
}

// complement returns the indices of [0, n) not marked in taken, ascending.
func complement(n int, taken []bool) []int {
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !taken[i] {
			out = append(out, i)
		}
	}
	return out
}

func foldLabel(i int) string {
	return fmt.Sprintf("Fold%02d", i+1)
}

func repeatLabel(i int) string {
	return fmt.Sprintf("Repeat%d", i+1)
}
