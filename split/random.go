package split

import (
	"fmt"
	"math"
	"sort"

	"github.com/YuminosukeSato/resample/dataset"
	"github.com/YuminosukeSato/resample/pkg/errors"
)

func resampleLabel(i int) string {
	return fmt.Sprintf("Resample%02d", i+1)
}

func bootstrapLabel(i int) string {
	return fmt.Sprintf("Bootstrap%02d", i+1)
}

// MonteCarlo draws Times independent splits: each samples
// round(Proportion×n) indices without replacement as the analysis set and
// uses the remainder as the assessment set. Unlike k-fold, the draws are
// independent, so assessment sets overlap across splits.
type MonteCarlo struct {
	Proportion float64
	Times      int
	Seed       int64
}

// NewMonteCarlo creates a Monte Carlo splitter. The proportion is the
// fraction of rows assigned to the analysis set and must lie in (0, 1).
func NewMonteCarlo(proportion float64, times int, seed int64) (*MonteCarlo, error) {
	if proportion <= 0 || proportion >= 1 {
		return nil, errors.NewValidationError("proportion", "must be in the open interval (0, 1)", proportion)
	}
	if times < 1 {
		return nil, errors.NewValidationError("times", "number of resamples must be at least 1", times)
	}
	return &MonteCarlo{Proportion: proportion, Times: times, Seed: seed}, nil
}

// Strategy implements Splitter.
func (*MonteCarlo) Strategy() string { return "montecarlo" }

// Split implements Splitter.
func (mc *MonteCarlo) Split(ds *dataset.Dataset) ([]Split, error) {
	n := ds.Len()
	size := int(math.Round(mc.Proportion * float64(n)))
	if size < 1 || size >= n {
		return nil, errors.NewValidationError("proportion", "analysis set would be empty or consume every row", mc.Proportion)
	}

	r := newRNG(mc.Seed)
	splits := make([]Split, mc.Times)
	for t := 0; t < mc.Times; t++ {
		perm := permutation(r, n)
		analysis := make([]int, size)
		copy(analysis, perm[:size])
		assessment := make([]int, n-size)
		copy(assessment, perm[size:])
		sort.Ints(analysis)
		sort.Ints(assessment)
		splits[t] = Split{
			Analysis:   analysis,
			Assessment: assessment,
			Label:      resampleLabel(t),
		}
	}
	return splits, nil
}

// Validation produces exactly one proportion split: a degenerate Monte
// Carlo with times = 1.
type Validation struct {
	Proportion float64
	Seed       int64
}

// NewValidation creates a single validation-split generator.
func NewValidation(proportion float64, seed int64) (*Validation, error) {
	if proportion <= 0 || proportion >= 1 {
		return nil, errors.NewValidationError("proportion", "must be in the open interval (0, 1)", proportion)
	}
	return &Validation{Proportion: proportion, Seed: seed}, nil
}

// Strategy implements Splitter.
func (*Validation) Strategy() string { return "validation" }

// Split implements Splitter.
func (v *Validation) Split(ds *dataset.Dataset) ([]Split, error) {
	mc := &MonteCarlo{Proportion: v.Proportion, Times: 1, Seed: v.Seed}
	splits, err := mc.Split(ds)
	if err != nil {
		return nil, err
	}
	splits[0].Label = "Validation"
	return splits, nil
}

// Bootstrap draws Times splits; each analysis set is n draws with
// replacement (the bootstrap sample, so indices repeat) and the assessment
// set is the out-of-bag rows never drawn in that sample. On average a row
// has a 1 - 1/e (about 63.2%) chance of entering a given analysis set.
type Bootstrap struct {
	Times int
	Seed  int64
}

// NewBootstrap creates a bootstrap splitter.
func NewBootstrap(times int, seed int64) (*Bootstrap, error) {
	if times < 1 {
		return nil, errors.NewValidationError("times", "number of resamples must be at least 1", times)
	}
	return &Bootstrap{Times: times, Seed: seed}, nil
}

// Strategy implements Splitter.
func (*Bootstrap) Strategy() string { return "bootstrap" }

// Split implements Splitter.
func (b *Bootstrap) Split(ds *dataset.Dataset) ([]Split, error) {
	n := ds.Len()
	if n < 2 {
		return nil, errors.NewValidationError("n", "bootstrap requires at least 2 rows", n)
	}

	r := newRNG(b.Seed)
	splits := make([]Split, b.Times)
	for t := 0; t < b.Times; t++ {
		analysis := make([]int, n)
		drawn := make([]bool, n)
		for i := 0; i < n; i++ {
			idx := r.IntN(n)
			analysis[i] = idx
			drawn[idx] = true
		}
		// The out-of-bag set can be empty for tiny datasets; the evaluation
		// runner records that as the split's failure rather than aborting
		// the whole collection.
		splits[t] = Split{
			Analysis:   analysis,
			Assessment: complement(n, drawn),
			Label:      bootstrapLabel(t),
		}
	}
	return splits, nil
}
