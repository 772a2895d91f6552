package split

import (
	"math/rand/v2"
	"sort"

	"github.com/YuminosukeSato/resample/dataset"
	"github.com/YuminosukeSato/resample/pkg/errors"
)

// KFold partitions the row indices into NumFolds disjoint, roughly
// equal-size groups; split i uses group i as the assessment set and the
// union of the rest as the analysis set. With Repeats > 1 the partitioning
// is repeated independently, producing NumFolds×Repeats splits tagged with
// a repeat identifier.
//
// When Strata names a column, fold assignment is stratified: rows are
// grouped by binned column value and each bin is distributed across folds
// so every fold sees a similar outcome distribution.
type KFold struct {
	NumFolds int
	Repeats  int
	Strata   string
	Seed     int64
}

// NewKFold creates a v-fold splitter. v must be at least 2.
func NewKFold(v int, seed int64) (*KFold, error) {
	return NewRepeatedKFold(v, 1, seed)
}

// NewRepeatedKFold creates a repeated v-fold splitter with the given number
// of independent repeats.
func NewRepeatedKFold(v, repeats int, seed int64) (*KFold, error) {
	if v < 2 {
		return nil, errors.NewValidationError("v", "fold count must be at least 2", v)
	}
	if repeats < 1 {
		return nil, errors.NewValidationError("repeats", "repeat count must be at least 1", repeats)
	}
	return &KFold{NumFolds: v, Repeats: repeats, Seed: seed}, nil
}

// NewStratifiedKFold creates a v-fold splitter stratified on the named
// column (a predictor or the outcome).
func NewStratifiedKFold(v int, strata string, seed int64) (*KFold, error) {
	kf, err := NewRepeatedKFold(v, 1, seed)
	if err != nil {
		return nil, err
	}
	if strata == "" {
		return nil, errors.NewValidationError("strata", "strata column name must not be empty", strata)
	}
	kf.Strata = strata
	return kf, nil
}

// Strategy implements Splitter.
func (kf *KFold) Strategy() string {
	if kf.Repeats > 1 {
		return "repeated_kfold"
	}
	return "kfold"
}

// Split implements Splitter.
func (kf *KFold) Split(ds *dataset.Dataset) ([]Split, error) {
	n := ds.Len()
	if kf.NumFolds > n {
		return nil, errors.NewValidationError("v", "fold count exceeds dataset size", kf.NumFolds)
	}

	var strata []float64
	if kf.Strata != "" {
		col, err := ds.Column(kf.Strata)
		if err != nil {
			return nil, err
		}
		strata = col
	}

	r := newRNG(kf.Seed)
	splits := make([]Split, 0, kf.NumFolds*kf.Repeats)
	for rep := 0; rep < kf.Repeats; rep++ {
		var groups [][]int
		if strata != nil {
			groups = kf.stratifiedGroups(r, strata)
		} else {
			groups = kf.randomGroups(r, n)
		}

		repeat := ""
		if kf.Repeats > 1 {
			repeat = repeatLabel(rep)
		}
		for i, assessment := range groups {
			inAssessment := make([]bool, n)
			for _, idx := range assessment {
				inAssessment[idx] = true
			}
			splits = append(splits, Split{
				Analysis:   complement(n, inAssessment),
				Assessment: assessment,
				Repeat:     repeat,
				Label:      foldLabel(i),
			})
		}
	}
	return splits, nil
}

// randomGroups deals a shuffled permutation of [0, n) into NumFolds groups.
// The first n mod v groups get one extra index.
func (kf *KFold) randomGroups(r *rand.Rand, n int) [][]int {
	perm := permutation(r, n)
	foldSize := n / kf.NumFolds
	remainder := n % kf.NumFolds

	groups := make([][]int, kf.NumFolds)
	cursor := 0
	for i := 0; i < kf.NumFolds; i++ {
		size := foldSize
		if i < remainder {
			size++
		}
		group := make([]int, size)
		copy(group, perm[cursor:cursor+size])
		sort.Ints(group)
		groups[i] = group
		cursor += size
	}
	return groups
}

// stratifiedGroups bins rows by strata value and deals each bin round-robin
// across folds. The dealing start fold rotates with the bin's position, so
// remainder rows from successive bins land on different folds; the rule is
// deterministic for a fixed seed.
func (kf *KFold) stratifiedGroups(r *rand.Rand, strata []float64) [][]int {
	n := len(strata)
	bins := binStrata(strata, kf.NumFolds)

	// Deterministic bin order: ascending by representative value.
	keys := make([]float64, 0, len(bins))
	for k := range bins {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	groups := make([][]int, kf.NumFolds)
	for i := range groups {
		groups[i] = make([]int, 0, n/kf.NumFolds+1)
	}
	for b, key := range keys {
		members := bins[key]
		r.Shuffle(len(members), func(i, j int) {
			members[i], members[j] = members[j], members[i]
		})
		for i, idx := range members {
			fold := (b + i) % kf.NumFolds
			groups[fold] = append(groups[fold], idx)
		}
	}
	for i := range groups {
		sort.Ints(groups[i])
	}
	return groups
}

// maxCategoricalLevels is the distinct-value cutoff below which a strata
// column is treated as categorical rather than quantile-binned.
const maxCategoricalLevels = 5

// binStrata groups row indices by strata value. Columns with few distinct
// values are treated as categorical; numeric columns are cut into up to v
// quantile bins so each bin carries enough rows to spread across folds.
func binStrata(strata []float64, v int) map[float64][]int {
	distinct := make(map[float64]bool, len(strata))
	for _, s := range strata {
		distinct[s] = true
	}

	bins := make(map[float64][]int)
	if len(distinct) <= maxCategoricalLevels {
		for i, s := range strata {
			bins[s] = append(bins[s], i)
		}
		return bins
	}

	// Quantile cut: sort values, derive v-1 interior break points.
	sorted := make([]float64, len(strata))
	copy(sorted, strata)
	sort.Float64s(sorted)
	breaks := make([]float64, v-1)
	for i := 1; i < v; i++ {
		breaks[i-1] = sorted[i*len(sorted)/v]
	}
	for i, s := range strata {
		bin := 0
		for bin < len(breaks) && s >= breaks[bin] {
			bin++
		}
		bins[float64(bin)] = append(bins[float64(bin)], i)
	}
	return bins
}

// LeaveOneOut produces one split per row, each with a single-row assessment
// set. It is the v = n special case of k-fold and needs no randomness.
type LeaveOneOut struct{}

// NewLeaveOneOut creates a leave-one-out splitter.
func NewLeaveOneOut() *LeaveOneOut {
	return &LeaveOneOut{}
}

// Strategy implements Splitter.
func (*LeaveOneOut) Strategy() string { return "loo" }

// Split implements Splitter.
func (*LeaveOneOut) Split(ds *dataset.Dataset) ([]Split, error) {
	n := ds.Len()
	if n < 2 {
		return nil, errors.NewValidationError("n", "leave-one-out requires at least 2 rows", n)
	}
	splits := make([]Split, n)
	for i := 0; i < n; i++ {
		analysis := make([]int, 0, n-1)
		for j := 0; j < n; j++ {
			if j != i {
				analysis = append(analysis, j)
			}
		}
		splits[i] = Split{
			Analysis:   analysis,
			Assessment: []int{i},
			Label:      resampleLabel(i),
		}
	}
	return splits, nil
}
