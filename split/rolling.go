package split

import (
	"fmt"

	"github.com/YuminosukeSato/resample/dataset"
	"github.com/YuminosukeSato/resample/pkg/errors"
)

// RollingOrigin builds ordered splits over an implicitly time-ordered
// dataset. The first split fits on rows [0, Initial) and assesses on the
// next Assess rows; each following split shifts the origin forward by
// Skip+1 rows. With Cumulative set, the analysis window keeps its start at
// row 0 and grows; otherwise it keeps a fixed size and the oldest rows drop
// off. Generation stops when the assessment window would run past the end
// of the data. No randomness is involved.
type RollingOrigin struct {
	Initial    int
	Assess     int
	Skip       int
	Cumulative bool
}

// NewRollingOrigin creates a rolling-origin splitter.
func NewRollingOrigin(initial, assess, skip int, cumulative bool) (*RollingOrigin, error) {
	if initial < 1 {
		return nil, errors.NewValidationError("initial", "initial analysis window must hold at least 1 row", initial)
	}
	if assess < 1 {
		return nil, errors.NewValidationError("assess", "assessment window must hold at least 1 row", assess)
	}
	if skip < 0 {
		return nil, errors.NewValidationError("skip", "skip must not be negative", skip)
	}
	return &RollingOrigin{Initial: initial, Assess: assess, Skip: skip, Cumulative: cumulative}, nil
}

// Strategy implements Splitter.
func (*RollingOrigin) Strategy() string { return "rolling_origin" }

// Split implements Splitter.
func (ro *RollingOrigin) Split(ds *dataset.Dataset) ([]Split, error) {
	n := ds.Len()
	if ro.Initial+ro.Assess > n {
		return nil, errors.NewValidationError("initial",
			fmt.Sprintf("initial+assess (%d) exceeds dataset size %d; no splits can be generated", ro.Initial+ro.Assess, n),
			ro.Initial)
	}

	step := ro.Skip + 1
	var splits []Split
	for k := 0; ; k++ {
		origin := k*step + ro.Initial
		if origin+ro.Assess > n {
			break
		}

		analysisStart := k * step
		if ro.Cumulative {
			analysisStart = 0
		}
		analysis := make([]int, 0, origin-analysisStart)
		for i := analysisStart; i < origin; i++ {
			analysis = append(analysis, i)
		}
		assessment := make([]int, 0, ro.Assess)
		for i := origin; i < origin+ro.Assess; i++ {
			assessment = append(assessment, i)
		}
		splits = append(splits, Split{
			Analysis:   analysis,
			Assessment: assessment,
			Label:      fmt.Sprintf("Slice%d", k+1),
		})
	}
	return splits, nil
}
