package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seqRange(start, end int) []int {
	out := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return out
}

func TestRollingOrigin(t *testing.T) {
	t.Run("fixed window", func(t *testing.T) {
		ds := testData(t, 15)
		ro, err := NewRollingOrigin(8, 3, 0, false)
		require.NoError(t, err)
		assert.Equal(t, "rolling_origin", ro.Strategy())

		splits, err := ro.Split(ds)
		require.NoError(t, err)
		require.Len(t, splits, 5)

		for k, s := range splits {
			assert.Equal(t, seqRange(k, k+8), s.Analysis, "slice %d analysis window", k+1)
			assert.Equal(t, seqRange(k+8, k+11), s.Assessment, "slice %d assessment window", k+1)
		}
		assert.Equal(t, "Slice1", splits[0].Label)
		assert.Equal(t, "Slice5", splits[4].Label)
	})

	t.Run("cumulative window grows", func(t *testing.T) {
		ds := testData(t, 15)
		ro, err := NewRollingOrigin(8, 3, 0, true)
		require.NoError(t, err)

		splits, err := ro.Split(ds)
		require.NoError(t, err)
		require.Len(t, splits, 5)

		for k, s := range splits {
			assert.Equal(t, seqRange(0, k+8), s.Analysis, "slice %d analysis window", k+1)
			assert.Equal(t, seqRange(k+8, k+11), s.Assessment, "slice %d assessment window", k+1)
		}
	})

	t.Run("skip widens the step", func(t *testing.T) {
		ds := testData(t, 20)
		ro, err := NewRollingOrigin(10, 2, 3, false)
		require.NoError(t, err)

		splits, err := ro.Split(ds)
		require.NoError(t, err)
		// Origins at 10, 14, 18; 18+2 <= 20 so three slices fit.
		require.Len(t, splits, 3)
		assert.Equal(t, seqRange(10, 12), splits[0].Assessment)
		assert.Equal(t, seqRange(14, 16), splits[1].Assessment)
		assert.Equal(t, seqRange(18, 20), splits[2].Assessment)
	})

	t.Run("window larger than dataset", func(t *testing.T) {
		ds := testData(t, 10)
		ro, err := NewRollingOrigin(8, 3, 0, false)
		require.NoError(t, err)
		_, err = ro.Split(ds)
		assert.Error(t, err)
	})

	t.Run("invalid configuration", func(t *testing.T) {
		_, err := NewRollingOrigin(0, 3, 0, false)
		assert.Error(t, err)
		_, err = NewRollingOrigin(8, 0, 0, false)
		assert.Error(t, err)
		_, err = NewRollingOrigin(8, 3, -1, false)
		assert.Error(t, err)
	})
}
