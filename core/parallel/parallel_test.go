package parallel

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/resample/pkg/errors"
)

func TestForEach(t *testing.T) {
	t.Run("every item runs exactly once", func(t *testing.T) {
		const items = 100
		var counts [items]int32

		errs := ForEach(context.Background(), items, 8, func(i int) error {
			atomic.AddInt32(&counts[i], 1)
			return nil
		})

		require.Len(t, errs, items)
		for i := 0; i < items; i++ {
			assert.Equal(t, int32(1), counts[i], "item %d", i)
			assert.NoError(t, errs[i])
		}
	})

	t.Run("errors land on their item index", func(t *testing.T) {
		boom := errors.New("boom")
		errs := ForEach(context.Background(), 10, 4, func(i int) error {
			if i%3 == 0 {
				return boom
			}
			return nil
		})

		for i, err := range errs {
			if i%3 == 0 {
				assert.ErrorIs(t, err, boom)
			} else {
				assert.NoError(t, err)
			}
		}
	})

	t.Run("sequential path checks cancellation between items", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		ran := 0
		errs := ForEach(ctx, 10, 1, func(i int) error {
			ran++
			if i == 2 {
				cancel()
			}
			return nil
		})

		assert.Equal(t, 3, ran)
		for i := 0; i < 3; i++ {
			assert.NoError(t, errs[i])
		}
		for i := 3; i < 10; i++ {
			assert.ErrorIs(t, errs[i], context.Canceled)
		}
	})

	t.Run("cancelled context abandons remaining items", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var ran atomic.Int32
		errs := ForEach(ctx, 50, 4, func(i int) error {
			ran.Add(1)
			return nil
		})

		abandoned := 0
		for _, err := range errs {
			if err != nil {
				assert.ErrorIs(t, err, context.Canceled)
				abandoned++
			}
		}
		assert.Equal(t, 50, int(ran.Load())+abandoned)
		assert.Greater(t, abandoned, 0)
	})

	t.Run("zero items", func(t *testing.T) {
		errs := ForEach(context.Background(), 0, 4, func(int) error { return nil })
		assert.Empty(t, errs)
	})

	t.Run("workers below one use all cores", func(t *testing.T) {
		var ran atomic.Int32
		errs := ForEach(context.Background(), 20, 0, func(int) error {
			ran.Add(1)
			return nil
		})
		assert.Equal(t, int32(20), ran.Load())
		for _, err := range errs {
			assert.NoError(t, err)
		}
	})
}

func TestParallelize(t *testing.T) {
	t.Run("chunks cover the full range", func(t *testing.T) {
		const items = 1000
		var touched [items]int32

		Parallelize(items, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&touched[i], 1)
			}
		})

		for i := 0; i < items; i++ {
			assert.Equal(t, int32(1), touched[i], "item %d", i)
		}
	})

	t.Run("zero items is a no-op", func(t *testing.T) {
		called := false
		Parallelize(0, func(start, end int) { called = true })
		assert.False(t, called)
	})
}

func TestParallelizeWithThreshold(t *testing.T) {
	// Below the threshold the function runs once over the whole range.
	calls := 0
	ParallelizeWithThreshold(10, 100, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 10, end)
	})
	assert.Equal(t, 1, calls)
}
