package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarningHandler(t *testing.T) {
	var captured []error
	SetWarningHandler(func(w error) {
		captured = append(captured, w)
	})
	defer SetWarningHandler(nil)

	Warn(NewIncompleteMetricWarning("rmse", 8, 10))

	require.Len(t, captured, 1)
	var w *IncompleteMetricWarning
	require.True(t, As(captured[0], &w))
	assert.Equal(t, "rmse", w.Metric)
	assert.Equal(t, 8, w.Used)
	assert.Equal(t, 10, w.Total)
	assert.Contains(t, w.Error(), "8 of 10 splits")
}

func TestWarnWithNilHandler(t *testing.T) {
	SetWarningHandler(nil)
	defer SetWarningHandler(nil)

	// Must not panic.
	Warn(New("ignored"))
}

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("LinearRegression", "Predict")

	var nferr *NotFittedError
	require.True(t, As(err, &nferr))
	assert.Equal(t, "LinearRegression", nferr.ModelName)
	assert.Contains(t, err.Error(), "not fitted")
	assert.Contains(t, err.Error(), "Predict")
}

func TestDimensionError(t *testing.T) {
	err := NewDimensionError("Fit", 10, 7, 0)

	var derr *DimensionError
	require.True(t, As(err, &derr))
	assert.Equal(t, 10, derr.Expected)
	assert.Equal(t, 7, derr.Got)
	assert.Contains(t, err.Error(), "rows")

	err = NewDimensionError("Predict", 3, 2, 1)
	assert.Contains(t, err.Error(), "features")
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("folds", "must be at least 2", 1)

	var verr *ValidationError
	require.True(t, As(err, &verr))
	assert.Equal(t, "folds", verr.ParamName)
	assert.Contains(t, err.Error(), "must be at least 2")
	assert.Contains(t, err.Error(), "got: 1")
}

func TestModelErrorUnwrap(t *testing.T) {
	err := NewModelError("Fit", "singular design matrix", ErrSingularMatrix)

	assert.True(t, Is(err, ErrSingularMatrix))

	var merr *ModelError
	require.True(t, As(err, &merr))
	assert.Equal(t, "Fit", merr.Op)
}

func TestWrapPreservesIdentity(t *testing.T) {
	base := New("base failure")
	wrapped := Wrap(base, "outer context")

	assert.True(t, Is(wrapped, base))
	assert.Contains(t, wrapped.Error(), "outer context")

	wrapped = Wrapf(base, "split %d", 3)
	assert.True(t, Is(wrapped, base))
	assert.Contains(t, wrapped.Error(), "split 3")
}

func TestSafeExecute(t *testing.T) {
	t.Run("passes result through", func(t *testing.T) {
		assert.NoError(t, SafeExecute("op", func() error { return nil }))

		want := New("boom")
		assert.Equal(t, want, SafeExecute("op", func() error { return want }))
	})

	t.Run("converts panic to error", func(t *testing.T) {
		err := SafeExecute("fold 3", func() error {
			panic("index out of range")
		})
		require.Error(t, err)

		var perr *PanicError
		require.True(t, As(err, &perr))
		assert.Equal(t, "fold 3", perr.Operation)
		assert.Equal(t, "index out of range", perr.PanicValue)
		assert.NotEmpty(t, perr.StackTrace)
		assert.Contains(t, err.Error(), "panic in fold 3")
	})
}
