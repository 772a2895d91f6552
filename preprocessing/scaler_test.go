package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/resample/pkg/errors"
)

type emptyMatrix struct{}

func (emptyMatrix) Dims() (int, int)    { return 0, 0 }
func (emptyMatrix) At(_, _ int) float64 { return 0 }
func (emptyMatrix) T() mat.Matrix       { return emptyMatrix{} }

func TestStandardScaler(t *testing.T) {
	t.Run("centers and scales", func(t *testing.T) {
		X := mat.NewDense(4, 2, []float64{
			1, 10,
			2, 20,
			3, 30,
			4, 40,
		})

		scaler := NewStandardScaler()
		out, err := scaler.FitTransform(X)
		require.NoError(t, err)

		assert.InDelta(t, 2.5, scaler.Mean[0], 1e-10)
		assert.InDelta(t, 25.0, scaler.Mean[1], 1e-10)

		r, c := out.Dims()
		for j := 0; j < c; j++ {
			sum, sumSq := 0.0, 0.0
			for i := 0; i < r; i++ {
				v := out.At(i, j)
				sum += v
				sumSq += v * v
			}
			assert.InDelta(t, 0.0, sum/float64(r), 1e-10, "column %d mean", j)
			assert.InDelta(t, 1.0, sumSq/float64(r), 1e-10, "column %d variance", j)
		}
	})

	t.Run("constant feature passes through", func(t *testing.T) {
		X := mat.NewDense(3, 1, []float64{7, 7, 7})

		scaler := NewStandardScaler()
		out, err := scaler.FitTransform(X)
		require.NoError(t, err)

		assert.Equal(t, 1.0, scaler.Scale[0])
		for i := 0; i < 3; i++ {
			assert.InDelta(t, 0.0, out.At(i, 0), 1e-10)
		}
	})

	t.Run("applies training statistics to new data", func(t *testing.T) {
		train := mat.NewDense(2, 1, []float64{0, 2})
		test := mat.NewDense(1, 1, []float64{4})

		scaler := NewStandardScaler()
		require.NoError(t, scaler.Fit(train))

		out, err := scaler.Transform(test)
		require.NoError(t, err)
		// mean 1, sd 1 -> (4-1)/1 = 3
		assert.InDelta(t, 3.0, out.At(0, 0), 1e-10)
	})

	t.Run("not fitted", func(t *testing.T) {
		scaler := NewStandardScaler()
		_, err := scaler.Transform(mat.NewDense(1, 1, nil))
		require.Error(t, err)
		var nferr *errors.NotFittedError
		assert.True(t, errors.As(err, &nferr))
	})

	t.Run("feature count mismatch", func(t *testing.T) {
		scaler := NewStandardScaler()
		require.NoError(t, scaler.Fit(mat.NewDense(2, 2, []float64{1, 2, 3, 4})))

		_, err := scaler.Transform(mat.NewDense(2, 3, nil))
		assert.Error(t, err)
	})

	t.Run("empty data", func(t *testing.T) {
		scaler := NewStandardScaler()
		err := scaler.Fit(emptyMatrix{})
		assert.Error(t, err)
	})
}
