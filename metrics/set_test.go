package metrics

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNewSet(t *testing.T) {
	set, err := NewSet(map[string]Func{"mae": MAE, "rmse": RMSE})
	if err != nil {
		t.Fatalf("NewSet() unexpected error: %v", err)
	}
	if len(set) != 2 {
		t.Errorf("NewSet() size = %d, want 2", len(set))
	}

	if _, err := NewSet(nil); err == nil {
		t.Error("NewSet() expected error for empty set")
	}
	if _, err := NewSet(map[string]Func{"": MAE}); err == nil {
		t.Error("NewSet() expected error for empty metric name")
	}
	if _, err := NewSet(map[string]Func{"mae": nil}); err == nil {
		t.Error("NewSet() expected error for nil metric func")
	}
}

func TestRegressionSet(t *testing.T) {
	set := RegressionSet()
	for _, name := range []string{"rmse", "mae", "r2"} {
		if _, ok := set[name]; !ok {
			t.Errorf("RegressionSet() missing %q", name)
		}
	}

	yTrue := mat.NewVecDense(3, []float64{1, 2, 3})
	yPred := mat.NewVecDense(3, []float64{1, 2, 4})
	for name, fn := range set {
		if _, err := fn(yTrue, yPred); err != nil {
			t.Errorf("RegressionSet()[%q] unexpected error: %v", name, err)
		}
	}
}
