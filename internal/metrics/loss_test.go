package metrics

import (
	"math"
	"testing"
)

type line struct{ w, b float64 }

func (l line) Forward(x float64) float64 { return l.w*x + l.b }

func TestMSEUsesHalfMean(t *testing.T) {
	// residuals -1, -2, -3: (1+4+9)/(2*3)
	got := MSE(line{}, []float64{1, 2, 3}, []float64{1, 2, 3})
	if math.Abs(got-14.0/6) > 1e-12 {
		t.Fatalf("expected %g, got %g", 14.0/6, got)
	}
	if got := MSE(line{w: 1}, []float64{1, 2, 3}, []float64{1, 2, 3}); got != 0 {
		t.Fatalf("perfect fit should have zero error, got %g", got)
	}
}

func TestMSEEmpty(t *testing.T) {
	if got := MSE(line{w: 1}, nil, nil); got != 0 {
		t.Fatalf("expected 0 for empty series, got %g", got)
	}
}

func TestRSquared(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{1, 3, 5, 7}
	if r2 := RSquared(xs, ys, 2, 1); math.Abs(r2-1) > 1e-12 {
		t.Fatalf("exact fit should give R²=1, got %g", r2)
	}
	if r2 := RSquared(xs, ys, 0, 4); math.Abs(r2) > 1e-12 {
		t.Fatalf("mean predictor should give R²=0, got %g", r2)
	}
}
