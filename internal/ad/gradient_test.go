package ad_test

import (
	"errors"
	"math"
	"testing"

	"github.com/LeilaGhaffari/adolc-primer/internal/ad"
)

// traceReference tapes f(x, y, z) = x^2 + z^2 + 2xy + z at the given
// point. Gradient: (2x + 2y, 2x, 2z + 1).
func traceReference(tb testing.TB, at []float64) *ad.Tape[float64] {
	tb.Helper()
	tr, in := ad.BeginTrace(at)
	x, y, z := in[0], in[1], in[2]
	f := x.Pow(2).Add(z.Pow(2)).Add(x.Mul(y).Scale(2)).Add(z)
	tape, err := tr.EndTrace(f)
	if err != nil {
		tb.Fatalf("EndTrace failed: %v", err)
	}
	return tape
}

func refValue(x, y, z float64) float64 {
	return x*x + z*z + 2*x*y + z
}

func refGrad(x, y, z float64) []float64 {
	return []float64{2*x + 2*y, 2 * x, 2*z + 1}
}

var refPoints = [][]float64{
	{1, 1, 1},
	{0, 0, 0},
	{2, -1, 3},
}

// TestGradient_ReferencePoints tests the gradient of the reference
// function at hand-checked points.
func TestGradient_ReferencePoints(t *testing.T) {
	tape := traceReference(t, []float64{1, 1, 1})
	for _, p := range refPoints {
		grad, err := tape.Gradient(p)
		if err != nil {
			t.Fatalf("Gradient(%v) failed: %v", p, err)
		}
		want := refGrad(p[0], p[1], p[2])
		for i := range want {
			if grad[i] != want[i] {
				t.Errorf("Gradient(%v)[%d] = %v, want %v", p, i, grad[i], want[i])
			}
		}
	}
}

// TestGradient_MatchesForwardMode tests cross-mode consistency: the
// reverse gradient equals per-basis forward derivatives component by
// component.
func TestGradient_MatchesForwardMode(t *testing.T) {
	tape := traceReference(t, []float64{1, 1, 1})
	for _, p := range refPoints {
		grad, err := tape.Gradient(p)
		if err != nil {
			t.Fatalf("Gradient(%v) failed: %v", p, err)
		}
		for i := 0; i < tape.NumInputs(); i++ {
			seed := make([]float64, tape.NumInputs())
			seed[i] = 1
			_, tangent, err := tape.Forward(p, seed)
			if err != nil {
				t.Fatalf("Forward(%v, e%d) failed: %v", p, i, err)
			}
			if tangent != grad[i] {
				t.Errorf("at %v: forward basis %d = %v, reverse component = %v", p, i, tangent, grad[i])
			}
		}

		fwd, err := tape.GradientForward(p)
		if err != nil {
			t.Fatalf("GradientForward(%v) failed: %v", p, err)
		}
		for i := range grad {
			if fwd[i] != grad[i] {
				t.Errorf("at %v: GradientForward[%d] = %v, Gradient = %v", p, i, fwd[i], grad[i])
			}
		}
	}
}

// TestGradient_CrossModeAtNonIntegerPoint tests both modes away from
// integer-exact arithmetic.
func TestGradient_CrossModeAtNonIntegerPoint(t *testing.T) {
	tape := traceReference(t, []float64{1, 1, 1})
	p := []float64{0.3, -1.7, 2.9}

	grad, err := tape.Gradient(p)
	if err != nil {
		t.Fatalf("Gradient failed: %v", err)
	}
	fwd, err := tape.GradientForward(p)
	if err != nil {
		t.Fatalf("GradientForward failed: %v", err)
	}
	want := refGrad(p[0], p[1], p[2])
	const tol = 1e-12
	for i := range want {
		if math.Abs(grad[i]-want[i]) > tol {
			t.Errorf("Gradient[%d] = %v, want %v", i, grad[i], want[i])
		}
		if math.Abs(fwd[i]-grad[i]) > tol {
			t.Errorf("GradientForward[%d] = %v, Gradient = %v", i, fwd[i], grad[i])
		}
	}
}

// TestGradient_Idempotent tests that repeated gradient calls return
// bit-identical results.
func TestGradient_Idempotent(t *testing.T) {
	tape := traceReference(t, []float64{1, 1, 1})
	p := []float64{0.3, -1.7, 2.9}

	first, err := tape.Gradient(p)
	if err != nil {
		t.Fatalf("Gradient failed: %v", err)
	}
	for run := 0; run < 5; run++ {
		again, err := tape.Gradient(p)
		if err != nil {
			t.Fatalf("Gradient run %d failed: %v", run, err)
		}
		for i := range first {
			if math.Float64bits(again[i]) != math.Float64bits(first[i]) {
				t.Errorf("run %d component %d = %v, first run gave %v", run, i, again[i], first[i])
			}
		}
	}
}

// TestGradient_RetraceDeterminism tests that re-tracing the same
// function yields a tape with identical outputs and gradients.
func TestGradient_RetraceDeterminism(t *testing.T) {
	tape1 := traceReference(t, []float64{1, 1, 1})
	tape2 := traceReference(t, []float64{5, -2, 0.25})

	points := append(refPoints, []float64{0.3, -1.7, 2.9})
	for _, p := range points {
		v1, _, err := tape1.Evaluate(p)
		if err != nil {
			t.Fatalf("Evaluate on tape1 failed: %v", err)
		}
		v2, _, err := tape2.Evaluate(p)
		if err != nil {
			t.Fatalf("Evaluate on tape2 failed: %v", err)
		}
		if math.Float64bits(v1) != math.Float64bits(v2) {
			t.Errorf("Evaluate(%v): tape1 = %v, tape2 = %v", p, v1, v2)
		}

		g1, err := tape1.Gradient(p)
		if err != nil {
			t.Fatalf("Gradient on tape1 failed: %v", err)
		}
		g2, err := tape2.Gradient(p)
		if err != nil {
			t.Fatalf("Gradient on tape2 failed: %v", err)
		}
		for i := range g1 {
			if math.Float64bits(g1[i]) != math.Float64bits(g2[i]) {
				t.Errorf("Gradient(%v)[%d]: tape1 = %v, tape2 = %v", p, i, g1[i], g2[i])
			}
		}
	}
}

// TestGradientTo tests the caller-buffer variant.
func TestGradientTo(t *testing.T) {
	tape := traceReference(t, []float64{1, 1, 1})
	dst := []float64{99, 99, 99}

	if err := tape.GradientTo(dst, []float64{2, -1, 3}); err != nil {
		t.Fatalf("GradientTo failed: %v", err)
	}
	want := refGrad(2, -1, 3)
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}

	err := tape.GradientTo(dst[:2], []float64{2, -1, 3})
	if !errors.Is(err, ad.ErrDimensionMismatch) {
		t.Errorf("GradientTo with short dst error = %v, want ErrDimensionMismatch", err)
	}
}

// TestGradient_Float32 tests the float32 instantiation on the reference
// function. The expected values are small integers, exact in float32.
func TestGradient_Float32(t *testing.T) {
	tr, in := ad.BeginTrace([]float32{1, 1, 1})
	x, y, z := in[0], in[1], in[2]
	f := x.Pow(2).Add(z.Pow(2)).Add(x.Mul(y).Scale(2)).Add(z)
	tape, err := tr.EndTrace(f)
	if err != nil {
		t.Fatalf("EndTrace failed: %v", err)
	}

	grad, err := tape.Gradient([]float32{2, -1, 3})
	if err != nil {
		t.Fatalf("Gradient failed: %v", err)
	}
	want := []float32{2, 4, 7}
	for i := range want {
		if grad[i] != want[i] {
			t.Errorf("Gradient[%d] = %v, want %v", i, grad[i], want[i])
		}
	}
}

// TestGradient_DimensionMismatch tests that wrong-width input vectors
// are rejected rather than truncated or padded.
func TestGradient_DimensionMismatch(t *testing.T) {
	tape := traceReference(t, []float64{1, 1, 1})
	for _, p := range [][]float64{{1, 2}, {1, 2, 3, 4}, {}} {
		if _, err := tape.Gradient(p); !errors.Is(err, ad.ErrDimensionMismatch) {
			t.Errorf("Gradient(%d inputs) error = %v, want ErrDimensionMismatch", len(p), err)
		}
	}
}
