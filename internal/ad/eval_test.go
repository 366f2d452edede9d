package ad_test

import (
	"errors"
	"math"
	"testing"

	"github.com/LeilaGhaffari/adolc-primer/internal/ad"
)

// TestEvaluate_ReferenceFunction tests value replay at several points.
func TestEvaluate_ReferenceFunction(t *testing.T) {
	tape := traceReference(t, []float64{1, 1, 1})
	for _, p := range refPoints {
		val, values, err := tape.Evaluate(p)
		if err != nil {
			t.Fatalf("Evaluate(%v) failed: %v", p, err)
		}
		if want := refValue(p[0], p[1], p[2]); val != want {
			t.Errorf("Evaluate(%v) = %v, want %v", p, val, want)
		}
		if len(values) != tape.Len() {
			t.Errorf("Evaluate(%v) returned %d node values, tape has %d nodes", p, len(values), tape.Len())
		}
		if values[tape.Output()] != val {
			t.Errorf("values[Output()] = %v, output value = %v", values[tape.Output()], val)
		}
	}
}

// TestEvaluate_DimensionMismatch tests short and long input vectors.
func TestEvaluate_DimensionMismatch(t *testing.T) {
	tape := traceReference(t, []float64{1, 1, 1})
	for _, p := range [][]float64{nil, {1}, {1, 2}, {1, 2, 3, 4}} {
		if _, _, err := tape.Evaluate(p); !errors.Is(err, ad.ErrDimensionMismatch) {
			t.Errorf("Evaluate(%d inputs) error = %v, want ErrDimensionMismatch", len(p), err)
		}
	}
}

// TestTracedValues tests that the trace pass recorded the same values a
// fresh Evaluate produces at the trace point.
func TestTracedValues(t *testing.T) {
	at := []float64{2, -1, 3}
	tape := traceReference(t, at)

	traced := tape.TracedValues()
	_, values, err := tape.Evaluate(at)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if len(traced) != len(values) {
		t.Fatalf("TracedValues has %d entries, Evaluate produced %d", len(traced), len(values))
	}
	for i := range traced {
		if traced[i] != values[i] {
			t.Errorf("node %d: traced %v, evaluated %v", i, traced[i], values[i])
		}
	}

	// The copy must be detached from the tape.
	traced[0] = 1e9
	again := tape.TracedValues()
	if again[0] == 1e9 {
		t.Error("TracedValues returned a shared slice, want a copy")
	}
}

// TestEvaluate_AllOperations tests a trace exercising every elementary
// operation against direct computation.
func TestEvaluate_AllOperations(t *testing.T) {
	at := []float64{0.8, 1.6}
	tr, in := ad.BeginTrace(at)
	x, y := in[0], in[1]

	// ((exp(x) * tanh(y) + sqrt(y) - log(y) / sin(x)) + cos(x)) with
	// immediates and a negation folded in.
	u := x.Exp().Mul(y.Tanh())
	v := y.Sqrt().AddConst(0.5)
	w := y.Log().Div(x.Sin()).Neg()
	out := u.Add(v).Add(w).Add(x.Cos().Scale(3)).Sub(y.Pow(3))

	tape, err := tr.EndTrace(out)
	if err != nil {
		t.Fatalf("EndTrace failed: %v", err)
	}

	want := func(x, y float64) float64 {
		u := math.Exp(x) * math.Tanh(y)
		v := math.Sqrt(y) + 0.5
		w := -(math.Log(y) / math.Sin(x))
		return u + v + w + 3*math.Cos(x) - y*y*y
	}

	val, _, err := tape.Evaluate(at)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if w := want(at[0], at[1]); math.Abs(val-w) > 1e-15*math.Abs(w) {
		t.Errorf("Evaluate(%v) = %v, want %v", at, val, w)
	}

	// The traced value must match too.
	traced := tape.TracedValues()
	if traced[tape.Output()] != val {
		t.Errorf("traced output = %v, evaluated output = %v", traced[tape.Output()], val)
	}

	p := []float64{1.2, 0.7}
	val2, _, err := tape.Evaluate(p)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if w := want(p[0], p[1]); math.Abs(val2-w) > 1e-14*math.Abs(w) {
		t.Errorf("Evaluate(%v) = %v, want %v", p, val2, w)
	}
}
