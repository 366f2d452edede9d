package ad

import (
	"fmt"

	"github.com/LeilaGhaffari/adolc-primer/internal/ad/ops"
	"github.com/LeilaGhaffari/adolc-primer/internal/fmath"
)

// Tracer records arithmetic on placeholders into a fresh tape. Each
// tracer owns its own recording state, so independent functions can be
// traced concurrently. A tracer is single-use: EndTrace seals it.
//
// Contract violations (an operand from another trace, arithmetic after
// sealing, an unsupported operation) do not fail the offending call.
// The tracer remembers the first violation and EndTrace reports it,
// which keeps traced expressions free of error plumbing.
type Tracer[T fmath.Float] struct {
	nodes     []node[T]
	numInputs int
	sealed    bool
	err       error
}

// Var is a placeholder for one tape node during tracing. The zero Var
// belongs to no trace; combining it with live placeholders poisons
// their trace.
type Var[T fmath.Float] struct {
	tr  *Tracer[T]
	idx int
}

// BeginTrace starts a trace with one placeholder per input, recorded at
// the given values. The values flow through every subsequent operation,
// so the sealed tape also carries the function's value at the trace
// point (see Tape.TracedValues).
func BeginTrace[T fmath.Float](inputs []T) (*Tracer[T], []Var[T]) {
	t := &Tracer[T]{
		nodes:     make([]node[T], 0, len(inputs)+32),
		numInputs: len(inputs),
	}
	vars := make([]Var[T], len(inputs))
	for i, x := range inputs {
		t.nodes = append(t.nodes, node[T]{code: ops.Input, a: i, b: -1, val: x})
		vars[i] = Var[T]{tr: t, idx: i}
	}
	return t, vars
}

// Const records an immediate constant and returns its placeholder.
func (t *Tracer[T]) Const(c T) Var[T] {
	if t.sealed {
		return t.fail(fmt.Errorf("%w: constant recorded after the trace ended", ErrInvalidTrace))
	}
	t.nodes = append(t.nodes, node[T]{code: ops.Const, a: -1, b: -1, aux: float64(c), val: c})
	return Var[T]{tr: t, idx: len(t.nodes) - 1}
}

// EndTrace designates the output node and seals the tape. The tracer is
// spent afterwards; a second call fails. Returns ErrInvalidTrace when
// the trace recorded a contract violation, the output placeholder does
// not belong to this trace, no inputs were declared, or no operations
// were recorded.
func (t *Tracer[T]) EndTrace(output Var[T]) (*Tape[T], error) {
	if t.sealed {
		return nil, fmt.Errorf("%w: trace already ended", ErrInvalidTrace)
	}
	t.sealed = true
	if t.err != nil {
		return nil, t.err
	}
	if output.tr != t {
		return nil, fmt.Errorf("%w: output is not from this trace", ErrInvalidTrace)
	}
	if t.numInputs == 0 {
		return nil, fmt.Errorf("%w: no inputs declared", ErrInvalidTrace)
	}
	if len(t.nodes) == t.numInputs {
		return nil, fmt.Errorf("%w: no operations recorded", ErrInvalidTrace)
	}
	return &Tape[T]{nodes: t.nodes, numInputs: t.numInputs, output: output.idx}, nil
}

// fail records the first contract violation and returns a dead Var.
func (t *Tracer[T]) fail(err error) Var[T] {
	if t.err == nil {
		t.err = err
	}
	return Var[T]{}
}

// record appends one operation node, computing its value immediately.
func (t *Tracer[T]) record(code ops.Code, a, b int, aux float64) Var[T] {
	if t.sealed {
		return t.fail(fmt.Errorf("%w: %v recorded after the trace ended", ErrInvalidTrace, code))
	}
	rule, ok := ops.For[T](code, aux)
	if !ok {
		if code.HasImmediate() {
			return t.fail(fmt.Errorf("%w: %v with immediate %v", ErrUnsupportedOp, code, aux))
		}
		return t.fail(fmt.Errorf("%w: %v", ErrUnsupportedOp, code))
	}
	av := t.nodes[a].val
	var bv T
	if b >= 0 {
		bv = t.nodes[b].val
	}
	t.nodes = append(t.nodes, node[T]{
		code: code, a: a, b: b, aux: aux,
		val:  rule.Apply(av, bv),
		rule: rule,
	})
	return Var[T]{tr: t, idx: len(t.nodes) - 1}
}

func (v Var[T]) binary(o Var[T], code ops.Code) Var[T] {
	t := v.tr
	if t == nil {
		t = o.tr
	}
	if t == nil {
		return Var[T]{}
	}
	if v.tr != t || o.tr != t {
		return t.fail(fmt.Errorf("%w: %v operand from another trace", ErrInvalidTrace, code))
	}
	return t.record(code, v.idx, o.idx, 0)
}

func (v Var[T]) unary(code ops.Code, aux float64) Var[T] {
	if v.tr == nil {
		return Var[T]{}
	}
	return v.tr.record(code, v.idx, -1, aux)
}

// Value returns the value the placeholder recorded during tracing.
// The zero Var reports 0.
func (v Var[T]) Value() T {
	if v.tr == nil {
		return 0
	}
	return v.tr.nodes[v.idx].val
}

// Add records v + o.
func (v Var[T]) Add(o Var[T]) Var[T] { return v.binary(o, ops.Add) }

// Sub records v - o.
func (v Var[T]) Sub(o Var[T]) Var[T] { return v.binary(o, ops.Sub) }

// Mul records v * o.
func (v Var[T]) Mul(o Var[T]) Var[T] { return v.binary(o, ops.Mul) }

// Div records v / o.
func (v Var[T]) Div(o Var[T]) Var[T] { return v.binary(o, ops.Div) }

// Neg records -v.
func (v Var[T]) Neg() Var[T] { return v.unary(ops.Neg, 0) }

// AddConst records v + c.
func (v Var[T]) AddConst(c T) Var[T] { return v.unary(ops.AddConst, float64(c)) }

// Scale records c * v.
func (v Var[T]) Scale(c T) Var[T] { return v.unary(ops.Scale, float64(c)) }

// Pow records v**n. The exponent must be a non-negative integer;
// a negative exponent poisons the trace.
func (v Var[T]) Pow(n int) Var[T] { return v.unary(ops.Pow, float64(n)) }

// Exp records e**v.
func (v Var[T]) Exp() Var[T] { return v.unary(ops.Exp, 0) }

// Log records the natural logarithm of v.
func (v Var[T]) Log() Var[T] { return v.unary(ops.Log, 0) }

// Sqrt records the square root of v.
func (v Var[T]) Sqrt() Var[T] { return v.unary(ops.Sqrt, 0) }

// Sin records the sine of v.
func (v Var[T]) Sin() Var[T] { return v.unary(ops.Sin, 0) }

// Cos records the cosine of v.
func (v Var[T]) Cos() Var[T] { return v.unary(ops.Cos, 0) }

// Tanh records the hyperbolic tangent of v.
func (v Var[T]) Tanh() Var[T] { return v.unary(ops.Tanh, 0) }
