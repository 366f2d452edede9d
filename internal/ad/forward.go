package ad

import (
	"fmt"

	"github.com/LeilaGhaffari/adolc-primer/internal/ad/ops"
	"github.com/LeilaGhaffari/adolc-primer/internal/parallel"
)

// Forward runs one tangent-mode pass, propagating values and tangents
// together in node order. seed supplies the tangent of each input, so a
// standard basis vector recovers one partial derivative. Returns the
// output value and the directional derivative along seed.
func (t *Tape[T]) Forward(inputs, seed []T) (T, T, error) {
	if len(inputs) != t.numInputs {
		return 0, 0, fmt.Errorf("%w: got %d inputs, tape declares %d", ErrDimensionMismatch, len(inputs), t.numInputs)
	}
	if len(seed) != t.numInputs {
		return 0, 0, fmt.Errorf("%w: tangent seed has %d entries, tape declares %d inputs", ErrDimensionMismatch, len(seed), t.numInputs)
	}
	values := make([]T, len(t.nodes))
	dots := make([]T, len(t.nodes))
	for i := range t.nodes {
		n := &t.nodes[i]
		switch n.code {
		case ops.Input:
			values[i] = inputs[n.a]
			dots[i] = seed[n.a]
		case ops.Const:
			values[i] = n.val
		default:
			a, da := values[n.a], dots[n.a]
			var b, db T
			if n.b >= 0 {
				b, db = values[n.b], dots[n.b]
			}
			values[i] = n.rule.Apply(a, b)
			dots[i] = n.rule.Tangent(a, b, values[i], da, db)
		}
	}
	return values[t.output], dots[t.output], nil
}

// ForwardBatch propagates several tangent seeds through a single value
// replay. The sweeps are independent and the sealed tape is read-only,
// so they are fanned across CPUs. Returns the output value and one
// directional derivative per seed, in seed order.
func (t *Tape[T]) ForwardBatch(inputs []T, seeds [][]T) (T, []T, error) {
	for k, seed := range seeds {
		if len(seed) != t.numInputs {
			return 0, nil, fmt.Errorf("%w: seed %d has %d entries, tape declares %d inputs", ErrDimensionMismatch, k, len(seed), t.numInputs)
		}
	}
	out, values, err := t.Evaluate(inputs)
	if err != nil {
		return 0, nil, err
	}
	tangents := make([]T, len(seeds))
	parallel.For(len(seeds), func(k int) {
		tangents[k] = t.tangentSweep(values, seeds[k])
	}, parallel.DefaultConfig())
	return out, tangents, nil
}

// tangentSweep runs one tangent pass over precomputed node values.
func (t *Tape[T]) tangentSweep(values, seed []T) T {
	dots := make([]T, len(t.nodes))
	for i := range t.nodes {
		n := &t.nodes[i]
		switch n.code {
		case ops.Input:
			dots[i] = seed[n.a]
		case ops.Const:
			// constants carry no tangent
		default:
			var b, db T
			if n.b >= 0 {
				b, db = values[n.b], dots[n.b]
			}
			dots[i] = n.rule.Tangent(values[n.a], b, values[i], dots[n.a], db)
		}
	}
	return dots[t.output]
}
