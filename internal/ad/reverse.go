package ad

import (
	"fmt"

	"github.com/LeilaGhaffari/adolc-primer/internal/ad/ops"
)

// Reverse walks the tape in strictly reverse node order, distributing
// adjoints from the output down to the inputs. values must be the
// per-node slice of a prior Evaluate on this tape; Reverse never
// recomputes values. weight seeds the output adjoint, so weight 1
// yields the gradient. Returns one adjoint per input.
func (t *Tape[T]) Reverse(values []T, weight T) ([]T, error) {
	if len(values) != len(t.nodes) {
		return nil, fmt.Errorf("%w: got %d node values, tape has %d nodes", ErrDimensionMismatch, len(values), len(t.nodes))
	}
	grad := make([]T, t.numInputs)
	t.reverseInto(grad, values, weight)
	return grad, nil
}

// reverseInto accumulates input adjoints into grad, which must be zeroed
// and of input length. Arguments are assumed validated. When a node
// feeds several later nodes its adjoint arrives in several installments,
// all added here.
func (t *Tape[T]) reverseInto(grad, values []T, weight T) {
	adj := make([]T, len(t.nodes))
	adj[t.output] = weight
	for i := len(t.nodes) - 1; i >= 0; i-- {
		n := &t.nodes[i]
		w := adj[i]
		switch n.code {
		case ops.Input:
			grad[n.a] += w
		case ops.Const:
			// constants absorb no sensitivity
		default:
			if w == 0 {
				continue
			}
			var b T
			if n.b >= 0 {
				b = values[n.b]
			}
			da, db := n.rule.Adjoint(w, values[n.a], b, values[i])
			adj[n.a] += da
			if n.b >= 0 {
				adj[n.b] += db
			}
		}
	}
}
