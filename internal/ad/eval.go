package ad

import (
	"fmt"

	"github.com/LeilaGhaffari/adolc-primer/internal/ad/ops"
)

// Evaluate replays the tape at the given inputs, in node order. It
// returns the output value and the full per-node value slice; Reverse
// consumes the latter. The slice is freshly allocated on every call.
func (t *Tape[T]) Evaluate(inputs []T) (T, []T, error) {
	if len(inputs) != t.numInputs {
		return 0, nil, fmt.Errorf("%w: got %d inputs, tape declares %d", ErrDimensionMismatch, len(inputs), t.numInputs)
	}
	values := make([]T, len(t.nodes))
	for i := range t.nodes {
		n := &t.nodes[i]
		switch n.code {
		case ops.Input:
			values[i] = inputs[n.a]
		case ops.Const:
			values[i] = n.val
		default:
			var b T
			if n.b >= 0 {
				b = values[n.b]
			}
			values[i] = n.rule.Apply(values[n.a], b)
		}
	}
	return values[t.output], values, nil
}
