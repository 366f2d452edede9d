package ops

import "github.com/LeilaGhaffari/adolc-primer/internal/fmath"

// subRule implements binary subtraction: out = a - b.
//
// Tangent: d(a-b) = da - db.
// Adjoint: a receives the node adjoint, b its negation.
type subRule[T fmath.Float] struct{}

func (subRule[T]) Apply(a, b T) T { return a - b }

func (subRule[T]) Tangent(_, _, _, da, db T) T { return da - db }

func (subRule[T]) Adjoint(adj, _, _, _ T) (T, T) { return adj, -adj }
