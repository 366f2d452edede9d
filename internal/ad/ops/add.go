package ops

import "github.com/LeilaGhaffari/adolc-primer/internal/fmath"

// addRule implements binary addition: out = a + b.
//
// Tangent: d(a+b) = da + db.
// Adjoint: the node adjoint flows to both operands unchanged.
type addRule[T fmath.Float] struct{}

func (addRule[T]) Apply(a, b T) T { return a + b }

func (addRule[T]) Tangent(_, _, _, da, db T) T { return da + db }

func (addRule[T]) Adjoint(adj, _, _, _ T) (T, T) { return adj, adj }
