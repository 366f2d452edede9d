package ops

import "github.com/LeilaGhaffari/adolc-primer/internal/fmath"

// mulRule implements binary multiplication: out = a * b.
//
// Tangent: d(a*b) = da*b + a*db.
// Adjoint: d(a*b)/da = b and d(a*b)/db = a, so a receives adj*b and
// b receives adj*a.
type mulRule[T fmath.Float] struct{}

func (mulRule[T]) Apply(a, b T) T { return a * b }

func (mulRule[T]) Tangent(a, b, _, da, db T) T { return da*b + a*db }

func (mulRule[T]) Adjoint(adj, a, b, _ T) (T, T) { return adj * b, adj * a }
