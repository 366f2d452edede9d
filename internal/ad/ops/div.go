package ops

import "github.com/LeilaGhaffari/adolc-primer/internal/fmath"

// divRule implements binary division: out = a / b.
//
// Tangent: d(a/b) = (da - out*db) / b.
// Adjoint: d(a/b)/da = 1/b and d(a/b)/db = -out/b, so a receives adj/b
// and b receives -adj*out/b. The already computed quotient stands in for
// a/b**2.
type divRule[T fmath.Float] struct{}

func (divRule[T]) Apply(a, b T) T { return a / b }

func (divRule[T]) Tangent(_, b, out, da, db T) T { return (da - out*db) / b }

func (divRule[T]) Adjoint(adj, _, b, out T) (T, T) { return adj / b, -adj * out / b }
