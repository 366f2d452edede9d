package ops

import "github.com/LeilaGhaffari/adolc-primer/internal/fmath"

// logRule implements the natural logarithm: out = ln(a).
//
// Tangent: d(ln a) = da / a.
// Adjoint: a receives adj / a.
type logRule[T fmath.Float] struct{}

func (logRule[T]) Apply(a, _ T) T { return fmath.Log(a) }

func (logRule[T]) Tangent(a, _, _, da, _ T) T { return da / a }

func (logRule[T]) Adjoint(adj, a, _, _ T) (T, T) { return adj / a, 0 }
