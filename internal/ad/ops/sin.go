package ops

import "github.com/LeilaGhaffari/adolc-primer/internal/fmath"

// sinRule implements the sine: out = sin(a).
//
// Tangent: d(sin a) = cos(a) * da.
// Adjoint: a receives adj * cos(a).
type sinRule[T fmath.Float] struct{}

func (sinRule[T]) Apply(a, _ T) T { return fmath.Sin(a) }

func (sinRule[T]) Tangent(a, _, _, da, _ T) T { return fmath.Cos(a) * da }

func (sinRule[T]) Adjoint(adj, a, _, _ T) (T, T) { return adj * fmath.Cos(a), 0 }
