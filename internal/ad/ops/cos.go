package ops

import "github.com/LeilaGhaffari/adolc-primer/internal/fmath"

// cosRule implements the cosine: out = cos(a).
//
// Tangent: d(cos a) = -sin(a) * da.
// Adjoint: a receives -adj * sin(a).
type cosRule[T fmath.Float] struct{}

func (cosRule[T]) Apply(a, _ T) T { return fmath.Cos(a) }

func (cosRule[T]) Tangent(a, _, _, da, _ T) T { return -fmath.Sin(a) * da }

func (cosRule[T]) Adjoint(adj, a, _, _ T) (T, T) { return -adj * fmath.Sin(a), 0 }
