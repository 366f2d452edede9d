package ops

import "github.com/LeilaGhaffari/adolc-primer/internal/fmath"

// negRule implements negation: out = -a.
type negRule[T fmath.Float] struct{}

func (negRule[T]) Apply(a, _ T) T { return -a }

func (negRule[T]) Tangent(_, _, _, da, _ T) T { return -da }

func (negRule[T]) Adjoint(adj, _, _, _ T) (T, T) { return -adj, 0 }
