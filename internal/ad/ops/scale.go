package ops

import "github.com/LeilaGhaffari/adolc-primer/internal/fmath"

// scaleRule implements multiplication by an immediate: out = c * a.
//
// Tangent: d(c*a) = c*da.
// Adjoint: a receives c*adj.
type scaleRule[T fmath.Float] struct {
	c T
}

func (r scaleRule[T]) Apply(a, _ T) T { return r.c * a }

func (r scaleRule[T]) Tangent(_, _, _, da, _ T) T { return r.c * da }

func (r scaleRule[T]) Adjoint(adj, _, _, _ T) (T, T) { return r.c * adj, 0 }
