package ops

import "github.com/LeilaGhaffari/adolc-primer/internal/fmath"

// addConstRule implements addition of an immediate: out = a + c.
//
// The constant contributes nothing to tangents or adjoints.
type addConstRule[T fmath.Float] struct {
	c T
}

func (r addConstRule[T]) Apply(a, _ T) T { return a + r.c }

func (addConstRule[T]) Tangent(_, _, _, da, _ T) T { return da }

func (addConstRule[T]) Adjoint(adj, _, _, _ T) (T, T) { return adj, 0 }
