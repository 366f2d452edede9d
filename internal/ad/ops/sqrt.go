package ops

import "github.com/LeilaGhaffari/adolc-primer/internal/fmath"

// sqrtRule implements the square root: out = sqrt(a).
//
// Since d(sqrt a)/da = 1/(2*sqrt(a)), both tangent and adjoint reuse the
// already computed node value.
type sqrtRule[T fmath.Float] struct{}

func (sqrtRule[T]) Apply(a, _ T) T { return fmath.Sqrt(a) }

func (sqrtRule[T]) Tangent(_, _, out, da, _ T) T { return da / (2 * out) }

func (sqrtRule[T]) Adjoint(adj, _, _, out T) (T, T) { return adj / (2 * out), 0 }
