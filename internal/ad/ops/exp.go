package ops

import "github.com/LeilaGhaffari/adolc-primer/internal/fmath"

// expRule implements the exponential: out = e**a.
//
// Since d(e**a)/da = e**a, both tangent and adjoint reuse the already
// computed node value instead of calling Exp again.
type expRule[T fmath.Float] struct{}

func (expRule[T]) Apply(a, _ T) T { return fmath.Exp(a) }

func (expRule[T]) Tangent(_, _, out, da, _ T) T { return out * da }

func (expRule[T]) Adjoint(adj, _, _, out T) (T, T) { return adj * out, 0 }
