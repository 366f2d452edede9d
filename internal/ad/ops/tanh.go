package ops

import "github.com/LeilaGhaffari/adolc-primer/internal/fmath"

// tanhRule implements the hyperbolic tangent: out = tanh(a).
//
// Since d(tanh a)/da = 1 - tanh(a)**2, both tangent and adjoint reuse the
// already computed node value.
type tanhRule[T fmath.Float] struct{}

func (tanhRule[T]) Apply(a, _ T) T { return fmath.Tanh(a) }

func (tanhRule[T]) Tangent(_, _, out, da, _ T) T { return (1 - out*out) * da }

func (tanhRule[T]) Adjoint(adj, _, _, out T) (T, T) { return adj * (1 - out*out), 0 }
