package ops

import "github.com/LeilaGhaffari/adolc-primer/internal/fmath"

// powRule implements integer power: out = a**n for n >= 0.
//
// Tangent: d(a**n) = n * a**(n-1) * da.
// Adjoint: a receives adj * n * a**(n-1).
// For n == 0 the node is the constant 1 and no derivative flows.
type powRule[T fmath.Float] struct {
	n int
}

func (r powRule[T]) Apply(a, _ T) T { return fmath.PowInt(a, r.n) }

func (r powRule[T]) Tangent(a, _, _, da, _ T) T {
	if r.n == 0 {
		return 0
	}
	return T(r.n) * fmath.PowInt(a, r.n-1) * da
}

func (r powRule[T]) Adjoint(adj, a, _, _ T) (T, T) {
	if r.n == 0 {
		return 0, 0
	}
	return adj * T(r.n) * fmath.PowInt(a, r.n-1), 0
}
