// Package ops defines the elementary operations a tape can record.
//
// Each operation contributes three rules, bundled in a Rule value:
//   - value rule: recomputes the node value from its operand values
//   - tangent rule: propagates directional derivatives forward
//   - adjoint rule: distributes the node adjoint to the operands in reverse
//
// Supported operations:
//   - Add, Sub, Mul, Div: binary arithmetic (d(a*b)/da = b, d(a*b)/db = a, ...)
//   - Neg, AddConst, Scale, Pow: unary, the last three carrying an immediate
//   - Exp, Log, Sqrt, Sin, Cos, Tanh: elementary functions
//
// Input and Const mark tape leaves; they carry no rule and are handled by
// the tape walkers directly.
package ops

import (
	"fmt"

	"github.com/LeilaGhaffari/adolc-primer/internal/fmath"
)

// Code identifies an elementary operation. Codes are persisted in tape
// files and must not be renumbered.
type Code uint8

// Operation codes.
const (
	Input Code = iota // leaf: reads one entry of the input vector
	Const             // leaf: immediate constant
	Add               // a + b
	Sub               // a - b
	Mul               // a * b
	Div               // a / b
	Neg               // -a
	AddConst          // a + c
	Scale             // c * a
	Pow               // a**n for a non-negative integer n
	Exp               // e**a
	Log               // ln(a)
	Sqrt              // square root of a
	Sin               // sine of a
	Cos               // cosine of a
	Tanh              // hyperbolic tangent of a

	numCodes // sentinel, keep last
)

var codeNames = [numCodes]string{
	"input", "const", "add", "sub", "mul", "div", "neg", "addconst",
	"scale", "pow", "exp", "log", "sqrt", "sin", "cos", "tanh",
}

// String returns the lower-case operation name.
func (c Code) String() string {
	if c < numCodes {
		return codeNames[c]
	}
	return fmt.Sprintf("code(%d)", uint8(c))
}

// Arity returns the number of tape operands the code consumes:
// 0 for leaves, 1 for unary operations, 2 for binary operations,
// and -1 for codes outside the supported set.
func (c Code) Arity() int {
	switch c {
	case Input, Const:
		return 0
	case Neg, AddConst, Scale, Pow, Exp, Log, Sqrt, Sin, Cos, Tanh:
		return 1
	case Add, Sub, Mul, Div:
		return 2
	default:
		return -1
	}
}

// HasImmediate reports whether the code carries an immediate operand
// (the constant of Const and AddConst, the factor of Scale, the exponent
// of Pow).
func (c Code) HasImmediate() bool {
	switch c {
	case Const, AddConst, Scale, Pow:
		return true
	default:
		return false
	}
}

// Rule carries the value, tangent, and adjoint forms of one operation,
// specialized to a scalar type. Unary rules ignore the b arguments.
type Rule[T fmath.Float] interface {
	// Apply returns the operation value at operand values a and b.
	Apply(a, b T) T

	// Tangent returns the node tangent given operand values a and b,
	// the node's own value out, and operand tangents da and db.
	Tangent(a, b, out, da, db T) T

	// Adjoint distributes the node adjoint adj to the operands, given
	// operand values a and b and the node's own value out.
	Adjoint(adj, a, b, out T) (da, db T)
}

// For returns the rule implementing code for scalar type T. aux carries
// the immediate operand where the code takes one. The second result is
// false for leaf codes, codes outside the supported set, and invalid
// immediates (a Pow exponent that is negative or not integral).
func For[T fmath.Float](code Code, aux float64) (Rule[T], bool) {
	switch code {
	case Add:
		return addRule[T]{}, true
	case Sub:
		return subRule[T]{}, true
	case Mul:
		return mulRule[T]{}, true
	case Div:
		return divRule[T]{}, true
	case Neg:
		return negRule[T]{}, true
	case AddConst:
		return addConstRule[T]{c: T(aux)}, true
	case Scale:
		return scaleRule[T]{c: T(aux)}, true
	case Pow:
		n := int(aux)
		if n < 0 || float64(n) != aux {
			return nil, false
		}
		return powRule[T]{n: n}, true
	case Exp:
		return expRule[T]{}, true
	case Log:
		return logRule[T]{}, true
	case Sqrt:
		return sqrtRule[T]{}, true
	case Sin:
		return sinRule[T]{}, true
	case Cos:
		return cosRule[T]{}, true
	case Tanh:
		return tanhRule[T]{}, true
	default:
		return nil, false
	}
}
