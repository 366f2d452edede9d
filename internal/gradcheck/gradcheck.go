// Package gradcheck verifies tape gradients against finite differences.
//
// A check recomputes the gradient three ways: the reverse sweep, one
// forward sweep per basis direction, and a central finite-difference
// estimate of Evaluate. Disagreement in any component fails the check.
// Checks run on float64 tapes, where the finite-difference step has
// enough headroom below the derivative scale.
package gradcheck

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/LeilaGhaffari/adolc-primer/internal/ad"
)

const (
	defaultAbsTol = 1e-8
	defaultRelTol = 1e-6
)

// Settings configures a gradient check. The zero value picks a default
// finite-difference step and tolerances.
type Settings struct {
	Step   float64 // finite-difference step; 0 uses the formula default
	AbsTol float64 // absolute tolerance; 0 means 1e-8
	RelTol float64 // relative tolerance; 0 means 1e-6
}

// Mismatch reports the worst disagreeing gradient component of a failed
// check.
type Mismatch struct {
	Quantity  string  // which pair disagreed, e.g. "reverse vs numeric"
	Component int     // input index
	Got       float64 // first quantity's value
	Want      float64 // second quantity's value
}

// Error implements the error interface.
func (e *Mismatch) Error() string {
	return fmt.Sprintf("gradient mismatch (%s) at input %d: got %v, want %v", e.Quantity, e.Component, e.Got, e.Want)
}

// Check verifies the tape's gradient at the given inputs. It returns
// nil when the reverse sweep, the forward basis sweeps, and the central
// finite-difference estimate agree componentwise within tolerance, a
// *Mismatch naming the worst component otherwise.
func Check(tape *ad.Tape[float64], inputs []float64, s *Settings) error {
	if s == nil {
		s = &Settings{}
	}
	absTol := s.AbsTol
	if absTol == 0 {
		absTol = defaultAbsTol
	}
	relTol := s.RelTol
	if relTol == 0 {
		relTol = defaultRelTol
	}

	rev, err := tape.Gradient(inputs)
	if err != nil {
		return err
	}
	fwd, err := tape.GradientForward(inputs)
	if err != nil {
		return err
	}

	numeric := fd.Gradient(nil, func(x []float64) float64 {
		y, _, err := tape.Evaluate(x)
		if err != nil {
			return math.NaN()
		}
		return y
	}, inputs, &fd.Settings{Formula: fd.Central, Step: s.Step})

	if m := worstMismatch("forward vs reverse", fwd, rev, absTol, relTol); m != nil {
		return m
	}
	if m := worstMismatch("reverse vs numeric", rev, numeric, absTol, relTol); m != nil {
		return m
	}
	return nil
}

// worstMismatch returns the component with the largest absolute gap
// among those outside tolerance, or nil when all agree.
func worstMismatch(quantity string, got, want []float64, absTol, relTol float64) *Mismatch {
	worst := -1
	var worstGap float64
	for i := range got {
		if scalar.EqualWithinAbsOrRel(got[i], want[i], absTol, relTol) {
			continue
		}
		gap := math.Abs(got[i] - want[i])
		if worst < 0 || gap > worstGap || math.IsNaN(gap) {
			worst, worstGap = i, gap
		}
	}
	if worst < 0 {
		return nil
	}
	return &Mismatch{Quantity: quantity, Component: worst, Got: got[worst], Want: want[worst]}
}
