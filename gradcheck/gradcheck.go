// Copyright 2026 The adolc-primer Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gradcheck verifies tape gradients against finite differences.
//
// Check recomputes a gradient three ways: the reverse (adjoint) sweep,
// one forward (tangent) sweep per basis direction, and a central
// finite-difference estimate of the tape's value function. Any
// componentwise disagreement beyond tolerance fails the check.
//
// Example:
//
//	tr, in := ad.BeginTrace([]float64{0.5, 2})
//	f := in[0].Exp().Mul(in[1].Log())
//	tape, err := tr.EndTrace(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := gradcheck.Check(tape, []float64{0.5, 2}, nil); err != nil {
//	    log.Fatal(err) // names the worst disagreeing component
//	}
package gradcheck

import (
	"github.com/LeilaGhaffari/adolc-primer/ad"
	"github.com/LeilaGhaffari/adolc-primer/internal/gradcheck"
)

// Settings configures a gradient check. The zero value picks a default
// finite-difference step and tolerances.
type Settings = gradcheck.Settings

// Mismatch is the error a failed check returns, naming the worst
// disagreeing gradient component.
type Mismatch = gradcheck.Mismatch

// Check verifies the tape's gradient at the given inputs. A nil Settings
// uses the defaults. It returns nil when all three derivative
// computations agree within tolerance, a *Mismatch otherwise.
func Check(tape *ad.Tape[float64], inputs []float64, s *Settings) error {
	return gradcheck.Check(tape, inputs, s)
}
