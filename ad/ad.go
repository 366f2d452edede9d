// Copyright 2026 The adolc-primer Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ad provides scalar automatic differentiation over an explicit,
// caller-owned tape.
//
// A function is traced once: BeginTrace hands out one placeholder per
// input, arithmetic on placeholders records one tape node per operation,
// and EndTrace seals the result into an immutable Tape. The sealed tape
// then yields values and exact first derivatives at any input, in forward
// (tangent) mode or reverse (adjoint) mode, without re-tracing.
//
// Example:
//
//	// Trace f(x, y, z) = x^2 + z^2 + 2xy + z at (1, 1, 1).
//	tr, in := ad.BeginTrace([]float64{1, 1, 1})
//	x, y, z := in[0], in[1], in[2]
//	f := x.Pow(2).Add(z.Pow(2)).Add(x.Mul(y).Scale(2)).Add(z)
//	tape, err := tr.EndTrace(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// One reverse sweep yields the whole gradient: (4, 2, 3).
//	grad, err := tape.Gradient([]float64{1, 1, 1})
//
//	// One forward sweep yields one directional derivative.
//	_, dfdx, err := tape.Forward([]float64{1, 1, 1}, []float64{1, 0, 0})
//
// A sealed tape is read-only: concurrent derivative calls against it need
// no synchronization.
package ad

import (
	"io"

	"github.com/LeilaGhaffari/adolc-primer/internal/ad"
	"github.com/LeilaGhaffari/adolc-primer/internal/fmath"
)

// Float is the constraint for the scalar types the engine differentiates:
// float32 or float64.
type Float = fmath.Float

// Tape is the sealed record of one traced function. It exposes Evaluate,
// Forward, ForwardBatch, Reverse, Gradient, GradientTo, GradientForward,
// the Stats and TracedValues accessors, and WriteTo for persistence.
type Tape[T Float] = ad.Tape[T]

// Tracer records arithmetic on placeholders into a fresh tape. Obtain one
// from BeginTrace; seal it with EndTrace.
type Tracer[T Float] = ad.Tracer[T]

// Var is a placeholder for one tape node during tracing. Its methods
// (Add, Mul, Pow, Exp, ...) each record exactly one operation.
type Var[T Float] = ad.Var[T]

// Stats summarizes a tape's composition.
type Stats = ad.Stats

// Errors reported by the engine. Returned errors wrap these sentinels
// with the offending detail; match with errors.Is.
var (
	ErrInvalidTrace      = ad.ErrInvalidTrace
	ErrDimensionMismatch = ad.ErrDimensionMismatch
	ErrUnsupportedOp     = ad.ErrUnsupportedOp

	// Tape file errors.
	ErrInvalidMagic       = ad.ErrInvalidMagic
	ErrUnsupportedVersion = ad.ErrUnsupportedVersion
	ErrChecksumMismatch   = ad.ErrChecksumMismatch
	ErrDTypeMismatch      = ad.ErrDTypeMismatch
	ErrCorruptTape        = ad.ErrCorruptTape
)

// BeginTrace starts a trace with one placeholder per input, recorded at
// the given values.
//
// Example:
//
//	tr, in := ad.BeginTrace([]float64{2, 3})
//	f := in[0].Mul(in[1]).AddConst(1)
//	tape, err := tr.EndTrace(f)
func BeginTrace[T Float](inputs []T) (*Tracer[T], []Var[T]) {
	return ad.BeginTrace(inputs)
}

// ReadTape deserializes a tape written by Tape.WriteTo, re-validating its
// structural invariants. The scalar type must match the one the tape was
// written with, or ReadTape fails with ErrDTypeMismatch.
func ReadTape[T Float](r io.Reader) (*Tape[T], error) {
	return ad.ReadTape[T](r)
}
