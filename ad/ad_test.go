// Copyright 2026 The adolc-primer Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ad_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeilaGhaffari/adolc-primer/ad"
)

// traceQuadratic tapes f(x, y, z) = x^2 + z^2 + 2xy + z through the
// public API.
func traceQuadratic(t *testing.T, at []float64) *ad.Tape[float64] {
	t.Helper()
	tr, in := ad.BeginTrace(at)
	x, y, z := in[0], in[1], in[2]
	f := x.Pow(2).Add(z.Pow(2)).Add(x.Mul(y).Scale(2)).Add(z)
	tape, err := tr.EndTrace(f)
	require.NoError(t, err, "EndTrace")
	return tape
}

func TestPublicAPI_Gradient(t *testing.T) {
	tape := traceQuadratic(t, []float64{1, 1, 1})

	tests := []struct {
		at   []float64
		want []float64
	}{
		{[]float64{1, 1, 1}, []float64{4, 2, 3}},
		{[]float64{0, 0, 0}, []float64{0, 0, 1}},
		{[]float64{2, -1, 3}, []float64{2, 4, 7}},
	}
	for _, tt := range tests {
		grad, err := tape.Gradient(tt.at)
		require.NoError(t, err, "Gradient(%v)", tt.at)
		assert.Equal(t, tt.want, grad, "gradient at %v", tt.at)
	}
}

func TestPublicAPI_ForwardAgreesWithReverse(t *testing.T) {
	tape := traceQuadratic(t, []float64{1, 1, 1})
	at := []float64{0.4, -2.25, 1.5}

	grad, err := tape.Gradient(at)
	require.NoError(t, err)

	for i := 0; i < tape.NumInputs(); i++ {
		seed := make([]float64, tape.NumInputs())
		seed[i] = 1
		_, tangent, err := tape.Forward(at, seed)
		require.NoError(t, err, "Forward along basis %d", i)
		assert.Equal(t, grad[i], tangent, "basis direction %d", i)
	}
}

func TestPublicAPI_EvaluateAndStats(t *testing.T) {
	tape := traceQuadratic(t, []float64{1, 1, 1})

	val, values, err := tape.Evaluate([]float64{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 5.0, val, "f(1,1,1) = 1 + 1 + 2 + 1")
	assert.Len(t, values, tape.Len())

	stats := tape.Stats()
	assert.Equal(t, 3, stats.Inputs)
	assert.Equal(t, stats.Nodes, tape.Len())
	assert.Equal(t, stats.Inputs+stats.Constants+stats.Operations, stats.Nodes)
}

func TestPublicAPI_TapeFileRoundTrip(t *testing.T) {
	tape := traceQuadratic(t, []float64{2, -1, 3})

	var buf bytes.Buffer
	_, err := tape.WriteTo(&buf)
	require.NoError(t, err, "WriteTo")

	loaded, err := ad.ReadTape[float64](bytes.NewReader(buf.Bytes()))
	require.NoError(t, err, "ReadTape")

	at := []float64{2, -1, 3}
	want, err := tape.Gradient(at)
	require.NoError(t, err)
	got, err := loaded.Gradient(at)
	require.NoError(t, err)
	assert.Equal(t, want, got, "gradient of the loaded tape")

	_, err = ad.ReadTape[float32](bytes.NewReader(buf.Bytes()))
	assert.ErrorIs(t, err, ad.ErrDTypeMismatch, "float32 read of a float64 tape")
}

func TestPublicAPI_Errors(t *testing.T) {
	tape := traceQuadratic(t, []float64{1, 1, 1})

	_, err := tape.Gradient([]float64{1, 2})
	assert.ErrorIs(t, err, ad.ErrDimensionMismatch)

	tr, in := ad.BeginTrace([]float64{1})
	_, err = tr.EndTrace(in[0])
	assert.ErrorIs(t, err, ad.ErrInvalidTrace, "sealing with zero operations")
}
