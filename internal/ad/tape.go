// Package ad implements the scalar tape engine: tracing, evaluation,
// forward (tangent) and reverse (adjoint) derivative sweeps, and tape
// persistence.
package ad

import (
	"github.com/LeilaGhaffari/adolc-primer/internal/ad/ops"
	"github.com/LeilaGhaffari/adolc-primer/internal/fmath"
)

// node is one tape entry. Operand indices are strictly below the node's
// own index, so a tape is a topologically ordered DAG by construction.
type node[T fmath.Float] struct {
	code ops.Code
	a, b int         // operand node indices; a is the input slot for Input leaves; -1 when unused
	aux  float64     // immediate operand: constant, addend, factor, or exponent
	val  T           // value recorded during the trace pass
	rule ops.Rule[T] // nil for leaves
}

// Tape is the sealed record of one traced function: an ordered node
// list, a fixed input count, and exactly one output node. A Tape is
// immutable; derivative calls allocate their own buffers, so one tape
// may serve concurrent Evaluate, Forward, Reverse, and Gradient calls
// without synchronization.
type Tape[T fmath.Float] struct {
	nodes     []node[T]
	numInputs int
	output    int
}

// Stats summarizes a tape's composition.
type Stats struct {
	Inputs     int // input leaves
	Constants  int // constant leaves
	Operations int // non-leaf nodes
	Nodes      int // total nodes
}

// NumInputs returns the number of inputs the tape declares.
func (t *Tape[T]) NumInputs() int { return t.numInputs }

// Len returns the total number of nodes.
func (t *Tape[T]) Len() int { return len(t.nodes) }

// Output returns the node index designated as the output.
func (t *Tape[T]) Output() int { return t.output }

// Stats counts the tape's leaves and operations.
func (t *Tape[T]) Stats() Stats {
	s := Stats{Nodes: len(t.nodes)}
	for i := range t.nodes {
		switch t.nodes[i].code {
		case ops.Input:
			s.Inputs++
		case ops.Const:
			s.Constants++
		default:
			s.Operations++
		}
	}
	return s
}

// TracedValues returns a copy of the per-node values recorded during the
// trace pass. Feeding them to Reverse yields adjoints at the trace point
// without a fresh Evaluate.
func (t *Tape[T]) TracedValues() []T {
	values := make([]T, len(t.nodes))
	for i := range t.nodes {
		values[i] = t.nodes[i].val
	}
	return values
}
