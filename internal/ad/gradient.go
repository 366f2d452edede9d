package ad

import "fmt"

// Gradient returns the gradient at the given inputs: one Evaluate
// followed by one Reverse with weight 1. The tape is not mutated, and
// repeated calls with the same inputs return bit-identical results.
func (t *Tape[T]) Gradient(inputs []T) ([]T, error) {
	_, values, err := t.Evaluate(inputs)
	if err != nil {
		return nil, err
	}
	return t.Reverse(values, 1)
}

// GradientTo computes the gradient into dst, which must have one entry
// per input. dst is zeroed first.
func (t *Tape[T]) GradientTo(dst, inputs []T) error {
	if len(dst) != t.numInputs {
		return fmt.Errorf("%w: dst has %d entries, tape declares %d inputs", ErrDimensionMismatch, len(dst), t.numInputs)
	}
	_, values, err := t.Evaluate(inputs)
	if err != nil {
		return err
	}
	clear(dst)
	t.reverseInto(dst, values, 1)
	return nil
}

// GradientForward returns the same gradient as Gradient, computed in
// forward mode: one tangent sweep per standard basis direction. It costs
// one sweep per input, against one reverse sweep total, and exists to
// cross-check the two modes against each other.
func (t *Tape[T]) GradientForward(inputs []T) ([]T, error) {
	seeds := make([][]T, t.numInputs)
	for i := range seeds {
		seeds[i] = make([]T, t.numInputs)
		seeds[i][i] = 1
	}
	_, tangents, err := t.ForwardBatch(inputs, seeds)
	if err != nil {
		return nil, err
	}
	return tangents, nil
}
