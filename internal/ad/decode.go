package ad

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/LeilaGhaffari/adolc-primer/internal/ad/ops"
	"github.com/LeilaGhaffari/adolc-primer/internal/fmath"
)

// ReadTape deserializes a tape written by Tape.WriteTo. The structural
// invariants (operands strictly precede their node, valid input slots,
// output in range) are re-validated, so a tape that decodes without
// error is as safe to walk as a freshly traced one.
func ReadTape[T fmath.Float](r io.Reader) (*Tape[T], error) {
	h := sha256.New()
	tr := io.TeeReader(r, h)

	magic := make([]byte, len(tapeMagic))
	if _, err := io.ReadFull(tr, magic); err != nil {
		return nil, fmt.Errorf("%w: reading magic bytes: %v", ErrCorruptTape, err)
	}
	if string(magic) != tapeMagic {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidMagic, magic)
	}

	var version uint32
	if err := binary.Read(tr, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("%w: reading version: %v", ErrCorruptTape, err)
	}
	if version != formatVersion {
		return nil, fmt.Errorf("%w: got version %d, supported version %d", ErrUnsupportedVersion, version, formatVersion)
	}

	var dtype uint8
	if err := binary.Read(tr, binary.LittleEndian, &dtype); err != nil {
		return nil, fmt.Errorf("%w: reading dtype: %v", ErrCorruptTape, err)
	}
	if dtype != dtypeOf[T]() {
		return nil, fmt.Errorf("%w: file has dtype %d, want %d", ErrDTypeMismatch, dtype, dtypeOf[T]())
	}

	var numInputs, output, numNodes uint32
	if err := binary.Read(tr, binary.LittleEndian, &numInputs); err != nil {
		return nil, fmt.Errorf("%w: reading input count: %v", ErrCorruptTape, err)
	}
	if err := binary.Read(tr, binary.LittleEndian, &output); err != nil {
		return nil, fmt.Errorf("%w: reading output index: %v", ErrCorruptTape, err)
	}
	if err := binary.Read(tr, binary.LittleEndian, &numNodes); err != nil {
		return nil, fmt.Errorf("%w: reading node count: %v", ErrCorruptTape, err)
	}
	if numNodes == 0 || numNodes > maxNodes {
		return nil, fmt.Errorf("%w: node count %d out of range", ErrCorruptTape, numNodes)
	}
	if numInputs == 0 || numInputs > numNodes {
		return nil, fmt.Errorf("%w: input count %d out of range for %d nodes", ErrCorruptTape, numInputs, numNodes)
	}
	if output >= numNodes {
		return nil, fmt.Errorf("%w: output index %d out of range for %d nodes", ErrCorruptTape, output, numNodes)
	}

	nodes := make([]node[T], numNodes)
	for i := range nodes {
		var rec nodeRecord
		if err := binary.Read(tr, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("%w: reading node %d: %v", ErrCorruptTape, i, err)
		}
		n, err := nodeFromRecord[T](rec, i, int(numInputs))
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}

	var computed [checksumSize]byte
	copy(computed[:], h.Sum(nil))
	var stored [checksumSize]byte
	if _, err := io.ReadFull(r, stored[:]); err != nil {
		return nil, fmt.Errorf("%w: reading checksum: %v", ErrCorruptTape, err)
	}
	if computed != stored {
		return nil, ErrChecksumMismatch
	}

	return &Tape[T]{nodes: nodes, numInputs: int(numInputs), output: int(output)}, nil
}

// nodeFromRecord rebuilds one node, rejecting codes outside the
// supported set and operand indices that do not strictly precede the
// node.
func nodeFromRecord[T fmath.Float](rec nodeRecord, idx, numInputs int) (node[T], error) {
	code := ops.Code(rec.Code)
	n := node[T]{code: code, a: int(rec.A), b: -1, aux: rec.Aux, val: T(rec.Val)}
	switch code {
	case ops.Input:
		if n.a < 0 || n.a >= numInputs {
			return node[T]{}, fmt.Errorf("%w: node %d reads input slot %d of %d", ErrCorruptTape, idx, n.a, numInputs)
		}
	case ops.Const:
		n.a = -1
	default:
		rule, ok := ops.For[T](code, rec.Aux)
		if !ok {
			return node[T]{}, fmt.Errorf("%w: %v in node %d", ErrUnsupportedOp, code, idx)
		}
		n.rule = rule
		if n.a < 0 || n.a >= idx {
			return node[T]{}, fmt.Errorf("%w: node %d references operand %d", ErrCorruptTape, idx, n.a)
		}
		if code.Arity() == 2 {
			n.b = int(rec.B)
			if n.b < 0 || n.b >= idx {
				return node[T]{}, fmt.Errorf("%w: node %d references operand %d", ErrCorruptTape, idx, n.b)
			}
		}
	}
	return n, nil
}
