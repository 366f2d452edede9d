package ad

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/LeilaGhaffari/adolc-primer/internal/fmath"
)

// Tape file layout, little-endian:
//
//	magic "ADTP" | version u32 | dtype u8 | inputs u32 | output u32 |
//	node count u32 | node records | SHA-256 of everything before it
//
// Each node record is: code u8 | a i32 | b i32 | aux f64 | val f64.
// Node values are widened to float64 on disk regardless of the tape's
// scalar type; float32 widens exactly, so round-trips are lossless.
const (
	tapeMagic     = "ADTP"
	formatVersion = 1

	dtypeFloat32 = 0
	dtypeFloat64 = 1

	checksumSize = sha256.Size

	// maxNodes bounds the decode allocation for untrusted files.
	maxNodes = 1 << 24
)

// nodeRecord is the on-disk form of one node.
type nodeRecord struct {
	Code uint8
	A, B int32
	Aux  float64
	Val  float64
}

func dtypeOf[T fmath.Float]() uint8 {
	var zero T
	switch any(zero).(type) {
	case float32:
		return dtypeFloat32
	default:
		return dtypeFloat64
	}
}

// countWriter tracks how many bytes reached the underlying writer.
type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// WriteTo serializes the tape, checksummed, in the format above. It
// implements io.WriterTo.
func (t *Tape[T]) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	h := sha256.New()
	mw := io.MultiWriter(cw, h)

	if _, err := mw.Write([]byte(tapeMagic)); err != nil {
		return cw.n, fmt.Errorf("failed to write magic bytes: %w", err)
	}
	if err := binary.Write(mw, binary.LittleEndian, uint32(formatVersion)); err != nil {
		return cw.n, fmt.Errorf("failed to write version: %w", err)
	}
	if err := binary.Write(mw, binary.LittleEndian, dtypeOf[T]()); err != nil {
		return cw.n, fmt.Errorf("failed to write dtype: %w", err)
	}
	if err := binary.Write(mw, binary.LittleEndian, uint32(t.numInputs)); err != nil {
		return cw.n, fmt.Errorf("failed to write input count: %w", err)
	}
	if err := binary.Write(mw, binary.LittleEndian, uint32(t.output)); err != nil {
		return cw.n, fmt.Errorf("failed to write output index: %w", err)
	}
	if err := binary.Write(mw, binary.LittleEndian, uint32(len(t.nodes))); err != nil {
		return cw.n, fmt.Errorf("failed to write node count: %w", err)
	}
	for i := range t.nodes {
		n := &t.nodes[i]
		rec := nodeRecord{
			Code: uint8(n.code),
			A:    int32(n.a),
			B:    int32(n.b),
			Aux:  n.aux,
			Val:  float64(n.val),
		}
		if err := binary.Write(mw, binary.LittleEndian, rec); err != nil {
			return cw.n, fmt.Errorf("failed to write node %d: %w", i, err)
		}
	}
	if _, err := cw.Write(h.Sum(nil)); err != nil {
		return cw.n, fmt.Errorf("failed to write checksum: %w", err)
	}
	return cw.n, nil
}
