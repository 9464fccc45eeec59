package wire

import (
	"encoding/binary"
	"io"
	"math"

	traceerr "github.com/wavetap/wavetap/errors"
)

// AbsentLen is the length sentinel marking a null string or blob,
// distinct from a present-but-empty value of length zero.
const AbsentLen = uint64(0xFFFFFFFFFFFFFFFF)

// Writer encodes trace primitives to an underlying stream in fixed
// little-endian byte order. The first write failure latches: all later
// writes become no-ops and Err reports the original failure. This keeps
// event encoders free of per-field error plumbing while guaranteeing no
// bytes are emitted after a short write.
type Writer struct {
	w   io.Writer
	off int64
	err error
	buf [8]byte
}

// NewWriter creates a Writer appending to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Offset returns the number of bytes successfully written.
func (w *Writer) Offset() int64 {
	return w.off
}

// Target returns the underlying stream, letting owners close it.
func (w *Writer) Target() io.Writer {
	return w.w
}

// Err returns the latched write failure, or nil.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) write(p []byte) {
	if w.err != nil {
		return
	}
	n, err := w.w.Write(p)
	w.off += int64(n)
	if err != nil {
		w.err = traceerr.IO(traceerr.PhaseRecord, w.off, err)
	} else if n != len(p) {
		w.err = traceerr.IO(traceerr.PhaseRecord, w.off, io.ErrShortWrite)
	}
}

// U32 writes a fixed 4-byte little-endian uint32.
func (w *Writer) U32(v uint32) {
	binary.LittleEndian.PutUint32(w.buf[:4], v)
	w.write(w.buf[:4])
}

// U64 writes a fixed 8-byte little-endian uint64.
func (w *Writer) U64(v uint64) {
	binary.LittleEndian.PutUint64(w.buf[:8], v)
	w.write(w.buf[:8])
}

// I32 writes an int32 bit-pattern-preserved as a u32.
func (w *Writer) I32(v int32) {
	w.U32(uint32(v))
}

// I64 writes an int64 bit-pattern-preserved as a u64.
func (w *Writer) I64(v int64) {
	w.U64(uint64(v))
}

// F32 writes a float32 by bit pattern, preserving NaN payloads and
// denormals exactly.
func (w *Writer) F32(v float32) {
	w.U32(math.Float32bits(v))
}

// F64 writes a float64 by bit pattern.
func (w *Writer) F64(v float64) {
	w.U64(math.Float64bits(v))
}

// Bool writes a boolean as a u32, 0 or 1.
func (w *Writer) Bool(v bool) {
	if v {
		w.U32(1)
	} else {
		w.U32(0)
	}
}

// Handle writes an opaque 64-bit identifier.
func (w *Writer) Handle(v uint64) {
	w.U64(v)
}

// String writes a length-prefixed string. nil encodes the absent
// sentinel; a pointer to "" encodes a present-but-empty string.
func (w *Writer) String(s *string) {
	if s == nil {
		w.U64(AbsentLen)
		return
	}
	w.U64(uint64(len(*s)))
	if len(*s) > 0 {
		w.write([]byte(*s))
	}
}

// Blob writes a length-prefixed byte slice. nil encodes the absent
// sentinel; an empty non-nil slice encodes present-but-empty.
func (w *Writer) Blob(b []byte) {
	if b == nil {
		w.U64(AbsentLen)
		return
	}
	w.U64(uint64(len(b)))
	if len(b) > 0 {
		w.write(b)
	}
}
