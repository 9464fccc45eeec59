package wire

import (
	"encoding/binary"
	"io"
	"math"

	traceerr "github.com/wavetap/wavetap/errors"
)

// maxBlobLen bounds a single string/blob payload. A length above this is
// treated as malformed data rather than attempted as an allocation.
const maxBlobLen = 1 << 30

// Reader decodes trace primitives from an underlying stream in fixed
// little-endian byte order, tracking the byte offset for diagnostics.
// Like Writer, the first failure latches: subsequent reads return zero
// values and Err reports what went wrong and where.
type Reader struct {
	r   io.Reader
	off int64
	err error
	buf [8]byte
}

// NewReader creates a Reader consuming from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Offset returns the number of bytes successfully consumed.
func (r *Reader) Offset() int64 {
	return r.off
}

// Err returns the latched read failure, or nil.
func (r *Reader) Err() error {
	return r.err
}

// Fail latches err as the reader's failure if none is set yet. Decoders
// above the primitive layer use it to reject structurally invalid data.
func (r *Reader) Fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *Reader) read(p []byte) bool {
	if r.err != nil {
		return false
	}
	n, err := io.ReadFull(r.r, p)
	r.off += int64(n)
	if err != nil {
		r.err = traceerr.Truncated(r.off, err)
		return false
	}
	return true
}

// U32 reads a fixed 4-byte little-endian uint32.
func (r *Reader) U32() uint32 {
	if !r.read(r.buf[:4]) {
		return 0
	}
	return binary.LittleEndian.Uint32(r.buf[:4])
}

// U64 reads a fixed 8-byte little-endian uint64.
func (r *Reader) U64() uint64 {
	if !r.read(r.buf[:8]) {
		return 0
	}
	return binary.LittleEndian.Uint64(r.buf[:8])
}

// I32 reads an int32 by bit pattern.
func (r *Reader) I32() int32 {
	return int32(r.U32())
}

// I64 reads an int64 by bit pattern.
func (r *Reader) I64() int64 {
	return int64(r.U64())
}

// F32 reads a float32 by bit pattern.
func (r *Reader) F32() float32 {
	return math.Float32frombits(r.U32())
}

// F64 reads a float64 by bit pattern.
func (r *Reader) F64() float64 {
	return math.Float64frombits(r.U64())
}

// Bool reads a u32-encoded boolean. Any nonzero value is true.
func (r *Reader) Bool() bool {
	return r.U32() != 0
}

// Handle reads an opaque 64-bit identifier. The value is never
// dereferenced; it round-trips exactly as written.
func (r *Reader) Handle() uint64 {
	return r.U64()
}

// String reads a length-prefixed string. The absent sentinel decodes to
// nil; length zero decodes to a pointer to "".
func (r *Reader) String() *string {
	b := r.Blob()
	if b == nil {
		return nil
	}
	s := string(b)
	return &s
}

// Blob reads a length-prefixed byte slice. The absent sentinel decodes
// to nil; length zero decodes to an empty non-nil slice.
func (r *Reader) Blob() []byte {
	length := r.U64()
	if r.err != nil {
		return nil
	}
	if length == AbsentLen {
		return nil
	}
	if length > maxBlobLen {
		r.err = traceerr.InvalidData(traceerr.PhaseDecode, r.off, "blob length out of range")
		return nil
	}
	b := make([]byte, length)
	if !r.read(b) {
		return nil
	}
	return b
}
