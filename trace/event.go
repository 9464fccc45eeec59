package trace

import (
	"fmt"

	traceerr "github.com/wavetap/wavetap/errors"
	"github.com/wavetap/wavetap/wire"
)

// Event is one decoded log record payload. Every event encodes and
// decodes its fields in the same order; the envelope and tag live
// outside the payload and are handled by the stream layer.
type Event interface {
	// Tag returns the wire tag this event is written under.
	Tag() Tag
	// EncodeTo appends the payload fields to w.
	EncodeTo(w *wire.Writer)
	// DecodeFrom reads the payload fields from r.
	DecodeFrom(r *wire.Reader)
}

// maxVectorLen bounds per-event element counts (stack frames, gen'd
// names, attribute lists). Counts above it are rejected as malformed.
const maxVectorLen = 1 << 24

// absentCount is the u32 count sentinel for a nil slice, mirroring the
// wire.AbsentLen convention for strings and blobs.
const absentCount = uint32(0xFFFFFFFF)

func errTooLong(what string, n uint32) error {
	return traceerr.InvalidData(traceerr.PhaseDecode, -1, fmt.Sprintf("%s count %d out of range", what, n))
}

func encCount(w *wire.Writer, n int, nilSlice bool) {
	if nilSlice {
		w.U32(absentCount)
		return
	}
	w.U32(uint32(n))
}

func decCount(r *wire.Reader, what string) (int, bool) {
	n := r.U32()
	if r.Err() != nil {
		return 0, false
	}
	if n == absentCount {
		return 0, false
	}
	if n > maxVectorLen {
		r.Fail(errTooLong(what, n))
		return 0, false
	}
	return int(n), true
}

func encU32s(w *wire.Writer, v []uint32) {
	encCount(w, len(v), v == nil)
	for _, x := range v {
		w.U32(x)
	}
}

func decU32s(r *wire.Reader, what string) []uint32 {
	n, ok := decCount(r, what)
	if !ok {
		return nil
	}
	v := make([]uint32, n)
	for i := range v {
		v[i] = r.U32()
	}
	return v
}

func encI32s(w *wire.Writer, v []int32) {
	encCount(w, len(v), v == nil)
	for _, x := range v {
		w.I32(x)
	}
}

func decI32s(r *wire.Reader, what string) []int32 {
	n, ok := decCount(r, what)
	if !ok {
		return nil
	}
	v := make([]int32, n)
	for i := range v {
		v[i] = r.I32()
	}
	return v
}

func encF32s(w *wire.Writer, v []float32) {
	encCount(w, len(v), v == nil)
	for _, x := range v {
		w.F32(x)
	}
}

func decF32s(r *wire.Reader, what string) []float32 {
	n, ok := decCount(r, what)
	if !ok {
		return nil
	}
	v := make([]float32, n)
	for i := range v {
		v[i] = r.F32()
	}
	return v
}
