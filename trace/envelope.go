package trace

import (
	"github.com/wavetap/wavetap/wire"
)

// Envelope carries the per-event metadata written between an event's tag
// and its payload: capture timestamp, originating goroutine, and the call
// stack as raw program counters. Derived events reuse the envelope of the
// call that produced them with an empty stack.
type Envelope struct {
	Timestamp uint32   // milliseconds since the recorder started
	Thread    uint64   // goroutine id as captured
	Stack     []uint64 // program counters, innermost first
}

func (e *Envelope) EncodeTo(w *wire.Writer) {
	w.U32(e.Timestamp)
	w.U64(e.Thread)
	w.U32(uint32(len(e.Stack)))
	for _, pc := range e.Stack {
		w.U64(pc)
	}
}

func (e *Envelope) DecodeFrom(r *wire.Reader) {
	e.Timestamp = r.U32()
	e.Thread = r.U64()
	n := r.U32()
	if r.Err() != nil {
		return
	}
	if n > maxVectorLen {
		r.Fail(errTooLong("stack", n))
		return
	}
	e.Stack = make([]uint64, n)
	for i := range e.Stack {
		e.Stack[i] = r.U64()
	}
}
