package trace

import (
	traceerr "github.com/wavetap/wavetap/errors"
	"github.com/wavetap/wavetap/symbols"
	"github.com/wavetap/wavetap/wire"
)

// Stream control records sit outside the envelope scheme: the file
// header, symbol-table deltas, and the end-of-stream marker. Both the
// recorder and the playback session share these helpers so neither can
// drift from the other.

// WriteHeader writes the file magic and format version.
func WriteHeader(w *wire.Writer) {
	w.U32(Magic)
	w.U32(FormatVersion)
}

// ReadHeader validates the file magic and format version.
func ReadHeader(r *wire.Reader) error {
	magic := r.U32()
	if err := r.Err(); err != nil {
		return err
	}
	if magic != Magic {
		return traceerr.BadMagic(magic)
	}
	version := r.U32()
	if err := r.Err(); err != nil {
		return err
	}
	if version != FormatVersion {
		return traceerr.BadVersion(version)
	}
	return nil
}

// WriteNewSymbols emits a symbol-table delta. Deltas carry no envelope
// and precede the record whose stack introduced the addresses.
func WriteNewSymbols(w *wire.Writer, defs []symbols.Def) {
	w.U32(uint32(TagNewSymbols))
	w.U32(uint32(len(defs)))
	for _, d := range defs {
		w.U64(d.Addr)
		sym := d.Sym
		w.String(&sym)
	}
}

// ReadNewSymbols reads a symbol-table delta's payload, the tag having
// been consumed already.
func ReadNewSymbols(r *wire.Reader) []symbols.Def {
	n := r.U32()
	if r.Err() != nil {
		return nil
	}
	if n > maxVectorLen {
		r.Fail(errTooLong("symbol defs", n))
		return nil
	}
	defs := make([]symbols.Def, n)
	for i := range defs {
		defs[i].Addr = r.U64()
		s := r.String()
		if s != nil {
			defs[i].Sym = *s
		}
	}
	return defs
}

// WriteEOS emits the end-of-stream marker with the final timestamp.
func WriteEOS(w *wire.Writer, timestamp uint32) {
	w.U32(uint32(TagEOS))
	w.U32(timestamp)
}

// WriteEvent emits one enveloped record: tag, envelope, payload.
func WriteEvent(w *wire.Writer, env *Envelope, ev Event) {
	w.U32(uint32(ev.Tag()))
	env.EncodeTo(w)
	ev.EncodeTo(w)
}
