package trace

import (
	"github.com/wavetap/wavetap/al"
	"github.com/wavetap/wavetap/wire"
)

// GenBuffers records allocating buffer names.
type GenBuffers struct {
	Names []uint32
}

func (*GenBuffers) Tag() Tag { return TagGenBuffers }

func (e *GenBuffers) EncodeTo(w *wire.Writer) {
	encU32s(w, e.Names)
}

func (e *GenBuffers) DecodeFrom(r *wire.Reader) {
	e.Names = decU32s(r, "buffer names")
}

// DeleteBuffers records releasing buffer names.
type DeleteBuffers struct {
	Names []uint32
}

func (*DeleteBuffers) Tag() Tag { return TagDeleteBuffers }

func (e *DeleteBuffers) EncodeTo(w *wire.Writer) {
	encU32s(w, e.Names)
}

func (e *DeleteBuffers) DecodeFrom(r *wire.Reader) {
	e.Names = decU32s(r, "buffer names")
}

// IsBuffer records a buffer name validity check.
type IsBuffer struct {
	Name   uint32
	Result bool
}

func (*IsBuffer) Tag() Tag { return TagIsBuffer }

func (e *IsBuffer) EncodeTo(w *wire.Writer) {
	w.U32(e.Name)
	w.Bool(e.Result)
}

func (e *IsBuffer) DecodeFrom(r *wire.Reader) {
	e.Name = r.U32()
	e.Result = r.Bool()
}

// BufferData records uploading sample data, payload included.
type BufferData struct {
	Buffer    uint32
	Format    al.Enum
	Frequency int32
	Data      []byte
}

func (*BufferData) Tag() Tag { return TagBufferData }

func (e *BufferData) EncodeTo(w *wire.Writer) {
	w.U32(e.Buffer)
	w.U32(uint32(e.Format))
	w.I32(e.Frequency)
	w.Blob(e.Data)
}

func (e *BufferData) DecodeFrom(r *wire.Reader) {
	e.Buffer = r.U32()
	e.Format = al.Enum(r.U32())
	e.Frequency = r.I32()
	e.Data = r.Blob()
}

// Bufferi records a scalar integer buffer property set.
type Bufferi struct {
	Buffer uint32
	Param  al.Enum
	Value  int32
}

func (*Bufferi) Tag() Tag { return TagBufferi }

func (e *Bufferi) EncodeTo(w *wire.Writer) {
	w.U32(e.Buffer)
	w.U32(uint32(e.Param))
	w.I32(e.Value)
}

func (e *Bufferi) DecodeFrom(r *wire.Reader) {
	e.Buffer = r.U32()
	e.Param = al.Enum(r.U32())
	e.Value = r.I32()
}

// GetBufferi records a scalar integer buffer property query.
type GetBufferi struct {
	Buffer uint32
	Param  al.Enum
	Result int32
}

func (*GetBufferi) Tag() Tag { return TagGetBufferi }

func (e *GetBufferi) EncodeTo(w *wire.Writer) {
	w.U32(e.Buffer)
	w.U32(uint32(e.Param))
	w.I32(e.Result)
}

func (e *GetBufferi) DecodeFrom(r *wire.Reader) {
	e.Buffer = r.U32()
	e.Param = al.Enum(r.U32())
	e.Result = r.I32()
}

// BufferLabel attaches a debug label to a buffer. A nil label clears it.
type BufferLabel struct {
	Buffer uint32
	Label  *string
}

func (*BufferLabel) Tag() Tag { return TagBufferLabel }

func (e *BufferLabel) EncodeTo(w *wire.Writer) {
	w.U32(e.Buffer)
	w.String(e.Label)
}

func (e *BufferLabel) DecodeFrom(r *wire.Reader) {
	e.Buffer = r.U32()
	e.Label = r.String()
}
