package trace

import (
	"github.com/wavetap/wavetap/al"
	"github.com/wavetap/wavetap/wire"
)

// GenSources records allocating source names.
type GenSources struct {
	Names []uint32
}

func (*GenSources) Tag() Tag { return TagGenSources }

func (e *GenSources) EncodeTo(w *wire.Writer) {
	encU32s(w, e.Names)
}

func (e *GenSources) DecodeFrom(r *wire.Reader) {
	e.Names = decU32s(r, "source names")
}

// DeleteSources records releasing source names.
type DeleteSources struct {
	Names []uint32
}

func (*DeleteSources) Tag() Tag { return TagDeleteSources }

func (e *DeleteSources) EncodeTo(w *wire.Writer) {
	encU32s(w, e.Names)
}

func (e *DeleteSources) DecodeFrom(r *wire.Reader) {
	e.Names = decU32s(r, "source names")
}

// IsSource records a source name validity check.
type IsSource struct {
	Name   uint32
	Result bool
}

func (*IsSource) Tag() Tag { return TagIsSource }

func (e *IsSource) EncodeTo(w *wire.Writer) {
	w.U32(e.Name)
	w.Bool(e.Result)
}

func (e *IsSource) DecodeFrom(r *wire.Reader) {
	e.Name = r.U32()
	e.Result = r.Bool()
}

// Sourcef records a scalar float source property set.
type Sourcef struct {
	Source uint32
	Param  al.Enum
	Value  float32
}

func (*Sourcef) Tag() Tag { return TagSourcef }

func (e *Sourcef) EncodeTo(w *wire.Writer) {
	w.U32(e.Source)
	w.U32(uint32(e.Param))
	w.F32(e.Value)
}

func (e *Sourcef) DecodeFrom(r *wire.Reader) {
	e.Source = r.U32()
	e.Param = al.Enum(r.U32())
	e.Value = r.F32()
}

// Source3f records a three-component float source property set.
type Source3f struct {
	Source     uint32
	Param      al.Enum
	V1, V2, V3 float32
}

func (*Source3f) Tag() Tag { return TagSource3f }

func (e *Source3f) EncodeTo(w *wire.Writer) {
	w.U32(e.Source)
	w.U32(uint32(e.Param))
	w.F32(e.V1)
	w.F32(e.V2)
	w.F32(e.V3)
}

func (e *Source3f) DecodeFrom(r *wire.Reader) {
	e.Source = r.U32()
	e.Param = al.Enum(r.U32())
	e.V1 = r.F32()
	e.V2 = r.F32()
	e.V3 = r.F32()
}

// Sourcefv records a vector float source property set.
type Sourcefv struct {
	Source uint32
	Param  al.Enum
	Values []float32
}

func (*Sourcefv) Tag() Tag { return TagSourcefv }

func (e *Sourcefv) EncodeTo(w *wire.Writer) {
	w.U32(e.Source)
	w.U32(uint32(e.Param))
	encF32s(w, e.Values)
}

func (e *Sourcefv) DecodeFrom(r *wire.Reader) {
	e.Source = r.U32()
	e.Param = al.Enum(r.U32())
	e.Values = decF32s(r, "source floats")
}

// Sourcei records a scalar integer source property set.
type Sourcei struct {
	Source uint32
	Param  al.Enum
	Value  int32
}

func (*Sourcei) Tag() Tag { return TagSourcei }

func (e *Sourcei) EncodeTo(w *wire.Writer) {
	w.U32(e.Source)
	w.U32(uint32(e.Param))
	w.I32(e.Value)
}

func (e *Sourcei) DecodeFrom(r *wire.Reader) {
	e.Source = r.U32()
	e.Param = al.Enum(r.U32())
	e.Value = r.I32()
}

// Source3i records a three-component integer source property set.
type Source3i struct {
	Source     uint32
	Param      al.Enum
	V1, V2, V3 int32
}

func (*Source3i) Tag() Tag { return TagSource3i }

func (e *Source3i) EncodeTo(w *wire.Writer) {
	w.U32(e.Source)
	w.U32(uint32(e.Param))
	w.I32(e.V1)
	w.I32(e.V2)
	w.I32(e.V3)
}

func (e *Source3i) DecodeFrom(r *wire.Reader) {
	e.Source = r.U32()
	e.Param = al.Enum(r.U32())
	e.V1 = r.I32()
	e.V2 = r.I32()
	e.V3 = r.I32()
}

// Sourceiv records a vector integer source property set.
type Sourceiv struct {
	Source uint32
	Param  al.Enum
	Values []int32
}

func (*Sourceiv) Tag() Tag { return TagSourceiv }

func (e *Sourceiv) EncodeTo(w *wire.Writer) {
	w.U32(e.Source)
	w.U32(uint32(e.Param))
	encI32s(w, e.Values)
}

func (e *Sourceiv) DecodeFrom(r *wire.Reader) {
	e.Source = r.U32()
	e.Param = al.Enum(r.U32())
	e.Values = decI32s(r, "source integers")
}

// GetSourcei records a scalar integer source property query.
type GetSourcei struct {
	Source uint32
	Param  al.Enum
	Result int32
}

func (*GetSourcei) Tag() Tag { return TagGetSourcei }

func (e *GetSourcei) EncodeTo(w *wire.Writer) {
	w.U32(e.Source)
	w.U32(uint32(e.Param))
	w.I32(e.Result)
}

func (e *GetSourcei) DecodeFrom(r *wire.Reader) {
	e.Source = r.U32()
	e.Param = al.Enum(r.U32())
	e.Result = r.I32()
}

// GetSourcefv records a vector float source property query.
type GetSourcefv struct {
	Source uint32
	Param  al.Enum
	Values []float32
}

func (*GetSourcefv) Tag() Tag { return TagGetSourcefv }

func (e *GetSourcefv) EncodeTo(w *wire.Writer) {
	w.U32(e.Source)
	w.U32(uint32(e.Param))
	encF32s(w, e.Values)
}

func (e *GetSourcefv) DecodeFrom(r *wire.Reader) {
	e.Source = r.U32()
	e.Param = al.Enum(r.U32())
	e.Values = decF32s(r, "source floats")
}

// SourcePlay records starting playback on one source.
type SourcePlay struct {
	Source uint32
}

func (*SourcePlay) Tag() Tag { return TagSourcePlay }

func (e *SourcePlay) EncodeTo(w *wire.Writer) {
	w.U32(e.Source)
}

func (e *SourcePlay) DecodeFrom(r *wire.Reader) {
	e.Source = r.U32()
}

// SourcePlayv records starting playback on a batch of sources.
type SourcePlayv struct {
	Sources []uint32
}

func (*SourcePlayv) Tag() Tag { return TagSourcePlayv }

func (e *SourcePlayv) EncodeTo(w *wire.Writer) {
	encU32s(w, e.Sources)
}

func (e *SourcePlayv) DecodeFrom(r *wire.Reader) {
	e.Sources = decU32s(r, "source names")
}

// SourcePause records pausing a source.
type SourcePause struct {
	Source uint32
}

func (*SourcePause) Tag() Tag { return TagSourcePause }

func (e *SourcePause) EncodeTo(w *wire.Writer) {
	w.U32(e.Source)
}

func (e *SourcePause) DecodeFrom(r *wire.Reader) {
	e.Source = r.U32()
}

// SourceStop records stopping a source.
type SourceStop struct {
	Source uint32
}

func (*SourceStop) Tag() Tag { return TagSourceStop }

func (e *SourceStop) EncodeTo(w *wire.Writer) {
	w.U32(e.Source)
}

func (e *SourceStop) DecodeFrom(r *wire.Reader) {
	e.Source = r.U32()
}

// SourceRewind records rewinding a source to its initial state.
type SourceRewind struct {
	Source uint32
}

func (*SourceRewind) Tag() Tag { return TagSourceRewind }

func (e *SourceRewind) EncodeTo(w *wire.Writer) {
	w.U32(e.Source)
}

func (e *SourceRewind) DecodeFrom(r *wire.Reader) {
	e.Source = r.U32()
}

// SourceQueueBuffers records appending buffers to a source's queue.
type SourceQueueBuffers struct {
	Source  uint32
	Buffers []uint32
}

func (*SourceQueueBuffers) Tag() Tag { return TagSourceQueueBuffers }

func (e *SourceQueueBuffers) EncodeTo(w *wire.Writer) {
	w.U32(e.Source)
	encU32s(w, e.Buffers)
}

func (e *SourceQueueBuffers) DecodeFrom(r *wire.Reader) {
	e.Source = r.U32()
	e.Buffers = decU32s(r, "buffer names")
}

// SourceUnqueueBuffers records removing processed buffers from a
// source's queue. Buffers holds the names the driver handed back.
type SourceUnqueueBuffers struct {
	Source  uint32
	Buffers []uint32
}

func (*SourceUnqueueBuffers) Tag() Tag { return TagSourceUnqueueBuffers }

func (e *SourceUnqueueBuffers) EncodeTo(w *wire.Writer) {
	w.U32(e.Source)
	encU32s(w, e.Buffers)
}

func (e *SourceUnqueueBuffers) DecodeFrom(r *wire.Reader) {
	e.Source = r.U32()
	e.Buffers = decU32s(r, "buffer names")
}

// SourceLabel attaches a debug label to a source. A nil label clears it.
type SourceLabel struct {
	Source uint32
	Label  *string
}

func (*SourceLabel) Tag() Tag { return TagSourceLabel }

func (e *SourceLabel) EncodeTo(w *wire.Writer) {
	w.U32(e.Source)
	w.String(e.Label)
}

func (e *SourceLabel) DecodeFrom(r *wire.Reader) {
	e.Source = r.U32()
	e.Label = r.String()
}
