package trace

import (
	"github.com/wavetap/wavetap/al"
	"github.com/wavetap/wavetap/wire"
)

// ErrorTriggered reports that a traced call newly latched an error on
// the current context.
type ErrorTriggered struct {
	Err al.Enum
}

func (*ErrorTriggered) Tag() Tag { return TagErrorTriggered }

func (e *ErrorTriggered) EncodeTo(w *wire.Writer) {
	w.U32(uint32(e.Err))
}

func (e *ErrorTriggered) DecodeFrom(r *wire.Reader) {
	e.Err = al.Enum(r.U32())
}

// DeviceErrorTriggered reports a newly latched device-plane error.
type DeviceErrorTriggered struct {
	Device al.DeviceID
	Err    al.Enum
}

func (*DeviceErrorTriggered) Tag() Tag { return TagDeviceErrorTriggered }

func (e *DeviceErrorTriggered) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Device))
	w.U32(uint32(e.Err))
}

func (e *DeviceErrorTriggered) DecodeFrom(r *wire.Reader) {
	e.Device = al.DeviceID(r.Handle())
	e.Err = al.Enum(r.U32())
}

// DeviceStateBool reports a boolean device property drifting to a new
// value.
type DeviceStateBool struct {
	Device al.DeviceID
	Param  al.Enum
	Value  bool
}

func (*DeviceStateBool) Tag() Tag { return TagDeviceStateBool }

func (e *DeviceStateBool) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Device))
	w.U32(uint32(e.Param))
	w.Bool(e.Value)
}

func (e *DeviceStateBool) DecodeFrom(r *wire.Reader) {
	e.Device = al.DeviceID(r.Handle())
	e.Param = al.Enum(r.U32())
	e.Value = r.Bool()
}

// DeviceStateInt reports an integer device property drifting to a new
// value.
type DeviceStateInt struct {
	Device al.DeviceID
	Param  al.Enum
	Value  int32
}

func (*DeviceStateInt) Tag() Tag { return TagDeviceStateInt }

func (e *DeviceStateInt) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Device))
	w.U32(uint32(e.Param))
	w.I32(e.Value)
}

func (e *DeviceStateInt) DecodeFrom(r *wire.Reader) {
	e.Device = al.DeviceID(r.Handle())
	e.Param = al.Enum(r.U32())
	e.Value = r.I32()
}

// ContextStateEnum reports an enum context property change.
type ContextStateEnum struct {
	Ctx   al.ContextID
	Param al.Enum
	Value al.Enum
}

func (*ContextStateEnum) Tag() Tag { return TagContextStateEnum }

func (e *ContextStateEnum) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Ctx))
	w.U32(uint32(e.Param))
	w.U32(uint32(e.Value))
}

func (e *ContextStateEnum) DecodeFrom(r *wire.Reader) {
	e.Ctx = al.ContextID(r.Handle())
	e.Param = al.Enum(r.U32())
	e.Value = al.Enum(r.U32())
}

// ContextStateFloat reports a float context property change.
type ContextStateFloat struct {
	Ctx   al.ContextID
	Param al.Enum
	Value float32
}

func (*ContextStateFloat) Tag() Tag { return TagContextStateFloat }

func (e *ContextStateFloat) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Ctx))
	w.U32(uint32(e.Param))
	w.F32(e.Value)
}

func (e *ContextStateFloat) DecodeFrom(r *wire.Reader) {
	e.Ctx = al.ContextID(r.Handle())
	e.Param = al.Enum(r.U32())
	e.Value = r.F32()
}

// ContextStateString reports a string context property change, seen
// once per context when its static strings are first observed.
type ContextStateString struct {
	Ctx   al.ContextID
	Param al.Enum
	Value *string
}

func (*ContextStateString) Tag() Tag { return TagContextStateString }

func (e *ContextStateString) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Ctx))
	w.U32(uint32(e.Param))
	w.String(e.Value)
}

func (e *ContextStateString) DecodeFrom(r *wire.Reader) {
	e.Ctx = al.ContextID(r.Handle())
	e.Param = al.Enum(r.U32())
	e.Value = r.String()
}

// ListenerStateFloatv reports listener vector state drifting to a new
// value.
type ListenerStateFloatv struct {
	Ctx    al.ContextID
	Param  al.Enum
	Values []float32
}

func (*ListenerStateFloatv) Tag() Tag { return TagListenerStateFloatv }

func (e *ListenerStateFloatv) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Ctx))
	w.U32(uint32(e.Param))
	encF32s(w, e.Values)
}

func (e *ListenerStateFloatv) DecodeFrom(r *wire.Reader) {
	e.Ctx = al.ContextID(r.Handle())
	e.Param = al.Enum(r.U32())
	e.Values = decF32s(r, "listener floats")
}

// SourceStateBool reports a boolean source property change.
type SourceStateBool struct {
	Source uint32
	Param  al.Enum
	Value  bool
}

func (*SourceStateBool) Tag() Tag { return TagSourceStateBool }

func (e *SourceStateBool) EncodeTo(w *wire.Writer) {
	w.U32(e.Source)
	w.U32(uint32(e.Param))
	w.Bool(e.Value)
}

func (e *SourceStateBool) DecodeFrom(r *wire.Reader) {
	e.Source = r.U32()
	e.Param = al.Enum(r.U32())
	e.Value = r.Bool()
}

// SourceStateEnum reports an enum source property change, most often
// the playback state.
type SourceStateEnum struct {
	Source uint32
	Param  al.Enum
	Value  al.Enum
}

func (*SourceStateEnum) Tag() Tag { return TagSourceStateEnum }

func (e *SourceStateEnum) EncodeTo(w *wire.Writer) {
	w.U32(e.Source)
	w.U32(uint32(e.Param))
	w.U32(uint32(e.Value))
}

func (e *SourceStateEnum) DecodeFrom(r *wire.Reader) {
	e.Source = r.U32()
	e.Param = al.Enum(r.U32())
	e.Value = al.Enum(r.U32())
}

// SourceStateInt reports an integer source property change.
type SourceStateInt struct {
	Source uint32
	Param  al.Enum
	Value  int32
}

func (*SourceStateInt) Tag() Tag { return TagSourceStateInt }

func (e *SourceStateInt) EncodeTo(w *wire.Writer) {
	w.U32(e.Source)
	w.U32(uint32(e.Param))
	w.I32(e.Value)
}

func (e *SourceStateInt) DecodeFrom(r *wire.Reader) {
	e.Source = r.U32()
	e.Param = al.Enum(r.U32())
	e.Value = r.I32()
}

// SourceStateUint reports an unsigned source property change, used for
// the attached buffer name.
type SourceStateUint struct {
	Source uint32
	Param  al.Enum
	Value  uint32
}

func (*SourceStateUint) Tag() Tag { return TagSourceStateUint }

func (e *SourceStateUint) EncodeTo(w *wire.Writer) {
	w.U32(e.Source)
	w.U32(uint32(e.Param))
	w.U32(e.Value)
}

func (e *SourceStateUint) DecodeFrom(r *wire.Reader) {
	e.Source = r.U32()
	e.Param = al.Enum(r.U32())
	e.Value = r.U32()
}

// SourceStateFloat reports a float source property change.
type SourceStateFloat struct {
	Source uint32
	Param  al.Enum
	Value  float32
}

func (*SourceStateFloat) Tag() Tag { return TagSourceStateFloat }

func (e *SourceStateFloat) EncodeTo(w *wire.Writer) {
	w.U32(e.Source)
	w.U32(uint32(e.Param))
	w.F32(e.Value)
}

func (e *SourceStateFloat) DecodeFrom(r *wire.Reader) {
	e.Source = r.U32()
	e.Param = al.Enum(r.U32())
	e.Value = r.F32()
}

// SourceStateFloat3 reports a three-component source property change.
type SourceStateFloat3 struct {
	Source uint32
	Param  al.Enum
	Values [3]float32
}

func (*SourceStateFloat3) Tag() Tag { return TagSourceStateFloat3 }

func (e *SourceStateFloat3) EncodeTo(w *wire.Writer) {
	w.U32(e.Source)
	w.U32(uint32(e.Param))
	for _, v := range e.Values {
		w.F32(v)
	}
}

func (e *SourceStateFloat3) DecodeFrom(r *wire.Reader) {
	e.Source = r.U32()
	e.Param = al.Enum(r.U32())
	for i := range e.Values {
		e.Values[i] = r.F32()
	}
}

// BufferStateInt reports an integer buffer property change.
type BufferStateInt struct {
	Buffer uint32
	Param  al.Enum
	Value  int32
}

func (*BufferStateInt) Tag() Tag { return TagBufferStateInt }

func (e *BufferStateInt) EncodeTo(w *wire.Writer) {
	w.U32(e.Buffer)
	w.U32(uint32(e.Param))
	w.I32(e.Value)
}

func (e *BufferStateInt) DecodeFrom(r *wire.Reader) {
	e.Buffer = r.U32()
	e.Param = al.Enum(r.U32())
	e.Value = r.I32()
}
