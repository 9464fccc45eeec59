package trace

import (
	"github.com/wavetap/wavetap/al"
	"github.com/wavetap/wavetap/wire"
)

// OpenDevice records opening a playback device. On success the recorder
// snapshots the device's reported version, resolved specifier and
// extension list so playback can reproduce them without a live driver.
type OpenDevice struct {
	Name   *string
	Result al.DeviceID

	Major      int32
	Minor      int32
	Specifier  *string
	Extensions *string
}

func (*OpenDevice) Tag() Tag { return TagOpenDevice }

func (e *OpenDevice) EncodeTo(w *wire.Writer) {
	w.String(e.Name)
	w.Handle(uint64(e.Result))
	if e.Result != 0 {
		w.I32(e.Major)
		w.I32(e.Minor)
		w.String(e.Specifier)
		w.String(e.Extensions)
	}
}

func (e *OpenDevice) DecodeFrom(r *wire.Reader) {
	e.Name = r.String()
	e.Result = al.DeviceID(r.Handle())
	if e.Result != 0 {
		e.Major = r.I32()
		e.Minor = r.I32()
		e.Specifier = r.String()
		e.Extensions = r.String()
	}
}

// CloseDevice records closing a playback device.
type CloseDevice struct {
	Device al.DeviceID
	Result bool
}

func (*CloseDevice) Tag() Tag { return TagCloseDevice }

func (e *CloseDevice) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Device))
	w.Bool(e.Result)
}

func (e *CloseDevice) DecodeFrom(r *wire.Reader) {
	e.Device = al.DeviceID(r.Handle())
	e.Result = r.Bool()
}

// CaptureOpenDevice records opening a capture device, with the same
// success-only snapshot fields as OpenDevice.
type CaptureOpenDevice struct {
	Name       *string
	Frequency  uint32
	Format     al.Enum
	BufferSize int64
	Result     al.DeviceID

	Major      int32
	Minor      int32
	Specifier  *string
	Extensions *string
}

func (*CaptureOpenDevice) Tag() Tag { return TagCaptureOpenDevice }

func (e *CaptureOpenDevice) EncodeTo(w *wire.Writer) {
	w.String(e.Name)
	w.U32(e.Frequency)
	w.U32(uint32(e.Format))
	w.I64(e.BufferSize)
	w.Handle(uint64(e.Result))
	if e.Result != 0 {
		w.I32(e.Major)
		w.I32(e.Minor)
		w.String(e.Specifier)
		w.String(e.Extensions)
	}
}

func (e *CaptureOpenDevice) DecodeFrom(r *wire.Reader) {
	e.Name = r.String()
	e.Frequency = r.U32()
	e.Format = al.Enum(r.U32())
	e.BufferSize = r.I64()
	e.Result = al.DeviceID(r.Handle())
	if e.Result != 0 {
		e.Major = r.I32()
		e.Minor = r.I32()
		e.Specifier = r.String()
		e.Extensions = r.String()
	}
}

// CaptureCloseDevice records closing a capture device.
type CaptureCloseDevice struct {
	Device al.DeviceID
	Result bool
}

func (*CaptureCloseDevice) Tag() Tag { return TagCaptureCloseDevice }

func (e *CaptureCloseDevice) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Device))
	w.Bool(e.Result)
}

func (e *CaptureCloseDevice) DecodeFrom(r *wire.Reader) {
	e.Device = al.DeviceID(r.Handle())
	e.Result = r.Bool()
}

// CreateContext records context creation. Attrs is nil when the caller
// passed no attribute list.
type CreateContext struct {
	Device al.DeviceID
	Attrs  []int32
	Result al.ContextID
}

func (*CreateContext) Tag() Tag { return TagCreateContext }

func (e *CreateContext) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Device))
	encI32s(w, e.Attrs)
	w.Handle(uint64(e.Result))
}

func (e *CreateContext) DecodeFrom(r *wire.Reader) {
	e.Device = al.DeviceID(r.Handle())
	e.Attrs = decI32s(r, "context attrs")
	e.Result = al.ContextID(r.Handle())
}

// MakeContextCurrent records a context switch. Ctx zero means detach.
type MakeContextCurrent struct {
	Ctx    al.ContextID
	Result bool
}

func (*MakeContextCurrent) Tag() Tag { return TagMakeContextCurrent }

func (e *MakeContextCurrent) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Ctx))
	w.Bool(e.Result)
}

func (e *MakeContextCurrent) DecodeFrom(r *wire.Reader) {
	e.Ctx = al.ContextID(r.Handle())
	e.Result = r.Bool()
}

// ProcessContext records resuming context processing.
type ProcessContext struct {
	Ctx al.ContextID
}

func (*ProcessContext) Tag() Tag { return TagProcessContext }

func (e *ProcessContext) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Ctx))
}

func (e *ProcessContext) DecodeFrom(r *wire.Reader) {
	e.Ctx = al.ContextID(r.Handle())
}

// SuspendContext records suspending context processing.
type SuspendContext struct {
	Ctx al.ContextID
}

func (*SuspendContext) Tag() Tag { return TagSuspendContext }

func (e *SuspendContext) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Ctx))
}

func (e *SuspendContext) DecodeFrom(r *wire.Reader) {
	e.Ctx = al.ContextID(r.Handle())
}

// DestroyContext records context destruction.
type DestroyContext struct {
	Ctx al.ContextID
}

func (*DestroyContext) Tag() Tag { return TagDestroyContext }

func (e *DestroyContext) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Ctx))
}

func (e *DestroyContext) DecodeFrom(r *wire.Reader) {
	e.Ctx = al.ContextID(r.Handle())
}

// GetCurrentContext records querying the current context.
type GetCurrentContext struct {
	Result al.ContextID
}

func (*GetCurrentContext) Tag() Tag { return TagGetCurrentContext }

func (e *GetCurrentContext) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Result))
}

func (e *GetCurrentContext) DecodeFrom(r *wire.Reader) {
	e.Result = al.ContextID(r.Handle())
}

// GetContextsDevice records resolving a context back to its device.
type GetContextsDevice struct {
	Ctx    al.ContextID
	Result al.DeviceID
}

func (*GetContextsDevice) Tag() Tag { return TagGetContextsDevice }

func (e *GetContextsDevice) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Ctx))
	w.Handle(uint64(e.Result))
}

func (e *GetContextsDevice) DecodeFrom(r *wire.Reader) {
	e.Ctx = al.ContextID(r.Handle())
	e.Result = al.DeviceID(r.Handle())
}

// DeviceGetError records draining a device's latched error.
type DeviceGetError struct {
	Device al.DeviceID
	Result al.Enum
}

func (*DeviceGetError) Tag() Tag { return TagDeviceGetError }

func (e *DeviceGetError) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Device))
	w.U32(uint32(e.Result))
}

func (e *DeviceGetError) DecodeFrom(r *wire.Reader) {
	e.Device = al.DeviceID(r.Handle())
	e.Result = al.Enum(r.U32())
}

// DeviceGetIntegerv records an integer device query, including the
// values the driver returned.
type DeviceGetIntegerv struct {
	Device al.DeviceID
	Param  al.Enum
	Values []int32
}

func (*DeviceGetIntegerv) Tag() Tag { return TagDeviceGetIntegerv }

func (e *DeviceGetIntegerv) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Device))
	w.U32(uint32(e.Param))
	encI32s(w, e.Values)
}

func (e *DeviceGetIntegerv) DecodeFrom(r *wire.Reader) {
	e.Device = al.DeviceID(r.Handle())
	e.Param = al.Enum(r.U32())
	e.Values = decI32s(r, "device integers")
}

// DeviceGetString records a device string query.
type DeviceGetString struct {
	Device al.DeviceID
	Param  al.Enum
	Result *string
}

func (*DeviceGetString) Tag() Tag { return TagDeviceGetString }

func (e *DeviceGetString) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Device))
	w.U32(uint32(e.Param))
	w.String(e.Result)
}

func (e *DeviceGetString) DecodeFrom(r *wire.Reader) {
	e.Device = al.DeviceID(r.Handle())
	e.Param = al.Enum(r.U32())
	e.Result = r.String()
}

// DeviceIsExtensionPresent records a device-plane extension probe. The
// result reflects the recorder's extension policy, not necessarily the
// driver's answer.
type DeviceIsExtensionPresent struct {
	Device al.DeviceID
	Name   *string
	Result bool
}

func (*DeviceIsExtensionPresent) Tag() Tag { return TagDeviceIsExtensionPresent }

func (e *DeviceIsExtensionPresent) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Device))
	w.String(e.Name)
	w.Bool(e.Result)
}

func (e *DeviceIsExtensionPresent) DecodeFrom(r *wire.Reader) {
	e.Device = al.DeviceID(r.Handle())
	e.Name = r.String()
	e.Result = r.Bool()
}

// DeviceGetEnumValue records resolving an enum name on a device.
type DeviceGetEnumValue struct {
	Device al.DeviceID
	Name   *string
	Result al.Enum
}

func (*DeviceGetEnumValue) Tag() Tag { return TagDeviceGetEnumValue }

func (e *DeviceGetEnumValue) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Device))
	w.String(e.Name)
	w.U32(uint32(e.Result))
}

func (e *DeviceGetEnumValue) DecodeFrom(r *wire.Reader) {
	e.Device = al.DeviceID(r.Handle())
	e.Name = r.String()
	e.Result = al.Enum(r.U32())
}

// CaptureStart records starting capture on a capture device.
type CaptureStart struct {
	Device al.DeviceID
}

func (*CaptureStart) Tag() Tag { return TagCaptureStart }

func (e *CaptureStart) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Device))
}

func (e *CaptureStart) DecodeFrom(r *wire.Reader) {
	e.Device = al.DeviceID(r.Handle())
}

// CaptureStop records stopping capture on a capture device.
type CaptureStop struct {
	Device al.DeviceID
}

func (*CaptureStop) Tag() Tag { return TagCaptureStop }

func (e *CaptureStop) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Device))
}

func (e *CaptureStop) DecodeFrom(r *wire.Reader) {
	e.Device = al.DeviceID(r.Handle())
}

// CaptureSamples records draining captured audio, including the raw
// sample bytes so playback can inspect the recorded signal.
type CaptureSamples struct {
	Device      al.DeviceID
	SampleCount int64
	Data        []byte
}

func (*CaptureSamples) Tag() Tag { return TagCaptureSamples }

func (e *CaptureSamples) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Device))
	w.I64(e.SampleCount)
	w.Blob(e.Data)
}

func (e *CaptureSamples) DecodeFrom(r *wire.Reader) {
	e.Device = al.DeviceID(r.Handle())
	e.SampleCount = r.I64()
	e.Data = r.Blob()
}

// DeviceLabel attaches a debug label to a device. A nil label clears it.
type DeviceLabel struct {
	Device al.DeviceID
	Label  *string
}

func (*DeviceLabel) Tag() Tag { return TagDeviceLabel }

func (e *DeviceLabel) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Device))
	w.String(e.Label)
}

func (e *DeviceLabel) DecodeFrom(r *wire.Reader) {
	e.Device = al.DeviceID(r.Handle())
	e.Label = r.String()
}

// ContextLabel attaches a debug label to a context. A nil label clears it.
type ContextLabel struct {
	Ctx   al.ContextID
	Label *string
}

func (*ContextLabel) Tag() Tag { return TagContextLabel }

func (e *ContextLabel) EncodeTo(w *wire.Writer) {
	w.Handle(uint64(e.Ctx))
	w.String(e.Label)
}

func (e *ContextLabel) DecodeFrom(r *wire.Reader) {
	e.Ctx = al.ContextID(r.Handle())
	e.Label = r.String()
}
