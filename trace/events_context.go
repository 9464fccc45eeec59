package trace

import (
	"github.com/wavetap/wavetap/al"
	"github.com/wavetap/wavetap/wire"
)

// GetError records draining the current context's latched error.
type GetError struct {
	Result al.Enum
}

func (*GetError) Tag() Tag { return TagGetError }

func (e *GetError) EncodeTo(w *wire.Writer) {
	w.U32(uint32(e.Result))
}

func (e *GetError) DecodeFrom(r *wire.Reader) {
	e.Result = al.Enum(r.U32())
}

// IsExtensionPresent records a rendering-plane extension probe.
type IsExtensionPresent struct {
	Name   *string
	Result bool
}

func (*IsExtensionPresent) Tag() Tag { return TagIsExtensionPresent }

func (e *IsExtensionPresent) EncodeTo(w *wire.Writer) {
	w.String(e.Name)
	w.Bool(e.Result)
}

func (e *IsExtensionPresent) DecodeFrom(r *wire.Reader) {
	e.Name = r.String()
	e.Result = r.Bool()
}

// GetString records a context string query (vendor, renderer, version,
// extension list).
type GetString struct {
	Param  al.Enum
	Result *string
}

func (*GetString) Tag() Tag { return TagGetString }

func (e *GetString) EncodeTo(w *wire.Writer) {
	w.U32(uint32(e.Param))
	w.String(e.Result)
}

func (e *GetString) DecodeFrom(r *wire.Reader) {
	e.Param = al.Enum(r.U32())
	e.Result = r.String()
}

// DistanceModel records selecting the attenuation model.
type DistanceModel struct {
	Model al.Enum
}

func (*DistanceModel) Tag() Tag { return TagDistanceModel }

func (e *DistanceModel) EncodeTo(w *wire.Writer) {
	w.U32(uint32(e.Model))
}

func (e *DistanceModel) DecodeFrom(r *wire.Reader) {
	e.Model = al.Enum(r.U32())
}

// DopplerFactor records setting the doppler exaggeration factor.
type DopplerFactor struct {
	Value float32
}

func (*DopplerFactor) Tag() Tag { return TagDopplerFactor }

func (e *DopplerFactor) EncodeTo(w *wire.Writer) {
	w.F32(e.Value)
}

func (e *DopplerFactor) DecodeFrom(r *wire.Reader) {
	e.Value = r.F32()
}

// DopplerVelocity records the legacy doppler velocity call.
type DopplerVelocity struct {
	Value float32
}

func (*DopplerVelocity) Tag() Tag { return TagDopplerVelocity }

func (e *DopplerVelocity) EncodeTo(w *wire.Writer) {
	w.F32(e.Value)
}

func (e *DopplerVelocity) DecodeFrom(r *wire.Reader) {
	e.Value = r.F32()
}

// SpeedOfSound records setting the propagation speed.
type SpeedOfSound struct {
	Value float32
}

func (*SpeedOfSound) Tag() Tag { return TagSpeedOfSound }

func (e *SpeedOfSound) EncodeTo(w *wire.Writer) {
	w.F32(e.Value)
}

func (e *SpeedOfSound) DecodeFrom(r *wire.Reader) {
	e.Value = r.F32()
}

// Listenerf records a scalar listener property set.
type Listenerf struct {
	Param al.Enum
	Value float32
}

func (*Listenerf) Tag() Tag { return TagListenerf }

func (e *Listenerf) EncodeTo(w *wire.Writer) {
	w.U32(uint32(e.Param))
	w.F32(e.Value)
}

func (e *Listenerf) DecodeFrom(r *wire.Reader) {
	e.Param = al.Enum(r.U32())
	e.Value = r.F32()
}

// Listener3f records a three-component listener property set.
type Listener3f struct {
	Param      al.Enum
	V1, V2, V3 float32
}

func (*Listener3f) Tag() Tag { return TagListener3f }

func (e *Listener3f) EncodeTo(w *wire.Writer) {
	w.U32(uint32(e.Param))
	w.F32(e.V1)
	w.F32(e.V2)
	w.F32(e.V3)
}

func (e *Listener3f) DecodeFrom(r *wire.Reader) {
	e.Param = al.Enum(r.U32())
	e.V1 = r.F32()
	e.V2 = r.F32()
	e.V3 = r.F32()
}

// Listenerfv records a vector listener property set.
type Listenerfv struct {
	Param  al.Enum
	Values []float32
}

func (*Listenerfv) Tag() Tag { return TagListenerfv }

func (e *Listenerfv) EncodeTo(w *wire.Writer) {
	w.U32(uint32(e.Param))
	encF32s(w, e.Values)
}

func (e *Listenerfv) DecodeFrom(r *wire.Reader) {
	e.Param = al.Enum(r.U32())
	e.Values = decF32s(r, "listener floats")
}

// GetListenerfv records a vector listener property query.
type GetListenerfv struct {
	Param  al.Enum
	Values []float32
}

func (*GetListenerfv) Tag() Tag { return TagGetListenerfv }

func (e *GetListenerfv) EncodeTo(w *wire.Writer) {
	w.U32(uint32(e.Param))
	encF32s(w, e.Values)
}

func (e *GetListenerfv) DecodeFrom(r *wire.Reader) {
	e.Param = al.Enum(r.U32())
	e.Values = decF32s(r, "listener floats")
}

// PushScope opens a named annotation scope around subsequent calls.
type PushScope struct {
	Label *string
}

func (*PushScope) Tag() Tag { return TagPushScope }

func (e *PushScope) EncodeTo(w *wire.Writer) {
	w.String(e.Label)
}

func (e *PushScope) DecodeFrom(r *wire.Reader) {
	e.Label = r.String()
}

// PopScope closes the innermost annotation scope.
type PopScope struct{}

func (*PopScope) Tag() Tag { return TagPopScope }

func (*PopScope) EncodeTo(w *wire.Writer)   {}
func (*PopScope) DecodeFrom(r *wire.Reader) {}

// Message injects a free-form annotation into the stream.
type Message struct {
	Text *string
}

func (*Message) Tag() Tag { return TagMessage }

func (e *Message) EncodeTo(w *wire.Writer) {
	w.String(e.Text)
}

func (e *Message) DecodeFrom(r *wire.Reader) {
	e.Text = r.String()
}
