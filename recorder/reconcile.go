package recorder

import (
	"github.com/wavetap/wavetap/al"
	"github.com/wavetap/wavetap/shadow"
	"github.com/wavetap/wavetap/trace"
)

// enrich fills the post-call snapshot fields of events that carry them,
// polling the implementation while the lock is still held.
func (r *Recorder) enrich(ev trace.Event) {
	switch e := ev.(type) {
	case *trace.OpenDevice:
		if e.Result != 0 {
			r.snapshotDevice(e.Result, al.ALCDeviceSpecifier,
				&e.Major, &e.Minor, &e.Specifier, &e.Extensions)
		}
	case *trace.CaptureOpenDevice:
		if e.Result != 0 {
			r.snapshotDevice(e.Result, al.ALCCaptureDeviceSpecifier,
				&e.Major, &e.Minor, &e.Specifier, &e.Extensions)
		}
	}
}

func (r *Recorder) snapshotDevice(d al.DeviceID, specParam al.Enum,
	major, minor *int32, spec, exts **string) {
	if v, ok := r.api.DeviceInt(d, al.ALCMajorVersion); ok {
		*major = v
	}
	if v, ok := r.api.DeviceInt(d, al.ALCMinorVersion); ok {
		*minor = v
	}
	*spec = r.api.DeviceString(d, specParam)
	*exts = r.api.DeviceString(d, al.ALCExtensions)
}

// pollErrors drains both error latches after a traced call and reports
// whether the call latched anything new. Because the recorder drains
// after every call, a nonzero poll always belongs to this call.
func (r *Recorder) pollErrors(env *trace.Envelope, ev trace.Event) bool {
	failed := false
	if d, ok := touchedDevice(ev); ok {
		if e := r.api.DeviceError(d); e != al.ALCNoError {
			failed = true
			if dev := r.reg.Device(d); dev != nil && dev.ErrLatched == al.ALCNoError {
				dev.ErrLatched = e
				r.emitDerived(env, &trace.DeviceErrorTriggered{Device: d, Err: e})
			}
		}
	}
	if renderPlane(ev.Tag()) {
		if e := r.api.Error(); e != al.NoError {
			failed = true
			if c := r.reg.Current(); c != nil && c.ErrLatched == al.NoError {
				c.ErrLatched = e
				r.emitDerived(env, &trace.ErrorTriggered{Err: e})
			}
		}
	}
	return failed
}

// touchedDevice names the device whose error latch a call can trip.
// Opens are excluded: failure there is a zero result, and there is no
// device to poll.
func touchedDevice(ev trace.Event) (al.DeviceID, bool) {
	switch e := ev.(type) {
	case *trace.CloseDevice:
		return e.Device, true
	case *trace.CaptureCloseDevice:
		return e.Device, true
	case *trace.CreateContext:
		return e.Device, true
	case *trace.DeviceGetIntegerv:
		return e.Device, true
	case *trace.DeviceGetString:
		return e.Device, true
	case *trace.DeviceGetEnumValue:
		return e.Device, true
	case *trace.CaptureStart:
		return e.Device, true
	case *trace.CaptureStop:
		return e.Device, true
	case *trace.CaptureSamples:
		return e.Device, true
	}
	return 0, false
}

// renderPlane reports whether a tag names a rendering-plane call whose
// failure latches on the current context.
func renderPlane(t trace.Tag) bool {
	return t >= trace.TagGetError && t <= trace.TagGetBufferi
}

// reconcile diffs the objects a call could have moved, emitting a
// derived event per property that actually changed.
func (r *Recorder) reconcile(env *trace.Envelope, ev trace.Event) {
	switch e := ev.(type) {
	case *trace.OpenDevice:
		if d := r.reg.Device(e.Result); d != nil {
			d.SupportsDisconnect = r.extensionSupported(e.Result, al.ExtDisconnect)
		}
	case *trace.CaptureOpenDevice:
		if d := r.reg.Device(e.Result); d != nil {
			d.SupportsDisconnect = r.extensionSupported(e.Result, al.ExtDisconnect)
		}
	case *trace.MakeContextCurrent:
		if c := r.reg.Current(); c != nil && e.Result {
			r.snapshotContextStrings(env, c)
			r.pollContext(env, c)
			r.pollListener(env, c)
		}

	case *trace.DistanceModel, *trace.DopplerFactor, *trace.DopplerVelocity, *trace.SpeedOfSound:
		if c := r.reg.Current(); c != nil {
			r.pollContext(env, c)
		}
	case *trace.Listenerf, *trace.Listener3f, *trace.Listenerfv, *trace.GetListenerfv:
		if c := r.reg.Current(); c != nil {
			r.pollListener(env, c)
		}

	case *trace.GenSources:
		for _, name := range e.Names {
			r.pollSource(env, name)
		}
	case *trace.Sourcef:
		r.pollSource(env, e.Source)
	case *trace.Source3f:
		r.pollSource(env, e.Source)
	case *trace.Sourcefv:
		r.pollSource(env, e.Source)
	case *trace.Sourcei:
		r.pollSource(env, e.Source)
	case *trace.Source3i:
		r.pollSource(env, e.Source)
	case *trace.Sourceiv:
		r.pollSource(env, e.Source)
	case *trace.GetSourcei:
		r.pollSource(env, e.Source)
	case *trace.GetSourcefv:
		r.pollSource(env, e.Source)
	case *trace.SourcePlay:
		r.pollSource(env, e.Source)
	case *trace.SourcePlayv:
		for _, name := range e.Sources {
			r.pollSource(env, name)
		}
	case *trace.SourcePause:
		r.pollSource(env, e.Source)
	case *trace.SourceStop:
		r.pollSource(env, e.Source)
	case *trace.SourceRewind:
		r.pollSource(env, e.Source)
	case *trace.SourceQueueBuffers:
		r.pollSource(env, e.Source)
	case *trace.SourceUnqueueBuffers:
		r.pollSource(env, e.Source)

	case *trace.GenBuffers:
		for _, name := range e.Names {
			r.pollBuffer(env, name)
		}
	case *trace.BufferData:
		r.pollBuffer(env, e.Buffer)
	case *trace.Bufferi:
		r.pollBuffer(env, e.Buffer)
	case *trace.GetBufferi:
		r.pollBuffer(env, e.Buffer)
	}
}

// asyncChecks covers state that moves without any call from the app:
// device connect state, capture fill level, and sources draining to
// stopped. Cost is bounded by the playlists, not the source population.
func (r *Recorder) asyncChecks(env *trace.Envelope) {
	for _, id := range r.reg.Devices() {
		d := r.reg.Device(id)
		if d == nil {
			continue
		}
		if d.SupportsDisconnect {
			if v, ok := r.api.DeviceInt(id, al.ALCConnected); ok {
				conn := v != 0
				if conn != d.Connected {
					d.Connected = conn
					r.emitDerived(env, &trace.DeviceStateBool{Device: id, Param: al.ALCConnected, Value: conn})
				}
			}
		}
		if d.Capture {
			if v, ok := r.api.DeviceInt(id, al.ALCCaptureSamples); ok && v != d.CaptureSamples {
				d.CaptureSamples = v
				r.emitDerived(env, &trace.DeviceStateInt{Device: id, Param: al.ALCCaptureSamples, Value: v})
			}
		}
	}

	// Sources keep playing in contexts the app switched away from, so
	// every playlist gets walked, hopping contexts where needed.
	cur := r.reg.Current()
	for _, id := range r.reg.Contexts() {
		c := r.reg.Context(id)
		if c == nil {
			continue
		}
		play := c.Playlist()
		if len(play) == 0 {
			continue
		}
		poll := func() {
			for _, src := range play {
				r.pollSourceIn(env, c, src)
			}
		}
		if c == cur {
			poll()
		} else {
			r.api.WithContext(c.ID, poll)
		}
	}
}

// snapshotContextStrings logs the static context strings the first time
// the context becomes current.
func (r *Recorder) snapshotContextStrings(env *trace.Envelope, c *shadow.Context) {
	if c.StringsSeen {
		return
	}
	c.StringsSeen = true
	for _, p := range [...]al.Enum{al.Vendor, al.Version, al.Renderer, al.Extensions} {
		if v := r.api.ContextString(p); v != nil {
			r.emitDerived(env, &trace.ContextStateString{Ctx: c.ID, Param: p, Value: v})
		}
	}
}

func (r *Recorder) pollContext(env *trace.Envelope, c *shadow.Context) {
	if v, ok := r.api.ContextInt(al.DistanceModel); ok {
		if m := al.Enum(v); m != c.DistanceModel {
			c.DistanceModel = m
			r.emitDerived(env, &trace.ContextStateEnum{Ctx: c.ID, Param: al.DistanceModel, Value: m})
		}
	}
	floats := [...]struct {
		param al.Enum
		field *float32
	}{
		{al.DopplerFactor, &c.DopplerFactor},
		{al.DopplerVelocity, &c.DopplerVelocity},
		{al.SpeedOfSound, &c.SpeedOfSound},
	}
	for _, f := range floats {
		if v, ok := r.api.ContextFloat(f.param); ok && v != *f.field {
			*f.field = v
			r.emitDerived(env, &trace.ContextStateFloat{Ctx: c.ID, Param: f.param, Value: v})
		}
	}
}

func (r *Recorder) pollListener(env *trace.Envelope, c *shadow.Context) {
	if v, ok := r.api.ListenerFloats(al.Gain, 1); ok && len(v) == 1 && v[0] != c.ListenerGain {
		c.ListenerGain = v[0]
		r.emitDerived(env, &trace.ListenerStateFloatv{Ctx: c.ID, Param: al.Gain, Values: v})
	}
	if v, ok := r.api.ListenerFloats(al.Position, 3); ok && len(v) == 3 && [3]float32(v) != c.ListenerPosition {
		copy(c.ListenerPosition[:], v)
		r.emitDerived(env, &trace.ListenerStateFloatv{Ctx: c.ID, Param: al.Position, Values: v})
	}
	if v, ok := r.api.ListenerFloats(al.Velocity, 3); ok && len(v) == 3 && [3]float32(v) != c.ListenerVelocity {
		copy(c.ListenerVelocity[:], v)
		r.emitDerived(env, &trace.ListenerStateFloatv{Ctx: c.ID, Param: al.Velocity, Values: v})
	}
	if v, ok := r.api.ListenerFloats(al.Orientation, 6); ok && len(v) == 6 && [6]float32(v) != c.ListenerOrientation {
		copy(c.ListenerOrientation[:], v)
		r.emitDerived(env, &trace.ListenerStateFloatv{Ctx: c.ID, Param: al.Orientation, Values: v})
	}
}

func (r *Recorder) pollSource(env *trace.Envelope, name uint32) {
	r.pollSourceIn(env, r.reg.Current(), name)
}

// pollSourceIn diffs one source against its shadow. The caller is
// responsible for making c's context reachable by the poll getters.
func (r *Recorder) pollSourceIn(env *trace.Envelope, c *shadow.Context, name uint32) {
	if c == nil {
		return
	}
	s := c.Source(name)
	if s == nil {
		return
	}

	if v, ok := r.api.SourceInt(name, al.SourceState); ok {
		if st := al.Enum(v); st != s.State {
			s.State = st
			r.emitDerived(env, &trace.SourceStateEnum{Source: name, Param: al.SourceState, Value: st})
		}
	}
	if s.State == al.Playing {
		c.PlaylistAdd(name)
	} else {
		c.PlaylistRemove(name)
	}

	if v, ok := r.api.SourceInt(name, al.SourceType); ok {
		if st := al.Enum(v); st != s.Type {
			s.Type = st
			r.emitDerived(env, &trace.SourceStateEnum{Source: name, Param: al.SourceType, Value: st})
		}
	}

	bools := [...]struct {
		param al.Enum
		field *bool
	}{
		{al.SourceRelative, &s.Relative},
		{al.Looping, &s.Looping},
	}
	for _, b := range bools {
		if v, ok := r.api.SourceInt(name, b.param); ok {
			val := v != 0
			if val != *b.field {
				*b.field = val
				r.emitDerived(env, &trace.SourceStateBool{Source: name, Param: b.param, Value: val})
			}
		}
	}

	if v, ok := r.api.SourceInt(name, al.Buffer); ok {
		if buf := uint32(v); buf != s.Buffer {
			s.Buffer = buf
			r.emitDerived(env, &trace.SourceStateUint{Source: name, Param: al.Buffer, Value: buf})
		}
	}

	ints := [...]struct {
		param al.Enum
		field *int32
	}{
		{al.BuffersQueued, &s.BuffersQueued},
		{al.BuffersProcessed, &s.BuffersProcessed},
	}
	for _, i := range ints {
		if v, ok := r.api.SourceInt(name, i.param); ok && v != *i.field {
			*i.field = v
			r.emitDerived(env, &trace.SourceStateInt{Source: name, Param: i.param, Value: v})
		}
	}

	floats := [...]struct {
		param al.Enum
		field *float32
	}{
		{al.Pitch, &s.Pitch},
		{al.Gain, &s.Gain},
		{al.MinGain, &s.MinGain},
		{al.MaxGain, &s.MaxGain},
		{al.ReferenceDistance, &s.ReferenceDistance},
		{al.MaxDistance, &s.MaxDistance},
		{al.RolloffFactor, &s.RolloffFactor},
		{al.ConeInnerAngle, &s.ConeInnerAngle},
		{al.ConeOuterAngle, &s.ConeOuterAngle},
		{al.ConeOuterGain, &s.ConeOuterGain},
		{al.SecOffset, &s.SecOffset},
		{al.SampleOffset, &s.SampleOffset},
		{al.ByteOffset, &s.ByteOffset},
	}
	for _, f := range floats {
		if v, ok := r.api.SourceFloat(name, f.param); ok && v != *f.field {
			*f.field = v
			r.emitDerived(env, &trace.SourceStateFloat{Source: name, Param: f.param, Value: v})
		}
	}

	vecs := [...]struct {
		param al.Enum
		field *[3]float32
	}{
		{al.Position, &s.Position},
		{al.Velocity, &s.Velocity},
		{al.Direction, &s.Direction},
	}
	for _, vv := range vecs {
		if v, ok := r.api.SourceFloat3(name, vv.param); ok && v != *vv.field {
			*vv.field = v
			r.emitDerived(env, &trace.SourceStateFloat3{Source: name, Param: vv.param, Values: v})
		}
	}
}

func (r *Recorder) pollBuffer(env *trace.Envelope, name uint32) {
	c := r.reg.Current()
	if c == nil {
		return
	}
	d := r.reg.Device(c.Device)
	if d == nil {
		return
	}
	b := d.Buffer(name)
	if b == nil {
		return
	}
	ints := [...]struct {
		param al.Enum
		field *int32
	}{
		{al.Frequency, &b.Frequency},
		{al.Size, &b.Size},
		{al.Channels, &b.Channels},
		{al.Bits, &b.Bits},
	}
	for _, i := range ints {
		if v, ok := r.api.BufferInt(name, i.param); ok && v != *i.field {
			*i.field = v
			r.emitDerived(env, &trace.BufferStateInt{Buffer: name, Param: i.param, Value: v})
		}
	}
}
