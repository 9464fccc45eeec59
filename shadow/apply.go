package shadow

import (
	"github.com/wavetap/wavetap/al"
	"github.com/wavetap/wavetap/trace"
)

// Apply folds one traced call into the registry. failed reports that
// the call latched a new error, in which case structural mutations are
// skipped: the shadow only moves on confirmed success, so it never
// invents objects or state the live implementation rejected.
//
// Property values settable by the application (source, listener and
// context-global parameters) are applied here; properties only the
// implementation moves (playback position, processed counts, connect
// state) are left to the reconciler's polls.
func (g *Registry) Apply(ev trace.Event, failed bool) {
	switch e := ev.(type) {
	case *trace.OpenDevice:
		if e.Result != 0 {
			g.addDevice(e.Result, false)
		}
	case *trace.CaptureOpenDevice:
		if e.Result != 0 {
			g.addDevice(e.Result, true)
		}
	case *trace.CloseDevice:
		if e.Result {
			g.removeDevice(e.Device)
		}
	case *trace.CaptureCloseDevice:
		if e.Result {
			g.removeDevice(e.Device)
		}

	case *trace.CreateContext:
		if e.Result != 0 {
			g.addContext(e.Result, e.Device)
		}
	case *trace.DestroyContext:
		if !failed {
			g.removeContext(e.Ctx)
		}
	case *trace.MakeContextCurrent:
		if e.Result {
			g.setCurrent(e.Ctx)
		}

	case *trace.GenSources:
		if failed {
			return
		}
		if c := g.current; c != nil {
			for _, name := range e.Names {
				c.addSource(name)
			}
		}
	case *trace.DeleteSources:
		if failed {
			return
		}
		if c := g.current; c != nil {
			for _, name := range e.Names {
				c.removeSource(name)
			}
		}

	case *trace.GenBuffers:
		if failed {
			return
		}
		if d := g.currentDevice(); d != nil {
			for _, name := range e.Names {
				d.addBuffer(name)
			}
		}
	case *trace.DeleteBuffers:
		if failed {
			return
		}
		if d := g.currentDevice(); d != nil {
			for _, name := range e.Names {
				d.removeBuffer(name)
			}
		}
	case *trace.BufferData:
		if failed {
			return
		}
		if b := g.currentBuffer(e.Buffer); b != nil {
			b.Frequency = e.Frequency
			b.Size = int32(len(e.Data))
			if ch, bits, ok := al.FormatLayout(e.Format); ok {
				b.Channels = int32(ch)
				b.Bits = int32(bits)
			}
		}

	case *trace.SourcePlay:
		g.applyPlay(failed, e.Source)
	case *trace.SourcePlayv:
		g.applyPlay(failed, e.Sources...)
	case *trace.SourcePause:
		g.applyTransition(failed, e.Source, al.Paused)
	case *trace.SourceStop:
		g.applyTransition(failed, e.Source, al.Stopped)
	case *trace.SourceRewind:
		g.applyTransition(failed, e.Source, al.Initial)

	case *trace.Sourcef:
		if s := g.currentSource(e.Source); s != nil && !failed {
			applySourceFloat(s, e.Param, e.Value)
		}
	case *trace.Source3f:
		if s := g.currentSource(e.Source); s != nil && !failed {
			applySourceVec(s, e.Param, [3]float32{e.V1, e.V2, e.V3})
		}
	case *trace.Sourcefv:
		if s := g.currentSource(e.Source); s != nil && !failed {
			if len(e.Values) == 3 {
				applySourceVec(s, e.Param, [3]float32{e.Values[0], e.Values[1], e.Values[2]})
			} else if len(e.Values) == 1 {
				applySourceFloat(s, e.Param, e.Values[0])
			}
		}
	case *trace.Sourcei:
		if s := g.currentSource(e.Source); s != nil && !failed {
			applySourceInt(s, e.Param, e.Value)
		}
	case *trace.Source3i:
		if s := g.currentSource(e.Source); s != nil && !failed {
			applySourceVec(s, e.Param, [3]float32{float32(e.V1), float32(e.V2), float32(e.V3)})
		}
	case *trace.Sourceiv:
		if s := g.currentSource(e.Source); s != nil && !failed {
			if len(e.Values) == 1 {
				applySourceInt(s, e.Param, e.Values[0])
			}
		}

	case *trace.SourceQueueBuffers:
		if s := g.currentSource(e.Source); s != nil && !failed {
			s.BuffersQueued += int32(len(e.Buffers))
			if s.Type == al.Undetermined && len(e.Buffers) > 0 {
				s.Type = al.Streaming
			}
		}
	case *trace.SourceUnqueueBuffers:
		if s := g.currentSource(e.Source); s != nil && !failed {
			n := int32(len(e.Buffers))
			s.BuffersQueued -= n
			if s.BuffersQueued < 0 {
				s.BuffersQueued = 0
			}
			s.BuffersProcessed -= n
			if s.BuffersProcessed < 0 {
				s.BuffersProcessed = 0
			}
		}

	case *trace.Listenerf:
		if c := g.current; c != nil && !failed && e.Param == al.Gain {
			c.ListenerGain = e.Value
		}
	case *trace.Listener3f:
		if c := g.current; c != nil && !failed {
			applyListenerVec(c, e.Param, []float32{e.V1, e.V2, e.V3})
		}
	case *trace.Listenerfv:
		if c := g.current; c != nil && !failed {
			if e.Param == al.Gain && len(e.Values) == 1 {
				c.ListenerGain = e.Values[0]
			} else {
				applyListenerVec(c, e.Param, e.Values)
			}
		}

	case *trace.DistanceModel:
		if c := g.current; c != nil && !failed {
			c.DistanceModel = e.Model
		}
	case *trace.DopplerFactor:
		if c := g.current; c != nil && !failed {
			c.DopplerFactor = e.Value
		}
	case *trace.DopplerVelocity:
		if c := g.current; c != nil && !failed {
			c.DopplerVelocity = e.Value
		}
	case *trace.SpeedOfSound:
		if c := g.current; c != nil && !failed {
			c.SpeedOfSound = e.Value
		}

	case *trace.DeviceLabel:
		if d := g.Device(e.Device); d != nil {
			d.Label = e.Label
		}
	case *trace.ContextLabel:
		if c := g.Context(e.Ctx); c != nil {
			c.Label = e.Label
		}
	case *trace.SourceLabel:
		if s := g.currentSource(e.Source); s != nil {
			s.Label = e.Label
		}
	case *trace.BufferLabel:
		if b := g.currentBuffer(e.Buffer); b != nil {
			b.Label = e.Label
		}

	case *trace.GetError:
		if c := g.current; c != nil {
			c.ErrLatched = al.NoError
		}
	case *trace.DeviceGetError:
		if d := g.Device(e.Device); d != nil {
			d.ErrLatched = al.ALCNoError
		}
	}
}

func (g *Registry) applyPlay(failed bool, names ...uint32) {
	c := g.current
	if c == nil || failed {
		return
	}
	for _, name := range names {
		if s := c.Source(name); s != nil {
			s.State = al.Playing
			c.PlaylistAdd(name)
		}
	}
}

func (g *Registry) applyTransition(failed bool, name uint32, state al.Enum) {
	c := g.current
	if c == nil || failed {
		return
	}
	if s := c.Source(name); s != nil {
		s.State = state
		c.PlaylistRemove(name)
	}
}

// currentDevice resolves the device owning the current context.
func (g *Registry) currentDevice() *Device {
	if g.current == nil {
		return nil
	}
	return g.devices[g.current.Device]
}

func (g *Registry) currentSource(name uint32) *Source {
	if g.current == nil {
		return nil
	}
	return g.current.Source(name)
}

func (g *Registry) currentBuffer(name uint32) *Buffer {
	d := g.currentDevice()
	if d == nil {
		return nil
	}
	return d.Buffer(name)
}

func applySourceFloat(s *Source, param al.Enum, v float32) {
	switch param {
	case al.Pitch:
		s.Pitch = v
	case al.Gain:
		s.Gain = v
	case al.MinGain:
		s.MinGain = v
	case al.MaxGain:
		s.MaxGain = v
	case al.ReferenceDistance:
		s.ReferenceDistance = v
	case al.MaxDistance:
		s.MaxDistance = v
	case al.RolloffFactor:
		s.RolloffFactor = v
	case al.ConeInnerAngle:
		s.ConeInnerAngle = v
	case al.ConeOuterAngle:
		s.ConeOuterAngle = v
	case al.ConeOuterGain:
		s.ConeOuterGain = v
	case al.SecOffset:
		s.SecOffset = v
	case al.SampleOffset:
		s.SampleOffset = v
	case al.ByteOffset:
		s.ByteOffset = v
	}
}

func applySourceVec(s *Source, param al.Enum, v [3]float32) {
	switch param {
	case al.Position:
		s.Position = v
	case al.Velocity:
		s.Velocity = v
	case al.Direction:
		s.Direction = v
	}
}

func applySourceInt(s *Source, param al.Enum, v int32) {
	switch param {
	case al.SourceRelative:
		s.Relative = v != 0
	case al.Looping:
		s.Looping = v != 0
	case al.Buffer:
		s.Buffer = uint32(v)
		switch {
		case v == 0:
			s.Type = al.Undetermined
		default:
			s.Type = al.Static
		}
	case al.SecOffset:
		s.SecOffset = float32(v)
	case al.SampleOffset:
		s.SampleOffset = float32(v)
	case al.ByteOffset:
		s.ByteOffset = float32(v)
	}
}

func applyListenerVec(c *Context, param al.Enum, v []float32) {
	switch param {
	case al.Position:
		if len(v) == 3 {
			copy(c.ListenerPosition[:], v)
		}
	case al.Velocity:
		if len(v) == 3 {
			copy(c.ListenerVelocity[:], v)
		}
	case al.Orientation:
		if len(v) == 6 {
			copy(c.ListenerOrientation[:], v)
		}
	}
}
