package player

import "github.com/wavetap/wavetap/trace"

// Frame is one resolved call-stack entry.
type Frame struct {
	Addr uint64
	Sym  string
}

// CallInfo carries the stream-level context of one event: when it
// happened, which goroutine issued it (remapped to a small display id),
// the resolved stack, the record's byte offset, and the annotation
// scope depth in effect.
type CallInfo struct {
	Timestamp  uint32
	ThreadID   uint64
	Frames     []Frame
	Offset     int64
	ScopeDepth int
}

// Visitor receives decoded events, one optional callback per variant.
// Nil callbacks fall through to Default; a nil Default skips the event.
// Consumers fill in only what they care about.
type Visitor struct {
	// Default handles any event without a dedicated callback.
	Default func(c *CallInfo, ev trace.Event)

	OpenDevice               func(c *CallInfo, ev *trace.OpenDevice)
	CloseDevice              func(c *CallInfo, ev *trace.CloseDevice)
	CaptureOpenDevice        func(c *CallInfo, ev *trace.CaptureOpenDevice)
	CaptureCloseDevice       func(c *CallInfo, ev *trace.CaptureCloseDevice)
	CreateContext            func(c *CallInfo, ev *trace.CreateContext)
	MakeContextCurrent       func(c *CallInfo, ev *trace.MakeContextCurrent)
	ProcessContext           func(c *CallInfo, ev *trace.ProcessContext)
	SuspendContext           func(c *CallInfo, ev *trace.SuspendContext)
	DestroyContext           func(c *CallInfo, ev *trace.DestroyContext)
	GetCurrentContext        func(c *CallInfo, ev *trace.GetCurrentContext)
	GetContextsDevice        func(c *CallInfo, ev *trace.GetContextsDevice)
	DeviceGetError           func(c *CallInfo, ev *trace.DeviceGetError)
	DeviceGetIntegerv        func(c *CallInfo, ev *trace.DeviceGetIntegerv)
	DeviceGetString          func(c *CallInfo, ev *trace.DeviceGetString)
	DeviceIsExtensionPresent func(c *CallInfo, ev *trace.DeviceIsExtensionPresent)
	DeviceGetEnumValue       func(c *CallInfo, ev *trace.DeviceGetEnumValue)
	CaptureStart             func(c *CallInfo, ev *trace.CaptureStart)
	CaptureStop              func(c *CallInfo, ev *trace.CaptureStop)
	CaptureSamples           func(c *CallInfo, ev *trace.CaptureSamples)
	DeviceLabel              func(c *CallInfo, ev *trace.DeviceLabel)
	ContextLabel             func(c *CallInfo, ev *trace.ContextLabel)

	GetError             func(c *CallInfo, ev *trace.GetError)
	IsExtensionPresent   func(c *CallInfo, ev *trace.IsExtensionPresent)
	GetString            func(c *CallInfo, ev *trace.GetString)
	DistanceModel        func(c *CallInfo, ev *trace.DistanceModel)
	DopplerFactor        func(c *CallInfo, ev *trace.DopplerFactor)
	DopplerVelocity      func(c *CallInfo, ev *trace.DopplerVelocity)
	SpeedOfSound         func(c *CallInfo, ev *trace.SpeedOfSound)
	Listenerf            func(c *CallInfo, ev *trace.Listenerf)
	Listener3f           func(c *CallInfo, ev *trace.Listener3f)
	Listenerfv           func(c *CallInfo, ev *trace.Listenerfv)
	GetListenerfv        func(c *CallInfo, ev *trace.GetListenerfv)
	GenSources           func(c *CallInfo, ev *trace.GenSources)
	DeleteSources        func(c *CallInfo, ev *trace.DeleteSources)
	IsSource             func(c *CallInfo, ev *trace.IsSource)
	Sourcef              func(c *CallInfo, ev *trace.Sourcef)
	Source3f             func(c *CallInfo, ev *trace.Source3f)
	Sourcefv             func(c *CallInfo, ev *trace.Sourcefv)
	Sourcei              func(c *CallInfo, ev *trace.Sourcei)
	Source3i             func(c *CallInfo, ev *trace.Source3i)
	Sourceiv             func(c *CallInfo, ev *trace.Sourceiv)
	GetSourcei           func(c *CallInfo, ev *trace.GetSourcei)
	GetSourcefv          func(c *CallInfo, ev *trace.GetSourcefv)
	SourcePlay           func(c *CallInfo, ev *trace.SourcePlay)
	SourcePlayv          func(c *CallInfo, ev *trace.SourcePlayv)
	SourcePause          func(c *CallInfo, ev *trace.SourcePause)
	SourceStop           func(c *CallInfo, ev *trace.SourceStop)
	SourceRewind         func(c *CallInfo, ev *trace.SourceRewind)
	SourceQueueBuffers   func(c *CallInfo, ev *trace.SourceQueueBuffers)
	SourceUnqueueBuffers func(c *CallInfo, ev *trace.SourceUnqueueBuffers)
	GenBuffers           func(c *CallInfo, ev *trace.GenBuffers)
	DeleteBuffers        func(c *CallInfo, ev *trace.DeleteBuffers)
	IsBuffer             func(c *CallInfo, ev *trace.IsBuffer)
	BufferData           func(c *CallInfo, ev *trace.BufferData)
	Bufferi              func(c *CallInfo, ev *trace.Bufferi)
	GetBufferi           func(c *CallInfo, ev *trace.GetBufferi)
	PushScope            func(c *CallInfo, ev *trace.PushScope)
	PopScope             func(c *CallInfo, ev *trace.PopScope)
	Message              func(c *CallInfo, ev *trace.Message)
	SourceLabel          func(c *CallInfo, ev *trace.SourceLabel)
	BufferLabel          func(c *CallInfo, ev *trace.BufferLabel)

	ErrorTriggered       func(c *CallInfo, ev *trace.ErrorTriggered)
	DeviceErrorTriggered func(c *CallInfo, ev *trace.DeviceErrorTriggered)
	DeviceStateBool      func(c *CallInfo, ev *trace.DeviceStateBool)
	DeviceStateInt       func(c *CallInfo, ev *trace.DeviceStateInt)
	ContextStateEnum     func(c *CallInfo, ev *trace.ContextStateEnum)
	ContextStateFloat    func(c *CallInfo, ev *trace.ContextStateFloat)
	ContextStateString   func(c *CallInfo, ev *trace.ContextStateString)
	ListenerStateFloatv  func(c *CallInfo, ev *trace.ListenerStateFloatv)
	SourceStateBool      func(c *CallInfo, ev *trace.SourceStateBool)
	SourceStateEnum      func(c *CallInfo, ev *trace.SourceStateEnum)
	SourceStateInt       func(c *CallInfo, ev *trace.SourceStateInt)
	SourceStateUint      func(c *CallInfo, ev *trace.SourceStateUint)
	SourceStateFloat     func(c *CallInfo, ev *trace.SourceStateFloat)
	SourceStateFloat3    func(c *CallInfo, ev *trace.SourceStateFloat3)
	BufferStateInt       func(c *CallInfo, ev *trace.BufferStateInt)
}

// dispatch routes ev to its dedicated callback, falling back to Default.
func (v *Visitor) dispatch(ci *CallInfo, ev trace.Event) {
	switch e := ev.(type) {
	case *trace.OpenDevice:
		if v.OpenDevice != nil {
			v.OpenDevice(ci, e)
			return
		}
	case *trace.CloseDevice:
		if v.CloseDevice != nil {
			v.CloseDevice(ci, e)
			return
		}
	case *trace.CaptureOpenDevice:
		if v.CaptureOpenDevice != nil {
			v.CaptureOpenDevice(ci, e)
			return
		}
	case *trace.CaptureCloseDevice:
		if v.CaptureCloseDevice != nil {
			v.CaptureCloseDevice(ci, e)
			return
		}
	case *trace.CreateContext:
		if v.CreateContext != nil {
			v.CreateContext(ci, e)
			return
		}
	case *trace.MakeContextCurrent:
		if v.MakeContextCurrent != nil {
			v.MakeContextCurrent(ci, e)
			return
		}
	case *trace.ProcessContext:
		if v.ProcessContext != nil {
			v.ProcessContext(ci, e)
			return
		}
	case *trace.SuspendContext:
		if v.SuspendContext != nil {
			v.SuspendContext(ci, e)
			return
		}
	case *trace.DestroyContext:
		if v.DestroyContext != nil {
			v.DestroyContext(ci, e)
			return
		}
	case *trace.GetCurrentContext:
		if v.GetCurrentContext != nil {
			v.GetCurrentContext(ci, e)
			return
		}
	case *trace.GetContextsDevice:
		if v.GetContextsDevice != nil {
			v.GetContextsDevice(ci, e)
			return
		}
	case *trace.DeviceGetError:
		if v.DeviceGetError != nil {
			v.DeviceGetError(ci, e)
			return
		}
	case *trace.DeviceGetIntegerv:
		if v.DeviceGetIntegerv != nil {
			v.DeviceGetIntegerv(ci, e)
			return
		}
	case *trace.DeviceGetString:
		if v.DeviceGetString != nil {
			v.DeviceGetString(ci, e)
			return
		}
	case *trace.DeviceIsExtensionPresent:
		if v.DeviceIsExtensionPresent != nil {
			v.DeviceIsExtensionPresent(ci, e)
			return
		}
	case *trace.DeviceGetEnumValue:
		if v.DeviceGetEnumValue != nil {
			v.DeviceGetEnumValue(ci, e)
			return
		}
	case *trace.CaptureStart:
		if v.CaptureStart != nil {
			v.CaptureStart(ci, e)
			return
		}
	case *trace.CaptureStop:
		if v.CaptureStop != nil {
			v.CaptureStop(ci, e)
			return
		}
	case *trace.CaptureSamples:
		if v.CaptureSamples != nil {
			v.CaptureSamples(ci, e)
			return
		}
	case *trace.DeviceLabel:
		if v.DeviceLabel != nil {
			v.DeviceLabel(ci, e)
			return
		}
	case *trace.ContextLabel:
		if v.ContextLabel != nil {
			v.ContextLabel(ci, e)
			return
		}
	case *trace.GetError:
		if v.GetError != nil {
			v.GetError(ci, e)
			return
		}
	case *trace.IsExtensionPresent:
		if v.IsExtensionPresent != nil {
			v.IsExtensionPresent(ci, e)
			return
		}
	case *trace.GetString:
		if v.GetString != nil {
			v.GetString(ci, e)
			return
		}
	case *trace.DistanceModel:
		if v.DistanceModel != nil {
			v.DistanceModel(ci, e)
			return
		}
	case *trace.DopplerFactor:
		if v.DopplerFactor != nil {
			v.DopplerFactor(ci, e)
			return
		}
	case *trace.DopplerVelocity:
		if v.DopplerVelocity != nil {
			v.DopplerVelocity(ci, e)
			return
		}
	case *trace.SpeedOfSound:
		if v.SpeedOfSound != nil {
			v.SpeedOfSound(ci, e)
			return
		}
	case *trace.Listenerf:
		if v.Listenerf != nil {
			v.Listenerf(ci, e)
			return
		}
	case *trace.Listener3f:
		if v.Listener3f != nil {
			v.Listener3f(ci, e)
			return
		}
	case *trace.Listenerfv:
		if v.Listenerfv != nil {
			v.Listenerfv(ci, e)
			return
		}
	case *trace.GetListenerfv:
		if v.GetListenerfv != nil {
			v.GetListenerfv(ci, e)
			return
		}
	case *trace.GenSources:
		if v.GenSources != nil {
			v.GenSources(ci, e)
			return
		}
	case *trace.DeleteSources:
		if v.DeleteSources != nil {
			v.DeleteSources(ci, e)
			return
		}
	case *trace.IsSource:
		if v.IsSource != nil {
			v.IsSource(ci, e)
			return
		}
	case *trace.Sourcef:
		if v.Sourcef != nil {
			v.Sourcef(ci, e)
			return
		}
	case *trace.Source3f:
		if v.Source3f != nil {
			v.Source3f(ci, e)
			return
		}
	case *trace.Sourcefv:
		if v.Sourcefv != nil {
			v.Sourcefv(ci, e)
			return
		}
	case *trace.Sourcei:
		if v.Sourcei != nil {
			v.Sourcei(ci, e)
			return
		}
	case *trace.Source3i:
		if v.Source3i != nil {
			v.Source3i(ci, e)
			return
		}
	case *trace.Sourceiv:
		if v.Sourceiv != nil {
			v.Sourceiv(ci, e)
			return
		}
	case *trace.GetSourcei:
		if v.GetSourcei != nil {
			v.GetSourcei(ci, e)
			return
		}
	case *trace.GetSourcefv:
		if v.GetSourcefv != nil {
			v.GetSourcefv(ci, e)
			return
		}
	case *trace.SourcePlay:
		if v.SourcePlay != nil {
			v.SourcePlay(ci, e)
			return
		}
	case *trace.SourcePlayv:
		if v.SourcePlayv != nil {
			v.SourcePlayv(ci, e)
			return
		}
	case *trace.SourcePause:
		if v.SourcePause != nil {
			v.SourcePause(ci, e)
			return
		}
	case *trace.SourceStop:
		if v.SourceStop != nil {
			v.SourceStop(ci, e)
			return
		}
	case *trace.SourceRewind:
		if v.SourceRewind != nil {
			v.SourceRewind(ci, e)
			return
		}
	case *trace.SourceQueueBuffers:
		if v.SourceQueueBuffers != nil {
			v.SourceQueueBuffers(ci, e)
			return
		}
	case *trace.SourceUnqueueBuffers:
		if v.SourceUnqueueBuffers != nil {
			v.SourceUnqueueBuffers(ci, e)
			return
		}
	case *trace.GenBuffers:
		if v.GenBuffers != nil {
			v.GenBuffers(ci, e)
			return
		}
	case *trace.DeleteBuffers:
		if v.DeleteBuffers != nil {
			v.DeleteBuffers(ci, e)
			return
		}
	case *trace.IsBuffer:
		if v.IsBuffer != nil {
			v.IsBuffer(ci, e)
			return
		}
	case *trace.BufferData:
		if v.BufferData != nil {
			v.BufferData(ci, e)
			return
		}
	case *trace.Bufferi:
		if v.Bufferi != nil {
			v.Bufferi(ci, e)
			return
		}
	case *trace.GetBufferi:
		if v.GetBufferi != nil {
			v.GetBufferi(ci, e)
			return
		}
	case *trace.PushScope:
		if v.PushScope != nil {
			v.PushScope(ci, e)
			return
		}
	case *trace.PopScope:
		if v.PopScope != nil {
			v.PopScope(ci, e)
			return
		}
	case *trace.Message:
		if v.Message != nil {
			v.Message(ci, e)
			return
		}
	case *trace.SourceLabel:
		if v.SourceLabel != nil {
			v.SourceLabel(ci, e)
			return
		}
	case *trace.BufferLabel:
		if v.BufferLabel != nil {
			v.BufferLabel(ci, e)
			return
		}
	case *trace.ErrorTriggered:
		if v.ErrorTriggered != nil {
			v.ErrorTriggered(ci, e)
			return
		}
	case *trace.DeviceErrorTriggered:
		if v.DeviceErrorTriggered != nil {
			v.DeviceErrorTriggered(ci, e)
			return
		}
	case *trace.DeviceStateBool:
		if v.DeviceStateBool != nil {
			v.DeviceStateBool(ci, e)
			return
		}
	case *trace.DeviceStateInt:
		if v.DeviceStateInt != nil {
			v.DeviceStateInt(ci, e)
			return
		}
	case *trace.ContextStateEnum:
		if v.ContextStateEnum != nil {
			v.ContextStateEnum(ci, e)
			return
		}
	case *trace.ContextStateFloat:
		if v.ContextStateFloat != nil {
			v.ContextStateFloat(ci, e)
			return
		}
	case *trace.ContextStateString:
		if v.ContextStateString != nil {
			v.ContextStateString(ci, e)
			return
		}
	case *trace.ListenerStateFloatv:
		if v.ListenerStateFloatv != nil {
			v.ListenerStateFloatv(ci, e)
			return
		}
	case *trace.SourceStateBool:
		if v.SourceStateBool != nil {
			v.SourceStateBool(ci, e)
			return
		}
	case *trace.SourceStateEnum:
		if v.SourceStateEnum != nil {
			v.SourceStateEnum(ci, e)
			return
		}
	case *trace.SourceStateInt:
		if v.SourceStateInt != nil {
			v.SourceStateInt(ci, e)
			return
		}
	case *trace.SourceStateUint:
		if v.SourceStateUint != nil {
			v.SourceStateUint(ci, e)
			return
		}
	case *trace.SourceStateFloat:
		if v.SourceStateFloat != nil {
			v.SourceStateFloat(ci, e)
			return
		}
	case *trace.SourceStateFloat3:
		if v.SourceStateFloat3 != nil {
			v.SourceStateFloat3(ci, e)
			return
		}
	case *trace.BufferStateInt:
		if v.BufferStateInt != nil {
			v.BufferStateInt(ci, e)
			return
		}
	}
	if v.Default != nil {
		v.Default(ci, ev)
	}
}
