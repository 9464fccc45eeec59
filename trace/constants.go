package trace

// Log file header.
const (
	// Magic identifies a wavetap log file.
	Magic = uint32(0x70617477) // "wtap"
	// FormatVersion is bumped whenever any event's field list changes.
	FormatVersion = uint32(1)
)

// Tag identifies one event variant in the stream. Tags are stable wire
// values: new tags may be appended, existing ones never renumbered.
type Tag uint32

// Stream control tags.
const (
	TagEOS        Tag = 0 // end of stream: {tag, u32 timestamp}
	TagNewSymbols Tag = 1 // symbol-table delta, no envelope
)

// Traced call tags (device / context plane).
const (
	TagOpenDevice Tag = iota + 0x10
	TagCloseDevice
	TagCaptureOpenDevice
	TagCaptureCloseDevice
	TagCreateContext
	TagMakeContextCurrent
	TagProcessContext
	TagSuspendContext
	TagDestroyContext
	TagGetCurrentContext
	TagGetContextsDevice
	TagDeviceGetError
	TagDeviceGetIntegerv
	TagDeviceGetString
	TagDeviceIsExtensionPresent
	TagDeviceGetEnumValue
	TagCaptureStart
	TagCaptureStop
	TagCaptureSamples
	TagDeviceLabel
	TagContextLabel
)

// Traced call tags (rendering plane).
const (
	TagGetError Tag = iota + 0x40
	TagIsExtensionPresent
	TagGetString
	TagDistanceModel
	TagDopplerFactor
	TagDopplerVelocity
	TagSpeedOfSound
	TagListenerf
	TagListener3f
	TagListenerfv
	TagGetListenerfv
	TagGenSources
	TagDeleteSources
	TagIsSource
	TagSourcef
	TagSource3f
	TagSourcefv
	TagSourcei
	TagSource3i
	TagSourceiv
	TagGetSourcei
	TagGetSourcefv
	TagSourcePlay
	TagSourcePlayv
	TagSourcePause
	TagSourceStop
	TagSourceRewind
	TagSourceQueueBuffers
	TagSourceUnqueueBuffers
	TagGenBuffers
	TagDeleteBuffers
	TagIsBuffer
	TagBufferData
	TagBufferi
	TagGetBufferi
	TagPushScope
	TagPopScope
	TagMessage
	TagSourceLabel
	TagBufferLabel
)

// Derived event tags: state drift and error latches discovered by the
// reconciler, never issued directly by the traced application.
const (
	TagErrorTriggered Tag = iota + 0x80
	TagDeviceErrorTriggered
	TagDeviceStateBool
	TagDeviceStateInt
	TagContextStateEnum
	TagContextStateFloat
	TagContextStateString
	TagListenerStateFloatv
	TagSourceStateBool
	TagSourceStateEnum
	TagSourceStateInt
	TagSourceStateUint
	TagSourceStateFloat
	TagSourceStateFloat3
	TagBufferStateInt
)
