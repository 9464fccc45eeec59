package trace

import "fmt"

// newEvent maps each payload-carrying tag to a fresh event value.
// TagEOS and TagNewSymbols are stream control records and are handled
// by the stream layer, not through this table.
var newEvent = map[Tag]func() Event{
	TagOpenDevice:               func() Event { return &OpenDevice{} },
	TagCloseDevice:              func() Event { return &CloseDevice{} },
	TagCaptureOpenDevice:        func() Event { return &CaptureOpenDevice{} },
	TagCaptureCloseDevice:       func() Event { return &CaptureCloseDevice{} },
	TagCreateContext:            func() Event { return &CreateContext{} },
	TagMakeContextCurrent:       func() Event { return &MakeContextCurrent{} },
	TagProcessContext:           func() Event { return &ProcessContext{} },
	TagSuspendContext:           func() Event { return &SuspendContext{} },
	TagDestroyContext:           func() Event { return &DestroyContext{} },
	TagGetCurrentContext:        func() Event { return &GetCurrentContext{} },
	TagGetContextsDevice:        func() Event { return &GetContextsDevice{} },
	TagDeviceGetError:           func() Event { return &DeviceGetError{} },
	TagDeviceGetIntegerv:        func() Event { return &DeviceGetIntegerv{} },
	TagDeviceGetString:          func() Event { return &DeviceGetString{} },
	TagDeviceIsExtensionPresent: func() Event { return &DeviceIsExtensionPresent{} },
	TagDeviceGetEnumValue:       func() Event { return &DeviceGetEnumValue{} },
	TagCaptureStart:             func() Event { return &CaptureStart{} },
	TagCaptureStop:              func() Event { return &CaptureStop{} },
	TagCaptureSamples:           func() Event { return &CaptureSamples{} },
	TagDeviceLabel:              func() Event { return &DeviceLabel{} },
	TagContextLabel:             func() Event { return &ContextLabel{} },

	TagGetError:             func() Event { return &GetError{} },
	TagIsExtensionPresent:   func() Event { return &IsExtensionPresent{} },
	TagGetString:            func() Event { return &GetString{} },
	TagDistanceModel:        func() Event { return &DistanceModel{} },
	TagDopplerFactor:        func() Event { return &DopplerFactor{} },
	TagDopplerVelocity:      func() Event { return &DopplerVelocity{} },
	TagSpeedOfSound:         func() Event { return &SpeedOfSound{} },
	TagListenerf:            func() Event { return &Listenerf{} },
	TagListener3f:           func() Event { return &Listener3f{} },
	TagListenerfv:           func() Event { return &Listenerfv{} },
	TagGetListenerfv:        func() Event { return &GetListenerfv{} },
	TagGenSources:           func() Event { return &GenSources{} },
	TagDeleteSources:        func() Event { return &DeleteSources{} },
	TagIsSource:             func() Event { return &IsSource{} },
	TagSourcef:              func() Event { return &Sourcef{} },
	TagSource3f:             func() Event { return &Source3f{} },
	TagSourcefv:             func() Event { return &Sourcefv{} },
	TagSourcei:              func() Event { return &Sourcei{} },
	TagSource3i:             func() Event { return &Source3i{} },
	TagSourceiv:             func() Event { return &Sourceiv{} },
	TagGetSourcei:           func() Event { return &GetSourcei{} },
	TagGetSourcefv:          func() Event { return &GetSourcefv{} },
	TagSourcePlay:           func() Event { return &SourcePlay{} },
	TagSourcePlayv:          func() Event { return &SourcePlayv{} },
	TagSourcePause:          func() Event { return &SourcePause{} },
	TagSourceStop:           func() Event { return &SourceStop{} },
	TagSourceRewind:         func() Event { return &SourceRewind{} },
	TagSourceQueueBuffers:   func() Event { return &SourceQueueBuffers{} },
	TagSourceUnqueueBuffers: func() Event { return &SourceUnqueueBuffers{} },
	TagGenBuffers:           func() Event { return &GenBuffers{} },
	TagDeleteBuffers:        func() Event { return &DeleteBuffers{} },
	TagIsBuffer:             func() Event { return &IsBuffer{} },
	TagBufferData:           func() Event { return &BufferData{} },
	TagBufferi:              func() Event { return &Bufferi{} },
	TagGetBufferi:           func() Event { return &GetBufferi{} },
	TagPushScope:            func() Event { return &PushScope{} },
	TagPopScope:             func() Event { return &PopScope{} },
	TagMessage:              func() Event { return &Message{} },
	TagSourceLabel:          func() Event { return &SourceLabel{} },
	TagBufferLabel:          func() Event { return &BufferLabel{} },

	TagErrorTriggered:       func() Event { return &ErrorTriggered{} },
	TagDeviceErrorTriggered: func() Event { return &DeviceErrorTriggered{} },
	TagDeviceStateBool:      func() Event { return &DeviceStateBool{} },
	TagDeviceStateInt:       func() Event { return &DeviceStateInt{} },
	TagContextStateEnum:     func() Event { return &ContextStateEnum{} },
	TagContextStateFloat:    func() Event { return &ContextStateFloat{} },
	TagContextStateString:   func() Event { return &ContextStateString{} },
	TagListenerStateFloatv:  func() Event { return &ListenerStateFloatv{} },
	TagSourceStateBool:      func() Event { return &SourceStateBool{} },
	TagSourceStateEnum:      func() Event { return &SourceStateEnum{} },
	TagSourceStateInt:       func() Event { return &SourceStateInt{} },
	TagSourceStateUint:      func() Event { return &SourceStateUint{} },
	TagSourceStateFloat:     func() Event { return &SourceStateFloat{} },
	TagSourceStateFloat3:    func() Event { return &SourceStateFloat3{} },
	TagBufferStateInt:       func() Event { return &BufferStateInt{} },
}

// New returns a zero event for tag, or false for an unknown tag.
func New(tag Tag) (Event, bool) {
	fn, ok := newEvent[tag]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// Known reports whether tag names an event variant this build decodes.
func Known(tag Tag) bool {
	_, ok := newEvent[tag]
	return ok || tag == TagEOS || tag == TagNewSymbols
}

var tagNames = map[Tag]string{
	TagEOS:        "EOS",
	TagNewSymbols: "NewSymbols",

	TagOpenDevice:               "OpenDevice",
	TagCloseDevice:              "CloseDevice",
	TagCaptureOpenDevice:        "CaptureOpenDevice",
	TagCaptureCloseDevice:       "CaptureCloseDevice",
	TagCreateContext:            "CreateContext",
	TagMakeContextCurrent:       "MakeContextCurrent",
	TagProcessContext:           "ProcessContext",
	TagSuspendContext:           "SuspendContext",
	TagDestroyContext:           "DestroyContext",
	TagGetCurrentContext:        "GetCurrentContext",
	TagGetContextsDevice:        "GetContextsDevice",
	TagDeviceGetError:           "DeviceGetError",
	TagDeviceGetIntegerv:        "DeviceGetIntegerv",
	TagDeviceGetString:          "DeviceGetString",
	TagDeviceIsExtensionPresent: "DeviceIsExtensionPresent",
	TagDeviceGetEnumValue:       "DeviceGetEnumValue",
	TagCaptureStart:             "CaptureStart",
	TagCaptureStop:              "CaptureStop",
	TagCaptureSamples:           "CaptureSamples",
	TagDeviceLabel:              "DeviceLabel",
	TagContextLabel:             "ContextLabel",

	TagGetError:             "GetError",
	TagIsExtensionPresent:   "IsExtensionPresent",
	TagGetString:            "GetString",
	TagDistanceModel:        "DistanceModel",
	TagDopplerFactor:        "DopplerFactor",
	TagDopplerVelocity:      "DopplerVelocity",
	TagSpeedOfSound:         "SpeedOfSound",
	TagListenerf:            "Listenerf",
	TagListener3f:           "Listener3f",
	TagListenerfv:           "Listenerfv",
	TagGetListenerfv:        "GetListenerfv",
	TagGenSources:           "GenSources",
	TagDeleteSources:        "DeleteSources",
	TagIsSource:             "IsSource",
	TagSourcef:              "Sourcef",
	TagSource3f:             "Source3f",
	TagSourcefv:             "Sourcefv",
	TagSourcei:              "Sourcei",
	TagSource3i:             "Source3i",
	TagSourceiv:             "Sourceiv",
	TagGetSourcei:           "GetSourcei",
	TagGetSourcefv:          "GetSourcefv",
	TagSourcePlay:           "SourcePlay",
	TagSourcePlayv:          "SourcePlayv",
	TagSourcePause:          "SourcePause",
	TagSourceStop:           "SourceStop",
	TagSourceRewind:         "SourceRewind",
	TagSourceQueueBuffers:   "SourceQueueBuffers",
	TagSourceUnqueueBuffers: "SourceUnqueueBuffers",
	TagGenBuffers:           "GenBuffers",
	TagDeleteBuffers:        "DeleteBuffers",
	TagIsBuffer:             "IsBuffer",
	TagBufferData:           "BufferData",
	TagBufferi:              "Bufferi",
	TagGetBufferi:           "GetBufferi",
	TagPushScope:            "PushScope",
	TagPopScope:             "PopScope",
	TagMessage:              "Message",
	TagSourceLabel:          "SourceLabel",
	TagBufferLabel:          "BufferLabel",

	TagErrorTriggered:       "ErrorTriggered",
	TagDeviceErrorTriggered: "DeviceErrorTriggered",
	TagDeviceStateBool:      "DeviceStateBool",
	TagDeviceStateInt:       "DeviceStateInt",
	TagContextStateEnum:     "ContextStateEnum",
	TagContextStateFloat:    "ContextStateFloat",
	TagContextStateString:   "ContextStateString",
	TagListenerStateFloatv:  "ListenerStateFloatv",
	TagSourceStateBool:      "SourceStateBool",
	TagSourceStateEnum:      "SourceStateEnum",
	TagSourceStateInt:       "SourceStateInt",
	TagSourceStateUint:      "SourceStateUint",
	TagSourceStateFloat:     "SourceStateFloat",
	TagSourceStateFloat3:    "SourceStateFloat3",
	TagBufferStateInt:       "BufferStateInt",
}

// String returns the human-readable name of the tag.
func (t Tag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Tag(0x%x)", uint32(t))
}
