package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wavetap/wavetap/al"
	"github.com/wavetap/wavetap/player"
	"github.com/wavetap/wavetap/trace"
)

var alNames = map[al.Enum]string{
	al.NoError:          "AL_NO_ERROR",
	al.InvalidName:      "AL_INVALID_NAME",
	al.InvalidEnum:      "AL_INVALID_ENUM",
	al.InvalidValue:     "AL_INVALID_VALUE",
	al.InvalidOperation: "AL_INVALID_OPERATION",
	al.OutOfMemory:      "AL_OUT_OF_MEMORY",

	al.SourceRelative:    "AL_SOURCE_RELATIVE",
	al.ConeInnerAngle:    "AL_CONE_INNER_ANGLE",
	al.ConeOuterAngle:    "AL_CONE_OUTER_ANGLE",
	al.Pitch:             "AL_PITCH",
	al.Position:          "AL_POSITION",
	al.Direction:         "AL_DIRECTION",
	al.Velocity:          "AL_VELOCITY",
	al.Looping:           "AL_LOOPING",
	al.Buffer:            "AL_BUFFER",
	al.Gain:              "AL_GAIN",
	al.MinGain:           "AL_MIN_GAIN",
	al.MaxGain:           "AL_MAX_GAIN",
	al.Orientation:       "AL_ORIENTATION",
	al.SourceState:       "AL_SOURCE_STATE",
	al.ReferenceDistance: "AL_REFERENCE_DISTANCE",
	al.RolloffFactor:     "AL_ROLLOFF_FACTOR",
	al.ConeOuterGain:     "AL_CONE_OUTER_GAIN",
	al.MaxDistance:       "AL_MAX_DISTANCE",
	al.SecOffset:         "AL_SEC_OFFSET",
	al.SampleOffset:      "AL_SAMPLE_OFFSET",
	al.ByteOffset:        "AL_BYTE_OFFSET",
	al.SourceType:        "AL_SOURCE_TYPE",
	al.BuffersQueued:     "AL_BUFFERS_QUEUED",
	al.BuffersProcessed:  "AL_BUFFERS_PROCESSED",

	al.Initial:      "AL_INITIAL",
	al.Playing:      "AL_PLAYING",
	al.Paused:       "AL_PAUSED",
	al.Stopped:      "AL_STOPPED",
	al.Static:       "AL_STATIC",
	al.Streaming:    "AL_STREAMING",
	al.Undetermined: "AL_UNDETERMINED",

	al.Frequency: "AL_FREQUENCY",
	al.Bits:      "AL_BITS",
	al.Channels:  "AL_CHANNELS",
	al.Size:      "AL_SIZE",

	al.FormatMono8:         "AL_FORMAT_MONO8",
	al.FormatMono16:        "AL_FORMAT_MONO16",
	al.FormatStereo8:       "AL_FORMAT_STEREO8",
	al.FormatStereo16:      "AL_FORMAT_STEREO16",
	al.FormatMonoFloat32:   "AL_FORMAT_MONO_FLOAT32",
	al.FormatStereoFloat32: "AL_FORMAT_STEREO_FLOAT32",

	al.DopplerFactor:           "AL_DOPPLER_FACTOR",
	al.DopplerVelocity:         "AL_DOPPLER_VELOCITY",
	al.SpeedOfSound:            "AL_SPEED_OF_SOUND",
	al.DistanceModel:           "AL_DISTANCE_MODEL",
	al.InverseDistance:         "AL_INVERSE_DISTANCE",
	al.InverseDistanceClamped:  "AL_INVERSE_DISTANCE_CLAMPED",
	al.LinearDistance:          "AL_LINEAR_DISTANCE",
	al.LinearDistanceClamped:   "AL_LINEAR_DISTANCE_CLAMPED",
	al.ExponentDistance:        "AL_EXPONENT_DISTANCE",
	al.ExponentDistanceClamped: "AL_EXPONENT_DISTANCE_CLAMPED",

	al.Vendor:     "AL_VENDOR",
	al.Version:    "AL_VERSION",
	al.Renderer:   "AL_RENDERER",
	al.Extensions: "AL_EXTENSIONS",
}

// The device plane has its own enum namespace; values collide with the
// rendering plane's, so it gets its own table.
var alcNames = map[al.Enum]string{
	al.ALCNoError:        "ALC_NO_ERROR",
	al.ALCInvalidDevice:  "ALC_INVALID_DEVICE",
	al.ALCInvalidContext: "ALC_INVALID_CONTEXT",
	al.ALCInvalidEnum:    "ALC_INVALID_ENUM",
	al.ALCInvalidValue:   "ALC_INVALID_VALUE",
	al.ALCOutOfMemory:    "ALC_OUT_OF_MEMORY",

	al.ALCMajorVersion:           "ALC_MAJOR_VERSION",
	al.ALCMinorVersion:           "ALC_MINOR_VERSION",
	al.ALCAttributesSize:         "ALC_ATTRIBUTES_SIZE",
	al.ALCAllAttributes:          "ALC_ALL_ATTRIBUTES",
	al.ALCDefaultDeviceSpecifier: "ALC_DEFAULT_DEVICE_SPECIFIER",
	al.ALCDeviceSpecifier:        "ALC_DEVICE_SPECIFIER",
	al.ALCExtensions:             "ALC_EXTENSIONS",
	al.ALCCaptureDeviceSpecifier: "ALC_CAPTURE_DEVICE_SPECIFIER",
	al.ALCCaptureSamples:         "ALC_CAPTURE_SAMPLES",
	al.ALCConnected:              "ALC_CONNECTED",
}

func alName(e al.Enum) string {
	if s, ok := alNames[e]; ok {
		return s
	}
	return fmt.Sprintf("0x%X", uint32(e))
}

func alcName(e al.Enum) string {
	if s, ok := alcNames[e]; ok {
		return s
	}
	return fmt.Sprintf("0x%X", uint32(e))
}

func qstr(s *string) string {
	if s == nil {
		return "NULL"
	}
	return strconv.Quote(*s)
}

func names(v []uint32) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.FormatUint(uint64(n), 10)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func floats(v []float32) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = trimFloat(f)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func ints(v []int32) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.FormatInt(int64(n), 10)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func trimFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func onoff(b bool) string {
	if b {
		return "AL_TRUE"
	}
	return "AL_FALSE"
}

// labeled decorates an object name with its debug label when one is on
// record.
func labeled(name uint32, label string, ok bool) string {
	if !ok {
		return strconv.FormatUint(uint64(name), 10)
	}
	return fmt.Sprintf("%d %q", name, label)
}

// formatEvent renders one event as a call-shaped line, consulting the
// session's label maps for friendlier object names.
func formatEvent(s *player.Session, ev trace.Event) string {
	src := func(n uint32) string { l, ok := s.SourceLabel(n); return labeled(n, l, ok) }
	buf := func(n uint32) string { l, ok := s.BufferLabel(n); return labeled(n, l, ok) }

	switch e := ev.(type) {
	case *trace.OpenDevice:
		out := fmt.Sprintf("alcOpenDevice(%s) -> 0x%X", qstr(e.Name), uint64(e.Result))
		if e.Result != 0 {
			out += fmt.Sprintf(" [ALC %d.%d, %s]", e.Major, e.Minor, qstr(e.Specifier))
		}
		return out
	case *trace.CloseDevice:
		return fmt.Sprintf("alcCloseDevice(0x%X) -> %s", uint64(e.Device), onoff(e.Result))
	case *trace.CaptureOpenDevice:
		out := fmt.Sprintf("alcCaptureOpenDevice(%s, %d, %s, %d) -> 0x%X",
			qstr(e.Name), e.Frequency, alName(e.Format), e.BufferSize, uint64(e.Result))
		if e.Result != 0 {
			out += fmt.Sprintf(" [ALC %d.%d, %s]", e.Major, e.Minor, qstr(e.Specifier))
		}
		return out
	case *trace.CaptureCloseDevice:
		return fmt.Sprintf("alcCaptureCloseDevice(0x%X) -> %s", uint64(e.Device), onoff(e.Result))
	case *trace.CreateContext:
		attrs := "NULL"
		if e.Attrs != nil {
			attrs = ints(e.Attrs)
		}
		return fmt.Sprintf("alcCreateContext(0x%X, %s) -> 0x%X", uint64(e.Device), attrs, uint64(e.Result))
	case *trace.MakeContextCurrent:
		return fmt.Sprintf("alcMakeContextCurrent(0x%X) -> %s", uint64(e.Ctx), onoff(e.Result))
	case *trace.ProcessContext:
		return fmt.Sprintf("alcProcessContext(0x%X)", uint64(e.Ctx))
	case *trace.SuspendContext:
		return fmt.Sprintf("alcSuspendContext(0x%X)", uint64(e.Ctx))
	case *trace.DestroyContext:
		return fmt.Sprintf("alcDestroyContext(0x%X)", uint64(e.Ctx))
	case *trace.GetCurrentContext:
		return fmt.Sprintf("alcGetCurrentContext() -> 0x%X", uint64(e.Result))
	case *trace.GetContextsDevice:
		return fmt.Sprintf("alcGetContextsDevice(0x%X) -> 0x%X", uint64(e.Ctx), uint64(e.Result))
	case *trace.DeviceGetError:
		return fmt.Sprintf("alcGetError(0x%X) -> %s", uint64(e.Device), alcName(e.Result))
	case *trace.DeviceGetIntegerv:
		return fmt.Sprintf("alcGetIntegerv(0x%X, %s) -> %s", uint64(e.Device), alcName(e.Param), ints(e.Values))
	case *trace.DeviceGetString:
		return fmt.Sprintf("alcGetString(0x%X, %s) -> %s", uint64(e.Device), alcName(e.Param), qstr(e.Result))
	case *trace.DeviceIsExtensionPresent:
		return fmt.Sprintf("alcIsExtensionPresent(0x%X, %s) -> %s", uint64(e.Device), qstr(e.Name), onoff(e.Result))
	case *trace.DeviceGetEnumValue:
		return fmt.Sprintf("alcGetEnumValue(0x%X, %s) -> 0x%X", uint64(e.Device), qstr(e.Name), uint32(e.Result))
	case *trace.CaptureStart:
		return fmt.Sprintf("alcCaptureStart(0x%X)", uint64(e.Device))
	case *trace.CaptureStop:
		return fmt.Sprintf("alcCaptureStop(0x%X)", uint64(e.Device))
	case *trace.CaptureSamples:
		return fmt.Sprintf("alcCaptureSamples(0x%X, %d) [%d bytes]", uint64(e.Device), e.SampleCount, len(e.Data))
	case *trace.DeviceLabel:
		return fmt.Sprintf("label device 0x%X = %s", uint64(e.Device), qstr(e.Label))
	case *trace.ContextLabel:
		return fmt.Sprintf("label context 0x%X = %s", uint64(e.Ctx), qstr(e.Label))

	case *trace.GetError:
		return fmt.Sprintf("alGetError() -> %s", alName(e.Result))
	case *trace.IsExtensionPresent:
		return fmt.Sprintf("alIsExtensionPresent(%s) -> %s", qstr(e.Name), onoff(e.Result))
	case *trace.GetString:
		return fmt.Sprintf("alGetString(%s) -> %s", alName(e.Param), qstr(e.Result))
	case *trace.DistanceModel:
		return fmt.Sprintf("alDistanceModel(%s)", alName(e.Model))
	case *trace.DopplerFactor:
		return fmt.Sprintf("alDopplerFactor(%s)", trimFloat(e.Value))
	case *trace.DopplerVelocity:
		return fmt.Sprintf("alDopplerVelocity(%s)", trimFloat(e.Value))
	case *trace.SpeedOfSound:
		return fmt.Sprintf("alSpeedOfSound(%s)", trimFloat(e.Value))
	case *trace.Listenerf:
		return fmt.Sprintf("alListenerf(%s, %s)", alName(e.Param), trimFloat(e.Value))
	case *trace.Listener3f:
		return fmt.Sprintf("alListener3f(%s, %s, %s, %s)", alName(e.Param), trimFloat(e.V1), trimFloat(e.V2), trimFloat(e.V3))
	case *trace.Listenerfv:
		return fmt.Sprintf("alListenerfv(%s, %s)", alName(e.Param), floats(e.Values))
	case *trace.GetListenerfv:
		return fmt.Sprintf("alGetListenerfv(%s) -> %s", alName(e.Param), floats(e.Values))
	case *trace.GenSources:
		return fmt.Sprintf("alGenSources(%d) -> %s", len(e.Names), names(e.Names))
	case *trace.DeleteSources:
		return fmt.Sprintf("alDeleteSources(%d, %s)", len(e.Names), names(e.Names))
	case *trace.IsSource:
		return fmt.Sprintf("alIsSource(%d) -> %s", e.Name, onoff(e.Result))
	case *trace.Sourcef:
		return fmt.Sprintf("alSourcef(%s, %s, %s)", src(e.Source), alName(e.Param), trimFloat(e.Value))
	case *trace.Source3f:
		return fmt.Sprintf("alSource3f(%s, %s, %s, %s, %s)", src(e.Source), alName(e.Param), trimFloat(e.V1), trimFloat(e.V2), trimFloat(e.V3))
	case *trace.Sourcefv:
		return fmt.Sprintf("alSourcefv(%s, %s, %s)", src(e.Source), alName(e.Param), floats(e.Values))
	case *trace.Sourcei:
		return fmt.Sprintf("alSourcei(%s, %s, %d)", src(e.Source), alName(e.Param), e.Value)
	case *trace.Source3i:
		return fmt.Sprintf("alSource3i(%s, %s, %d, %d, %d)", src(e.Source), alName(e.Param), e.V1, e.V2, e.V3)
	case *trace.Sourceiv:
		return fmt.Sprintf("alSourceiv(%s, %s, %s)", src(e.Source), alName(e.Param), ints(e.Values))
	case *trace.GetSourcei:
		val := strconv.FormatInt(int64(e.Result), 10)
		if e.Param == al.SourceState || e.Param == al.SourceType {
			val = alName(al.Enum(e.Result))
		}
		return fmt.Sprintf("alGetSourcei(%s, %s) -> %s", src(e.Source), alName(e.Param), val)
	case *trace.GetSourcefv:
		return fmt.Sprintf("alGetSourcefv(%s, %s) -> %s", src(e.Source), alName(e.Param), floats(e.Values))
	case *trace.SourcePlay:
		return fmt.Sprintf("alSourcePlay(%s)", src(e.Source))
	case *trace.SourcePlayv:
		return fmt.Sprintf("alSourcePlayv(%d, %s)", len(e.Sources), names(e.Sources))
	case *trace.SourcePause:
		return fmt.Sprintf("alSourcePause(%s)", src(e.Source))
	case *trace.SourceStop:
		return fmt.Sprintf("alSourceStop(%s)", src(e.Source))
	case *trace.SourceRewind:
		return fmt.Sprintf("alSourceRewind(%s)", src(e.Source))
	case *trace.SourceQueueBuffers:
		return fmt.Sprintf("alSourceQueueBuffers(%s, %d, %s)", src(e.Source), len(e.Buffers), names(e.Buffers))
	case *trace.SourceUnqueueBuffers:
		return fmt.Sprintf("alSourceUnqueueBuffers(%s, %d) -> %s", src(e.Source), len(e.Buffers), names(e.Buffers))
	case *trace.GenBuffers:
		return fmt.Sprintf("alGenBuffers(%d) -> %s", len(e.Names), names(e.Names))
	case *trace.DeleteBuffers:
		return fmt.Sprintf("alDeleteBuffers(%d, %s)", len(e.Names), names(e.Names))
	case *trace.IsBuffer:
		return fmt.Sprintf("alIsBuffer(%d) -> %s", e.Name, onoff(e.Result))
	case *trace.BufferData:
		return fmt.Sprintf("alBufferData(%s, %s, %d bytes, %d Hz)", buf(e.Buffer), alName(e.Format), len(e.Data), e.Frequency)
	case *trace.Bufferi:
		return fmt.Sprintf("alBufferi(%s, %s, %d)", buf(e.Buffer), alName(e.Param), e.Value)
	case *trace.GetBufferi:
		return fmt.Sprintf("alGetBufferi(%s, %s) -> %d", buf(e.Buffer), alName(e.Param), e.Result)
	case *trace.PushScope:
		return fmt.Sprintf("push scope %s", qstr(e.Label))
	case *trace.PopScope:
		return "pop scope"
	case *trace.Message:
		return fmt.Sprintf("message %s", qstr(e.Text))
	case *trace.SourceLabel:
		return fmt.Sprintf("label source %d = %s", e.Source, qstr(e.Label))
	case *trace.BufferLabel:
		return fmt.Sprintf("label buffer %d = %s", e.Buffer, qstr(e.Label))

	case *trace.ErrorTriggered:
		return fmt.Sprintf("<<< error latched: %s >>>", alName(e.Err))
	case *trace.DeviceErrorTriggered:
		return fmt.Sprintf("<<< device 0x%X error latched: %s >>>", uint64(e.Device), alcName(e.Err))
	case *trace.DeviceStateBool:
		return fmt.Sprintf("device 0x%X %s is now %s", uint64(e.Device), alcName(e.Param), onoff(e.Value))
	case *trace.DeviceStateInt:
		return fmt.Sprintf("device 0x%X %s is now %d", uint64(e.Device), alcName(e.Param), e.Value)
	case *trace.ContextStateEnum:
		return fmt.Sprintf("context 0x%X %s is now %s", uint64(e.Ctx), alName(e.Param), alName(e.Value))
	case *trace.ContextStateFloat:
		return fmt.Sprintf("context 0x%X %s is now %s", uint64(e.Ctx), alName(e.Param), trimFloat(e.Value))
	case *trace.ContextStateString:
		return fmt.Sprintf("context 0x%X %s is %s", uint64(e.Ctx), alName(e.Param), qstr(e.Value))
	case *trace.ListenerStateFloatv:
		return fmt.Sprintf("listener %s is now %s", alName(e.Param), floats(e.Values))
	case *trace.SourceStateBool:
		return fmt.Sprintf("source %s %s is now %s", src(e.Source), alName(e.Param), onoff(e.Value))
	case *trace.SourceStateEnum:
		return fmt.Sprintf("source %s %s is now %s", src(e.Source), alName(e.Param), alName(e.Value))
	case *trace.SourceStateInt:
		return fmt.Sprintf("source %s %s is now %d", src(e.Source), alName(e.Param), e.Value)
	case *trace.SourceStateUint:
		return fmt.Sprintf("source %s %s is now %d", src(e.Source), alName(e.Param), e.Value)
	case *trace.SourceStateFloat:
		return fmt.Sprintf("source %s %s is now %s", src(e.Source), alName(e.Param), trimFloat(e.Value))
	case *trace.SourceStateFloat3:
		return fmt.Sprintf("source %s %s is now %s", src(e.Source), alName(e.Param), floats(e.Values[:]))
	case *trace.BufferStateInt:
		return fmt.Sprintf("buffer %s %s is now %d", buf(e.Buffer), alName(e.Param), e.Value)
	}
	return ev.Tag().String()
}

// isDerived reports whether a tag is a recorder-synthesized event
// rather than a traced call.
func isDerived(t trace.Tag) bool {
	return t >= trace.TagErrorTriggered
}

// isError reports whether a tag marks a latched error.
func isError(t trace.Tag) bool {
	return t == trace.TagErrorTriggered || t == trace.TagDeviceErrorTriggered
}
