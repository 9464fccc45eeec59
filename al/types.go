package al

// Enum is a numeric constant from the traced API's namespace. Values are
// recorded and replayed verbatim; the core never interprets an Enum beyond
// the parameters it tracks for shadow state.
type Enum uint32

// DeviceID identifies an opened device. The recorder mints these; on the
// wire they are opaque 64-bit handles.
type DeviceID uint64

// ContextID identifies a rendering context, minted like DeviceID.
type ContextID uint64

// AL error codes.
const (
	NoError          Enum = 0
	InvalidName      Enum = 0xA001
	InvalidEnum      Enum = 0xA002
	InvalidValue     Enum = 0xA003
	InvalidOperation Enum = 0xA004
	OutOfMemory      Enum = 0xA005
)

// ALC error codes. InvalidDevice/InvalidContext overlap the AL numeric
// space; device-scoped events keep them distinguishable.
const (
	ALCNoError        Enum = 0
	ALCInvalidDevice  Enum = 0xA001
	ALCInvalidContext Enum = 0xA002
	ALCInvalidEnum    Enum = 0xA003
	ALCInvalidValue   Enum = 0xA004
	ALCOutOfMemory    Enum = 0xA005
)

// Source and listener parameters.
const (
	SourceRelative    Enum = 0x202
	ConeInnerAngle    Enum = 0x1001
	ConeOuterAngle    Enum = 0x1002
	Pitch             Enum = 0x1003
	Position          Enum = 0x1004
	Direction         Enum = 0x1005
	Velocity          Enum = 0x1006
	Looping           Enum = 0x1007
	Buffer            Enum = 0x1009
	Gain              Enum = 0x100A
	MinGain           Enum = 0x100D
	MaxGain           Enum = 0x100E
	Orientation       Enum = 0x100F
	SourceState       Enum = 0x1010
	ReferenceDistance Enum = 0x1020
	RolloffFactor     Enum = 0x1021
	ConeOuterGain     Enum = 0x1022
	MaxDistance       Enum = 0x1023
	SecOffset         Enum = 0x1024
	SampleOffset      Enum = 0x1025
	ByteOffset        Enum = 0x1026
	SourceType        Enum = 0x1027
	BuffersQueued     Enum = 0x1015
	BuffersProcessed  Enum = 0x1016
)

// Source states and types.
const (
	Initial      Enum = 0x1011
	Playing      Enum = 0x1012
	Paused       Enum = 0x1013
	Stopped      Enum = 0x1014
	Static       Enum = 0x1028
	Streaming    Enum = 0x1029
	Undetermined Enum = 0x1030
)

// Buffer parameters.
const (
	Frequency Enum = 0x2001
	Bits      Enum = 0x2002
	Channels  Enum = 0x2003
	Size      Enum = 0x2004
)

// Buffer data formats.
const (
	FormatMono8         Enum = 0x1100
	FormatMono16        Enum = 0x1101
	FormatStereo8       Enum = 0x1102
	FormatStereo16      Enum = 0x1103
	FormatMonoFloat32   Enum = 0x10010
	FormatStereoFloat32 Enum = 0x10011
)

// Context-global parameters and distance models.
const (
	DopplerFactor           Enum = 0xC000
	DopplerVelocity         Enum = 0xC001
	SpeedOfSound            Enum = 0xC003
	DistanceModel           Enum = 0xD000
	InverseDistance         Enum = 0xD001
	InverseDistanceClamped  Enum = 0xD002
	LinearDistance          Enum = 0xD003
	LinearDistanceClamped   Enum = 0xD004
	ExponentDistance        Enum = 0xD005
	ExponentDistanceClamped Enum = 0xD006
)

// Context string parameters.
const (
	Vendor     Enum = 0xB001
	Version    Enum = 0xB002
	Renderer   Enum = 0xB003
	Extensions Enum = 0xB004
)

// Device (ALC) parameters.
const (
	ALCMajorVersion           Enum = 0x1000
	ALCMinorVersion           Enum = 0x1001
	ALCAttributesSize         Enum = 0x1002
	ALCAllAttributes          Enum = 0x1003
	ALCDefaultDeviceSpecifier Enum = 0x1004
	ALCDeviceSpecifier        Enum = 0x1005
	ALCExtensions             Enum = 0x1006
	ALCCaptureDeviceSpecifier Enum = 0x310
	ALCCaptureSamples         Enum = 0x312
	ALCConnected              Enum = 0x313
)

// Extension names the core itself consults.
const (
	ExtDisconnect = "ALC_EXT_disconnect"
	ExtEFX        = "ALC_EXT_EFX"
)

// FormatSampleSize returns the size in bytes of one capture sample frame
// for a buffer data format. The mapping is total over the formats above;
// ok is false for formats the core does not know, and callers must treat
// that case explicitly rather than assuming a zero size.
func FormatSampleSize(format Enum) (int, bool) {
	switch format {
	case FormatMono8:
		return 1, true
	case FormatMono16:
		return 2, true
	case FormatStereo8:
		return 2, true
	case FormatStereo16:
		return 4, true
	case FormatMonoFloat32:
		return 4, true
	case FormatStereoFloat32:
		return 8, true
	}
	return 0, false
}

// FormatLayout returns the channel count and bits per sample of a buffer
// data format. ok is false for unknown formats.
func FormatLayout(format Enum) (channels, bits int, ok bool) {
	switch format {
	case FormatMono8:
		return 1, 8, true
	case FormatMono16:
		return 1, 16, true
	case FormatStereo8:
		return 2, 8, true
	case FormatStereo16:
		return 2, 16, true
	case FormatMonoFloat32:
		return 1, 32, true
	case FormatStereoFloat32:
		return 2, 32, true
	}
	return 0, 0, false
}
