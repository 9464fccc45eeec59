package shadow

import (
	"math"

	"github.com/wavetap/wavetap/al"
)

// Device mirrors one opened device. Buffers are device-owned and kept
// in creation order so diff passes are deterministic.
type Device struct {
	ID        al.DeviceID
	Capture   bool
	Connected bool
	Label     *string

	// ErrLatched holds the first device error since the last drain,
	// al.ALCNoError when clear.
	ErrLatched al.Enum

	// SupportsDisconnect is fixed at open from the extension policy and
	// gates connect-state polling.
	SupportsDisconnect bool

	// CaptureSamples is the last polled available-sample count of a
	// capture device.
	CaptureSamples int32

	buffers map[uint32]*Buffer
	order   []uint32
}

func newDevice(id al.DeviceID, capture bool) *Device {
	return &Device{
		ID:        id,
		Capture:   capture,
		Connected: true,
		buffers:   make(map[uint32]*Buffer),
	}
}

// Buffer returns the shadow buffer with the given name, or nil.
func (d *Device) Buffer(name uint32) *Buffer {
	return d.buffers[name]
}

// Buffers returns the live buffer names in creation order.
func (d *Device) Buffers() []uint32 {
	out := make([]uint32, len(d.order))
	copy(out, d.order)
	return out
}

func (d *Device) addBuffer(name uint32) *Buffer {
	if b, ok := d.buffers[name]; ok {
		return b
	}
	b := newBuffer(name)
	d.buffers[name] = b
	d.order = append(d.order, name)
	return b
}

func (d *Device) removeBuffer(name uint32) {
	if _, ok := d.buffers[name]; !ok {
		return
	}
	delete(d.buffers, name)
	for i, n := range d.order {
		if n == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Context mirrors one rendering context, including listener state and
// the context-global parameters. Field values start at the defaults the
// audio API specifies for a fresh context.
type Context struct {
	ID     al.ContextID
	Device al.DeviceID
	Label  *string

	// ErrLatched holds the first rendering error since the last drain.
	ErrLatched al.Enum

	DistanceModel   al.Enum
	DopplerFactor   float32
	DopplerVelocity float32
	SpeedOfSound    float32

	ListenerGain        float32
	ListenerPosition    [3]float32
	ListenerVelocity    [3]float32
	ListenerOrientation [6]float32

	// StringsSeen marks that the static context strings have been
	// snapshotted into the log once.
	StringsSeen bool

	sources map[uint32]*Source
	order   []uint32

	playlist []uint32
	playing  map[uint32]bool
}

func newContext(id al.ContextID, dev al.DeviceID) *Context {
	return &Context{
		ID:                  id,
		Device:              dev,
		DistanceModel:       al.InverseDistanceClamped,
		DopplerFactor:       1,
		DopplerVelocity:     1,
		SpeedOfSound:        343.3,
		ListenerGain:        1,
		ListenerOrientation: [6]float32{0, 0, -1, 0, 1, 0},
		sources:             make(map[uint32]*Source),
		playing:             make(map[uint32]bool),
	}
}

// Source returns the shadow source with the given name, or nil.
func (c *Context) Source(name uint32) *Source {
	return c.sources[name]
}

// Sources returns the live source names in creation order.
func (c *Context) Sources() []uint32 {
	out := make([]uint32, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Context) addSource(name uint32) *Source {
	if s, ok := c.sources[name]; ok {
		return s
	}
	s := newSource(name)
	c.sources[name] = s
	c.order = append(c.order, name)
	return s
}

func (c *Context) removeSource(name uint32) {
	if _, ok := c.sources[name]; !ok {
		return
	}
	delete(c.sources, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.PlaylistRemove(name)
}

// Playlist returns the sources believed to be playing, in the order
// they entered the playlist. Async polling is bounded by this set.
func (c *Context) Playlist() []uint32 {
	out := make([]uint32, len(c.playlist))
	copy(out, c.playlist)
	return out
}

// PlaylistAdd marks a source as playing. Adding an already-listed
// source is a no-op, so the playlist never holds duplicates.
func (c *Context) PlaylistAdd(name uint32) {
	if c.playing[name] {
		return
	}
	c.playing[name] = true
	c.playlist = append(c.playlist, name)
}

// PlaylistRemove drops a source from the playing set.
func (c *Context) PlaylistRemove(name uint32) {
	if !c.playing[name] {
		return
	}
	delete(c.playing, name)
	for i, n := range c.playlist {
		if n == name {
			c.playlist = append(c.playlist[:i], c.playlist[i+1:]...)
			break
		}
	}
}

// Source mirrors one source's tracked properties. A fresh source
// carries the audio API's documented defaults.
type Source struct {
	Name  uint32
	Label *string

	State    al.Enum
	Type     al.Enum
	Relative bool
	Looping  bool

	Buffer           uint32
	BuffersQueued    int32
	BuffersProcessed int32

	Pitch   float32
	Gain    float32
	MinGain float32
	MaxGain float32

	ReferenceDistance float32
	MaxDistance       float32
	RolloffFactor     float32

	ConeInnerAngle float32
	ConeOuterAngle float32
	ConeOuterGain  float32

	SecOffset    float32
	SampleOffset float32
	ByteOffset   float32

	Position  [3]float32
	Velocity  [3]float32
	Direction [3]float32
}

func newSource(name uint32) *Source {
	return &Source{
		Name:              name,
		State:             al.Initial,
		Type:              al.Undetermined,
		Pitch:             1,
		Gain:              1,
		MaxGain:           1,
		ReferenceDistance: 1,
		MaxDistance:       math.MaxFloat32,
		RolloffFactor:     1,
		ConeInnerAngle:    360,
		ConeOuterAngle:    360,
	}
}

// Buffer mirrors one buffer's tracked properties. A fresh buffer
// reports mono 16-bit with no data.
type Buffer struct {
	Name  uint32
	Label *string

	Frequency int32
	Size      int32
	Channels  int32
	Bits      int32
}

func newBuffer(name uint32) *Buffer {
	return &Buffer{Name: name, Channels: 1, Bits: 16}
}
