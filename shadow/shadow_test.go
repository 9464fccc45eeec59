package shadow

import (
	"reflect"
	"testing"

	"github.com/wavetap/wavetap/al"
	"github.com/wavetap/wavetap/trace"
)

func str(s string) *string { return &s }

// openContext builds a registry with one device and one current context.
func openContext(t *testing.T) *Registry {
	t.Helper()
	g := NewRegistry()
	g.Apply(&trace.OpenDevice{Result: 0xD1}, false)
	g.Apply(&trace.CreateContext{Device: 0xD1, Result: 0xC1}, false)
	g.Apply(&trace.MakeContextCurrent{Ctx: 0xC1, Result: true}, false)
	if g.Current() == nil {
		t.Fatal("no current context after setup")
	}
	return g
}

func TestContextDefaults(t *testing.T) {
	g := openContext(t)
	c := g.Current()
	if c.DistanceModel != al.InverseDistanceClamped {
		t.Errorf("distance model %#x", c.DistanceModel)
	}
	if c.DopplerFactor != 1 || c.SpeedOfSound != 343.3 || c.ListenerGain != 1 {
		t.Errorf("scalar defaults: %+v", c)
	}
	want := [6]float32{0, 0, -1, 0, 1, 0}
	if c.ListenerOrientation != want {
		t.Errorf("orientation %v", c.ListenerOrientation)
	}
}

func TestSourceDefaults(t *testing.T) {
	g := openContext(t)
	g.Apply(&trace.GenSources{Names: []uint32{5}}, false)
	s := g.Current().Source(5)
	if s == nil {
		t.Fatal("source not registered")
	}
	if s.State != al.Initial || s.Type != al.Undetermined {
		t.Errorf("state %#x type %#x", s.State, s.Type)
	}
	if s.Gain != 1 || s.Pitch != 1 || s.ConeInnerAngle != 360 {
		t.Errorf("defaults: %+v", s)
	}
}

func TestFailedCallLeavesShadowUntouched(t *testing.T) {
	g := openContext(t)
	g.Apply(&trace.GenSources{Names: []uint32{5}}, true)
	if g.Current().Source(5) != nil {
		t.Fatal("failed gen registered a source")
	}
	g.Apply(&trace.GenSources{Names: []uint32{5}}, false)
	g.Apply(&trace.Sourcef{Source: 5, Param: al.Gain, Value: 0.25}, true)
	if got := g.Current().Source(5).Gain; got != 1 {
		t.Fatalf("failed set applied, gain %v", got)
	}
}

func TestSuccessfulSetsApply(t *testing.T) {
	g := openContext(t)
	g.Apply(&trace.GenSources{Names: []uint32{7}}, false)
	g.Apply(&trace.Sourcef{Source: 7, Param: al.Gain, Value: 0.5}, false)
	g.Apply(&trace.Source3f{Source: 7, Param: al.Position, V1: 1, V2: 2, V3: 3}, false)
	g.Apply(&trace.Sourcei{Source: 7, Param: al.Looping, Value: 1}, false)
	g.Apply(&trace.Sourcei{Source: 7, Param: al.Buffer, Value: 9}, false)

	s := g.Current().Source(7)
	if s.Gain != 0.5 || !s.Looping || s.Buffer != 9 {
		t.Errorf("source: %+v", s)
	}
	if s.Position != [3]float32{1, 2, 3} {
		t.Errorf("position %v", s.Position)
	}
	if s.Type != al.Static {
		t.Errorf("type %#x after buffer attach", s.Type)
	}

	g.Apply(&trace.Listenerfv{Param: al.Orientation, Values: []float32{1, 0, 0, 0, 0, 1}}, false)
	g.Apply(&trace.DistanceModel{Model: al.LinearDistance}, false)
	c := g.Current()
	if c.ListenerOrientation != [6]float32{1, 0, 0, 0, 0, 1} {
		t.Errorf("orientation %v", c.ListenerOrientation)
	}
	if c.DistanceModel != al.LinearDistance {
		t.Errorf("distance model %#x", c.DistanceModel)
	}
}

func TestPlaylistTracksPlayState(t *testing.T) {
	g := openContext(t)
	g.Apply(&trace.GenSources{Names: []uint32{1, 2, 3}}, false)

	g.Apply(&trace.SourcePlayv{Sources: []uint32{1, 2}}, false)
	if got := g.Current().Playlist(); !reflect.DeepEqual(got, []uint32{1, 2}) {
		t.Fatalf("playlist %v", got)
	}

	// replaying an already-playing source must not duplicate it
	g.Apply(&trace.SourcePlay{Source: 1}, false)
	if got := g.Current().Playlist(); !reflect.DeepEqual(got, []uint32{1, 2}) {
		t.Fatalf("playlist after replay %v", got)
	}

	g.Apply(&trace.SourceStop{Source: 1}, false)
	if got := g.Current().Playlist(); !reflect.DeepEqual(got, []uint32{2}) {
		t.Fatalf("playlist after stop %v", got)
	}
	if st := g.Current().Source(1).State; st != al.Stopped {
		t.Fatalf("state %#x", st)
	}

	// deleting a playing source drops it from the playlist
	g.Apply(&trace.DeleteSources{Names: []uint32{2}}, false)
	if got := g.Current().Playlist(); len(got) != 0 {
		t.Fatalf("playlist after delete %v", got)
	}
}

func TestBufferLifecycle(t *testing.T) {
	g := openContext(t)
	g.Apply(&trace.GenBuffers{Names: []uint32{10, 11}}, false)
	data := make([]byte, 400)
	g.Apply(&trace.BufferData{Buffer: 10, Format: al.FormatStereo16, Frequency: 22050, Data: data}, false)

	b := g.Device(0xD1).Buffer(10)
	if b == nil {
		t.Fatal("buffer not registered")
	}
	if b.Frequency != 22050 || b.Size != 400 || b.Channels != 2 || b.Bits != 16 {
		t.Errorf("buffer: %+v", b)
	}

	g.Apply(&trace.DeleteBuffers{Names: []uint32{10}}, false)
	if g.Device(0xD1).Buffer(10) != nil {
		t.Fatal("buffer survived delete")
	}
	if got := g.Device(0xD1).Buffers(); !reflect.DeepEqual(got, []uint32{11}) {
		t.Fatalf("buffer order %v", got)
	}
}

func TestContextLifecycle(t *testing.T) {
	g := openContext(t)
	g.Apply(&trace.CreateContext{Device: 0xD1, Result: 0xC2}, false)
	if got := g.Contexts(); !reflect.DeepEqual(got, []al.ContextID{0xC1, 0xC2}) {
		t.Fatalf("contexts %v", got)
	}

	g.Apply(&trace.DestroyContext{Ctx: 0xC1}, false)
	if g.Context(0xC1) != nil {
		t.Fatal("context survived destroy")
	}
	if g.Current() != nil {
		t.Fatal("destroyed context still current")
	}

	g.Apply(&trace.MakeContextCurrent{Ctx: 0xC2, Result: true}, false)
	if g.Current() == nil || g.Current().ID != 0xC2 {
		t.Fatal("context switch not applied")
	}
	g.Apply(&trace.MakeContextCurrent{Ctx: 0, Result: true}, false)
	if g.Current() != nil {
		t.Fatal("detach not applied")
	}
}

func TestLabels(t *testing.T) {
	g := openContext(t)
	g.Apply(&trace.GenSources{Names: []uint32{4}}, false)
	g.Apply(&trace.SourceLabel{Source: 4, Label: str("ambience")}, false)
	if got := g.Current().Source(4).Label; got == nil || *got != "ambience" {
		t.Fatalf("label %v", got)
	}
	g.Apply(&trace.SourceLabel{Source: 4, Label: nil}, false)
	if g.Current().Source(4).Label != nil {
		t.Fatal("label not cleared")
	}
	g.Apply(&trace.DeviceLabel{Device: 0xD1, Label: str("main out")}, false)
	if got := g.Device(0xD1).Label; got == nil || *got != "main out" {
		t.Fatalf("device label %v", got)
	}
}
