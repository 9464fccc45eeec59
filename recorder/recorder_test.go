package recorder

import (
	"bytes"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/wavetap/wavetap/al"
	"github.com/wavetap/wavetap/symbols"
	"github.com/wavetap/wavetap/trace"
	"github.com/wavetap/wavetap/wire"
)

// fakeAPI is a scriptable implementation: polls answer only what the
// test has staged, so untouched properties never produce drift events.
type fakeAPI struct {
	err     al.Enum
	devErr  map[al.DeviceID]al.Enum
	devInt  map[al.DeviceID]map[al.Enum]int32
	devStr  map[al.DeviceID]map[al.Enum]string
	srcInt  map[uint32]map[al.Enum]int32
	srcFlt  map[uint32]map[al.Enum]float32
	srcVec  map[uint32]map[al.Enum][3]float32
	bufInt  map[uint32]map[al.Enum]int32
	lstFlt  map[al.Enum][]float32
	ctxInt  map[al.Enum]int32
	ctxFlt  map[al.Enum]float32
	ctxStr  map[al.Enum]string
	extants map[string]bool

	// contexts hopped into by WithContext, in call order
	switched []al.ContextID
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		devErr:  make(map[al.DeviceID]al.Enum),
		devInt:  make(map[al.DeviceID]map[al.Enum]int32),
		devStr:  make(map[al.DeviceID]map[al.Enum]string),
		srcInt:  make(map[uint32]map[al.Enum]int32),
		srcFlt:  make(map[uint32]map[al.Enum]float32),
		srcVec:  make(map[uint32]map[al.Enum][3]float32),
		bufInt:  make(map[uint32]map[al.Enum]int32),
		lstFlt:  make(map[al.Enum][]float32),
		ctxInt:  make(map[al.Enum]int32),
		ctxFlt:  make(map[al.Enum]float32),
		ctxStr:  make(map[al.Enum]string),
		extants: make(map[string]bool),
	}
}

func (f *fakeAPI) setSrcInt(src uint32, param al.Enum, v int32) {
	if f.srcInt[src] == nil {
		f.srcInt[src] = make(map[al.Enum]int32)
	}
	f.srcInt[src][param] = v
}

func (f *fakeAPI) setSrcFlt(src uint32, param al.Enum, v float32) {
	if f.srcFlt[src] == nil {
		f.srcFlt[src] = make(map[al.Enum]float32)
	}
	f.srcFlt[src][param] = v
}

func (f *fakeAPI) Error() al.Enum {
	e := f.err
	f.err = al.NoError
	return e
}

func (f *fakeAPI) DeviceError(d al.DeviceID) al.Enum {
	e := f.devErr[d]
	delete(f.devErr, d)
	return e
}

func (f *fakeAPI) DeviceInt(d al.DeviceID, param al.Enum) (int32, bool) {
	v, ok := f.devInt[d][param]
	return v, ok
}

func (f *fakeAPI) DeviceString(d al.DeviceID, param al.Enum) *string {
	if s, ok := f.devStr[d][param]; ok {
		return &s
	}
	return nil
}

func (f *fakeAPI) SourceInt(src uint32, param al.Enum) (int32, bool) {
	v, ok := f.srcInt[src][param]
	return v, ok
}

func (f *fakeAPI) SourceFloat(src uint32, param al.Enum) (float32, bool) {
	v, ok := f.srcFlt[src][param]
	return v, ok
}

func (f *fakeAPI) SourceFloat3(src uint32, param al.Enum) ([3]float32, bool) {
	v, ok := f.srcVec[src][param]
	return v, ok
}

func (f *fakeAPI) BufferInt(buf uint32, param al.Enum) (int32, bool) {
	v, ok := f.bufInt[buf][param]
	return v, ok
}

func (f *fakeAPI) ListenerFloats(param al.Enum, count int) ([]float32, bool) {
	v, ok := f.lstFlt[param]
	if !ok || len(v) != count {
		return nil, false
	}
	return v, true
}

func (f *fakeAPI) ContextInt(param al.Enum) (int32, bool) {
	v, ok := f.ctxInt[param]
	return v, ok
}

func (f *fakeAPI) ContextFloat(param al.Enum) (float32, bool) {
	v, ok := f.ctxFlt[param]
	return v, ok
}

func (f *fakeAPI) ContextString(param al.Enum) *string {
	if s, ok := f.ctxStr[param]; ok {
		return &s
	}
	return nil
}

func (f *fakeAPI) IsExtensionPresent(d al.DeviceID, name string) bool {
	return f.extants[name]
}

// WithContext records the hop; the fake's staged source state is not
// context-scoped, so fn just runs in place.
func (f *fakeAPI) WithContext(c al.ContextID, fn func()) bool {
	f.switched = append(f.switched, c)
	fn()
	return true
}

// record is one decoded stream record: either an enveloped event, a
// batch of symbol defs, or the EOS timestamp.
type record struct {
	env  trace.Envelope
	ev   trace.Event
	defs []symbols.Def
	eos  bool
	ts   uint32
}

// decodeStream walks a complete log and returns every record.
func decodeStream(t *testing.T, data []byte) []record {
	t.Helper()
	r := wire.NewReader(bytes.NewReader(data))
	if err := trace.ReadHeader(r); err != nil {
		t.Fatalf("header: %v", err)
	}
	var recs []record
	for {
		tag := trace.Tag(r.U32())
		if err := r.Err(); err != nil {
			t.Fatalf("tag: %v", err)
		}
		switch tag {
		case trace.TagEOS:
			recs = append(recs, record{eos: true, ts: r.U32()})
			return recs
		case trace.TagNewSymbols:
			recs = append(recs, record{defs: trace.ReadNewSymbols(r)})
		default:
			var rec record
			rec.env.DecodeFrom(r)
			ev, ok := trace.New(tag)
			if !ok {
				t.Fatalf("unknown tag %v", tag)
			}
			ev.DecodeFrom(r)
			rec.ev = ev
			recs = append(recs, rec)
		}
		if err := r.Err(); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
}

func events(recs []record) []trace.Event {
	var out []trace.Event
	for _, rec := range recs {
		if rec.ev != nil {
			out = append(out, rec.ev)
		}
	}
	return out
}

func newTestRecorder(t *testing.T, api al.API, out io.Writer) *Recorder {
	t.Helper()
	base := time.Unix(1000, 0)
	step := 0
	r, err := New(Config{
		API:    api,
		Output: out,
		Now: func() time.Time {
			step++
			return base.Add(time.Duration(step) * time.Millisecond)
		},
		OnWriteError: func(err error) { t.Fatalf("write failed: %v", err) },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

// openCurrent drives the recorder through device open, context create
// and make-current, the way an adapter would.
func openCurrent(r *Recorder, dev al.DeviceID, ctx al.ContextID) {
	r.Record(func() trace.Event { return &trace.OpenDevice{Result: dev} })
	r.Record(func() trace.Event { return &trace.CreateContext{Device: dev, Result: ctx} })
	r.Record(func() trace.Event { return &trace.MakeContextCurrent{Ctx: ctx, Result: true} })
}

func TestConfigValidation(t *testing.T) {
	if _, err := New(Config{Output: &bytes.Buffer{}}); err == nil {
		t.Fatal("missing API accepted")
	}
	if _, err := New(Config{API: newFakeAPI()}); err == nil {
		t.Fatal("missing Output accepted")
	}
}

func TestHeaderAndEOS(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRecorder(t, newFakeAPI(), &buf)
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	recs := decodeStream(t, buf.Bytes())
	if len(recs) != 1 || !recs[0].eos {
		t.Fatalf("records: %+v", recs)
	}
	if recs[0].ts == 0 {
		t.Fatal("EOS timestamp not set")
	}
	// closing twice is a no-op
	if err := r.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestSymbolsEmittedOncePerAddress(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRecorder(t, newFakeAPI(), &buf)
	for i := 0; i < 50; i++ {
		r.Record(func() trace.Event { return &trace.GetCurrentContext{} })
	}
	r.Close()

	seen := make(map[uint64]bool)
	var total int
	for _, rec := range decodeStream(t, buf.Bytes()) {
		for _, d := range rec.defs {
			if seen[d.Addr] {
				t.Fatalf("address 0x%x defined twice", d.Addr)
			}
			if d.Sym == "" {
				t.Fatalf("empty symbol for 0x%x", d.Addr)
			}
			seen[d.Addr] = true
			total++
		}
	}
	if total == 0 {
		t.Fatal("no symbols recorded")
	}
}

func TestSymbolsPrecedeTheirRecord(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRecorder(t, newFakeAPI(), &buf)
	r.Record(func() trace.Event { return &trace.GetCurrentContext{} })
	r.Close()

	recs := decodeStream(t, buf.Bytes())
	known := make(map[uint64]bool)
	for _, rec := range recs {
		for _, d := range rec.defs {
			known[d.Addr] = true
		}
		if rec.ev != nil {
			for _, pc := range rec.env.Stack {
				if !known[pc] {
					t.Fatalf("stack address 0x%x used before defined", pc)
				}
			}
		}
	}
}

func TestShadowTracksSuccessfulCalls(t *testing.T) {
	var buf bytes.Buffer
	api := newFakeAPI()
	r := newTestRecorder(t, api, &buf)
	openCurrent(r, 0xD1, 0xC1)

	r.Record(func() trace.Event { return &trace.GenSources{Names: []uint32{1}} })
	r.Record(func() trace.Event { return &trace.Sourcef{Source: 1, Param: al.Gain, Value: 0.5} })

	s := r.Registry().Current().Source(1)
	if s == nil || s.Gain != 0.5 {
		t.Fatalf("shadow source: %+v", s)
	}
}

func TestErrorLatchAndDrain(t *testing.T) {
	var buf bytes.Buffer
	api := newFakeAPI()
	r := newTestRecorder(t, api, &buf)
	openCurrent(r, 0xD1, 0xC1)

	// a failing call latches the first error and discards the state change
	api.err = al.InvalidValue
	r.Record(func() trace.Event { return &trace.Sourcef{Source: 1, Param: al.Gain, Value: 2} })

	api.err = al.InvalidName
	r.Record(func() trace.Event { return &trace.Sourcef{Source: 1, Param: al.Gain, Value: 3} })

	if got := r.GetError(); got != al.InvalidValue {
		t.Fatalf("GetError %#x, want first latched error", got)
	}
	if got := r.GetError(); got != al.NoError {
		t.Fatalf("second GetError %#x, want clear latch", got)
	}
	r.Close()

	var triggered []al.Enum
	for _, ev := range events(decodeStream(t, buf.Bytes())) {
		if e, ok := ev.(*trace.ErrorTriggered); ok {
			triggered = append(triggered, e.Err)
		}
	}
	if len(triggered) != 1 || triggered[0] != al.InvalidValue {
		t.Fatalf("triggered events %v, want one for the first error", triggered)
	}
}

func TestPlaylistDrivesAsyncPolling(t *testing.T) {
	var buf bytes.Buffer
	api := newFakeAPI()
	r := newTestRecorder(t, api, &buf)
	openCurrent(r, 0xD1, 0xC1)

	r.Record(func() trace.Event { return &trace.GenSources{Names: []uint32{1}} })
	api.setSrcInt(1, al.SourceState, int32(al.Playing))
	r.Record(func() trace.Event { return &trace.SourcePlay{Source: 1} })

	if got := r.Registry().Current().Playlist(); len(got) != 1 {
		t.Fatalf("playlist %v after play", got)
	}

	// the source drains on its own; the next traced call's async pass
	// must notice and log the transition
	api.setSrcInt(1, al.SourceState, int32(al.Stopped))
	r.Record(func() trace.Event { return &trace.GetCurrentContext{Result: 0xC1} })

	if got := r.Registry().Current().Playlist(); len(got) != 0 {
		t.Fatalf("playlist %v after drain", got)
	}
	r.Close()

	var states []al.Enum
	for _, ev := range events(decodeStream(t, buf.Bytes())) {
		if e, ok := ev.(*trace.SourceStateEnum); ok && e.Param == al.SourceState {
			states = append(states, e.Value)
		}
	}
	if len(states) != 1 || states[0] != al.Stopped {
		t.Fatalf("derived states %v, want one stop", states)
	}
}

func TestAsyncPollReachesBackgroundContexts(t *testing.T) {
	var buf bytes.Buffer
	api := newFakeAPI()
	r := newTestRecorder(t, api, &buf)
	openCurrent(r, 0xD1, 0xC1)

	r.Record(func() trace.Event { return &trace.GenSources{Names: []uint32{1}} })
	api.setSrcInt(1, al.SourceState, int32(al.Playing))
	r.Record(func() trace.Event { return &trace.SourcePlay{Source: 1} })

	// another context takes over while source 1 keeps playing in 0xC1
	r.Record(func() trace.Event { return &trace.CreateContext{Device: 0xD1, Result: 0xC2} })
	r.Record(func() trace.Event { return &trace.MakeContextCurrent{Ctx: 0xC2, Result: true} })

	api.setSrcInt(1, al.SourceState, int32(al.Stopped))
	r.Record(func() trace.Event { return &trace.GetCurrentContext{Result: 0xC2} })

	if got := r.Registry().Context(0xC1).Playlist(); len(got) != 0 {
		t.Fatalf("playlist %v after drain in background context", got)
	}
	r.Close()

	var states []al.Enum
	for _, ev := range events(decodeStream(t, buf.Bytes())) {
		if e, ok := ev.(*trace.SourceStateEnum); ok && e.Param == al.SourceState {
			states = append(states, e.Value)
		}
	}
	if len(states) != 1 || states[0] != al.Stopped {
		t.Fatalf("derived states %v, want one stop from the background context", states)
	}
	if len(api.switched) == 0 {
		t.Fatal("background playlist polled without a context hop")
	}
	for _, id := range api.switched {
		if id != 0xC1 {
			t.Fatalf("hopped into context %#x, want 0xC1", id)
		}
	}
}

func TestNeverPlayedSourceSkippedByAsyncPoll(t *testing.T) {
	var buf bytes.Buffer
	api := newFakeAPI()
	r := newTestRecorder(t, api, &buf)
	openCurrent(r, 0xD1, 0xC1)

	r.Record(func() trace.Event { return &trace.GenSources{Names: []uint32{1, 2}} })
	api.setSrcInt(1, al.SourceState, int32(al.Playing))
	r.Record(func() trace.Event { return &trace.SourcePlay{Source: 1} })

	// source 2 drifts, but it never entered the playlist
	api.setSrcFlt(2, al.Gain, 0.25)
	r.Record(func() trace.Event { return &trace.GetCurrentContext{Result: 0xC1} })
	r.Close()

	for _, ev := range events(decodeStream(t, buf.Bytes())) {
		if e, ok := ev.(*trace.SourceStateFloat); ok && e.Source == 2 {
			t.Fatalf("idle source diffed by async pass: %+v", e)
		}
	}
	if got := r.Registry().Context(0xC1).Source(2).Gain; got != 1 {
		t.Fatalf("shadow gain %v moved without a poll", got)
	}
}

func TestDisconnectPolling(t *testing.T) {
	var buf bytes.Buffer
	api := newFakeAPI()
	api.extants[al.ExtDisconnect] = true
	api.devInt[0xD1] = map[al.Enum]int32{al.ALCConnected: 1}
	r := newTestRecorder(t, api, &buf)
	openCurrent(r, 0xD1, 0xC1)

	api.devInt[0xD1][al.ALCConnected] = 0
	r.Record(func() trace.Event { return &trace.GetCurrentContext{Result: 0xC1} })
	r.Close()

	var got []bool
	for _, ev := range events(decodeStream(t, buf.Bytes())) {
		if e, ok := ev.(*trace.DeviceStateBool); ok && e.Param == al.ALCConnected {
			got = append(got, e.Value)
		}
	}
	if len(got) != 1 || got[0] {
		t.Fatalf("connect events %v, want single disconnect", got)
	}
	if r.Registry().Device(0xD1) != nil && r.Registry().Device(0xD1).Connected {
		t.Fatal("shadow still connected")
	}
}

func TestCaptureSampleCountPolling(t *testing.T) {
	var buf bytes.Buffer
	api := newFakeAPI()
	api.devInt[0xCA] = map[al.Enum]int32{al.ALCCaptureSamples: 0}
	r := newTestRecorder(t, api, &buf)

	name := "mic"
	r.Record(func() trace.Event {
		return &trace.CaptureOpenDevice{
			Name: &name, Frequency: 44100,
			Format: al.FormatMono16, BufferSize: 4096, Result: 0xCA,
		}
	})
	r.Record(func() trace.Event { return &trace.CaptureStart{Device: 0xCA} })

	// samples accumulate between calls; the async pass picks up the level
	api.devInt[0xCA][al.ALCCaptureSamples] = 512
	r.Record(func() trace.Event { return &trace.GetCurrentContext{} })
	r.Record(func() trace.Event { return &trace.GetCurrentContext{} })
	r.Close()

	var levels []int32
	for _, ev := range events(decodeStream(t, buf.Bytes())) {
		if e, ok := ev.(*trace.DeviceStateInt); ok && e.Param == al.ALCCaptureSamples {
			levels = append(levels, e.Value)
		}
	}
	if len(levels) != 1 || levels[0] != 512 {
		t.Fatalf("capture level events %v, want one at 512", levels)
	}
	d := r.Registry().Device(0xCA)
	if d == nil || !d.Capture || d.CaptureSamples != 512 {
		t.Fatalf("shadow capture device: %+v", d)
	}
}

func TestCaptureDeviceDisconnectPolling(t *testing.T) {
	var buf bytes.Buffer
	api := newFakeAPI()
	api.extants[al.ExtDisconnect] = true
	api.devInt[0xCA] = map[al.Enum]int32{al.ALCConnected: 1}
	r := newTestRecorder(t, api, &buf)

	name := "mic"
	r.Record(func() trace.Event {
		return &trace.CaptureOpenDevice{
			Name: &name, Frequency: 44100,
			Format: al.FormatMono16, BufferSize: 4096, Result: 0xCA,
		}
	})

	// the microphone goes away between calls
	api.devInt[0xCA][al.ALCConnected] = 0
	r.Record(func() trace.Event { return &trace.CaptureStart{Device: 0xCA} })
	r.Close()

	var got []bool
	for _, ev := range events(decodeStream(t, buf.Bytes())) {
		if e, ok := ev.(*trace.DeviceStateBool); ok && e.Param == al.ALCConnected {
			got = append(got, e.Value)
		}
	}
	if len(got) != 1 || got[0] {
		t.Fatalf("connect events %v, want single disconnect", got)
	}
	d := r.Registry().Device(0xCA)
	if d == nil || !d.SupportsDisconnect || d.Connected {
		t.Fatalf("shadow capture device: %+v", d)
	}
}

func TestRecordAfterCloseStillInvokes(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRecorder(t, newFakeAPI(), &buf)
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	size := buf.Len()

	// the real call must go through even though tracing is over
	invoked := false
	r.Record(func() trace.Event {
		invoked = true
		return &trace.GetCurrentContext{}
	})
	if !invoked {
		t.Fatal("real call skipped after Close")
	}
	if buf.Len() != size {
		t.Fatalf("%d bytes appended after EOS", buf.Len()-size)
	}
}

func TestExtensionPolicyDeniesEffects(t *testing.T) {
	var buf bytes.Buffer
	api := newFakeAPI()
	api.extants[al.ExtEFX] = true
	r := newTestRecorder(t, api, &buf)

	if r.DeviceIsExtensionPresent(0xD1, al.ExtEFX) {
		t.Fatal("effects extension not denied by default policy")
	}
	if !r.DeviceIsExtensionPresent(0xD1, "ALC_ENUMERATION_EXT") {
		t.Fatal("unrelated probe not passed through")
	}
	r.Close()

	var results []bool
	for _, ev := range events(decodeStream(t, buf.Bytes())) {
		if e, ok := ev.(*trace.DeviceIsExtensionPresent); ok {
			results = append(results, e.Result)
		}
	}
	if len(results) != 2 || results[0] || !results[1] {
		t.Fatalf("traced probe results %v", results)
	}
}

func TestOpenDeviceSnapshot(t *testing.T) {
	var buf bytes.Buffer
	api := newFakeAPI()
	api.devInt[0xD1] = map[al.Enum]int32{al.ALCMajorVersion: 1, al.ALCMinorVersion: 1}
	api.devStr[0xD1] = map[al.Enum]string{
		al.ALCDeviceSpecifier: "Test Output",
		al.ALCExtensions:      "ALC_EXT_disconnect",
	}
	r := newTestRecorder(t, api, &buf)
	name := "default"
	r.Record(func() trace.Event { return &trace.OpenDevice{Name: &name, Result: 0xD1} })
	r.Close()

	evs := events(decodeStream(t, buf.Bytes()))
	open, ok := evs[0].(*trace.OpenDevice)
	if !ok {
		t.Fatalf("first event %T", evs[0])
	}
	if open.Major != 1 || open.Minor != 1 {
		t.Errorf("version %d.%d", open.Major, open.Minor)
	}
	if open.Specifier == nil || *open.Specifier != "Test Output" {
		t.Errorf("specifier %v", open.Specifier)
	}
}

func TestConcurrentRecordsSerialize(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRecorder(t, newFakeAPI(), &buf)

	const goroutines, per = 8, 25
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < per; i++ {
				r.Record(func() trace.Event { return &trace.GetCurrentContext{} })
			}
		}()
	}
	wg.Wait()
	r.Close()

	evs := events(decodeStream(t, buf.Bytes()))
	if len(evs) != goroutines*per {
		t.Fatalf("%d events, want %d", len(evs), goroutines*per)
	}
}

func TestTimestampsNeverRegress(t *testing.T) {
	var buf bytes.Buffer
	base := time.Unix(1000, 0)
	times := []time.Duration{5 * time.Millisecond, 3 * time.Millisecond, 9 * time.Millisecond}
	i := 0
	r, err := New(Config{
		API:    newFakeAPI(),
		Output: &buf,
		Now: func() time.Time {
			if i >= len(times) {
				return base.Add(times[len(times)-1])
			}
			d := times[i]
			i++
			return base.Add(d)
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r.Record(func() trace.Event { return &trace.GetCurrentContext{} })
	r.Record(func() trace.Event { return &trace.GetCurrentContext{} })
	r.Close()

	var last uint32
	for _, rec := range decodeStream(t, buf.Bytes()) {
		if rec.ev == nil {
			continue
		}
		if rec.env.Timestamp < last {
			t.Fatalf("timestamp regressed: %d after %d", rec.env.Timestamp, last)
		}
		last = rec.env.Timestamp
	}
}

// failAfter errors once the byte budget is spent.
type failAfter struct {
	n   int
	err error
}

func (f *failAfter) Write(p []byte) (int, error) {
	if f.n <= 0 {
		return 0, f.err
	}
	if len(p) > f.n {
		n := f.n
		f.n = 0
		return n, f.err
	}
	f.n -= len(p)
	return len(p), nil
}

func TestWriteFailurePolicyFiresOnce(t *testing.T) {
	calls := 0
	r, err := New(Config{
		API:          newFakeAPI(),
		Output:       &failAfter{n: 64, err: io.ErrClosedPipe},
		OnWriteError: func(error) { calls++ },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 10; i++ {
		r.Record(func() trace.Event { return &trace.GetCurrentContext{} })
	}
	if calls != 1 {
		t.Fatalf("OnWriteError fired %d times", calls)
	}
}
