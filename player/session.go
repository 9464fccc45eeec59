package player

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/wavetap/wavetap/al"
	traceerr "github.com/wavetap/wavetap/errors"
	"github.com/wavetap/wavetap/symbols"
	"github.com/wavetap/wavetap/trace"
	"github.com/wavetap/wavetap/wire"
)

// State is a session's lifecycle position.
type State int

const (
	Reading State = iota
	Done
	Failed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Reading:
		return "reading"
	case Done:
		return "done"
	case Failed:
		return "failed"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Config assembles a playback session. Input is required.
type Config struct {
	// Input supplies the log bytes.
	Input io.Reader

	// Visitor receives decoded events. Nil means events are consumed
	// for their side effects (labels, progress) only.
	Visitor *Visitor

	// Logger receives the session's diagnostics. Defaults to nop.
	Logger *zap.Logger

	// Progress, if set, runs after each top-level record with the count
	// of records consumed so far and the byte offset reached.
	Progress func(records int, offset int64)

	// OnEnd, if set, runs exactly once when the session leaves the
	// Reading state. ok is true only for a clean end-of-stream;
	// lastTimestamp is the newest timestamp seen.
	OnEnd func(ok bool, lastTimestamp uint32)
}

// Session replays one log stream through a Visitor. It is single
// threaded: Run drives the whole stream on the calling goroutine.
type Session struct {
	r       *wire.Reader
	visitor *Visitor
	log     *zap.Logger

	progress func(records int, offset int64)
	onEnd    func(ok bool, lastTimestamp uint32)

	syms *symbols.Cache

	// threads remaps raw goroutine ids to small display ids issued in
	// first-appearance order.
	threads    map[uint64]uint64
	nextThread uint64

	deviceLabels  map[al.DeviceID]string
	contextLabels map[al.ContextID]string
	sourceLabels  map[uint32]string
	bufferLabels  map[uint32]string

	state      State
	scopeDepth int
	records    int
	lastTime   uint32
}

// NewSession validates cfg and returns a session ready to Run.
func NewSession(cfg Config) (*Session, error) {
	if cfg.Input == nil {
		return nil, traceerr.New(traceerr.PhaseOpen, traceerr.KindInvalidData, "config: Input is required")
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	v := cfg.Visitor
	if v == nil {
		v = &Visitor{}
	}
	return &Session{
		r:             wire.NewReader(cfg.Input),
		visitor:       v,
		log:           log,
		progress:      cfg.Progress,
		onEnd:         cfg.OnEnd,
		syms:          symbols.NewCache(),
		threads:       make(map[uint64]uint64),
		nextThread:    1,
		deviceLabels:  make(map[al.DeviceID]string),
		contextLabels: make(map[al.ContextID]string),
		sourceLabels:  make(map[uint32]string),
		bufferLabels:  make(map[uint32]string),
		state:         Reading,
	}, nil
}

// State returns the session's lifecycle position.
func (s *Session) State() State { return s.state }

// Records returns how many top-level records have been consumed.
func (s *Session) Records() int { return s.records }

// DeviceLabel returns the label last attached to a device, if any.
func (s *Session) DeviceLabel(d al.DeviceID) (string, bool) {
	l, ok := s.deviceLabels[d]
	return l, ok
}

// ContextLabel returns the label last attached to a context, if any.
func (s *Session) ContextLabel(c al.ContextID) (string, bool) {
	l, ok := s.contextLabels[c]
	return l, ok
}

// SourceLabel returns the label last attached to a source, if any.
func (s *Session) SourceLabel(src uint32) (string, bool) {
	l, ok := s.sourceLabels[src]
	return l, ok
}

// BufferLabel returns the label last attached to a buffer, if any.
func (s *Session) BufferLabel(buf uint32) (string, bool) {
	l, ok := s.bufferLabels[buf]
	return l, ok
}

// Run consumes the stream until EOS, a decode failure, or ctx
// cancellation. It returns nil only for a clean end of stream.
func (s *Session) Run(ctx context.Context) error {
	if s.state != Reading {
		return traceerr.New(traceerr.PhaseDecode, traceerr.KindClosed, "session already finished")
	}
	if err := trace.ReadHeader(s.r); err != nil {
		return s.fail(err)
	}

	for {
		select {
		case <-ctx.Done():
			s.state = Cancelled
			s.finish(false)
			return traceerr.Wrap(traceerr.PhaseDecode, traceerr.KindClosed, ctx.Err(), "playback cancelled")
		default:
		}

		tag := trace.Tag(s.r.U32())
		if err := s.r.Err(); err != nil {
			return s.fail(err)
		}

		switch tag {
		case trace.TagEOS:
			ts := s.r.U32()
			if err := s.r.Err(); err != nil {
				return s.fail(err)
			}
			if ts > s.lastTime {
				s.lastTime = ts
			}
			s.step()
			s.state = Done
			s.finish(true)
			s.log.Debug("stream complete",
				zap.Int("records", s.records),
				zap.Uint32("last_ms", s.lastTime))
			return nil

		case trace.TagNewSymbols:
			for _, d := range trace.ReadNewSymbols(s.r) {
				s.syms.Add(d.Addr, d.Sym)
			}
			if err := s.r.Err(); err != nil {
				return s.fail(err)
			}
			s.step()

		default:
			if err := s.playEvent(tag); err != nil {
				return s.fail(err)
			}
			s.step()
		}
	}
}

func (s *Session) playEvent(tag trace.Tag) error {
	offset := s.r.Offset() - 4 // start of this record's tag

	var env trace.Envelope
	env.DecodeFrom(s.r)
	if err := s.r.Err(); err != nil {
		return err
	}

	ev, ok := trace.New(tag)
	if !ok {
		return traceerr.UnknownTag(offset, uint32(tag))
	}
	ev.DecodeFrom(s.r)
	if err := s.r.Err(); err != nil {
		return err
	}

	if env.Timestamp > s.lastTime {
		s.lastTime = env.Timestamp
	}

	// pops surface at the depth they return to
	if tag == trace.TagPopScope && s.scopeDepth > 0 {
		s.scopeDepth--
	}

	ci := &CallInfo{
		Timestamp:  env.Timestamp,
		ThreadID:   s.displayThread(env.Thread),
		Frames:     s.resolveFrames(env.Stack),
		Offset:     offset,
		ScopeDepth: s.scopeDepth,
	}

	if tag == trace.TagPushScope {
		s.scopeDepth++
	}

	s.track(ev)
	s.visitor.dispatch(ci, ev)
	return nil
}

func (s *Session) displayThread(raw uint64) uint64 {
	if id, ok := s.threads[raw]; ok {
		return id
	}
	id := s.nextThread
	s.nextThread++
	s.threads[raw] = id
	return id
}

func (s *Session) resolveFrames(stack []uint64) []Frame {
	if len(stack) == 0 {
		return nil
	}
	frames := make([]Frame, len(stack))
	for i, pc := range stack {
		frames[i].Addr = pc
		if sym, ok := s.syms.Lookup(pc); ok {
			frames[i].Sym = sym
		}
	}
	return frames
}

// track maintains the label maps. Labels outlive nothing: destroying or
// deleting an object clears its entry so a recycled name starts clean.
func (s *Session) track(ev trace.Event) {
	switch e := ev.(type) {
	case *trace.DeviceLabel:
		if e.Label == nil {
			delete(s.deviceLabels, e.Device)
		} else {
			s.deviceLabels[e.Device] = *e.Label
		}
	case *trace.ContextLabel:
		if e.Label == nil {
			delete(s.contextLabels, e.Ctx)
		} else {
			s.contextLabels[e.Ctx] = *e.Label
		}
	case *trace.SourceLabel:
		if e.Label == nil {
			delete(s.sourceLabels, e.Source)
		} else {
			s.sourceLabels[e.Source] = *e.Label
		}
	case *trace.BufferLabel:
		if e.Label == nil {
			delete(s.bufferLabels, e.Buffer)
		} else {
			s.bufferLabels[e.Buffer] = *e.Label
		}

	case *trace.CloseDevice:
		if e.Result {
			delete(s.deviceLabels, e.Device)
		}
	case *trace.CaptureCloseDevice:
		if e.Result {
			delete(s.deviceLabels, e.Device)
		}
	case *trace.DestroyContext:
		delete(s.contextLabels, e.Ctx)
	case *trace.DeleteSources:
		for _, n := range e.Names {
			delete(s.sourceLabels, n)
		}
	case *trace.DeleteBuffers:
		for _, n := range e.Names {
			delete(s.bufferLabels, n)
		}
	}
}

func (s *Session) step() {
	s.records++
	if s.progress != nil {
		s.progress(s.records, s.r.Offset())
	}
}

func (s *Session) fail(err error) error {
	s.state = Failed
	s.finish(false)
	s.log.Warn("stream failed", zap.Int("records", s.records), zap.Error(err))
	return err
}

func (s *Session) finish(ok bool) {
	if s.onEnd != nil {
		s.onEnd(ok, s.lastTime)
		s.onEnd = nil
	}
}
