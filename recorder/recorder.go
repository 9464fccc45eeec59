package recorder

import (
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wavetap/wavetap/al"
	traceerr "github.com/wavetap/wavetap/errors"
	"github.com/wavetap/wavetap/shadow"
	"github.com/wavetap/wavetap/symbols"
	"github.com/wavetap/wavetap/trace"
	"github.com/wavetap/wavetap/wire"
)

// Recorder serializes every traced call into the log and keeps the
// shadow registry reconciled with the live implementation. One mutex
// spans the whole of each call: envelope capture, the real invocation,
// serialization, error polling and state diffing, so records land in
// the stream in the exact order the implementation saw the calls.
type Recorder struct {
	mu sync.Mutex

	api al.API
	w   *wire.Writer
	log *zap.Logger

	reg      *shadow.Registry
	syms     *symbols.Cache
	resolver symbols.Resolver

	now        func() time.Time
	start      time.Time
	stackDepth int
	overrides  map[string]bool
	onErr      func(error)

	closed   bool
	failed   bool
	lastTime uint32
}

// New validates cfg, writes the log header, and returns a ready
// Recorder.
func New(cfg Config) (*Recorder, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	c := cfg.withDefaults()

	r := &Recorder{
		api:        c.API,
		w:          wire.NewWriter(c.Output),
		log:        c.Logger,
		reg:        shadow.NewRegistry(),
		syms:       symbols.NewCache(),
		resolver:   c.Resolver,
		now:        c.Now,
		stackDepth: c.StackDepth,
		overrides:  c.ExtensionOverrides,
		onErr:      c.OnWriteError,
	}
	r.start = r.now()
	if r.onErr == nil {
		r.onErr = func(err error) {
			r.log.Fatal("log write failed", zap.Error(err))
		}
	}

	trace.WriteHeader(r.w)
	if err := r.w.Err(); err != nil {
		return nil, err
	}
	r.log.Info("recording started")
	return r, nil
}

// Registry exposes the shadow state, for tests and diagnostics. The
// caller must not retain it across concurrent Record calls.
func (r *Recorder) Registry() *shadow.Registry {
	return r.reg
}

// Record traces one real call. invoke runs the actual implementation
// call and returns the event describing it, results included; the lock
// is held across invoke so no other traced call can interleave. After
// the event is written the recorder polls error latches, folds the call
// into the shadow registry, diffs affected objects, and runs the async
// checks. After Close the real call still runs; it just goes untraced.
func (r *Recorder) Record(invoke func() trace.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		invoke()
		return
	}

	env := r.envelope()
	ev := invoke()
	r.enrich(ev)
	r.emit(&env, ev)
	failed := r.pollErrors(&env, ev)
	r.reg.Apply(ev, failed)
	r.reconcile(&env, ev)
	r.asyncChecks(&env)
	r.checkWrite()
}

// GetError drains the latched rendering error of the current context,
// tracing the drain. The real latch is already empty: the recorder
// polls it after every call, so the shadow latch is authoritative.
func (r *Recorder) GetError() al.Enum {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := al.NoError
	if c := r.reg.Current(); c != nil {
		result = c.ErrLatched
	}
	if r.closed {
		return result
	}
	env := r.envelope()
	ev := &trace.GetError{Result: result}
	r.emit(&env, ev)
	r.reg.Apply(ev, false)
	r.asyncChecks(&env)
	r.checkWrite()
	return result
}

// DeviceGetError drains the latched device error, tracing the drain.
func (r *Recorder) DeviceGetError(d al.DeviceID) al.Enum {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := al.ALCNoError
	if dev := r.reg.Device(d); dev != nil {
		result = dev.ErrLatched
	} else if d != 0 {
		result = al.ALCInvalidDevice
	}
	if r.closed {
		return result
	}
	env := r.envelope()
	ev := &trace.DeviceGetError{Device: d, Result: result}
	r.emit(&env, ev)
	r.reg.Apply(ev, false)
	r.asyncChecks(&env)
	r.checkWrite()
	return result
}

// IsExtensionPresent answers a rendering-plane extension probe through
// the extension policy and traces the probe.
func (r *Recorder) IsExtensionPresent(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := r.extensionSupported(0, name)
	if r.closed {
		return result
	}
	env := r.envelope()
	n := name
	r.emit(&env, &trace.IsExtensionPresent{Name: &n, Result: result})
	r.asyncChecks(&env)
	r.checkWrite()
	return result
}

// DeviceIsExtensionPresent answers a device-plane extension probe
// through the extension policy and traces the probe.
func (r *Recorder) DeviceIsExtensionPresent(d al.DeviceID, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := r.extensionSupported(d, name)
	if r.closed {
		return result
	}
	env := r.envelope()
	n := name
	r.emit(&env, &trace.DeviceIsExtensionPresent{Device: d, Name: &n, Result: result})
	r.asyncChecks(&env)
	r.checkWrite()
	return result
}

// PushScope opens a named annotation scope. Purely a log construct; no
// implementation call happens.
func (r *Recorder) PushScope(label string) {
	l := label
	r.annotate(&trace.PushScope{Label: &l})
}

// PopScope closes the innermost annotation scope.
func (r *Recorder) PopScope() {
	r.annotate(&trace.PopScope{})
}

// Message injects a free-form annotation into the log.
func (r *Recorder) Message(text string) {
	t := text
	r.annotate(&trace.Message{Text: &t})
}

// LabelDevice attaches or, with nil, clears a device's debug label.
func (r *Recorder) LabelDevice(d al.DeviceID, label *string) {
	r.annotate(&trace.DeviceLabel{Device: d, Label: label})
}

// LabelContext attaches or clears a context's debug label.
func (r *Recorder) LabelContext(c al.ContextID, label *string) {
	r.annotate(&trace.ContextLabel{Ctx: c, Label: label})
}

// LabelSource attaches or clears a source's debug label.
func (r *Recorder) LabelSource(src uint32, label *string) {
	r.annotate(&trace.SourceLabel{Source: src, Label: label})
}

// LabelBuffer attaches or clears a buffer's debug label.
func (r *Recorder) LabelBuffer(buf uint32, label *string) {
	r.annotate(&trace.BufferLabel{Buffer: buf, Label: label})
}

// annotate traces a log-only operation: no real call, no error polls.
func (r *Recorder) annotate(ev trace.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	env := r.envelope()
	r.emit(&env, ev)
	r.reg.Apply(ev, false)
	r.asyncChecks(&env)
	r.checkWrite()
}

// Close writes the end-of-stream marker and closes the output if it is
// closable. Further calls on the recorder become no-ops.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true

	trace.WriteEOS(r.w, r.timestamp())
	err := r.w.Err()

	if c, ok := r.w.Target().(io.Closer); ok {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = traceerr.Wrap(traceerr.PhaseRecord, traceerr.KindIO, cerr, "closing log output")
		}
	}
	r.log.Info("recording finished", zap.Int64("bytes", r.w.Offset()))
	return err
}

func (r *Recorder) timestamp() uint32 {
	ms := r.now().Sub(r.start) / time.Millisecond
	if ms < 0 {
		ms = 0
	}
	ts := uint32(ms)
	if ts < r.lastTime {
		ts = r.lastTime
	}
	r.lastTime = ts
	return ts
}

func (r *Recorder) envelope() trace.Envelope {
	env := trace.Envelope{
		Timestamp: r.timestamp(),
		Thread:    goid(),
	}
	if r.stackDepth > 0 {
		// skip envelope, the recorder entry point, and the adapter shim
		env.Stack = symbols.Capture(3, r.stackDepth)
	}
	return env
}

// emit writes any new symbol definitions the envelope's stack
// introduced, then the enveloped event.
func (r *Recorder) emit(env *trace.Envelope, ev trace.Event) {
	if len(env.Stack) > 0 {
		if defs := r.syms.Intern(env.Stack, r.resolver); len(defs) > 0 {
			trace.WriteNewSymbols(r.w, defs)
		}
	}
	trace.WriteEvent(r.w, env, ev)
}

// emitDerived writes a reconciler-produced event under the enclosing
// call's timestamp and thread, with no stack of its own.
func (r *Recorder) emitDerived(env *trace.Envelope, ev trace.Event) {
	derived := trace.Envelope{Timestamp: env.Timestamp, Thread: env.Thread}
	trace.WriteEvent(r.w, &derived, ev)
}

func (r *Recorder) extensionSupported(d al.DeviceID, name string) bool {
	if v, ok := r.overrides[name]; ok {
		return v
	}
	return r.api.IsExtensionPresent(d, name)
}

// checkWrite enforces the fail-fast policy on writer errors.
func (r *Recorder) checkWrite() {
	if r.failed {
		return
	}
	if err := r.w.Err(); err != nil {
		r.failed = true
		r.onErr(err)
	}
}
