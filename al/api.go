package al

// API is the poll surface the recorder uses to reconcile shadow state with
// the live implementation. The adapter layer that wraps the real library
// implements it; tests supply fakes.
//
// Getters return (value, ok) instead of mutating caller buffers: ok is
// false when the implementation cannot answer (no current context, unknown
// parameter, dead handle), and the reconciler skips the diff for that
// property rather than treating a zero as a real value.
type API interface {
	// Error drains the error latch of the current context (alGetError).
	Error() Enum
	// DeviceError drains the error latch of a device (alcGetError).
	DeviceError(d DeviceID) Enum

	// DeviceInt queries a single device integer (alcGetIntegerv, size 1).
	DeviceInt(d DeviceID, param Enum) (int32, bool)
	// DeviceString queries a device string (alcGetString). nil means
	// unanswerable.
	DeviceString(d DeviceID, param Enum) *string

	// SourceInt covers integer, boolean, and enum source properties.
	SourceInt(src uint32, param Enum) (int32, bool)
	SourceFloat(src uint32, param Enum) (float32, bool)
	SourceFloat3(src uint32, param Enum) ([3]float32, bool)

	BufferInt(buf uint32, param Enum) (int32, bool)

	// ListenerFloats queries count floats of a listener property of the
	// current context (gain is 1, position/velocity 3, orientation 6).
	ListenerFloats(param Enum, count int) ([]float32, bool)

	// ContextInt and ContextFloat query context-global state of the
	// current context (distance model, doppler, speed of sound).
	ContextInt(param Enum) (int32, bool)
	ContextFloat(param Enum) (float32, bool)
	// ContextString queries a static context string (version, renderer,
	// vendor, extensions). nil means unanswerable.
	ContextString(param Enum) *string

	// IsExtensionPresent asks the implementation about an extension on
	// the given device (zero DeviceID means the null device).
	IsExtensionPresent(d DeviceID, name string) bool

	// WithContext runs fn with the named context current, restoring the
	// previously current context before returning. It reports whether
	// the switch succeeded; fn does not run on failure. Source polls are
	// scoped to the current context, so this is how the recorder reaches
	// sources still playing in a context the application switched away
	// from.
	WithContext(c ContextID, fn func()) bool
}
