package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in trace processing the error occurred
type Phase string

const (
	PhaseOpen      Phase = "open"      // log file open / header
	PhaseRecord    Phase = "record"    // writer-side serialization
	PhaseDecode    Phase = "decode"    // reader-side deserialization
	PhaseReconcile Phase = "reconcile" // shadow state polling/diffing
)

// Kind categorizes the error
type Kind string

const (
	KindIO          Kind = "io"
	KindBadMagic    Kind = "bad_magic"
	KindBadVersion  Kind = "bad_version"
	KindUnknownTag  Kind = "unknown_tag"
	KindTruncated   Kind = "truncated"
	KindAllocation  Kind = "allocation"
	KindInvalidData Kind = "invalid_data"
	KindClosed      Kind = "closed"
)

// Error is the structured error type used throughout the module
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Offset int64 // byte offset in the log file, -1 if not applicable
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// New creates a structured error with no cause or offset.
func New(phase Phase, kind Kind, detail string) *Error {
	return &Error{Phase: phase, Kind: kind, Detail: detail, Offset: -1}
}

// Wrap wraps an existing error with phase and kind context.
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{Phase: phase, Kind: kind, Cause: cause, Detail: detail, Offset: -1}
}

// Convenience constructors for common error patterns

// IO creates an I/O failure error at the given log offset.
func IO(phase Phase, offset int64, cause error) *Error {
	return &Error{Phase: phase, Kind: KindIO, Offset: offset, Cause: cause}
}

// Truncated creates a short-read error at the given log offset.
func Truncated(offset int64, cause error) *Error {
	return &Error{Phase: PhaseDecode, Kind: KindTruncated, Offset: offset, Cause: cause, Detail: "short read"}
}

// BadMagic creates a header magic mismatch error.
func BadMagic(got uint32) *Error {
	return &Error{Phase: PhaseOpen, Kind: KindBadMagic, Offset: 0, Detail: fmt.Sprintf("magic 0x%08X", got)}
}

// BadVersion creates a header version mismatch error.
func BadVersion(got uint32) *Error {
	return &Error{Phase: PhaseOpen, Kind: KindBadVersion, Offset: 4, Detail: fmt.Sprintf("format version %d", got)}
}

// UnknownTag creates an unrecognized event tag error.
func UnknownTag(offset int64, tag uint32) *Error {
	return &Error{Phase: PhaseDecode, Kind: KindUnknownTag, Offset: offset, Detail: fmt.Sprintf("tag 0x%08X", tag)}
}

// InvalidData creates a malformed payload error.
func InvalidData(phase Phase, offset int64, detail string) *Error {
	return &Error{Phase: phase, Kind: KindInvalidData, Offset: offset, Detail: detail}
}
