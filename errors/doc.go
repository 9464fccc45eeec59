// Package errors provides structured error types for trace processing.
//
// Every failure surfaced by the wire codec, the recorder, and the playback
// session is an *Error carrying the processing phase, an error kind, and
// where available the byte offset in the log file. Errors compare with
// errors.Is on (Phase, Kind) so callers can match categories without
// string inspection:
//
//	if errors.Is(err, &traceerr.Error{Phase: traceerr.PhaseDecode, Kind: traceerr.KindTruncated}) {
//	    // log ended mid-record
//	}
package errors
