// Package wire implements the primitive binary codec shared by the trace
// writer and reader.
//
// All values are fixed-width little-endian regardless of host order.
// Integers and floats are bit-pattern preserving, so NaN payloads and
// denormals survive a round trip. Strings and blobs carry a u64 length
// prefix where 0xFFFFFFFFFFFFFFFF marks an absent (null) value, distinct
// from a present-but-empty value of length 0. Handles and pointers travel
// as opaque 64-bit values and are never dereferenced on decode.
//
// Both Writer and Reader latch their first failure: once a short write or
// short read occurs, every later call is a no-op and Err reports the
// original error with its byte offset. A trace session treats any latched
// error as unrecoverable.
package wire
