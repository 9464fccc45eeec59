// Package trace defines the log file format: the header, the event tag
// space, the per-event envelope, and one struct per event variant with
// matching EncodeTo/DecodeFrom methods.
//
// A log file is the header followed by records. Most records are
// enveloped: tag, then timestamp/thread/stack envelope, then the
// event's payload fields. Two records are bare: NewSymbols deltas,
// which always precede the enveloped record whose stack introduced the
// addresses, and the final EOS marker.
package trace
