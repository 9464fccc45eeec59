// Package symbols implements the deduplicated call-stack symbol cache
// shared in shape by the trace writer and reader.
//
// Symbol resolution is the one expensive step on the recording hot path,
// so the writer resolves each unique address once, emits the resolved text
// into the stream, and serves every recurrence from the cache. The reader
// rebuilds an identical cache purely from those recorded definitions, in
// causal order, without ever resolving anything itself.
package symbols
