// Package recorder writes the call log. Every traced call funnels
// through one mutex that spans envelope capture, the real invocation,
// serialization, error-latch polling, and shadow-state reconciliation,
// so the log's order is the order the implementation executed.
//
// The recorder never trusts its own bookkeeping over the live
// implementation: after each call it polls the properties that call
// could have moved, diffs them against the shadow registry, and logs
// only genuine changes as derived events. A short async pass per call
// covers state that moves on its own, bounded by the set of sources
// believed to be playing.
package recorder
