// Package shadow mirrors the live audio API's object graph: devices,
// contexts, sources, buffers, the current context, and the set of
// sources believed to be playing. The recorder folds each successful
// call into the registry and the reconciler diffs polled values against
// it, logging only what actually changed.
package shadow
