// Package al defines the handle types, enum constants, and poll-surface
// interface shared by the recorder and the shadow registry.
//
// The core treats every Enum as an opaque numeric value on the wire; the
// constants here exist only because shadow tracking needs to know which
// parameters to poll and how wide their values are. Human-readable
// rendering of enums belongs to visitor implementations, not this package.
package al
