// Package player replays a recorded log. A Session pulls records off
// the stream one at a time, rebuilds the symbol table from the deltas
// the writer emitted, remaps goroutine ids to small display ids, tracks
// debug labels and annotation scopes, and hands each event to a Visitor
// callback together with its stream context.
package player
