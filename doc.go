// Package wavetap records and replays call traces of a stateful audio
// rendering API.
//
// A recorder sits between an application and the live API, writing every
// call it sees to a compact binary stream together with timestamps, thread
// ids, and resolved stack frames. A player reads the stream back and
// dispatches each call to typed visitor callbacks, so tools can inspect,
// filter, and pretty-print a session after the fact.
//
// # Architecture Overview
//
// The module is organized into small packages with distinct responsibilities:
//
//	wavetap/             Root package documentation
//	├── wire/            Little-endian primitive codec with sticky errors
//	├── trace/           Trace file format: tags, envelopes, event payloads
//	├── symbols/         Return-address capture and delta-encoded interning
//	├── al/              API enums, ids, and the pollable API interface
//	├── shadow/          Mirror of device, context, source, and buffer state
//	├── recorder/        Live-call interception and trace emission
//	├── player/          Trace playback with visitor dispatch
//	├── errors/          Structured error types shared by all layers
//	└── cmd/tracedump/   CLI for dumping and browsing trace files
//
// # Quick Start
//
// Record a session:
//
//	rec, err := recorder.New(recorder.Config{API: liveAPI, Output: f})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rec.Close()
//
//	rec.Record(func() trace.Event {
//	    dev := openRealDevice(nil)
//	    return &trace.OpenDevice{Result: dev}
//	})
//
// Play it back:
//
//	sess, err := player.NewSession(player.Config{
//	    Input: f,
//	    Visitor: &player.Visitor{
//	        Default: func(ci *player.CallInfo, ev trace.Event) {
//	            fmt.Println(ci.Timestamp, ev.Tag())
//	        },
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = sess.Run(ctx)
//
// # Thread Safety
//
// Recorder is safe for concurrent use; every recorded call is serialized
// under a single lock so the trace stream stays consistent with the order
// the live API observed. Session is single-goroutine: one Run per session.
package wavetap
