// Package trace provides the structured log of a swizzy run.
//
// The tracer records the pipeline stages (acquire, decode, group, render,
// report), the linter subprocess, and per-file rendering, so slow or stuck
// runs can be diagnosed without touching the report on stdout.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	swiftlint lint --reporter json | swizzy --trace=- --trace-level=stage
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Only fatal errors
//   - LevelStage: Driver and pipeline stage boundaries
//   - LevelDetail: Per-file events and subprocess heartbeats
//   - LevelDebug: Everything including per-record events
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeStage, "decode", parentID)
//	defer span.End("")
package trace
