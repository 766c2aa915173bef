// Package trace provides a tracing subsystem for the cstyle formatting engine.
//
// The trace package tracks formatter passes, per-file processing, and
// per-line events to help diagnose slow or misbehaving formatting runs.
//
// # Usage
//
// Build a tracer with New and install it with the formatter's
// SetTracer, which also hands it to the formatter's beautifier:
//
//	t, err := trace.New(trace.Config{Level: trace.LevelDebug, Mode: trace.ModeStream, OutputPath: "-"})
//
// The cstyle command line has no tracing flags.
//
// # Architecture
//
// The package provides several tracer implementations:
//
//   - NopTracer: Zero-overhead no-op tracer when disabled
//   - StreamTracer: Immediate write to output (file/stderr)
//   - RingTracer: Circular buffer for crash dumps
//   - MultiTracer: Combines multiple tracers
//
// # Levels
//
// Tracing verbosity is controlled by levels:
//
//   - LevelOff: No tracing
//   - LevelError: Only crash dumps
//   - LevelPhase: Driver and pass boundaries
//   - LevelDetail: Per-file events
//   - LevelDebug: Everything including per-line events
//
// # Scopes
//
// Events are categorized by scope:
//
//   - ScopeDriver: Top-level CLI operations
//   - ScopePass: Formatter/Beautifier/Enhancer passes
//   - ScopeFile: Per-file processing
//   - ScopeLine: Per-line level (most detailed)
//
// # Context Propagation
//
// Tracers are propagated through the formatting pipeline via context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "beautify", parentID)
//	defer span.End("")
package trace
