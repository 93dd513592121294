// Package etrace provides the profiling and debug-value instrumentation sink
// for the picort runtime core.
//
// A Tracer is an optional capability: runtime and delegate code calls the
// package-level hooks with whatever tracer it was handed, and a nil tracer
// turns every hook into a cheap no-op. The hooks never panic and never
// block, so they can be left in production code paths.
package etrace

import "time"

// DebugHandle identifies a node in the ahead-of-time lowered graph so that
// logged events can be linked back to it during post-processing. Delegates
// that identify their ops by name rather than handle pass UnsetDebugHandle.
type DebugHandle int64

// UnsetDebugHandle marks an event that carries no graph handle.
const UnsetDebugHandle DebugHandle = -1

// EventEntry is the opaque handle returned by BeginEvent and consumed by
// EndEvent. Its contents belong to the tracer that issued it; callers only
// pass it back.
type EventEntry struct {
	// Name is the tracer's copy of the event name.
	Name string
	// DebugID is the graph handle the event was opened with.
	DebugID DebugHandle
	// Start is when the event was opened.
	Start time.Time

	// id is the tracer-assigned sequence number. Zero for the sentinel entry
	// returned when no tracer is installed.
	id uint64
}

// Tracer is the instrumentation sink capability. Implementations must copy
// any metadata bytes they want to keep; callers are free to reuse the backing
// storage after a hook returns. (Event names are Go strings and therefore
// already immutable.)
//
// Implementations must not block: hooks are called from the execution hot
// path.
type Tracer interface {
	// BeginEvent opens a profiling event and returns its handle.
	BeginEvent(name string, debugID DebugHandle) EventEntry

	// EndEvent closes an event previously opened with BeginEvent, with
	// optional opaque metadata.
	EndEvent(entry EventEntry, metadata []byte)

	// LogEvent records a completed event with explicit timestamps. Used by
	// delegates that only learn their timings after the whole graph ran.
	LogEvent(name string, debugID DebugHandle, start, end time.Time, metadata []byte)

	// LogOutput records an intermediate output value produced by a delegate.
	LogOutput(name string, debugID DebugHandle, output EValue)
}
