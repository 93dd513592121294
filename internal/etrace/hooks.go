package etrace

import "time"

// The package-level hooks are the sanctioned way to call a tracer: they
// tolerate an absent sink so call sites never have to branch.

// BeginEvent opens a profiling event on t. With no tracer installed it
// returns a sentinel entry that EndEvent ignores.
func BeginEvent(t Tracer, name string, debugID DebugHandle) EventEntry {
	if t == nil {
		// There is no active tracer; this value will be ignored.
		return EventEntry{}
	}
	return t.BeginEvent(name, debugID)
}

// EndEvent closes an event opened by BeginEvent. No-op without a tracer.
func EndEvent(t Tracer, entry EventEntry, metadata []byte) {
	if t == nil {
		return
	}
	t.EndEvent(entry, metadata)
}

// LogEvent records a completed event with explicit timestamps. No-op without
// a tracer.
func LogEvent(t Tracer, name string, debugID DebugHandle, start, end time.Time, metadata []byte) {
	if t == nil {
		return
	}
	t.LogEvent(name, debugID, start, end, metadata)
}

// LogOutput records an intermediate output value. No-op without a tracer.
func LogOutput(t Tracer, name string, debugID DebugHandle, output EValue) {
	if t == nil {
		return
	}
	t.LogOutput(name, debugID, output)
}
