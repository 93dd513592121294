package etrace

import (
	"time"

	"go.uber.org/zap"
)

// ZapTracer forwards trace events to a structured zap logger. It keeps no
// state besides a sequence counter, so it suits long-running processes where
// collecting a full in-memory dump would be wasteful.
type ZapTracer struct {
	logger *zap.Logger
	nextID uint64
}

// NewZapTracer creates a tracer writing to logger. A nil logger is replaced
// with a no-op logger so the tracer stays safe to call.
func NewZapTracer(logger *zap.Logger) *ZapTracer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapTracer{logger: logger}
}

// BeginEvent implements Tracer.
func (z *ZapTracer) BeginEvent(name string, debugID DebugHandle) EventEntry {
	z.nextID++
	return EventEntry{
		Name:    name,
		DebugID: debugID,
		Start:   time.Now(),
		id:      z.nextID,
	}
}

// EndEvent implements Tracer.
func (z *ZapTracer) EndEvent(entry EventEntry, metadata []byte) {
	if entry.id == 0 {
		return
	}
	z.logger.Info("delegate event",
		zap.String("name", entry.Name),
		zap.Int64("debug_id", int64(entry.DebugID)),
		zap.Time("start", entry.Start),
		zap.Duration("duration", time.Since(entry.Start)),
		zap.Int("metadata_len", len(metadata)))
}

// LogEvent implements Tracer.
func (z *ZapTracer) LogEvent(name string, debugID DebugHandle, start, end time.Time, metadata []byte) {
	z.logger.Info("delegate event",
		zap.String("name", name),
		zap.Int64("debug_id", int64(debugID)),
		zap.Time("start", start),
		zap.Duration("duration", end.Sub(start)),
		zap.Int("metadata_len", len(metadata)))
}

// LogOutput implements Tracer. Tensor outputs are logged as a shape/dtype
// summary with a bounded value preview, never the whole buffer.
func (z *ZapTracer) LogOutput(name string, debugID DebugHandle, output EValue) {
	z.logger.Info("delegate output",
		zap.String("name", name),
		zap.Int64("debug_id", int64(debugID)),
		zap.String("tag", output.Tag().String()),
		zap.Any("value", outputValue(output)))
}
