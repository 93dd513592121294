package etrace

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/picoml/picort/internal/tensor"
)

// Event is one completed profiling event in a trace dump.
type Event struct {
	Name     string      `json:"name,omitempty"`
	DebugID  DebugHandle `json:"debug_id"`
	Start    time.Time   `json:"start"`
	End      time.Time   `json:"end"`
	Metadata []byte      `json:"metadata,omitempty"`
}

// Duration returns the event's elapsed time.
func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// TensorRecord is the serializable summary of a logged tensor view. The
// buffer itself is not exported, only a bounded value preview.
type TensorRecord struct {
	DType   string    `json:"dtype"`
	Sizes   []int     `json:"sizes"`
	Numel   int       `json:"numel"`
	Preview []float64 `json:"preview,omitempty"`
}

// Output is one logged intermediate output value in a trace dump. Value
// holds the JSON form of the variant: a number, a bool, a TensorRecord, or a
// list of TensorRecords.
type Output struct {
	Name    string      `json:"name,omitempty"`
	DebugID DebugHandle `json:"debug_id"`
	Tag     string      `json:"tag"`
	Value   any         `json:"value"`
}

// Dump is the serializable result of a collected trace.
type Dump struct {
	RunID   string   `json:"run_id"`
	Events  []Event  `json:"events"`
	Outputs []Output `json:"outputs,omitempty"`
}

// Collector is an in-memory Tracer that records events and logged outputs
// for post-hoc inspection, e.g. by the inspector CLI. Like the descriptors it
// observes, a Collector has a single logical owner and does no internal
// locking.
type Collector struct {
	runID   string
	nowFn   func() time.Time
	nextID  uint64
	events  []Event
	outputs []Output
}

// NewCollector creates an empty collector with a fresh run identifier.
func NewCollector() *Collector {
	return &Collector{
		runID: uuid.NewString(),
		nowFn: time.Now,
	}
}

// RunID returns the identifier tying all events of this collector together.
func (c *Collector) RunID() string {
	return c.runID
}

// BeginEvent implements Tracer.
func (c *Collector) BeginEvent(name string, debugID DebugHandle) EventEntry {
	c.nextID++
	return EventEntry{
		Name:    name,
		DebugID: debugID,
		Start:   c.nowFn(),
		id:      c.nextID,
	}
}

// EndEvent implements Tracer. Entries not issued by a tracer (the sentinel
// returned when no sink was installed) are ignored.
func (c *Collector) EndEvent(entry EventEntry, metadata []byte) {
	if entry.id == 0 {
		return
	}
	c.events = append(c.events, Event{
		Name:     entry.Name,
		DebugID:  entry.DebugID,
		Start:    entry.Start,
		End:      c.nowFn(),
		Metadata: copyBytes(metadata),
	})
}

// LogEvent implements Tracer.
func (c *Collector) LogEvent(name string, debugID DebugHandle, start, end time.Time, metadata []byte) {
	c.events = append(c.events, Event{
		Name:     name,
		DebugID:  debugID,
		Start:    start,
		End:      end,
		Metadata: copyBytes(metadata),
	})
}

// LogOutput implements Tracer.
func (c *Collector) LogOutput(name string, debugID DebugHandle, output EValue) {
	c.outputs = append(c.outputs, Output{
		Name:    name,
		DebugID: debugID,
		Tag:     output.Tag().String(),
		Value:   outputValue(output),
	})
}

// Dump returns a snapshot of everything recorded so far.
func (c *Collector) Dump() Dump {
	return Dump{
		RunID:   c.runID,
		Events:  append([]Event(nil), c.events...),
		Outputs: append([]Output(nil), c.outputs...),
	}
}

// WriteJSON serializes the current dump to w.
func (c *Collector) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c.Dump())
}

// ReadDump parses a dump previously written with WriteJSON.
func ReadDump(r io.Reader) (Dump, error) {
	var d Dump
	err := json.NewDecoder(r).Decode(&d)
	return d, err
}

func outputValue(v EValue) any {
	switch v.Tag() {
	case TagInt:
		return v.Int()
	case TagBool:
		return v.Bool()
	case TagDouble:
		return v.Double()
	case TagTensor:
		return tensorRecord(v.Tensor())
	case TagTensorList:
		list := v.TensorList()
		records := make([]TensorRecord, len(list))
		for i, l := range list {
			records[i] = tensorRecord(l)
		}
		return records
	default:
		return nil
	}
}

func tensorRecord(l *tensor.Layout) TensorRecord {
	return TensorRecord{
		DType:   l.DType().String(),
		Sizes:   append([]int(nil), l.Sizes()...),
		Numel:   l.Numel(),
		Preview: tensorPreview(l, previewLimit),
	}
}

// copyBytes detaches metadata from the caller's storage; sinks must not
// retain borrowed buffers past the hook call.
func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
