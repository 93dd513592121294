// Copyright 2026 PicoRT Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package etrace provides the public API for picort's optional profiling and
// debug-value instrumentation.
//
// Runtime and delegate code calls the package-level hooks with whatever
// Tracer it was handed; a nil tracer makes every hook a no-op, so
// instrumentation can stay in production code paths:
//
//	entry := etrace.BeginEvent(tr, "fused_attention", 12)
//	runKernel()
//	etrace.EndEvent(tr, entry, nil)
//
// Two sinks ship with the runtime: Collector records events in memory and
// serializes them for the inspector CLI, and ZapTracer streams events to a
// structured logger.
package etrace

import (
	"github.com/picoml/picort/internal/etrace"
)

// DebugHandle links logged events back to nodes of the lowered graph.
type DebugHandle = etrace.DebugHandle

// UnsetDebugHandle marks an event that carries no graph handle.
const UnsetDebugHandle DebugHandle = etrace.UnsetDebugHandle

// EventEntry is the opaque handle returned by BeginEvent.
type EventEntry = etrace.EventEntry

// Tracer is the instrumentation sink capability.
type Tracer = etrace.Tracer

// EValue is the closed set of values a delegate may log as an intermediate
// output.
type EValue = etrace.EValue

// Tag identifies the variant held by an EValue.
type Tag = etrace.Tag

// EValue tags.
const (
	TagInt        Tag = etrace.TagInt
	TagBool       Tag = etrace.TagBool
	TagDouble     Tag = etrace.TagDouble
	TagTensor     Tag = etrace.TagTensor
	TagTensorList Tag = etrace.TagTensorList
)

// EValue constructors.
var (
	IntValue        = etrace.IntValue
	BoolValue       = etrace.BoolValue
	DoubleValue     = etrace.DoubleValue
	TensorValue     = etrace.TensorValue
	TensorListValue = etrace.TensorListValue
)

// Nil-safe hook functions.
var (
	BeginEvent = etrace.BeginEvent
	EndEvent   = etrace.EndEvent
	LogEvent   = etrace.LogEvent
	LogOutput  = etrace.LogOutput
)

// Collector is the in-memory tracer used for post-hoc inspection.
type Collector = etrace.Collector

// NewCollector creates an empty collector with a fresh run identifier.
var NewCollector = etrace.NewCollector

// Dump is the serializable result of a collected trace.
type Dump = etrace.Dump

// Event is one completed profiling event in a trace dump.
type Event = etrace.Event

// Output is one logged intermediate output value in a trace dump.
type Output = etrace.Output

// TensorRecord is the serializable summary of a logged tensor view.
type TensorRecord = etrace.TensorRecord

// ReadDump parses a dump previously written with Collector.WriteJSON.
var ReadDump = etrace.ReadDump

// ZapTracer streams trace events to a zap logger.
type ZapTracer = etrace.ZapTracer

// NewZapTracer creates a tracer writing to the given logger.
var NewZapTracer = etrace.NewZapTracer

// TimeScale names the unit timestamps in a trace are expressed in.
type TimeScale = etrace.TimeScale

// Recognized time scales.
const (
	ScaleNS     TimeScale = etrace.ScaleNS
	ScaleUS     TimeScale = etrace.ScaleUS
	ScaleMS     TimeScale = etrace.ScaleMS
	ScaleS      TimeScale = etrace.ScaleS
	ScaleCycles TimeScale = etrace.ScaleCycles
)

// ParseTimeScale validates a user-supplied scale name.
var ParseTimeScale = etrace.ParseTimeScale

// ConvertTime re-expresses a timestamp from one time scale in another.
var ConvertTime = etrace.ConvertTime
