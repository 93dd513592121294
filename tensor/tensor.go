// Copyright 2026 PicoRT Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for tensor layout descriptors in
// the picort runtime.
//
// A Layout describes how a caller-owned memory buffer is interpreted as a
// multi-dimensional array: scalar type, sizes, dimension order, and strides.
// It owns no memory and performs no allocation after construction; Resize
// reinterprets the existing buffer in place under the declared dynamism
// policy.
//
// Example:
//
//	sizes := []int{4, 4}
//	dimOrder := []uint8{0, 1}
//	strides := []int{4, 1}
//	buf := make([]byte, 4*4*4)
//
//	l := tensor.New(tensor.Float32, sizes, buf, dimOrder, strides, tensor.DynamicBound)
//	if err := l.Resize([]int{2, 8}); err != nil {
//	    // NotSupported: the new shape violates the dynamism policy
//	}
package tensor

import (
	"github.com/picoml/picort/internal/tensor"
)

// DataType is the runtime scalar type tag of a tensor's elements.
type DataType = tensor.DataType

// Scalar type constants.
const (
	Float32  DataType = tensor.Float32
	Float64  DataType = tensor.Float64
	Float16  DataType = tensor.Float16
	BFloat16 DataType = tensor.BFloat16
	Int32    DataType = tensor.Int32
	Int64    DataType = tensor.Int64
	Uint8    DataType = tensor.Uint8
	Bool     DataType = tensor.Bool
)

// ShapeDynamism declares whether and how a tensor's shape may change after
// construction.
type ShapeDynamism = tensor.ShapeDynamism

// Dynamism mode constants.
const (
	Static         ShapeDynamism = tensor.Static
	DynamicBound   ShapeDynamism = tensor.DynamicBound
	DynamicUnbound ShapeDynamism = tensor.DynamicUnbound
)

// Layout is the tensor layout descriptor. See the internal/tensor package
// for the full contract.
type Layout = tensor.Layout

// New constructs a layout descriptor over caller-owned storage.
var New = tensor.New
