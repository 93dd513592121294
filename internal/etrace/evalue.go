package etrace

import (
	"fmt"

	"github.com/picoml/picort/internal/tensor"
)

// Tag identifies the variant held by an EValue.
type Tag int

// The closed set of loggable output types.
const (
	TagInt Tag = iota
	TagBool
	TagDouble
	TagTensor
	TagTensorList
)

// String returns a human-readable tag name.
func (t Tag) String() string {
	switch t {
	case TagInt:
		return "int"
	case TagBool:
		return "bool"
	case TagDouble:
		return "double"
	case TagTensor:
		return "tensor"
	case TagTensorList:
		return "tensor_list"
	default:
		return "unknown"
	}
}

// EValue is a tagged union over the small closed set of values a delegate may
// log as an intermediate output: integer, boolean, floating-point, a tensor
// view, or a sequence of tensor views. Accessors panic when called for the
// wrong tag.
type EValue struct {
	tag Tag

	i  int64
	b  bool
	d  float64
	t  *tensor.Layout
	ts []*tensor.Layout
}

// IntValue wraps an integer.
func IntValue(v int64) EValue {
	return EValue{tag: TagInt, i: v}
}

// BoolValue wraps a boolean.
func BoolValue(v bool) EValue {
	return EValue{tag: TagBool, b: v}
}

// DoubleValue wraps a floating-point value.
func DoubleValue(v float64) EValue {
	return EValue{tag: TagDouble, d: v}
}

// TensorValue wraps a tensor view. The value borrows the layout; it does not
// copy the underlying buffer.
func TensorValue(v *tensor.Layout) EValue {
	return EValue{tag: TagTensor, t: v}
}

// TensorListValue wraps a sequence of tensor views.
func TensorListValue(v []*tensor.Layout) EValue {
	return EValue{tag: TagTensorList, ts: v}
}

// Tag returns the variant held by the value.
func (v EValue) Tag() Tag {
	return v.tag
}

// Int returns the integer variant.
func (v EValue) Int() int64 {
	v.mustBe(TagInt)
	return v.i
}

// Bool returns the boolean variant.
func (v EValue) Bool() bool {
	v.mustBe(TagBool)
	return v.b
}

// Double returns the floating-point variant.
func (v EValue) Double() float64 {
	v.mustBe(TagDouble)
	return v.d
}

// Tensor returns the tensor-view variant.
func (v EValue) Tensor() *tensor.Layout {
	v.mustBe(TagTensor)
	return v.t
}

// TensorList returns the tensor-sequence variant.
func (v EValue) TensorList() []*tensor.Layout {
	v.mustBe(TagTensorList)
	return v.ts
}

func (v EValue) mustBe(want Tag) {
	if v.tag != want {
		panic(fmt.Sprintf("etrace: EValue holds %s, not %s", v.tag, want))
	}
}

// String returns a human-readable representation of the value.
func (v EValue) String() string {
	switch v.tag {
	case TagInt:
		return fmt.Sprintf("int(%d)", v.i)
	case TagBool:
		return fmt.Sprintf("bool(%t)", v.b)
	case TagDouble:
		return fmt.Sprintf("double(%g)", v.d)
	case TagTensor:
		return fmt.Sprintf("tensor(%s)", v.t)
	case TagTensorList:
		return fmt.Sprintf("tensor_list(len=%d)", len(v.ts))
	default:
		return "unknown"
	}
}
