package etrace

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/picoml/picort/internal/tensor"
)

func TestEValueVariants(t *testing.T) {
	layout := tensor.New(tensor.Float32, []int{2}, make([]byte, 8), []uint8{0}, []int{1}, tensor.Static)

	tests := []struct {
		name  string
		value EValue
		tag   Tag
		check func(t *testing.T, v EValue)
	}{
		{"int", IntValue(-3), TagInt, func(t *testing.T, v EValue) {
			assert.Equal(t, int64(-3), v.Int())
		}},
		{"bool", BoolValue(true), TagBool, func(t *testing.T, v EValue) {
			assert.True(t, v.Bool())
		}},
		{"double", DoubleValue(2.5), TagDouble, func(t *testing.T, v EValue) {
			assert.Equal(t, 2.5, v.Double())
		}},
		{"tensor", TensorValue(layout), TagTensor, func(t *testing.T, v EValue) {
			assert.Same(t, layout, v.Tensor())
		}},
		{"tensor list", TensorListValue([]*tensor.Layout{layout, layout}), TagTensorList, func(t *testing.T, v EValue) {
			assert.Len(t, v.TensorList(), 2)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.tag, tt.value.Tag())
			tt.check(t, tt.value)
		})
	}
}

func TestEValueAccessorPanicsOnWrongTag(t *testing.T) {
	v := IntValue(1)

	assert.Panics(t, func() { v.Bool() })
	assert.Panics(t, func() { v.Double() })
	assert.Panics(t, func() { v.Tensor() })
	assert.Panics(t, func() { v.TensorList() })
	assert.NotPanics(t, func() { v.Int() })
}

func TestTagString(t *testing.T) {
	tests := []struct {
		tag Tag
		str string
	}{
		{TagInt, "int"},
		{TagBool, "bool"},
		{TagDouble, "double"},
		{TagTensor, "tensor"},
		{TagTensorList, "tensor_list"},
		{Tag(42), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.str, tt.tag.String())
	}
}
