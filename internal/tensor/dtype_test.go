package tensor

import "testing"

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Float16, 2},
		{BFloat16, 2},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
		{Bool, 1},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		str   string
	}{
		{Float32, "float32"},
		{Float64, "float64"},
		{Float16, "float16"},
		{BFloat16, "bfloat16"},
		{Int32, "int32"},
		{Int64, "int64"},
		{Uint8, "uint8"},
		{Bool, "bool"},
		{DataType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.str {
			t.Errorf("DataType(%d).String() = %q, want %q", int(tt.dtype), got, tt.str)
		}
	}
}

func TestDataTypeIsValid(t *testing.T) {
	for dt := Float32; dt < numDataTypes; dt++ {
		if !dt.IsValid() {
			t.Errorf("%s.IsValid() = false, want true", dt)
		}
	}

	for _, dt := range []DataType{-1, numDataTypes, 99} {
		if dt.IsValid() {
			t.Errorf("DataType(%d).IsValid() = true, want false", int(dt))
		}
	}
}
