package dimorder

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	picoerr "github.com/picoml/picort/errors"
)

func TestToStrides(t *testing.T) {
	tests := []struct {
		name     string
		sizes    []int
		dimOrder []uint8
		want     []int
	}{
		{
			name:     "scalar",
			sizes:    []int{},
			dimOrder: []uint8{},
			want:     []int{},
		},
		{
			name:     "1d",
			sizes:    []int{7},
			dimOrder: []uint8{0},
			want:     []int{1},
		},
		{
			name:     "2d row major",
			sizes:    []int{2, 3},
			dimOrder: []uint8{0, 1},
			want:     []int{3, 1},
		},
		{
			name:     "2d column major",
			sizes:    []int{2, 3},
			dimOrder: []uint8{1, 0},
			want:     []int{1, 2},
		},
		{
			name:     "3d row major",
			sizes:    []int{2, 3, 4},
			dimOrder: []uint8{0, 1, 2},
			want:     []int{12, 4, 1},
		},
		{
			name:     "4d channels last",
			sizes:    []int{2, 3, 4, 5},
			dimOrder: []uint8{0, 2, 3, 1},
			want:     []int{60, 1, 15, 3},
		},
		{
			name:     "zero sized dim treated as one",
			sizes:    []int{2, 0, 4},
			dimOrder: []uint8{0, 1, 2},
			want:     []int{4, 4, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strides := make([]int, len(tt.sizes))
			if err := ToStrides(tt.sizes, tt.dimOrder, strides); err != nil {
				t.Fatalf("ToStrides() failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, strides); diff != "" {
				t.Errorf("strides mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToStridesInvalidDimOrder(t *testing.T) {
	tests := []struct {
		name     string
		sizes    []int
		dimOrder []uint8
	}{
		{"wrong length", []int{2, 3}, []uint8{0}},
		{"out of range", []int{2, 3}, []uint8{0, 2}},
		{"duplicate", []int{2, 3}, []uint8{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strides := []int{-1, -1}
			err := ToStrides(tt.sizes, tt.dimOrder, strides)
			if !errors.Is(err, picoerr.ErrInvalidArgument) {
				t.Fatalf("ToStrides() = %v, want invalid_argument kind", err)
			}
			// Failure must not touch the output storage.
			for i, s := range strides {
				if s != -1 {
					t.Errorf("strides[%d] written on failure: %d", i, s)
				}
			}
		})
	}
}

func TestToStridesShortStrideStorage(t *testing.T) {
	err := ToStrides([]int{2, 3}, []uint8{0, 1}, []int{0})
	if !errors.Is(err, picoerr.ErrInvalidArgument) {
		t.Fatalf("ToStrides() = %v, want invalid_argument kind", err)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate([]uint8{3, 0, 2, 1}, 4); err != nil {
		t.Errorf("Validate(permutation) failed: %v", err)
	}
	if err := Validate([]uint8{}, 0); err != nil {
		t.Errorf("Validate(empty) failed: %v", err)
	}
	if err := Validate([]uint8{0, 0}, 2); err == nil {
		t.Error("Validate(duplicate) should fail")
	}
}

func TestIdentity(t *testing.T) {
	if !Identity([]uint8{0, 1, 2}) {
		t.Error("identity order not recognized")
	}
	if !Identity(nil) {
		t.Error("empty order is trivially identity")
	}
	if Identity([]uint8{0, 2, 1}) {
		t.Error("permuted order reported as identity")
	}
}
