// Package dimorder converts a dimension-order permutation plus sizes into
// memory strides.
//
// A dim order lists logical dimension indices from outermost to innermost
// physical placement. The identity order [0, 1, ..., n-1] is plain row-major;
// [0, 2, 3, 1] is the channels-last layout for a 4-D tensor.
package dimorder

import "github.com/picoml/picort/errors"

// Identity reports whether dimOrder is the identity permutation, i.e. a
// contiguous row-major layout.
func Identity(dimOrder []uint8) bool {
	for i, d := range dimOrder {
		if int(d) != i {
			return false
		}
	}
	return true
}

// Validate checks that dimOrder is a permutation of [0, dim).
func Validate(dimOrder []uint8, dim int) error {
	if len(dimOrder) != dim {
		return errors.InvalidArgumentf(
			"dim order has %d entries for a rank-%d tensor", len(dimOrder), dim)
	}
	var seen [256]bool
	for _, d := range dimOrder {
		if int(d) >= dim {
			return errors.InvalidArgumentf(
				"dim order entry %d out of range for rank %d", d, dim)
		}
		if seen[d] {
			return errors.InvalidArgumentf("dim order repeats dimension %d", d)
		}
		seen[d] = true
	}
	return nil
}

// ToStrides derives the element strides for the given sizes and dim order,
// writing one stride per dimension into strides. The innermost physical
// dimension gets stride 1, and each outer physical dimension gets the stride
// of the dimension inside it times that dimension's size, so indexing through
// the permutation reproduces a contiguous row-major-equivalent layout.
//
// Zero-sized dimensions are treated as size 1 so that empty tensors still
// carry a coherent stride layout.
//
// All three slices must have length dim. Fails with an InvalidArgument kind
// if dimOrder is not a permutation of [0, dim); strides is not written on
// failure.
func ToStrides(sizes []int, dimOrder []uint8, strides []int) error {
	dim := len(sizes)
	if err := Validate(dimOrder, dim); err != nil {
		return err
	}
	if len(strides) != dim {
		return errors.InvalidArgumentf(
			"strides storage has %d entries for a rank-%d tensor", len(strides), dim)
	}
	toStridesNoCheck(sizes, dimOrder, strides)
	return nil
}

func toStridesNoCheck(sizes []int, dimOrder []uint8, strides []int) {
	dim := len(sizes)
	if dim == 0 {
		return
	}
	strides[dimOrder[dim-1]] = 1
	for i := dim - 2; i >= 0; i-- {
		inner := dimOrder[i+1]
		size := sizes[inner]
		if size == 0 {
			size = 1
		}
		strides[dimOrder[i]] = strides[inner] * size
	}
}
