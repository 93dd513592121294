package tensor

import (
	"github.com/picoml/picort/errors"
	"github.com/picoml/picort/internal/dimorder"
)

// Resize reinterprets the buffer under a new shape without moving or
// reallocating it. The rank is immutable: newSizes must have exactly Dim()
// entries. Whether the new shape is accepted depends on the dynamism mode:
// static tensors only accept their current sizes, dynamic tensors accept any
// shape whose element count fits within NumelBound().
//
// On success the sizes storage, strides storage, and element count are
// updated together. On any failure the descriptor is left exactly as it was:
// strides are derived into the caller storage only after every policy check
// has passed, and sizes are committed last.
func (l *Layout) Resize(newSizes []int) error {
	if len(newSizes) != l.dim {
		return errors.NotSupportedf(
			"attempted to change the tensor rank which is immutable: old=%d, new=%d",
			l.dim, len(newSizes))
	}

	// Kernels unconditionally resize their out tensor to the computed output
	// shape, even when it already has the right shape. For a zero-rank out
	// tensor the rank check above is the whole story: there are no sizes left
	// to compare or update.
	if l.dim == 0 {
		return nil
	}

	switch l.dynamism {
	case Static:
		for i, s := range l.sizes {
			if newSizes[i] != s {
				return errors.NotSupportedf("attempted to resize a static tensor")
			}
		}

	case DynamicBound, DynamicUnbound:
		// DynamicUnbound growth past the initial capacity would need buffer
		// reallocation; both modes are treated as upper-bounded.
		newNumel := numelOf(newSizes)
		if newNumel > l.numelBound {
			return errors.NotSupportedf(
				"attempted to resize a bounded tensor with capacity of %d elements to %d elements",
				l.numelBound, newNumel)
		}
		if l.strides == nil {
			return errors.Internalf("strides storage is required for resize")
		}
		if l.dimOrder == nil {
			return errors.Internalf("dim order storage is required for resize")
		}
		if err := dimorder.ToStrides(newSizes, l.dimOrder, l.strides); err != nil {
			return err
		}

		l.numel = newNumel
		copy(l.sizes, newSizes)
	}
	return nil
}
