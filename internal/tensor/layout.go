package tensor

import (
	"fmt"

	"github.com/picoml/picort/internal/dimorder"
)

// ShapeDynamism declares whether and how a tensor's shape may change after
// construction. The mode is fixed for the descriptor's lifetime.
type ShapeDynamism int

const (
	// Static shapes never change; a resize must match the existing sizes
	// exactly.
	Static ShapeDynamism = iota
	// DynamicBound shapes may vary as long as the element count stays within
	// the capacity the buffer was provisioned for.
	DynamicBound
	// DynamicUnbound is intended to allow growth past the initial capacity.
	// Reallocation-free growth is not supported, so it is currently policed
	// by the same bound as DynamicBound.
	// TODO: relax the bound once the memory planner can provision growable
	// buffers.
	DynamicUnbound
)

// String returns a human-readable mode name.
func (d ShapeDynamism) String() string {
	switch d {
	case Static:
		return "static"
	case DynamicBound:
		return "dynamic_bound"
	case DynamicUnbound:
		return "dynamic_unbound"
	default:
		return "unknown"
	}
}

// Layout describes how an externally supplied buffer is interpreted as a
// multi-dimensional array. It owns no memory: sizes, dim order, strides, and
// the data buffer are all caller-owned storage that must outlive the
// descriptor. The descriptor never dereferences, reallocates, or frees the
// buffer; Resize is purely a metadata reinterpretation of the fixed-capacity
// region.
//
// A Layout has exactly one logical owner. Sharing one descriptor across
// concurrent goroutines is not supported.
type Layout struct {
	sizes    []int   // caller-owned, mutated in place by Resize
	dimOrder []uint8 // caller-owned, read-only after construction
	strides  []int   // caller-owned, mutated in place by Resize
	data     []byte  // caller-owned element buffer, opaque to this core

	dim        int
	numel      int
	numelBound int

	dtype    DataType
	dynamism ShapeDynamism
}

// New constructs a layout descriptor over caller-owned storage. The rank is
// fixed to len(sizes) for the descriptor's lifetime, and the element count of
// the initial sizes becomes the capacity bound for dynamically shaped
// tensors.
//
// New panics if dtype is not a valid scalar type tag, or if a non-nil
// dimOrder is not a permutation of [0, rank): both indicate a build-time or
// codegen mismatch rather than a runtime condition. dimOrder and strides may
// be nil for tensors that are never resized; Resize reports an internal
// error if they are missing when needed.
func New(
	dtype DataType,
	sizes []int,
	data []byte,
	dimOrder []uint8,
	strides []int,
	dynamism ShapeDynamism,
) *Layout {
	if !dtype.IsValid() {
		panic(fmt.Sprintf("tensor: invalid scalar type tag %d", int(dtype)))
	}
	if dimOrder != nil {
		if err := dimorder.Validate(dimOrder, len(sizes)); err != nil {
			panic(fmt.Sprintf("tensor: %v", err))
		}
	}

	numel := numelOf(sizes)
	return &Layout{
		sizes:      sizes,
		dimOrder:   dimOrder,
		strides:    strides,
		data:       data,
		dim:        len(sizes),
		numel:      numel,
		numelBound: numel,
		dtype:      dtype,
		dynamism:   dynamism,
	}
}

// numelOf computes the number of elements for a size sequence. Zero-rank
// tensors (scalars) have one element.
func numelOf(sizes []int) int {
	n := 1
	for _, s := range sizes {
		n *= s
	}
	return n
}

// DType returns the scalar type tag.
func (l *Layout) DType() DataType {
	return l.dtype
}

// Dim returns the rank. It never changes after construction.
func (l *Layout) Dim() int {
	return l.dim
}

// Numel returns the current number of elements, the product of Sizes.
func (l *Layout) Numel() int {
	return l.numel
}

// NumelBound returns the maximum element count the underlying buffer was
// provisioned for. Equal to the element count of the construction-time sizes.
func (l *Layout) NumelBound() int {
	return l.numelBound
}

// Sizes returns the current dimension sizes. The slice aliases the
// caller-owned storage; treat it as read-only and use Resize to change it.
func (l *Layout) Sizes() []int {
	return l.sizes
}

// DimOrder returns the logical-to-physical dimension permutation, or nil if
// none was supplied.
func (l *Layout) DimOrder() []uint8 {
	return l.dimOrder
}

// Strides returns the current element strides, or nil if no stride storage
// was supplied.
func (l *Layout) Strides() []int {
	return l.strides
}

// Data returns the caller-owned element buffer. The descriptor itself never
// reads or writes it.
func (l *Layout) Data() []byte {
	return l.data
}

// Dynamism returns the shape dynamism mode.
func (l *Layout) Dynamism() ShapeDynamism {
	return l.dynamism
}

// ElementSize returns the byte size of one element.
func (l *Layout) ElementSize() int {
	return l.dtype.Size()
}

// Nbytes returns the byte size of the current view: Numel() * ElementSize().
func (l *Layout) Nbytes() int {
	return l.numel * l.dtype.Size()
}

// String returns a human-readable representation of the layout.
func (l *Layout) String() string {
	return fmt.Sprintf("Layout[%s]%v %s", l.dtype, l.sizes, l.dynamism)
}
