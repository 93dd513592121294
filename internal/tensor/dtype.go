// Package tensor provides the tensor layout descriptor and in-place resize
// engine for the picort runtime core.
package tensor

// DataType is the runtime scalar type tag of a tensor's elements.
type DataType int

// Supported scalar types.
const (
	Float32 DataType = iota
	Float64
	Float16
	BFloat16
	Int32
	Int64
	Uint8
	Bool

	numDataTypes
)

// IsValid reports whether dt is a recognized scalar type tag. Descriptors may
// only be constructed with valid tags; an invalid tag indicates a build-time
// or codegen mismatch, not a data-dependent condition.
func (dt DataType) IsValid() bool {
	return dt >= 0 && dt < numDataTypes
}

// Size returns the byte size of one element of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Float16, BFloat16:
		return 2
	case Uint8, Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Float16:
		return "float16"
	case BFloat16:
		return "bfloat16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}
