package etrace

import (
	"encoding/binary"
	"math"

	bfloat16 "github.com/d4l3k/go-bfloat16"
	"github.com/x448/float16"

	"github.com/picoml/picort/internal/tensor"
)

// previewLimit caps how many elements of a logged tensor are decoded into a
// trace record. Traces are for debugging, not for exporting tensors.
const previewLimit = 8

// tensorPreview decodes up to max leading elements of the layout's buffer as
// float64 for human-readable trace output. Buffers the descriptor cannot
// account for (nil data, or shorter than the current view) yield nil rather
// than a partial read.
func tensorPreview(l *tensor.Layout, max int) []float64 {
	data := l.Data()
	if data == nil || len(data) < l.Nbytes() {
		return nil
	}

	n := l.Numel()
	if n > max {
		n = max
	}
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	switch l.DType() {
	case tensor.Float32:
		for i := 0; i < n; i++ {
			bits := binary.LittleEndian.Uint32(data[i*4:])
			out[i] = float64(math.Float32frombits(bits))
		}
	case tensor.Float64:
		for i := 0; i < n; i++ {
			bits := binary.LittleEndian.Uint64(data[i*8:])
			out[i] = math.Float64frombits(bits)
		}
	case tensor.Float16:
		for i := 0; i < n; i++ {
			bits := binary.LittleEndian.Uint16(data[i*2:])
			out[i] = float64(float16.Frombits(bits).Float32())
		}
	case tensor.BFloat16:
		for i, f := range bfloat16.DecodeFloat32(data[:n*2]) {
			out[i] = float64(f)
		}
	case tensor.Int32:
		for i := 0; i < n; i++ {
			out[i] = float64(int32(binary.LittleEndian.Uint32(data[i*4:])))
		}
	case tensor.Int64:
		for i := 0; i < n; i++ {
			out[i] = float64(int64(binary.LittleEndian.Uint64(data[i*8:])))
		}
	case tensor.Uint8:
		for i := 0; i < n; i++ {
			out[i] = float64(data[i])
		}
	case tensor.Bool:
		for i := 0; i < n; i++ {
			if data[i] != 0 {
				out[i] = 1
			}
		}
	default:
		return nil
	}
	return out
}
