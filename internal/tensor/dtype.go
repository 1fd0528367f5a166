// Package tensor provides the 2-D tensor container for the tinytensor
// library: a rows×cols contiguous buffer in one of three storage kinds
// (float32, half precision, int8) with conversions between them.
package tensor

// DataType identifies the storage representation of a tensor's elements.
type DataType int

// Supported storage types.
const (
	Float32 DataType = iota // IEEE 754 single precision
	Float16                 // 16-bit half precision, see internal/float16
	Int8                    // signed 8-bit, paired with an external scale
)

// Size returns the byte size of one element of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float16:
		return 2
	case Int8:
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
	case Float16:
		return "float16"
	case Int8:
		return "int8"
	default:
		return "unknown"
	}
}

// valid reports whether dt is one of the supported storage types.
func (dt DataType) valid() bool {
	return dt == Float32 || dt == Float16 || dt == Int8
}
