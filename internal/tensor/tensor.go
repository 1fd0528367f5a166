package tensor

import (
	"errors"
	"fmt"
)

// Caller contract violations surfaced by the container.
var (
	// ErrInvalidShape is returned for non-positive row or column counts.
	ErrInvalidShape = errors.New("tensor: invalid shape")

	// ErrDTypeMismatch is returned when an accessor or conversion is
	// applied to a tensor of the wrong storage type.
	ErrDTypeMismatch = errors.New("tensor: data type mismatch")
)

// buffer is the tagged variant over the three storage kinds. Exactly one
// concrete type exists per DataType, so a type switch over buffer is an
// exhaustive per-type dispatch.
type buffer interface {
	dtype() DataType
	len() int
}

type float32Buffer []float32

func (b float32Buffer) dtype() DataType { return Float32 }
func (b float32Buffer) len() int        { return len(b) }

type float16Buffer []uint16

func (b float16Buffer) dtype() DataType { return Float16 }
func (b float16Buffer) len() int        { return len(b) }

type int8Buffer []int8

func (b int8Buffer) dtype() DataType { return Int8 }
func (b int8Buffer) len() int        { return len(b) }

// Tensor is a 2-D container over a contiguous row-major buffer of one of
// the three storage types. The buffer is garbage-collected with the
// tensor; there is no explicit free.
type Tensor struct {
	rows int
	cols int
	data buffer
}

// New allocates a zeroed rows×cols tensor of the given storage type.
func New(rows, cols int, dtype DataType) (*Tensor, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d (dimensions must be > 0)", ErrInvalidShape, rows, cols)
	}
	if !dtype.valid() {
		return nil, fmt.Errorf("tensor: unknown data type %d", int(dtype))
	}

	n := rows * cols
	var data buffer
	switch dtype {
	case Float32:
		data = make(float32Buffer, n)
	case Float16:
		data = make(float16Buffer, n)
	case Int8:
		data = make(int8Buffer, n)
	}

	return &Tensor{rows: rows, cols: cols, data: data}, nil
}

// FromFloat32s builds a float32 tensor from row-major data. The slice is
// copied, so the caller keeps ownership of its buffer.
func FromFloat32s(rows, cols int, data []float32) (*Tensor, error) {
	t, err := New(rows, cols, Float32)
	if err != nil {
		return nil, err
	}
	if len(data) != t.NumElements() {
		return nil, fmt.Errorf("%w: %dx%d needs %d elements, got %d",
			ErrInvalidShape, rows, cols, t.NumElements(), len(data))
	}
	copy(t.data.(float32Buffer), data)
	return t, nil
}

// FromInt8s builds an int8 tensor from row-major data. The slice is copied.
func FromInt8s(rows, cols int, data []int8) (*Tensor, error) {
	t, err := New(rows, cols, Int8)
	if err != nil {
		return nil, err
	}
	if len(data) != t.NumElements() {
		return nil, fmt.Errorf("%w: %dx%d needs %d elements, got %d",
			ErrInvalidShape, rows, cols, t.NumElements(), len(data))
	}
	copy(t.data.(int8Buffer), data)
	return t, nil
}

// Rows returns the row count.
func (t *Tensor) Rows() int { return t.rows }

// Cols returns the column count.
func (t *Tensor) Cols() int { return t.cols }

// DType returns the tensor's storage type.
func (t *Tensor) DType() DataType { return t.data.dtype() }

// NumElements returns the total number of elements (rows×cols).
func (t *Tensor) NumElements() int { return t.data.len() }

// MemoryBytes returns the size of the backing buffer in bytes.
func (t *Tensor) MemoryBytes() int { return t.data.len() * t.DType().Size() }

// Float32s returns the backing float32 buffer in row-major order.
// The slice aliases the tensor's storage; writes are visible to it.
func (t *Tensor) Float32s() ([]float32, error) {
	b, ok := t.data.(float32Buffer)
	if !ok {
		return nil, fmt.Errorf("%w: have %s, want %s", ErrDTypeMismatch, t.DType(), Float32)
	}
	return b, nil
}

// Float16s returns the backing half-precision buffer in row-major order.
// The slice aliases the tensor's storage; writes are visible to it.
func (t *Tensor) Float16s() ([]uint16, error) {
	b, ok := t.data.(float16Buffer)
	if !ok {
		return nil, fmt.Errorf("%w: have %s, want %s", ErrDTypeMismatch, t.DType(), Float16)
	}
	return b, nil
}

// Int8s returns the backing int8 buffer in row-major order.
// The slice aliases the tensor's storage; writes are visible to it.
func (t *Tensor) Int8s() ([]int8, error) {
	b, ok := t.data.(int8Buffer)
	if !ok {
		return nil, fmt.Errorf("%w: have %s, want %s", ErrDTypeMismatch, t.DType(), Int8)
	}
	return b, nil
}
