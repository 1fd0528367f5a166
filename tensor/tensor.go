// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the tinytensor container:
// a 2-D tensor over one of three storage types (float32, half precision,
// int8) with conversions between them.
//
// Example:
//
//	t, _ := tensor.FromFloat32s(2, 2, []float32{0.5, -1.2, 3.4, 2.1})
//	q, _ := t.Quantize(0.1)   // int8 tensor
//	d, _ := q.Dequantize(0.1) // float32 approximation of t
//	fmt.Print(d)
package tensor

import (
	"github.com/born-ml/tinytensor/internal/tensor"
)

// Tensor is a 2-D container over a contiguous row-major buffer.
type Tensor = tensor.Tensor

// DataType identifies the storage representation of a tensor's elements.
type DataType = tensor.DataType

// Supported storage types.
const (
	Float32 DataType = tensor.Float32
	Float16 DataType = tensor.Float16
	Int8    DataType = tensor.Int8
)

// Caller contract violations surfaced by the container.
var (
	ErrInvalidShape  = tensor.ErrInvalidShape
	ErrDTypeMismatch = tensor.ErrDTypeMismatch
)

// New allocates a zeroed rows×cols tensor of the given storage type.
//
// Example:
//
//	t, err := tensor.New(2, 3, tensor.Float16)
func New(rows, cols int, dtype DataType) (*Tensor, error) {
	return tensor.New(rows, cols, dtype)
}

// FromFloat32s builds a float32 tensor from row-major data.
// The slice is copied.
func FromFloat32s(rows, cols int, data []float32) (*Tensor, error) {
	return tensor.FromFloat32s(rows, cols, data)
}

// FromInt8s builds an int8 tensor from row-major data. The slice is copied.
func FromInt8s(rows, cols int, data []int8) (*Tensor, error) {
	return tensor.FromInt8s(rows, cols, data)
}

// MemoryComparison renders the per-type storage cost of the given element
// count, one row per storage type.
func MemoryComparison(elements int) string {
	return tensor.MemoryComparison(elements)
}
