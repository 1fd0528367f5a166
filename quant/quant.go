// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package quant provides the public API for symmetric int8 linear
// quantization: divide by a caller-supplied scale, clamp to [-128, 127]
// and truncate toward zero; dequantization is the multiply back.
package quant

import (
	"github.com/born-ml/tinytensor/internal/quant"
)

// Caller contract violations surfaced by Quantize and Dequantize.
var (
	// ErrInvalidScale is returned when the scale is zero, NaN or infinite.
	ErrInvalidScale = quant.ErrInvalidScale

	// ErrLengthMismatch is returned when the destination and source
	// buffers have different lengths.
	ErrLengthMismatch = quant.ErrLengthMismatch
)

// Quantize maps src element-wise into dst: dst[i] = int8(clamp(src[i]/scale)).
// The slices must have equal length and the scale must be finite and
// non-zero.
func Quantize(dst []int8, src []float32, scale float32) error {
	return quant.Quantize(dst, src, scale)
}

// Dequantize maps src element-wise into dst: dst[i] = float32(src[i]) * scale.
// The slices must have equal length and the scale must be finite and
// non-zero.
func Dequantize(dst []float32, src []int8, scale float32) error {
	return quant.Dequantize(dst, src, scale)
}

// QuantizeSlice is the allocating form of Quantize.
func QuantizeSlice(src []float32, scale float32) ([]int8, error) {
	return quant.QuantizeSlice(src, scale)
}

// DequantizeSlice is the allocating form of Dequantize.
func DequantizeSlice(src []int8, scale float32) ([]float32, error) {
	return quant.DequantizeSlice(src, scale)
}
