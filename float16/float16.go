// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package float16 provides the public API for the half-precision codec:
// bit-level conversion between IEEE 754 single precision and a 16-bit
// encoding with 1 sign, 5 exponent (bias 15) and 10 mantissa bits.
//
// The encoder truncates (it does not round) and collapses values below
// the half-precision normal range to zero; the decoder rebiases the
// exponent arithmetically with no infinity/NaN special case. See
// internal/float16 for the exact semantics.
package float16

import (
	"github.com/born-ml/tinytensor/internal/float16"
)

// ErrLengthMismatch is returned by the slice forms when the destination
// and source lengths differ.
var ErrLengthMismatch = float16.ErrLengthMismatch

// Encode converts a float32 to the 16-bit half-precision encoding.
func Encode(f float32) uint16 {
	return float16.Encode(f)
}

// Decode converts a 16-bit half-precision encoding back to float32.
func Decode(h uint16) float32 {
	return float16.Decode(h)
}

// EncodeSlice encodes src element-wise into dst. The two slices must have
// the same length and must not overlap.
func EncodeSlice(dst []uint16, src []float32) error {
	return float16.EncodeSlice(dst, src)
}

// DecodeSlice decodes src element-wise into dst. The two slices must have
// the same length and must not overlap.
func DecodeSlice(dst []float32, src []uint16) error {
	return float16.DecodeSlice(dst, src)
}

// FromFloat32s encodes a slice into a freshly allocated buffer.
func FromFloat32s(f32s []float32) []uint16 {
	return float16.FromFloat32s(f32s)
}

// ToFloat32s decodes a slice into a freshly allocated buffer.
func ToFloat32s(u16s []uint16) []float32 {
	return float16.ToFloat32s(u16s)
}
