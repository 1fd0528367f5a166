// Package float16 implements bit-level conversion between IEEE 754 single
// precision and a 16-bit half-precision encoding (1 sign, 5 exponent with
// bias 15, 10 mantissa bits).
//
// The codec is deliberately simple: the encoder truncates the mantissa
// (no rounding) and collapses anything below the half-precision normal
// range to zero, sign included. The decoder rebiases the exponent
// arithmetically for every non-zero input, so the encoded infinity
// pattern (exponent 11111) decodes to a large finite float32 rather
// than Inf. Callers that need IEEE-conformant rounding or subnormal
// support should use a full conversion library instead.
package float16

import (
	"errors"
	"fmt"
	"math"
)

// ErrLengthMismatch is returned by the slice forms when the destination
// and source lengths differ.
var ErrLengthMismatch = errors.New("float16: length mismatch")

// Bit layout constants for the two encodings.
const (
	signMask16 = 0x8000 // sign bit of the 16-bit encoding
	expMask16  = 0x7C00 // 5-bit exponent field, also the infinity code
	mantMask16 = 0x03FF // 10-bit mantissa field

	// Exponent rebias between float32 (bias 127) and float16 (bias 15).
	biasDelta = 127 - 15
)

// Encode converts a float32 to the 16-bit half-precision encoding.
//
// The float is reinterpreted bit-for-bit (never numerically cast) and its
// fields are repacked: exponent rebiased from 127 to 15, mantissa truncated
// to its top 10 bits. Values below the half-precision normal range encode
// to 0 (the sign is lost); values above it saturate to the signed infinity
// code. NaN inputs saturate the same way, losing their payload.
func Encode(f float32) uint16 {
	bits := math.Float32bits(f)

	sign := uint16(bits>>16) & signMask16
	exp := int32((bits>>23)&0xFF) - biasDelta
	mant := uint16(bits>>13) & mantMask16

	if exp <= 0 {
		// Underflow: zero, subnormals and tiny normals all collapse to +0.
		return 0
	}
	if exp >= 31 {
		// Overflow: saturate to the infinity code, sign preserved.
		return sign | expMask16
	}
	return sign | uint16(exp)<<10 | mant
}

// Decode converts a 16-bit half-precision encoding back to float32.
//
// Any input whose low 15 bits are zero (positive or negative zero) decodes
// to +0.0. Everything else is rebias-composed arithmetically: sign moved to
// bit 31, exponent rebiased from 15 to 127, mantissa shifted to the top of
// the 23-bit field, and the result reinterpreted as a float32. There is no
// special case for the exponent pattern 11111, so the encoded infinity
// 0x7C00 decodes to the finite value 65536.
func Decode(h uint16) float32 {
	if h&^uint16(signMask16) == 0 {
		return 0
	}

	sign := uint32(h&signMask16) << 16
	exp := uint32(h>>10)&0x1F + biasDelta
	mant := uint32(h & mantMask16)

	return math.Float32frombits(sign | exp<<23 | mant<<13)
}

// EncodeSlice encodes src element-wise into dst. The two slices must have
// the same length and must not overlap.
func EncodeSlice(dst []uint16, src []float32) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst %d, src %d", ErrLengthMismatch, len(dst), len(src))
	}
	for i, f := range src {
		dst[i] = Encode(f)
	}
	return nil
}

// DecodeSlice decodes src element-wise into dst. The two slices must have
// the same length and must not overlap.
func DecodeSlice(dst []float32, src []uint16) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst %d, src %d", ErrLengthMismatch, len(dst), len(src))
	}
	for i, h := range src {
		dst[i] = Decode(h)
	}
	return nil
}

// FromFloat32s encodes a slice into a freshly allocated buffer.
func FromFloat32s(f32s []float32) []uint16 {
	u16s := make([]uint16, len(f32s))
	for i, f := range f32s {
		u16s[i] = Encode(f)
	}
	return u16s
}

// ToFloat32s decodes a slice into a freshly allocated buffer.
func ToFloat32s(u16s []uint16) []float32 {
	f32s := make([]float32, len(u16s))
	for i, h := range u16s {
		f32s[i] = Decode(h)
	}
	return f32s
}
