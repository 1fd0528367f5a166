// Package quant implements symmetric linear quantization between float32
// and int8 buffers. The caller supplies the scale: quantize divides by it,
// clamps to the int8 range and truncates toward zero; dequantize is the
// plain multiply back. The transform is lossy, with per-element error
// bounded by the scale plus clamping error at saturation.
package quant

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// Caller contract violations surfaced by Quantize and Dequantize.
var (
	// ErrInvalidScale is returned when the scale is zero, NaN or infinite.
	ErrInvalidScale = errors.New("quant: invalid scale")

	// ErrLengthMismatch is returned when the destination and source
	// buffers have different lengths.
	ErrLengthMismatch = errors.New("quant: length mismatch")
)

// int8 bounds in the float domain. Clamping compares against these before
// the integer conversion, so an out-of-range input saturates instead of
// producing an implementation-defined wrap.
const (
	maxQuantized = 127.0
	minQuantized = -128.0
)

// checkScale rejects scales the transform cannot divide or multiply by
// meaningfully. Letting Inf/NaN propagate through the output would be a
// silent-corruption hazard, so this fails fast instead.
func checkScale(scale float32) error {
	if scale == 0 || math32.IsNaN(scale) || math32.IsInf(scale, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	return nil
}

// Quantize maps src element-wise into dst: dst[i] = int8(clamp(src[i]/scale)).
//
// Division happens in float32, the quotient is clamped to [-128, 127] in
// the float domain, then truncated toward zero. Element order is preserved
// and the slices must not overlap. The slices must have equal length and
// the scale must be finite and non-zero.
func Quantize(dst []int8, src []float32, scale float32) error {
	if err := checkScale(scale); err != nil {
		return err
	}
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst %d, src %d", ErrLengthMismatch, len(dst), len(src))
	}

	for i, f := range src {
		v := f / scale
		if v > maxQuantized {
			v = maxQuantized
		}
		if v < minQuantized {
			v = minQuantized
		}
		dst[i] = int8(v)
	}
	return nil
}

// Dequantize maps src element-wise into dst: dst[i] = float32(src[i]) * scale.
//
// No clamping is needed, the int8 domain is already bounded. The slices
// must have equal length and the scale must be finite and non-zero.
func Dequantize(dst []float32, src []int8, scale float32) error {
	if err := checkScale(scale); err != nil {
		return err
	}
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst %d, src %d", ErrLengthMismatch, len(dst), len(src))
	}

	for i, q := range src {
		dst[i] = float32(q) * scale
	}
	return nil
}

// QuantizeSlice is the allocating form of Quantize.
func QuantizeSlice(src []float32, scale float32) ([]int8, error) {
	dst := make([]int8, len(src))
	if err := Quantize(dst, src, scale); err != nil {
		return nil, err
	}
	return dst, nil
}

// DequantizeSlice is the allocating form of Dequantize.
func DequantizeSlice(src []int8, scale float32) ([]float32, error) {
	dst := make([]float32, len(src))
	if err := Dequantize(dst, src, scale); err != nil {
		return nil, err
	}
	return dst, nil
}
