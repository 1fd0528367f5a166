package tensor

import (
	"fmt"

	"github.com/born-ml/tinytensor/internal/float16"
	"github.com/born-ml/tinytensor/internal/quant"
)

// Conversions always allocate a fresh destination tensor of the same
// shape; in-place conversion is not supported.

// ToFloat16 encodes a float32 tensor into half precision. Lossy: the
// mantissa is truncated and out-of-range magnitudes saturate, see
// internal/float16.
func (t *Tensor) ToFloat16() (*Tensor, error) {
	src, err := t.Float32s()
	if err != nil {
		return nil, fmt.Errorf("to float16: %w", err)
	}

	dst := make(float16Buffer, len(src))
	if err := float16.EncodeSlice(dst, src); err != nil {
		return nil, fmt.Errorf("to float16: %w", err)
	}
	return &Tensor{rows: t.rows, cols: t.cols, data: dst}, nil
}

// ToFloat32 decodes a half-precision tensor back to float32.
func (t *Tensor) ToFloat32() (*Tensor, error) {
	src, err := t.Float16s()
	if err != nil {
		return nil, fmt.Errorf("to float32: %w", err)
	}

	dst := make(float32Buffer, len(src))
	if err := float16.DecodeSlice(dst, src); err != nil {
		return nil, fmt.Errorf("to float32: %w", err)
	}
	return &Tensor{rows: t.rows, cols: t.cols, data: dst}, nil
}

// Quantize maps a float32 tensor to int8 with the given scale. The scale
// must be finite and non-zero; out-of-range quotients saturate.
func (t *Tensor) Quantize(scale float32) (*Tensor, error) {
	src, err := t.Float32s()
	if err != nil {
		return nil, fmt.Errorf("quantize: %w", err)
	}

	dst := make(int8Buffer, len(src))
	if err := quant.Quantize(dst, src, scale); err != nil {
		return nil, fmt.Errorf("quantize: %w", err)
	}
	return &Tensor{rows: t.rows, cols: t.cols, data: dst}, nil
}

// Dequantize maps an int8 tensor back to float32 with the given scale.
func (t *Tensor) Dequantize(scale float32) (*Tensor, error) {
	src, err := t.Int8s()
	if err != nil {
		return nil, fmt.Errorf("dequantize: %w", err)
	}

	dst := make(float32Buffer, len(src))
	if err := quant.Dequantize(dst, src, scale); err != nil {
		return nil, fmt.Errorf("dequantize: %w", err)
	}
	return &Tensor{rows: t.rows, cols: t.cols, data: dst}, nil
}
