package float16

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	x448 "github.com/x448/float16"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want uint16
	}{
		{"one", 1.0, 0x3C00},
		{"negative two", -2.0, 0xC000},
		{"half", 0.5, 0x3800},
		{"zero", 0.0, 0x0000},
		{"max finite half", 65504, 0x7BFF},
		{"smallest normal half", float32(math.Exp2(-14)), 0x0400},
		{"overflow to infinity code", 65536, 0x7C00},
		{"negative overflow", -1e9, 0xFC00},
		{"positive infinity", float32(math.Inf(1)), 0x7C00},
		{"negative infinity", float32(math.Inf(-1)), 0xFC00},
		{"underflow to zero", 1e-8, 0x0000},
		{"subnormal range collapses", float32(math.Exp2(-15)), 0x0000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.in), "Encode(%v)", tt.in)
		})
	}
}

func TestEncodeZeroCollapse(t *testing.T) {
	// The underflow branch drops the sign: -0 and tiny negatives encode
	// to +0, same as their positive counterparts.
	negZero := math.Float32frombits(0x80000000)
	assert.Equal(t, uint16(0), Encode(negZero))
	assert.Equal(t, uint16(0), Encode(float32(-math.Exp2(-15))))
}

func TestEncodeTruncatesMantissa(t *testing.T) {
	// 1.0 plus 13 low mantissa bits: round-to-nearest would bump the
	// half mantissa to 1, truncation must not.
	f := math.Float32frombits(0x3F801FFF)
	assert.Equal(t, uint16(0x3C00), Encode(f))

	// One bit higher lands in the kept top-10 window.
	f = math.Float32frombits(0x3F803FFF)
	assert.Equal(t, uint16(0x3C01), Encode(f))
}

func TestEncodeNaNSaturates(t *testing.T) {
	// NaN has the all-ones float32 exponent, so it takes the overflow
	// branch and the payload is lost.
	assert.Equal(t, uint16(0x7C00), Encode(float32(math.NaN())))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   uint16
		want float32
	}{
		{"zero", 0x0000, 0.0},
		{"negative zero maps to positive", 0x8000, 0.0},
		{"one", 0x3C00, 1.0},
		{"negative two", 0xC000, -2.0},
		{"half", 0x3800, 0.5},
		{"max finite half", 0x7BFF, 65504},
		{"smallest normal half", 0x0400, float32(math.Exp2(-14))},
		// The exponent pattern 11111 is rebiased like any other, so the
		// infinity code decodes to a finite 2^16.
		{"infinity code is finite", 0x7C00, 65536},
		{"negative infinity code", 0xFC00, -65536},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.in), "Decode(%#04x)", tt.in)
		})
	}
}

func TestDecodeSubnormalBitPattern(t *testing.T) {
	// Half subnormals are rebias-composed like normals (no special case),
	// which pins this exact bit pattern rather than the IEEE value.
	assert.Equal(t, math.Float32frombits(0x38002000), Decode(0x0001))
}

func TestDecodeMatchesReferenceOnNormals(t *testing.T) {
	// Over the normal exponent range the arithmetic rebias agrees with a
	// full IEEE implementation bit for bit. Outside it (zero aside) the
	// two deliberately diverge.
	for exp := uint16(1); exp <= 30; exp++ {
		for _, mant := range []uint16{0x000, 0x001, 0x155, 0x2AA, 0x3FF} {
			for _, sign := range []uint16{0x0000, 0x8000} {
				h := sign | exp<<10 | mant
				require.Equal(t, x448.Frombits(h).Float32(), Decode(h), "h=%#04x", h)
			}
		}
	}
}

func TestRoundTripWithinHalfPrecision(t *testing.T) {
	// decode(encode(x)) loses at most the truncated mantissa tail:
	// relative error strictly below 2^-10 for normal-range values.
	const maxRelErr = 1.0 / 1024

	for exp := -14; exp <= 15; exp++ {
		for _, frac := range []float64{1.0, 1.25, 1.5, 1.999, 1.0009765625} {
			for _, sign := range []float64{1, -1} {
				x := float32(sign * frac * math.Exp2(float64(exp)))
				got := Decode(Encode(x))

				relErr := math.Abs(float64(got-x)) / math.Abs(float64(x))
				assert.Less(t, relErr, maxRelErr, "x=%v got=%v", x, got)
				assert.Equal(t, math.Signbit(float64(x)), math.Signbit(float64(got)), "sign of %v", x)
			}
		}
	}
}

func TestDecodeIsPure(t *testing.T) {
	for _, h := range []uint16{0x0000, 0x3C00, 0xC000, 0x7BFF, 0x0001} {
		first := Decode(h)
		second := Decode(h)
		assert.Equal(t, first, second, "Decode(%#04x) not deterministic", h)
	}
}

func TestSliceForms(t *testing.T) {
	src := []float32{0.0, 1.0, -2.0, 65504}

	dst := make([]uint16, len(src))
	require.NoError(t, EncodeSlice(dst, src))
	assert.Equal(t, []uint16{0x0000, 0x3C00, 0xC000, 0x7BFF}, dst)

	back := make([]float32, len(dst))
	require.NoError(t, DecodeSlice(back, dst))
	if diff := cmp.Diff(src, back); diff != "" {
		t.Errorf("decode round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSliceFormsLengthMismatch(t *testing.T) {
	err := EncodeSlice(make([]uint16, 2), make([]float32, 3))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLengthMismatch))

	err = DecodeSlice(make([]float32, 3), make([]uint16, 2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLengthMismatch))
}

func TestAllocatingForms(t *testing.T) {
	src := []float32{0.5, -1.5, 2.0}
	u16s := FromFloat32s(src)
	require.Len(t, u16s, len(src))

	back := ToFloat32s(u16s)
	require.Len(t, back, len(src))
	assert.Equal(t, src, back, "these values are exactly representable in half precision")
}
