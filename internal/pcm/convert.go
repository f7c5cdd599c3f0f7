// SPDX-License-Identifier: EPL-2.0

package pcm

import "math"

// scale returns the full-scale magnitude of a signed integer sample.
func scale(bitDepth int) float64 {
	return math.Ldexp(1, bitDepth-1)
}

// FromInt normalises a signed integer sample of the given depth.
func FromInt(v int, bitDepth int) float64 {
	return float64(v) / scale(bitDepth)
}

// ToInt converts a normalised sample to a signed integer of the given depth,
// rounding to nearest even and clipping to the representable range.
func ToInt(x float64, bitDepth int) int {
	full := scale(bitDepth)
	v := math.RoundToEven(x * full)

	if v > full-1 {
		v = full - 1
	} else if v < -full {
		v = -full
	}

	return int(v)
}

// Quantize rounds x to the precision of bitDepth. A zero depth leaves x alone.
func Quantize(x float64, bitDepth int) float64 {
	if bitDepth <= 0 {
		return x
	}

	return FromInt(ToInt(x, bitDepth), bitDepth)
}

// SignExtend reinterprets the low bitDepth bits of v as a two's complement
// value. Decoders that hand back raw unsigned words go through it.
func SignExtend(v int, bitDepth int) int {
	if bitDepth <= 0 || bitDepth >= 64 {
		return v
	}

	shift := 64 - bitDepth
	return int(int64(v) << shift >> shift)
}

func FromInt16(v int16) float64 { return FromInt(int(v), 16) }
func FromInt32(v int32) float64 { return FromInt(int(v), 32) }
func FromFloat32(v float32) float64 { return float64(v) }

func ToInt16(x float64) int16 { return int16(ToInt(x, 16)) }
func ToInt32(x float64) int32 { return int32(ToInt(x, 32)) }

// ToFloat32 narrows without clipping; float clients may see values outside
// [-1, 1] exactly as they were written.
func ToFloat32(x float64) float32 { return float32(x) }
