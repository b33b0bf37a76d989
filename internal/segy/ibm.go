package segy

import "math"

// IBM hexadecimal floating point: 1 sign bit, 7-bit excess-64 base-16
// exponent, 24-bit fraction in [1/16, 1).

// ibmToFloat32 decodes a big-endian IBM float bit pattern.
func ibmToFloat32(bits uint32) float32 {
	if bits&0x7fffffff == 0 {
		return 0
	}
	sign := 1.0
	if bits&0x80000000 != 0 {
		sign = -1.0
	}
	exp := int(bits>>24&0x7f) - 64
	frac := float64(bits&0x00ffffff) / float64(1<<24)
	return float32(sign * frac * math.Pow(16, float64(exp)))
}

// ibmFromFloat32 encodes v as an IBM float bit pattern, rounding the
// 24-bit fraction to nearest. Values beyond the representable range clamp;
// values below it underflow to zero.
func ibmFromFloat32(v float32) uint32 {
	if v == 0 {
		return 0
	}
	var sign uint32
	f := float64(v)
	if f < 0 {
		sign = 0x80000000
		f = -f
	}
	exp := 0
	for f >= 1 {
		f /= 16
		exp++
	}
	for f < 1.0/16 {
		f *= 16
		exp--
	}
	mant := uint32(math.Round(f * float64(1<<24)))
	if mant == 1<<24 {
		mant >>= 4
		exp++
	}
	e := exp + 64
	if e < 0 {
		return sign
	}
	if e > 127 {
		e = 127
		mant = 0xffffff
	}
	return sign | uint32(e)<<24 | mant&0xffffff
}
