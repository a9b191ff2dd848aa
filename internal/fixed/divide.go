package fixed

import "math"

// recipTable holds round(1024 / int8(n)) for every raw Unit denominator n, with
// zero mapping to zero.
var recipTable = [256]int16{
	0, 1024, 512, 341, 256, 205, 171, 146, 128, 114, 102, 93, 85, 79, 73, 68,
	64, 60, 57, 54, 51, 49, 47, 45, 43, 41, 39, 38, 37, 35, 34, 33,
	32, 31, 30, 29, 28, 28, 27, 26, 26, 25, 24, 24, 23, 23, 22, 22,
	21, 21, 20, 20, 20, 19, 19, 19, 18, 18, 18, 17, 17, 17, 17, 16,
	16, 16, 16, 15, 15, 15, 15, 14, 14, 14, 14, 14, 13, 13, 13, 13,
	13, 13, 12, 12, 12, 12, 12, 12, 12, 12, 11, 11, 11, 11, 11, 11,
	11, 11, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 9, 9, 9, 9,
	9, 9, 9, 9, 9, 9, 9, 9, 9, 8, 8, 8, 8, 8, 8, 8,
	-8, -8, -8, -8, -8, -8, -8, -8, -9, -9, -9, -9, -9, -9, -9, -9,
	-9, -9, -9, -9, -9, -10, -10, -10, -10, -10, -10, -10, -10, -10, -10, -11,
	-11, -11, -11, -11, -11, -11, -11, -12, -12, -12, -12, -12, -12, -12, -12, -13,
	-13, -13, -13, -13, -13, -14, -14, -14, -14, -14, -15, -15, -15, -15, -16, -16,
	-16, -16, -17, -17, -17, -17, -18, -18, -18, -19, -19, -19, -20, -20, -20, -21,
	-21, -22, -22, -23, -23, -24, -24, -25, -26, -26, -27, -28, -28, -29, -30, -31,
	-32, -33, -34, -35, -37, -38, -39, -41, -43, -45, -47, -49, -51, -54, -57, -60,
	-64, -68, -73, -79, -85, -93, -102, -114, -128, -146, -171, -205, -256, -341, -512, -1024,
}

// recipShift rescales num*recip (num·2^10/den) back to FracBits.
const recipShift = 10 - FracBits

// QuickDivide approximates num/den with a reciprocal table lookup and one
// multiply. No hardware division is used.
//
// The table covers raw denominators in [-128, 127]. Wider denominators are
// clamped to the table edge, and a zero denominator yields zero. The quotient
// saturates at the World range. For in-domain, non-saturating inputs the result
// differs from the exact quotient by at most |num.Raw()|/32 + 1 raw units: the
// rounded reciprocal is within 0.5 of 1024/den, and the final shift floors.
func QuickDivide(num, den World) World {
	d := int(den)
	switch {
	case d > math.MaxInt8:
		d = math.MaxInt8
	case d < math.MinInt8:
		d = math.MinInt8
	}
	q := (int(num) * int(recipTable[uint8(d)])) >> recipShift
	switch {
	case q > math.MaxInt16:
		q = math.MaxInt16
	case q < math.MinInt16:
		q = math.MinInt16
	}
	return World(q)
}
