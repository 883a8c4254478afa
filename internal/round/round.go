// Package round rounds float64 values to a fixed number of fractional
// decimal digits.
//
// Rounding happens on the shortest decimal representation of the value, so
// 2.675 rounded to two places yields 2.68 even though its binary value is
// slightly below the midpoint. Ties round half away from zero.
package round

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/yurimorini/vectors/internal/conv"
)

// maxExponent bounds the decimal exponent of any finite float64.
const maxExponent = 309

// Fixed returns x rounded to places fractional digits.
// Negative places round the integer part to the nearest power of ten.
// Zero, NaN and infinities are returned unchanged.
func Fixed(x float64, places int) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	d := decimal.NewFromFloat(x)
	if int(d.Exponent()) >= -places {
		return x
	}
	if places < -maxExponent {
		return 0
	}

	f, _ := d.Round(conv.SaturateInt32(places)).Float64()
	return f
}

// Clamp limits x to the closed interval [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
