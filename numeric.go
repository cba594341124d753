package optics

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Integral is the set of Go integer types addressable by AsIntegral.
type Integral interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// AsNumber matches number values, focusing their exact decimal payload.
var AsNumber = NewPrism(Value.NumberValue, Number)

// DoubleIso converts between exact decimals and float64. The forward
// direction is the defined (generally lossy) float conversion; the
// backward direction is exact for every finite float. Non-finite floats
// have no decimal form and map back to zero, so use AsDouble when
// building JSON from floats.
var DoubleIso = NewIso(
	func(d decimal.Decimal) float64 {
		f, _ := d.Float64()
		return f
	},
	func(f float64) decimal.Decimal {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Decimal{}
		}
		return decimal.NewFromFloat(f)
	},
)

// AsDouble matches number values as float64. Build always succeeds:
// finite floats embed exactly, and NaN or infinities, which JSON cannot
// represent, build Null.
var AsDouble = NewPrism(
	func(v Value) (float64, bool) {
		d, ok := v.NumberValue()
		if !ok {
			return 0, false
		}
		return DoubleIso.Get(d), true
	},
	func(f float64) Value {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Null()
		}
		return Number(decimal.NewFromFloat(f))
	},
)

// AsInteger matches number values as int64, truncating toward zero
// (10.5 matches as 10). Numbers whose integer part falls outside the
// int64 range do not match.
var AsInteger = AsIntegral[int64]()

// AsIntegral returns a prism matching number values as the integer type
// N. The match direction truncates toward zero and fails, rather than
// wrapping, when the truncated value does not fit N. The build direction
// embeds exactly.
func AsIntegral[N Integral]() Prism[Value, N] {
	return NewPrism(
		func(v Value) (N, bool) {
			d, ok := v.NumberValue()
			if !ok {
				return 0, false
			}
			return truncateToIntegral[N](d)
		},
		func(n N) Value {
			return Number(integralToDecimal(n))
		},
	)
}

// signedIntegral reports whether N is a signed type. Unsigned underflow
// wraps to the maximum value, so zero minus one is negative only for
// signed types.
func signedIntegral[N Integral]() bool {
	var zero N
	return zero-1 < zero
}

// truncateToIntegral truncates d toward zero and narrows it to N,
// rejecting values outside N's range.
func truncateToIntegral[N Integral](d decimal.Decimal) (N, bool) {
	bi := d.BigInt()
	if signedIntegral[N]() {
		if !bi.IsInt64() {
			return 0, false
		}
		i := bi.Int64()
		n := N(i)
		if int64(n) != i {
			return 0, false
		}
		return n, true
	}
	if bi.Sign() < 0 || !bi.IsUint64() {
		return 0, false
	}
	u := bi.Uint64()
	n := N(u)
	if uint64(n) != u {
		return 0, false
	}
	return n, true
}

// integralToDecimal embeds n exactly, including uint64 values above the
// int64 range.
func integralToDecimal[N Integral](n N) decimal.Decimal {
	if signedIntegral[N]() {
		return decimal.NewFromInt(int64(n))
	}
	return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(n)), 0)
}
