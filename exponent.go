package monet

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Exponent is a factor equal to amount / 10^scale, used as the right operand
// of [Operation.Mul] and [Operation.Quo].
// The amount is taken as a plain integer, not as a number of 10^-6 units,
// so NewExponent(NewScaledAmount(15), 1) is 1.5.
// Exponent is not money and carries no currency.
type Exponent struct {
	amount ScaledAmount
	scale  uint8
}

// NewExponent returns a factor equal to amount / 10^scale.
func NewExponent(amount ScaledAmount, scale uint8) Exponent {
	return Exponent{amount: amount, scale: scale}
}

// NewExponentFromDecimal converts a decimal to a factor with the same
// coefficient and scale.
func NewExponentFromDecimal(d decimal.Decimal) Exponent {
	coef := uint128{lo: d.Coef()}
	v, _ := int128FromMag(d.IsNeg(), coef)
	return NewExponent(ScaledAmount{v: v}, uint8(d.Scale())) //nolint:gosec
}

// ParseExponent converts a decimal string, such as "1.5", to a factor.
// See also constructor [NewExponentFromDecimal].
func ParseExponent(s string) (Exponent, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Exponent{}, fmt.Errorf("parsing exponent: %w", err)
	}
	return NewExponentFromDecimal(d), nil
}

// MustParseExponent is like [ParseExponent] but panics if the string cannot be parsed.
func MustParseExponent(s string) Exponent {
	e, err := ParseExponent(s)
	if err != nil {
		panic(fmt.Sprintf("ParseExponent(%q) failed: %v", s, err))
	}
	return e
}

// Amount returns the integer amount of the factor.
func (e Exponent) Amount() ScaledAmount {
	return e.amount
}

// Scale returns the power of ten the amount is divided by.
func (e Exponent) Scale() uint8 {
	return e.scale
}

// pow10 returns 10^scale.
//
// pow10 returns an error if the power does not fit into 128 bits.
func (e Exponent) pow10() (ScaledAmount, error) {
	if int(e.scale) >= len(pow10Int128) {
		return ScaledAmount{}, fmt.Errorf("computing [10^%v]: %w", e.scale, ErrOverflow)
	}
	return ScaledAmount{v: pow10Int128[e.scale]}, nil
}

// Equivalent returns true if both factors have the same truncated integer part,
// comparing amount / 10^scale of each side:
//
//	NewExponent(NewScaledAmount(1000), 2).Equivalent(NewExponent(NewScaledAmount(10), 0)) == true
//
// Factors that differ only in their fractional parts compare as equivalent.
func (e Exponent) Equivalent(f Exponent) bool {
	return e.whole() == f.whole()
}

func (e Exponent) whole() int128 {
	p, err := e.pow10()
	if err != nil {
		// 10^scale exceeds every int128, so the quotient is 0.
		return int128{}
	}
	q, _, _ := e.amount.v.quoRem(p.v)
	return q
}

// String implements the [fmt.Stringer] interface and returns the factor
// as a decimal, for example "1.5".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (e Exponent) String() string {
	digits := e.amount.v.mag().digits(nil)
	scale := int(e.scale)
	if scale > 0 {
		if len(digits) <= scale {
			zeros := make([]byte, scale-len(digits)+1)
			for i := range zeros {
				zeros[i] = '0'
			}
			digits = append(zeros, digits...)
		}
		point := len(digits) - scale
		digits = append(digits[:point], append([]byte{'.'}, digits[point:]...)...)
	}
	if e.amount.IsNeg() {
		digits = append([]byte{'-'}, digits...)
	}
	return string(digits)
}
