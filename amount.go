package monet

import (
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
)

const (
	// MaxPrecision is the number of fractional digits stored by [ScaledAmount].
	MaxPrecision = 6
	// Unit is the raw value of a [ScaledAmount] equal to one currency unit.
	Unit = 1_000_000
)

var unit = int128FromInt64(Unit)

// ScaledAmount represents a quantity of money as a signed 128-bit integer
// equal to the real value multiplied by 10^6.
// Its zero value corresponds to 0.
//
// All arithmetic between scaled amounts is integer arithmetic on the scaled
// representation and is checked: a result that does not fit into 128 bits
// is reported as [ErrOverflow] instead of wrapping around.
// ScaledAmount is designed to be safe for concurrent use by multiple goroutines.
type ScaledAmount struct {
	v int128
}

// NewScaledAmount returns an amount with the given raw scaled value,
// so NewScaledAmount(1_500_000) is 1.5 units.
func NewScaledAmount(raw int64) ScaledAmount {
	return ScaledAmount{v: int128FromInt64(raw)}
}

// NewScaledAmountFromBig returns an amount with the given raw scaled value.
//
// NewScaledAmountFromBig returns an error if the value does not fit into 128 bits.
func NewScaledAmountFromBig(raw *big.Int) (ScaledAmount, error) {
	v, ok := int128FromBig(raw)
	if !ok {
		return ScaledAmount{}, fmt.Errorf("converting %v: %w", raw, ErrOverflow)
	}
	return ScaledAmount{v: v}, nil
}

// withSubunits returns n / div units, where div divides 10^6.
// The product always fits since |n| < 2^63 and 10^6 < 2^20.
func withSubunits(n int64, div int64) ScaledAmount {
	v, _ := int128FromInt64(n).mul(int128FromInt64(Unit / div))
	return ScaledAmount{v: v}
}

// WithUnits returns an amount equal to the given number of whole units.
// See also method [ScaledAmount.Units].
func WithUnits(units int64) ScaledAmount {
	return withSubunits(units, 1)
}

// WithTenths returns an amount equal to the given number of tenths of a unit.
// See also method [ScaledAmount.Tenths].
func WithTenths(tenths int64) ScaledAmount {
	return withSubunits(tenths, 10)
}

// WithCents returns an amount equal to the given number of hundredths of a unit.
// See also method [ScaledAmount.Cents].
func WithCents(cents int64) ScaledAmount {
	return withSubunits(cents, 100)
}

// WithThousandths returns an amount equal to the given number of thousandths of a unit.
// See also method [ScaledAmount.Thousandths].
func WithThousandths(thousandths int64) ScaledAmount {
	return withSubunits(thousandths, 1000)
}

// ParseScaledAmount converts a decimal string, such as "-12.5", to an amount.
// Digits beyond the 6th fractional digit are truncated.
// See also constructor [NewScaledAmountFromDecimal].
func ParseScaledAmount(s string) (ScaledAmount, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return ScaledAmount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return NewScaledAmountFromDecimal(d), nil
}

// MustParseScaledAmount is like [ParseScaledAmount] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseScaledAmount(s string) ScaledAmount {
	a, err := ParseScaledAmount(s)
	if err != nil {
		panic(fmt.Sprintf("ParseScaledAmount(%q) failed: %v", s, err))
	}
	return a
}

// NewScaledAmountFromDecimal converts a decimal to an amount, truncating
// digits beyond the 6th fractional digit.
// The conversion is exact otherwise, since a decimal coefficient has at most 19 digits.
// See also method [ScaledAmount.Decimal].
func NewScaledAmountFromDecimal(d decimal.Decimal) ScaledAmount {
	d = d.Trunc(MaxPrecision)
	coef := uint128{lo: d.Coef()}
	// coef < 2^64 and 10^6 < 2^20, so the product fits.
	coef, _ = coef.mul(pow10Uint128(MaxPrecision - d.Scale()))
	v, _ := int128FromMag(d.IsNeg(), coef)
	return ScaledAmount{v: v}
}

func pow10Uint128(n int) uint128 {
	p := pow10Int128[n]
	return uint128{hi: p.hi, lo: p.lo}
}

// subunits returns a / (10^6 / mul), truncated toward zero.
func (a ScaledAmount) subunits(mul int64) (int64, bool) {
	q, _, _ := a.v.quoRem(int128FromInt64(Unit / mul))
	return q.int64()
}

// Units returns the number of whole units, truncating toward zero.
// If the result cannot be represented as an int64, then false is returned.
func (a ScaledAmount) Units() (int64, bool) {
	return a.subunits(1)
}

// Tenths returns the number of tenths of a unit, truncating toward zero.
// If the result cannot be represented as an int64, then false is returned.
func (a ScaledAmount) Tenths() (int64, bool) {
	return a.subunits(10)
}

// Cents returns the number of hundredths of a unit, truncating toward zero.
// If the result cannot be represented as an int64, then false is returned.
func (a ScaledAmount) Cents() (int64, bool) {
	return a.subunits(100)
}

// Thousandths returns the number of thousandths of a unit, truncating toward zero.
// If the result cannot be represented as an int64, then false is returned.
func (a ScaledAmount) Thousandths() (int64, bool) {
	return a.subunits(1000)
}

// Int64 returns the raw scaled value.
// If it cannot be represented as an int64, then false is returned.
func (a ScaledAmount) Int64() (int64, bool) {
	return a.v.int64()
}

// Big returns the raw scaled value.
func (a ScaledAmount) Big() *big.Int {
	return a.v.big()
}

// Decimal returns the amount as a decimal with 6 digits after the decimal point.
//
// Decimal returns an error if the amount has more than 19 significant digits.
func (a ScaledAmount) Decimal() (decimal.Decimal, error) {
	i, ok := a.Int64()
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", a, ErrOverflow)
	}
	return decimal.New(i, MaxPrecision)
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a ScaledAmount) Sign() int {
	return a.v.sign()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a ScaledAmount) IsZero() bool {
	return a.v.isZero()
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a ScaledAmount) IsNeg() bool {
	return a.v.isNeg()
}

// Neg returns an amount with the opposite sign.
//
// Neg returns an error for the smallest representable amount.
func (a ScaledAmount) Neg() (ScaledAmount, error) {
	v, ok := a.v.neg()
	if !ok {
		return ScaledAmount{}, fmt.Errorf("computing [-%v]: %w", a, ErrOverflow)
	}
	return ScaledAmount{v: v}, nil
}

// Abs returns the absolute value of the amount.
//
// Abs returns an error for the smallest representable amount.
func (a ScaledAmount) Abs() (ScaledAmount, error) {
	if !a.IsNeg() {
		return a, nil
	}
	return a.Neg()
}

// Add returns the sum of amounts a and b.
//
// Add returns an error if the result does not fit into 128 bits.
func (a ScaledAmount) Add(b ScaledAmount) (ScaledAmount, error) {
	v, ok := a.v.add(b.v)
	if !ok {
		return ScaledAmount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, ErrOverflow)
	}
	return ScaledAmount{v: v}, nil
}

// Sub returns the difference between amounts a and b.
//
// Sub returns an error if the result does not fit into 128 bits.
func (a ScaledAmount) Sub(b ScaledAmount) (ScaledAmount, error) {
	v, ok := a.v.sub(b.v)
	if !ok {
		return ScaledAmount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, ErrOverflow)
	}
	return ScaledAmount{v: v}, nil
}

// Mul returns the product of the raw values of amounts a and b.
// The result is not rescaled: multiplying two amounts of 1 unit each gives 10^6 units.
// Divide by [WithUnits](1) when b represents a ratio.
//
// Mul returns an error if the result does not fit into 128 bits.
func (a ScaledAmount) Mul(b ScaledAmount) (ScaledAmount, error) {
	v, ok := a.v.mul(b.v)
	if !ok {
		return ScaledAmount{}, fmt.Errorf("computing [%v * %v]: %w", a, b, ErrOverflow)
	}
	return ScaledAmount{v: v}, nil
}

// Quo returns the quotient of the raw values of amounts a and b, truncated toward zero.
// Like [ScaledAmount.Mul], the result is not rescaled.
//
// Quo returns an error if:
//   - the divisor is 0;
//   - the result does not fit into 128 bits.
func (a ScaledAmount) Quo(b ScaledAmount) (ScaledAmount, error) {
	if b.IsZero() {
		return ScaledAmount{}, fmt.Errorf("computing [%v / %v]: %w", a, b, ErrDivisionByZero)
	}
	q, _, ok := a.v.quoRem(b.v)
	if !ok {
		return ScaledAmount{}, fmt.Errorf("computing [%v / %v]: %w", a, b, ErrOverflow)
	}
	return ScaledAmount{v: q}, nil
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
func (a ScaledAmount) Cmp(b ScaledAmount) int {
	return a.v.cmp(b.v)
}

// Equal returns true if amounts have the same scaled value.
// It is equivalent to a == b.
func (a ScaledAmount) Equal(b ScaledAmount) bool {
	return a.v == b.v
}

// EqualUnits returns true if amounts have the same number of whole units,
// comparing a / 10^6 with b / 10^6 truncated toward zero.
// Amounts that differ only below one unit compare as equal:
//
//	WithCents(150).EqualUnits(WithCents(199)) == true
//
// Use [ScaledAmount.Equal] for exact comparison.
func (a ScaledAmount) EqualUnits(b ScaledAmount) bool {
	p, _, _ := a.v.quoRem(unit)
	q, _, _ := b.v.quoRem(unit)
	return p == q
}

// split returns the whole units and the absolute value of the fractional part.
func (a ScaledAmount) split() (whole uint128, frac uint64) {
	w, f := a.v.mag().quoRem(uint128{lo: Unit})
	return w, f.lo
}

// String implements the [fmt.Stringer] interface and returns the amount
// in units with all 6 fractional digits, for example "-12.500000".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a ScaledAmount) String() string {
	return string(a.appendText(make([]byte, 0, 48), MaxPrecision))
}

// appendText appends the amount with the given number of fractional digits.
// Excess digits are truncated.
func (a ScaledAmount) appendText(buf []byte, prec int) []byte {
	whole, frac := a.split()
	frac /= pow10Int128[MaxPrecision-prec].lo
	// No sign for values that render as zero.
	if a.IsNeg() && (!whole.isZero() || frac != 0) {
		buf = append(buf, '-')
	}
	buf = whole.digits(buf)
	if prec == 0 {
		return buf
	}
	buf = append(buf, '.')
	var tmp [MaxPrecision]byte
	for i := prec - 1; i >= 0; i-- {
		tmp[i] = byte(frac%10) + '0'
		frac /= 10
	}
	return append(buf, tmp[:prec]...)
}
