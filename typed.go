package monet

import (
	"fmt"
)

// Typed is money whose currency is fixed at compile time by the marker type C,
// such as [USD] or [CHF]:
//
//	price := NewTyped[CHF](WithCents(1850))
//
// Typed values of different currencies cannot be mixed without an explicit
// conversion to [Money], so Add and Sub need no rate table.
// The zero value is 0 in currency C.
type Typed[C Currency] struct {
	amount ScaledAmount
}

// NewTyped returns money in currency C.
func NewTyped[C Currency](amount ScaledAmount) Typed[C] {
	return Typed[C]{amount: amount}
}

// TypedFrom converts runtime money to money in currency C.
//
// TypedFrom returns a [*DifferentCurrencyError] if m is denominated in
// another currency.
func TypedFrom[C Currency](m Money) (Typed[C], error) {
	var c C
	if m.code.String() != c.Code() {
		return Typed[C]{}, &DifferentCurrencyError{Money: m, Want: c.Code()}
	}
	return NewTyped[C](m.amount), nil
}

// SumTyped returns the sum of all values, or 0 if there are none.
//
// SumTyped returns an error if the sum does not fit into 128 bits.
func SumTyped[C Currency](ts ...Typed[C]) (Typed[C], error) {
	var sum Typed[C]
	for _, t := range ts {
		var err error
		sum, err = sum.Add(t)
		if err != nil {
			return Typed[C]{}, err
		}
	}
	return sum, nil
}

// Amount returns the scaled amount of the money.
func (t Typed[C]) Amount() ScaledAmount {
	return t.amount
}

// Currency returns the currency definition C.
func (t Typed[C]) Currency() C {
	var c C
	return c
}

// Money returns the money with its currency resolved at runtime.
// It panics if C.Code() is not exactly 3 bytes long.
func (t Typed[C]) Money() Money {
	var c C
	return NewMoney(t.amount, MustParseCode(c.Code()))
}

// Add returns the sum of t and u.
//
// Add returns an error if the result does not fit into 128 bits.
func (t Typed[C]) Add(u Typed[C]) (Typed[C], error) {
	a, err := t.amount.Add(u.amount)
	if err != nil {
		return Typed[C]{}, err
	}
	return NewTyped[C](a), nil
}

// Sub returns the difference of t and u.
//
// Sub returns an error if the result does not fit into 128 bits.
func (t Typed[C]) Sub(u Typed[C]) (Typed[C], error) {
	a, err := t.amount.Sub(u.amount)
	if err != nil {
		return Typed[C]{}, err
	}
	return NewTyped[C](a), nil
}

// String implements the [fmt.Stringer] interface and returns the money with
// C.Units() fractional digits, limited to [MaxPrecision].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (t Typed[C]) String() string {
	var c C
	prec := min(int(c.Units()), MaxPrecision)
	return fmt.Sprintf("%v %v", string(t.amount.appendText(nil, prec)), c.Code())
}
