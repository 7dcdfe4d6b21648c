package monet

import (
	"fmt"
)

// Money is an amount of money denominated in a currency.
// Its zero value is 0 with a zero [CurrencyCode].
//
// Money is a value type: it is comparable with ==, which compares both the
// scaled amount and the code exactly.
// Money is designed to be safe for concurrent use by multiple goroutines.
type Money struct {
	amount ScaledAmount
	code   CurrencyCode
}

// NewMoney returns money with the given amount and currency code.
func NewMoney(amount ScaledAmount, code CurrencyCode) Money {
	return Money{amount: amount, code: code}
}

// NewMoneyStr is like [NewMoney] but parses the currency code.
//
// NewMoneyStr returns a [*MalformedCodeError] if the code is not exactly 3 bytes long.
func NewMoneyStr(amount ScaledAmount, code string) (Money, error) {
	c, err := ParseCode(code)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency code: %w", err)
	}
	return NewMoney(amount, c), nil
}

// MustNewMoneyStr is like [NewMoneyStr] but panics if the code cannot be parsed.
// It simplifies safe initialization of global variables holding money.
func MustNewMoneyStr(amount ScaledAmount, code string) Money {
	m, err := NewMoneyStr(amount, code)
	if err != nil {
		panic(fmt.Sprintf("NewMoneyStr(%v, %q) failed: %v", amount, code, err))
	}
	return m
}

// NewMoneyFromCents returns money equal to the given number of hundredths
// of a unit of the currency.
// See also constructor [WithCents].
func NewMoneyFromCents(cents int64, code string) (Money, error) {
	return NewMoneyStr(WithCents(cents), code)
}

// ParseMoney converts currency code and decimal strings, such as "CHF" and
// "21.25", to money.
// See also constructors [ParseCode] and [ParseScaledAmount].
func ParseMoney(code, amount string) (Money, error) {
	c, err := ParseCode(code)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency code: %w", err)
	}
	a, err := ParseScaledAmount(amount)
	if err != nil {
		return Money{}, err
	}
	return NewMoney(a, c), nil
}

// MustParseMoney is like [ParseMoney] but panics if any of the strings cannot be parsed.
// It simplifies safe initialization of global variables holding money.
func MustParseMoney(code, amount string) Money {
	m, err := ParseMoney(code, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseMoney(%q, %q) failed: %v", code, amount, err))
	}
	return m
}

// Amount returns the scaled amount of the money.
func (m Money) Amount() ScaledAmount {
	return m.amount
}

// Code returns the currency code of the money.
func (m Money) Code() CurrencyCode {
	return m.code
}

// SameCode returns true if both values are denominated in the same currency.
func (m Money) SameCode(n Money) bool {
	return m.code == n.code
}

// Convert returns the money converted to another currency:
// amount * worth(m.Code()) / worth(code).
// Converting to the money's own currency returns the money unchanged,
// provided the table has a worth for it.
//
// Convert returns an error if:
//   - either currency is missing from the rate table;
//   - the intermediate product does not fit into 128 bits.
func (m Money) Convert(code CurrencyCode, rates *RateTable) (Money, error) {
	a, err := rates.convert(m.amount, m.code, code)
	if err != nil {
		return Money{}, fmt.Errorf("converting %v to %v: %w", m, code, err)
	}
	return NewMoney(a, code), nil
}

// Execute implements [Expr] and returns the money itself.
func (m Money) Execute(*RateTable) (Money, error) {
	return m, nil
}

// Operation returns an operation that evaluates to m.
func (m Money) Operation() Operation {
	return Operation{kind: opLeaf, leaf: m}
}

func (m Money) operation() Operation {
	return m.Operation()
}

// Add returns an operation adding e to m, converted to the currency of m.
// Nothing is computed until [Operation.Execute] is called.
func (m Money) Add(e Expr) Operation {
	return m.operation().Add(e)
}

// Sub returns an operation subtracting e, converted to the currency of m, from m.
// Nothing is computed until [Operation.Execute] is called.
func (m Money) Sub(e Expr) Operation {
	return m.operation().Sub(e)
}

// Mul returns an operation multiplying m by the exponent.
// Nothing is computed until [Operation.Execute] is called.
func (m Money) Mul(e Exponent) Operation {
	return m.operation().Mul(e)
}

// Quo returns an operation dividing m by the exponent.
// Nothing is computed until [Operation.Execute] is called.
func (m Money) Quo(e Exponent) Operation {
	return m.operation().Quo(e)
}
