package monet

import (
	"errors"
	"fmt"
	"strings"
)

// Expr is anything that evaluates to money against a rate table:
// a [Money] value or an [Operation] tree.
type Expr interface {
	Execute(rates *RateTable) (Money, error)
	operation() Operation
}

type opKind uint8

const (
	opLeaf opKind = iota
	opAdd
	opSub
	opMul
	opQuo
)

func (k opKind) symbol() string {
	switch k {
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "*"
	case opQuo:
		return "/"
	}
	return ""
}

var errEmptySum = errors.New("sum of no expressions")

// Operation is a deferred arithmetic expression over money values.
// Operations are built by chaining [Money.Add], [Operation.Sub] and friends,
// and nothing is computed until [Operation.Execute] is called:
//
//	total, err := a.Add(b).Sub(c).Mul(tax).Execute(rates)
//
// When two operands of Add or Sub are denominated in different currencies,
// the right operand is converted to the currency of the left one.
// The zero value is a leaf holding zero money.
//
// Operation is immutable: chaining returns a new tree and never modifies
// the receiver, so an operation can be evaluated any number of times and
// shared by multiple goroutines.
type Operation struct {
	kind  opKind
	leaf  Money
	left  *Operation
	right *Operation
	exp   Exponent
}

func (o Operation) operation() Operation {
	return o
}

func (o Operation) binary(kind opKind, e Expr) Operation {
	l, r := o, e.operation()
	return Operation{kind: kind, left: &l, right: &r}
}

func (o Operation) scaled(kind opKind, e Exponent) Operation {
	l := o
	return Operation{kind: kind, left: &l, exp: e}
}

// Add returns an operation adding e to o, converted to the currency of o.
func (o Operation) Add(e Expr) Operation {
	return o.binary(opAdd, e)
}

// Sub returns an operation subtracting e, converted to the currency of o, from o.
func (o Operation) Sub(e Expr) Operation {
	return o.binary(opSub, e)
}

// Mul returns an operation multiplying o by the exponent:
// o * e.Amount() / 10^e.Scale().
func (o Operation) Mul(e Exponent) Operation {
	return o.scaled(opMul, e)
}

// Quo returns an operation dividing o by the exponent:
// o * 10^e.Scale() / e.Amount().
func (o Operation) Quo(e Exponent) Operation {
	return o.scaled(opQuo, e)
}

// Sum returns an operation adding all expressions from left to right.
// The result is denominated in the currency of the first expression.
//
// Sum returns an error if no expressions are given.
func Sum(exprs ...Expr) (Operation, error) {
	if len(exprs) == 0 {
		return Operation{}, fmt.Errorf("computing sum: %w", errEmptySum)
	}
	o := exprs[0].operation()
	for _, e := range exprs[1:] {
		o = o.Add(e)
	}
	return o, nil
}

// Execute evaluates the operation depth-first, left to right, and stops at
// the first error.
// Neither the operation nor the rate table is modified.
//
// Execute returns an error if:
//   - a currency needed for conversion is missing from the rate table;
//   - dividing by an exponent with a zero amount;
//   - an intermediate result does not fit into 128 bits.
func (o Operation) Execute(rates *RateTable) (Money, error) {
	switch o.kind {
	case opAdd, opSub:
		return o.executeBinary(rates)
	case opMul, opQuo:
		return o.executeScaled(rates)
	}
	return o.leaf, nil
}

func (o Operation) executeBinary(rates *RateTable) (Money, error) {
	a, err := o.left.Execute(rates)
	if err != nil {
		return Money{}, err
	}
	b, err := o.right.Execute(rates)
	if err != nil {
		return Money{}, err
	}
	bc, err := rates.convert(b.amount, b.code, a.code)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v %v %v]: %w", a.exactText(), o.kind.symbol(), b.exactText(), err)
	}
	var c ScaledAmount
	if o.kind == opAdd {
		c, err = a.amount.Add(bc)
	} else {
		c, err = a.amount.Sub(bc)
	}
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v %v %v]: %w", a.exactText(), o.kind.symbol(), b.exactText(), err)
	}
	return NewMoney(c, a.code), nil
}

func (o Operation) executeScaled(rates *RateTable) (Money, error) {
	a, err := o.left.Execute(rates)
	if err != nil {
		return Money{}, err
	}
	c, err := o.scale(a.amount)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v %v %v]: %w", a.exactText(), o.kind.symbol(), o.exp, err)
	}
	return NewMoney(c, a.code), nil
}

// scale multiplies first and divides second, so Quo keeps the fractional
// digits of the divisor.
func (o Operation) scale(a ScaledAmount) (ScaledAmount, error) {
	p, err := o.exp.pow10()
	if err != nil {
		return ScaledAmount{}, err
	}
	if o.kind == opMul {
		c, err := a.Mul(o.exp.amount)
		if err != nil {
			return ScaledAmount{}, err
		}
		return c.Quo(p)
	}
	if o.exp.amount.IsZero() {
		return ScaledAmount{}, ErrDivisionByZero
	}
	c, err := a.Mul(p)
	if err != nil {
		return ScaledAmount{}, err
	}
	return c.Quo(o.exp.amount)
}

// String implements the [fmt.Stringer] interface and returns the
// expression in infix notation, for example "(1.00 USD + 2.00 CHF) * 1.5".
// Amounts are shown with the default precision of their currency, or with
// more digits if needed to show them exactly, as in "1.005 USD * 2".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (o Operation) String() string {
	var sb strings.Builder
	o.writeTo(&sb, true)
	return sb.String()
}

func (o Operation) writeTo(sb *strings.Builder, top bool) {
	switch o.kind {
	case opLeaf:
		sb.WriteString(o.leaf.exactText())
		return
	case opAdd, opSub:
		if !top {
			sb.WriteByte('(')
		}
		o.left.writeTo(sb, true)
		sb.WriteString(" " + o.kind.symbol() + " ")
		o.right.writeTo(sb, false)
		if !top {
			sb.WriteByte(')')
		}
	case opMul, opQuo:
		o.left.writeTo(sb, o.left.kind != opAdd && o.left.kind != opSub)
		sb.WriteString(" " + o.kind.symbol() + " ")
		sb.WriteString(o.exp.String())
	}
}
