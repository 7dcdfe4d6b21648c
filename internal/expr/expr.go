// Package expr parses infix money expressions, such as
//
//	(100 EUR + 6 USD) * 1.077
//
// into operations that can be executed against a rate table.
// The grammar is:
//
//	expr   = term {("+" | "-") term}
//	term   = factor {("*" | "/") ["-"] number}
//	factor = money | "(" expr ")"
//	money  = ["-"] number code
//
// Numbers are decimals and codes are 3-letter currency codes.
// The left operand of an addition or subtraction determines the
// currency of the result.
package expr

import (
	"errors"
	"fmt"
	"strings"
	"text/scanner"

	"github.com/govalues/monet"
)

// ErrSyntax is returned when an expression does not match the grammar.
var ErrSyntax = errors.New("syntax error")

type parser struct {
	s    scanner.Scanner
	tok  rune
	text string
	pos  scanner.Position
	err  error
}

// Parse converts an expression to an operation.
func Parse(src string) (monet.Operation, error) {
	p := &parser{}
	p.s.Init(strings.NewReader(src))
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats
	p.s.Error = func(s *scanner.Scanner, msg string) {
		if p.err == nil {
			p.err = fmt.Errorf("%w: column %v: %v", ErrSyntax, s.Position.Column, msg)
		}
	}
	p.next()

	op, err := p.expr()
	if err == nil && p.tok != scanner.EOF {
		err = p.unexpected("operator")
	}
	if err == nil {
		err = p.err
	}
	if err != nil {
		return monet.Operation{}, fmt.Errorf("parsing %q: %w", src, err)
	}
	return op, nil
}

func (p *parser) next() {
	p.tok = p.s.Scan()
	p.text = p.s.TokenText()
	p.pos = p.s.Position
}

func (p *parser) unexpected(want string) error {
	if p.err != nil {
		return p.err
	}
	got := "end of input"
	if p.tok != scanner.EOF {
		got = fmt.Sprintf("%q", p.text)
	}
	return fmt.Errorf("%w: column %v: unexpected %v, want %v", ErrSyntax, p.pos.Column, got, want)
}

func (p *parser) expr() (monet.Operation, error) {
	left, err := p.term()
	if err != nil {
		return monet.Operation{}, err
	}
	for p.tok == '+' || p.tok == '-' {
		op := p.tok
		p.next()
		right, err := p.term()
		if err != nil {
			return monet.Operation{}, err
		}
		if op == '+' {
			left = left.Add(right)
		} else {
			left = left.Sub(right)
		}
	}
	return left, nil
}

func (p *parser) term() (monet.Operation, error) {
	left, err := p.factor()
	if err != nil {
		return monet.Operation{}, err
	}
	for p.tok == '*' || p.tok == '/' {
		op := p.tok
		p.next()
		num, err := p.number()
		if err != nil {
			return monet.Operation{}, err
		}
		e, err := monet.ParseExponent(num)
		if err != nil {
			return monet.Operation{}, err
		}
		if op == '*' {
			left = left.Mul(e)
		} else {
			left = left.Quo(e)
		}
	}
	return left, nil
}

func (p *parser) factor() (monet.Operation, error) {
	if p.tok != '(' {
		m, err := p.money()
		if err != nil {
			return monet.Operation{}, err
		}
		return m.Operation(), nil
	}
	p.next()
	op, err := p.expr()
	if err != nil {
		return monet.Operation{}, err
	}
	if p.tok != ')' {
		return monet.Operation{}, p.unexpected(`")"`)
	}
	p.next()
	return op, nil
}

func (p *parser) money() (monet.Money, error) {
	num, err := p.number()
	if err != nil {
		return monet.Money{}, err
	}
	if p.tok != scanner.Ident {
		return monet.Money{}, p.unexpected("currency code")
	}
	code := p.text
	p.next()
	return monet.ParseMoney(code, num)
}

// number consumes an optionally negated decimal literal and returns its text.
func (p *parser) number() (string, error) {
	sign := ""
	if p.tok == '-' {
		sign = "-"
		p.next()
	}
	if p.tok != scanner.Int && p.tok != scanner.Float {
		return "", p.unexpected("number")
	}
	num := sign + p.text
	p.next()
	return num, nil
}
