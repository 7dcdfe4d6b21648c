package monet

import (
	"fmt"
	"strconv"
)

// Text returns the money as "<whole>.<fraction> <CODE>" with exactly prec
// fractional digits, for example "21.25 CHF" for prec 2 and "21 CHF" for prec 0.
// Excess fractional digits are truncated, not rounded.
// Negative amounts have a leading minus sign, as in "-0.50 USD".
//
// Text returns an error if prec is outside of [0, MaxPrecision].
func (m Money) Text(prec int) (string, error) {
	if prec < 0 || prec > MaxPrecision {
		return "", fmt.Errorf("formatting %v with precision %v: %w", m.code, prec, ErrPrecision)
	}
	return string(m.appendText(make([]byte, 0, 48), prec)), nil
}

func (m Money) appendText(buf []byte, prec int) []byte {
	buf = m.amount.appendText(buf, prec)
	buf = append(buf, ' ')
	return append(buf, m.code.b[:]...)
}

// String implements the [fmt.Stringer] interface and returns the money
// with the number of fractional digits of its currency in the [ISO] registry.
// Currencies unknown to the registry use [MaxPrecision] digits.
// See also methods [Money.Text] and [Money.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	return string(m.appendText(make([]byte, 0, 48), ISO().Precision(m.code)))
}

// exactText is like [Money.String] but adds fractional digits beyond the
// currency default until no digit of the amount is lost.
func (m Money) exactText() string {
	prec := ISO().Precision(m.code)
	_, frac := m.amount.split()
	for prec < MaxPrecision && frac%pow10Int128[MaxPrecision-prec].lo != 0 {
		prec++
	}
	return string(m.appendText(make([]byte, 0, 48), prec))
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example       | Description              |
//	| ------ | ------------- | ------------------------ |
//	| %s, %v | 21.25 CHF     | Default precision        |
//	| %q     | "21.25 CHF"   | Quoted, default precision |
//	| %.6v   | 21.250000 CHF | Explicit precision       |
//
// The '-' format flag can be used with all verbs.
// A precision outside of [0, MaxPrecision] writes %!v(BADPREC=N).
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m Money) Format(state fmt.State, verb rune) {
	prec, ok := state.Precision()
	if !ok {
		prec = ISO().Precision(m.code)
	}

	//nolint:errcheck
	if prec > MaxPrecision {
		state.Write([]byte("%!"))
		state.Write([]byte(string(verb)))
		state.Write([]byte("(BADPREC="))
		state.Write(strconv.AppendInt(nil, int64(prec), 10))
		state.Write([]byte(")"))
		return
	}

	buf := make([]byte, 0, 48)
	if verb == 'q' || verb == 'Q' {
		buf = append(buf, '"')
		buf = m.appendText(buf, prec)
		buf = append(buf, '"')
	} else {
		buf = m.appendText(buf, prec)
	}
	buf = pad(state, buf)

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte(string(verb)))
		state.Write([]byte("(monet.Money="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
