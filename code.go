package monet

import (
	"fmt"
	"unicode/utf8"
)

// CurrencyCode is a 3-byte currency identifier, such as "USD".
// Bytes are stored verbatim, so "usd" and "USD" are different codes.
// CurrencyCode is comparable and can be used as a map key.
//
// The zero value holds three zero bytes and is not a valid [ISO 4217] code;
// use [ParseCode] to construct codes.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type CurrencyCode struct {
	b [3]byte
}

// ParseCode converts a string to a currency code.
//
// ParseCode returns a [*MalformedCodeError] if the string is not exactly 3 bytes long.
func ParseCode(s string) (CurrencyCode, error) {
	if len(s) != 3 {
		return CurrencyCode{}, &MalformedCodeError{Input: s}
	}
	return CurrencyCode{b: [3]byte{s[0], s[1], s[2]}}, nil
}

// MustParseCode is like [ParseCode] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currency codes.
func MustParseCode(s string) CurrencyCode {
	c, err := ParseCode(s)
	if err != nil {
		panic(fmt.Sprintf("ParseCode(%q) failed: %v", s, err))
	}
	return c
}

// Str returns the code as a string.
// It fails only if the stored bytes are not valid UTF-8.
func (c CurrencyCode) Str() (string, error) {
	if !utf8.Valid(c.b[:]) {
		return "", fmt.Errorf("currency code %q is not valid UTF-8", c.b[:])
	}
	return string(c.b[:]), nil
}

// String implements the [fmt.Stringer] interface and returns the code bytes as is.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c CurrencyCode) String() string {
	return string(c.b[:])
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCode].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *CurrencyCode) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCode(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", CurrencyCode{}, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c CurrencyCode) MarshalText() ([]byte, error) {
	return c.b[:], nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseCode].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *CurrencyCode) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return c.UnmarshalText(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c CurrencyCode) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 5)
	text = append(text, '"')
	text = append(text, c.b[:]...)
	text = append(text, '"')
	return text, nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description |
//	| ---------- | ------- | ----------- |
//	| %c, %s, %v | USD     | Code        |
//	| %q         | "USD"   | Quoted code |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c CurrencyCode) Format(state fmt.State, verb rune) {
	buf := c.b[:]
	if verb == 'q' || verb == 'Q' {
		buf = []byte{'"', c.b[0], c.b[1], c.b[2], '"'}
	}
	buf = pad(state, buf)

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(monet.CurrencyCode="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// pad adds leading or trailing spaces up to the width of the state.
func pad(state fmt.State, buf []byte) []byte {
	w, ok := state.Width()
	if !ok || w <= len(buf) {
		return buf
	}
	out := make([]byte, 0, w)
	if state.Flag('-') {
		out = append(out, buf...)
	}
	for range w - len(buf) {
		out = append(out, ' ')
	}
	if !state.Flag('-') {
		out = append(out, buf...)
	}
	return out
}
