package monet

import (
	"fmt"
	"slices"
)

// RateTable maps currency codes to their worth, the number of base reference
// units that one unit of the currency equals.
// If USD is worth 1 and CHF is worth 1.1, then 1 CHF converts to 1.1 USD.
//
// RateTable is immutable after construction and is safe for concurrent use
// by multiple goroutines.
type RateTable struct {
	worth map[CurrencyCode]ScaledAmount
}

// NewRateTable returns a rate table holding a copy of the given worths.
//
// NewRateTable returns an error if any worth is not positive.
func NewRateTable(worths map[CurrencyCode]ScaledAmount) (*RateTable, error) {
	m := make(map[CurrencyCode]ScaledAmount, len(worths))
	for c, w := range worths {
		if w.Sign() <= 0 {
			return nil, fmt.Errorf("worth of %v must be positive, got %v", c, w)
		}
		m[c] = w
	}
	return &RateTable{worth: m}, nil
}

// MustNewRateTable is like [NewRateTable] but panics if the table cannot be constructed.
// It simplifies safe initialization of global variables holding rate tables.
func MustNewRateTable(worths map[CurrencyCode]ScaledAmount) *RateTable {
	r, err := NewRateTable(worths)
	if err != nil {
		panic(fmt.Sprintf("NewRateTable(%v) failed: %v", worths, err))
	}
	return r
}

// ParseRateTable converts currency codes and decimal worths, such as
// {"USD": "1", "CHF": "1.1"}, to a rate table.
// Worths are expressed in units and truncated to 6 fractional digits.
// See also constructors [ParseCode] and [ParseScaledAmount].
func ParseRateTable(worths map[string]string) (*RateTable, error) {
	m := make(map[CurrencyCode]ScaledAmount, len(worths))
	for code, worth := range worths {
		c, err := ParseCode(code)
		if err != nil {
			return nil, fmt.Errorf("parsing rate table: %w", err)
		}
		w, err := ParseScaledAmount(worth)
		if err != nil {
			return nil, fmt.Errorf("parsing rate table: worth of %v: %w", c, err)
		}
		m[c] = w
	}
	return NewRateTable(m)
}

// MustParseRateTable is like [ParseRateTable] but panics if any of the strings cannot be parsed.
func MustParseRateTable(worths map[string]string) *RateTable {
	r, err := ParseRateTable(worths)
	if err != nil {
		panic(fmt.Sprintf("ParseRateTable(%v) failed: %v", worths, err))
	}
	return r
}

// Worth returns the worth of the currency.
//
// Worth returns a [*RateNotFoundError] if the table has no worth for the code.
func (r *RateTable) Worth(code CurrencyCode) (ScaledAmount, error) {
	w, ok := r.lookup(code)
	if !ok {
		return ScaledAmount{}, &RateNotFoundError{Code: code}
	}
	return w, nil
}

// Has returns true if the table has a worth for the code.
func (r *RateTable) Has(code CurrencyCode) bool {
	_, ok := r.lookup(code)
	return ok
}

// lookup treats a nil table as empty.
func (r *RateTable) lookup(code CurrencyCode) (ScaledAmount, bool) {
	if r == nil {
		return ScaledAmount{}, false
	}
	w, ok := r.worth[code]
	return w, ok
}

// Len returns the number of currencies in the table.
func (r *RateTable) Len() int {
	if r == nil {
		return 0
	}
	return len(r.worth)
}

// Codes returns the currency codes of the table in ascending order.
func (r *RateTable) Codes() []CurrencyCode {
	codes := make([]CurrencyCode, 0, r.Len())
	if r == nil {
		return codes
	}
	for c := range r.worth {
		codes = append(codes, c)
	}
	slices.SortFunc(codes, cmpCode)
	return codes
}

func cmpCode(a, b CurrencyCode) int {
	for i := range a.b {
		switch {
		case a.b[i] < b.b[i]:
			return -1
		case a.b[i] > b.b[i]:
			return 1
		}
	}
	return 0
}

// Rate returns how many units of the quote currency one unit of the base
// currency converts to, as a scaled amount: worth(base) * 10^6 / worth(quote).
//
// Rate returns an error if either currency is missing from the table.
func (r *RateTable) Rate(base, quote CurrencyCode) (ScaledAmount, error) {
	one, err := r.convert(WithUnits(1), base, quote)
	if err != nil {
		return ScaledAmount{}, fmt.Errorf("computing rate %v/%v: %w", base, quote, err)
	}
	return one, nil
}

// convert returns a * worth(from) / worth(to).
func (r *RateTable) convert(a ScaledAmount, from, to CurrencyCode) (ScaledAmount, error) {
	wf, err := r.Worth(from)
	if err != nil {
		return ScaledAmount{}, err
	}
	wt, err := r.Worth(to)
	if err != nil {
		return ScaledAmount{}, err
	}
	p, err := a.Mul(wf)
	if err != nil {
		return ScaledAmount{}, err
	}
	return p.Quo(wt)
}
