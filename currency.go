package monet

import (
	"fmt"
	"slices"
)

//go:generate go run scripts/currency/codegen.go

// Currency is the capability shared by currency definitions: the generated
// [ISO 4217] marker types, such as [USD], and runtime [CurrencyInfo] values.
//
// Code must return exactly 3 bytes.
// Units is the number of digits of the minor unit, used as the default
// display precision: 2 for USD, 0 for JPY, 3 for KWD.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency interface {
	Code() string
	Name() string
	Units() uint8
}

// CurrencyInfo is a currency defined at runtime, for example one loaded
// from a CSV or TOML file.
// The zero value is not a valid definition; use [NewCurrencyInfo].
type CurrencyInfo struct {
	name  string
	code  CurrencyCode
	units uint8
}

// NewCurrencyInfo returns a currency definition.
//
// NewCurrencyInfo returns a [*MalformedCodeError] if the code is not exactly 3 bytes long.
func NewCurrencyInfo(name, code string, units uint8) (CurrencyInfo, error) {
	c, err := ParseCode(code)
	if err != nil {
		return CurrencyInfo{}, fmt.Errorf("defining currency %q: %w", name, err)
	}
	return CurrencyInfo{name: name, code: c, units: units}, nil
}

// MustNewCurrencyInfo is like [NewCurrencyInfo] but panics if the code cannot be parsed.
func MustNewCurrencyInfo(name, code string, units uint8) CurrencyInfo {
	ci, err := NewCurrencyInfo(name, code, units)
	if err != nil {
		panic(fmt.Sprintf("NewCurrencyInfo(%q, %q, %v) failed: %v", name, code, units, err))
	}
	return ci
}

// Name returns the human-readable name of the currency, such as "US Dollar".
func (ci CurrencyInfo) Name() string {
	return ci.name
}

// Code returns the 3-byte code of the currency, such as "USD".
func (ci CurrencyInfo) Code() string {
	return ci.code.String()
}

// CurrencyCode returns the parsed code of the currency.
func (ci CurrencyInfo) CurrencyCode() CurrencyCode {
	return ci.code
}

// Units returns the number of digits of the minor unit.
func (ci CurrencyInfo) Units() uint8 {
	return ci.units
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (ci CurrencyInfo) String() string {
	return fmt.Sprintf("%v (%v, %v)", ci.code, ci.name, ci.units)
}

// infoOf converts any currency definition to its runtime form.
func infoOf(c Currency) (CurrencyInfo, error) {
	if ci, ok := c.(CurrencyInfo); ok {
		return ci, nil
	}
	return NewCurrencyInfo(c.Name(), c.Code(), c.Units())
}

// Registry is an immutable set of currency definitions keyed by code.
// Codes in a registry are unique.
//
// A Registry is safe for concurrent use by multiple goroutines.
type Registry struct {
	byCode map[CurrencyCode]CurrencyInfo
}

// NewRegistry returns a registry holding the given definitions.
//
// NewRegistry returns an error if two definitions share a code.
func NewRegistry(infos ...CurrencyInfo) (*Registry, error) {
	r := &Registry{byCode: make(map[CurrencyCode]CurrencyInfo, len(infos))}
	for _, ci := range infos {
		if _, ok := r.byCode[ci.code]; ok {
			return nil, fmt.Errorf("building registry: %w: %v", ErrDuplicateCurrency, ci.code)
		}
		r.byCode[ci.code] = ci
	}
	return r, nil
}

// RegistryFromCurrencies is like [NewRegistry] but accepts any currency
// definitions, such as the generated marker types:
//
//	r, err := RegistryFromCurrencies(USD{}, CHF{})
//
// RegistryFromCurrencies returns an error if a code is malformed or defined twice.
func RegistryFromCurrencies(cs ...Currency) (*Registry, error) {
	infos := make([]CurrencyInfo, 0, len(cs))
	for _, c := range cs {
		ci, err := infoOf(c)
		if err != nil {
			return nil, fmt.Errorf("building registry: %w", err)
		}
		infos = append(infos, ci)
	}
	return NewRegistry(infos...)
}

// MustRegistryFromCurrencies is like [RegistryFromCurrencies] but panics
// if the registry cannot be built.
// It simplifies safe initialization of global variables holding registries.
func MustRegistryFromCurrencies(cs ...Currency) *Registry {
	r, err := RegistryFromCurrencies(cs...)
	if err != nil {
		panic(fmt.Sprintf("RegistryFromCurrencies(%v) failed: %v", cs, err))
	}
	return r
}

// ISO returns the registry of currencies defined by the [ISO 4217] standard.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
func ISO() *Registry {
	return isoRegistry
}

var isoRegistry = MustRegistryFromCurrencies(isoCurrencies[:]...)

// Lookup returns the definition of the currency.
//
// Lookup returns an error if the registry has no definition for the code.
func (r *Registry) Lookup(code CurrencyCode) (CurrencyInfo, error) {
	if r != nil {
		if ci, ok := r.byCode[code]; ok {
			return ci, nil
		}
	}
	return CurrencyInfo{}, fmt.Errorf("looking up %q: %w", code, ErrUnknownCurrency)
}

// Units returns the number of digits of the minor unit of the currency.
//
// Units returns an error if the registry has no definition for the code.
func (r *Registry) Units(code CurrencyCode) (uint8, error) {
	ci, err := r.Lookup(code)
	if err != nil {
		return 0, err
	}
	return ci.units, nil
}

// Precision returns the default display precision of the currency,
// which is its minor-unit digits limited to [MaxPrecision].
// Codes unknown to the registry use [MaxPrecision].
func (r *Registry) Precision(code CurrencyCode) int {
	u, err := r.Units(code)
	if err != nil {
		return MaxPrecision
	}
	return min(int(u), MaxPrecision)
}

// Len returns the number of definitions in the registry.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.byCode)
}

// Infos returns the definitions of the registry in ascending order of codes.
func (r *Registry) Infos() []CurrencyInfo {
	infos := make([]CurrencyInfo, 0, r.Len())
	if r == nil {
		return infos
	}
	for _, ci := range r.byCode {
		infos = append(infos, ci)
	}
	slices.SortFunc(infos, func(a, b CurrencyInfo) int {
		return cmpCode(a.code, b.code)
	})
	return infos
}

// Merge returns a new registry holding the definitions of both registries.
// Where both define the same code, the definition from other is used.
// Neither registry is modified.
func (r *Registry) Merge(other *Registry) *Registry {
	m := &Registry{byCode: make(map[CurrencyCode]CurrencyInfo, r.Len()+other.Len())}
	for _, src := range []*Registry{r, other} {
		if src == nil {
			continue
		}
		for c, ci := range src.byCode {
			m.byCode[c] = ci
		}
	}
	return m
}
