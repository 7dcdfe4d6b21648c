package monet

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedCode is returned when a currency code is not exactly 3 bytes long.
	ErrMalformedCode = errors.New("malformed currency code")
	// ErrRateNotFound is returned when a rate table has no worth for a currency.
	ErrRateNotFound = errors.New("rate not found")
	// ErrDifferentCurrency is returned when a money value cannot be converted
	// to a typed money of another currency.
	ErrDifferentCurrency = errors.New("different currency")
	// ErrOverflow is returned when a result does not fit into 128 bits.
	ErrOverflow = errors.New("amount overflow")
	// ErrDivisionByZero is returned when dividing by a zero amount or worth.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrPrecision is returned when a display precision is outside of [0, MaxPrecision].
	ErrPrecision = errors.New("precision out of range")
	// ErrUnknownCurrency is returned when a registry has no definition for a code.
	ErrUnknownCurrency = errors.New("unknown currency")
	// ErrDuplicateCurrency is returned when a registry is built with a code defined twice.
	ErrDuplicateCurrency = errors.New("duplicate currency")
)

// MalformedCodeError reports the input that [ParseCode] rejected.
// It matches [ErrMalformedCode] with [errors.Is].
type MalformedCodeError struct {
	Input string
}

func (e *MalformedCodeError) Error() string {
	return fmt.Sprintf("%v: %q must be 3 bytes long, got %v", ErrMalformedCode, e.Input, len(e.Input))
}

func (e *MalformedCodeError) Unwrap() error {
	return ErrMalformedCode
}

// RateNotFoundError reports the currency missing from a [RateTable].
// It matches [ErrRateNotFound] with [errors.Is].
type RateNotFoundError struct {
	Code CurrencyCode
}

func (e *RateNotFoundError) Error() string {
	return fmt.Sprintf("%v: %v", ErrRateNotFound, e.Code)
}

func (e *RateNotFoundError) Unwrap() error {
	return ErrRateNotFound
}

// DifferentCurrencyError reports a money value that was expected to be
// denominated in another currency.
// It matches [ErrDifferentCurrency] with [errors.Is].
type DifferentCurrencyError struct {
	Money Money
	Want  string
}

func (e *DifferentCurrencyError) Error() string {
	return fmt.Sprintf("cannot convert %v into %v: %v", e.Money, e.Want, ErrDifferentCurrency)
}

func (e *DifferentCurrencyError) Unwrap() error {
	return ErrDifferentCurrency
}
