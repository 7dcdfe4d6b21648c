/*
Package monet implements exact fixed-point monetary values and deferred
arithmetic over values in different currencies.
Amounts are signed 128-bit integers scaled by 10^6, so every value with at
most 6 fractional digits is represented exactly.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - Checked 128-bit arithmetic that reports overflow instead of wrapping
  - Deferred expressions mixing currencies, evaluated against a rate table
  - Compile-time currency markers for ISO 4217 and runtime currency registries
  - Display with the number of fractional digits of each currency

# Representation

A [Money] value consists of a [ScaledAmount] and a [CurrencyCode].
A ScaledAmount stores the real value multiplied by 10^6, so 21.25 is stored
as 21_250_000.
A CurrencyCode is exactly 3 bytes, compared byte by byte.

# Supported Ranges

A ScaledAmount holds values in the range of a signed 128-bit integer divided
by 10^6, which is about ±1.7 × 10^32 units.
Constructors accepting int64 always fit; products of large amounts may not.

# Operations

Money values are combined into an [Operation] with Add, Sub, Mul and Quo.
Nothing is computed until [Operation.Execute] is called with a [RateTable]:

	total, err := price.Add(shipping).Mul(monet.MustParseExponent("1.077")).Execute(rates)

When Add or Sub combine values in different currencies, the right operand
is converted to the currency of the left one using the worths of both
currencies in the rate table.
The result of an operation is always denominated in the currency of its
leftmost operand.

Mul and Quo take an [Exponent], a factor written as an integer amount and a
power of ten, so 1.077 is 1077 / 10^3.
Results are truncated toward zero.

# Errors

Errors are returned, never silently absorbed, when a currency code is
malformed, a rate is missing from the table, a divisor is zero, or a result
does not fit into 128 bits.
Errors wrap exported sentinels, such as [ErrRateNotFound], for use with
[errors.Is], and some carry details retrievable with [errors.As].
MustXxx constructors panic instead and are meant for initialization of
global variables.
*/
package monet
