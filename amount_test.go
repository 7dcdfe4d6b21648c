package monet

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"testing"
	"unsafe"

	"github.com/govalues/decimal"
)

func TestScaledAmount_ZeroValue(t *testing.T) {
	got := ScaledAmount{}
	want := NewScaledAmount(0)
	if got != want {
		t.Errorf("ScaledAmount{} = %q, want %q", got, want)
	}
}

func TestScaledAmount_Size(t *testing.T) {
	a := ScaledAmount{}
	got := unsafe.Sizeof(a)
	want := uintptr(16)
	if got != want {
		t.Errorf("unsafe.Sizeof(%q) = %v, want %v", a, got, want)
	}
}

func TestScaledAmount_Interfaces(t *testing.T) {
	var i any = ScaledAmount{}
	_, ok := i.(fmt.Stringer)
	if !ok {
		t.Errorf("%T does not implement fmt.Stringer", i)
	}
}

func TestWithSubunits(t *testing.T) {
	tests := []struct {
		name string
		f    func(int64) ScaledAmount
		n    int64
		want int64
	}{
		{"WithUnits", WithUnits, 0, 0},
		{"WithUnits", WithUnits, 1, 1_000_000},
		{"WithUnits", WithUnits, -12, -12_000_000},
		{"WithTenths", WithTenths, 1, 100_000},
		{"WithTenths", WithTenths, -15, -1_500_000},
		{"WithCents", WithCents, 2125, 21_250_000},
		{"WithCents", WithCents, -1, -10_000},
		{"WithThousandths", WithThousandths, 1, 1_000},
		{"WithThousandths", WithThousandths, 123456, 123_456_000},
	}
	for _, tt := range tests {
		got := tt.f(tt.n)
		want := NewScaledAmount(tt.want)
		if got != want {
			t.Errorf("%v(%v) = %q, want %q", tt.name, tt.n, got, want)
		}
	}
}

func TestScaledAmount_Subunits(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		tests := []int64{
			0, 1, -1, 99, -99, 2125, 1_000_000_007,
			math.MaxInt64, math.MinInt64,
		}
		for _, n := range tests {
			if got, ok := WithUnits(n).Units(); !ok || got != n {
				t.Errorf("WithUnits(%v).Units() = %v, %v, want %v, true", n, got, ok, n)
			}
			if got, ok := WithTenths(n).Tenths(); !ok || got != n {
				t.Errorf("WithTenths(%v).Tenths() = %v, %v, want %v, true", n, got, ok, n)
			}
			if got, ok := WithCents(n).Cents(); !ok || got != n {
				t.Errorf("WithCents(%v).Cents() = %v, %v, want %v, true", n, got, ok, n)
			}
			if got, ok := WithThousandths(n).Thousandths(); !ok || got != n {
				t.Errorf("WithThousandths(%v).Thousandths() = %v, %v, want %v, true", n, got, ok, n)
			}
		}
	})

	t.Run("truncation", func(t *testing.T) {
		tests := []struct {
			raw                                 int64
			units, tenths, cents, thousandths int64
		}{
			{1_999_999, 1, 19, 199, 1999},
			{-1_999_999, -1, -19, -199, -1999},
			{999, 0, 0, 0, 0},
			{-999, 0, 0, 0, 0},
			{21_250_000, 21, 212, 2125, 21250},
		}
		for _, tt := range tests {
			a := NewScaledAmount(tt.raw)
			if got, _ := a.Units(); got != tt.units {
				t.Errorf("%q.Units() = %v, want %v", a, got, tt.units)
			}
			if got, _ := a.Tenths(); got != tt.tenths {
				t.Errorf("%q.Tenths() = %v, want %v", a, got, tt.tenths)
			}
			if got, _ := a.Cents(); got != tt.cents {
				t.Errorf("%q.Cents() = %v, want %v", a, got, tt.cents)
			}
			if got, _ := a.Thousandths(); got != tt.thousandths {
				t.Errorf("%q.Thousandths() = %v, want %v", a, got, tt.thousandths)
			}
		}
	})

	t.Run("overflow", func(t *testing.T) {
		a := WithUnits(math.MaxInt64)
		if _, ok := a.Cents(); ok {
			t.Errorf("%q.Cents() did not fail", a)
		}
		if _, ok := a.Int64(); ok {
			t.Errorf("%q.Int64() did not fail", a)
		}
	})
}

func TestParseScaledAmount(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want int64
		}{
			{"0", 0},
			{"1", 1_000_000},
			{"-1", -1_000_000},
			{"21.25", 21_250_000},
			{"0.000001", 1},
			{"0.0000019", 1},
			{"-0.0000019", -1},
			{"1.1", 1_100_000},
			{"9223372036854.775807", math.MaxInt64},
		}
		for _, tt := range tests {
			got, err := ParseScaledAmount(tt.s)
			if err != nil {
				t.Errorf("ParseScaledAmount(%q) failed: %v", tt.s, err)
				continue
			}
			want := NewScaledAmount(tt.want)
			if got != want {
				t.Errorf("ParseScaledAmount(%q) = %q, want %q", tt.s, got, want)
			}
		}
	})

	t.Run("large", func(t *testing.T) {
		got := MustParseScaledAmount("9999999999999999999")
		want, _ := new(big.Int).SetString("9999999999999999999000000", 10)
		if got.Big().Cmp(want) != 0 {
			t.Errorf("MustParseScaledAmount(\"9999999999999999999\") = %v, want %v", got.Big(), want)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "abc", "1.2.3", "1e", "--1"}
		for _, s := range tests {
			_, err := ParseScaledAmount(s)
			if err == nil {
				t.Errorf("ParseScaledAmount(%q) did not fail", s)
			}
		}
	})
}

func TestMustParseScaledAmount(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseScaledAmount(\"x\") did not panic")
			}
		}()
		MustParseScaledAmount("x")
	})
}

func TestNewScaledAmountFromBig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []string{
			"0",
			"1",
			"-1",
			"18446744073709551616",
			"-18446744073709551616",
			"170141183460469231731687303715884105727",
			"-170141183460469231731687303715884105728",
		}
		for _, s := range tests {
			b, _ := new(big.Int).SetString(s, 10)
			got, err := NewScaledAmountFromBig(b)
			if err != nil {
				t.Errorf("NewScaledAmountFromBig(%v) failed: %v", s, err)
				continue
			}
			if got.Big().Cmp(b) != 0 {
				t.Errorf("NewScaledAmountFromBig(%v).Big() = %v", s, got.Big())
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"170141183460469231731687303715884105728",
			"-170141183460469231731687303715884105729",
			"1000000000000000000000000000000000000000",
		}
		for _, s := range tests {
			b, _ := new(big.Int).SetString(s, 10)
			_, err := NewScaledAmountFromBig(b)
			if !errors.Is(err, ErrOverflow) {
				t.Errorf("NewScaledAmountFromBig(%v) = %v, want %v", s, err, ErrOverflow)
			}
		}
	})
}

func mustBig(s string) ScaledAmount {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Sprintf("invalid big integer %q", s))
	}
	a, err := NewScaledAmountFromBig(b)
	if err != nil {
		panic(err)
	}
	return a
}

const (
	maxRaw = "170141183460469231731687303715884105727"
	minRaw = "-170141183460469231731687303715884105728"
)

func TestScaledAmount_Add(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, b, want ScaledAmount
		}{
			{NewScaledAmount(1), NewScaledAmount(1), NewScaledAmount(2)},
			{NewScaledAmount(1_000_000), NewScaledAmount(2_000_001), NewScaledAmount(3_000_001)},
			{NewScaledAmount(5), NewScaledAmount(-3), NewScaledAmount(2)},
			{NewScaledAmount(-5), NewScaledAmount(-3), NewScaledAmount(-8)},
			{NewScaledAmount(math.MaxInt64), NewScaledAmount(1), mustBig("9223372036854775808")},
			{mustBig("18446744073709551615"), NewScaledAmount(1), mustBig("18446744073709551616")},
			{mustBig("-18446744073709551616"), NewScaledAmount(1), mustBig("-18446744073709551615")},
		}
		for _, tt := range tests {
			got, err := tt.a.Add(tt.b)
			if err != nil {
				t.Errorf("%q.Add(%q) failed: %v", tt.a, tt.b, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.Add(%q) = %q, want %q", tt.a, tt.b, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			a, b ScaledAmount
		}{
			"overflow 1": {mustBig(maxRaw), NewScaledAmount(1)},
			"overflow 2": {mustBig(minRaw), NewScaledAmount(-1)},
			"overflow 3": {mustBig(maxRaw), mustBig(maxRaw)},
		}
		for name, tt := range tests {
			_, err := tt.a.Add(tt.b)
			if !errors.Is(err, ErrOverflow) {
				t.Errorf("%v: %q.Add(%q) = %v, want %v", name, tt.a, tt.b, err, ErrOverflow)
			}
		}
	})
}

func TestScaledAmount_Sub(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, b, want int64
		}{
			{1, 1, 0},
			{2, 3, -1},
			{-5, -3, -2},
			{5, -3, 8},
		}
		for _, tt := range tests {
			a, b := NewScaledAmount(tt.a), NewScaledAmount(tt.b)
			got, err := a.Sub(b)
			if err != nil {
				t.Errorf("%q.Sub(%q) failed: %v", a, b, err)
				continue
			}
			want := NewScaledAmount(tt.want)
			if got != want {
				t.Errorf("%q.Sub(%q) = %q, want %q", a, b, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			a, b ScaledAmount
		}{
			"overflow 1": {mustBig(minRaw), NewScaledAmount(1)},
			"overflow 2": {mustBig(maxRaw), NewScaledAmount(-1)},
			"overflow 3": {NewScaledAmount(0), mustBig(minRaw)},
		}
		for name, tt := range tests {
			_, err := tt.a.Sub(tt.b)
			if !errors.Is(err, ErrOverflow) {
				t.Errorf("%v: %q.Sub(%q) = %v, want %v", name, tt.a, tt.b, err, ErrOverflow)
			}
		}
	})
}

func TestScaledAmount_Mul(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, b ScaledAmount
			want ScaledAmount
		}{
			{NewScaledAmount(2), NewScaledAmount(3), NewScaledAmount(6)},
			{NewScaledAmount(-2), NewScaledAmount(3), NewScaledAmount(-6)},
			{NewScaledAmount(-2), NewScaledAmount(-3), NewScaledAmount(6)},
			{WithUnits(1), WithUnits(1), WithUnits(1_000_000)},
			{NewScaledAmount(math.MaxInt64), NewScaledAmount(math.MaxInt64), mustBig("85070591730234615847396907784232501249")},
			{mustBig("-85070591730234615865843651857942052864"), NewScaledAmount(2), mustBig(minRaw)},
		}
		for _, tt := range tests {
			got, err := tt.a.Mul(tt.b)
			if err != nil {
				t.Errorf("%q.Mul(%q) failed: %v", tt.a, tt.b, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.Mul(%q) = %q, want %q", tt.a, tt.b, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			a, b ScaledAmount
		}{
			"overflow 1": {mustBig(maxRaw), NewScaledAmount(2)},
			"overflow 2": {mustBig(minRaw), NewScaledAmount(-1)},
			"overflow 3": {mustBig("18446744073709551616"), mustBig("18446744073709551616")},
			"overflow 4": {mustBig("85070591730234615865843651857942052864"), NewScaledAmount(2)},
		}
		for name, tt := range tests {
			_, err := tt.a.Mul(tt.b)
			if !errors.Is(err, ErrOverflow) {
				t.Errorf("%v: %q.Mul(%q) = %v, want %v", name, tt.a, tt.b, err, ErrOverflow)
			}
		}
	})
}

func TestScaledAmount_Quo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, b ScaledAmount
			want ScaledAmount
		}{
			{NewScaledAmount(7), NewScaledAmount(2), NewScaledAmount(3)},
			{NewScaledAmount(-7), NewScaledAmount(2), NewScaledAmount(-3)},
			{NewScaledAmount(7), NewScaledAmount(-2), NewScaledAmount(-3)},
			{NewScaledAmount(-7), NewScaledAmount(-2), NewScaledAmount(3)},
			{WithUnits(1_100_000), WithUnits(1), NewScaledAmount(1_100_000)},
			{mustBig(maxRaw), mustBig(maxRaw), NewScaledAmount(1)},
			{mustBig(maxRaw), mustBig("18446744073709551616"), mustBig("9223372036854775807")},
			{mustBig(minRaw), NewScaledAmount(1), mustBig(minRaw)},
			{mustBig(maxRaw), mustBig("18446744073709551617"), mustBig("9223372036854775807")},
			{mustBig(maxRaw), mustBig("3802951800684688204490109628473"), NewScaledAmount(44739242)},
		}
		for _, tt := range tests {
			got, err := tt.a.Quo(tt.b)
			if err != nil {
				t.Errorf("%q.Quo(%q) failed: %v", tt.a, tt.b, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.Quo(%q) = %q, want %q", tt.a, tt.b, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			a, b ScaledAmount
			want error
		}{
			"zero 1":     {NewScaledAmount(1), NewScaledAmount(0), ErrDivisionByZero},
			"zero 2":     {NewScaledAmount(0), NewScaledAmount(0), ErrDivisionByZero},
			"overflow 1": {mustBig(minRaw), NewScaledAmount(-1), ErrOverflow},
		}
		for name, tt := range tests {
			_, err := tt.a.Quo(tt.b)
			if !errors.Is(err, tt.want) {
				t.Errorf("%v: %q.Quo(%q) = %v, want %v", name, tt.a, tt.b, err, tt.want)
			}
		}
	})
}

func TestScaledAmount_Neg(t *testing.T) {
	a := NewScaledAmount(5)
	got, err := a.Neg()
	if err != nil || got != NewScaledAmount(-5) {
		t.Errorf("%q.Neg() = %q, %v, want %q, nil", a, got, err, NewScaledAmount(-5))
	}
	got, err = got.Abs()
	if err != nil || got != a {
		t.Errorf("Abs() = %q, %v, want %q, nil", got, err, a)
	}
	_, err = mustBig(minRaw).Neg()
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("Neg() of the smallest amount = %v, want %v", err, ErrOverflow)
	}
}

func TestScaledAmount_Cmp(t *testing.T) {
	tests := []struct {
		a, b ScaledAmount
		want int
	}{
		{NewScaledAmount(1), NewScaledAmount(2), -1},
		{NewScaledAmount(2), NewScaledAmount(2), 0},
		{NewScaledAmount(3), NewScaledAmount(2), 1},
		{NewScaledAmount(-1), NewScaledAmount(1), -1},
		{mustBig(minRaw), mustBig(maxRaw), -1},
		{mustBig("18446744073709551616"), NewScaledAmount(math.MaxInt64), 1},
	}
	for _, tt := range tests {
		got := tt.a.Cmp(tt.b)
		if got != tt.want {
			t.Errorf("%q.Cmp(%q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestScaledAmount_Sign(t *testing.T) {
	tests := []struct {
		a    ScaledAmount
		want int
	}{
		{NewScaledAmount(-1), -1},
		{NewScaledAmount(0), 0},
		{NewScaledAmount(1), 1},
		{mustBig(minRaw), -1},
		{mustBig(maxRaw), 1},
	}
	for _, tt := range tests {
		got := tt.a.Sign()
		if got != tt.want {
			t.Errorf("%q.Sign() = %v, want %v", tt.a, got, tt.want)
		}
	}
}

func TestScaledAmount_EqualUnits(t *testing.T) {
	tests := []struct {
		a, b      ScaledAmount
		wantExact bool
		wantUnits bool
	}{
		{WithCents(150), WithCents(150), true, true},
		{WithCents(150), WithCents(199), false, true},
		{WithCents(150), WithCents(200), false, false},
		{WithCents(-50), WithCents(50), false, true},
		{NewScaledAmount(999_999), NewScaledAmount(0), false, true},
	}
	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.wantExact {
			t.Errorf("%q.Equal(%q) = %v, want %v", tt.a, tt.b, got, tt.wantExact)
		}
		if got := tt.a.EqualUnits(tt.b); got != tt.wantUnits {
			t.Errorf("%q.EqualUnits(%q) = %v, want %v", tt.a, tt.b, got, tt.wantUnits)
		}
	}
}

func TestScaledAmount_Decimal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s, want string
		}{
			{"0", "0.000000"},
			{"21.25", "21.250000"},
			{"-0.000001", "-0.000001"},
		}
		for _, tt := range tests {
			a := MustParseScaledAmount(tt.s)
			got, err := a.Decimal()
			if err != nil {
				t.Errorf("%q.Decimal() failed: %v", a, err)
				continue
			}
			want := decimal.MustParse(tt.want)
			if got != want {
				t.Errorf("%q.Decimal() = %v, want %v", a, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		a := WithUnits(math.MaxInt64)
		_, err := a.Decimal()
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("%q.Decimal() = %v, want %v", a, err, ErrOverflow)
		}
	})
}

func TestScaledAmount_String(t *testing.T) {
	tests := []struct {
		a    ScaledAmount
		want string
	}{
		{NewScaledAmount(0), "0.000000"},
		{NewScaledAmount(1), "0.000001"},
		{NewScaledAmount(-1), "-0.000001"},
		{WithCents(2125), "21.250000"},
		{WithCents(-2125), "-21.250000"},
		{mustBig(maxRaw), "170141183460469231731687303715884.105727"},
		{mustBig(minRaw), "-170141183460469231731687303715884.105728"},
		{mustBig("18446744073709551616000000"), "18446744073709551616.000000"},
	}
	for _, tt := range tests {
		got := tt.a.String()
		if got != tt.want {
			t.Errorf("ScaledAmount(%v).String() = %q, want %q", tt.a.Big(), got, tt.want)
		}
	}
}
