package monet_test

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
	"github.com/govalues/monet"
)

type Item struct {
	Name  string
	Price monet.Typed[monet.CHF]
}

// In this example, the total of a shopping cart is calculated with money
// whose currency is fixed at compile time.
func Example_shoppingCart() {
	cart := []Item{
		{"Soap", monet.NewTyped[monet.CHF](monet.WithCents(500))},
		{"AMD Ryzen R9 3900x", monet.NewTyped[monet.CHF](monet.WithCents(51500))},
		{"Some Item", monet.NewTyped[monet.CHF](monet.WithCents(1850))},
		{"Bag", monet.NewTyped[monet.CHF](monet.WithCents(50))},
		{"Discount", monet.NewTyped[monet.CHF](monet.WithCents(-1500))},
	}

	prices := make([]monet.Typed[monet.CHF], 0, len(cart))
	for _, item := range cart {
		fmt.Printf("%12v | %v\n", item.Price.String(), item.Name)
		prices = append(prices, item.Price)
	}
	total, err := monet.SumTyped(prices...)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%12v | TOTAL\n", total.String())
	// Output:
	//     5.00 CHF | Soap
	//   515.00 CHF | AMD Ryzen R9 3900x
	//    18.50 CHF | Some Item
	//     0.50 CHF | Bag
	//   -15.00 CHF | Discount
	//   524.00 CHF | TOTAL
}

// In this example, prices loaded from an untyped source are accepted only
// if they are denominated in the expected currency.
func Example_priceList() {
	load := func(codes ...string) ([]monet.Typed[monet.CHF], error) {
		list := make([]monet.Typed[monet.CHF], 0, len(codes))
		for _, code := range codes {
			m, err := monet.ParseMoney(code, "12.50")
			if err != nil {
				return nil, err
			}
			t, err := monet.TypedFrom[monet.CHF](m)
			if err != nil {
				return nil, err
			}
			list = append(list, t)
		}
		return list, nil
	}

	good, err := load("CHF", "CHF")
	fmt.Println(len(good), err)
	_, err = load("CHF", "USD")
	fmt.Println(errors.Is(err, monet.ErrDifferentCurrency), err)
	// Output:
	// 2 <nil>
	// true cannot convert 12.50 USD into CHF: different currency
}

// In this example, the price of a product is converted to the currency of
// the buyer, and the sales tax is added.
func Example_invoice() {
	rates := monet.MustParseRateTable(map[string]string{
		"USD": "1",
		"CHF": "1.1",
		"EUR": "1.2",
	})
	price := monet.MustParseMoney("EUR", "100")
	shipping := monet.MustParseMoney("USD", "6")
	vat := monet.MustParseExponent("1.077")

	total, err := price.Add(shipping).Mul(vat).Execute(rates)
	if err != nil {
		panic(err)
	}
	inCHF, err := total.Convert(monet.MustParseCode("CHF"), rates)
	if err != nil {
		panic(err)
	}
	fmt.Println(total)
	fmt.Println(inCHF)
	// Output:
	// 113.08 EUR
	// 123.36 CHF
}

func ExampleNewScaledAmount() {
	fmt.Println(monet.NewScaledAmount(1_500_000))
	fmt.Println(monet.NewScaledAmount(-1))
	// Output:
	// 1.500000
	// -0.000001
}

func ExampleWithCents() {
	a := monet.WithCents(2125)
	fmt.Println(a)
	fmt.Println(a.Cents())
	fmt.Println(a.Units())
	// Output:
	// 21.250000
	// 2125 true
	// 21 true
}

func ExampleParseScaledAmount() {
	fmt.Println(monet.ParseScaledAmount("21.25"))
	fmt.Println(monet.ParseScaledAmount("0.0000019"))
	// Output:
	// 21.250000 <nil>
	// 0.000001 <nil>
}

func ExampleNewScaledAmountFromDecimal() {
	d := decimal.MustParse("-3.1415926")
	fmt.Println(monet.NewScaledAmountFromDecimal(d))
	// Output:
	// -3.141592
}

func ExampleScaledAmount_Decimal() {
	a := monet.WithCents(2125)
	fmt.Println(a.Decimal())
	// Output:
	// 21.250000 <nil>
}

func ExampleScaledAmount_EqualUnits() {
	a := monet.WithCents(150)
	b := monet.WithCents(199)
	fmt.Println(a.Equal(b))
	fmt.Println(a.EqualUnits(b))
	// Output:
	// false
	// true
}

func ExampleParseCode() {
	fmt.Println(monet.ParseCode("USD"))
	_, err := monet.ParseCode("US")
	fmt.Println(err)
	// Output:
	// USD <nil>
	// malformed currency code: "US" must be 3 bytes long, got 2
}

func ExampleNewMoneyStr() {
	_, err := monet.NewMoneyStr(monet.WithUnits(1), "US")
	fmt.Println(errors.Is(err, monet.ErrMalformedCode))
	// Output:
	// true
}

func ExampleNewMoneyFromCents() {
	m, err := monet.NewMoneyFromCents(2125, "CHF")
	if err != nil {
		panic(err)
	}
	fmt.Println(m)
	// Output:
	// 21.25 CHF
}

func ExampleMoney_Convert() {
	rates := monet.MustParseRateTable(map[string]string{
		"USD": "1",
		"CHF": "1.1",
	})
	m := monet.MustParseMoney("CHF", "1")
	fmt.Println(m.Convert(monet.MustParseCode("USD"), rates))
	_, err := m.Convert(monet.MustParseCode("GBP"), rates)
	fmt.Println(err)
	// Output:
	// 1.10 USD <nil>
	// converting 1.00 CHF to GBP: rate not found: GBP
}

func ExampleMoney_Text() {
	m := monet.MustParseMoney("CHF", "21.25")
	fmt.Println(m.Text(2))
	fmt.Println(m.Text(6))
	fmt.Println(m.Text(0))
	// Output:
	// 21.25 CHF <nil>
	// 21.250000 CHF <nil>
	// 21 CHF <nil>
}

func ExampleMoney_Format() {
	m := monet.MustParseMoney("USD", "-0.5")
	fmt.Printf("%v\n", m)
	fmt.Printf("%.4v\n", m)
	fmt.Printf("%q\n", m)
	fmt.Printf("[%12v]\n", m)
	// Output:
	// -0.50 USD
	// -0.5000 USD
	// "-0.50 USD"
	// [   -0.50 USD]
}

func ExampleMoney_Add() {
	rates := monet.MustParseRateTable(map[string]string{
		"USD": "1",
		"CHF": "1.1",
	})
	usd := monet.MustParseMoney("USD", "1")
	chf := monet.MustParseMoney("CHF", "1")

	op := usd.Add(chf)
	fmt.Println(op)
	fmt.Println(op.Execute(rates))
	fmt.Println(chf.Add(usd).Execute(rates))
	// Output:
	// 1.00 USD + 1.00 CHF
	// 2.10 USD <nil>
	// 1.90 CHF <nil>
}

func ExampleOperation_Execute() {
	rates := monet.MustParseRateTable(map[string]string{"USD": "1"})
	ms := []int64{1, 1, 2, 2, 1, 1, 2}
	m := func(i int) monet.Money {
		return monet.NewMoney(monet.WithUnits(ms[i]), monet.MustParseCode("USD"))
	}
	op := m(0).Add(m(1)).Sub(m(2)).Add(m(3)).Add(m(4)).Sub(m(5)).Sub(m(6))
	fmt.Println(op.Execute(rates))

	_, err := op.Add(monet.MustParseMoney("JPY", "100")).Execute(rates)
	fmt.Println(errors.Is(err, monet.ErrRateNotFound))
	// Output:
	// 0.00 USD <nil>
	// true
}

func ExampleOperation_Quo() {
	rates := monet.MustParseRateTable(map[string]string{"EUR": "1.2"})
	m := monet.MustParseMoney("EUR", "10")
	fmt.Println(m.Quo(monet.MustParseExponent("2.5")).Execute(rates))
	fmt.Println(m.Quo(monet.MustParseExponent("3")).Execute(rates))
	// Output:
	// 4.00 EUR <nil>
	// 3.33 EUR <nil>
}

func ExampleSum() {
	rates := monet.MustParseRateTable(map[string]string{
		"USD": "1",
		"EUR": "1.2",
	})
	op, err := monet.Sum(
		monet.MustParseMoney("EUR", "1"),
		monet.MustParseMoney("USD", "1.2"),
		monet.MustParseMoney("EUR", "1"),
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(op.Execute(rates))
	// Output:
	// 3.00 EUR <nil>
}

func ExampleExponent_Equivalent() {
	a := monet.NewExponent(monet.NewScaledAmount(1_000), 2)
	b := monet.NewExponent(monet.NewScaledAmount(10), 0)
	fmt.Println(a, b, a.Equivalent(b))
	// Output:
	// 10.00 10 true
}

func ExampleRegistryFromCurrencies() {
	imc, err := monet.NewCurrencyInfo("Imaginary Coin", "IMC", 4)
	if err != nil {
		panic(err)
	}
	r, err := monet.RegistryFromCurrencies(monet.USD{}, monet.CHF{}, imc)
	if err != nil {
		panic(err)
	}
	for _, ci := range r.Infos() {
		fmt.Println(ci)
	}
	fmt.Println(r.Precision(monet.MustParseCode("IMC")))
	// Output:
	// CHF (Swiss Franc, 2)
	// IMC (Imaginary Coin, 4)
	// USD (US Dollar, 2)
	// 4
}

func ExampleRateTable_Rate() {
	rates := monet.MustParseRateTable(map[string]string{
		"USD": "1",
		"JPY": "0.0064",
	})
	fmt.Println(rates.Rate(monet.MustParseCode("USD"), monet.MustParseCode("JPY")))
	// Output:
	// 156.250000 <nil>
}
