// Package currency converts budget amounts to USD and formats them for display.
//
// Conversions prefer the exchange-rate snapshot stored with a budget so a settled
// amount never drifts after creation; the static table is the last-resort default.
package currency

import (
	"errors"
	"fmt"

	"travel_budget/internal/domain/entities"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrUnknownCurrency means no rate exists for a code anywhere. It is a configuration
// defect and must never be coerced to a rate of 1.
var ErrUnknownCurrency = errors.New("unknown currency")

var staticRates = map[entities.Currency]float64{
	entities.CurrencyUSD: 1,
	entities.CurrencyARS: 1000,
	entities.CurrencyCOP: 4000,
	entities.CurrencyBRL: 5,
	entities.CurrencyEUR: 0.92,
}

var symbols = map[entities.Currency]string{
	entities.CurrencyUSD: "$",
	entities.CurrencyARS: "$",
	entities.CurrencyCOP: "$",
	entities.CurrencyBRL: "R$",
	entities.CurrencyEUR: "€",
}

var supported = []entities.Currency{
	entities.CurrencyUSD,
	entities.CurrencyARS,
	entities.CurrencyCOP,
	entities.CurrencyBRL,
	entities.CurrencyEUR,
}

// StaticRates returns a copy of the fallback table (units per 1 USD).
func StaticRates() entities.ExchangeRates {
	out := make(entities.ExchangeRates, len(staticRates))
	for k, v := range staticRates {
		out[k] = v
	}
	return out
}

// Supported lists the currencies budgets may be declared in.
func Supported() []entities.Currency {
	out := make([]entities.Currency, len(supported))
	copy(out, supported)
	return out
}

func IsSupported(code entities.Currency) bool {
	_, ok := staticRates[code]
	return ok
}

// Convert returns amount expressed in USD.
//
// b may be nil. When b carries a snapshot with a positive rate for code, that rate
// wins over the static table.
func Convert(amount float64, code entities.Currency, b *entities.Budget) (float64, error) {
	var snapshot entities.ExchangeRates
	if b != nil {
		snapshot = b.ExchangeRates
	}
	return ConvertWithRates(amount, code, snapshot)
}

// ConvertWithRates is Convert against an explicit snapshot (nil allowed).
func ConvertWithRates(amount float64, code entities.Currency, snapshot entities.ExchangeRates) (float64, error) {
	if code == entities.CurrencyUSD {
		return amount, nil
	}
	if rate, ok := snapshot[code]; ok && rate > 0 {
		return amount / rate, nil
	}
	if rate, ok := staticRates[code]; ok {
		return amount / rate, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
}

// Format renders amount with the currency symbol, two decimals and en-US grouping,
// e.g. "$1,234.50". Codes without a symbol are prefixed with the code itself.
func Format(amount float64, code entities.Currency) string {
	sym, ok := symbols[code]
	if !ok {
		sym = string(code) + " "
	}
	p := message.NewPrinter(language.AmericanEnglish)
	return sym + p.Sprintf("%.2f", amount)
}
