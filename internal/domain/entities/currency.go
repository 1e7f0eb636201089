package entities

// Currency is an ISO 4217 code.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyARS Currency = "ARS"
	CurrencyCOP Currency = "COP"
	CurrencyBRL Currency = "BRL"
	CurrencyEUR Currency = "EUR"
)

// ExchangeRates maps a currency to units of that currency per 1 USD.
type ExchangeRates map[Currency]float64

// Clone returns an independent copy; nil stays nil.
func (r ExchangeRates) Clone() ExchangeRates {
	if r == nil {
		return nil
	}
	out := make(ExchangeRates, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
