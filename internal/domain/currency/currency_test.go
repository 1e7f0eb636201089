package currency

import (
	"errors"
	"testing"

	"travel_budget/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_USDIsIdentity(t *testing.T) {
	budgets := []*entities.Budget{
		nil,
		{},
		{ExchangeRates: entities.ExchangeRates{entities.CurrencyUSD: 3}},
	}
	for _, b := range budgets {
		for _, x := range []float64{0, 1, 99.99, 1e9} {
			got, err := Convert(x, entities.CurrencyUSD, b)
			require.NoError(t, err)
			assert.Equal(t, x, got)
		}
	}
}

func TestConvert_StaticFallback(t *testing.T) {
	got, err := Convert(100, entities.CurrencyARS, &entities.Budget{})
	require.NoError(t, err)
	assert.Equal(t, 0.1, got)

	got, err = Convert(100, entities.CurrencyEUR, nil)
	require.NoError(t, err)
	assert.InDelta(t, 108.6956, got, 1e-4)
}

func TestConvert_SnapshotWins(t *testing.T) {
	b := &entities.Budget{ExchangeRates: entities.ExchangeRates{entities.CurrencyARS: 900}}
	got, err := Convert(100, entities.CurrencyARS, b)
	require.NoError(t, err)
	assert.InDelta(t, 0.11111, got, 1e-5)
}

func TestConvert_SnapshotWithoutCodeFallsBack(t *testing.T) {
	b := &entities.Budget{ExchangeRates: entities.ExchangeRates{entities.CurrencyARS: 900}}
	got, err := Convert(50, entities.CurrencyBRL, b)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)
}

func TestConvert_NonPositiveSnapshotRateIgnored(t *testing.T) {
	b := &entities.Budget{ExchangeRates: entities.ExchangeRates{entities.CurrencyCOP: 0}}
	got, err := Convert(4000, entities.CurrencyCOP, b)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestConvert_UnknownCurrency(t *testing.T) {
	_, err := Convert(10, entities.Currency("JPY"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCurrency))
	assert.Contains(t, err.Error(), "JPY")

	b := &entities.Budget{ExchangeRates: entities.ExchangeRates{"JPY": 150}}
	got, err := Convert(300, entities.Currency("JPY"), b)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

func TestFormat(t *testing.T) {
	cases := []struct {
		amount float64
		code   entities.Currency
		want   string
	}{
		{1234.5, entities.CurrencyUSD, "$1,234.50"},
		{1000, entities.CurrencyBRL, "R$1,000.00"},
		{0, entities.CurrencyARS, "$0.00"},
		{1234567.891, entities.CurrencyCOP, "$1,234,567.89"},
		{99.5, entities.CurrencyEUR, "€99.50"},
		{12, entities.Currency("JPY"), "JPY 12.00"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, Format(tc.amount, tc.code))
		})
	}
}

func TestStaticRatesIsACopy(t *testing.T) {
	r := StaticRates()
	r[entities.CurrencyARS] = 1
	assert.Equal(t, 1000.0, StaticRates()[entities.CurrencyARS])
	assert.Len(t, Supported(), 5)
	assert.True(t, IsSupported(entities.CurrencyEUR))
	assert.False(t, IsSupported("GBP"))
}
