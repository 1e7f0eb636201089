package entities

import "time"

// ExchangeRateConfig points a currency at the HTTP source its live rate is read from.
//
// Storage model (DynamoDB):
//   - PK: currency_code
type ExchangeRateConfig struct {
	Currency  Currency  `json:"currency_code"`
	APIURL    string    `json:"api_url"`
	UpdatedAt time.Time `json:"updated_at"`
}
