package interfaces

import (
	"context"

	"travel_budget/internal/domain/entities"
)

//go:generate mockgen -source=exchange_rate_repository_interface.go -destination=mocks/mock_exchange_rate_repository.go -package=mock_interfaces

// IExchangeRateConfigRepository stores the live-rate source URL of each currency.
type IExchangeRateConfigRepository interface {
	List(ctx context.Context) ([]entities.ExchangeRateConfig, error)
	Save(ctx context.Context, cfg entities.ExchangeRateConfig) (entities.ExchangeRateConfig, error)
}

// IExchangeRateProvider reads a live rate (units per 1 USD) from a configured source.
type IExchangeRateProvider interface {
	FetchRate(ctx context.Context, code entities.Currency, apiURL string) (float64, error)
}
