package interfaces

import (
	"context"

	"travel_budget/internal/domain/entities"
)

//go:generate mockgen -source=exchange_rate_snapshot_interface.go -destination=mocks/mock_exchange_rate_snapshot.go -package=mock_interfaces

// IExchangeRateSnapshotter returns the rates captured into a budget at creation time.
// It never fails: sources that cannot be read fall back to the static table.
type IExchangeRateSnapshotter interface {
	CurrentRates(ctx context.Context) entities.ExchangeRates
}
