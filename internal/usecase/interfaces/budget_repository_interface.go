package interfaces

import (
	"context"
	"time"

	"travel_budget/internal/domain/entities"
)

//go:generate mockgen -source=budget_repository_interface.go -destination=mocks/mock_budget_repository.go -package=mock_interfaces

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// Lookups return a zero Budget (empty ID) and a nil error when nothing matches.
// Status transitions are conditional on the budget still being New; when the
// condition fails the repository returns a zero Budget and a nil error.
//
// ApproveAndCharge approves the budget and adds amountUSD to the used budget of
// area in one transaction. Either both writes land or neither does; the area
// row is created with a zero total when missing.
type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context, filter entities.BudgetFilter) ([]entities.Budget, error)
	ApproveAndCharge(ctx context.Context, id, area string, amountUSD float64, approverID string, at time.Time) (entities.Budget, error)
	MarkRejected(ctx context.Context, id, approverID, reason string, at time.Time) (entities.Budget, error)
	SetActualExpense(ctx context.Context, id string, actual entities.ActualExpense) (entities.Budget, error)
}
