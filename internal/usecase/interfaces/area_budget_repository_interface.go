package interfaces

import (
	"context"

	"travel_budget/internal/domain/entities"
)

//go:generate mockgen -source=area_budget_repository_interface.go -destination=mocks/mock_area_budget_repository.go -package=mock_interfaces

// IAreaBudgetRepository abstracts DynamoDB persistence for AreaBudget. Used
// budget only grows through IBudgetRepository.ApproveAndCharge.
type IAreaBudgetRepository interface {
	Get(ctx context.Context, area string) (entities.AreaBudget, error)
	List(ctx context.Context) ([]entities.AreaBudget, error)
	SetTotalBudget(ctx context.Context, area string, total float64) (entities.AreaBudget, error)
}
