package interfaces

import (
	"context"

	"travel_budget/internal/domain/entities"
)

//go:generate mockgen -source=event_publisher_interface.go -destination=mocks/mock_event_publisher.go -package=mock_interfaces

const (
	EventBudgetCreated  = "budget.created"
	EventBudgetApproved = "budget.approved"
	EventBudgetRejected = "budget.rejected"
)

// IBudgetEventPublisher announces budget lifecycle transitions to other services.
type IBudgetEventPublisher interface {
	Publish(ctx context.Context, event string, b entities.Budget) error
}
