package messaging

import (
	"encoding/json"
	"time"

	"travel_budget/internal/domain/budget"
	"travel_budget/internal/domain/currency"
	"travel_budget/internal/domain/entities"
)

// BudgetEventMessage is the JSON body published for every budget transition.
type BudgetEventMessage struct {
	Event      string    `json:"event"`
	BudgetID   string    `json:"budget_id"`
	Area       string    `json:"area"`
	Email      string    `json:"email"`
	Status     string    `json:"status"`
	Currency   string    `json:"currency"`
	Total      float64   `json:"total"`
	TotalUSD   *float64  `json:"total_usd,omitempty"`
	ReviewedBy string    `json:"reviewed_by,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewBudgetEventMessage builds the message for b. TotalUSD is left out when the
// budget currency cannot be converted.
func NewBudgetEventMessage(event string, b entities.Budget, at time.Time) BudgetEventMessage {
	total := budget.Total(b)
	msg := BudgetEventMessage{
		Event:      event,
		BudgetID:   b.ID,
		Area:       b.Area,
		Email:      b.Email,
		Status:     string(b.Status),
		Currency:   string(b.Currency),
		Total:      total,
		OccurredAt: at.UTC(),
	}
	if usd, err := currency.Convert(total, b.Currency, &b); err == nil {
		msg.TotalUSD = &usd
	}
	if b.ApprovedBy != nil {
		msg.ReviewedBy = *b.ApprovedBy
	}
	return msg
}

func (m BudgetEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
