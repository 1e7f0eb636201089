package messaging

import (
	"encoding/json"
	"testing"
	"time"

	"travel_budget/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBudgetEventMessage(t *testing.T) {
	reviewer := "rev@miempresa.com"
	b := entities.Budget{
		ID:             "b-1",
		Area:           "Sales",
		Email:          "ana@miempresa.com",
		Currency:       entities.CurrencyBRL,
		Status:         entities.BudgetStatusApproved,
		GeneralExpense: entities.GeneralExpense{Accommodation: 300, Flights: 200},
		ApprovedBy:     &reviewer,
	}
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("BRT", -3*3600))

	msg := NewBudgetEventMessage("budget.approved", b, at)

	assert.Equal(t, 500.0, msg.Total)
	require.NotNil(t, msg.TotalUSD)
	assert.Equal(t, 100.0, *msg.TotalUSD)
	assert.Equal(t, reviewer, msg.ReviewedBy)
	assert.Equal(t, time.UTC, msg.OccurredAt.Location())

	body, err := msg.ToJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "budget.approved", decoded["event"])
	assert.Equal(t, "Approved", decoded["status"])
	assert.Equal(t, 100.0, decoded["total_usd"])
}

func TestNewBudgetEventMessage_UnknownCurrency(t *testing.T) {
	b := entities.Budget{ID: "b-2", Currency: "GBP", Status: entities.BudgetStatusNew}

	msg := NewBudgetEventMessage("budget.created", b, time.Now())

	assert.Nil(t, msg.TotalUSD)
	body, err := msg.ToJSON()
	require.NoError(t, err)
	assert.NotContains(t, string(body), "total_usd")
	assert.NotContains(t, string(body), "reviewed_by")
}
