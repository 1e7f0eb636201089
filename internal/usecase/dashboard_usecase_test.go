package usecase

import (
	"context"
	"errors"
	"testing"

	"travel_budget/internal/domain/currency"
	"travel_budget/internal/domain/entities"
	mock_interfaces "travel_budget/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func approvedBudget(area string, code entities.Currency, amount float64, rates entities.ExchangeRates) entities.Budget {
	return entities.Budget{
		ID:             area + "-" + string(code),
		Area:           area,
		Currency:       code,
		Status:         entities.BudgetStatusApproved,
		GeneralExpense: entities.GeneralExpense{Flights: amount},
		ExchangeRates:  rates,
	}
}

func TestDashboardUseCase_Summary(t *testing.T) {
	t.Run("aggregates by status and area", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		areas := mock_interfaces.NewMockIAreaBudgetRepository(ctrl)
		uc := NewDashboardUseCase(budgets, areas)

		budgets.EXPECT().List(gomock.Any(), entities.BudgetFilter{}).Return([]entities.Budget{
			approvedBudget("Sales", entities.CurrencyUSD, 100, nil),
			approvedBudget("Sales", entities.CurrencyARS, 50000, entities.ExchangeRates{entities.CurrencyARS: 500}),
			approvedBudget("Engineering", entities.CurrencyBRL, 50, nil),
			{ID: "p", Area: "Sales", Status: entities.BudgetStatusNew},
			{ID: "r", Area: "Sales", Status: entities.BudgetStatusRejected},
		}, nil)
		areas.EXPECT().List(gomock.Any()).Return([]entities.AreaBudget{
			{Area: "Sales", TotalBudget: 1000, UsedBudget: 200},
			{Area: "Engineering", TotalBudget: 300, UsedBudget: 10},
		}, nil)

		s, err := uc.Summary(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TotalBudgets != 5 || s.ApprovedBudgets != 3 || s.PendingBudgets != 1 || s.RejectedBudgets != 1 {
			t.Fatalf("unexpected counts: %+v", s)
		}
		if s.TotalSpentUSD != 210 {
			t.Fatalf("expected 100 + 100 + 10 USD, got %v", s.TotalSpentUSD)
		}
		if len(s.Areas) != 2 || s.Areas[0].Area != "Engineering" {
			t.Fatalf("unexpected areas: %+v", s.Areas)
		}
		if s.Areas[1].SpentUSD != 200 || s.Areas[1].Remaining != 800 {
			t.Fatalf("unexpected sales row: %+v", s.Areas[1])
		}
	})

	t.Run("unknown currency fails loudly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		areas := mock_interfaces.NewMockIAreaBudgetRepository(ctrl)
		uc := NewDashboardUseCase(budgets, areas)

		budgets.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.Budget{approvedBudget("Sales", "GBP", 1, nil)}, nil)
		areas.EXPECT().List(gomock.Any()).Return(nil, nil)

		if _, err := uc.Summary(context.Background()); !errors.Is(err, currency.ErrUnknownCurrency) {
			t.Fatalf("expected ErrUnknownCurrency, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewDashboardUseCase(budgets, nil)

		budgets.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))
		if _, err := uc.Summary(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
