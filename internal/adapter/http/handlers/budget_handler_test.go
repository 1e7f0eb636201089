package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"travel_budget/internal/adapter/http/handlers/mocks"
	"travel_budget/internal/domain/budget"
	"travel_budget/internal/domain/currency"
	"travel_budget/internal/domain/entities"
	"travel_budget/internal/usecase"
	"travel_budget/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validBudgetBody = `{
	"area": "Sales",
	"start_date": "2025-03-10",
	"end_date": "2025-03-10",
	"destination": "Lima",
	"travelers": ["Ana"],
	"currency": "USD",
	"daily_expenses": [{"date": "2025-03-10", "expenses": [{"category": "food", "amount": 20}]}],
	"general_expense": {"accommodation": 100, "flights": 200}
}`

func TestBudgetHandler_CreateBudget(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := routerAs(requester)
		r.POST("/v1/budgets", NewBudgetHandler(uc).CreateBudget)

		w := perform(r, http.MethodPost, "/v1/budgets", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative amount fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := routerAs(requester)
		r.POST("/v1/budgets", NewBudgetHandler(uc).CreateBudget)

		body := `{"area":"Sales","start_date":"2025-03-10","end_date":"2025-03-10","travelers":["Ana"],"currency":"USD",
			"daily_expenses":[{"date":"2025-03-10","expenses":[{"category":"food","amount":-1}]}]}`
		w := perform(r, http.MethodPost, "/v1/budgets", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := routerAs(requester)
		r.POST("/v1/budgets", NewBudgetHandler(uc).CreateBudget)

		body := `{"area":"Sales","start_date":"10/03/2025","end_date":"2025-03-10","travelers":["Ana"],"currency":"USD","daily_expenses":[]}`
		w := perform(r, http.MethodPost, "/v1/budgets", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := routerAs(requester)
		r.POST("/v1/budgets", NewBudgetHandler(uc).CreateBudget)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Budget{}, errors.Join(usecase.ErrInvalidBudget, errors.New("expected 2 daily expense entries")))

		w := perform(r, http.MethodPost, "/v1/budgets", validBudgetBody)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Code != "INVALID_BUDGET" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("area not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := routerAs(requester)
		r.POST("/v1/budgets", NewBudgetHandler(uc).CreateBudget)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Budget{}, usecase.ErrAreaNotFound)

		w := perform(r, http.MethodPost, "/v1/budgets", validBudgetBody)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success uses the caller email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := routerAs(requester)
		r.POST("/v1/budgets", NewBudgetHandler(uc).CreateBudget)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.CreateBudgetCommand) (entities.Budget, error) {
				if cmd.Email != requester.Email || cmd.Currency != entities.CurrencyUSD {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Budget{
					ID:             "b-1",
					Email:          cmd.Email,
					Currency:       cmd.Currency,
					DailyExpenses:  cmd.DailyExpenses,
					GeneralExpense: cmd.GeneralExpense,
					Status:         entities.BudgetStatusNew,
					CreatedAt:      time.Now().UTC(),
				}, nil
			},
		)

		w := perform(r, http.MethodPost, "/v1/budgets", validBudgetBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			ID     string `json:"id"`
			Totals struct {
				Total     float64 `json:"total"`
				Formatted string  `json:"formatted"`
			} `json:"totals"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.ID != "b-1" || body.Totals.Total != 320 || body.Totals.Formatted != "$320.00" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestBudgetHandler_QuoteBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIBudgetUseCase(ctrl)
	r := routerAs(requester)
	r.POST("/v1/budgets/quote", NewBudgetHandler(uc).QuoteBudget)

	uc.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(usecase.BudgetQuote{
		Breakdown:    budget.Breakdown{Daily: 20, General: 300, Total: 320},
		Currency:     entities.CurrencyUSD,
		TotalUSD:     320,
		Formatted:    "$320.00",
		FormattedUSD: "$320.00",
		DaysInRange:  1,
	}, nil)

	w := perform(r, http.MethodPost, "/v1/budgets/quote", validBudgetBody)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestBudgetHandler_ListBudgets(t *testing.T) {
	t.Run("requester is scoped to own email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := routerAs(requester)
		r.GET("/v1/budgets", NewBudgetHandler(uc).ListBudgets)

		uc.EXPECT().List(gomock.Any(), entities.BudgetFilter{Status: entities.BudgetStatusNew, Email: requester.Email}).
			Return([]entities.Budget{{ID: "b-1", Currency: entities.CurrencyUSD}}, nil)

		w := perform(r, http.MethodGet, "/v1/budgets?status=New&email=other@miempresa.com", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reviewer may filter by anyone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := routerAs(approver)
		r.GET("/v1/budgets", NewBudgetHandler(uc).ListBudgets)

		uc.EXPECT().List(gomock.Any(), entities.BudgetFilter{Area: "Sales", Email: "other@miempresa.com"}).Return(nil, nil)

		w := perform(r, http.MethodGet, "/v1/budgets?area=Sales&email=other@miempresa.com", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 with empty list, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := routerAs(approver)
		r.GET("/v1/budgets", NewBudgetHandler(uc).ListBudgets)

		w := perform(r, http.MethodGet, "/v1/budgets?status=Pending", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_GetBudget(t *testing.T) {
	t.Run("other requester's budget is hidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := routerAs(requester)
		r.GET("/v1/budgets/:id", NewBudgetHandler(uc).GetBudget)

		uc.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Email: "other@miempresa.com"}, nil)

		w := perform(r, http.MethodGet, "/v1/budgets/b-1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("reviewer sees any budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := routerAs(admin)
		r.GET("/v1/budgets/:id", NewBudgetHandler(uc).GetBudget)

		uc.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Email: "other@miempresa.com", Currency: entities.CurrencyUSD}, nil)

		w := perform(r, http.MethodGet, "/v1/budgets/b-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_Review(t *testing.T) {
	t.Run("approve records reviewer email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := routerAs(approver)
		r.PATCH("/v1/budgets/:id/approve", NewBudgetHandler(uc).ApproveBudget)

		uc.EXPECT().Approve(gomock.Any(), "b-1", approver.Email).
			Return(entities.Budget{ID: "b-1", Currency: entities.CurrencyUSD, Status: entities.BudgetStatusApproved}, nil)

		w := perform(r, http.MethodPatch, "/v1/budgets/b-1/approve", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("approve already reviewed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := routerAs(approver)
		r.PATCH("/v1/budgets/:id/approve", NewBudgetHandler(uc).ApproveBudget)

		uc.EXPECT().Approve(gomock.Any(), "b-1", approver.Email).Return(entities.Budget{}, usecase.ErrBudgetNotPending)

		w := perform(r, http.MethodPatch, "/v1/budgets/b-1/approve", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("approve with unconvertible currency is a server error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := routerAs(approver)
		r.PATCH("/v1/budgets/:id/approve", NewBudgetHandler(uc).ApproveBudget)

		uc.EXPECT().Approve(gomock.Any(), "b-1", approver.Email).Return(entities.Budget{}, currency.ErrUnknownCurrency)

		w := perform(r, http.MethodPatch, "/v1/budgets/b-1/approve", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("reject without body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := routerAs(approver)
		r.PATCH("/v1/budgets/:id/reject", NewBudgetHandler(uc).RejectBudget)

		uc.EXPECT().Reject(gomock.Any(), "b-1", approver.Email, "").
			Return(entities.Budget{ID: "b-1", Currency: entities.CurrencyUSD, Status: entities.BudgetStatusRejected}, nil)

		w := perform(r, http.MethodPatch, "/v1/budgets/b-1/reject", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject with reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := routerAs(admin)
		r.PATCH("/v1/budgets/:id/reject", NewBudgetHandler(uc).RejectBudget)

		uc.EXPECT().Reject(gomock.Any(), "b-1", admin.Email, "over budget").
			Return(entities.Budget{ID: "b-1", Currency: entities.CurrencyUSD, Status: entities.BudgetStatusRejected}, nil)

		w := perform(r, http.MethodPatch, "/v1/budgets/b-1/reject", `{"reason":"over budget"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_RecordActualExpense(t *testing.T) {
	const body = `{"general_expense":{"accommodation":90,"flights":250}}`

	t.Run("not the owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := routerAs(requester)
		r.PUT("/v1/budgets/:id/actual", NewBudgetHandler(uc).RecordActualExpense)

		uc.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Email: "other@miempresa.com"}, nil)

		w := perform(r, http.MethodPut, "/v1/budgets/b-1/actual", body)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("budget not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := routerAs(requester)
		r.PUT("/v1/budgets/:id/actual", NewBudgetHandler(uc).RecordActualExpense)

		uc.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Email: requester.Email}, nil)
		uc.EXPECT().RecordActualExpense(gomock.Any(), "b-1", gomock.Any()).Return(entities.Budget{}, usecase.ErrBudgetNotApproved)

		w := perform(r, http.MethodPut, "/v1/budgets/b-1/actual", body)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("admin records for anyone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := routerAs(admin)
		r.PUT("/v1/budgets/:id/actual", NewBudgetHandler(uc).RecordActualExpense)

		uc.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Email: requester.Email}, nil)
		uc.EXPECT().RecordActualExpense(gomock.Any(), "b-1", entities.ActualExpense{
			DailyExpenses:  []entities.DailyExpense{},
			GeneralExpense: entities.GeneralExpense{Accommodation: 90, Flights: 250},
		}).Return(entities.Budget{ID: "b-1", Currency: entities.CurrencyUSD, Status: entities.BudgetStatusApproved}, nil)

		w := perform(r, http.MethodPut, "/v1/budgets/b-1/actual", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_MissingIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIBudgetUseCase(ctrl)
	r := gin.New()
	r.GET("/v1/budgets", NewBudgetHandler(uc).ListBudgets)

	w := perform(r, http.MethodGet, "/v1/budgets", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
