package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"travel_budget/internal/domain/entities"
	"travel_budget/internal/usecase"
)

var ErrInvalidDate = errors.New("invalid date")

type ExpenseItemRequest struct {
	ID          string  `json:"id"`
	Category    string  `json:"category" binding:"required,oneof=lodging transport food other"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" binding:"gte=0"`
}

type DailyExpenseRequest struct {
	ID       string               `json:"id"`
	Date     string               `json:"date" binding:"required"`
	Expenses []ExpenseItemRequest `json:"expenses" binding:"dive"`
}

type GeneralExpenseRequest struct {
	Accommodation float64 `json:"accommodation" binding:"gte=0"`
	Flights       float64 `json:"flights" binding:"gte=0"`
}

type CorporateCardRequest struct {
	HolderName string  `json:"holder_name" binding:"required"`
	Amount     float64 `json:"amount" binding:"gte=0"`
}

// CreateBudgetRequest is the payload of POST /budgets and POST /budgets/quote.
// The requester email is taken from the authenticated user, not from the body.
type CreateBudgetRequest struct {
	Area           string                 `json:"area" binding:"required"`
	StartDate      string                 `json:"start_date" binding:"required"`
	EndDate        string                 `json:"end_date" binding:"required"`
	Destination    string                 `json:"destination"`
	Travelers      []string               `json:"travelers" binding:"required,min=1"`
	Currency       string                 `json:"currency" binding:"required"`
	DailyExpenses  []DailyExpenseRequest  `json:"daily_expenses" binding:"required,dive"`
	GeneralExpense GeneralExpenseRequest  `json:"general_expense"`
	CorporateCards []CorporateCardRequest `json:"corporate_cards" binding:"omitempty,dive"`
}

func (r CreateBudgetRequest) ToCommand(email string) (usecase.CreateBudgetCommand, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return usecase.CreateBudgetCommand{}, err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return usecase.CreateBudgetCommand{}, err
	}
	days, err := toDailyExpenses(r.DailyExpenses)
	if err != nil {
		return usecase.CreateBudgetCommand{}, err
	}

	var cards []entities.CorporateCard
	if r.CorporateCards != nil {
		cards = make([]entities.CorporateCard, 0, len(r.CorporateCards))
		for _, c := range r.CorporateCards {
			cards = append(cards, entities.CorporateCard{HolderName: c.HolderName, Amount: c.Amount})
		}
	}

	return usecase.CreateBudgetCommand{
		Area:           r.Area,
		Email:          email,
		StartDate:      start,
		EndDate:        end,
		Destination:    r.Destination,
		Travelers:      r.Travelers,
		Currency:       entities.Currency(strings.ToUpper(strings.TrimSpace(r.Currency))),
		DailyExpenses:  days,
		GeneralExpense: entities.GeneralExpense(r.GeneralExpense),
		CorporateCards: cards,
	}, nil
}

// ActualExpenseRequest is the payload of PUT /budgets/:id/actual.
type ActualExpenseRequest struct {
	DailyExpenses  []DailyExpenseRequest `json:"daily_expenses" binding:"dive"`
	GeneralExpense GeneralExpenseRequest `json:"general_expense"`
}

func (r ActualExpenseRequest) ToEntity() (entities.ActualExpense, error) {
	days, err := toDailyExpenses(r.DailyExpenses)
	if err != nil {
		return entities.ActualExpense{}, err
	}
	return entities.ActualExpense{
		DailyExpenses:  days,
		GeneralExpense: entities.GeneralExpense(r.GeneralExpense),
	}, nil
}

type RejectBudgetRequest struct {
	Reason string `json:"reason"`
}

// ParseDate accepts a calendar date (2006-01-02) or a full RFC 3339 timestamp,
// in which case only its date part is kept.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(time.DateOnly, s); err == nil {
		return d, nil
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		y, m, d := ts.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

func toDailyExpenses(in []DailyExpenseRequest) ([]entities.DailyExpense, error) {
	days := make([]entities.DailyExpense, 0, len(in))
	for _, d := range in {
		date, err := ParseDate(d.Date)
		if err != nil {
			return nil, err
		}
		items := make([]entities.ExpenseItem, 0, len(d.Expenses))
		for _, e := range d.Expenses {
			items = append(items, entities.ExpenseItem{
				ID:          e.ID,
				Category:    entities.ExpenseCategory(e.Category),
				Description: e.Description,
				Amount:      e.Amount,
			})
		}
		days = append(days, entities.DailyExpense{ID: d.ID, Date: date, Expenses: items})
	}
	return days, nil
}
