package response

import (
	"time"

	"travel_budget/internal/domain/budget"
	"travel_budget/internal/domain/currency"
	"travel_budget/internal/domain/entities"
	"travel_budget/internal/usecase"
)

type ExpenseItemResponse struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type DailyExpenseResponse struct {
	ID       string                `json:"id"`
	Date     string                `json:"date"`
	Expenses []ExpenseItemResponse `json:"expenses"`
	Subtotal float64               `json:"subtotal"`
}

type GeneralExpenseResponse struct {
	Accommodation float64 `json:"accommodation"`
	Flights       float64 `json:"flights"`
}

type CorporateCardResponse struct {
	HolderName string  `json:"holder_name"`
	Amount     float64 `json:"amount"`
}

// TotalsResponse carries the computed figures of a budget. TotalUSD and
// FormattedUSD are omitted when the budget currency cannot be converted.
type TotalsResponse struct {
	Daily          float64  `json:"daily"`
	General        float64  `json:"general"`
	CorporateCards float64  `json:"corporate_cards"`
	Total          float64  `json:"total"`
	Formatted      string   `json:"formatted"`
	TotalUSD       *float64 `json:"total_usd,omitempty"`
	FormattedUSD   string   `json:"formatted_usd,omitempty"`
}

type ActualExpenseResponse struct {
	DailyExpenses  []DailyExpenseResponse `json:"daily_expenses"`
	GeneralExpense GeneralExpenseResponse `json:"general_expense"`
	Total          float64                `json:"total"`
	Formatted      string                 `json:"formatted"`
	RecordedAt     time.Time              `json:"recorded_at"`
}

type BudgetResponse struct {
	ID              string                  `json:"id"`
	Area            string                  `json:"area"`
	Email           string                  `json:"email"`
	StartDate       string                  `json:"start_date"`
	EndDate         string                  `json:"end_date"`
	Destination     string                  `json:"destination"`
	Travelers       []string                `json:"travelers"`
	Currency        string                  `json:"currency"`
	DailyExpenses   []DailyExpenseResponse  `json:"daily_expenses"`
	GeneralExpense  GeneralExpenseResponse  `json:"general_expense"`
	CorporateCards  []CorporateCardResponse `json:"corporate_cards,omitempty"`
	ExchangeRates   map[string]float64      `json:"exchange_rates,omitempty"`
	ActualExpense   *ActualExpenseResponse  `json:"actual_expense,omitempty"`
	Totals          TotalsResponse          `json:"totals"`
	Status          string                  `json:"status"`
	CreatedAt       time.Time               `json:"created_at"`
	ApprovedBy      *string                 `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time              `json:"approved_at,omitempty"`
	RejectionReason string                  `json:"rejection_reason,omitempty"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	res := BudgetResponse{
		ID:              b.ID,
		Area:            b.Area,
		Email:           b.Email,
		StartDate:       formatDate(b.StartDate),
		EndDate:         formatDate(b.EndDate),
		Destination:     b.Destination,
		Travelers:       b.Travelers,
		Currency:        string(b.Currency),
		DailyExpenses:   fromDailyExpenses(b.DailyExpenses),
		GeneralExpense:  GeneralExpenseResponse(b.GeneralExpense),
		ExchangeRates:   fromRates(b.ExchangeRates),
		Totals:          totals(budget.BreakdownOf(b), b.Currency, &b),
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		ApprovedBy:      b.ApprovedBy,
		ApprovedAt:      b.ApprovedAt,
		RejectionReason: b.RejectionReason,
	}
	if b.CorporateCards != nil {
		res.CorporateCards = make([]CorporateCardResponse, 0, len(b.CorporateCards))
		for _, c := range b.CorporateCards {
			res.CorporateCards = append(res.CorporateCards, CorporateCardResponse(c))
		}
	}
	if actual, ok := budget.ActualTotal(b); ok {
		res.ActualExpense = &ActualExpenseResponse{
			DailyExpenses:  fromDailyExpenses(b.ActualExpense.DailyExpenses),
			GeneralExpense: GeneralExpenseResponse(b.ActualExpense.GeneralExpense),
			Total:          actual,
			Formatted:      currency.Format(actual, b.Currency),
			RecordedAt:     b.ActualExpense.RecordedAt,
		}
	}
	return res
}

func FromBudgets(list []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromBudget(b))
	}
	return out
}

type QuoteResponse struct {
	Currency      string             `json:"currency"`
	DaysInRange   int                `json:"days_in_range"`
	Totals        TotalsResponse     `json:"totals"`
	ExchangeRates map[string]float64 `json:"exchange_rates"`
}

func FromQuote(q usecase.BudgetQuote) QuoteResponse {
	usd := q.TotalUSD
	return QuoteResponse{
		Currency:    string(q.Currency),
		DaysInRange: q.DaysInRange,
		Totals: TotalsResponse{
			Daily:          q.Breakdown.Daily,
			General:        q.Breakdown.General,
			CorporateCards: q.Breakdown.CorporateCards,
			Total:          q.Breakdown.Total,
			Formatted:      q.Formatted,
			TotalUSD:       &usd,
			FormattedUSD:   q.FormattedUSD,
		},
		ExchangeRates: fromRates(q.ExchangeRates),
	}
}

func totals(bd budget.Breakdown, code entities.Currency, b *entities.Budget) TotalsResponse {
	t := TotalsResponse{
		Daily:          bd.Daily,
		General:        bd.General,
		CorporateCards: bd.CorporateCards,
		Total:          bd.Total,
		Formatted:      currency.Format(bd.Total, code),
	}
	if usd, err := currency.Convert(bd.Total, code, b); err == nil {
		t.TotalUSD = &usd
		t.FormattedUSD = currency.Format(usd, entities.CurrencyUSD)
	}
	return t
}

func fromDailyExpenses(days []entities.DailyExpense) []DailyExpenseResponse {
	out := make([]DailyExpenseResponse, 0, len(days))
	for _, d := range days {
		items := make([]ExpenseItemResponse, 0, len(d.Expenses))
		for _, e := range d.Expenses {
			items = append(items, ExpenseItemResponse{
				ID:          e.ID,
				Category:    string(e.Category),
				Description: e.Description,
				Amount:      e.Amount,
			})
		}
		out = append(out, DailyExpenseResponse{
			ID:       d.ID,
			Date:     formatDate(d.Date),
			Expenses: items,
			Subtotal: budget.DailyTotal([]entities.DailyExpense{d}),
		})
	}
	return out
}

func fromRates(r entities.ExchangeRates) map[string]float64 {
	if r == nil {
		return nil
	}
	out := make(map[string]float64, len(r))
	for k, v := range r {
		out[string(k)] = v
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}
