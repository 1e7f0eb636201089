package entities

import "time"

// BudgetStatus represents the lifecycle of a travel budget.
//
// Domain notes:
//   - A budget is created as New by its requester.
//   - Only an approver or admin moves it to Approved or Rejected; both are terminal.
//   - Budgets are never deleted.
type BudgetStatus string

const (
	BudgetStatusNew      BudgetStatus = "New"
	BudgetStatusApproved BudgetStatus = "Approved"
	BudgetStatusRejected BudgetStatus = "Rejected"
)

func (s BudgetStatus) Valid() bool {
	switch s {
	case BudgetStatusNew, BudgetStatusApproved, BudgetStatusRejected:
		return true
	}
	return false
}

type ExpenseCategory string

const (
	ExpenseCategoryLodging   ExpenseCategory = "lodging"
	ExpenseCategoryTransport ExpenseCategory = "transport"
	ExpenseCategoryFood      ExpenseCategory = "food"
	ExpenseCategoryOther     ExpenseCategory = "other"
)

type ExpenseItem struct {
	ID          string          `json:"id"`
	Category    ExpenseCategory `json:"category"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
}

// DailyExpense holds the itemized expenses of one calendar day of the trip.
type DailyExpense struct {
	ID       string        `json:"id"`
	Date     time.Time     `json:"date"`
	Expenses []ExpenseItem `json:"expenses"`
}

type GeneralExpense struct {
	Accommodation float64 `json:"accommodation"`
	Flights       float64 `json:"flights"`
}

type CorporateCard struct {
	HolderName string  `json:"holder_name"`
	Amount     float64 `json:"amount"`
}

// ActualExpense records what was really spent once the trip is over.
type ActualExpense struct {
	DailyExpenses  []DailyExpense `json:"daily_expenses"`
	GeneralExpense GeneralExpense `json:"general_expense"`
	RecordedAt     time.Time      `json:"recorded_at"`
}

// Budget is a single trip's expense request.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (email-index): email
//
// Invariants:
//   - DailyExpenses has one entry per calendar day of [StartDate, EndDate], in order.
//   - CorporateCards nil means none were requested.
//   - ExchangeRates is the snapshot taken at creation; nil means no snapshot was captured
//     and conversions use the static table.
type Budget struct {
	ID             string          `json:"id"`
	Area           string          `json:"area"`
	Email          string          `json:"email"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	Destination    string          `json:"destination"`
	Travelers      []string        `json:"travelers"`
	Currency       Currency        `json:"currency"`
	DailyExpenses  []DailyExpense  `json:"daily_expenses"`
	GeneralExpense GeneralExpense  `json:"general_expense"`
	CorporateCards []CorporateCard `json:"corporate_cards,omitempty"`
	ExchangeRates  ExchangeRates   `json:"exchange_rates,omitempty"`
	ActualExpense  *ActualExpense  `json:"actual_expense,omitempty"`

	Status          BudgetStatus `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	ApprovedBy      *string      `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time   `json:"approved_at,omitempty"`
	RejectionReason string       `json:"rejection_reason,omitempty"`
}

// BudgetFilter narrows budget listings. Empty fields match everything.
type BudgetFilter struct {
	Status BudgetStatus
	Area   string
	Email  string
}

func (f BudgetFilter) Matches(b Budget) bool {
	if f.Status != "" && b.Status != f.Status {
		return false
	}
	if f.Area != "" && b.Area != f.Area {
		return false
	}
	if f.Email != "" && b.Email != f.Email {
		return false
	}
	return true
}
