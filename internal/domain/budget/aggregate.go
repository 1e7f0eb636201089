// Package budget sums the expense groups of a travel budget.
//
// Amounts are assumed valid (non-negative); validation happens before a budget
// reaches this package. Every sum is a left-to-right fold with no rounding.
package budget

import "travel_budget/internal/domain/entities"

// Breakdown is a budget total split by expense group, in the budget currency.
type Breakdown struct {
	Daily          float64 `json:"daily"`
	General        float64 `json:"general"`
	CorporateCards float64 `json:"corporate_cards"`
	Total          float64 `json:"total"`
}

// DailyTotal sums every expense item of every day, day by day.
func DailyTotal(days []entities.DailyExpense) float64 {
	sum := 0.0
	for _, day := range days {
		daySum := 0.0
		for _, item := range day.Expenses {
			daySum += item.Amount
		}
		sum += daySum
	}
	return sum
}

// GeneralTotal returns accommodation + flights.
func GeneralTotal(g entities.GeneralExpense) float64 {
	return g.Accommodation + g.Flights
}

// CorporateCardsTotal is 0 for a nil collection.
func CorporateCardsTotal(cards []entities.CorporateCard) float64 {
	sum := 0.0
	for _, c := range cards {
		sum += c.Amount
	}
	return sum
}

// Total returns daily + general + corporate cards.
func Total(b entities.Budget) float64 {
	return DailyTotal(b.DailyExpenses) + GeneralTotal(b.GeneralExpense) + CorporateCardsTotal(b.CorporateCards)
}

// BreakdownOf returns the three group subtotals and their sum.
func BreakdownOf(b entities.Budget) Breakdown {
	bd := Breakdown{
		Daily:          DailyTotal(b.DailyExpenses),
		General:        GeneralTotal(b.GeneralExpense),
		CorporateCards: CorporateCardsTotal(b.CorporateCards),
	}
	bd.Total = bd.Daily + bd.General + bd.CorporateCards
	return bd
}

// ActualTotal sums the recorded actual expenses. ok is false when none were recorded.
func ActualTotal(b entities.Budget) (total float64, ok bool) {
	if b.ActualExpense == nil {
		return 0, false
	}
	return DailyTotal(b.ActualExpense.DailyExpenses) + GeneralTotal(b.ActualExpense.GeneralExpense), true
}
