package usecase

import (
	"context"
	"sort"

	"travel_budget/internal/domain/budget"
	"travel_budget/internal/domain/currency"
	"travel_budget/internal/domain/entities"
	"travel_budget/internal/usecase/interfaces"
)

// AreaSummary compares an area's allotment with what its approved budgets cost.
type AreaSummary struct {
	Area        string
	TotalBudget float64
	UsedBudget  float64
	SpentUSD    float64
	Remaining   float64
}

type DashboardSummary struct {
	TotalBudgets    int
	PendingBudgets  int
	ApprovedBudgets int
	RejectedBudgets int
	TotalSpentUSD   float64
	Areas           []AreaSummary
}

// IDashboardUseCase aggregates budgets for reviewers.
type IDashboardUseCase interface {
	Summary(ctx context.Context) (DashboardSummary, error)
}

type DashboardUseCase struct {
	budgets interfaces.IBudgetRepository
	areas   interfaces.IAreaBudgetRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(budgets interfaces.IBudgetRepository, areas interfaces.IAreaBudgetRepository) *DashboardUseCase {
	return &DashboardUseCase{budgets: budgets, areas: areas}
}

// Summary converts every approved budget with its own snapshot, so the figures
// match the amounts charged to the areas at approval time.
func (u *DashboardUseCase) Summary(ctx context.Context) (DashboardSummary, error) {
	all, err := u.budgets.List(ctx, entities.BudgetFilter{})
	if err != nil {
		return DashboardSummary{}, err
	}
	areas, err := u.areas.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}

	var s DashboardSummary
	spentByArea := make(map[string]float64)
	for i := range all {
		b := all[i]
		s.TotalBudgets++
		switch b.Status {
		case entities.BudgetStatusNew:
			s.PendingBudgets++
		case entities.BudgetStatusRejected:
			s.RejectedBudgets++
		case entities.BudgetStatusApproved:
			s.ApprovedBudgets++
			usd, err := currency.Convert(budget.Total(b), b.Currency, &b)
			if err != nil {
				return DashboardSummary{}, err
			}
			s.TotalSpentUSD += usd
			spentByArea[b.Area] += usd
		}
	}

	sort.Slice(areas, func(i, j int) bool { return areas[i].Area < areas[j].Area })
	s.Areas = make([]AreaSummary, 0, len(areas))
	for _, a := range areas {
		spent := spentByArea[a.Area]
		s.Areas = append(s.Areas, AreaSummary{
			Area:        a.Area,
			TotalBudget: a.TotalBudget,
			UsedBudget:  a.UsedBudget,
			SpentUSD:    spent,
			Remaining:   a.TotalBudget - spent,
		})
	}
	return s, nil
}
