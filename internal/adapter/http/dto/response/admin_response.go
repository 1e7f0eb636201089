package response

import (
	"sort"
	"time"

	"travel_budget/internal/domain/currency"
	"travel_budget/internal/domain/entities"
	"travel_budget/internal/usecase"
)

type AreaBudgetResponse struct {
	Area               string  `json:"area"`
	TotalBudget        float64 `json:"total_budget"`
	UsedBudget         float64 `json:"used_budget"`
	Remaining          float64 `json:"remaining"`
	FormattedTotal     string  `json:"formatted_total"`
	FormattedUsed      string  `json:"formatted_used"`
	FormattedRemaining string  `json:"formatted_remaining"`
}

func FromAreaBudget(a entities.AreaBudget) AreaBudgetResponse {
	return AreaBudgetResponse{
		Area:               a.Area,
		TotalBudget:        a.TotalBudget,
		UsedBudget:         a.UsedBudget,
		Remaining:          a.Remaining(),
		FormattedTotal:     currency.Format(a.TotalBudget, entities.CurrencyUSD),
		FormattedUsed:      currency.Format(a.UsedBudget, entities.CurrencyUSD),
		FormattedRemaining: currency.Format(a.Remaining(), entities.CurrencyUSD),
	}
}

func FromAreaBudgets(list []entities.AreaBudget) []AreaBudgetResponse {
	out := make([]AreaBudgetResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAreaBudget(a))
	}
	return out
}

type AreaSummaryResponse struct {
	Area        string  `json:"area"`
	TotalBudget float64 `json:"total_budget"`
	UsedBudget  float64 `json:"used_budget"`
	SpentUSD    float64 `json:"spent_usd"`
	Remaining   float64 `json:"remaining"`
}

type DashboardResponse struct {
	TotalBudgets    int                   `json:"total_budgets"`
	PendingBudgets  int                   `json:"pending_budgets"`
	ApprovedBudgets int                   `json:"approved_budgets"`
	RejectedBudgets int                   `json:"rejected_budgets"`
	TotalSpentUSD   float64               `json:"total_spent_usd"`
	FormattedSpent  string                `json:"formatted_spent"`
	Areas           []AreaSummaryResponse `json:"areas"`
}

func FromDashboard(s usecase.DashboardSummary) DashboardResponse {
	areas := make([]AreaSummaryResponse, 0, len(s.Areas))
	for _, a := range s.Areas {
		areas = append(areas, AreaSummaryResponse(a))
	}
	return DashboardResponse{
		TotalBudgets:    s.TotalBudgets,
		PendingBudgets:  s.PendingBudgets,
		ApprovedBudgets: s.ApprovedBudgets,
		RejectedBudgets: s.RejectedBudgets,
		TotalSpentUSD:   s.TotalSpentUSD,
		FormattedSpent:  currency.Format(s.TotalSpentUSD, entities.CurrencyUSD),
		Areas:           areas,
	}
}

type RateResponse struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
	Static   float64 `json:"static_rate"`
}

// RatesResponse lists units of each currency per 1 USD.
type RatesResponse struct {
	Base  string         `json:"base"`
	Rates []RateResponse `json:"rates"`
}

func FromRates(r entities.ExchangeRates) RatesResponse {
	static := currency.StaticRates()
	out := RatesResponse{Base: string(entities.CurrencyUSD), Rates: make([]RateResponse, 0, len(r))}
	for code, rate := range r {
		out.Rates = append(out.Rates, RateResponse{Currency: string(code), Rate: rate, Static: static[code]})
	}
	sort.Slice(out.Rates, func(i, j int) bool { return out.Rates[i].Currency < out.Rates[j].Currency })
	return out
}

type RateConfigResponse struct {
	Currency  string    `json:"currency_code"`
	APIURL    string    `json:"api_url"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromRateConfig(c entities.ExchangeRateConfig) RateConfigResponse {
	return RateConfigResponse{Currency: string(c.Currency), APIURL: c.APIURL, UpdatedAt: c.UpdatedAt}
}

func FromRateConfigs(list []entities.ExchangeRateConfig) []RateConfigResponse {
	out := make([]RateConfigResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromRateConfig(c))
	}
	return out
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUser(u entities.UserProfile) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, FullName: u.FullName, Role: string(u.Role), CreatedAt: u.CreatedAt}
}

func FromUsers(list []entities.UserProfile) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, FromUser(u))
	}
	return out
}
