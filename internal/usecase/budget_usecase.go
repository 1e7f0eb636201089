package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"travel_budget/internal/domain/budget"
	"travel_budget/internal/domain/currency"
	"travel_budget/internal/domain/entities"
	"travel_budget/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrBudgetNotFound    = errors.New("budget not found")
	ErrInvalidBudgetID   = errors.New("invalid budget id")
	ErrInvalidBudget     = errors.New("invalid budget")
	ErrBudgetNotPending  = errors.New("budget is not pending review")
	ErrBudgetNotApproved = errors.New("budget is not approved")
)

// CreateBudgetCommand is the requester's input for a new budget.
type CreateBudgetCommand struct {
	Area           string
	Email          string
	StartDate      time.Time
	EndDate        time.Time
	Destination    string
	Travelers      []string
	Currency       entities.Currency
	DailyExpenses  []entities.DailyExpense
	GeneralExpense entities.GeneralExpense
	CorporateCards []entities.CorporateCard
}

// BudgetQuote is the computed cost of a draft budget.
type BudgetQuote struct {
	Breakdown     budget.Breakdown
	Currency      entities.Currency
	TotalUSD      float64
	Formatted     string
	FormattedUSD  string
	ExchangeRates entities.ExchangeRates
	DaysInRange   int
}

// IBudgetUseCase exposes the travel budget operations.
//
//   - Create / Quote: requester submits (or previews) a budget
//   - Approve / Reject: approver review, New -> Approved | Rejected
//   - RecordActualExpense: post-trip actuals on an approved budget
type IBudgetUseCase interface {
	Create(ctx context.Context, cmd CreateBudgetCommand) (entities.Budget, error)
	Quote(ctx context.Context, cmd CreateBudgetCommand) (BudgetQuote, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context, filter entities.BudgetFilter) ([]entities.Budget, error)
	Approve(ctx context.Context, id, approvedBy string) (entities.Budget, error)
	Reject(ctx context.Context, id, rejectedBy, reason string) (entities.Budget, error)
	RecordActualExpense(ctx context.Context, id string, actual entities.ActualExpense) (entities.Budget, error)
}

type BudgetUseCase struct {
	repo     interfaces.IBudgetRepository
	areaRepo interfaces.IAreaBudgetRepository
	rates    interfaces.IExchangeRateSnapshotter
	events   interfaces.IBudgetEventPublisher
	log      *zap.Logger
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

// NewBudgetUseCase wires the budget use case. events may be nil.
func NewBudgetUseCase(
	repo interfaces.IBudgetRepository,
	areaRepo interfaces.IAreaBudgetRepository,
	rates interfaces.IExchangeRateSnapshotter,
	events interfaces.IBudgetEventPublisher,
	log *zap.Logger,
) *BudgetUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &BudgetUseCase{repo: repo, areaRepo: areaRepo, rates: rates, events: events, log: log}
}

func (u *BudgetUseCase) Create(ctx context.Context, cmd CreateBudgetCommand) (entities.Budget, error) {
	b, err := buildBudget(cmd)
	if err != nil {
		u.log.Info("[budget][usecase] create rejected", zap.String("area", cmd.Area), zap.Error(err))
		return entities.Budget{}, err
	}

	area, err := u.areaRepo.Get(ctx, b.Area)
	if err != nil {
		return entities.Budget{}, err
	}
	if area.Area == "" {
		return entities.Budget{}, ErrAreaNotFound
	}

	b.ID = uuid.NewString()
	b.Status = entities.BudgetStatusNew
	b.CreatedAt = time.Now().UTC()
	if u.rates != nil {
		b.ExchangeRates = u.rates.CurrentRates(ctx)
	}

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		u.log.Error("[budget][usecase] create failed", zap.String("budget_id", b.ID), zap.Error(err))
		return entities.Budget{}, err
	}
	u.log.Info("[budget][usecase] created",
		zap.String("budget_id", created.ID),
		zap.String("area", created.Area),
		zap.String("currency", string(created.Currency)),
		zap.Float64("total", budget.Total(created)),
	)
	u.publish(ctx, interfaces.EventBudgetCreated, created)
	return created, nil
}

func (u *BudgetUseCase) Quote(ctx context.Context, cmd CreateBudgetCommand) (BudgetQuote, error) {
	b, err := buildBudget(cmd)
	if err != nil {
		return BudgetQuote{}, err
	}
	if u.rates != nil {
		b.ExchangeRates = u.rates.CurrentRates(ctx)
	}

	bd := budget.BreakdownOf(b)
	usd, err := currency.Convert(bd.Total, b.Currency, &b)
	if err != nil {
		return BudgetQuote{}, err
	}
	return BudgetQuote{
		Breakdown:     bd,
		Currency:      b.Currency,
		TotalUSD:      usd,
		Formatted:     currency.Format(bd.Total, b.Currency),
		FormattedUSD:  currency.Format(usd, entities.CurrencyUSD),
		ExchangeRates: b.ExchangeRates,
		DaysInRange:   len(b.DailyExpenses),
	}, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) List(ctx context.Context, filter entities.BudgetFilter) ([]entities.Budget, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidBudget, filter.Status)
	}
	filter.Area = strings.TrimSpace(filter.Area)
	filter.Email = strings.TrimSpace(filter.Email)
	return u.repo.List(ctx, filter)
}

// Approve settles the budget in USD using its own rate snapshot and charges the
// amount to its area.
func (u *BudgetUseCase) Approve(ctx context.Context, id, approvedBy string) (entities.Budget, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.Status != entities.BudgetStatusNew {
		return entities.Budget{}, ErrBudgetNotPending
	}

	total := budget.Total(b)
	usd, err := currency.Convert(total, b.Currency, &b)
	if err != nil {
		u.log.Error("[budget][usecase] cannot convert total", zap.String("budget_id", b.ID), zap.Error(err))
		return entities.Budget{}, err
	}

	updated, err := u.repo.ApproveAndCharge(ctx, b.ID, b.Area, usd, approvedBy, time.Now().UTC())
	if err != nil {
		u.log.Error("[budget][usecase] approval not stored",
			zap.String("budget_id", b.ID),
			zap.String("area", b.Area),
			zap.Float64("amount_usd", usd),
			zap.Error(err),
		)
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		// Another reviewer settled it between the read and the transaction.
		return entities.Budget{}, ErrBudgetNotPending
	}

	u.log.Info("[budget][usecase] approved",
		zap.String("budget_id", updated.ID),
		zap.String("approved_by", approvedBy),
		zap.Float64("total", total),
		zap.Float64("total_usd", usd),
	)
	u.publish(ctx, interfaces.EventBudgetApproved, updated)
	return updated, nil
}

func (u *BudgetUseCase) Reject(ctx context.Context, id, rejectedBy, reason string) (entities.Budget, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.Status != entities.BudgetStatusNew {
		return entities.Budget{}, ErrBudgetNotPending
	}

	updated, err := u.repo.MarkRejected(ctx, b.ID, rejectedBy, strings.TrimSpace(reason), time.Now().UTC())
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotPending
	}

	u.log.Info("[budget][usecase] rejected", zap.String("budget_id", updated.ID), zap.String("rejected_by", rejectedBy))
	u.publish(ctx, interfaces.EventBudgetRejected, updated)
	return updated, nil
}

func (u *BudgetUseCase) RecordActualExpense(ctx context.Context, id string, actual entities.ActualExpense) (entities.Budget, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.Status != entities.BudgetStatusApproved {
		return entities.Budget{}, ErrBudgetNotApproved
	}

	start, end := dateOnly(b.StartDate), dateOnly(b.EndDate)
	for i := range actual.DailyExpenses {
		d := &actual.DailyExpenses[i]
		d.Date = dateOnly(d.Date)
		if d.Date.Before(start) || d.Date.After(end) {
			return entities.Budget{}, fmt.Errorf("%w: actual expense date %s outside trip", ErrInvalidBudget, d.Date.Format(time.DateOnly))
		}
		if err := normalizeItems(d); err != nil {
			return entities.Budget{}, err
		}
	}
	if actual.GeneralExpense.Accommodation < 0 || actual.GeneralExpense.Flights < 0 {
		return entities.Budget{}, fmt.Errorf("%w: general expenses must not be negative", ErrInvalidBudget)
	}
	actual.RecordedAt = time.Now().UTC()

	updated, err := u.repo.SetActualExpense(ctx, b.ID, actual)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return updated, nil
}

func (u *BudgetUseCase) publish(ctx context.Context, event string, b entities.Budget) {
	if u.events == nil {
		return
	}
	if err := u.events.Publish(ctx, event, b); err != nil {
		u.log.Warn("[budget][usecase] event not published", zap.String("event", event), zap.String("budget_id", b.ID), zap.Error(err))
	}
}

// buildBudget validates the command at the boundary and returns a normalized budget
// without identity or status.
func buildBudget(cmd CreateBudgetCommand) (entities.Budget, error) {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidBudget, fmt.Sprintf(format, args...))
	}

	area := strings.TrimSpace(cmd.Area)
	if area == "" {
		return entities.Budget{}, invalid("area is required")
	}
	email := strings.TrimSpace(cmd.Email)
	if email == "" || !strings.Contains(email, "@") {
		return entities.Budget{}, invalid("a valid email is required")
	}
	if !currency.IsSupported(cmd.Currency) {
		return entities.Budget{}, invalid("unsupported currency %q", cmd.Currency)
	}
	if cmd.StartDate.IsZero() || cmd.EndDate.IsZero() {
		return entities.Budget{}, invalid("start and end dates are required")
	}
	start, end := dateOnly(cmd.StartDate), dateOnly(cmd.EndDate)
	if start.After(end) {
		return entities.Budget{}, invalid("start date is after end date")
	}

	travelers := make([]string, 0, len(cmd.Travelers))
	for _, t := range cmd.Travelers {
		if t = strings.TrimSpace(t); t != "" {
			travelers = append(travelers, t)
		}
	}
	if len(travelers) == 0 {
		return entities.Budget{}, invalid("at least one traveler is required")
	}

	days := make([]entities.DailyExpense, len(cmd.DailyExpenses))
	copy(days, cmd.DailyExpenses)
	if err := checkDailyCoverage(start, end, days); err != nil {
		return entities.Budget{}, err
	}
	for i := range days {
		if days[i].ID == "" {
			days[i].ID = fmt.Sprintf("day-%d", i)
		}
		if err := normalizeItems(&days[i]); err != nil {
			return entities.Budget{}, err
		}
	}

	g := cmd.GeneralExpense
	if g.Accommodation < 0 || g.Flights < 0 {
		return entities.Budget{}, invalid("general expenses must not be negative")
	}

	var cards []entities.CorporateCard
	if cmd.CorporateCards != nil {
		cards = make([]entities.CorporateCard, 0, len(cmd.CorporateCards))
		for _, c := range cmd.CorporateCards {
			c.HolderName = strings.TrimSpace(c.HolderName)
			if c.HolderName == "" {
				return entities.Budget{}, invalid("corporate card holder name is required")
			}
			if c.Amount < 0 {
				return entities.Budget{}, invalid("corporate card amount must not be negative")
			}
			cards = append(cards, c)
		}
	}

	return entities.Budget{
		Area:           area,
		Email:          email,
		StartDate:      start,
		EndDate:        end,
		Destination:    strings.TrimSpace(cmd.Destination),
		Travelers:      travelers,
		Currency:       cmd.Currency,
		DailyExpenses:  days,
		GeneralExpense: g,
		CorporateCards: cards,
	}, nil
}

// checkDailyCoverage enforces one entry per calendar day of [start, end], in order.
func checkDailyCoverage(start, end time.Time, days []entities.DailyExpense) error {
	want := int(end.Sub(start).Hours()/24) + 1
	if len(days) != want {
		return fmt.Errorf("%w: expected %d daily expense entries, got %d", ErrInvalidBudget, want, len(days))
	}
	for i := range days {
		expected := start.AddDate(0, 0, i)
		days[i].Date = dateOnly(days[i].Date)
		if !days[i].Date.Equal(expected) {
			return fmt.Errorf("%w: daily expense %d should be %s, got %s", ErrInvalidBudget, i,
				expected.Format(time.DateOnly), days[i].Date.Format(time.DateOnly))
		}
	}
	return nil
}

func normalizeItems(d *entities.DailyExpense) error {
	items := make([]entities.ExpenseItem, len(d.Expenses))
	for i, item := range d.Expenses {
		switch item.Category {
		case entities.ExpenseCategoryLodging, entities.ExpenseCategoryTransport,
			entities.ExpenseCategoryFood, entities.ExpenseCategoryOther:
		default:
			return fmt.Errorf("%w: unknown expense category %q", ErrInvalidBudget, item.Category)
		}
		if item.Amount < 0 {
			return fmt.Errorf("%w: expense amounts must not be negative", ErrInvalidBudget)
		}
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		item.Description = strings.TrimSpace(item.Description)
		items[i] = item
	}
	d.Expenses = items
	return nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
