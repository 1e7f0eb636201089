package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"travel_budget/internal/domain/entities"
	"travel_budget/internal/usecase/interfaces"
)

var (
	ErrAreaNotFound      = errors.New("area not found")
	ErrInvalidArea       = errors.New("invalid area")
	ErrInvalidAreaBudget = errors.New("invalid area budget")
)

// IAreaUseCase manages organizational areas and their USD allotments.
type IAreaUseCase interface {
	List(ctx context.Context) ([]entities.AreaBudget, error)
	Get(ctx context.Context, area string) (entities.AreaBudget, error)
	Upsert(ctx context.Context, area string, totalBudget float64) (entities.AreaBudget, error)
}

type AreaUseCase struct {
	repo interfaces.IAreaBudgetRepository
}

var _ IAreaUseCase = (*AreaUseCase)(nil)

func NewAreaUseCase(repo interfaces.IAreaBudgetRepository) *AreaUseCase {
	return &AreaUseCase{repo: repo}
}

func (u *AreaUseCase) List(ctx context.Context) ([]entities.AreaBudget, error) {
	areas, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(areas, func(i, j int) bool { return areas[i].Area < areas[j].Area })
	return areas, nil
}

func (u *AreaUseCase) Get(ctx context.Context, area string) (entities.AreaBudget, error) {
	area = strings.TrimSpace(area)
	if area == "" {
		return entities.AreaBudget{}, ErrInvalidArea
	}
	a, err := u.repo.Get(ctx, area)
	if err != nil {
		return entities.AreaBudget{}, err
	}
	if a.Area == "" {
		return entities.AreaBudget{}, ErrAreaNotFound
	}
	return a, nil
}

// Upsert sets the total allotment, creating the area when missing. The used
// amount is left untouched.
func (u *AreaUseCase) Upsert(ctx context.Context, area string, totalBudget float64) (entities.AreaBudget, error) {
	area = strings.TrimSpace(area)
	if area == "" {
		return entities.AreaBudget{}, ErrInvalidArea
	}
	if totalBudget < 0 {
		return entities.AreaBudget{}, ErrInvalidAreaBudget
	}
	return u.repo.SetTotalBudget(ctx, area, totalBudget)
}
