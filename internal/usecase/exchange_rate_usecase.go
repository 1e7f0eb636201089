package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"
	"time"

	"travel_budget/internal/domain/currency"
	"travel_budget/internal/domain/entities"
	"travel_budget/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidCurrency      = errors.New("invalid currency")
	ErrInvalidRateSourceURL = errors.New("invalid exchange rate source url")
)

const maxConcurrentRateFetches = 4

// IExchangeRateUseCase manages live rate sources and produces rate snapshots.
type IExchangeRateUseCase interface {
	ListConfigs(ctx context.Context) ([]entities.ExchangeRateConfig, error)
	SaveConfig(ctx context.Context, code entities.Currency, apiURL string) (entities.ExchangeRateConfig, error)
	CurrentRates(ctx context.Context) entities.ExchangeRates
}

type ExchangeRateUseCase struct {
	repo     interfaces.IExchangeRateConfigRepository
	provider interfaces.IExchangeRateProvider
	log      *zap.Logger
}

var (
	_ IExchangeRateUseCase                = (*ExchangeRateUseCase)(nil)
	_ interfaces.IExchangeRateSnapshotter = (*ExchangeRateUseCase)(nil)
)

func NewExchangeRateUseCase(repo interfaces.IExchangeRateConfigRepository, provider interfaces.IExchangeRateProvider, log *zap.Logger) *ExchangeRateUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExchangeRateUseCase{repo: repo, provider: provider, log: log}
}

func (u *ExchangeRateUseCase) ListConfigs(ctx context.Context) ([]entities.ExchangeRateConfig, error) {
	return u.repo.List(ctx)
}

func (u *ExchangeRateUseCase) SaveConfig(ctx context.Context, code entities.Currency, apiURL string) (entities.ExchangeRateConfig, error) {
	code = entities.Currency(strings.ToUpper(strings.TrimSpace(string(code))))
	if !currency.IsSupported(code) || code == entities.CurrencyUSD {
		return entities.ExchangeRateConfig{}, ErrInvalidCurrency
	}

	apiURL = strings.TrimSpace(apiURL)
	parsed, err := url.Parse(apiURL)
	if apiURL == "" || err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return entities.ExchangeRateConfig{}, ErrInvalidRateSourceURL
	}

	saved, err := u.repo.Save(ctx, entities.ExchangeRateConfig{
		Currency:  code,
		APIURL:    apiURL,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return entities.ExchangeRateConfig{}, err
	}
	u.log.Info("[rates][usecase] source saved", zap.String("currency", string(code)), zap.String("api_url", apiURL))
	return saved, nil
}

// CurrentRates starts from the static table and overlays every live rate that
// could be read. Failures are logged and leave the static value in place.
func (u *ExchangeRateUseCase) CurrentRates(ctx context.Context) entities.ExchangeRates {
	rates := currency.StaticRates()
	if u.repo == nil || u.provider == nil {
		return rates
	}

	configs, err := u.repo.List(ctx)
	if err != nil {
		u.log.Warn("[rates][usecase] sources unavailable; using static rates", zap.Error(err))
		return rates
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRateFetches)
	for _, cfg := range configs {
		if cfg.Currency == entities.CurrencyUSD || strings.TrimSpace(cfg.APIURL) == "" {
			continue
		}
		g.Go(func() error {
			rate, err := u.provider.FetchRate(gctx, cfg.Currency, cfg.APIURL)
			if err != nil || rate <= 0 {
				u.log.Warn("[rates][usecase] live rate unavailable; using static rate",
					zap.String("currency", string(cfg.Currency)),
					zap.Float64("rate", rate),
					zap.Error(err),
				)
				return nil
			}
			mu.Lock()
			rates[cfg.Currency] = rate
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return rates
}
