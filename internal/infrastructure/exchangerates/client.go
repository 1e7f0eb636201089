package exchangerates

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"travel_budget/internal/domain/entities"
	"travel_budget/internal/usecase/interfaces"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

var ErrRateNotFound = errors.New("rate not found in response")

// Client reads live exchange rates over HTTP. Sources answer with JSON in one of
// these shapes, the rate being units of the currency per 1 USD:
//
//	{"rate": 1050.5}
//	{"rates": {"ARS": 1050.5}}
//	{"conversion_rates": {"ARS": 1050.5}}
type Client struct {
	http *retryablehttp.Client
}

var _ interfaces.IExchangeRateProvider = (*Client)(nil)

func NewClient(timeout time.Duration, retries int, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	rc := retryablehttp.NewClient()
	rc.HTTPClient = &http.Client{Timeout: timeout}
	rc.RetryMax = retries
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.Logger = &retryLogger{log: log.Sugar()}
	return &Client{http: rc}
}

func (c *Client) FetchRate(ctx context.Context, code entities.Currency, apiURL string) (float64, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to fetch %s rate", code)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return 0, errors.Wrap(err, "failed to read response")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, errors.Errorf("rate source answered %d for %s", resp.StatusCode, code)
	}
	return parseRate(body, code)
}

func parseRate(body []byte, code entities.Currency) (float64, error) {
	var payload struct {
		Rate            *float64           `json:"rate"`
		Rates           map[string]float64 `json:"rates"`
		ConversionRates map[string]float64 `json:"conversion_rates"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, errors.Wrap(err, "failed to parse response")
	}

	if payload.Rate != nil {
		return *payload.Rate, nil
	}
	for _, table := range []map[string]float64{payload.Rates, payload.ConversionRates} {
		for k, v := range table {
			if strings.EqualFold(k, string(code)) {
				return v, nil
			}
		}
	}
	return 0, errors.Wrapf(ErrRateNotFound, "currency %s", code)
}

// retryLogger adapts zap to retryablehttp.LeveledLogger.
type retryLogger struct {
	log *zap.SugaredLogger
}

func (l *retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.Errorw("[rates][http] "+msg, keysAndValues...)
}

func (l *retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw("[rates][http] "+msg, keysAndValues...)
}

func (l *retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.Debugw("[rates][http] "+msg, keysAndValues...)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.Warnw("[rates][http] "+msg, keysAndValues...)
}
