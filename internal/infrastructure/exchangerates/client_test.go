package exchangerates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"travel_budget/internal/domain/entities"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_FetchRate(t *testing.T) {
	cases := []struct {
		name string
		body string
		want float64
	}{
		{name: "flat rate", body: `{"rate": 1050.5}`, want: 1050.5},
		{name: "rates table", body: `{"base":"USD","rates":{"ARS":1040,"BRL":5.1}}`, want: 1040},
		{name: "conversion rates lower case", body: `{"conversion_rates":{"ars":1030}}`, want: 1030},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := serve(t, http.StatusOK, tc.body)
			c := NewClient(time.Second, 0, nil)

			rate, err := c.FetchRate(context.Background(), entities.CurrencyARS, srv.URL)
			require.NoError(t, err)
			assert.Equal(t, tc.want, rate)
		})
	}
}

func TestClient_FetchRate_Errors(t *testing.T) {
	t.Run("missing currency", func(t *testing.T) {
		srv := serve(t, http.StatusOK, `{"rates":{"EUR":0.9}}`)
		c := NewClient(time.Second, 0, nil)

		_, err := c.FetchRate(context.Background(), entities.CurrencyARS, srv.URL)
		assert.True(t, errors.Is(err, ErrRateNotFound))
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := serve(t, http.StatusOK, `<html>`)
		c := NewClient(time.Second, 0, nil)

		_, err := c.FetchRate(context.Background(), entities.CurrencyARS, srv.URL)
		assert.Error(t, err)
	})

	t.Run("not found status", func(t *testing.T) {
		srv := serve(t, http.StatusNotFound, `{}`)
		c := NewClient(time.Second, 0, nil)

		_, err := c.FetchRate(context.Background(), entities.CurrencyARS, srv.URL)
		assert.Error(t, err)
	})
}

func TestClient_FetchRate_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"rate": 5.2}`))
	}))
	defer srv.Close()

	c := NewClient(time.Second, 2, nil)
	c.http.RetryWaitMin = time.Millisecond
	c.http.RetryWaitMax = 5 * time.Millisecond

	rate, err := c.FetchRate(context.Background(), entities.CurrencyBRL, srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 5.2, rate)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
