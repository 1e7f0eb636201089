package handlers

import (
	"errors"
	"net/http"

	request "travel_budget/internal/adapter/http/dto/request"
	response "travel_budget/internal/adapter/http/dto/response"
	"travel_budget/internal/domain/entities"
	"travel_budget/internal/usecase"
	"travel_budget/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRatePayload = pkg.NewDomainErrorSimple("INVALID_RATE_SOURCE_INPUT", "Invalid exchange rate source payload", http.StatusBadRequest)

type ExchangeRateHandler struct {
	usecase usecase.IExchangeRateUseCase
}

func NewExchangeRateHandler(uc usecase.IExchangeRateUseCase) *ExchangeRateHandler {
	return &ExchangeRateHandler{usecase: uc}
}

// GetRates godoc
// @Summary      Current rates (live where configured, static otherwise)
// @Tags         exchange-rates
// @Produce      json
// @Param        X-User-ID  header    string  true  "Authenticated user id"
// @Success      200        {object}  response.RatesResponse
// @Router       /exchange-rates [get]
func (h *ExchangeRateHandler) GetRates(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromRates(h.usecase.CurrentRates(c.Request.Context())))
}

// ListConfigs godoc
// @Summary      List live rate sources
// @Tags         exchange-rates
// @Produce      json
// @Param        X-User-ID  header    string  true  "Authenticated user id (admin)"
// @Success      200        {array}   response.RateConfigResponse
// @Router       /exchange-rates/config [get]
func (h *ExchangeRateHandler) ListConfigs(c *gin.Context) {
	configs, err := h.usecase.ListConfigs(c.Request.Context())
	if err != nil {
		respondError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRateConfigs(configs))
}

// SaveConfig godoc
// @Summary      Set the live rate source of a currency
// @Tags         exchange-rates
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                         true  "Authenticated user id (admin)"
// @Param        currency   path      string                         true  "ARS, COP, BRL or EUR"
// @Param        body       body      request.SaveRateConfigRequest  true  "Source URL"
// @Success      200        {object}  response.RateConfigResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /exchange-rates/config/{currency} [put]
func (h *ExchangeRateHandler) SaveConfig(c *gin.Context) {
	var payload request.SaveRateConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRatePayload)
		return
	}

	cfg, err := h.usecase.SaveConfig(c.Request.Context(), entities.Currency(c.Param("currency")), payload.APIURL)
	if err != nil {
		respondError(c, mapExchangeRateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRateConfig(cfg))
}

func mapExchangeRateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCurrency):
		return pkg.NewDomainErrorSimple("INVALID_CURRENCY", "Currency is not supported", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRateSourceURL):
		return pkg.NewDomainErrorSimple("INVALID_RATE_SOURCE", "Source must be an absolute http(s) URL", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
