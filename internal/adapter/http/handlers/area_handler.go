package handlers

import (
	"errors"
	"net/http"

	request "travel_budget/internal/adapter/http/dto/request"
	response "travel_budget/internal/adapter/http/dto/response"
	"travel_budget/internal/usecase"
	"travel_budget/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAreaPayload = pkg.NewDomainErrorSimple("INVALID_AREA_INPUT", "Invalid area payload", http.StatusBadRequest)

type AreaHandler struct {
	usecase usecase.IAreaUseCase
}

func NewAreaHandler(uc usecase.IAreaUseCase) *AreaHandler {
	return &AreaHandler{usecase: uc}
}

// ListAreas godoc
// @Summary      List areas with their USD allotment and usage
// @Tags         areas
// @Produce      json
// @Param        X-User-ID  header    string  true  "Authenticated user id"
// @Success      200        {array}   response.AreaBudgetResponse
// @Router       /areas [get]
func (h *AreaHandler) ListAreas(c *gin.Context) {
	areas, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, mapAreaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAreaBudgets(areas))
}

// UpsertArea godoc
// @Summary      Create an area or change its total budget
// @Tags         areas
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                     true  "Authenticated user id (admin)"
// @Param        area       path      string                     true  "Area name"
// @Param        body       body      request.UpsertAreaRequest  true  "Total budget in USD"
// @Success      200        {object}  response.AreaBudgetResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /areas/{area} [put]
func (h *AreaHandler) UpsertArea(c *gin.Context) {
	var payload request.UpsertAreaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidAreaPayload)
		return
	}

	a, err := h.usecase.Upsert(c.Request.Context(), c.Param("area"), *payload.TotalBudget)
	if err != nil {
		respondError(c, mapAreaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAreaBudget(a))
}

func mapAreaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidArea), errors.Is(err, usecase.ErrInvalidAreaBudget):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAreaNotFound):
		return pkg.NewDomainErrorSimple("AREA_NOT_FOUND", "Area not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
