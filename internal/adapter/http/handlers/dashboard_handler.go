package handlers

import (
	"net/http"

	response "travel_budget/internal/adapter/http/dto/response"
	"travel_budget/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetDashboard godoc
// @Summary      Budget counts and approved spend per area
// @Tags         dashboard
// @Produce      json
// @Param        X-User-ID  header    string  true  "Authenticated user id (approver or admin)"
// @Success      200        {object}  response.DashboardResponse
// @Failure      500        {object}  pkg.HTTPError
// @Router       /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	s, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		respondError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(s))
}
