package routes

import (
	"travel_budget/internal/adapter/http/handlers"
	"travel_budget/internal/adapter/http/middleware"
	"travel_budget/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathAreas         = "/areas"
	PathExchangeRates = "/exchange-rates"
	PathUsers         = "/users"
)

var adminOnly = middleware.RequireRoles(entities.UserRoleAdmin)

func addAdminRoutes(
	rg *gin.RouterGroup,
	areaHandler *handlers.AreaHandler,
	exchangeRateHandler *handlers.ExchangeRateHandler,
	userHandler *handlers.UserHandler,
) {
	areas := rg.Group(PathAreas)
	{
		areas.GET("", areaHandler.ListAreas)
		areas.PUT("/:area", adminOnly, areaHandler.UpsertArea)
	}

	rates := rg.Group(PathExchangeRates)
	{
		rates.GET("", exchangeRateHandler.GetRates)
		rates.GET("/config", adminOnly, exchangeRateHandler.ListConfigs)
		rates.PUT("/config/:currency", adminOnly, exchangeRateHandler.SaveConfig)
	}

	users := rg.Group(PathUsers)
	{
		users.GET("/me", userHandler.Me)
		users.GET("", adminOnly, userHandler.ListUsers)
		users.POST("", adminOnly, userHandler.RegisterUser)
		users.PATCH("/:id/role", adminOnly, userHandler.ChangeRole)
	}
}
