package routes

import (
	"travel_budget/internal/adapter/http/handlers"
	"travel_budget/internal/adapter/http/middleware"
	"travel_budget/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathBudgets   = "/budgets"
	PathDashboard = "/dashboard"
)

var reviewers = middleware.RequireRoles(entities.UserRoleApprover, entities.UserRoleAdmin)

func addBudgetRoutes(rg *gin.RouterGroup, budgetHandler *handlers.BudgetHandler, dashboardHandler *handlers.DashboardHandler) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", budgetHandler.CreateBudget)
		budgets.POST("/quote", budgetHandler.QuoteBudget)
		budgets.GET("", budgetHandler.ListBudgets)
		budgets.GET("/:id", budgetHandler.GetBudget)
		budgets.PATCH("/:id/approve", reviewers, budgetHandler.ApproveBudget)
		budgets.PATCH("/:id/reject", reviewers, budgetHandler.RejectBudget)
		// Ownership is checked by the handler.
		budgets.PUT("/:id/actual", budgetHandler.RecordActualExpense)
	}

	rg.GET(PathDashboard, reviewers, dashboardHandler.GetDashboard)
}
