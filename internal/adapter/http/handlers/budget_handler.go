package handlers

import (
	"errors"
	"io"
	"net/http"

	request "travel_budget/internal/adapter/http/dto/request"
	response "travel_budget/internal/adapter/http/dto/response"
	"travel_budget/internal/domain/currency"
	"travel_budget/internal/domain/entities"
	"travel_budget/internal/usecase"
	"travel_budget/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)
	errInvalidStatusFilter  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid status filter", http.StatusBadRequest)
)

// BudgetHandler serves the travel budget endpoints.
//
// Requesters only ever see their own budgets; reviewers (approver, admin) see all.
type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// CreateBudget godoc
// @Summary      Submit a travel budget
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                       true  "Authenticated user id"
// @Param        budget     body      request.CreateBudgetRequest  true  "Budget"
// @Success      201        {object}  response.BudgetResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Router       /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	cmd, ok := bindBudget(c, user)
	if !ok {
		return
	}

	b, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(b))
}

// QuoteBudget godoc
// @Summary      Compute totals of a draft budget without saving it
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                       true  "Authenticated user id"
// @Param        budget     body      request.CreateBudgetRequest  true  "Draft budget"
// @Success      200        {object}  response.QuoteResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /budgets/quote [post]
func (h *BudgetHandler) QuoteBudget(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	cmd, ok := bindBudget(c, user)
	if !ok {
		return
	}

	q, err := h.usecase.Quote(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// ListBudgets godoc
// @Summary      List budgets, newest first
// @Tags         budgets
// @Produce      json
// @Param        X-User-ID  header    string  true   "Authenticated user id"
// @Param        status     query     string  false  "New, Approved or Rejected"
// @Param        area       query     string  false  "Area"
// @Param        email      query     string  false  "Requester email (reviewers only)"
// @Success      200        {array}   response.BudgetResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /budgets [get]
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	filter := entities.BudgetFilter{
		Status: entities.BudgetStatus(c.Query("status")),
		Area:   c.Query("area"),
		Email:  c.Query("email"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		respondError(c, errInvalidStatusFilter)
		return
	}
	if !user.Role.CanReview() {
		filter.Email = user.Email
	}

	list, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudgets(list))
}

// GetBudget godoc
// @Summary      Get a budget
// @Tags         budgets
// @Produce      json
// @Param        X-User-ID  header    string  true  "Authenticated user id"
// @Param        id         path      string  true  "Budget id"
// @Success      200        {object}  response.BudgetResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	b, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapBudgetError(err))
		return
	}
	if !user.Role.CanReview() && b.Email != user.Email {
		// Other requesters' budgets do not exist as far as this caller knows.
		respondError(c, mapBudgetError(usecase.ErrBudgetNotFound))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// ApproveBudget godoc
// @Summary      Approve a pending budget and charge its area
// @Tags         budgets
// @Produce      json
// @Param        X-User-ID  header    string  true  "Authenticated user id (approver or admin)"
// @Param        id         path      string  true  "Budget id"
// @Success      200        {object}  response.BudgetResponse
// @Failure      404        {object}  pkg.HTTPError
// @Failure      409        {object}  pkg.HTTPError
// @Router       /budgets/{id}/approve [patch]
func (h *BudgetHandler) ApproveBudget(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	b, err := h.usecase.Approve(c.Request.Context(), c.Param("id"), user.Email)
	if err != nil {
		respondError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// RejectBudget godoc
// @Summary      Reject a pending budget
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                       true   "Authenticated user id (approver or admin)"
// @Param        id         path      string                       true   "Budget id"
// @Param        body       body      request.RejectBudgetRequest  false  "Reason"
// @Success      200        {object}  response.BudgetResponse
// @Failure      404        {object}  pkg.HTTPError
// @Failure      409        {object}  pkg.HTTPError
// @Router       /budgets/{id}/reject [patch]
func (h *BudgetHandler) RejectBudget(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var payload request.RejectBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, errInvalidBudgetPayload)
		return
	}

	b, err := h.usecase.Reject(c.Request.Context(), c.Param("id"), user.Email, payload.Reason)
	if err != nil {
		respondError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// RecordActualExpense godoc
// @Summary      Record what an approved trip really cost
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                        true  "Authenticated user id (owner or admin)"
// @Param        id         path      string                        true  "Budget id"
// @Param        actual     body      request.ActualExpenseRequest  true  "Actual expenses"
// @Success      200        {object}  response.BudgetResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      403        {object}  pkg.HTTPError
// @Failure      409        {object}  pkg.HTTPError
// @Router       /budgets/{id}/actual [put]
func (h *BudgetHandler) RecordActualExpense(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var payload request.ActualExpenseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidBudgetPayload)
		return
	}
	actual, err := payload.ToEntity()
	if err != nil {
		respondError(c, errInvalidBudgetPayload)
		return
	}

	existing, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapBudgetError(err))
		return
	}
	if existing.Email != user.Email && user.Role != entities.UserRoleAdmin {
		respondError(c, errForbidden)
		return
	}

	b, err := h.usecase.RecordActualExpense(c.Request.Context(), existing.ID, actual)
	if err != nil {
		respondError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

func bindBudget(c *gin.Context, user entities.UserProfile) (usecase.CreateBudgetCommand, bool) {
	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidBudgetPayload)
		return usecase.CreateBudgetCommand{}, false
	}
	cmd, err := payload.ToCommand(user.Email)
	if err != nil {
		respondError(c, pkg.NewDomainError("INVALID_BUDGET_INPUT", err.Error(), err, http.StatusBadRequest))
		return usecase.CreateBudgetCommand{}, false
	}
	return cmd, true
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudget):
		return pkg.NewDomainError("INVALID_BUDGET", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBudgetID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid budget id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAreaNotFound):
		return pkg.NewDomainErrorSimple("AREA_NOT_FOUND", "Area not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotPending):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_PENDING", "Budget was already reviewed", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetNotApproved):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_APPROVED", "Budget is not approved", http.StatusConflict)
	case errors.Is(err, currency.ErrUnknownCurrency):
		return pkg.NewDomainError("UNKNOWN_CURRENCY", "Budget currency cannot be converted", err, http.StatusInternalServerError)
	default:
		return internalError(err)
	}
}
