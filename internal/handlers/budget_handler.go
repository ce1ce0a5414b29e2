package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/period"
	"spendwise/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// SetBudgetRequest represents the request payload for setting a budget.
// Zero is a valid amount, so the field is a pointer to distinguish an
// explicit 0 from an absent value.
type SetBudgetRequest struct {
	Amount *float64      `json:"amount" binding:"required,gte=0"`
	Period period.Period `json:"period" binding:"omitempty,budget_period"`
}

// GetBudget handles retrieving the caller's budget for a period.
// @Summary     Get budget
// @Description Get the budget for a period; returns a zero-amount placeholder when none is set
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Period (weekly/monthly/yearly, default monthly)"
// @Success     200 {object} models.Budget "Budget (amount 0 when unset)"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	p, err := parsePeriod(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetBudget(userID, p)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, budget)
}

// SetBudget handles creating or replacing the caller's budget for a period.
// @Summary     Set budget
// @Description Upsert the budget for a period, keyed on (caller, period)
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SetBudgetRequest true "Budget amount and period"
// @Success     200 {object} models.Budget "Upserted budget"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget [post]
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	p := req.Period
	if p == "" {
		p = period.Default
	}

	budget, err := h.budgetService.SetBudget(userID, p, *req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, budget)
}

// GetBudgetUsage handles retrieving budget utilization for a period.
// @Summary     Get budget usage
// @Description Get spend-to-budget utilization for the period containing now
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Period (weekly/monthly/yearly, default monthly)"
// @Success     200 {object} stats.Usage "Budget utilization"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/usage [get]
func (h *BudgetHandler) GetBudgetUsage(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	p, err := parsePeriod(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	usage, err := h.budgetService.GetUsage(userID, p, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, usage)
}
