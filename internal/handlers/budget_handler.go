package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/models"
	"pennywise/internal/services"
)

// BudgetHandler handles budget generation from templates.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

type GenerateBudgetRequest struct {
	BudgetTemplateID uint `json:"budget_template_id" binding:"required"`
	Month            *int `json:"month" binding:"required,month_index"`
	Year             int  `json:"year" binding:"required,gte=1970"`
}

type GenerateBudgetResponse struct {
	Expenses []models.Expense `json:"expenses"`
}

// GenerateBudget godoc
// @Summary Generate a month's expense drafts from a template
// @Description Month is zero-indexed (0 = January). Due days past the end of
// @Description the month are clamped to its last day. Drafts are returned for
// @Description review and are not persisted; commit them via POST /expenses.
// @Tags budgets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateBudgetRequest true "Template, month and year"
// @Success 200 {object} GenerateBudgetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /budgets/generate [post]
func (h *BudgetHandler) GenerateBudget(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req GenerateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expenses, err := h.budgetService.GenerateBudget(profileID, req.BudgetTemplateID, *req.Month, req.Year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(profileID, "generate", "budget", req.BudgetTemplateID, c.ClientIP(), map[string]interface{}{
		"month": *req.Month,
		"year":  req.Year,
	})

	c.JSON(http.StatusOK, GenerateBudgetResponse{Expenses: expenses})
}
