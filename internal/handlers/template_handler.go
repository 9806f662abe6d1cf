package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/models"
	"pennywise/internal/services"
)

// TemplateHandler handles budget templates and their expense definitions.
type TemplateHandler struct {
	templateService services.TemplateServicer
	auditService    services.AuditServicer
}

func NewTemplateHandler(templateService services.TemplateServicer, auditService services.AuditServicer) *TemplateHandler {
	return &TemplateHandler{templateService: templateService, auditService: auditService}
}

type TemplateExpenseDraft struct {
	ExpenseName        string  `json:"expense_name" binding:"required"`
	ExpenseDescription string  `json:"expense_description"`
	Amount             float64 `json:"amount" binding:"required,gt=0"`
	DueDay             int     `json:"due_day" binding:"required,due_day"`
	Autopay            bool    `json:"autopay"`
}

type CreateTemplateRequest struct {
	TemplateName     string                 `json:"template_name" binding:"required"`
	TemplateExpenses []TemplateExpenseDraft `json:"template_expenses" binding:"omitempty,dive"`
}

// ListTemplates godoc
// @Summary List the caller's budget templates
// @Tags budget-templates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.BudgetTemplate
// @Failure 401 {object} ErrorResponse
// @Router /budget-templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	templates, err := h.templateService.ListTemplates(profileID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, templates)
}

// CreateTemplate godoc
// @Summary Create a budget template
// @Description Optionally seeds the template with recurring expense definitions.
// @Tags budget-templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTemplateRequest true "Template details"
// @Success 201 {object} models.BudgetTemplate
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /budget-templates [post]
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expenses := make([]models.TemplateExpense, 0, len(req.TemplateExpenses))
	for _, e := range req.TemplateExpenses {
		expenses = append(expenses, models.TemplateExpense{
			ExpenseName:        e.ExpenseName,
			ExpenseDescription: e.ExpenseDescription,
			Amount:             e.Amount,
			DueDay:             e.DueDay,
			Autopay:            e.Autopay,
		})
	}

	template, err := h.templateService.CreateTemplate(profileID, req.TemplateName, expenses)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(profileID, "create", "budget_template", template.ID, c.ClientIP(), map[string]interface{}{
		"template_name": req.TemplateName,
		"expense_count": len(expenses),
	})

	c.JSON(http.StatusCreated, template)
}

// ListTemplateExpenses godoc
// @Summary List the expense definitions of a template
// @Tags budget-templates
// @Produce json
// @Security BearerAuth
// @Param budget_template_id query int true "Template ID"
// @Success 200 {array} models.TemplateExpense
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /template-expenses [get]
func (h *TemplateHandler) ListTemplateExpenses(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	templateID, err := parseQueryID(c, "budget_template_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.templateService.ListTemplateExpenses(profileID, templateID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}
