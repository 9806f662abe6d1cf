package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/models"
	"pennywise/internal/services"
)

// ExpenseHandler handles expense listing, bulk insertion, updates and
// the budget-exists check.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

type ExpenseDraft struct {
	ExpenseName        string  `json:"expense_name" binding:"required"`
	ExpenseDescription string  `json:"expense_description"`
	Amount             float64 `json:"amount" binding:"required,gt=0"`
	FormattedDate      string  `json:"formatted_date" binding:"required"`
	Autopay            bool    `json:"autopay"`
}

type BulkInsertExpensesRequest struct {
	Expenses []ExpenseDraft `json:"expenses" binding:"required,min=1,dive"`
}

type UpdateExpenseRequest struct {
	ExpenseName        *string  `json:"expense_name"`
	ExpenseDescription *string  `json:"expense_description"`
	Amount             *float64 `json:"amount" binding:"omitempty,gt=0"`
	DateDue            *string  `json:"date_due"`
	DatePaid           *string  `json:"date_paid"`
	Autopay            *bool    `json:"autopay"`
	Status             *string  `json:"status" binding:"omitempty,expense_status"`
}

type ValidateBudgetRequest struct {
	Month *int `json:"month" binding:"required,month_index"`
	Year  int  `json:"year" binding:"required,gte=1970"`
}

type ValidateBudgetResponse struct {
	Exists bool `json:"exists"`
}

type BulkInsertExpensesResponse struct {
	Message string           `json:"message"`
	Data    []models.Expense `json:"data"`
}

// ListExpenses godoc
// @Summary List expenses ordered by due date then amount
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Window start (RFC3339 or YYYY-MM-DD)"
// @Param end_date query string false "Window end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {array} models.Expense
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	window, err := parseDateWindow(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.expenseService.ListExpenses(profileID, window)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// BulkInsertExpenses godoc
// @Summary Insert a batch of expenses
// @Description All drafts are created pending and owned by the caller.
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BulkInsertExpensesRequest true "Expense drafts"
// @Success 201 {object} BulkInsertExpensesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /expenses [post]
func (h *ExpenseHandler) BulkInsertExpenses(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BulkInsertExpensesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	drafts := make([]models.Expense, 0, len(req.Expenses))
	for _, d := range req.Expenses {
		dateDue, err := parseFlexibleTime(d.FormattedDate)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid formatted_date, use RFC3339 or YYYY-MM-DD"))
			return
		}
		drafts = append(drafts, models.Expense{
			ExpenseName:        d.ExpenseName,
			ExpenseDescription: d.ExpenseDescription,
			Amount:             d.Amount,
			DateDue:            dateDue,
			Autopay:            d.Autopay,
		})
	}

	created, err := h.expenseService.BulkInsert(profileID, drafts)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(profileID, "bulk_insert", "expense", 0, c.ClientIP(), map[string]interface{}{
		"count": len(created),
	})

	c.JSON(http.StatusCreated, BulkInsertExpensesResponse{
		Message: strconv.Itoa(len(created)) + " expenses created successfully",
		Data:    created,
	})
}

// UpdateExpense godoc
// @Summary Update an expense
// @Description Partial update; at least one field must be provided.
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Expense ID"
// @Param request body UpdateExpenseRequest true "Fields to update"
// @Success 200 {object} models.Expense
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /expenses/{id} [patch]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	update := services.ExpenseUpdate{
		ExpenseName:        req.ExpenseName,
		ExpenseDescription: req.ExpenseDescription,
		Amount:             req.Amount,
		Autopay:            req.Autopay,
	}

	if req.DateDue != nil {
		t, err := parseFlexibleTime(*req.DateDue)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid date_due format, use RFC3339 or YYYY-MM-DD"))
			return
		}
		update.DateDue = &t
	}
	if req.DatePaid != nil {
		t, err := parseFlexibleTime(*req.DatePaid)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid date_paid format, use RFC3339 or YYYY-MM-DD"))
			return
		}
		update.DatePaid = &t
	}
	if req.Status != nil {
		status := models.ExpenseStatus(*req.Status)
		update.Status = &status
	}

	expense, err := h.expenseService.UpdateExpense(profileID, expenseID, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(profileID, "update", "expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, expense)
}

// DeleteExpense godoc
// @Summary Delete an expense
// @Description Deletion is permanent.
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Expense ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(profileID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(profileID, "delete", "expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Record deleted successfully"})
}

// BulkDeleteExpenses godoc
// @Summary Delete a batch of expenses
// @Description Accepts a JSON array of expense IDs. Expenses owned by other
// @Description profiles are skipped; the response reports how many were deleted.
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body []int true "Expense IDs"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /expenses [delete]
func (h *ExpenseHandler) BulkDeleteExpenses(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var ids []uint
	if err := c.ShouldBindJSON(&ids); err != nil || len(ids) == 0 {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Request body must be a non-empty array of expense IDs"))
		return
	}

	deleted, err := h.expenseService.BulkDelete(profileID, ids)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(profileID, "bulk_delete", "expense", 0, c.ClientIP(), map[string]interface{}{
		"requested": len(ids),
		"deleted":   deleted,
	})

	c.JSON(http.StatusOK, MessageResponse{Message: strconv.Itoa(deleted) + " records deleted successfully"})
}

// ValidateBudget godoc
// @Summary Check whether a budget already exists for a month
// @Description Month is zero-indexed (0 = January), matching the client calendar.
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ValidateBudgetRequest true "Month and year"
// @Success 200 {object} ValidateBudgetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /expenses/validate [post]
func (h *ExpenseHandler) ValidateBudget(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ValidateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	exists, err := h.expenseService.BudgetExists(profileID, *req.Month, req.Year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ValidateBudgetResponse{Exists: exists})
}
