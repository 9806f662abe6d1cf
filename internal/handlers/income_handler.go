package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/services"
)

// IncomeHandler handles income events and their enriched listing.
type IncomeHandler struct {
	incomeService services.IncomeServicer
	auditService  services.AuditServicer
}

func NewIncomeHandler(incomeService services.IncomeServicer, auditService services.AuditServicer) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService, auditService: auditService}
}

type CreateIncomeRequest struct {
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	DateReceived string  `json:"date_received" binding:"required"`
}

type UpdateIncomeRequest struct {
	Amount       *float64 `json:"amount" binding:"omitempty,gt=0"`
	DateReceived *string  `json:"date_received"`
}

// ListIncome godoc
// @Summary List income events with per-period totals
// @Description Each income event carries the expenses due in its period,
// @Description linked additional income and the money remaining.
// @Tags income
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Window start (RFC3339 or YYYY-MM-DD)"
// @Param end_date query string false "Window end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {array} ledger.EnrichedIncome
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /income [get]
func (h *IncomeHandler) ListIncome(c *gin.Context) {
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

	incomes, err := h.incomeService.ListIncome(profileID, window)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, incomes)
}

// CreateIncome godoc
// @Summary Create an income event
// @Tags income
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateIncomeRequest true "Income details"
// @Success 201 {object} models.Income
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /income [post]
func (h *IncomeHandler) CreateIncome(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	dateReceived, err := parseFlexibleTime(req.DateReceived)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid date_received format, use RFC3339 or YYYY-MM-DD"))
		return
	}

	income, err := h.incomeService.CreateIncome(profileID, req.Amount, dateReceived)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(profileID, "create", "income", income.ID, c.ClientIP(), map[string]interface{}{
		"amount": req.Amount,
	})

	c.JSON(http.StatusCreated, income)
}

// UpdateIncome godoc
// @Summary Update an income event
// @Tags income
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Income ID"
// @Param request body UpdateIncomeRequest true "Fields to update"
// @Success 200 {object} models.Income
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /income/{id} [patch]
func (h *IncomeHandler) UpdateIncome(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	incomeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var dateReceived *time.Time
	if req.DateReceived != nil {
		t, err := parseFlexibleTime(*req.DateReceived)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid date_received format, use RFC3339 or YYYY-MM-DD"))
			return
		}
		dateReceived = &t
	}

	income, err := h.incomeService.UpdateIncome(profileID, incomeID, req.Amount, dateReceived)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(profileID, "update", "income", incomeID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, income)
}

// DeleteIncome godoc
// @Summary Delete an income event
// @Description Deletion is permanent. Linked additional income records are kept.
// @Tags income
// @Produce json
// @Security BearerAuth
// @Param id path int true "Income ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /income/{id} [delete]
func (h *IncomeHandler) DeleteIncome(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	incomeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.incomeService.DeleteIncome(profileID, incomeID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(profileID, "delete", "income", incomeID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Record deleted successfully"})
}
