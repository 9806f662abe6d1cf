package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/services"
)

// AdditionalIncomeHandler handles ad-hoc income records.
type AdditionalIncomeHandler struct {
	additionalIncomeService services.AdditionalIncomeServicer
	auditService            services.AuditServicer
}

func NewAdditionalIncomeHandler(additionalIncomeService services.AdditionalIncomeServicer, auditService services.AuditServicer) *AdditionalIncomeHandler {
	return &AdditionalIncomeHandler{additionalIncomeService: additionalIncomeService, auditService: auditService}
}

type CreateAdditionalIncomeRequest struct {
	IncomeID    *uint   `json:"income_id"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
}

type UpdateAdditionalIncomeRequest struct {
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount" binding:"omitempty,gt=0"`
}

// CreateAdditionalIncome godoc
// @Summary Create an additional income record
// @Description Optionally linked to an income event; linked records raise
// @Description that event's effective amount in the enriched listing.
// @Tags additional-income
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAdditionalIncomeRequest true "Additional income details"
// @Success 201 {object} models.AdditionalIncome
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /additional-income [post]
func (h *AdditionalIncomeHandler) CreateAdditionalIncome(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateAdditionalIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	record, err := h.additionalIncomeService.Create(profileID, req.IncomeID, req.Description, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(profileID, "create", "additional_income", record.ID, c.ClientIP(), map[string]interface{}{
		"amount": req.Amount,
	})

	c.JSON(http.StatusCreated, record)
}

// UpdateAdditionalIncome godoc
// @Summary Update an additional income record
// @Tags additional-income
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Additional income ID"
// @Param request body UpdateAdditionalIncomeRequest true "Fields to update"
// @Success 200 {object} models.AdditionalIncome
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /additional-income/{id} [patch]
func (h *AdditionalIncomeHandler) UpdateAdditionalIncome(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	recordID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAdditionalIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	record, err := h.additionalIncomeService.Update(profileID, recordID, req.Description, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(profileID, "update", "additional_income", recordID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, record)
}

// DeleteAdditionalIncome godoc
// @Summary Delete an additional income record
// @Tags additional-income
// @Produce json
// @Security BearerAuth
// @Param id path int true "Additional income ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /additional-income/{id} [delete]
func (h *AdditionalIncomeHandler) DeleteAdditionalIncome(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	recordID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.additionalIncomeService.Delete(profileID, recordID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(profileID, "delete", "additional_income", recordID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Record deleted successfully"})
}

// BulkDeleteAdditionalIncome godoc
// @Summary Delete a batch of additional income records
// @Description Accepts a JSON array of record IDs. Records owned by other
// @Description profiles are skipped; the response reports how many were deleted.
// @Tags additional-income
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body []int true "Record IDs"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /additional-income [delete]
func (h *AdditionalIncomeHandler) BulkDeleteAdditionalIncome(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var ids []uint
	if err := c.ShouldBindJSON(&ids); err != nil || len(ids) == 0 {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Request body must be a non-empty array of record IDs"))
		return
	}

	deleted, err := h.additionalIncomeService.BulkDelete(profileID, ids)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(profileID, "bulk_delete", "additional_income", 0, c.ClientIP(), map[string]interface{}{
		"requested": len(ids),
		"deleted":   deleted,
	})

	c.JSON(http.StatusOK, MessageResponse{Message: strconv.Itoa(deleted) + " records deleted successfully"})
}
