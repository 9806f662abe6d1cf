package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/services"
)

// ProfileHandler handles profile reads, updates and the dashboard summary.
type ProfileHandler struct {
	profileService services.ProfileServicer
	auditService   services.AuditServicer
}

func NewProfileHandler(profileService services.ProfileServicer, auditService services.AuditServicer) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, auditService: auditService}
}

type UpdateProfileRequest struct {
	FullName  *string `json:"full_name"`
	Username  *string `json:"username"`
	Website   *string `json:"website"`
	AvatarURL *string `json:"avatar_url"`
}

// GetProfile godoc
// @Summary Get the authenticated profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Profile
// @Failure 401 {object} ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	profile, err := h.profileService.GetByID(profileID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update the authenticated profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} models.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	profile, err := h.profileService.UpdateProfile(profileID, req.FullName, req.Username, req.Website, req.AvatarURL)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(profileID, "update", "profile", profileID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, profile)
}

// GetProfileSummary godoc
// @Summary Get a profile with year-to-date totals
// @Description Only the authenticated profile's own summary may be requested
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID"
// @Success 200 {object} services.ProfileSummary
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profile/{id} [get]
func (h *ProfileHandler) GetProfileSummary(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	requestedID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if requestedID != profileID {
		respondWithError(c, apperrors.ErrForbidden)
		return
	}

	summary, err := h.profileService.GetSummary(profileID, time.Now().UTC().Year())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
