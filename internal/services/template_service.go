package services

import (
	"gorm.io/gorm"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/models"
)

// templateService handles budget template logic.
type templateService struct {
	db *gorm.DB
}

// NewTemplateService creates a new TemplateServicer.
func NewTemplateService(db *gorm.DB) TemplateServicer {
	return &templateService{db: db}
}

// ListTemplates returns the templates owned by the profile.
func (s *templateService) ListTemplates(profileID uint) ([]models.BudgetTemplate, error) {
	var templates []models.BudgetTemplate
	if err := s.db.Where("profile_id = ?", profileID).Find(&templates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return templates, nil
}

// CreateTemplate stores a named template together with its recurring
// expense definitions.
func (s *templateService) CreateTemplate(profileID uint, name string, expenses []models.TemplateExpense) (*models.BudgetTemplate, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "template_name is required")
	}

	for i := range expenses {
		expenses[i].ID = 0
		expenses[i].ProfileID = profileID
	}

	template := &models.BudgetTemplate{
		ProfileID:        profileID,
		TemplateName:     name,
		TemplateExpenses: expenses,
	}
	if err := s.db.Create(template).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return template, nil
}

// ListTemplateExpenses returns the recurring expense definitions of one
// owned template.
func (s *templateService) ListTemplateExpenses(profileID, templateID uint) ([]models.TemplateExpense, error) {
	if _, err := firstOwned[models.BudgetTemplate](s.db, profileID, templateID, apperrors.ErrTemplateNotFound); err != nil {
		return nil, err
	}

	var expenses []models.TemplateExpense
	if err := s.db.Where("profile_id = ? AND budget_template_id = ?", profileID, templateID).
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}
