package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/ledger"
	"pennywise/internal/models"
)

// budgetService generates a month's expenses from a template.
type budgetService struct {
	db             *gorm.DB
	expenseService ExpenseServicer
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB, expenseService ExpenseServicer) BudgetServicer {
	return &budgetService{db: db, expenseService: expenseService}
}

// GenerateBudget projects the template's recurring expenses onto the
// target month and returns the staged drafts for client review. The
// drafts are not persisted here; the client commits them through the
// bulk expense insert after review. monthIndex is zero-indexed.
func (s *budgetService) GenerateBudget(profileID, templateID uint, monthIndex, year int) ([]models.Expense, error) {
	exists, err := s.expenseService.BudgetExists(profileID, monthIndex, year)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDuplicateBudget
	}

	if _, err := firstOwned[models.BudgetTemplate](s.db, profileID, templateID, apperrors.ErrTemplateNotFound); err != nil {
		return nil, err
	}

	var templateExpenses []models.TemplateExpense
	if err := s.db.Where("profile_id = ? AND budget_template_id = ?", profileID, templateID).
		Find(&templateExpenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	drafts := ledger.ProjectTemplate(templateExpenses, year, time.Month(monthIndex+1))
	for i := range drafts {
		drafts[i].ProfileID = profileID
	}
	return drafts, nil
}
