package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/ledger"
	"pennywise/internal/models"
)

// incomeService handles income-event logic.
type incomeService struct {
	db *gorm.DB
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db}
}

// ListIncome returns the profile's income events in the window,
// ascending by date_received, enriched with per-period expense totals
// and linked additional income via ledger.Reconcile.
func (s *incomeService) ListIncome(profileID uint, window DateWindow) ([]ledger.EnrichedIncome, error) {
	incomeQuery := s.db.Where("profile_id = ?", profileID).Order("date_received ASC")
	if window.StartDate != nil {
		incomeQuery = incomeQuery.Where("date_received >= ?", *window.StartDate)
	}
	if window.EndDate != nil {
		incomeQuery = incomeQuery.Where("date_received <= ?", *window.EndDate)
	}

	var incomes []models.Income
	if err := incomeQuery.Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// The full additional-income set is fetched unwindowed: records are
	// linked to income events, not dated against the window.
	var additional []models.AdditionalIncome
	if err := s.db.Where("profile_id = ?", profileID).Find(&additional).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	expenseQuery := s.db.Where("profile_id = ?", profileID).Order("date_due ASC")
	if window.StartDate != nil {
		expenseQuery = expenseQuery.Where("date_due >= ?", *window.StartDate)
	}
	if window.EndDate != nil {
		expenseQuery = expenseQuery.Where("date_due <= ?", *window.EndDate)
	}

	var expenses []models.Expense
	if err := expenseQuery.Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return ledger.Reconcile(incomes, additional, expenses), nil
}

// CreateIncome records a new income event.
func (s *incomeService) CreateIncome(profileID uint, amount float64, dateReceived time.Time) (*models.Income, error) {
	income := &models.Income{
		ProfileID:    profileID,
		Amount:       amount,
		DateReceived: dateReceived,
	}
	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return income, nil
}

// UpdateIncome applies a partial update to an owned income event.
func (s *incomeService) UpdateIncome(profileID, incomeID uint, amount *float64, dateReceived *time.Time) (*models.Income, error) {
	income, err := firstOwned[models.Income](s.db, profileID, incomeID, apperrors.ErrIncomeNotFound)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if amount != nil {
		updates["amount"] = *amount
	}
	if dateReceived != nil {
		updates["date_received"] = *dateReceived
	}

	if len(updates) > 0 {
		if err := s.db.Model(income).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return income, nil
}

// DeleteIncome permanently removes an owned income event. Linked
// additional income records survive as standalone records.
func (s *incomeService) DeleteIncome(profileID, incomeID uint) error {
	income, err := firstOwned[models.Income](s.db, profileID, incomeID, apperrors.ErrIncomeNotFound)
	if err != nil {
		return err
	}

	if err := s.db.Delete(income).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
