package services

import (
	"gorm.io/gorm"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/models"
)

// additionalIncomeService handles ad-hoc income records.
type additionalIncomeService struct {
	db *gorm.DB
}

// NewAdditionalIncomeService creates a new AdditionalIncomeServicer.
func NewAdditionalIncomeService(db *gorm.DB) AdditionalIncomeServicer {
	return &additionalIncomeService{db: db}
}

// Create records additional income, optionally linked to one of the
// profile's income events.
func (s *additionalIncomeService) Create(profileID uint, incomeID *uint, description string, amount float64) (*models.AdditionalIncome, error) {
	if incomeID != nil {
		// The linked income event must exist and belong to the caller.
		if _, err := firstOwned[models.Income](s.db, profileID, *incomeID, apperrors.ErrIncomeNotFound); err != nil {
			return nil, err
		}
	}

	record := &models.AdditionalIncome{
		ProfileID:   profileID,
		IncomeID:    incomeID,
		Description: description,
		Amount:      amount,
	}
	if err := s.db.Create(record).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return record, nil
}

// Update applies a partial update to an owned record.
func (s *additionalIncomeService) Update(profileID, recordID uint, description *string, amount *float64) (*models.AdditionalIncome, error) {
	record, err := firstOwned[models.AdditionalIncome](s.db, profileID, recordID, apperrors.ErrAdditionalIncomeNotFound)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if description != nil {
		updates["description"] = *description
	}
	if amount != nil {
		updates["amount"] = *amount
	}

	if len(updates) > 0 {
		if err := s.db.Model(record).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return record, nil
}

// Delete permanently removes an owned record.
func (s *additionalIncomeService) Delete(profileID, recordID uint) error {
	record, err := firstOwned[models.AdditionalIncome](s.db, profileID, recordID, apperrors.ErrAdditionalIncomeNotFound)
	if err != nil {
		return err
	}

	if err := s.db.Delete(record).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// BulkDelete removes the owned subset of the given ids and reports the
// count deleted.
func (s *additionalIncomeService) BulkDelete(profileID uint, ids []uint) (int, error) {
	return deleteOwned[models.AdditionalIncome](s.db, profileID, ids)
}
