package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/models"
)

// expenseService handles expense logic.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// ListExpenses returns the profile's expenses in the window, ordered by
// date_due ascending then amount descending.
func (s *expenseService) ListExpenses(profileID uint, window DateWindow) ([]models.Expense, error) {
	query := s.db.Where("profile_id = ?", profileID).
		Order("date_due ASC").
		Order("amount DESC")
	if window.StartDate != nil {
		query = query.Where("date_due >= ?", *window.StartDate)
	}
	if window.EndDate != nil {
		query = query.Where("date_due <= ?", *window.EndDate)
	}

	var expenses []models.Expense
	if err := query.Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// BulkInsert stores a batch of expense drafts for the profile. The
// owning profile and pending status are forced on every row; the insert
// is a single multi-row statement with no per-row rollback beyond what
// the store provides.
func (s *expenseService) BulkInsert(profileID uint, drafts []models.Expense) ([]models.Expense, error) {
	if len(drafts) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "no expenses provided")
	}

	for i := range drafts {
		drafts[i].ID = 0
		drafts[i].ProfileID = profileID
		drafts[i].Status = models.ExpenseStatusPending
	}

	if err := s.db.Create(&drafts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return drafts, nil
}

// UpdateExpense applies a partial update to an owned expense. Only the
// supplied fields change.
func (s *expenseService) UpdateExpense(profileID, expenseID uint, update ExpenseUpdate) (*models.Expense, error) {
	expense, err := firstOwned[models.Expense](s.db, profileID, expenseID, apperrors.ErrExpenseNotFound)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.ExpenseName != nil {
		updates["expense_name"] = *update.ExpenseName
	}
	if update.ExpenseDescription != nil {
		updates["expense_description"] = *update.ExpenseDescription
	}
	if update.Amount != nil {
		updates["amount"] = *update.Amount
	}
	if update.DateDue != nil {
		updates["date_due"] = *update.DateDue
	}
	if update.DatePaid != nil {
		updates["date_paid"] = *update.DatePaid
	}
	if update.Autopay != nil {
		updates["autopay"] = *update.Autopay
	}
	if update.Status != nil {
		updates["status"] = *update.Status
	}

	if len(updates) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "no fields to update")
	}

	if err := s.db.Model(expense).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// DeleteExpense permanently removes an owned expense.
func (s *expenseService) DeleteExpense(profileID, expenseID uint) error {
	expense, err := firstOwned[models.Expense](s.db, profileID, expenseID, apperrors.ErrExpenseNotFound)
	if err != nil {
		return err
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// BulkDelete removes the owned subset of the given ids and reports the
// count deleted.
func (s *expenseService) BulkDelete(profileID uint, ids []uint) (int, error) {
	return deleteOwned[models.Expense](s.db, profileID, ids)
}

// BudgetExists reports whether a budget was already generated for the
// target month. monthIndex is zero-indexed as sent by the dashboard.
//
// The check matches expenses whose date_due equals the first day of the
// month, not the whole month range. Template-generated budgets date at
// least one expense on the 1st in practice, but a hand-built month
// without one slips through.
// TODO: decide whether this should cover the whole month range instead
// of the first-day equality inherited from the dashboard contract.
func (s *expenseService) BudgetExists(profileID uint, monthIndex, year int) (bool, error) {
	firstOfMonth := time.Date(year, time.Month(monthIndex+1), 1, 0, 0, 0, 0, time.UTC)

	var count int64
	if err := s.db.Model(&models.Expense{}).
		Where("profile_id = ? AND date_due = ?", profileID, firstOfMonth).
		Count(&count).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count > 0, nil
}
