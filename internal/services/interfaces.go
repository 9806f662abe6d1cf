package services

import (
	"time"

	"pennywise/internal/ledger"
	"pennywise/internal/models"
)

// DateWindow holds the optional start_date/end_date filter applied to
// income and expense listings. Both bounds are inclusive.
type DateWindow struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// ProfileSummary is a profile plus its year-to-date totals.
type ProfileSummary struct {
	models.Profile
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
}

// ProfileServicer defines the contract for profile and authentication logic.
type ProfileServicer interface {
	Register(email, password, fullName, username string) (*models.Profile, error)
	GetByEmail(email string) (*models.Profile, error)
	GetByID(id uint) (*models.Profile, error)
	VerifyPassword(profile *models.Profile, password string) bool
	StoreRefreshTokenHash(profileID uint, tokenHash string) error
	GetRefreshTokenHash(profileID uint) (string, error)
	UpdateProfile(profileID uint, fullName, username, website, avatarURL *string) (*models.Profile, error)
	GetSummary(profileID uint, year int) (*ProfileSummary, error)
}

// IncomeServicer defines the contract for income-event logic.
type IncomeServicer interface {
	ListIncome(profileID uint, window DateWindow) ([]ledger.EnrichedIncome, error)
	CreateIncome(profileID uint, amount float64, dateReceived time.Time) (*models.Income, error)
	UpdateIncome(profileID, incomeID uint, amount *float64, dateReceived *time.Time) (*models.Income, error)
	DeleteIncome(profileID, incomeID uint) error
}

// AdditionalIncomeServicer defines the contract for ad-hoc income records.
type AdditionalIncomeServicer interface {
	Create(profileID uint, incomeID *uint, description string, amount float64) (*models.AdditionalIncome, error)
	Update(profileID, recordID uint, description *string, amount *float64) (*models.AdditionalIncome, error)
	Delete(profileID, recordID uint) error
	BulkDelete(profileID uint, ids []uint) (int, error)
}

// ExpenseUpdate holds the optional fields of a partial expense update.
// Nil fields are left unchanged.
type ExpenseUpdate struct {
	ExpenseName        *string
	ExpenseDescription *string
	Amount             *float64
	DateDue            *time.Time
	DatePaid           *time.Time
	Autopay            *bool
	Status             *models.ExpenseStatus
}

// ExpenseServicer defines the contract for expense logic.
type ExpenseServicer interface {
	ListExpenses(profileID uint, window DateWindow) ([]models.Expense, error)
	BulkInsert(profileID uint, drafts []models.Expense) ([]models.Expense, error)
	UpdateExpense(profileID, expenseID uint, update ExpenseUpdate) (*models.Expense, error)
	DeleteExpense(profileID, expenseID uint) error
	BulkDelete(profileID uint, ids []uint) (int, error)
	BudgetExists(profileID uint, monthIndex, year int) (bool, error)
}

// TemplateServicer defines the contract for budget template logic.
type TemplateServicer interface {
	ListTemplates(profileID uint) ([]models.BudgetTemplate, error)
	CreateTemplate(profileID uint, name string, expenses []models.TemplateExpense) (*models.BudgetTemplate, error)
	ListTemplateExpenses(profileID, templateID uint) ([]models.TemplateExpense, error)
}

// BudgetServicer defines the contract for generating a month's budget
// from a template.
type BudgetServicer interface {
	GenerateBudget(profileID, templateID uint, monthIndex, year int) ([]models.Expense, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(profileID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
