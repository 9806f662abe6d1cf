package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"pennywise/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestProfile creates a profile with a hashed password and unique
// email.
func CreateTestProfile(t *testing.T, db *gorm.DB) *models.Profile {
	t.Helper()
	email := fmt.Sprintf("profile%d@test.com", nextID())
	return CreateTestProfileWithEmail(t, db, email)
}

// CreateTestProfileWithEmail creates a profile with the given email.
func CreateTestProfileWithEmail(t *testing.T, db *gorm.DB, email string) *models.Profile {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	profile := &models.Profile{
		Email:    email,
		Password: string(hash),
		FullName: fmt.Sprintf("Test Profile %d", nextID()),
		Username: fmt.Sprintf("tester%d", nextID()),
		IsActive: true,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return profile
}

// CreateTestIncome creates an income event on the given date.
func CreateTestIncome(t *testing.T, db *gorm.DB, profileID uint, amount float64, received time.Time) *models.Income {
	t.Helper()

	income := &models.Income{
		ProfileID:    profileID,
		Amount:       amount,
		DateReceived: received,
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestAdditionalIncome creates an additional income record linked
// to the given income event. Pass nil incomeID for a standalone record.
func CreateTestAdditionalIncome(t *testing.T, db *gorm.DB, profileID uint, incomeID *uint, amount float64) *models.AdditionalIncome {
	t.Helper()

	record := &models.AdditionalIncome{
		ProfileID:   profileID,
		IncomeID:    incomeID,
		Description: fmt.Sprintf("Side income %d", nextID()),
		Amount:      amount,
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test additional income: %v", err)
	}
	return record
}

// CreateTestExpense creates a pending expense due on the given date.
func CreateTestExpense(t *testing.T, db *gorm.DB, profileID uint, amount float64, due time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		ProfileID:   profileID,
		ExpenseName: fmt.Sprintf("Test Expense %d", nextID()),
		Amount:      amount,
		DateDue:     due,
		Status:      models.ExpenseStatusPending,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestTemplate creates a budget template with the given recurring
// expense definitions.
func CreateTestTemplate(t *testing.T, db *gorm.DB, profileID uint, expenses ...models.TemplateExpense) *models.BudgetTemplate {
	t.Helper()

	for i := range expenses {
		expenses[i].ProfileID = profileID
	}
	template := &models.BudgetTemplate{
		ProfileID:        profileID,
		TemplateName:     fmt.Sprintf("Test Template %d", nextID()),
		TemplateExpenses: expenses,
	}
	if err := db.Create(template).Error; err != nil {
		t.Fatalf("failed to create test template: %v", err)
	}
	return template
}
