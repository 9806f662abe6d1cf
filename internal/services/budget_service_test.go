package services

import (
	"testing"
	"time"

	"pennywise/internal/models"
	"pennywise/internal/testutil"
)

func TestGenerateBudget(t *testing.T) {
	t.Run("projects_template_onto_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		expenseSvc := NewExpenseService(db)
		svc := NewBudgetService(db, expenseSvc)
		profile := testutil.CreateTestProfile(t, db)

		template := testutil.CreateTestTemplate(t, db, profile.ID,
			models.TemplateExpense{ExpenseName: "Rent", Amount: 1400, DueDay: 1, Autopay: true},
			models.TemplateExpense{ExpenseName: "Card", Amount: 250, DueDay: 31},
		)

		// month index 8 = September (30 days).
		drafts, err := svc.GenerateBudget(profile.ID, template.ID, 8, 2025)
		testutil.AssertNoError(t, err)

		if len(drafts) != 2 {
			t.Fatalf("expected 2 drafts, got %d", len(drafts))
		}
		if !drafts[0].DateDue.Equal(time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected rent due Sept 1, got %v", drafts[0].DateDue)
		}
		if drafts[1].DateDue.Day() != 30 {
			t.Errorf("expected due_day 31 clamped to 30, got %d", drafts[1].DateDue.Day())
		}
		for _, d := range drafts {
			if d.ProfileID != profile.ID {
				t.Errorf("expected drafts owned by profile %d, got %d", profile.ID, d.ProfileID)
			}
			if d.Status != models.ExpenseStatusPending {
				t.Errorf("expected pending drafts, got %s", d.Status)
			}
			if d.ID != 0 {
				t.Error("drafts must not be persisted by generation")
			}
		}

		var count int64
		db.Model(&models.Expense{}).Count(&count)
		if count != 0 {
			t.Error("generation must not insert expenses")
		}
	})

	t.Run("duplicate_period_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		expenseSvc := NewExpenseService(db)
		svc := NewBudgetService(db, expenseSvc)
		profile := testutil.CreateTestProfile(t, db)
		template := testutil.CreateTestTemplate(t, db, profile.ID,
			models.TemplateExpense{ExpenseName: "Rent", Amount: 1400, DueDay: 1},
		)

		// An expense already on the first of target month marks the
		// budget as existing.
		testutil.CreateTestExpense(t, db, profile.ID, 10, day(2025, 9, 1))

		_, err := svc.GenerateBudget(profile.ID, template.ID, 8, 2025)
		testutil.AssertAppError(t, err, "DUPLICATE_BUDGET")
	})

	t.Run("template_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		profile := testutil.CreateTestProfile(t, db)

		_, err := svc.GenerateBudget(profile.ID, 4040, 0, 2026)
		testutil.AssertAppError(t, err, "TEMPLATE_NOT_FOUND")
	})

	t.Run("foreign_template_forbidden", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		mine := testutil.CreateTestProfile(t, db)
		other := testutil.CreateTestProfile(t, db)
		theirs := testutil.CreateTestTemplate(t, db, other.ID,
			models.TemplateExpense{ExpenseName: "Rent", Amount: 1400, DueDay: 1},
		)

		_, err := svc.GenerateBudget(mine.ID, theirs.ID, 0, 2026)
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})
}
