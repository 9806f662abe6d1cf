package services

import (
	"testing"

	"pennywise/internal/models"
	"pennywise/internal/testutil"
)

func TestListTemplates(t *testing.T) {
	t.Run("own_templates_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTemplateService(db)
		mine := testutil.CreateTestProfile(t, db)
		other := testutil.CreateTestProfile(t, db)

		testutil.CreateTestTemplate(t, db, mine.ID)
		testutil.CreateTestTemplate(t, db, mine.ID)
		testutil.CreateTestTemplate(t, db, other.ID)

		templates, err := svc.ListTemplates(mine.ID)
		testutil.AssertNoError(t, err)
		if len(templates) != 2 {
			t.Errorf("expected 2 templates, got %d", len(templates))
		}
	})
}

func TestCreateTemplate(t *testing.T) {
	t.Run("with_expenses", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTemplateService(db)
		profile := testutil.CreateTestProfile(t, db)

		template, err := svc.CreateTemplate(profile.ID, "Monthly Bills", []models.TemplateExpense{
			{ExpenseName: "Rent", Amount: 1400, DueDay: 1},
			{ExpenseName: "Internet", Amount: 60, DueDay: 15, Autopay: true},
		})
		testutil.AssertNoError(t, err)

		var stored []models.TemplateExpense
		db.Where("budget_template_id = ?", template.ID).Find(&stored)
		if len(stored) != 2 {
			t.Fatalf("expected 2 stored definitions, got %d", len(stored))
		}
		for _, te := range stored {
			if te.ProfileID != profile.ID {
				t.Errorf("expected definitions owned by profile %d, got %d", profile.ID, te.ProfileID)
			}
		}
	})

	t.Run("empty_name_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTemplateService(db)
		profile := testutil.CreateTestProfile(t, db)

		_, err := svc.CreateTemplate(profile.ID, "", nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestListTemplateExpenses(t *testing.T) {
	t.Run("owned_template", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTemplateService(db)
		profile := testutil.CreateTestProfile(t, db)
		template := testutil.CreateTestTemplate(t, db, profile.ID,
			models.TemplateExpense{ExpenseName: "Rent", Amount: 1400, DueDay: 1},
		)

		expenses, err := svc.ListTemplateExpenses(profile.ID, template.ID)
		testutil.AssertNoError(t, err)
		if len(expenses) != 1 {
			t.Errorf("expected 1 definition, got %d", len(expenses))
		}
	})

	t.Run("foreign_template_forbidden", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTemplateService(db)
		mine := testutil.CreateTestProfile(t, db)
		other := testutil.CreateTestProfile(t, db)
		theirs := testutil.CreateTestTemplate(t, db, other.ID)

		_, err := svc.ListTemplateExpenses(mine.ID, theirs.ID)
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})

	t.Run("missing_template", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTemplateService(db)
		profile := testutil.CreateTestProfile(t, db)

		_, err := svc.ListTemplateExpenses(profile.ID, 4040)
		testutil.AssertAppError(t, err, "TEMPLATE_NOT_FOUND")
	})
}
