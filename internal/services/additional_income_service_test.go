package services

import (
	"testing"

	"pennywise/internal/models"
	"pennywise/internal/testutil"
)

func TestCreateAdditionalIncome(t *testing.T) {
	t.Run("linked_to_income", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAdditionalIncomeService(db)
		profile := testutil.CreateTestProfile(t, db)
		income := testutil.CreateTestIncome(t, db, profile.ID, 1000, day(2025, 1, 1))

		record, err := svc.Create(profile.ID, &income.ID, "bonus", 250)
		testutil.AssertNoError(t, err)
		if record.IncomeID == nil || *record.IncomeID != income.ID {
			t.Errorf("expected record linked to income %d", income.ID)
		}
	})

	t.Run("standalone", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAdditionalIncomeService(db)
		profile := testutil.CreateTestProfile(t, db)

		record, err := svc.Create(profile.ID, nil, "garage sale", 75)
		testutil.AssertNoError(t, err)
		if record.IncomeID != nil {
			t.Error("expected standalone record with no income link")
		}
	})

	t.Run("link_to_foreign_income_forbidden", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAdditionalIncomeService(db)
		mine := testutil.CreateTestProfile(t, db)
		other := testutil.CreateTestProfile(t, db)
		theirs := testutil.CreateTestIncome(t, db, other.ID, 1000, day(2025, 1, 1))

		_, err := svc.Create(mine.ID, &theirs.ID, "sneaky", 1)
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})

	t.Run("link_to_missing_income", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAdditionalIncomeService(db)
		profile := testutil.CreateTestProfile(t, db)

		missing := uint(4040)
		_, err := svc.Create(profile.ID, &missing, "ghost", 1)
		testutil.AssertAppError(t, err, "INCOME_NOT_FOUND")
	})
}

func TestUpdateAdditionalIncome(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAdditionalIncomeService(db)
		profile := testutil.CreateTestProfile(t, db)
		record := testutil.CreateTestAdditionalIncome(t, db, profile.ID, nil, 100)
		originalDescription := record.Description

		amount := 120.0
		_, err := svc.Update(profile.ID, record.ID, nil, &amount)
		testutil.AssertNoError(t, err)

		var stored models.AdditionalIncome
		db.First(&stored, record.ID)
		if stored.Amount != 120 {
			t.Errorf("expected amount 120, got %v", stored.Amount)
		}
		if stored.Description != originalDescription {
			t.Errorf("description changed: %s -> %s", originalDescription, stored.Description)
		}
	})

	t.Run("not_owner_forbidden", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAdditionalIncomeService(db)
		owner := testutil.CreateTestProfile(t, db)
		intruder := testutil.CreateTestProfile(t, db)
		record := testutil.CreateTestAdditionalIncome(t, db, owner.ID, nil, 100)

		desc := "mine now"
		_, err := svc.Update(intruder.ID, record.ID, &desc, nil)
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})
}

func TestBulkDeleteAdditionalIncome(t *testing.T) {
	t.Run("mixed_ownership", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAdditionalIncomeService(db)
		mine := testutil.CreateTestProfile(t, db)
		other := testutil.CreateTestProfile(t, db)

		r1 := testutil.CreateTestAdditionalIncome(t, db, mine.ID, nil, 10)
		r2 := testutil.CreateTestAdditionalIncome(t, db, other.ID, nil, 20)

		count, err := svc.BulkDelete(mine.ID, []uint{r1.ID, r2.ID})
		testutil.AssertNoError(t, err)
		if count != 1 {
			t.Errorf("expected 1 deleted, got %d", count)
		}

		var remaining int64
		db.Model(&models.AdditionalIncome{}).Where("id = ?", r2.ID).Count(&remaining)
		if remaining != 1 {
			t.Error("expected the other profile's record to survive")
		}
	})
}
