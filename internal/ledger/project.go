package ledger

import (
	"time"

	"pennywise/internal/models"
)

// DaysInMonth returns the number of days in the given month and year.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ProjectTemplate projects a template's recurring expense definitions
// onto the target month, producing expense drafts ready for review. A
// DueDay past the end of the month is clamped to the month's last day.
// Drafts are staged with status pending; ProfileID is left for the
// caller to fill in.
func ProjectTemplate(templateExpenses []models.TemplateExpense, year int, month time.Month) []models.Expense {
	lastDay := DaysInMonth(year, month)

	drafts := make([]models.Expense, 0, len(templateExpenses))
	for _, te := range templateExpenses {
		day := te.DueDay
		if day > lastDay {
			day = lastDay
		}

		drafts = append(drafts, models.Expense{
			ExpenseName:        te.ExpenseName,
			ExpenseDescription: te.ExpenseDescription,
			Amount:             te.Amount,
			DateDue:            time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
			Autopay:            te.Autopay,
			Status:             models.ExpenseStatusPending,
		})
	}

	return drafts
}
