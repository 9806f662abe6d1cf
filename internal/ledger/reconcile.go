// Package ledger holds the pure budgeting computations: reconciling
// expenses into per-income periods and projecting template expenses onto
// a target month. Nothing in this package touches the database.
package ledger

import (
	"pennywise/internal/models"
)

// EnrichedIncome is an income record annotated with its period
// aggregates. The embedded Amount is adjusted to include linked
// additional income.
type EnrichedIncome struct {
	models.Income
	TotalExpenses    float64                   `json:"total_expenses"`
	MoneyRemaining   float64                   `json:"money_remaining"`
	AdditionalIncome []models.AdditionalIncome `json:"additional_income"`
}

// Reconcile partitions expenses into the period owned by each income
// event and computes per-period aggregates.
//
// incomes must be sorted ascending by DateReceived. Income i owns the
// period [incomes[i].DateReceived, incomes[i+1].DateReceived); the last
// income's period is unbounded above. Each expense lands in at most one
// period. Expenses due strictly before the first income's date belong to
// no period at all: they are presumed to fall in an earlier, unfetched
// income's period and are excluded from every total.
//
// An empty income slice yields an empty result.
func Reconcile(incomes []models.Income, additional []models.AdditionalIncome, expenses []models.Expense) []EnrichedIncome {
	enriched := make([]EnrichedIncome, 0, len(incomes))

	for i, income := range incomes {
		linked := make([]models.AdditionalIncome, 0)
		var additionalSum float64
		for _, entry := range additional {
			if entry.IncomeID != nil && *entry.IncomeID == income.ID {
				linked = append(linked, entry)
				additionalSum += entry.Amount
			}
		}

		var periodEnd *models.Income
		if i+1 < len(incomes) {
			periodEnd = &incomes[i+1]
		}

		var totalExpenses float64
		for _, expense := range expenses {
			if expense.DateDue.Before(income.DateReceived) {
				continue
			}
			if periodEnd != nil && !expense.DateDue.Before(periodEnd.DateReceived) {
				continue
			}
			totalExpenses += expense.Amount
		}

		adjusted := income
		adjusted.Amount = income.Amount + additionalSum

		enriched = append(enriched, EnrichedIncome{
			Income:           adjusted,
			TotalExpenses:    totalExpenses,
			MoneyRemaining:   adjusted.Amount - totalExpenses,
			AdditionalIncome: linked,
		})
	}

	return enriched
}
