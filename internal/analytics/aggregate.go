package analytics

import (
	"github.com/shopspring/decimal"

	"finsight/internal/models"
)

// Window restricts aggregation to a calendar month and/or year. Month and
// year are independent dimensions: a nil field means "all time" for that
// dimension.
type Window struct {
	Month *int // 1-12
	Year  *int
}

// Contains reports whether the transaction date falls inside the window.
func (w Window) Contains(t models.Transaction) bool {
	if w.Month != nil && int(t.Date.Month()) != *w.Month {
		return false
	}
	if w.Year != nil && t.Date.Year() != *w.Year {
		return false
	}
	return true
}

// CategoryTotal is one row of a category summary: the signed sum of all
// in-scope amounts for a category. Derived, never stored.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// Totals holds the overall income/expense buckets of a summary.
// Expense is reported as a positive magnitude.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Saving returns income minus expense.
func (t Totals) Saving() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// Summarize groups the window-filtered transactions by category, summing
// signed amounts per group. Rows are ordered by first appearance in the
// input sequence, and categories with no in-scope transactions are
// omitted. Totals are the sign buckets of the summary rows themselves,
// not a separate computation path, so income − expense always equals the
// sum of all row totals.
func Summarize(txs []models.Transaction, w Window) ([]CategoryTotal, Totals) {
	summary := []CategoryTotal{}
	index := make(map[string]int)

	for _, tx := range txs {
		if !w.Contains(tx) {
			continue
		}

		if i, ok := index[tx.Category]; ok {
			summary[i].Total = summary[i].Total.Add(tx.Amount)
		} else {
			index[tx.Category] = len(summary)
			summary = append(summary, CategoryTotal{Category: tx.Category, Total: tx.Amount})
		}
	}

	totals := Totals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, row := range summary {
		if row.Total.IsNegative() {
			totals.Expense = totals.Expense.Add(row.Total.Neg())
		} else {
			totals.Income = totals.Income.Add(row.Total)
		}
	}

	return summary, totals
}
