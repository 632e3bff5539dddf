package analytics

import (
	"github.com/shopspring/decimal"

	"finsight/internal/models"
)

// Goal status labels.
const (
	GoalStatusOK        = "OK"
	GoalStatusOverLimit = "Over limit"
)

// GoalUsage pairs a stored goal with its spending for the summarized
// period. Spent only tracks expenses: income in the goal's category never
// counts against the limit.
type GoalUsage struct {
	ID           uint            `json:"id"`
	Category     string          `json:"category"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
	Spent        decimal.Decimal `json:"spent"`
	Remaining    decimal.Decimal `json:"remaining"`
	Status       string          `json:"status"`
}

// EvaluateGoals computes usage for each goal against the category summary.
// A goal whose category does not appear in the summary, or whose category
// total is non-negative, has zero spend and status OK. Stored goals are
// never mutated.
func EvaluateGoals(goals []models.Goal, summary []CategoryTotal) []GoalUsage {
	totals := make(map[string]decimal.Decimal, len(summary))
	for _, row := range summary {
		totals[row.Category] = row.Total
	}

	usages := make([]GoalUsage, 0, len(goals))
	for _, goal := range goals {
		spent := decimal.Zero
		if total, ok := totals[goal.Category]; ok && total.IsNegative() {
			spent = total.Neg()
		}

		remaining := goal.MonthlyLimit.Sub(spent)
		status := GoalStatusOK
		if remaining.IsNegative() {
			status = GoalStatusOverLimit
		}

		usages = append(usages, GoalUsage{
			ID:           goal.ID,
			Category:     goal.Category,
			MonthlyLimit: goal.MonthlyLimit,
			Spent:        spent,
			Remaining:    remaining,
			Status:       status,
		})
	}

	return usages
}
