package analytics

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// currency formats an amount for chat answers with two decimal places.
func currency(d decimal.Decimal) string {
	return "₹" + d.StringFixed(2)
}

// Answer resolves a free-text question against precomputed aggregates.
// Matching is an ordered, closed set of intents — not a model — so
// behavior is fully deterministic:
//
//  1. a known category name appearing in the question answers with that
//     category's signed total;
//  2. "income" answers with total income;
//  3. "expense" / "spend" / "spending" answers with total expense;
//  4. "saving" / "savings" answers with income minus expense;
//  5. anything else gets a fixed fallback.
//
// Category matching runs before the generic expense check on purpose: a
// category name like "Food & Dining" could contain generic spending
// vocabulary and must not be swallowed by intent 3.
func Answer(question string, totals Totals, summary []CategoryTotal) string {
	q := strings.ToLower(question)

	if category, ok := matchCategory(q); ok {
		for _, row := range summary {
			if row.Category == category {
				return fmt.Sprintf("Your net total for %s is %s.", category, currency(row.Total))
			}
		}
		return fmt.Sprintf("There is no data for %s yet.", category)
	}

	if strings.Contains(q, "income") {
		return fmt.Sprintf("Your total income in the current data is %s.", currency(totals.Income))
	}

	if strings.Contains(q, "expense") || strings.Contains(q, "spend") {
		return fmt.Sprintf("Your total expense in the current data is %s.", currency(totals.Expense))
	}

	if strings.Contains(q, "saving") {
		return fmt.Sprintf("Your current saving is %s.", currency(totals.Saving()))
	}

	return "Sorry, I didn't understand that. Try questions like 'How much did I spend on Food & Dining?', " +
		"'What is my total income?', 'What is my total expense?', or 'What are my savings?'."
}

// matchCategory finds the first known expense category whose name appears
// in the lower-cased question. The "Income" category is excluded so that
// the generic income intent answers with the overall income total rather
// than one category's bucket.
func matchCategory(q string) (string, bool) {
	for _, category := range Categories() {
		if category == "Income" {
			continue
		}
		if strings.Contains(q, strings.ToLower(category)) {
			return category, true
		}
	}
	return "", false
}
