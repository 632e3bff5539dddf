// Package analytics implements the transaction analytics engine:
// categorization, aggregation, goal evaluation, forecasting, and
// rule-based question answering. Every function in this package is a
// pure, synchronous transformation over its inputs; nothing here reads
// or writes shared state, so concurrent callers need no coordination.
package analytics

import (
	"strings"

	"finsight/internal/models"
)

// Rule maps a description keyword to a category label.
type Rule struct {
	Keyword  string
	Category string
}

// rules is the ordered categorization table. Descriptions can match more
// than one keyword, so first-match-wins order is part of the observable
// contract — reordering entries changes behavior.
var rules = []Rule{
	{"salary", "Income"},
	{"payroll", "Income"},
	{"credit", "Income"},
	{"zomato", "Food & Dining"},
	{"swiggy", "Food & Dining"},
	{"restaurant", "Food & Dining"},
	{"uber", "Transport"},
	{"ola", "Transport"},
	{"cab", "Transport"},
	{"fuel", "Transport"},
	{"amazon", "Shopping"},
	{"flipkart", "Shopping"},
	{"myntra", "Shopping"},
	{"rent", "Housing"},
	{"maintenance", "Housing"},
	{"electricity", "Utilities"},
	{"water bill", "Utilities"},
	{"internet", "Utilities"},
}

// Categorize maps a raw transaction description to a category label.
// The description is lower-cased and trimmed, then matched against the
// rule table; the first rule whose keyword appears as a substring wins.
// Descriptions matching no rule get models.CategoryUncategorized.
func Categorize(description string) string {
	text := strings.ToLower(strings.TrimSpace(description))

	for _, r := range rules {
		if strings.Contains(text, r.Keyword) {
			return r.Category
		}
	}

	return models.CategoryUncategorized
}

// Categories returns the distinct category labels of the rule table in
// rule order, ending with the uncategorized sentinel. The query resolver
// uses this as its set of known category names.
func Categories() []string {
	seen := make(map[string]bool, len(rules))
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		if !seen[r.Category] {
			seen[r.Category] = true
			out = append(out, r.Category)
		}
	}
	out = append(out, models.CategoryUncategorized)
	return out
}
