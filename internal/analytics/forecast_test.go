package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBuildForecast(t *testing.T) {
	summary := []CategoryTotal{
		{Category: "Income", Total: decimal.RequireFromString("50000.00")},
		{Category: "Food & Dining", Total: decimal.RequireFromString("-2000.00")},
		{Category: "Transport", Total: decimal.RequireFromString("-1000.00")},
	}
	totals := Totals{
		Income:  decimal.RequireFromString("50000.00"),
		Expense: decimal.RequireFromString("3000.00"),
	}

	f := BuildForecast(summary, totals)

	if len(f.Categories) != 2 {
		t.Fatalf("expected 2 expense categories, got %d", len(f.Categories))
	}
	if f.Categories[0].Category != "Food & Dining" {
		t.Errorf("expected Food & Dining first, got %q", f.Categories[0].Category)
	}
	if !f.Categories[0].ForecastSpend.Equal(decimal.RequireFromString("2100.00")) {
		t.Errorf("expected forecast spend 2100.00, got %s", f.Categories[0].ForecastSpend)
	}

	// forecast_expense == expense * 1.05, exactly.
	if !f.Totals.ForecastExpense.Equal(decimal.RequireFromString("3150.00")) {
		t.Errorf("expected forecast expense 3150.00, got %s", f.Totals.ForecastExpense)
	}
	if !f.Totals.CurrentSaving.Equal(decimal.RequireFromString("47000.00")) {
		t.Errorf("expected current saving 47000.00, got %s", f.Totals.CurrentSaving)
	}
	// forecast_saving == income - forecast_expense, exactly.
	if !f.Totals.ForecastSaving.Equal(decimal.RequireFromString("46850.00")) {
		t.Errorf("expected forecast saving 46850.00, got %s", f.Totals.ForecastSaving)
	}
	// Income is carried through unchanged: the model never forecasts income.
	if !f.Totals.Income.Equal(totals.Income) {
		t.Errorf("expected income %s carried through, got %s", totals.Income, f.Totals.Income)
	}
}

func TestBuildForecastIdentities(t *testing.T) {
	cases := []struct {
		name    string
		income  string
		expense string
	}{
		{"typical", "50000.00", "32000.00"},
		{"more_expense_than_income", "1000.00", "2500.75"},
		{"zero_income", "0", "431.99"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			totals := Totals{
				Income:  decimal.RequireFromString(tc.income),
				Expense: decimal.RequireFromString(tc.expense),
			}
			f := BuildForecast(nil, totals)

			if !f.Totals.ForecastExpense.Equal(totals.Expense.Mul(DefaultGrowthRate)) {
				t.Errorf("forecast expense identity broken: %s", f.Totals.ForecastExpense)
			}
			if !f.Totals.ForecastSaving.Equal(totals.Income.Sub(f.Totals.ForecastExpense)) {
				t.Errorf("forecast saving identity broken: %s", f.Totals.ForecastSaving)
			}
			if !f.Totals.CurrentSaving.Equal(totals.Income.Sub(totals.Expense)) {
				t.Errorf("current saving identity broken: %s", f.Totals.CurrentSaving)
			}
		})
	}
}

func TestBuildForecastNoData(t *testing.T) {
	f := BuildForecast(nil, Totals{Income: decimal.Zero, Expense: decimal.Zero})

	if len(f.Categories) != 0 {
		t.Errorf("expected empty category list, got %d", len(f.Categories))
	}
	if !f.Totals.ForecastExpense.IsZero() || !f.Totals.ForecastSaving.IsZero() {
		t.Errorf("expected zero totals, got %+v", f.Totals)
	}
}

func TestBuildForecastIncomeOnly(t *testing.T) {
	summary := []CategoryTotal{{Category: "Income", Total: decimal.RequireFromString("9000.00")}}
	totals := Totals{Income: decimal.RequireFromString("9000.00"), Expense: decimal.Zero}

	f := BuildForecast(summary, totals)

	if len(f.Categories) != 0 {
		t.Errorf("income categories must not appear in the forecast list, got %d rows", len(f.Categories))
	}
	if !f.Totals.CurrentSaving.Equal(decimal.RequireFromString("9000.00")) {
		t.Errorf("expected saving 9000.00, got %s", f.Totals.CurrentSaving)
	}
}

func TestBuildForecastWithRate(t *testing.T) {
	summary := []CategoryTotal{{Category: "Transport", Total: decimal.RequireFromString("-100.00")}}
	totals := Totals{Income: decimal.Zero, Expense: decimal.RequireFromString("100.00")}

	f := BuildForecastWithRate(summary, totals, decimal.RequireFromString("1.10"))

	if !f.Categories[0].ForecastSpend.Equal(decimal.RequireFromString("110.00")) {
		t.Errorf("expected forecast spend 110.00 at 10%% growth, got %s", f.Categories[0].ForecastSpend)
	}
}
