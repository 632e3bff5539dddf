package analytics

import "github.com/shopspring/decimal"

// DefaultGrowthRate is the fixed growth multiplier applied to expenses
// when projecting the next period. It is a declared design parameter of
// the naive baseline model, not a tuned value.
var DefaultGrowthRate = decimal.RequireFromString("1.05")

// CategoryForecast projects next-period spend for a single expense category.
type CategoryForecast struct {
	Category      string          `json:"category"`
	CurrentSpend  decimal.Decimal `json:"current_spend"`
	ForecastSpend decimal.Decimal `json:"forecast_spend"`
}

// ForecastTotals holds the overall actuals and projections of a forecast.
type ForecastTotals struct {
	Income          decimal.Decimal `json:"income"`
	Expense         decimal.Decimal `json:"expense"`
	ForecastExpense decimal.Decimal `json:"forecast_expense"`
	CurrentSaving   decimal.Decimal `json:"current_saving"`
	ForecastSaving  decimal.Decimal `json:"forecast_saving"`
}

// Forecast is a derived value object, never persisted. An empty Categories
// list with zero totals means "no expense data yet", not an error.
type Forecast struct {
	Categories []CategoryForecast `json:"categories"`
	Totals     ForecastTotals     `json:"totals"`
}

// BuildForecast projects next-period spend and savings from current
// aggregates using DefaultGrowthRate.
//
// This is deliberately a naive baseline, not a trained predictor: every
// expense category is assumed to grow by the fixed rate, and income is
// carried through unchanged.
func BuildForecast(summary []CategoryTotal, totals Totals) Forecast {
	return BuildForecastWithRate(summary, totals, DefaultGrowthRate)
}

// BuildForecastWithRate is BuildForecast with a caller-supplied growth
// multiplier.
func BuildForecastWithRate(summary []CategoryTotal, totals Totals, rate decimal.Decimal) Forecast {
	categories := []CategoryForecast{}
	for _, row := range summary {
		if !row.Total.IsNegative() {
			continue
		}
		spend := row.Total.Neg()
		categories = append(categories, CategoryForecast{
			Category:      row.Category,
			CurrentSpend:  spend,
			ForecastSpend: spend.Mul(rate),
		})
	}

	forecastExpense := totals.Expense.Mul(rate)
	return Forecast{
		Categories: categories,
		Totals: ForecastTotals{
			Income:          totals.Income,
			Expense:         totals.Expense,
			ForecastExpense: forecastExpense,
			CurrentSaving:   totals.Income.Sub(totals.Expense),
			ForecastSaving:  totals.Income.Sub(forecastExpense),
		},
	}
}
