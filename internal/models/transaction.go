package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryUncategorized is assigned when no categorization rule matches
// a transaction description. Every persisted transaction carries a
// non-empty category.
const CategoryUncategorized = "Uncategorized"

// Transaction represents a single categorized bank-statement entry.
// Amounts are signed: positive = income/credit, negative = expense/debit.
// This sign convention is fixed across the whole system.
type Transaction struct {
	Base
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Date        time.Time       `gorm:"not null" json:"date"`
	Description string          `gorm:"not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Category    string          `gorm:"size:50;not null" json:"category"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
