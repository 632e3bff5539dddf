package models

import "github.com/shopspring/decimal"

// Goal represents a user-declared monthly spending ceiling for one category.
// One goal per (user, category) is the expected usage pattern; the POST
// endpoint upserts on that pair, but duplicates are tolerated and each is
// evaluated independently.
type Goal struct {
	Base
	UserID       uint            `gorm:"not null;index" json:"user_id"`
	Category     string          `gorm:"size:50;not null" json:"category"`
	MonthlyLimit decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"monthly_limit"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
