package models

import "time"

// User represents the user model in the database
type User struct {
	Base
	Email           string        `gorm:"uniqueIndex;not null" json:"email"`
	Password        string        `gorm:"not null" json:"-"`
	FullName        string        `json:"full_name"`
	Phone           string        `json:"phone"`
	DefaultCurrency string        `gorm:"size:3;not null;default:'INR'" json:"default_currency"`
	IsActive        bool          `gorm:"default:true" json:"is_active"`
	LastLoginAt     *time.Time    `json:"last_login_at,omitempty"`
	Transactions    []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	Goals           []Goal        `gorm:"foreignKey:UserID" json:"goals,omitempty"`
}
