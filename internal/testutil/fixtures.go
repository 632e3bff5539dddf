package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:           email,
		Password:        string(hash),
		DefaultCurrency: "INR",
		IsActive:        true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransaction creates a categorized transaction on the given date
// with the given signed amount (negative = expense).
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID uint, date time.Time, category, amount string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:      userID,
		Date:        date,
		Description: fmt.Sprintf("test transaction %d", nextID()),
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestGoal creates a goal with the given category and monthly limit.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID uint, category, monthlyLimit string) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:       userID,
		Category:     category,
		MonthlyLimit: decimal.RequireFromString(monthlyLimit),
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// Date builds a UTC midnight time for fixtures.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
