package services

import (
	"io"
	"time"

	"github.com/shopspring/decimal"

	"finsight/internal/analytics"
	"finsight/internal/models"
	"finsight/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password string) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	UpdateProfile(userID uint, fullName, phone, defaultCurrency string) (*models.User, error)
}

// ImportSummary reports the outcome of a statement upload. Rejected counts
// rows skipped for unparseable amounts or dates; a non-zero value never
// fails the batch.
type ImportSummary struct {
	Saved        int                  `json:"saved"`
	Rejected     int                  `json:"rejected"`
	Transactions []models.Transaction `json:"transactions"`
}

// TransactionServicer defines the contract for transaction ingestion and access.
type TransactionServicer interface {
	IngestRow(userID uint, date time.Time, description string, amount decimal.Decimal) (*models.Transaction, error)
	ImportStatement(userID uint, r io.Reader) (*ImportSummary, error)
	GetUserTransactions(userID uint, page pagination.PageRequest, window analytics.Window) (*pagination.PageResponse[models.Transaction], error)
	ResetTransactions(userID uint) (int64, error)
}

// GoalServicer defines the contract for spending-goal management.
type GoalServicer interface {
	UpsertGoal(userID uint, category string, monthlyLimit decimal.Decimal) (*models.Goal, error)
	GetUserGoals(userID uint) ([]models.Goal, error)
	GetGoalsUsage(userID uint) ([]analytics.GoalUsage, error)
}

// InsightServicer exposes the analytics engine over a user's stored
// transactions: summaries, forecasts, and chat answers.
type InsightServicer interface {
	GetSummary(userID uint, window analytics.Window) ([]analytics.CategoryTotal, analytics.Totals, error)
	GetForecast(userID uint, window analytics.Window) (*analytics.Forecast, error)
	Ask(userID uint, question string) (string, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]any)
}
