package services

import (
	"io"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"finsight/internal/analytics"
	apperrors "finsight/internal/errors"
	"finsight/internal/ingest"
	"finsight/internal/models"
	"finsight/internal/pagination"
)

// transactionService handles transaction ingestion and access.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// IngestRow categorizes a single statement row and persists it for the
// user. Every stored transaction carries a non-empty category.
func (s *transactionService) IngestRow(userID uint, date time.Time, description string, amount decimal.Decimal) (*models.Transaction, error) {
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction date is required")
	}

	tx := &models.Transaction{
		UserID:      userID,
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    analytics.Categorize(description),
	}

	if err := s.db.Create(tx).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return tx, nil
}

// ImportStatement parses a CSV statement and stores every accepted row,
// categorized, inside a single database transaction. Rows the parser
// rejected are reported in the summary; they never fail the upload.
func (s *transactionService) ImportStatement(userID uint, r io.Reader) (*ImportSummary, error) {
	parsed, err := ingest.ReadStatement(r)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStatementEncoding, err)
	}

	summary := &ImportSummary{
		Rejected:     parsed.Rejected,
		Transactions: make([]models.Transaction, 0, len(parsed.Rows)),
	}

	err = s.db.Transaction(func(txn *gorm.DB) error {
		for _, row := range parsed.Rows {
			record := models.Transaction{
				UserID:      userID,
				Date:        row.Date,
				Description: row.Description,
				Amount:      row.Amount,
				Category:    analytics.Categorize(row.Description),
			}
			if err := txn.Create(&record).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			summary.Transactions = append(summary.Transactions, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary.Saved = len(summary.Transactions)
	return summary, nil
}

// GetUserTransactions returns a page of the user's transactions, oldest
// first, optionally restricted to a month/year window. The unfiltered
// listing pages in SQL; windowed listings filter in Go so month-only
// filters behave identically on Postgres and the in-memory test database.
func (s *transactionService) GetUserTransactions(userID uint, page pagination.PageRequest, window analytics.Window) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	if window.Month == nil && window.Year == nil {
		var total int64
		if err := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		var txs []models.Transaction
		err := s.db.Where("user_id = ?", userID).Order("date, id").
			Scopes(pagination.Paginate(page)).Find(&txs).Error
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		result := pagination.NewPageResponse(txs, page.Page, page.PageSize, total)
		return &result, nil
	}

	txs, err := loadUserTransactions(s.db, userID, window)
	if err != nil {
		return nil, err
	}

	total := int64(len(txs))
	start := page.Offset()
	if start > len(txs) {
		start = len(txs)
	}
	end := start + page.PageSize
	if end > len(txs) {
		end = len(txs)
	}

	result := pagination.NewPageResponse(txs[start:end], page.Page, page.PageSize, total)
	return &result, nil
}

// ResetTransactions bulk-deletes all of the user's transactions and
// returns the number removed. The delete is permanent, not a soft delete.
func (s *transactionService) ResetTransactions(userID uint) (int64, error) {
	res := s.db.Unscoped().Where("user_id = ?", userID).Delete(&models.Transaction{})
	if res.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	return res.RowsAffected, nil
}

// loadUserTransactions reads the user's transactions in stable date order
// and applies the window filter. Shared with the insight service, which
// feeds the same sequence to the analytics engine.
func loadUserTransactions(db *gorm.DB, userID uint, window analytics.Window) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := db.Where("user_id = ?", userID).Order("date, id").Find(&txs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if window.Month == nil && window.Year == nil {
		return txs, nil
	}

	filtered := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if window.Contains(tx) {
			filtered = append(filtered, tx)
		}
	}
	return filtered, nil
}
