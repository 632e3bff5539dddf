package services

import (
	"strings"

	"gorm.io/gorm"

	"finsight/internal/analytics"
	apperrors "finsight/internal/errors"
)

// insightService feeds stored transactions through the analytics engine.
// All computation happens in the pure analytics package; this layer only
// scopes reads to the caller's user id.
type insightService struct {
	db *gorm.DB
}

// NewInsightService creates a new InsightServicer.
func NewInsightService(db *gorm.DB) InsightServicer {
	return &insightService{db: db}
}

// GetSummary computes per-category totals for the user, optionally
// restricted to a month/year window. A user with no data gets an empty
// summary and zero totals, not an error.
func (s *insightService) GetSummary(userID uint, window analytics.Window) ([]analytics.CategoryTotal, analytics.Totals, error) {
	txs, err := loadUserTransactions(s.db, userID, analytics.Window{})
	if err != nil {
		return nil, analytics.Totals{}, err
	}

	summary, totals := analytics.Summarize(txs, window)
	return summary, totals, nil
}

// GetForecast projects next-period spend and savings from the user's
// current aggregates.
func (s *insightService) GetForecast(userID uint, window analytics.Window) (*analytics.Forecast, error) {
	summary, totals, err := s.GetSummary(userID, window)
	if err != nil {
		return nil, err
	}

	forecast := analytics.BuildForecast(summary, totals)
	return &forecast, nil
}

// Ask answers a free-text question from the user's all-time aggregates.
// An empty question is a validation error; an unrecognized one gets the
// resolver's fixed fallback answer.
func (s *insightService) Ask(userID uint, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", apperrors.ErrEmptyQuestion
	}

	summary, totals, err := s.GetSummary(userID, analytics.Window{})
	if err != nil {
		return "", err
	}

	return analytics.Answer(question, totals, summary), nil
}
