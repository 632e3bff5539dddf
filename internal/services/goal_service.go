package services

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"finsight/internal/analytics"
	apperrors "finsight/internal/errors"
	"finsight/internal/models"
)

// goalService handles spending-goal business logic.
type goalService struct {
	db       *gorm.DB
	insights InsightServicer
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB, insights InsightServicer) GoalServicer {
	return &goalService{db: db, insights: insights}
}

// UpsertGoal creates a goal, or updates the monthly limit when the user
// already has a goal for the category. Goals are never auto-deleted.
func (s *goalService) UpsertGoal(userID uint, category string, monthlyLimit decimal.Decimal) (*models.Goal, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, apperrors.ErrGoalCategoryRequired
	}
	if !monthlyLimit.IsPositive() {
		return nil, apperrors.ErrGoalLimitInvalid
	}

	var goal models.Goal
	err := s.db.Where("user_id = ? AND category = ?", userID, category).First(&goal).Error
	switch {
	case err == nil:
		if err := s.db.Model(&goal).Update("monthly_limit", monthlyLimit).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		goal.MonthlyLimit = monthlyLimit
		return &goal, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		goal = models.Goal{UserID: userID, Category: category, MonthlyLimit: monthlyLimit}
		if err := s.db.Create(&goal).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &goal, nil

	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}

// GetUserGoals returns the user's goals ordered by category.
func (s *goalService) GetUserGoals(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.db.Where("user_id = ?", userID).Order("category").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

// GetGoalsUsage evaluates every goal against the user's all-time category
// summary. Stored goals are never mutated by evaluation.
func (s *goalService) GetGoalsUsage(userID uint) ([]analytics.GoalUsage, error) {
	goals, err := s.GetUserGoals(userID)
	if err != nil {
		return nil, err
	}

	summary, _, err := s.insights.GetSummary(userID, analytics.Window{})
	if err != nil {
		return nil, err
	}

	return analytics.EvaluateGoals(goals, summary), nil
}
