package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finsight/internal/errors"
	"finsight/internal/services"
)

// GoalHandler handles spending-goal requests.
type GoalHandler struct {
	goalService  services.GoalServicer
	auditService services.AuditServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer, auditService services.AuditServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService, auditService: auditService}
}

// UpsertGoalRequest represents the request payload for saving a goal.
type UpsertGoalRequest struct {
	Category     string          `json:"category" binding:"required,min=1,max=50"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit" binding:"required"`
}

// UpsertGoal creates or updates the user's goal for a category.
// @Summary     Save a spending goal
// @Description Create a goal, or update the monthly limit when one already exists for the category
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpsertGoalRequest true "Goal details"
// @Success     201 {object} models.Goal "Goal saved"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [post]
func (h *GoalHandler) UpsertGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpsertGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.UpsertGoal(userID, req.Category, req.MonthlyLimit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPSERT_GOAL", "goal", goal.ID, c.ClientIP(),
		map[string]any{"category": goal.Category, "monthly_limit": goal.MonthlyLimit.String()})

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// GetGoals lists the user's goals.
// @Summary     Get goals
// @Description Get all goals for the authenticated user, ordered by category
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} []models.Goal "Goals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [get]
func (h *GoalHandler) GetGoals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goals, err := h.goalService.GetUserGoals(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// GetGoalsUsage reports spending against each goal.
// @Summary     Get goals usage
// @Description Evaluate each goal against the user's category spending
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} []analytics.GoalUsage "Goal usage rows"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/usage [get]
func (h *GoalHandler) GetGoalsUsage(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	usage, err := h.goalService.GetGoalsUsage(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": usage})
}
