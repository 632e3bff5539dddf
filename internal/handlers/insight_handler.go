package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finsight/internal/errors"
	"finsight/internal/services"
)

// InsightHandler serves summaries, forecasts, and chat answers.
type InsightHandler struct {
	insightService services.InsightServicer
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(insightService services.InsightServicer) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// ChatRequest represents the chat question payload.
type ChatRequest struct {
	Question string `json:"question" binding:"required"`
}

// GetCategorySummary returns per-category totals.
// @Summary     Get category summary
// @Description Per-category signed totals plus income/expense totals, optionally filtered by month/year. A user with no data gets an empty list and zero totals.
// @Tags        insights
// @Produce     json
// @Security    BearerAuth
// @Param       month query int false "Calendar month (1-12)"
// @Param       year  query int false "Calendar year"
// @Success     200 {object} map[string]any "Summary rows and totals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary/categories [get]
func (h *InsightHandler) GetCategorySummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	window, err := parseWindow(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, totals, err := h.insightService.GetSummary(userID, window)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary, "totals": totals})
}

// GetForecast returns the next-period projection.
// @Summary     Get forecast
// @Description Naive next-period expense/saving projection from current aggregates. No expense data yields an empty category list and zero totals.
// @Tags        insights
// @Produce     json
// @Security    BearerAuth
// @Param       month query int false "Calendar month (1-12)"
// @Param       year  query int false "Calendar year"
// @Success     200 {object} analytics.Forecast "Forecast"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /forecast [get]
func (h *InsightHandler) GetForecast(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	window, err := parseWindow(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	forecast, err := h.insightService.GetForecast(userID, window)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, forecast)
}

// Chat answers a free-text question about the user's finances.
// @Summary     Ask a question
// @Description Resolve a free-text question against precomputed aggregates using a closed intent set
// @Tags        insights
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ChatRequest true "Question"
// @Success     200 {object} map[string]string "Answer text"
// @Failure     400 {object} ErrorResponse "Empty question"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /chat [post]
func (h *InsightHandler) Chat(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.ErrEmptyQuestion)
		return
	}

	answer, err := h.insightService.Ask(userID, req.Question)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": answer})
}
