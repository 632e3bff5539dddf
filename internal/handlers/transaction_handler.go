package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finsight/internal/errors"
	"finsight/internal/pagination"
	"finsight/internal/services"
)

// TransactionHandler handles statement import and transaction access.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// ImportStatement handles a multipart CSV statement upload.
// @Summary     Import a bank statement
// @Description Upload a CSV statement; rows are categorized and stored. Malformed rows are counted, not fatal.
// @Tags        transactions
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       file formData file true "CSV statement file"
// @Success     200 {object} services.ImportSummary "Import summary"
// @Failure     400 {object} ErrorResponse "Missing or undecodable file"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/import [post]
func (h *TransactionHandler) ImportStatement(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "no file part in the request"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	defer file.Close()

	summary, err := h.transactionService.ImportStatement(userID, file)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "IMPORT_STATEMENT", "transaction", 0, c.ClientIP(),
		map[string]any{"file": fileHeader.Filename, "saved": summary.Saved, "rejected": summary.Rejected})

	c.JSON(http.StatusOK, summary)
}

// GetTransactions lists the user's transactions.
// @Summary     List transactions
// @Description Get a paginated list of the user's transactions, optionally filtered by month/year
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       month     query int false "Calendar month (1-12)"
// @Param       year      query int false "Calendar year"
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	window, err := parseWindow(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.GetUserTransactions(userID, page, window)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ResetTransactions deletes all of the user's transactions.
// @Summary     Reset transactions
// @Description Permanently delete all of the user's transactions
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse "Deletion count"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/reset [post]
func (h *TransactionHandler) ResetTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	deleted, err := h.transactionService.ResetTransactions(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "RESET_TRANSACTIONS", "transaction", 0, c.ClientIP(),
		map[string]any{"deleted": deleted})

	c.JSON(http.StatusOK, gin.H{"success": true, "deleted": deleted})
}
