package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"finsight/internal/analytics"
	apperrors "finsight/internal/errors"
	"finsight/internal/models"
	"finsight/internal/pagination"
	"finsight/internal/services"
)

// --- mock transaction service ---

type mockTransactionService struct {
	ingestRowFn           func(userID uint, date time.Time, description string, amount decimal.Decimal) (*models.Transaction, error)
	importStatementFn     func(userID uint, r io.Reader) (*services.ImportSummary, error)
	getUserTransactionsFn func(userID uint, page pagination.PageRequest, window analytics.Window) (*pagination.PageResponse[models.Transaction], error)
	resetTransactionsFn   func(userID uint) (int64, error)
}

func (m *mockTransactionService) IngestRow(userID uint, date time.Time, description string, amount decimal.Decimal) (*models.Transaction, error) {
	if m.ingestRowFn != nil {
		return m.ingestRowFn(userID, date, description, amount)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) ImportStatement(userID uint, r io.Reader) (*services.ImportSummary, error) {
	if m.importStatementFn != nil {
		return m.importStatementFn(userID, r)
	}
	return &services.ImportSummary{Transactions: []models.Transaction{}}, nil
}

func (m *mockTransactionService) GetUserTransactions(userID uint, page pagination.PageRequest, window analytics.Window) (*pagination.PageResponse[models.Transaction], error) {
	if m.getUserTransactionsFn != nil {
		return m.getUserTransactionsFn(userID, page, window)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockTransactionService) ResetTransactions(userID uint) (int64, error) {
	if m.resetTransactionsFn != nil {
		return m.resetTransactionsFn(userID)
	}
	return 0, nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/transactions/import", handler.ImportStatement)
	auth.GET("/transactions", handler.GetTransactions)
	auth.POST("/transactions/reset", handler.ResetTransactions)
	return r
}

func doUpload(r *gin.Engine, path, field, filename, content string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, _ := w.CreateFormFile(field, filename)
	part.Write([]byte(content))
	w.Close()

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestTransactionHandler_ImportStatement(t *testing.T) {
	t.Run("returns 200 with import summary", func(t *testing.T) {
		svc := &mockTransactionService{
			importStatementFn: func(userID uint, r io.Reader) (*services.ImportSummary, error) {
				body, _ := io.ReadAll(r)
				if len(body) == 0 {
					t.Error("expected uploaded file content to reach the service")
				}
				return &services.ImportSummary{
					Saved:    2,
					Rejected: 1,
					Transactions: []models.Transaction{
						{UserID: userID, Category: "Income"},
						{UserID: userID, Category: "Food & Dining"},
					},
				}, nil
			},
		}
		handler := NewTransactionHandler(svc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doUpload(r, "/transactions/import", "file", "statement.csv",
			"date,description,amount\n2025-10-01,SALARY,50000\n")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["saved"].(float64) != 2 {
			t.Errorf("expected 2 saved, got %v", result["saved"])
		}
		if result["rejected"].(float64) != 1 {
			t.Errorf("expected 1 rejected, got %v", result["rejected"])
		}
	})

	t.Run("returns 400 when no file part", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions/import", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 when file is not decodable", func(t *testing.T) {
		svc := &mockTransactionService{
			importStatementFn: func(_ uint, _ io.Reader) (*services.ImportSummary, error) {
				return nil, apperrors.ErrStatementEncoding
			},
		}
		handler := NewTransactionHandler(svc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doUpload(r, "/transactions/import", "file", "statement.csv", "\xff\xfe garbage")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "STATEMENT_ENCODING")
	})
}

func TestTransactionHandler_GetTransactions(t *testing.T) {
	t.Run("returns 200 and forwards window", func(t *testing.T) {
		var gotWindow analytics.Window
		svc := &mockTransactionService{
			getUserTransactionsFn: func(_ uint, page pagination.PageRequest, window analytics.Window) (*pagination.PageResponse[models.Transaction], error) {
				gotWindow = window
				resp := pagination.NewPageResponse([]models.Transaction{{Category: "Transport"}}, page.Page, page.PageSize, 1)
				return &resp, nil
			},
		}
		handler := NewTransactionHandler(svc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?month=10&year=2025&page=1&page_size=20", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotWindow.Month == nil || *gotWindow.Month != 10 {
			t.Errorf("expected month 10 forwarded, got %v", gotWindow.Month)
		}
		if gotWindow.Year == nil || *gotWindow.Year != 2025 {
			t.Errorf("expected year 2025 forwarded, got %v", gotWindow.Year)
		}
		result := parseJSON(t, rec)
		if result["total_items"].(float64) != 1 {
			t.Errorf("expected 1 total item, got %v", result["total_items"])
		}
	})

	t.Run("returns 400 on out-of-range month", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?month=13", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on non-numeric year", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?year=twenty25", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_ResetTransactions(t *testing.T) {
	t.Run("returns 200 with deleted count", func(t *testing.T) {
		svc := &mockTransactionService{
			resetTransactionsFn: func(_ uint) (int64, error) {
				return 5, nil
			},
		}
		handler := NewTransactionHandler(svc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions/reset", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["success"] != true {
			t.Errorf("expected success true, got %v", result["success"])
		}
		if result["deleted"].(float64) != 5 {
			t.Errorf("expected 5 deleted, got %v", result["deleted"])
		}
	})
}
