package ingest

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestReadStatement(t *testing.T) {
	t.Run("valid_rows", func(t *testing.T) {
		input := "date,description,amount\n" +
			"2025-10-01,ACME CORP SALARY,50000\n" +
			"2025-10-03,SWIGGY ORDER #123,-450.50\n"

		result, err := ReadStatement(strings.NewReader(input))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(result.Rows))
		}
		if result.Rejected != 0 {
			t.Errorf("expected 0 rejected, got %d", result.Rejected)
		}

		first := result.Rows[0]
		if first.Description != "ACME CORP SALARY" {
			t.Errorf("expected description preserved, got %q", first.Description)
		}
		if !first.Amount.Equal(decimal.RequireFromString("50000")) {
			t.Errorf("expected amount 50000, got %s", first.Amount)
		}
		if first.Date.Year() != 2025 || int(first.Date.Month()) != 10 {
			t.Errorf("expected October 2025, got %v", first.Date)
		}
	})

	t.Run("reordered_header", func(t *testing.T) {
		input := "Amount,Description,Date\n-99.99,internet bill,2025-11-02\n"

		result, err := ReadStatement(strings.NewReader(input))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(result.Rows))
		}
		if !result.Rows[0].Amount.Equal(decimal.RequireFromString("-99.99")) {
			t.Errorf("expected amount -99.99, got %s", result.Rows[0].Amount)
		}
	})

	t.Run("bad_rows_skipped_not_fatal", func(t *testing.T) {
		input := "date,description,amount\n" +
			"2025-10-01,ok row,-10\n" +
			"2025-10-02,bad amount,not-a-number\n" +
			"garbage date,still bad,-5\n" +
			"2025-10-04,another ok row,20\n"

		result, err := ReadStatement(strings.NewReader(input))
		if err != nil {
			t.Fatalf("a few bad rows must not fail the batch: %v", err)
		}
		if len(result.Rows) != 2 {
			t.Errorf("expected 2 accepted rows, got %d", len(result.Rows))
		}
		if result.Rejected != 2 {
			t.Errorf("expected 2 rejected rows, got %d", result.Rejected)
		}
	})

	t.Run("alternate_date_format", func(t *testing.T) {
		input := "date,description,amount\n03/10/2025,UBER TRIP,-120\n"

		result, err := ReadStatement(strings.NewReader(input))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(result.Rows))
		}
		if int(result.Rows[0].Date.Month()) != 10 || result.Rows[0].Date.Day() != 3 {
			t.Errorf("expected 3 October, got %v", result.Rows[0].Date)
		}
	})

	t.Run("empty_file", func(t *testing.T) {
		result, err := ReadStatement(strings.NewReader(""))
		if err != nil {
			t.Fatalf("empty input is not an error: %v", err)
		}
		if len(result.Rows) != 0 || result.Rejected != 0 {
			t.Errorf("expected empty result, got %+v", result)
		}
	})

	t.Run("header_only", func(t *testing.T) {
		result, err := ReadStatement(strings.NewReader("date,description,amount\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Rows) != 0 {
			t.Errorf("expected no rows, got %d", len(result.Rows))
		}
	})
}
