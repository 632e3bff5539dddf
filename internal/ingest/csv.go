// Package ingest parses bank-statement CSV files into raw rows ready for
// categorization. Parsing is lenient by design: a statement with a few
// malformed rows still imports, with the bad rows counted rather than
// failing the batch.
package ingest

import (
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Row is one parsed statement line: a date, a free-text description, and
// a signed amount (negative = debit).
type Row struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// Result carries the accepted rows plus a count of rejected lines.
type Result struct {
	Rows     []Row
	Rejected int
}

// dateLayouts are tried in order when parsing the date column. Statements
// in the wild mix ISO dates with the dd/mm/yyyy style used by several
// Indian banks.
var dateLayouts = []string{"2006-01-02", "02/01/2006", "02-01-2006"}

// ReadStatement reads a headered CSV statement from r. The header row must
// name the date, description, and amount columns (any order, any case).
// Rows whose amount fails to parse, or whose date is unusable, are counted
// as rejected and skipped; the rest of the batch continues. A read error
// on the stream itself is returned to the caller.
func ReadStatement(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, they are rejected below
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return Result{Rows: []Row{}}, nil
		}
		return Result{}, err
	}

	dateIdx, descIdx, amountIdx := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			dateIdx = i
		case "description":
			descIdx = i
		case "amount":
			amountIdx = i
		}
	}

	result := Result{Rows: []Row{}}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A structurally broken line rejects that line only.
			result.Rejected++
			continue
		}

		row, ok := parseRow(record, dateIdx, descIdx, amountIdx)
		if !ok {
			result.Rejected++
			continue
		}
		result.Rows = append(result.Rows, row)
	}

	return result, nil
}

func parseRow(record []string, dateIdx, descIdx, amountIdx int) (Row, bool) {
	field := func(idx int) string {
		if idx < 0 || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	amount, err := decimal.NewFromString(field(amountIdx))
	if err != nil {
		return Row{}, false
	}

	date, ok := parseDate(field(dateIdx))
	if !ok {
		return Row{}, false
	}

	return Row{
		Date:        date,
		Description: field(descIdx),
		Amount:      amount,
	}, true
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
