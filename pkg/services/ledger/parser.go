package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/pkg/models/domain"
)

// Column names of the source CSV. Category is capitalized in the bank export.
const (
	colDate        = "date"
	colAccount     = "account"
	colCategory    = "Category"
	colDescription = "description"
	colAmount      = "amount"
)

// DateFormat renders a transaction date the way the source CSV writes it.
const DateFormat = "02-01-2006"

const defaultCategory = "Uncategorized"

// Result holds the parsed transactions plus the number of rows dropped
// because their date or amount could not be parsed.
type Result struct {
	Transactions []domain.Transaction
	Skipped      int
}

// Read parses a whole CSV stream. The first row must be the header; an
// unreadable stream is the only error, malformed rows are dropped and counted.
func Read(r io.Reader) (Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return Result{}, fmt.Errorf("reading transactions CSV: %w", err)
	}
	if len(records) == 0 {
		return Result{}, nil
	}
	return ParseRecords(records[0], records[1:]), nil
}

// ParseRecords converts raw rows into transactions, locating columns through
// the header row so column order never matters.
func ParseRecords(header []string, rows [][]string) Result {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}

	var res Result
	for _, row := range rows {
		t, ok := parseRow(idx, row)
		if !ok {
			res.Skipped++
			continue
		}
		res.Transactions = append(res.Transactions, t)
	}
	return res
}

func parseRow(idx map[string]int, row []string) (domain.Transaction, bool) {
	date, err := ParseDate(field(idx, row, colDate))
	if err != nil {
		return domain.Transaction{}, false
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(field(idx, row, colAmount)))
	if err != nil {
		return domain.Transaction{}, false
	}

	txType := domain.Credit
	if amount.IsNegative() {
		txType = domain.Debit
	}

	category := strings.TrimSpace(field(idx, row, colCategory))
	if category == "" {
		category = defaultCategory
	}

	return domain.Transaction{
		Date:        date,
		Account:     field(idx, row, colAccount),
		Category:    category,
		Description: field(idx, row, colDescription),
		Amount:      amount.Abs(),
		Type:        txType,
	}, true
}

func field(idx map[string]int, row []string, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// ParseDate parses the source's dd-mm-yyyy format. Segments are split on "-"
// so single-digit days and months are accepted, but the segments must name a
// real calendar date: 31-02-2025 is rejected, not normalized.
func ParseDate(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q: want dd-mm-yyyy", s)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day in %q: %w", s, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month in %q: %w", s, err)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year in %q: %w", s, err)
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || d.Month() != time.Month(month) || d.Year() != year {
		return time.Time{}, fmt.Errorf("no such calendar date: %q", s)
	}
	return d, nil
}
