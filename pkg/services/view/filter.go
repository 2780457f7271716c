package view

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/pkg/models/domain"
)

// All is the pass-through sentinel for category, type and range filters.
const All = "All"

// rangeWindows maps the named date-range options to month counts. The window
// is measured as month distance from the most recent transaction, ignoring
// days: "3m" keeps distances 0..2.
var rangeWindows = map[string]int{
	"1m": 1,
	"3m": 3,
	"6m": 6,
	"1y": 12,
	"2y": 24,
	"3y": 36,
}

// Filter narrows the transaction list for the tabular view. Zero values and
// unknown selections behave as "All" rather than erroring.
type Filter struct {
	Category  string
	Type      string
	Range     string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

// Apply returns the transactions passing every active predicate, in their
// original order.
func (f Filter) Apply(txs []domain.Transaction) []domain.Transaction {
	months, bounded := rangeWindows[f.Range]
	latest := 0
	if bounded {
		latest = latestMonthIndex(txs)
	}

	out := make([]domain.Transaction, 0, len(txs))
	for _, t := range txs {
		if !f.matchCategory(t) || !f.matchType(t) || !f.matchAmount(t) {
			continue
		}
		if bounded && latest-monthIndex(t.Date) >= months {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (f Filter) matchCategory(t domain.Transaction) bool {
	return f.Category == "" || f.Category == All || t.Category == f.Category
}

func (f Filter) matchType(t domain.Transaction) bool {
	switch f.Type {
	case string(domain.Credit), string(domain.Debit):
		return string(t.Type) == f.Type
	default:
		return true
	}
}

func (f Filter) matchAmount(t domain.Transaction) bool {
	if f.MinAmount != nil && t.Amount.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && t.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}
	return true
}

func monthIndex(d time.Time) int {
	return d.Year()*12 + int(d.Month()) - 1
}

func latestMonthIndex(txs []domain.Transaction) int {
	latest := 0
	for _, t := range txs {
		if idx := monthIndex(t.Date); idx > latest {
			latest = idx
		}
	}
	return latest
}

// Categories returns the distinct categories in first-seen order, prefixed
// with the "All" sentinel, ready to populate a filter select.
func Categories(txs []domain.Transaction) []string {
	out := []string{All}
	seen := make(map[string]bool)
	for _, t := range txs {
		if seen[t.Category] {
			continue
		}
		seen[t.Category] = true
		out = append(out, t.Category)
	}
	return out
}
