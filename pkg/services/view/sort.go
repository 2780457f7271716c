package view

import (
	"sort"

	"github.com/spendlens/spendlens/pkg/models/domain"
)

// SortBy names the transaction table's sortable columns.
type SortBy string

const (
	ByDate     SortBy = "date"
	ByCategory SortBy = "category"
	ByAmount   SortBy = "amount"
)

type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// Sort returns a copy ordered by the requested column. The sort is stable, so
// equal keys keep their input order. Unknown columns sort by date, unknown
// orders ascend.
func Sort(txs []domain.Transaction, by SortBy, order Order) []domain.Transaction {
	out := make([]domain.Transaction, len(txs))
	copy(out, txs)

	less := lessFunc(by)
	if order == Desc {
		asc := less
		less = func(a, b domain.Transaction) bool { return asc(b, a) }
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func lessFunc(by SortBy) func(a, b domain.Transaction) bool {
	switch by {
	case ByCategory:
		return func(a, b domain.Transaction) bool { return a.Category < b.Category }
	case ByAmount:
		return func(a, b domain.Transaction) bool { return a.Amount.LessThan(b.Amount) }
	default:
		return func(a, b domain.Transaction) bool { return a.Date.Before(b.Date) }
	}
}
