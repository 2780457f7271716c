package timeline

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/pkg/models/api"
	"github.com/spendlens/spendlens/pkg/models/domain"
	"github.com/spendlens/spendlens/pkg/services/period"
)

// Timeline carries the three chart projections plus the tooltip lookup map,
// all derived from a single bucketing pass so they can never disagree about
// which transactions landed in which period.
type Timeline struct {
	Totals     []api.TotalRow
	ByType     []api.TypeRow
	ByCategory []api.SeriesRow
	Tooltips   map[string]api.TypeAmounts
}

type bucket struct {
	start      time.Time
	label      string
	total      decimal.Decimal
	byType     map[domain.TxType]decimal.Decimal
	byCategory map[string]decimal.Decimal
}

// Aggregate folds transactions into ordered per-period summaries. It is a
// pure function of its inputs: sums accumulate as decimals and round to two
// places here, rows come out sorted by bucket start descending, and calling
// it again with the same input yields the identical result.
func Aggregate(txs []domain.Transaction, g domain.Granularity, cal period.Calendar) Timeline {
	buckets := make(map[time.Time]*bucket)
	for _, t := range txs {
		start := cal.BucketOf(t.Date, g)
		b := buckets[start]
		if b == nil {
			b = &bucket{
				start:      start,
				label:      cal.LabelOf(start, g),
				byType:     make(map[domain.TxType]decimal.Decimal),
				byCategory: make(map[string]decimal.Decimal),
			}
			buckets[start] = b
		}
		b.total = b.total.Add(t.Amount)
		b.byType[t.Type] = b.byType[t.Type].Add(t.Amount)
		b.byCategory[t.Category] = b.byCategory[t.Category].Add(t.Amount)
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	// Most recent period first; charts and the latest-period reference
	// point rely on this order.
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].start.After(ordered[j].start)
	})

	tl := Timeline{
		Totals:     make([]api.TotalRow, 0, len(ordered)),
		ByType:     make([]api.TypeRow, 0, len(ordered)),
		ByCategory: make([]api.SeriesRow, 0, len(ordered)),
		Tooltips:   make(map[string]api.TypeAmounts, len(ordered)),
	}
	for _, b := range ordered {
		credit := round(b.byType[domain.Credit])
		debit := round(b.byType[domain.Debit])

		tl.Totals = append(tl.Totals, api.TotalRow{Period: b.label, Total: round(b.total)})
		tl.ByType = append(tl.ByType, api.TypeRow{Period: b.label, Credit: credit, Debit: debit})

		values := make(map[string]float64, len(b.byCategory))
		for category, sum := range b.byCategory {
			values[category] = round(sum)
		}
		tl.ByCategory = append(tl.ByCategory, api.SeriesRow{Period: b.label, Values: values})

		tl.Tooltips[b.label] = api.TypeAmounts{Credit: credit, Debit: debit}
	}
	return tl
}

// DrillDown returns the transactions behind one aggregated period, newest
// first. Membership is decided by recomputing each transaction's label under
// the same calendar the aggregation used and comparing it to the selection.
func DrillDown(txs []domain.Transaction, label string, g domain.Granularity, cal period.Calendar) []domain.Transaction {
	out := make([]domain.Transaction, 0)
	for _, t := range txs {
		if cal.Matches(t, label, g) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

func round(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
