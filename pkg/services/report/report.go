package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/pkg/models/domain"
	"github.com/spendlens/spendlens/pkg/services/ledger"
	"github.com/spendlens/spendlens/pkg/services/period"
	"github.com/spendlens/spendlens/pkg/services/timeline"
	"github.com/spendlens/spendlens/pkg/store/csvstore"
)

// BuildSummary assembles the headline terminal report: overall totals plus a
// per-category breakdown across the whole ledger.
func BuildSummary(snap csvstore.Snapshot) *domain.Report {
	sum := timeline.Summarize(snap.Transactions)

	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	for _, t := range snap.Transactions {
		if _, ok := totals[t.Category]; !ok {
			order = append(order, t.Category)
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}
	categories := make([]domain.ReportDetail, 0, len(order))
	for _, category := range order {
		categories = append(categories, domain.ReportDetail{
			Name:  category,
			Value: totals[category].StringFixed(2),
		})
	}

	return &domain.Report{
		Title:       "Financial Summary",
		Period:      coveredPeriod(snap),
		TotalCredit: sum.TotalCredit,
		TotalDebit:  sum.TotalDebit,
		NetBalance:  sum.NetBalance,
		Sections: []domain.ReportSection{
			{
				Title: "Ledger",
				Summary: map[string]interface{}{
					"Transactions": sum.Count,
					"Skipped rows": snap.Skipped,
				},
			},
			{
				Title:   "By category",
				Details: categories,
			},
		},
	}
}

// BuildTimeline assembles the per-period terminal report for one granularity.
func BuildTimeline(snap csvstore.Snapshot, g domain.Granularity, cal period.Calendar) *domain.Report {
	sum := timeline.Summarize(snap.Transactions)
	tl := timeline.Aggregate(snap.Transactions, g, cal)

	details := make([]domain.ReportDetail, 0, len(tl.ByType))
	for i, row := range tl.ByType {
		details = append(details, domain.ReportDetail{
			Name:        row.Period,
			Value:       fmt.Sprintf("%.2f", tl.Totals[i].Total),
			Description: fmt.Sprintf("Credit %.2f / Debit %.2f", row.Credit, row.Debit),
		})
	}

	return &domain.Report{
		Title:       fmt.Sprintf("Spending by period (%s)", g),
		Period:      coveredPeriod(snap),
		TotalCredit: sum.TotalCredit,
		TotalDebit:  sum.TotalDebit,
		NetBalance:  sum.NetBalance,
		Sections: []domain.ReportSection{
			{
				Title: "Periods",
				Summary: map[string]interface{}{
					"Buckets": len(tl.Totals),
				},
				Details: details,
			},
		},
	}
}

// BuildTransactions assembles a transaction listing report, typically after
// filtering and sorting.
func BuildTransactions(title string, txs []domain.Transaction) *domain.Report {
	details := make([]domain.ReportDetail, 0, len(txs))
	for _, t := range txs {
		amount, _ := t.Amount.Round(2).Float64()
		details = append(details, domain.ReportDetail{
			Name:        t.Date.Format(ledger.DateFormat),
			Value:       fmt.Sprintf("%.2f", amount),
			Unit:        string(t.Type),
			Description: t.Category + ": " + t.Description,
		})
	}

	sum := timeline.Summarize(txs)
	return &domain.Report{
		Title:       title,
		TotalCredit: sum.TotalCredit,
		TotalDebit:  sum.TotalDebit,
		NetBalance:  sum.NetBalance,
		Sections: []domain.ReportSection{
			{
				Title: "Transactions",
				Summary: map[string]interface{}{
					"Count": len(txs),
				},
				Details: details,
			},
		},
	}
}

func coveredPeriod(snap csvstore.Snapshot) domain.TimePeriod {
	if len(snap.Transactions) == 0 {
		return domain.TimePeriod{}
	}
	start := snap.Transactions[0].Date
	end := start
	for _, t := range snap.Transactions[1:] {
		if t.Date.Before(start) {
			start = t.Date
		}
		if t.Date.After(end) {
			end = t.Date
		}
	}
	return domain.TimePeriod{
		Start: start,
		End:   end,
		Days:  int(midnight(end).Sub(midnight(start))/(24*time.Hour)) + 1,
	}
}

// midnight truncates to the calendar date so Days counts dates, not elapsed
// 24-hour spans.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
