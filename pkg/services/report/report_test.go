package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens/pkg/models/domain"
	"github.com/spendlens/spendlens/pkg/services/period"
	"github.com/spendlens/spendlens/pkg/store/csvstore"
)

func snapshot() csvstore.Snapshot {
	return csvstore.Snapshot{
		Transactions: []domain.Transaction{
			{
				Date:     time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
				Category: "Salary",
				Amount:   decimal.NewFromInt(2000),
				Type:     domain.Credit,
			},
			{
				Date:     time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
				Category: "Groceries",
				Amount:   decimal.RequireFromString("54.20"),
				Type:     domain.Debit,
			},
			{
				Date:     time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC),
				Category: "Groceries",
				Amount:   decimal.RequireFromString("12.50"),
				Type:     domain.Debit,
			},
		},
		Skipped: 2,
	}
}

func TestBuildSummary(t *testing.T) {
	r := BuildSummary(snapshot())

	assert.Equal(t, "Financial Summary", r.Title)
	assert.InDelta(t, 2000, r.TotalCredit, 0.001)
	assert.InDelta(t, 66.70, r.TotalDebit, 0.001)
	assert.InDelta(t, 1933.30, r.NetBalance, 0.001)

	require.Len(t, r.Sections, 2)
	assert.Equal(t, 3, r.Sections[0].Summary["Transactions"])
	assert.Equal(t, 2, r.Sections[0].Summary["Skipped rows"])

	categories := r.Sections[1].Details
	require.Len(t, categories, 2)
	assert.Equal(t, "Salary", categories[0].Name)
	assert.Equal(t, "2000.00", categories[0].Value)
	assert.Equal(t, "Groceries", categories[1].Name)
	assert.Equal(t, "66.70", categories[1].Value)
}

func TestBuildSummaryCoveredPeriod(t *testing.T) {
	r := BuildSummary(snapshot())

	assert.Equal(t, time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC), r.Period.Start)
	assert.Equal(t, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), r.Period.End)
	assert.Equal(t, 24, r.Period.Days)
}

func TestBuildSummaryCoveredPeriodIgnoresTimeOfDay(t *testing.T) {
	// Days counts calendar dates. A late start and an early end on adjacent
	// days are still two days, not a sub-24h span rounded down to one.
	snap := csvstore.Snapshot{
		Transactions: []domain.Transaction{
			{
				Date:   time.Date(2025, time.March, 1, 23, 0, 0, 0, time.UTC),
				Amount: decimal.NewFromInt(10),
				Type:   domain.Credit,
			},
			{
				Date:   time.Date(2025, time.March, 2, 1, 0, 0, 0, time.UTC),
				Amount: decimal.NewFromInt(10),
				Type:   domain.Credit,
			},
		},
	}

	r := BuildSummary(snap)
	assert.Equal(t, 2, r.Period.Days)
}

func TestBuildSummaryEmpty(t *testing.T) {
	r := BuildSummary(csvstore.Snapshot{})

	assert.Zero(t, r.NetBalance)
	assert.Zero(t, r.Period.Days)
	require.Len(t, r.Sections, 2)
	assert.Empty(t, r.Sections[1].Details)
}

func TestBuildTimeline(t *testing.T) {
	r := BuildTimeline(snapshot(), domain.Monthly, period.Calendar{})

	assert.Equal(t, "Spending by period (monthly)", r.Title)
	require.Len(t, r.Sections, 1)
	assert.Equal(t, 2, r.Sections[0].Summary["Buckets"])

	details := r.Sections[0].Details
	require.Len(t, details, 2)
	assert.Equal(t, "Mar 2025", details[0].Name)
	assert.Equal(t, "2054.20", details[0].Value)
	assert.Equal(t, "Credit 2000.00 / Debit 54.20", details[0].Description)
	assert.Equal(t, "Feb 2025", details[1].Name)
}

func TestBuildTransactions(t *testing.T) {
	snap := snapshot()
	r := BuildTransactions("Transactions", snap.Transactions)

	assert.Equal(t, "Transactions", r.Title)
	require.Len(t, r.Sections, 1)
	assert.Equal(t, 3, r.Sections[0].Summary["Count"])

	details := r.Sections[0].Details
	require.Len(t, details, 3)
	assert.Equal(t, "01-03-2025", details[0].Name)
	assert.Equal(t, "2000.00", details[0].Value)
	assert.Equal(t, "Credit", details[0].Unit)
}
