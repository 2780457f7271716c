package period

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens/pkg/models/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBucketOfMonthly(t *testing.T) {
	cal := Calendar{}

	tests := []struct {
		in   time.Time
		want time.Time
	}{
		{date(2025, time.March, 15), date(2025, time.March, 1)},
		{date(2025, time.March, 1), date(2025, time.March, 1)},
		{date(2025, time.March, 31), date(2025, time.March, 1)},
		{date(2024, time.December, 31), date(2024, time.December, 1)},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, cal.BucketOf(tc.in, domain.Monthly))
	}
}

func TestBucketOfWeekly(t *testing.T) {
	// 2025-03-09 is a Sunday, 2025-03-15 a Saturday.
	cal := Calendar{WeekStart: time.Sunday}

	tests := []struct {
		in   time.Time
		want time.Time
	}{
		{date(2025, time.March, 9), date(2025, time.March, 9)},
		{date(2025, time.March, 12), date(2025, time.March, 9)},
		{date(2025, time.March, 15), date(2025, time.March, 9)},
		{date(2025, time.March, 16), date(2025, time.March, 16)},
		// Week spanning a month boundary.
		{date(2025, time.March, 1), date(2025, time.February, 23)},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, cal.BucketOf(tc.in, domain.Weekly))
	}
}

func TestBucketOfWeeklyMondayStart(t *testing.T) {
	cal := Calendar{WeekStart: time.Monday}

	assert.Equal(t, date(2025, time.March, 10), cal.BucketOf(date(2025, time.March, 15), domain.Weekly))
	assert.Equal(t, date(2025, time.March, 10), cal.BucketOf(date(2025, time.March, 10), domain.Weekly))
	assert.Equal(t, date(2025, time.March, 3), cal.BucketOf(date(2025, time.March, 9), domain.Weekly))
}

func TestLabelOf(t *testing.T) {
	cal := Calendar{}

	assert.Equal(t, "Mar 2025", cal.LabelOf(date(2025, time.March, 1), domain.Monthly))
	assert.Equal(t, "Dec 2024", cal.LabelOf(date(2024, time.December, 1), domain.Monthly))
	assert.Equal(t, "Week of Mar 09, 2025", cal.LabelOf(date(2025, time.March, 9), domain.Weekly))
	assert.Equal(t, "Week of Feb 23, 2025", cal.LabelOf(date(2025, time.February, 23), domain.Weekly))
}

// Two distinct bucket starts must never render the same label, otherwise
// unrelated periods silently merge during aggregation.
func TestLabelInjectivity(t *testing.T) {
	cal := Calendar{}

	for _, g := range []domain.Granularity{domain.Monthly, domain.Weekly} {
		seen := make(map[string]time.Time)
		for d := date(2019, time.January, 1); d.Year() < 2027; d = d.AddDate(0, 0, 1) {
			start := cal.BucketOf(d, g)
			label := cal.LabelOf(start, g)
			if prev, ok := seen[label]; ok {
				require.Equal(t, prev, start, "label %q produced by two bucket starts under %s", label, g)
				continue
			}
			seen[label] = start
		}
	}
}

func TestMatchesRoundTrip(t *testing.T) {
	cals := []Calendar{{WeekStart: time.Sunday}, {WeekStart: time.Monday}}
	dates := []time.Time{
		date(2025, time.March, 1),
		date(2025, time.March, 15),
		date(2024, time.December, 31),
		date(2025, time.January, 1),
	}

	for _, cal := range cals {
		for _, g := range []domain.Granularity{domain.Monthly, domain.Weekly} {
			for _, d := range dates {
				tx := domain.Transaction{Date: d, Amount: decimal.NewFromInt(1), Type: domain.Credit}
				label := cal.LabelOf(cal.BucketOf(d, g), g)
				assert.True(t, cal.Matches(tx, label, g),
					"transaction on %s must match its own label %q", d.Format("2006-01-02"), label)
			}
		}
	}
}

func TestMatchesRejectsOtherPeriods(t *testing.T) {
	cal := Calendar{}
	tx := domain.Transaction{Date: date(2025, time.March, 15)}

	assert.False(t, cal.Matches(tx, "Feb 2025", domain.Monthly))
	assert.False(t, cal.Matches(tx, "Week of Mar 02, 2025", domain.Weekly))
	assert.False(t, cal.Matches(tx, "Mar 2025", domain.Weekly), "label from the wrong granularity must not match")
}

func TestParseWeekday(t *testing.T) {
	wd, err := ParseWeekday("monday")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, wd)

	wd, err = ParseWeekday("Sunday")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, wd)

	_, err = ParseWeekday("someday")
	assert.Error(t, err)
}
