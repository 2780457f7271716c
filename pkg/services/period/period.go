package period

import (
	"fmt"
	"strings"
	"time"

	"github.com/spendlens/spendlens/pkg/models/domain"
)

const (
	monthlyLabelFormat = "Jan 2006"
	weeklyLabelPrefix  = "Week of "
	weeklyLabelFormat  = "Jan 02, 2006"
)

// Calendar fixes the week-start convention used for weekly bucketing. The
// zero value starts weeks on Sunday, matching time.Weekday numbering.
type Calendar struct {
	WeekStart time.Weekday
}

// BucketOf maps a date to the canonical start of its period: the first day of
// the month, or the WeekStart day on or before the date. The result is always
// midnight UTC, so bucket starts compare cleanly.
func (c Calendar) BucketOf(date time.Time, g domain.Granularity) time.Time {
	if g == domain.Weekly {
		offset := (int(date.Weekday()) - int(c.WeekStart) + 7) % 7
		y, m, d := date.AddDate(0, 0, -offset).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	y, m, _ := date.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// LabelOf renders a bucket start as the label shown on the charts, e.g.
// "Mar 2025" or "Week of Mar 03, 2025". Distinct bucket starts always render
// distinct labels under the same granularity.
func (c Calendar) LabelOf(start time.Time, g domain.Granularity) string {
	if g == domain.Weekly {
		return weeklyLabelPrefix + start.Format(weeklyLabelFormat)
	}
	return start.Format(monthlyLabelFormat)
}

// Matches reports whether the transaction falls in the period named by label.
// The label is recomputed with the same bucketing used for aggregation, so
// drill-down can never diverge from what the charts show.
func (c Calendar) Matches(t domain.Transaction, label string, g domain.Granularity) bool {
	return c.LabelOf(c.BucketOf(t.Date, g), g) == label
}

// ParseWeekday resolves a weekday name ("sunday", "Monday") case-insensitively.
func ParseWeekday(s string) (time.Weekday, error) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.EqualFold(wd.String(), s) {
			return wd, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}
