package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/spendlens/spendlens/pkg/models/domain"
	"github.com/spendlens/spendlens/pkg/runtime/terminal/export"
	"github.com/spendlens/spendlens/pkg/services/period"
	"github.com/spendlens/spendlens/pkg/services/report"
)

type TimelineCmd struct {
	csvSource string
	groupBy   string
	weekStart string
	reporter  *export.Reporter
}

func NewTimelineCmd(reporter *export.Reporter) *cobra.Command {
	tc := &TimelineCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show per-period totals for a transactions CSV",
		RunE:  tc.run,
	}

	cmd.Flags().StringVar(&tc.csvSource, "csv", "", "Path or URL of the transactions CSV")
	cmd.Flags().StringVar(&tc.groupBy, "group-by", "monthly", "Bucket size: monthly or weekly")
	cmd.Flags().StringVar(&tc.weekStart, "week-start", "Sunday", "First day of the week for weekly buckets")
	_ = cmd.MarkFlagRequired("csv")

	return cmd
}

func (tc *TimelineCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), loadTimeout)
	defer cancel()

	weekStart, err := period.ParseWeekday(tc.weekStart)
	if err != nil {
		return err
	}

	snap, err := loadSnapshot(ctx, tc.csvSource)
	if err != nil {
		return err
	}

	g := domain.ParseGranularity(tc.groupBy)
	cal := period.Calendar{WeekStart: weekStart}
	return tc.reporter.Handle(report.BuildTimeline(snap, g, cal))
}
