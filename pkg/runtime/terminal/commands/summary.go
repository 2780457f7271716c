package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/spendlens/spendlens/pkg/runtime/terminal/export"
	"github.com/spendlens/spendlens/pkg/services/report"
	"github.com/spendlens/spendlens/pkg/store/csvstore"
)

const loadTimeout = 60 * time.Second

type SummaryCmd struct {
	csvSource string
	reporter  *export.Reporter
}

func NewSummaryCmd(reporter *export.Reporter) *cobra.Command {
	sc := &SummaryCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize a transactions CSV",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.csvSource, "csv", "", "Path or URL of the transactions CSV")
	_ = cmd.MarkFlagRequired("csv")

	return cmd
}

func (sc *SummaryCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), loadTimeout)
	defer cancel()

	snap, err := loadSnapshot(ctx, sc.csvSource)
	if err != nil {
		return err
	}

	return sc.reporter.Handle(report.BuildSummary(snap))
}

func loadSnapshot(ctx context.Context, source string) (csvstore.Snapshot, error) {
	store := csvstore.NewStore(csvstore.Settings{Source: source})
	snap, err := store.Load(ctx)
	if err != nil {
		return csvstore.Snapshot{}, fmt.Errorf("failed to load transactions: %w", err)
	}
	return snap, nil
}
