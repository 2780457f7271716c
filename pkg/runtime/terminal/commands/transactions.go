package commands

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/spendlens/spendlens/pkg/runtime/terminal/export"
	"github.com/spendlens/spendlens/pkg/services/report"
	"github.com/spendlens/spendlens/pkg/services/view"
)

type TransactionsCmd struct {
	csvSource string
	category  string
	txType    string
	dateRange string
	minAmount string
	maxAmount string
	sortBy    string
	order     string
	reporter  *export.Reporter
}

func NewTransactionsCmd(reporter *export.Reporter) *cobra.Command {
	tc := &TransactionsCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List transactions with optional filters",
		RunE:  tc.run,
	}

	cmd.Flags().StringVar(&tc.csvSource, "csv", "", "Path or URL of the transactions CSV")
	cmd.Flags().StringVar(&tc.category, "category", view.All, "Category filter")
	cmd.Flags().StringVar(&tc.txType, "type", view.All, "Type filter: Credit or Debit")
	cmd.Flags().StringVar(&tc.dateRange, "range", view.All, "Date range: 1m, 3m, 6m, 1y, 2y or 3y")
	cmd.Flags().StringVar(&tc.minAmount, "min-amount", "", "Minimum amount")
	cmd.Flags().StringVar(&tc.maxAmount, "max-amount", "", "Maximum amount")
	cmd.Flags().StringVar(&tc.sortBy, "sort", "date", "Sort column: date, category or amount")
	cmd.Flags().StringVar(&tc.order, "order", "asc", "Sort order: asc or desc")
	_ = cmd.MarkFlagRequired("csv")

	return cmd
}

func (tc *TransactionsCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), loadTimeout)
	defer cancel()

	snap, err := loadSnapshot(ctx, tc.csvSource)
	if err != nil {
		return err
	}

	filter := view.Filter{
		Category: tc.category,
		Type:     tc.txType,
		Range:    tc.dateRange,
	}
	if tc.minAmount != "" {
		min, err := decimal.NewFromString(tc.minAmount)
		if err != nil {
			return fmt.Errorf("invalid --min-amount %q: %w", tc.minAmount, err)
		}
		filter.MinAmount = &min
	}
	if tc.maxAmount != "" {
		max, err := decimal.NewFromString(tc.maxAmount)
		if err != nil {
			return fmt.Errorf("invalid --max-amount %q: %w", tc.maxAmount, err)
		}
		filter.MaxAmount = &max
	}

	txs := filter.Apply(snap.Transactions)
	txs = view.Sort(txs, view.SortBy(tc.sortBy), view.Order(tc.order))
	return tc.reporter.Handle(report.BuildTransactions("Transactions", txs))
}
