package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/spendlens/spendlens/pkg/runtime/terminal/commands"
	"github.com/spendlens/spendlens/pkg/runtime/terminal/export"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spendlens",
		Short: "Personal finance dashboard tool",
	}

	cmd.AddCommand(commands.NewSummaryCmd(cli.reporter))
	cmd.AddCommand(commands.NewTimelineCmd(cli.reporter))
	cmd.AddCommand(commands.NewTransactionsCmd(cli.reporter))

	return cmd
}
