package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/spendlens/spendlens/pkg/server"
	"github.com/spendlens/spendlens/pkg/services/config"
	"github.com/spendlens/spendlens/pkg/store/csvstore"
)

var (
	cfgPath   string
	csvSource string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the spendlens dashboard API",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the spendlens config file (optional)")
	rootCmd.Flags().StringVar(&csvSource, "csv", "",
		"Path or URL of the transactions CSV (overrides config)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	source := cfg.CSVSource()
	if csvSource != "" {
		source = csvSource
	}
	if source == "" {
		return fmt.Errorf("no transactions source configured: set --csv, source.path or source.url")
	}

	calendar, err := cfg.Calendar()
	if err != nil {
		return err
	}

	store := csvstore.NewStore(csvstore.Settings{Source: source})
	snap, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	logger.Info().
		Int("transactions", len(snap.Transactions)).
		Int("skipped", snap.Skipped).
		Msgf("Transactions from `%s` successfully loaded.", source)

	api := server.NewWebAPI(server.Config{
		Addr:            cfg.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Source:   store,
			Calendar: calendar,
			Logger:   logger,
		},
	})

	return api.Start()
}
