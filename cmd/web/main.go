package main

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/impact-atlas/pkg/server"
	"github.com/de-tools/impact-atlas/pkg/services/config"
	"github.com/de-tools/impact-atlas/pkg/services/impact"
	"github.com/de-tools/impact-atlas/pkg/services/report"
	"github.com/de-tools/impact-atlas/pkg/store/duckdb"
	reportstore "github.com/de-tools/impact-atlas/pkg/store/duckdb/report"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Impact Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a YAML config file (defaults and environment are used when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{
		DbPath: cfg.Database.Path,
	})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	defer db.Close()

	store, err := reportstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create report store: %w", err)
	}

	reports, err := report.NewService(report.Options{
		Store:    store,
		Analyzer: impact.NewAnalyzer(impact.NewRandomSource(cfg.Analysis.Seed)),
		Tx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return duckdb.RunInTransaction(ctx, db, fn)
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create report service: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Str("database", cfg.Database.Path).
		Uint64("seed", cfg.Analysis.Seed).
		Msg("configuration loaded")

	api := server.NewWebAPI(server.Config{
		Addr:            cfg.Server.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Reports: reports,
			Logger:  logger,
		},
	})

	return api.Start()
}
