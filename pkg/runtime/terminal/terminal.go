package terminal

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/impact-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/impact-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/impact-atlas/pkg/services/config"
	"github.com/de-tools/impact-atlas/pkg/services/impact"
	"github.com/de-tools/impact-atlas/pkg/services/report"
	"github.com/de-tools/impact-atlas/pkg/store/duckdb"
	reportstore "github.com/de-tools/impact-atlas/pkg/store/duckdb/report"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// OpenDB opens the report database at path
type OpenDB func(path string) (*sql.DB, error)

// CLI represents the command-line interface
type CLI struct {
	configPath string
	dbPath     string

	openDB   OpenDB
	logger   zerolog.Logger
	reporter *export.Reporter
	rootCmd  *cobra.Command
	db       *sql.DB
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	Logger *zerolog.Logger
	OpenDB OpenDB
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logger == nil {
		nop := zerolog.Nop()
		opts.Logger = &nop
	}
	if opts.OpenDB == nil {
		opts.OpenDB = func(path string) (*sql.DB, error) {
			return duckdb.NewDB(duckdb.Settings{DbPath: path})
		}
	}

	cli := &CLI{
		openDB:   opts.OpenDB,
		logger:   *opts.Logger,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.ExecuteContext(context.Background())
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	defer cli.close()
	return cli.rootCmd.ExecuteContext(cli.logger.WithContext(ctx))
}

// SetArgs overrides the command-line arguments
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "impact-atlas",
		Short:         "Monthly marketing report impact analysis",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cli.configPath, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&cli.dbPath, "db", "", "DuckDB database path (overrides config)")

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.services, cli.reporter))
	cmd.AddCommand(commands.NewKPIsCmd(cli.services))
	cmd.AddCommand(commands.NewReportsCmd(cli.services))

	return cmd
}

// services wires config, storage and the analyzer into a report service
func (cli *CLI) services(ctx context.Context, seed uint64) (report.Service, error) {
	logger := zerolog.Ctx(ctx)

	cfg, err := config.Load(cli.configPath)
	if err != nil {
		return nil, err
	}
	if cli.dbPath != "" {
		cfg.Database.Path = cli.dbPath
	}
	if seed == 0 {
		seed = cfg.Analysis.Seed
	}

	if cli.db == nil {
		db, err := cli.openDB(cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open database %s: %w", cfg.Database.Path, err)
		}
		cli.db = db
		logger.Debug().Str("path", cfg.Database.Path).Msg("database opened")
	}

	store, err := reportstore.NewStore(cli.db)
	if err != nil {
		return nil, err
	}

	db := cli.db
	return report.NewService(report.Options{
		Store:    store,
		Analyzer: impact.NewAnalyzer(impact.NewRandomSource(seed)),
		Tx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return duckdb.RunInTransaction(ctx, db, fn)
		},
	})
}

func (cli *CLI) close() {
	if cli.db == nil {
		return
	}
	if err := cli.db.Close(); err != nil {
		cli.logger.Error().Err(err).Msg("failed to close database")
	}
	cli.db = nil
}
