/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/technophile-04/create-eth-codemod/core/cache"
	"github.com/technophile-04/create-eth-codemod/core/config"
	"github.com/technophile-04/create-eth-codemod/core/logger"
	"github.com/technophile-04/create-eth-codemod/core/migrator"
	"github.com/technophile-04/create-eth-codemod/core/models"
	"github.com/technophile-04/create-eth-codemod/core/rewriter"
	"github.com/technophile-04/create-eth-codemod/core/watcher"
)

var rootCmd = &cobra.Command{
	Use:   "create-eth-codemod [dir]",
	Short: "Migrate scaffold-eth component imports to @scaffold-ui/components.",
	Long: `create-eth-codemod rewrites imports of the legacy ~~/components/scaffold-eth
components (Address, AddressInput, Balance, EtherInput, InputBase) to the
@scaffold-ui/components package. InputBase becomes BaseInput and keeps its old
name as an alias so existing code keeps working.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMigrate,
}

var (
	logfile    string
	verbose    bool
	noColor    bool
	configPath string
	dryRun     bool
	showDiff   bool
	watch      bool
	workers    int
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to a codemod.yaml (default: <dir>/codemod.yaml)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report changes without writing files")
	rootCmd.Flags().BoolVar(&showDiff, "diff", false, "Print a unified diff for every changed file")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "Keep running and migrate files as they change")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "Number of files processed in parallel (default: config or CPU count)")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve directory: %w", err)
	}
	if info, err := os.Stat(root); err != nil {
		return fmt.Errorf("cannot access %s: %w", root, err)
	} else if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", root)
	}

	cfg, err := config.Load(root, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	if watch && dryRun {
		return fmt.Errorf("--watch cannot be combined with --dry-run")
	}

	m := migrator.New(cfg, rewriter.NewDefault(), migrator.Options{
		DryRun:  dryRun,
		Diff:    showDiff,
		Workers: workers,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := m.Run(ctx, root)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	migrator.PrintReport(cmd.OutOrStdout(), report)

	if watch {
		return watchTree(ctx, cmd, cfg, m, root)
	}
	return failuresError(report)
}

func watchTree(ctx context.Context, cmd *cobra.Command, cfg *config.Config, m *migrator.Migrator, root string) error {
	cc, err := cache.NewContentCache(cfg.Cache.MaxEntries)
	if err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(root, m, cc)
	if err != nil {
		return err
	}
	defer fw.Close()

	fw.OnReport = func(r *models.Report) {
		migrator.PrintReport(cmd.OutOrStdout(), r)
	}
	return fw.Watch(ctx)
}

func setupLogging(cfg *config.Config) (func(), error) {
	logger.SetVerbose(verbose || cfg.Verbose)
	logger.SetColor(!noColor)

	if logfile == "" {
		return func() {}, nil
	}

	f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetTimestamps(true)
	logger.AddWriter(f, false)
	return func() { f.Close() }, nil
}

func failuresError(report *models.Report) error {
	if len(report.Failures) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d files could not be migrated", len(report.Failures), report.Scanned)
}
