// Package main provides the CLI entry point for excelterm.
package main

import (
	"fmt"
	"os"

	"github.com/itz-Amethyst/excel-term/internal/config"
	"github.com/itz-Amethyst/excel-term/internal/logger"
	"github.com/itz-Amethyst/excel-term/pkg/inventory"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	filePath  string
	logLevel  string
	logFormat string
	logOutput string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "excelterm",
		Short: "Manage a product inventory kept in an Excel workbook",
		Long: `excelterm keeps one worksheet per product. Every edit appends a
timestamped row, so each sheet is the history of its product.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", "", "Workbook path (default "+config.DefaultFile+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: console, json")
	rootCmd.PersistentFlags().StringVar(&logOutput, "log-output", "", "Log output: stderr, stdout, or a file path")

	rootCmd.AddCommand(
		newInitCmd(),
		newAddCmd(),
		newEditCmd(),
		newDeleteCmd(),
		newUndoCmd(),
		newListCmd(),
		newShowCmd(),
		newBrowseCmd(),
		newChartCmd(),
		newInfoCmd(),
	)
	return rootCmd
}

// app holds what every command needs after flags are parsed.
type app struct {
	conf     *config.Config
	log      *zap.Logger
	closeLog func()
}

func setup(cmd *cobra.Command) (*app, error) {
	conf, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}
	log, closeLog, err := logger.New(conf.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return &app{conf: conf, log: log, closeLog: closeLog}, nil
}

// close flushes the logger and releases its output.
func (a *app) close() {
	_ = a.log.Sync()
	a.closeLog()
}

func (a *app) options() inventory.Options {
	opts := inventory.DefaultOptions()
	opts.Logger = a.log
	return opts
}

// withBook opens the configured workbook, runs fn and closes it.
func withBook(cmd *cobra.Command, fn func(a *app, b *inventory.Book) error) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	b, err := inventory.Open(a.conf.File, a.options())
	if err != nil {
		return err
	}
	defer b.Close()

	return fn(a, b)
}
