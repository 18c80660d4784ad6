package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/claimsight/internal/audit"
	"github.com/gyeh/claimsight/internal/db"
	"github.com/gyeh/claimsight/internal/exitcode"
	"github.com/gyeh/claimsight/internal/history"
	"github.com/gyeh/claimsight/internal/logging"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export estimate audit rows to a Parquet file",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&cfg.OutFile, "out", "", "Output Parquet path (required)")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	rows, err := history.NewStore(pool).Estimates(ctx)
	if err != nil {
		log.Error().Err(err).Msg("reading estimates failed")
		os.Exit(exitcode.ExportError)
	}

	f, err := os.Create(cfg.OutFile)
	if err != nil {
		log.Error().Err(err).Msg("creating output file failed")
		os.Exit(exitcode.ExportError)
	}
	defer f.Close()

	if err := audit.WriteParquet(f, rows); err != nil {
		log.Error().Err(err).Msg("parquet write failed")
		os.Exit(exitcode.ExportError)
	}

	fmt.Printf("Exported %d estimate rows to %s\n", len(rows), cfg.OutFile)
	return nil
}
