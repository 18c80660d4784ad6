package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/claimsight/internal/config"
)

var (
	cfg     config.Config
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "claimsight",
		Short: "Deterministic health-insurance claim estimator",
		Long: "Estimates how a hospital claim splits between insurer and patient by applying\n" +
			"policy rules (room caps, proportionate deduction, co-pay, sum insured) to facts\n" +
			"extracted from raw bill text. No generative model involved.",
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("DATABASE_URL"), "Postgres connection string (or set DATABASE_URL)")
	pf.StringVar(&cfg.PolicyFile, "policy-file", os.Getenv("CLAIMSIGHT_POLICY"), "Path to policy JSON (or set CLAIMSIGHT_POLICY)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&cfgFile, "config", "", "Optional YAML config file")
}

func loadConfigFile() error {
	if cfgFile == "" {
		return nil
	}
	return cfg.LoadFromFile(cfgFile)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
