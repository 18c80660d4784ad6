package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/claimsight/internal/exitcode"
	"github.com/gyeh/claimsight/internal/logging"
	"github.com/gyeh/claimsight/internal/policy"
)

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List insurers, or the plans of one insurer",
	RunE:  runPolicies,
}

func init() {
	policiesCmd.Flags().StringVar(&cfg.Insurer, "insurer", "", "List plans for this insurer instead of all insurers")
	rootCmd.AddCommand(policiesCmd)
}

func runPolicies(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := loadConfigFile(); err != nil {
		log.Error().Err(err).Msg("config file load failed")
		os.Exit(exitcode.UsageError)
	}
	if cfg.PolicyFile == "" {
		log.Error().Msg("--policy-file or CLAIMSIGHT_POLICY is required")
		os.Exit(exitcode.UsageError)
	}

	store, err := policy.Load(cfg.PolicyFile)
	if err != nil {
		log.Error().Err(err).Msg("policy load failed")
		os.Exit(exitcode.PolicyError)
	}

	if cfg.Insurer != "" {
		plans := store.Plans(cfg.Insurer)
		if plans == nil {
			log.Error().Str("insurer", cfg.Insurer).Msg("unknown insurer")
			os.Exit(exitcode.PolicyError)
		}
		for _, p := range plans {
			fmt.Println(p)
		}
		return nil
	}

	for _, ins := range store.Insurers() {
		fmt.Println(ins)
	}
	return nil
}
