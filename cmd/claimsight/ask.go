package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gyeh/claimsight/internal/assist"
	"github.com/gyeh/claimsight/internal/db"
	"github.com/gyeh/claimsight/internal/exitcode"
	"github.com/gyeh/claimsight/internal/history"
	"github.com/gyeh/claimsight/internal/logging"
	"github.com/gyeh/claimsight/internal/policy"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Answer one question about a bill under a policy",
	RunE:  runAsk,
}

func init() {
	f := askCmd.Flags()
	f.StringVar(&cfg.Insurer, "insurer", "", "Insurer name, exact match (required)")
	f.StringVar(&cfg.Plan, "plan", "", "Plan name, exact match (required)")
	f.StringVar(&cfg.BillFile, "bill", "", "Path to extracted bill text (required)")
	f.StringVar(&cfg.Question, "question", "", "The patient's question (required)")
	f.StringVar(&cfg.Now, "now", "", "Override the engine clock (RFC3339); defaults to wall time")
	f.BoolVar(&cfg.Save, "save", false, "Record the exchange to the history database")
	_ = askCmd.MarkFlagRequired("insurer")
	_ = askCmd.MarkFlagRequired("plan")
	_ = askCmd.MarkFlagRequired("bill")
	_ = askCmd.MarkFlagRequired("question")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	if err := loadConfigFile(); err != nil {
		log.Error().Err(err).Msg("config file load failed")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.ValidateAsk(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	store, err := policy.Load(cfg.PolicyFile)
	if err != nil {
		log.Error().Err(err).Msg("policy load failed")
		os.Exit(exitcode.PolicyError)
	}
	pol, err := store.Lookup(cfg.Insurer, cfg.Plan)
	if err != nil {
		log.Error().Err(err).Msg("policy lookup failed")
		os.Exit(exitcode.PolicyError)
	}

	billBytes, err := os.ReadFile(cfg.BillFile)
	if err != nil {
		log.Error().Err(err).Msg("bill read failed")
		os.Exit(exitcode.UsageError)
	}

	now := time.Now().UTC()
	if cfg.Now != "" {
		now, err = time.Parse(time.RFC3339, cfg.Now)
		if err != nil {
			log.Error().Err(err).Msg("invalid --now value")
			os.Exit(exitcode.UsageError)
		}
	}

	svc := assist.New(log)
	ans := svc.Answer(pol, string(billBytes), cfg.Question, now)

	out, err := json.MarshalIndent(ans.Response, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if cfg.Save {
		pool, err := db.NewPool(ctx, cfg.DSN)
		if err != nil {
			log.Error().Err(err).Msg("database connection failed")
			os.Exit(exitcode.DBConnError)
		}
		defer pool.Close()

		if _, err := svc.Record(ctx, history.NewStore(pool), cfg.Insurer, cfg.Plan,
			string(billBytes), cfg.Question, ans, now); err != nil {
			log.Error().Err(err).Msg("recording failed")
			os.Exit(exitcode.RecordError)
		}
	}

	return nil
}
