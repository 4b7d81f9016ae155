// Package main is the dataset generator entry point. It loads the run
// configuration, executes the synthesis pipeline and writes the dataset.
package main

import (
	"flag"
	"os"

	"shopforge/internal/config"
	"shopforge/internal/logger"
	"shopforge/internal/output"
	"shopforge/internal/pipeline"
)

type cliFlags struct {
	seed      *int64
	out       *string
	products  *int
	customers *int
	months    *string
	clamp     *bool
}

func registerFlags(fs *flag.FlagSet) *cliFlags {
	return &cliFlags{
		seed:      fs.Int64("seed", 0, "random seed (overrides SEED)"),
		out:       fs.String("out", "", "output directory (overrides OUTPUT_DIR)"),
		products:  fs.Int("products", 0, "catalog size (overrides CATALOG_SIZE)"),
		customers: fs.Int("customers", 0, "roster size (overrides ROSTER_SIZE)"),
		months:    fs.String("months", "", "month plans as YYYY-MM:target,... (overrides MONTH_TARGETS)"),
		clamp:     fs.Bool("clamp", false, "clamp composed fraud probability at 1 (overrides FRAUD_CLAMP_PROBABILITY)"),
	}
}

// applyFlags copies the flags the user actually set onto cfg. Presence is
// what matters: -seed 0 and -clamp=false override the environment too.
func applyFlags(fs *flag.FlagSet, fl *cliFlags, cfg *config.Config) error {
	var applyErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *fl.seed
		case "out":
			cfg.OutputDir = *fl.out
		case "products":
			cfg.CatalogSize = *fl.products
		case "customers":
			cfg.RosterSize = *fl.customers
		case "months":
			plans, err := config.ParseMonthPlans(*fl.months)
			if err != nil {
				applyErr = err
				return
			}
			cfg.Months = plans
		case "clamp":
			cfg.ClampFraudProbability = *fl.clamp
		}
	})
	return applyErr
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fl := registerFlags(fs)
	fs.Parse(os.Args[1:])

	log := logger.New()

	config.LoadEnv()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load configuration")
	}
	if err := applyFlags(fs, fl, &cfg); err != nil {
		log.Fatal().Err(err).Msg("parse month plans")
	}

	ds, err := pipeline.Run(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("synthesis run failed")
	}

	if err := output.NewWriter(log).Write(cfg.OutputDir, ds); err != nil {
		log.Fatal().Err(err).Msg("write dataset")
	}

	manifest := output.BuildManifest(ds)
	log.Info().
		Str("run_id", ds.RunID).
		Int64("seed", cfg.Seed).
		Int("transactions", manifest.Transactions).
		Float64("fraud_rate", manifest.FraudRate).
		Float64("clean_revenue", manifest.CleanRevenue).
		Msg("run complete")
}
