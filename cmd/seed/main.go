// Command seed populates the local data store with sample records, or wipes
// it with -clear. It is a development utility: the store it writes is the
// same one the client reads.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"spendtrack/internal/config"
	"spendtrack/internal/repository/kv"
	"spendtrack/internal/seed"
	"spendtrack/internal/storage"
)

func main() {
	clearData := flag.Bool("clear", false, "wipe all collections instead of populating")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	store, err := storage.OpenSQLite(cfg.DataPath)
	if err != nil {
		log.Fatal().Err(err).Str("data_path", cfg.DataPath).Msg("Failed to open data store")
	}
	defer store.Close()

	repos := seed.Repositories{
		Spendings: kv.NewSpendingRepository(store),
		Budgets:   kv.NewBudgetRepository(store),
		Revenues:  kv.NewRevenueRepository(store),
		Recurring: kv.NewRecurringRepository(store),
	}

	if *clearData {
		if err := seed.Clear(store); err != nil {
			log.Fatal().Err(err).Msg("Failed to clear data")
		}
		log.Info().Msg("All data cleared")
		return
	}

	if err := seed.Populate(repos, time.Now()); err != nil {
		log.Fatal().Err(err).Msg("Failed to populate sample data")
	}

	summary := seed.Summarize(repos)
	log.Info().
		Int("spendings", summary.Spendings).
		Int("budgets", summary.Budgets).
		Int("revenues", summary.Revenues).
		Int("active_recurring", summary.ActiveRecurring).
		Str("total_spent", summary.TotalSpent.String()).
		Msg("Sample data populated")
}
