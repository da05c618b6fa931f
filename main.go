package main

import (
	"fmt"
	"sort"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"monopoly/experiments"
	"monopoly/experiments/metrics"
)

type config struct {
	Games       int    `env:"SIM_GAMES" envDefault:"10000"`
	Workers     int    `env:"SIM_WORKERS" envDefault:"0"`
	MaxTurns    int    `env:"SIM_MAX_TURNS" envDefault:"10000"`
	Seed        int64  `env:"SIM_SEED" envDefault:"1"`
	Profiles    string `env:"SIM_PROFILES"` // Optional YAML file
	ResultsName string `env:"SIM_RESULTS" envDefault:"montecarlo"`
	Debug       bool   `env:"SIM_DEBUG"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		panic(fmt.Sprintf("failed to parse environment: %v", err))
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	profiles := experiments.DefaultProfiles()
	if cfg.Profiles != "" {
		loaded, err := experiments.LoadProfiles(cfg.Profiles)
		if err != nil {
			panic(fmt.Sprintf("failed to load profiles: %v", err))
		}
		profiles = loaded
	}

	tally, records := experiments.Run(experiments.Config{
		Games:    cfg.Games,
		Workers:  cfg.Workers,
		MaxTurns: cfg.MaxTurns,
		Seed:     cfg.Seed,
	}, profiles)

	writer, err := metrics.NewWriter(cfg.ResultsName)
	if err != nil {
		panic(fmt.Sprintf("failed to create results writer: %v", err))
	}
	if err := writer.WriteProfiles(profiles); err != nil {
		panic(fmt.Sprintf("failed to store profiles: %v", err))
	}
	if err := writer.WriteGameRecords(records); err != nil {
		panic(fmt.Sprintf("failed to store game records: %v", err))
	}
	log.Info().Msgf("stored results for run %s", writer.RunID)

	names := make([]string, 0, len(tally))
	for name := range tally {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println("Win counts:")
	for _, name := range names {
		fmt.Printf("  %-12s %d\n", name, tally[name])
	}
}
