package main

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"pokerrun/config"
	"pokerrun/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML config file, defaults are used when empty")
	experiment := flag.String("experiment", "autoplay", "Experiment to run: autoplay or throughput")
	seeds := flag.Int("seeds", 0, "Number of runs, seeded 1..n (overrides the config)")
	levels := flag.Int("levels", 0, "Highest level of each run (overrides the config)")
	goroutines := flag.String("goroutines", "1,2,4,8", "Goroutine counts of the throughput experiment")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	out := flag.String("out", "results", "Output folder of the experiment records")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msgf("cannot load %s", *configPath)
		}
	}
	if *seeds > 0 {
		cfg.Experiment.Seeds = make([]int64, *seeds)
		for i := range cfg.Experiment.Seeds {
			cfg.Experiment.Seeds[i] = int64(i + 1)
		}
	}
	if *levels > 0 {
		cfg.Experiment.Levels = *levels
	}

	var dir string
	switch *experiment {
	case "autoplay":
		dir, err = experiments.RunAutoPlayExperiment(*out, cfg)
	case "throughput":
		counts, parseErr := parseCounts(*goroutines)
		if parseErr != nil {
			log.Fatal().Err(parseErr).Msg("invalid goroutine counts")
		}
		dir, err = experiments.RunThroughputExperiment(*out, cfg, counts)
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", *experiment)
	}
	log.Info().Msgf("records stored in %s", dir)
}

func parseCounts(s string) ([]int, error) {
	var counts []int
	for _, field := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		counts = append(counts, n)
	}
	return counts, nil
}
