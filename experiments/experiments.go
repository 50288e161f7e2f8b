package experiments

import (
	"fmt"

	"pokerrun/agent"
	"pokerrun/config"
	"pokerrun/engine"
	"pokerrun/experiments/metrics"
	"pokerrun/game"
	"pokerrun/searcher"

	"github.com/rs/zerolog/log"
)

// RunAutoPlayExperiment plays every configured seed with the configured
// simulator and stores the records under root. It returns the output folder.
func RunAutoPlayExperiment(root string, cfg config.Config) (string, error) {
	configs := []metrics.AgentConfig{{
		ID:                   1,
		Goroutines:           cfg.Simulator.Goroutines,
		MaxSimulations:       cfg.Simulator.MaxSimulations,
		SimulationPercentage: cfg.Simulator.SimulationPercentage,
	}}
	return runExperiment("autoplay", root, cfg, configs)
}

// playedGame is one level of a run.
type playedGame struct {
	run       string
	metric    metrics.GameMetric
	decisions []metrics.DecisionMetric
}

func runExperiment(name, root string, cfg config.Config, configs []metrics.AgentConfig) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	decisionRecords := []metrics.DecisionRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for ai, agentConfig := range configs {
		log.Info().Msgf("starting agent %d of %d with config=%+v...", ai+1, len(configs), agentConfig)

		for si, seed := range cfg.Experiment.Seeds {
			games, err := playRun(cfg, agentConfig, seed)
			if err != nil {
				return "", err
			}
			for _, g := range games {
				count++
				gameRecords = append(gameRecords, metrics.GameRecord{
					ID:         count,
					Agent:      agentConfig.ID,
					Run:        g.run,
					GameMetric: g.metric,
				})
				for _, dm := range g.decisions {
					decisionRecords = append(decisionRecords, metrics.DecisionRecord{
						Game:           count,
						DecisionMetric: dm,
					})
				}
			}

			if len(games) == 0 {
				continue
			}
			last := games[len(games)-1].metric
			log.Info().Msgf("completed run %d of %d (seed %d) at level %d with score %d (won: %t)",
				si+1, len(cfg.Experiment.Seeds), seed, last.Level, last.Score, last.Won)
		}
		log.Info().Msgf("completed agent %d of %d", ai+1, len(configs))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("cannot create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("cannot store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("cannot write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteDecisionRecords(decisionRecords); err != nil {
		return "", fmt.Errorf("cannot write decision records: %w", err)
	}
	log.Info().Msg("stored decision records")

	return writer.Dir(), nil
}

// playRun plays the levels of one seed in order until one is lost. Winning a
// level levels up the type of its winning hand for the rest of the run.
func playRun(cfg config.Config, agentConfig metrics.AgentConfig, seed int64) ([]playedGame, error) {
	run := game.NewRunState(seed)
	games := []playedGame{}

	for level := 1; level <= cfg.Experiment.Levels; level++ {
		h := engine.NewHandler(cfg.Game, cfg.Hands, run, level)
		player := agent.NewAutoPlayer(createOptions(agentConfig, seed)...)

		gameMetric, decisions, err := engine.Run(h, player)
		if err != nil {
			return games, fmt.Errorf("cannot play seed %d level %d: %w", seed, level, err)
		}
		games = append(games, playedGame{run: run.ID().String(), metric: gameMetric, decisions: decisions})

		if !gameMetric.Won {
			break
		}
		history := h.History()
		winning := history[len(history)-1].HandType
		log.Info().Msgf("seed %d won level %d, %s is now level %d", seed, level, winning, run.LevelUp(winning))
	}
	return games, nil
}

func createOptions(config metrics.AgentConfig, seed int64) []searcher.Option {
	options := []searcher.Option{searcher.WithSeed(uint64(seed))}

	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.MaxSimulations > 0 {
		options = append(options, searcher.WithMaxSimulations(config.MaxSimulations))
	}
	if config.SimulationPercentage > 0 {
		options = append(options, searcher.WithSimulationPercentage(config.SimulationPercentage))
	}

	options = append(options, searcher.WithMetrics())
	return options
}
