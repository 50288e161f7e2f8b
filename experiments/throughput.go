package experiments

import (
	"pokerrun/config"
	"pokerrun/experiments/metrics"
)

// RunThroughputExperiment replays the configured seeds once per goroutine
// count. Decisions do not depend on the goroutine count, so the runs only
// differ in their search durations.
func RunThroughputExperiment(root string, cfg config.Config, goroutines []int) (string, error) {
	configs := make([]metrics.AgentConfig, len(goroutines))
	for i, n := range goroutines {
		configs[i] = metrics.AgentConfig{
			ID:                   i + 1,
			Goroutines:           n,
			MaxSimulations:       cfg.Simulator.MaxSimulations,
			SimulationPercentage: cfg.Simulator.SimulationPercentage,
		}
	}
	return runExperiment("throughput", root, cfg, configs)
}
