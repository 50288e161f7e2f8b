package config

import (
	"fmt"
	"os"

	"pokerrun/card"
	"pokerrun/game"
	"pokerrun/hands"
	"pokerrun/meta"
	"pokerrun/searcher"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is shared with the game layer so one errors.Is check covers
// every rejected field.
var ErrInvalidConfig = game.ErrInvalidConfig

// Simulator holds the discard simulator settings.
type Simulator struct {
	Goroutines           int     `yaml:"goroutines"`
	MaxSimulations       int     `yaml:"max_simulations"`
	SimulationPercentage float64 `yaml:"simulation_percentage"`
}

// Options converts the settings into simulator options.
func (s Simulator) Options() []searcher.Option {
	return []searcher.Option{
		searcher.WithGoroutines(s.Goroutines),
		searcher.WithMaxSimulations(s.MaxSimulations),
		searcher.WithSimulationPercentage(s.SimulationPercentage),
	}
}

// Experiment selects the runs an autoplay experiment plays. Each seed is one
// run through at most Levels levels.
type Experiment struct {
	Seeds  []int64 `yaml:"seeds"`
	Levels int     `yaml:"levels"`
}

type Config struct {
	Game       game.Config
	Hands      hands.Config
	Simulator  Simulator
	Experiment Experiment
}

func Default() Config {
	seeds := make([]int64, meta.NUM_RUNS)
	for i := range seeds {
		seeds[i] = int64(i + 1)
	}
	return Config{
		Game:  game.DefaultConfig(),
		Hands: hands.DefaultConfig(),
		Simulator: Simulator{
			Goroutines:           meta.GO_ROUTINES,
			MaxSimulations:       meta.MAX_SIMULATIONS,
			SimulationPercentage: meta.SIMULATION_PERCENTAGE,
		},
		Experiment: Experiment{
			Seeds:  seeds,
			Levels: len(meta.LEVEL_TARGETS),
		},
	}
}

func (c Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return err
	}
	if err := c.Hands.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Simulator.Goroutines < 1 || c.Simulator.MaxSimulations < 1 {
		return fmt.Errorf("%w: simulator needs positive goroutines and simulations: %+v", ErrInvalidConfig, c.Simulator)
	}
	if c.Simulator.SimulationPercentage <= 0 || c.Simulator.SimulationPercentage > 1 {
		return fmt.Errorf("%w: simulation percentage %v outside (0, 1]", ErrInvalidConfig, c.Simulator.SimulationPercentage)
	}
	if len(c.Experiment.Seeds) == 0 || c.Experiment.Levels < 1 {
		return fmt.Errorf("%w: experiment needs seeds and levels: %+v", ErrInvalidConfig, c.Experiment)
	}
	return nil
}

// document is the YAML layout. Hand types are keyed by name and suits are
// written as letters, e.g. "SHDC".
type document struct {
	Game struct {
		game.Config `yaml:",inline"`
		Suits       string `yaml:"suits"`
	} `yaml:"game"`
	Hands      map[string]yaml.Node `yaml:"hands"`
	Ranking    map[string]int       `yaml:"ranking"`
	Simulator  Simulator            `yaml:"simulator"`
	Experiment Experiment           `yaml:"experiment"`
}

// Load reads a YAML file over the defaults and validates the result. Fields
// missing from the file keep their default value.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	c := Default()

	var doc document
	doc.Game.Config = c.Game
	doc.Game.Suits = c.Game.Universe.SuitsString()
	doc.Simulator = c.Simulator
	doc.Experiment = c.Experiment
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	c.Game = doc.Game.Config
	c.Game.Universe.Suits = make([]card.Suit, len(doc.Game.Suits))
	for i := range doc.Game.Suits {
		c.Game.Universe.Suits[i] = card.Suit(doc.Game.Suits[i])
	}
	c.Simulator = doc.Simulator
	c.Experiment = doc.Experiment

	for name, node := range doc.Hands {
		t, err := hands.ParseType(name)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		// Start from the current table so a partial entry keeps the rest
		tc := c.Hands.For(t)
		if err := node.Decode(&tc); err != nil {
			return Config{}, fmt.Errorf("%w: hand %s: %w", ErrInvalidConfig, t, err)
		}
		c.Hands.Types[t] = tc
	}
	for name, weight := range doc.Ranking {
		t, err := hands.ParseType(name)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		c.Hands.Ranking[t] = weight
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
