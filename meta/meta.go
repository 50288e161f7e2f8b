// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines evaluating discard candidates.
const GO_ROUTINES = 8

// HAND_SIZE defines how many cards the hand is refilled to.
const HAND_SIZE = 8

// MAX_HANDS defines the number of hands that may be played per level.
const MAX_HANDS = 4

// MAX_DISCARDS defines the number of discards allowed per level.
const MAX_DISCARDS = 3

// MAX_DISCARD_CARDS defines the largest number of cards in one discard.
const MAX_DISCARD_CARDS = 5

// MAX_PLAY_CARDS defines the largest number of cards in one played hand.
const MAX_PLAY_CARDS = 5

// MAX_SIMULATIONS caps the replacement draws evaluated per discard candidate.
const MAX_SIMULATIONS = 200

// SIMULATION_PERCENTAGE is the share of all replacement draws sampled when
// exhaustive enumeration exceeds MAX_SIMULATIONS.
const SIMULATION_PERCENTAGE = 0.05

// MAX_TURNS bounds the autoplay loop of a single level.
const MAX_TURNS = 300

// LEVEL_TARGETS holds the score target of each level, level 1 first.
var LEVEL_TARGETS = []int64{300, 800, 2000, 5000, 11000, 20000, 35000, 50000}

// NUM_RUNS defines how many seeds an experiment plays by default.
const NUM_RUNS = 10
