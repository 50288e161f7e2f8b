package game

import (
	"fmt"

	"pokerrun/hands"

	"github.com/google/uuid"
)

// RunState is the progression shared by the games of one run: hand type
// levels and lifetime counters. Only the game handler mutates it.
type RunState struct {
	id             uuid.UUID
	seed           int64
	levels         map[hands.Type]int
	handsPlayed    int
	cardsPlayed    int
	discardsUsed   int
	cardsDiscarded int
}

func NewRunState(seed int64) *RunState {
	return &RunState{
		id:     uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("pokerrun/run/%d", seed))),
		seed:   seed,
		levels: make(map[hands.Type]int),
	}
}

func (r *RunState) ID() uuid.UUID { return r.id }
func (r *RunState) Seed() int64   { return r.seed }

// Level returns the level of t, 0 if never leveled up.
func (r *RunState) Level(t hands.Type) int {
	return r.levels[t]
}

// LevelUp raises the level of t by one and returns the new level.
func (r *RunState) LevelUp(t hands.Type) int {
	r.levels[t]++
	return r.levels[t]
}

// Levels returns a copy of the leveled hand types.
func (r *RunState) Levels() map[hands.Type]int {
	out := make(map[hands.Type]int, len(r.levels))
	for t, l := range r.levels {
		out[t] = l
	}
	return out
}

func (r *RunState) RecordPlay(cards int) {
	r.handsPlayed++
	r.cardsPlayed += cards
}

func (r *RunState) RecordDiscard(cards int) {
	r.discardsUsed++
	r.cardsDiscarded += cards
}

func (r *RunState) HandsPlayed() int    { return r.handsPlayed }
func (r *RunState) CardsPlayed() int    { return r.cardsPlayed }
func (r *RunState) DiscardsUsed() int   { return r.discardsUsed }
func (r *RunState) CardsDiscarded() int { return r.cardsDiscarded }
