package game

import (
	"pokerrun/card"

	"github.com/google/uuid"
)

// Snapshot is a read-only copy of a game for presentation layers.
type Snapshot struct {
	ID                uuid.UUID
	Level             int
	Seed              int64
	Score             int64
	Target            int64
	HandsPlayed       int
	DiscardsUsed      int
	RemainingHands    int
	RemainingDiscards int
	Won               bool
	Over              bool

	Available []card.Card
	Hand      []card.Card
	Discarded []card.Card
	Played    []card.Card
	Destroyed []card.Card
	History   []Entry
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		ID:                s.ID(),
		Level:             s.level,
		Seed:              s.seed,
		Score:             s.score,
		Target:            s.target,
		HandsPlayed:       s.handsPlayed,
		DiscardsUsed:      s.discardsUsed,
		RemainingHands:    s.RemainingHands(),
		RemainingDiscards: s.RemainingDiscards(),
		Won:               s.IsWon(),
		Over:              s.IsGameOver(),
		Available:         s.Available(),
		Hand:              s.Hand(),
		Discarded:         s.Discarded(),
		Played:            s.Played(),
		Destroyed:         s.Destroyed(),
		History:           s.History(),
	}
}
