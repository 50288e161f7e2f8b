package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"pokerrun/card"
	"pokerrun/hands"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// Pile names one of the five disjoint card collections of a game.
type Pile int

const (
	NoPile Pile = iota
	Available
	InHand
	Discarded
	Played
	Destroyed
)

func (p Pile) String() string {
	switch p {
	case Available:
		return "available"
	case InHand:
		return "hand"
	case Discarded:
		return "discarded"
	case Played:
		return "played"
	case Destroyed:
		return "destroyed"
	}
	return "none"
}

// State is the mutable state of one game (one level). A card belongs to at
// most one pile at any time; the pile transitions below are the only way to
// move cards.
type State struct {
	available []card.Card
	hand      []card.Card
	discarded []card.Card
	played    []card.Card
	destroyed []card.Card

	score        int64
	target       int64
	handsPlayed  int
	discardsUsed int
	level        int
	seed         int64
	history      []Entry
	config       Config
}

// NewState returns a game with all piles empty.
func NewState(config Config, seed int64, level int) *State {
	return &State{
		target: config.ScoreTarget(level),
		level:  level,
		seed:   seed,
		config: config,
	}
}

// NewGame returns a game whose available pile holds the configured deck.
func NewGame(config Config, seed int64, level int) *State {
	s := NewState(config, seed, level)
	s.available = config.Universe.Deck()
	return s
}

// ID identifies the game by seed and level.
func (s *State) ID() uuid.UUID {
	return GameID(s.seed, s.level)
}

func GameID(seed int64, level int) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("pokerrun/game/%d/%d", seed, level)))
}

// Draw moves c from available to hand.
func (s *State) Draw(c card.Card) error {
	if !remove(&s.available, c) {
		return fmt.Errorf("%w: %s", ErrCardNotAvailable, c)
	}
	s.hand = append(s.hand, c)
	return nil
}

// Discard moves c from hand to discarded.
func (s *State) Discard(c card.Card) error {
	if !remove(&s.hand, c) {
		return fmt.Errorf("%w: %s", ErrCardNotInHand, c)
	}
	s.discarded = append(s.discarded, c)
	return nil
}

// Play moves c from hand to played.
func (s *State) Play(c card.Card) error {
	if !remove(&s.hand, c) {
		return fmt.Errorf("%w: %s", ErrCardNotInHand, c)
	}
	s.played = append(s.played, c)
	return nil
}

// Recover moves c from played or discarded back to available.
func (s *State) Recover(c card.Card) error {
	if !remove(&s.played, c) && !remove(&s.discarded, c) {
		return fmt.Errorf("%w: %s", ErrCardNotRecoverable, c)
	}
	s.available = append(s.available, c)
	return nil
}

// Destroy removes c from play permanently. Cards already destroyed are not
// in play and cannot be destroyed again.
func (s *State) Destroy(c card.Card) error {
	switch s.Locate(c) {
	case Available:
		remove(&s.available, c)
	case InHand:
		remove(&s.hand, c)
	case Discarded:
		remove(&s.discarded, c)
	case Played:
		remove(&s.played, c)
	default:
		return fmt.Errorf("%w: %s", ErrCardNotFound, c)
	}
	s.destroyed = append(s.destroyed, c)
	return nil
}

// AddCard puts a new card into available. It must belong to the universe
// and be in no pile yet.
func (s *State) AddCard(c card.Card) error {
	if !s.config.Universe.Contains(c) {
		return fmt.Errorf("%w: %s", card.ErrInvalidCard, c)
	}
	if pile := s.Locate(c); pile != NoPile {
		return fmt.Errorf("%w: %s already %s", ErrDuplicateCard, c, pile)
	}
	s.available = append(s.available, c)
	return nil
}

// Locate returns the pile holding c, NoPile if none.
func (s *State) Locate(c card.Card) Pile {
	switch {
	case slices.Contains(s.available, c):
		return Available
	case slices.Contains(s.hand, c):
		return InHand
	case slices.Contains(s.discarded, c):
		return Discarded
	case slices.Contains(s.played, c):
		return Played
	case slices.Contains(s.destroyed, c):
		return Destroyed
	}
	return NoPile
}

// RecordPlay adds a scored hand to the game and its history.
func (s *State) RecordPlay(h hands.Hand) {
	s.score += h.Score()
	s.handsPlayed++
	s.history = append(s.history, Entry{
		Action:     PlayAction,
		Cards:      h.Cards(),
		HandType:   h.Type(),
		HandName:   h.Name(),
		Score:      h.Score(),
		TotalScore: s.score,
	})
}

// RecordDiscard counts a discard and adds it to the history.
func (s *State) RecordDiscard(cards []card.Card) {
	s.discardsUsed++
	s.history = append(s.history, Entry{
		Action:     DiscardAction,
		Cards:      slices.Clone(cards),
		TotalScore: s.score,
	})
}

// CardsToDraw is the hand vacancy capped by what is available.
func (s *State) CardsToDraw() int {
	return min(s.RealCardsToDraw(), len(s.available))
}

// RealCardsToDraw is the hand vacancy regardless of what is available.
func (s *State) RealCardsToDraw() int {
	return max(s.config.HandSize-len(s.hand), 0)
}

func (s *State) IsWon() bool {
	return s.target > 0 && s.score >= s.target
}

func (s *State) IsGameOver() bool {
	return s.IsWon() ||
		s.handsPlayed >= s.config.MaxHands ||
		(len(s.available) == 0 && len(s.hand) == 0)
}

func (s *State) IsDrawPending() bool {
	return !s.IsGameOver() && s.CardsToDraw() > 0
}

func (s *State) RemainingHands() int {
	return max(s.config.MaxHands-s.handsPlayed, 0)
}

func (s *State) RemainingDiscards() int {
	return max(s.config.MaxDiscards-s.discardsUsed, 0)
}

// RemainingScore is the score still needed to reach the target.
func (s *State) RemainingScore() int64 {
	return max(s.target-s.score, 0)
}

func (s *State) Available() []card.Card { return slices.Clone(s.available) }
func (s *State) Hand() []card.Card      { return slices.Clone(s.hand) }
func (s *State) Discarded() []card.Card { return slices.Clone(s.discarded) }
func (s *State) Played() []card.Card    { return slices.Clone(s.played) }
func (s *State) Destroyed() []card.Card { return slices.Clone(s.destroyed) }

func (s *State) Score() int64      { return s.score }
func (s *State) Target() int64     { return s.target }
func (s *State) HandsPlayed() int  { return s.handsPlayed }
func (s *State) DiscardsUsed() int { return s.discardsUsed }
func (s *State) Level() int        { return s.level }
func (s *State) Seed() int64       { return s.seed }
func (s *State) Config() Config    { return s.config }

// History returns a copy of the play and discard entries, oldest first.
func (s *State) History() []Entry {
	out := make([]Entry, len(s.history))
	for i, e := range s.history {
		e.Cards = slices.Clone(e.Cards)
		out[i] = e
	}
	return out
}

// Hash fingerprints piles, counters and score, so two games that went
// through the same moves hash the same.
func (s *State) Hash() uint64 {
	hasher := fnv.New64a()

	for _, pile := range [][]card.Card{s.available, s.hand, s.discarded, s.played, s.destroyed} {
		binary.Write(hasher, binary.LittleEndian, int64(len(pile)))
		for _, c := range pile {
			binary.Write(hasher, binary.LittleEndian, int64(c.Rank))
			binary.Write(hasher, binary.LittleEndian, int64(c.Suit))
		}
	}

	binary.Write(hasher, binary.LittleEndian, s.score)
	binary.Write(hasher, binary.LittleEndian, int64(s.handsPlayed))
	binary.Write(hasher, binary.LittleEndian, int64(s.discardsUsed))
	binary.Write(hasher, binary.LittleEndian, int64(s.level))

	return hasher.Sum64()
}

// remove deletes the first occurrence of c, keeping the order of the rest.
func remove(pile *[]card.Card, c card.Card) bool {
	i := slices.Index(*pile, c)
	if i < 0 {
		return false
	}
	*pile = slices.Delete(*pile, i, i+1)
	return true
}
