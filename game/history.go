package game

import (
	"fmt"

	"pokerrun/card"
	"pokerrun/hands"
)

type Action int

const (
	PlayAction Action = iota
	DiscardAction
)

func (a Action) String() string {
	if a == DiscardAction {
		return "discard"
	}
	return "play"
}

// Entry is one play or discard in a game's history. Hand fields are only set
// for plays.
type Entry struct {
	Action     Action
	Cards      []card.Card
	HandType   hands.Type
	HandName   string
	Score      int64
	TotalScore int64
}

func (e Entry) String() string {
	if e.Action == DiscardAction {
		return fmt.Sprintf("discard [%s]", card.FormatCards(e.Cards))
	}
	return fmt.Sprintf("play %s [%s] +%d = %d", e.HandName, card.FormatCards(e.Cards), e.Score, e.TotalScore)
}
