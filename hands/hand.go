package hands

import (
	"fmt"

	"pokerrun/card"

	"golang.org/x/exp/slices"
)

// Hand is one occurrence of a hand type: the exact cards forming it, a
// display name and its computed score. Hands are immutable once built.
type Hand struct {
	typ   Type
	cards []card.Card
	name  string
	score int64
}

func newHand(t Type, cards []card.Card) Hand {
	return Hand{typ: t, cards: cards, name: t.String()}
}

func (h Hand) Type() Type {
	return h.typ
}

// Cards returns a copy of the cards constituting the occurrence.
func (h Hand) Cards() []card.Card {
	return slices.Clone(h.cards)
}

func (h Hand) Len() int {
	return len(h.cards)
}

// Name is the display name, suffixed with "#n" inside a ranked list when the
// same type occurs more than once.
func (h Hand) Name() string {
	return h.name
}

func (h Hand) Score() int64 {
	return h.score
}

// IsZero reports whether h is the zero Hand (no cards).
func (h Hand) IsZero() bool {
	return len(h.cards) == 0
}

func (h Hand) String() string {
	return fmt.Sprintf("%s [%s] = %d", h.name, card.FormatCards(h.cards), h.score)
}

func (h Hand) withScore(score int64) Hand {
	h.score = score
	return h
}

func (h Hand) withName(name string) Hand {
	h.name = name
	return h
}
