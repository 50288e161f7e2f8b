package hands

import (
	"pokerrun/card"

	"github.com/paulhankin/poker"
)

// Strength is the standard poker strength of a 5-card occurrence, higher is
// stronger. Occurrences of any other size have strength 0.
func Strength(cards []card.Card) int16 {
	if len(cards) != 5 {
		return 0
	}
	var five [5]poker.Card
	for i, c := range cards {
		pc, ok := toPoker(c)
		if !ok {
			return 0
		}
		five[i] = pc
	}
	return poker.Eval5(&five)
}

// Describe renders a hand in words, e.g. "two pair 9s and 4s with an ace".
// It falls back to the hand name when the cards cannot be evaluated as a
// standard 3 or 5 card poker hand.
func Describe(h Hand) string {
	if h.Len() != 3 && h.Len() != 5 {
		return h.name
	}
	pcs := make([]poker.Card, 0, h.Len())
	for _, c := range h.cards {
		pc, ok := toPoker(c)
		if !ok {
			return h.name
		}
		pcs = append(pcs, pc)
	}
	desc, err := poker.Describe(pcs)
	if err != nil {
		return h.name
	}
	return desc
}

func toPoker(c card.Card) (poker.Card, bool) {
	var none poker.Card
	var s poker.Suit
	switch c.Suit {
	case card.Clubs:
		s = poker.Club
	case card.Diamonds:
		s = poker.Diamond
	case card.Hearts:
		s = poker.Heart
	case card.Spades:
		s = poker.Spade
	default:
		return none, false
	}
	r := poker.Rank(c.Rank)
	if c.Rank == card.Ace {
		r = poker.Rank(1)
	}
	pc, err := poker.MakeCard(s, r)
	if err != nil {
		return none, false
	}
	return pc, true
}
