package hands

import (
	"fmt"

	"pokerrun/card"
	"pokerrun/utils"
)

const straightLength = 5

// FindAll enumerates every occurrence of hand type t within cards. The output
// depends only on the set of cards, not on their order.
func FindAll(t Type, cards []card.Card) []Hand {
	cs := card.Canonical(cards)
	switch t {
	case HighCard:
		return findHighCards(cs)
	case Pair:
		return findOfAKind(Pair, cs, 2)
	case TwoPair:
		return findTwoPairs(cs)
	case ThreeOfAKind:
		return findOfAKind(ThreeOfAKind, cs, 3)
	case Straight:
		return findStraights(Straight, cs, func(high card.Rank) bool { return true })
	case Flush:
		return findFlushes(cs)
	case FullHouse:
		return findFullHouses(cs)
	case FourOfAKind:
		return findOfAKind(FourOfAKind, cs, 4)
	case StraightFlush:
		return findSuited(StraightFlush, cs, func(high card.Rank) bool { return high != card.Ace })
	case RoyalFlush:
		return findSuited(RoyalFlush, cs, func(high card.Rank) bool { return high == card.Ace })
	}
	panic(fmt.Sprintf("unknown hand type %d", int(t)))
}

// rankGroup holds the cards sharing a rank, in canonical order.
type rankGroup struct {
	rank  card.Rank
	cards []card.Card
}

// groupByRank expects canonical input and returns groups by descending rank.
func groupByRank(cs []card.Card) []rankGroup {
	var groups []rankGroup
	for _, c := range cs {
		if n := len(groups); n > 0 && groups[n-1].rank == c.Rank {
			groups[n-1].cards = append(groups[n-1].cards, c)
			continue
		}
		groups = append(groups, rankGroup{rank: c.Rank, cards: []card.Card{c}})
	}
	return groups
}

func findHighCards(cs []card.Card) []Hand {
	out := make([]Hand, 0, len(cs))
	for _, c := range cs {
		out = append(out, newHand(HighCard, []card.Card{c}))
	}
	return out
}

// findOfAKind yields every size-k combination from each rank group holding at
// least k cards.
func findOfAKind(t Type, cs []card.Card, k int) []Hand {
	var out []Hand
	for _, g := range groupByRank(cs) {
		for _, combo := range utils.Choose(g.cards, k) {
			out = append(out, newHand(t, combo))
		}
	}
	return out
}

func findTwoPairs(cs []card.Card) []Hand {
	var pairGroups []rankGroup
	for _, g := range groupByRank(cs) {
		if len(g.cards) >= 2 {
			pairGroups = append(pairGroups, g)
		}
	}

	var out []Hand
	for i := 0; i < len(pairGroups); i++ {
		for j := i + 1; j < len(pairGroups); j++ {
			for _, high := range utils.Choose(pairGroups[i].cards, 2) {
				for _, low := range utils.Choose(pairGroups[j].cards, 2) {
					out = append(out, newHand(TwoPair, concat(high, low)))
				}
			}
		}
	}
	return out
}

func findFullHouses(cs []card.Card) []Hand {
	groups := groupByRank(cs)

	var out []Hand
	for i, trips := range groups {
		if len(trips.cards) < 3 {
			continue
		}
		for _, three := range utils.Choose(trips.cards, 3) {
			for j, pair := range groups {
				if j == i || len(pair.cards) < 2 {
					continue
				}
				for _, two := range utils.Choose(pair.cards, 2) {
					out = append(out, newHand(FullHouse, concat(three, two)))
				}
			}
		}
	}
	return out
}

func findFlushes(cs []card.Card) []Hand {
	var out []Hand
	for _, suited := range bySuit(cs) {
		if len(suited) >= straightLength {
			out = append(out, newHand(Flush, suited[:straightLength]))
		}
	}
	return out
}

// findStraights finds every run of five consecutive ranks, counting the Ace
// as 1 as well as 14. Ranks holding several cards yield one straight per
// card choice. keep filters runs by their high rank.
func findStraights(t Type, cs []card.Card, keep func(high card.Rank) bool) []Hand {
	byRank := make(map[card.Rank][]card.Card)
	for _, c := range cs {
		byRank[c.Rank] = append(byRank[c.Rank], c)
	}
	at := func(r card.Rank) []card.Card {
		if r == 1 {
			return byRank[card.Ace]
		}
		return byRank[r]
	}

	var out []Hand
	for high := card.Ace; high >= straightLength; high-- {
		if !keep(high) {
			continue
		}
		choices := make([][]card.Card, 0, straightLength)
		for r := high; r > high-straightLength; r-- {
			cards := at(r)
			if len(cards) == 0 {
				choices = nil
				break
			}
			choices = append(choices, cards)
		}
		if choices == nil {
			continue
		}
		for _, run := range product(choices) {
			out = append(out, newHand(t, run))
		}
	}
	return out
}

// findSuited runs the straight search one suit at a time.
func findSuited(t Type, cs []card.Card, keep func(high card.Rank) bool) []Hand {
	var out []Hand
	for _, suited := range bySuit(cs) {
		if len(suited) >= straightLength {
			out = append(out, findStraights(t, suited, keep)...)
		}
	}
	return out
}

// bySuit splits canonical cards per suit, suits in canonical order.
func bySuit(cs []card.Card) [][]card.Card {
	var order []card.Suit
	groups := make(map[card.Suit][]card.Card)
	for _, c := range cs {
		if _, ok := groups[c.Suit]; !ok {
			order = append(order, c.Suit)
		}
		groups[c.Suit] = append(groups[c.Suit], c)
	}
	// Suits first seen in rank order, so restore S, H, D, C order
	out := make([][]card.Card, 0, len(order))
	for _, s := range card.StandardSuits {
		if g, ok := groups[s]; ok {
			out = append(out, g)
		}
	}
	return out
}

// product returns the cartesian product of choices, first position slowest.
func product(choices [][]card.Card) [][]card.Card {
	out := [][]card.Card{{}}
	for _, options := range choices {
		next := make([][]card.Card, 0, len(out)*len(options))
		for _, prefix := range out {
			for _, c := range options {
				next = append(next, concat(prefix, []card.Card{c}))
			}
		}
		out = next
	}
	return out
}

func concat(a, b []card.Card) []card.Card {
	out := make([]card.Card, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
