package hands

import (
	"fmt"

	"pokerrun/card"

	"golang.org/x/exp/slices"
)

// Identifier finds, scores and ranks every hand within a set of cards.
// It holds no mutable state of its own, levels are read on every call.
type Identifier struct {
	config Config
	levels Levels
	// Types grouped by ranking weight, strongest group first
	tiers [][]Type
}

func NewIdentifier(config Config, levels Levels) *Identifier {
	if levels == nil {
		levels = NoLevels{}
	}
	return &Identifier{
		config: config,
		levels: levels,
		tiers:  rankTiers(config),
	}
}

func (id *Identifier) Config() Config {
	return id.config
}

// Score computes the score of h at the current level of its type.
func (id *Identifier) Score(h Hand) int64 {
	return id.config.ScoreHand(h, id.levels)
}

// Identify returns every hand found in cards, best first. Same-type hands
// are named "<Type> #1", "<Type> #2", ... in ranked order.
func (id *Identifier) Identify(cards []card.Card) []Hand {
	var found []Hand
	for _, tier := range id.tiers {
		for _, t := range tier {
			found = append(found, id.scored(t, cards)...)
		}
	}
	id.sort(found)
	return disambiguate(found)
}

// Best returns the first hand of the ranked list, false when cards is empty.
func (id *Identifier) Best(cards []card.Card) (Hand, bool) {
	ranked := id.Identify(cards)
	if len(ranked) == 0 {
		return Hand{}, false
	}
	return ranked[0], true
}

// BestExact returns the best hand formed by cards without building the full
// ranked list: it stops at the strongest ranking tier that yields any hand.
// The result always equals Best.
func (id *Identifier) BestExact(cards []card.Card) (Hand, bool) {
	for _, tier := range id.tiers {
		var found []Hand
		for _, t := range tier {
			found = append(found, id.scored(t, cards)...)
		}
		if len(found) == 0 {
			continue
		}
		id.sort(found)
		best := found[0]
		if hasSameType(found, best.typ) {
			best = best.withName(fmt.Sprintf("%s #1", best.typ))
		}
		return best, true
	}
	return Hand{}, false
}

func (id *Identifier) scored(t Type, cards []card.Card) []Hand {
	found := FindAll(t, cards)
	for i, h := range found {
		found[i] = h.withScore(id.Score(h))
	}
	return found
}

// sort orders by ranking weight, score, poker strength. Stable, so
// enumeration order breaks the remaining ties.
func (id *Identifier) sort(found []Hand) {
	slices.SortStableFunc(found, func(a, b Hand) int {
		if ra, rb := id.config.Rank(a.typ), id.config.Rank(b.typ); ra != rb {
			return rb - ra
		}
		if a.score != b.score {
			if a.score > b.score {
				return -1
			}
			return 1
		}
		return int(Strength(b.cards)) - int(Strength(a.cards))
	})
}

// hasSameType reports whether t occurs more than once in found.
func hasSameType(found []Hand, t Type) bool {
	n := 0
	for _, h := range found {
		if h.typ == t {
			n++
		}
	}
	return n > 1
}

func disambiguate(ranked []Hand) []Hand {
	counts := make(map[Type]int)
	for _, h := range ranked {
		counts[h.typ]++
	}
	seen := make(map[Type]int)
	for i, h := range ranked {
		if counts[h.typ] < 2 {
			continue
		}
		seen[h.typ]++
		ranked[i] = h.withName(fmt.Sprintf("%s #%d", h.typ, seen[h.typ]))
	}
	return ranked
}

// rankTiers groups hand types by ranking weight, heaviest first. Within a
// tier, stronger types come first.
func rankTiers(config Config) [][]Type {
	types := slices.Clone(AllTypes)
	slices.SortStableFunc(types, func(a, b Type) int {
		if ra, rb := config.Rank(a), config.Rank(b); ra != rb {
			return rb - ra
		}
		return int(b) - int(a)
	})

	var tiers [][]Type
	for i, t := range types {
		if i > 0 && config.Rank(t) == config.Rank(types[i-1]) {
			tiers[len(tiers)-1] = append(tiers[len(tiers)-1], t)
			continue
		}
		tiers = append(tiers, []Type{t})
	}
	return tiers
}
