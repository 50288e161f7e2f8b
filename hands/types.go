package hands

import (
	"fmt"
	"strings"
)

// Type is the closed set of poker hand categories.
type Type int

const (
	HighCard Type = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// AllTypes lists every hand type from weakest to strongest.
var AllTypes = []Type{
	HighCard, Pair, TwoPair, ThreeOfAKind, Straight,
	Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush,
}

var typeNames = [...]string{
	HighCard:      "High Card",
	Pair:          "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

func (t Type) Valid() bool {
	return t >= HighCard && t <= RoyalFlush
}

// BaseMultiplier is the intrinsic rank multiplier, 1 for HighCard up to 10
// for RoyalFlush. It is the default ranking weight of the type.
func (t Type) BaseMultiplier() int {
	return int(t) + 1
}

// ParseType accepts display names ("Full House") and compact keys
// ("full_house", "fullhouse").
func ParseType(s string) (Type, error) {
	key := normalizeTypeName(s)
	for _, t := range AllTypes {
		if normalizeTypeName(t.String()) == key {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown hand type %q", s)
}

func normalizeTypeName(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s)
	return s
}
