package card

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Universe is the configured set of legal ranks and suits.
type Universe struct {
	MinRank Rank   `yaml:"min_rank"`
	MaxRank Rank   `yaml:"max_rank"`
	Suits   []Suit `yaml:"-"`
}

// Standard is the 52-card universe.
var Standard = Universe{MinRank: 2, MaxRank: Ace, Suits: StandardSuits}

// Validate checks the universe itself is usable.
func (u Universe) Validate() error {
	if u.MinRank < 2 || u.MaxRank > Ace || u.MinRank > u.MaxRank {
		return fmt.Errorf("%w: rank range %d..%d", ErrInvalidCard, u.MinRank, u.MaxRank)
	}
	if len(u.Suits) == 0 {
		return fmt.Errorf("%w: no suits", ErrInvalidCard)
	}
	for _, s := range u.Suits {
		if s.order() > 3 {
			return fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, byte(s))
		}
	}
	return nil
}

// Contains reports whether c belongs to the universe.
func (u Universe) Contains(c Card) bool {
	return c.Rank >= u.MinRank && c.Rank <= u.MaxRank && slices.Contains(u.Suits, c.Suit)
}

// NewCard validates rank and suit against the universe.
func (u Universe) NewCard(rank Rank, suit Suit) (Card, error) {
	c := Card{Rank: rank, Suit: suit}
	if !u.Contains(c) {
		return Card{}, fmt.Errorf("%w: rank %d suit %q", ErrInvalidCard, int(rank), byte(suit))
	}
	return c, nil
}

// Parse parses a card and validates it against the universe.
func (u Universe) Parse(s string) (Card, error) {
	c, err := parseRaw(s)
	if err != nil {
		return Card{}, err
	}
	return u.NewCard(c.Rank, c.Suit)
}

// Deck returns every card of the universe, suit by suit in ascending rank.
func (u Universe) Deck() []Card {
	deck := make([]Card, 0, len(u.Suits)*int(u.MaxRank-u.MinRank+1))
	for _, s := range u.Suits {
		for r := u.MinRank; r <= u.MaxRank; r++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// SuitsString renders the suit set as letters, e.g. "SHDC".
func (u Universe) SuitsString() string {
	b := make([]byte, len(u.Suits))
	for i, s := range u.Suits {
		b[i] = byte(s)
	}
	return string(b)
}

// Canonical returns a sorted copy of cards: rank descending, then suit.
func Canonical(cards []Card) []Card {
	out := slices.Clone(cards)
	slices.SortStableFunc(out, func(a, b Card) int {
		switch {
		case Less(a, b):
			return -1
		case Less(b, a):
			return 1
		}
		return 0
	})
	return out
}

// SumRanks adds up the ranks of cards.
func SumRanks(cards []Card) int64 {
	var sum int64
	for _, c := range cards {
		sum += int64(c.Rank)
	}
	return sum
}

// ContainsAll reports whether every card of sub is in set.
func ContainsAll(set, sub []Card) bool {
	for _, c := range sub {
		if !slices.Contains(set, c) {
			return false
		}
	}
	return true
}

// Without returns a copy of cards minus every card in remove.
func Without(cards, remove []Card) []Card {
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		if !slices.Contains(remove, c) {
			out = append(out, c)
		}
	}
	return out
}

// HasDuplicates reports whether any card appears twice.
func HasDuplicates(cards []Card) bool {
	seen := make(map[Card]struct{}, len(cards))
	for _, c := range cards {
		if _, ok := seen[c]; ok {
			return true
		}
		seen[c] = struct{}{}
	}
	return false
}
