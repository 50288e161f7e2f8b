package card

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCard = errors.New("invalid card")
	ErrParse       = errors.New("cannot parse card")
)

// Rank is a card rank, 2..14 with the Ace high.
type Rank int

const (
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// Suit is one of the card suit symbols.
type Suit byte

const (
	Spades   Suit = 'S'
	Hearts   Suit = 'H'
	Diamonds Suit = 'D'
	Clubs    Suit = 'C'
)

// StandardSuits lists the suits in canonical order.
var StandardSuits = []Suit{Spades, Hearts, Diamonds, Clubs}

func (s Suit) String() string {
	return string(s)
}

// order is the canonical position of the suit, unknown suits sort last.
func (s Suit) order() int {
	switch s {
	case Spades:
		return 0
	case Hearts:
		return 1
	case Diamonds:
		return 2
	case Clubs:
		return 3
	}
	return 4
}

// Card is an immutable rank and suit pair.
type Card struct {
	Rank Rank
	Suit Suit
}

// New builds a card from the standard universe.
func New(rank Rank, suit Suit) (Card, error) {
	return Standard.NewCard(rank, suit)
}

func (c Card) String() string {
	return rankString(c.Rank) + c.Suit.String()
}

// Equal reports structural equality by rank and suit.
func (c Card) Equal(o Card) bool {
	return c == o
}

// Compare orders cards by rank only: negative when c is lower.
func (c Card) Compare(o Card) int {
	return int(c.Rank) - int(o.Rank)
}

// Clone returns a copy of the card.
func (c Card) Clone() Card {
	return c
}

// Less orders cards canonically: rank descending, then suit S, H, D, C.
func Less(a, b Card) bool {
	if a.Rank != b.Rank {
		return a.Rank > b.Rank
	}
	return a.Suit.order() < b.Suit.order()
}

// Parse reads the two character form, e.g. "AS", "TD" or "9H". A leading
// "10" is accepted as an alias for "T".
func Parse(s string) (Card, error) {
	c, err := parseRaw(s)
	if err != nil {
		return Card{}, err
	}
	return Standard.NewCard(c.Rank, c.Suit)
}

// MustParse is Parse for fixtures, it panics on malformed input.
func MustParse(s string) Card {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCards parses a whitespace or comma separated list of cards.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := Parse(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func parseRaw(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if strings.HasPrefix(s, "10") {
		s = "T" + s[2:]
	}
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q must be two characters", ErrParse, s)
	}

	var rank Rank
	switch r := s[0]; {
	case r >= '2' && r <= '9':
		rank = Rank(r - '0')
	case r == 'T':
		rank = Ten
	case r == 'J':
		rank = Jack
	case r == 'Q':
		rank = Queen
	case r == 'K':
		rank = King
	case r == 'A':
		rank = Ace
	default:
		return Card{}, fmt.Errorf("%w: unknown rank %q in %q", ErrParse, r, s)
	}

	suit := Suit(s[1])
	if suit.order() > 3 {
		return Card{}, fmt.Errorf("%w: unknown suit %q in %q", ErrParse, s[1], s)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

func rankString(r Rank) string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r >= 2 && r <= 9 {
		return string(rune('0' + r))
	}
	return fmt.Sprintf("<%d>", int(r))
}

// FormatCards joins cards with spaces, e.g. "AS KD 9H".
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
