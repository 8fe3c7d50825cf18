// Package cards implements the Card/Suit/Color primitives shared by the
// freecell and search packages, and their text and compact-byte encodings.
package cards

import (
	"fmt"

	"github.com/pkg/errors"
)

// Suit is one of the four standard suits. The discriminant order (Diamond,
// Club, Spade, Heart) is also the suit-major order StandardDeck lays the
// deck out in, and indexes GameState's foundation counters.
type Suit uint8

const (
	Diamond Suit = iota
	Club
	Spade
	Heart
)

func (s Suit) String() string {
	switch s {
	case Diamond:
		return "D"
	case Club:
		return "C"
	case Spade:
		return "S"
	case Heart:
		return "H"
	default:
		return "?"
	}
}

// Display renders the suit as its Unicode glyph, for human-facing output.
func (s Suit) Display() string {
	switch s {
	case Diamond:
		return "♦"
	case Club:
		return "♣"
	case Spade:
		return "♠"
	case Heart:
		return "♥"
	default:
		return "?"
	}
}

// Color is black or red. Clubs and Spades are black; Diamonds and Hearts
// are red.
type Color uint8

const (
	Black Color = iota
	Red
)

// Color returns the conventional black/red classification of the suit.
func (s Suit) Color() Color {
	switch s {
	case Club, Spade:
		return Black
	default:
		return Red
	}
}

// Card is a single playing card: rank 1 (Ace) through 13 (King), plus suit.
type Card struct {
	Rank uint8
	Suit Suit
}

// Color is shorthand for Card.Suit.Color().
func (c Card) Color() Color {
	return c.Suit.Color()
}

// Encode packs the card into a single byte: 2 bits suit, 4 bits rank. This
// is the representation used by the canonical state hash, since hashing 52
// one-byte cards is both cheaper and more cache-friendly than hashing the
// Card struct directly.
func (c Card) Encode() byte {
	return byte(c.Suit)<<4 | c.Rank
}

// DecodeCard reverses Encode. It is used by tests and by any consumer that
// round-trips the compact encoding; the solver itself never needs it since
// GameState keeps Card values directly.
func DecodeCard(b byte) (Card, bool) {
	rank := b & 0x0F
	suit := Suit(b >> 4)
	if rank < 1 || rank > 13 || suit > Heart {
		return Card{}, false
	}
	return Card{Rank: rank, Suit: suit}, true
}

var rankNames = [...]string{"", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "13"}

// String renders the card in "<rank><suit>" syntax, e.g. "1D", "13H".
func (c Card) String() string {
	if c.Rank < 1 || c.Rank > 13 {
		return fmt.Sprintf("?%d?", c.Rank)
	}
	return rankNames[c.Rank] + c.Suit.String()
}

var rankDisplay = [...]string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Display renders the card the way a human player reads it, e.g. "A♦", "K♥".
func (c Card) Display() string {
	if c.Rank < 1 || c.Rank > 13 {
		return fmt.Sprintf("?%d?", c.Rank)
	}
	return rankDisplay[c.Rank] + c.Suit.Display()
}

// ParseSuit parses a single-letter suit code ("D", "C", "S", "H").
func ParseSuit(s string) (Suit, error) {
	switch s {
	case "D":
		return Diamond, nil
	case "C":
		return Club, nil
	case "S":
		return Spade, nil
	case "H":
		return Heart, nil
	default:
		return 0, errors.Errorf("cards: unknown suit %q", s)
	}
}

// ParseCard parses the "<rank><suit>" syntax produced by Card.String.
func ParseCard(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, errors.Errorf("cards: malformed card %q", s)
	}
	suitStr := s[len(s)-1:]
	rankStr := s[:len(s)-1]

	suit, err := ParseSuit(suitStr)
	if err != nil {
		return Card{}, errors.Wrapf(err, "cards: parsing card %q", s)
	}

	var rank int
	if _, err := fmt.Sscanf(rankStr, "%d", &rank); err != nil {
		return Card{}, errors.Wrapf(err, "cards: parsing rank in card %q", s)
	}
	if rank < 1 || rank > 13 {
		return Card{}, errors.Errorf("cards: rank %d out of range in card %q", rank, s)
	}

	return Card{Rank: uint8(rank), Suit: suit}, nil
}

// StandardDeck returns the 52 cards of a standard deck in the order
// deal.Random starts from before shuffling: suit-major (Diamond, Club,
// Spade, Heart), rank-minor (Ace..King within each suit).
func StandardDeck() [52]Card {
	var deck [52]Card
	for i := 0; i < 52; i++ {
		deck[i] = Card{
			Rank: uint8(i%13) + 1,
			Suit: Suit(i / 13),
		}
	}
	return deck
}
