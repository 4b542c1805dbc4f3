package shared

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Suit represents the suit of a card (Hearts, Tiles, Clovers, Pikes).
type Suit uint8

const (
	Hearts  Suit = iota // ♥
	Tiles               // ♦
	Clovers             // ♣
	Pikes               // ♠
)

// Suits lists every suit in canonical deck order.
var Suits = [4]Suit{Hearts, Tiles, Clovers, Pikes}

// Rank represents the rank of a card. There are no Eights, Nines or Tens in a 40-card deck.
type Rank uint8

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Jack
	Queen
	King
)

// Ranks lists every rank in ascending deck order.
var Ranks = [10]Rank{Ace, Two, Three, Four, Five, Six, Seven, Jack, Queen, King}

var suitGlyphs = [4]rune{'♥', '♦', '♣', '♠'}

var suitNames = [4]string{"Hearts", "Tiles", "Clovers", "Pikes"}

var rankGlyphs = [10]rune{'A', '2', '3', '4', '5', '6', '7', 'J', 'Q', 'K'}

var rankNames = [10]string{"Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Jack", "Queen", "King"}

// Capture values. The Ace is worth 0 here; it captures through its own rule, not by value.
var rankValues = [10]int{0, 2, 3, 4, 5, 6, 7, 8, 9, 10}

// Glyph returns the single-character symbol used in the card text format.
func (s Suit) Glyph() rune {
	if int(s) >= len(suitGlyphs) {
		return '?'
	}
	return suitGlyphs[s]
}

func (s Suit) String() string {
	if int(s) >= len(suitNames) {
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
	return suitNames[s]
}

// Red reports whether the suit is printed in red.
func (s Suit) Red() bool {
	return s == Hearts || s == Tiles
}

// Glyph returns the single-character symbol used in the card text format.
func (r Rank) Glyph() rune {
	if int(r) >= len(rankGlyphs) {
		return '?'
	}
	return rankGlyphs[r]
}

func (r Rank) String() string {
	if int(r) >= len(rankNames) {
		return fmt.Sprintf("Rank(%d)", uint8(r))
	}
	return rankNames[r]
}

// Value returns the capture value of the rank.
func (r Rank) Value() int {
	if int(r) >= len(rankValues) {
		return 0
	}
	return rankValues[r]
}

// ParseSuit maps a suit glyph back to its Suit.
func ParseSuit(c rune) (Suit, bool) {
	for i, g := range suitGlyphs {
		if g == c {
			return Suit(i), true
		}
	}
	return 0, false
}

// ParseRank maps a rank glyph back to its Rank.
func ParseRank(c rune) (Rank, bool) {
	for i, g := range rankGlyphs {
		if g == c {
			return Rank(i), true
		}
	}
	return 0, false
}

// Card represents a single card of the Scopa deck.
type Card struct {
	Suit Suit
	Rank Rank
}

// String formats the card as its suit glyph followed by its rank glyph, e.g. "♥K".
func (c Card) String() string {
	return string([]rune{c.Suit.Glyph(), c.Rank.Glyph()})
}

// Value returns the capture value of the card.
func (c Card) Value() int {
	return c.Rank.Value()
}

// ErrInvalidCard is wrapped by every card parsing error.
var ErrInvalidCard = errors.New("invalid card")

// LengthError is returned when a card string is not exactly two characters long.
type LengthError struct {
	Input  string
	Length int // Length in characters, not bytes
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("card %q: expected 2 characters, got %d", e.Input, e.Length)
}

func (e *LengthError) Unwrap() error { return ErrInvalidCard }

// SuitError is returned when the first character is not a suit glyph.
type SuitError struct {
	Char rune
}

func (e *SuitError) Error() string {
	return fmt.Sprintf("unknown suit %q", e.Char)
}

func (e *SuitError) Unwrap() error { return ErrInvalidCard }

// RankError is returned when the second character is not a rank glyph.
type RankError struct {
	Char rune
}

func (e *RankError) Error() string {
	return fmt.Sprintf("unknown rank %q", e.Char)
}

func (e *RankError) Unwrap() error { return ErrInvalidCard }

// ParseCard decodes the two-character form produced by Card.String.
func ParseCard(s string) (Card, error) {
	if n := utf8.RuneCountInString(s); n != 2 {
		return Card{}, &LengthError{Input: s, Length: n}
	}
	runes := []rune(s)
	suit, ok := ParseSuit(runes[0])
	if !ok {
		return Card{}, &SuitError{Char: runes[0]}
	}
	rank, ok := ParseRank(runes[1])
	if !ok {
		return Card{}, &RankError{Char: runes[1]}
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// MustParseCard is like ParseCard but panics on malformed input. Meant for literals.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCards parses a list of card strings, stopping at the first malformed one.
func ParseCards(ss ...string) ([]Card, error) {
	cards := make([]Card, 0, len(ss))
	for i, s := range ss {
		c, err := ParseCard(s)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MarshalText encodes the card in its two-glyph form so JSON payloads carry "♥K" rather than an object.
func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes the two-glyph form.
func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
