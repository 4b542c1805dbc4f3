package shared

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrIndexOutOfRange is wrapped by every IndexError.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError reports a hand or board index supplied by a caller that does not exist.
type IndexError struct {
	What  string // "hand", "team", "seat"
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0,%d)", e.What, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// Player represents a player in the Scopa game.
type Player struct {
	ID   string // Unique identifier for the player
	Name string // Player's chosen name
	Hand []Card // Cards currently held by the player
}

// NewPlayer creates a new player with an empty hand and a generated ID.
func NewPlayer(name string) *Player {
	return &Player{
		ID:   uuid.NewString(),
		Name: name,
		Hand: []Card{},
	}
}

// AddCard adds a card to the player's hand.
func (p *Player) AddCard(card Card) {
	p.Hand = append(p.Hand, card)
}

// PlayAt removes and returns the card at index i of the hand.
func (p *Player) PlayAt(i int) (Card, error) {
	if i < 0 || i >= len(p.Hand) {
		return Card{}, &IndexError{What: "hand", Index: i, Len: len(p.Hand)}
	}
	card := p.Hand[i]
	p.Hand = append(p.Hand[:i:i], p.Hand[i+1:]...)
	return card, nil
}

// HandCopy returns the hand as a new slice the caller may keep.
func (p *Player) HandCopy() []Card {
	out := make([]Card, len(p.Hand))
	copy(out, p.Hand)
	return out
}
