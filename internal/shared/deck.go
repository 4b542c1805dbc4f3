package shared

import (
	log "github.com/sirupsen/logrus"
)

// DeckSize is the number of cards in a Scopa deck.
const DeckSize = 40

// DefaultShufflePasses is the number of riffle passes applied to a new shuffled deck.
const DefaultShufflePasses = 10

// RandomSource supplies uniform fractions in [0,1). *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Deck represents the fixed 40-card deck. The cursor splits it into an already
// drawn prefix [0, head) and the undrawn suffix [head, DeckSize).
type Deck struct {
	cards [DeckSize]Card
	head  int
}

// NewDeck creates the 40 cards in suit-major, rank-ascending order with nothing drawn.
func NewDeck() *Deck {
	d := &Deck{}
	i := 0
	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards[i] = Card{Suit: suit, Rank: rank}
			i++
		}
	}
	return d
}

// NewShuffledDeck creates a fresh deck and applies DefaultShufflePasses riffle passes.
func NewShuffledDeck(src RandomSource) *Deck {
	d := NewDeck()
	d.Shuffle(src, DefaultShufflePasses)
	return d
}

// Draw returns the card under the cursor and advances it. It reports false once the deck is exhausted.
func (d *Deck) Draw() (Card, bool) {
	if d.head >= DeckSize {
		return Card{}, false
	}
	card := d.cards[d.head]
	d.head++
	return card, true
}

// Put moves the cursor back one slot and overwrites that slot with card.
// With nothing drawn it does nothing.
func (d *Deck) Put(card Card) {
	if d.head == 0 {
		return
	}
	d.head--
	d.cards[d.head] = card
}

// Shuffle applies iterations riffle passes to the undrawn part of the deck.
//
// Each pass cuts the undrawn cards at a random point and rebuilds them from the
// bottom slot upwards with Put, alternating one card from the lower half and one
// from the upper half until both are used up. Drawn cards are left where they are
// and the cursor ends where it started.
func (d *Deck) Shuffle(src RandomSource, iterations int) {
	for n := 0; n < iterations; n++ {
		token := src.Float64()
		start := d.head
		split := start + int(float64(DeckSize-start)*token)
		if split > DeckSize { // guards a source that returns 1.0
			split = DeckSize
		}

		old := d.cards
		d.head = DeckSize
		upper, lower := start, split
		for upper < split || lower < DeckSize {
			if lower < DeckSize {
				d.Put(old[lower])
				lower++
			}
			if upper < split {
				d.Put(old[upper])
				upper++
			}
		}
		d.head = start
	}
	if iterations > 0 {
		log.Debugf("Deck shuffled (%d passes, %d cards drawn).", iterations, d.head)
	}
}

// Cards returns a copy of all 40 slots, drawn ones included.
func (d *Deck) Cards() []Card {
	out := make([]Card, DeckSize)
	copy(out, d.cards[:])
	return out
}

// Remaining returns the number of undrawn cards.
func (d *Deck) Remaining() int {
	return DeckSize - d.head
}

// Drawn returns the number of cards drawn so far.
func (d *Deck) Drawn() int {
	return d.head
}
