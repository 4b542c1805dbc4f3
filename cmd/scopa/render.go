package main

import (
	"fmt"
	"strings"

	"scopa-game/internal/shared"

	"github.com/pterm/pterm"
)

// renderCard colours the suit glyph the way it is printed on the cards.
func renderCard(c shared.Card) string {
	suit := string(c.Suit.Glyph())
	if c.Suit.Red() {
		suit = pterm.LightRed(suit)
	} else {
		suit = pterm.Gray(suit)
	}
	return suit + string(c.Rank.Glyph())
}

func printDeck(pass int, deck *shared.Deck) {
	pterm.DefaultSection.Println(fmt.Sprintf("Pass %d", pass))
	cards := deck.Cards()
	for row := 0; row < len(cards); row += len(shared.Ranks) {
		parts := make([]string, 0, len(shared.Ranks))
		for _, c := range cards[row : row+len(shared.Ranks)] {
			parts = append(parts, renderCard(c))
		}
		pterm.Println(strings.Join(parts, " "))
	}
}
