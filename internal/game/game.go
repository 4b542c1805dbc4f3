package game

import (
	"errors"
	"fmt"

	"scopa-game/internal/shared"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Side identifies one of the two teams.
type Side int

const (
	Team1 Side = iota
	Team2
)

func (s Side) String() string {
	return fmt.Sprintf("T%d", int(s)+1)
}

// Seat identifies one of the two players of a team.
type Seat int

const (
	Player1 Seat = iota
	Player2
)

func (s Seat) String() string {
	return fmt.Sprintf("P%d", int(s)+1)
}

// Cards per player and cards laid face up on the board at the start of a hand.
const (
	HandSize  = 9
	BoardSize = 4
)

// ErrDeckExhausted is returned when a deck runs out while dealing.
var ErrDeckExhausted = errors.New("deck exhausted")

// Outcome describes what a single play did.
type Outcome struct {
	Played   shared.Card
	Kind     shared.CaptureKind
	Captured []shared.Card // Board cards taken, in board order; the played card is not included
	Scopa    bool
}

// Game holds the board and the two teams for a single hand.
// It is not safe for concurrent use.
type Game struct {
	ID     string
	Board  []shared.Card
	Teams  [2]*shared.Team
	policy shared.SumPolicy
	log    *log.Entry
}

// Option configures a Game.
type Option func(*Game)

// WithSumPolicy selects how the sum search handles a pair with no completing third card.
func WithSumPolicy(p shared.SumPolicy) Option {
	return func(g *Game) { g.policy = p }
}

// WithLogger replaces the default logger. The game ID is added as a field.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.log = log.NewEntry(l) }
}

// New creates a game over an already dealt board and teams.
func New(board []shared.Card, teams [2]*shared.Team, opts ...Option) *Game {
	g := &Game{
		ID:     uuid.New().String(),
		Board:  append([]shared.Card(nil), board...),
		Teams:  teams,
		policy: shared.SumPolicyLegacy,
		log:    log.NewEntry(log.StandardLogger()),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.WithField("game", g.ID)
	return g
}

// NewHand deals deck to the teams and returns the game. The deck is expected to be shuffled already.
func NewHand(deck *shared.Deck, teams [2]*shared.Team, opts ...Option) (*Game, error) {
	board, err := Deal(deck, teams)
	if err != nil {
		return nil, err
	}
	g := New(board, teams, opts...)
	g.log.Infof("Hand started with %d cards on the board.", len(g.Board))
	return g, nil
}

// Deal lays BoardSize cards on the board and then gives HandSize cards to each
// player, one at a time in seat order T1P1, T2P1, T1P2, T2P2.
// Existing hands and prize piles are cleared.
func Deal(deck *shared.Deck, teams [2]*shared.Team) ([]shared.Card, error) {
	for _, t := range teams {
		if t == nil || t.Players[0] == nil || t.Players[1] == nil {
			return nil, errors.New("deal: both teams need two players")
		}
		t.ResetPrize()
		for _, p := range t.Players {
			p.Hand = make([]shared.Card, 0, HandSize)
		}
	}

	board := make([]shared.Card, 0, BoardSize)
	for i := 0; i < BoardSize; i++ {
		card, ok := deck.Draw()
		if !ok {
			return nil, fmt.Errorf("deal board: %w", ErrDeckExhausted)
		}
		board = append(board, card)
	}

	for round := 0; round < HandSize; round++ {
		for _, seat := range []Seat{Player1, Player2} {
			for _, side := range []Side{Team1, Team2} {
				card, ok := deck.Draw()
				if !ok {
					return nil, fmt.Errorf("deal %s%s: %w", side, seat, ErrDeckExhausted)
				}
				teams[side].Players[seat].AddCard(card)
			}
		}
	}
	return board, nil
}

func (g *Game) player(side Side, seat Seat) (*shared.Player, error) {
	if side < Team1 || side > Team2 {
		return nil, &shared.IndexError{What: "team", Index: int(side), Len: 2}
	}
	if seat < Player1 || seat > Player2 {
		return nil, &shared.IndexError{What: "seat", Index: int(seat), Len: 2}
	}
	return g.Teams[side].Players[seat], nil
}

// Play takes the card at handIndex from the player's hand and resolves it against the board.
// Captured cards and the played card go to the acting team's prize pile; a sweep adds one scopa.
// Turn order is not checked.
func (g *Game) Play(side Side, seat Seat, handIndex int) (Outcome, error) {
	p, err := g.player(side, seat)
	if err != nil {
		return Outcome{}, err
	}
	card, err := p.PlayAt(handIndex)
	if err != nil {
		return Outcome{}, err
	}

	capture := shared.ResolveCapture(card, g.Board, g.policy)
	out := Outcome{Played: card, Kind: capture.Kind}
	if !capture.Captured() {
		g.Board = append(g.Board, card)
		g.log.Debugf("%s%s played %s, nothing taken.", side, seat, card)
		return out, nil
	}

	kept, taken := capture.Split(g.Board)
	g.Board = kept
	prize := &g.Teams[side].Prize
	prize.Add(taken...)
	prize.Add(card)
	if capture.Sweep {
		prize.Scopas++
		out.Scopa = true
	}
	out.Captured = taken
	g.log.Debugf("%s%s played %s, took %v (%s).", side, seat, card, taken, capture.Kind)
	if out.Scopa {
		g.log.Infof("Scopa for team %d.", g.Teams[side].TeamNumber)
	}
	return out, nil
}

// Hand returns a copy of a player's hand.
func (g *Game) Hand(side Side, seat Seat) ([]shared.Card, error) {
	p, err := g.player(side, seat)
	if err != nil {
		return nil, err
	}
	return p.HandCopy(), nil
}

// Team returns the team on the given side, or nil for an unknown side.
func (g *Game) Team(side Side) *shared.Team {
	if side < Team1 || side > Team2 {
		return nil
	}
	return g.Teams[side]
}

// TeamPoints returns the running point total of a team; 0 for an unknown side.
func (g *Game) TeamPoints(side Side) int {
	t := g.Team(side)
	if t == nil {
		return 0
	}
	return t.Score
}

// BoardCards returns a copy of the board.
func (g *Game) BoardCards() []shared.Card {
	return append([]shared.Card(nil), g.Board...)
}

// Done reports whether every player has played out their hand.
func (g *Game) Done() bool {
	for _, t := range g.Teams {
		for _, p := range t.Players {
			if len(p.Hand) > 0 {
				return false
			}
		}
	}
	return true
}
