package game

import (
	"io"
	"math/rand/v2"
	"testing"

	"scopa-game/internal/shared"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cards(t *testing.T, ss ...string) []shared.Card {
	t.Helper()
	out, err := shared.ParseCards(ss...)
	require.NoError(t, err)
	return out
}

func quietLogger() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

func newTeams() [2]*shared.Team {
	return [2]*shared.Team{
		shared.NewTeam(1, shared.NewPlayer("North"), shared.NewPlayer("South")),
		shared.NewTeam(2, shared.NewPlayer("East"), shared.NewPlayer("West")),
	}
}

// setupGame builds a game where T1P1 holds hand and the board is as given.
func setupGame(t *testing.T, board []string, hand ...string) *Game {
	teams := newTeams()
	teams[Team1].Players[Player1].Hand = cards(t, hand...)
	return New(cards(t, board...), teams, WithLogger(quietLogger()))
}

func TestPlaySumMatchSweeps(t *testing.T) {
	g := setupGame(t, []string{"♥2", "♦5"}, "♣7")

	out, err := g.Play(Team1, Player1, 0)
	require.NoError(t, err)
	assert.Equal(t, shared.SumMatch, out.Kind)
	assert.True(t, out.Scopa)
	assert.Equal(t, cards(t, "♥2", "♦5"), out.Captured)
	assert.Empty(t, g.Board)

	prize := g.Teams[Team1].Prize
	assert.Equal(t, cards(t, "♥2", "♦5", "♣7"), prize.Cards)
	assert.Equal(t, 1, prize.Scopas)
	assert.Empty(t, g.Teams[Team2].Prize.Cards)
}

func TestPlayDirectMatchSweeps(t *testing.T) {
	g := setupGame(t, []string{"♥K"}, "♦K")

	out, err := g.Play(Team1, Player1, 0)
	require.NoError(t, err)
	assert.Equal(t, shared.DirectMatch, out.Kind)
	assert.True(t, out.Scopa)
	assert.Empty(t, g.Board)
	assert.Equal(t, cards(t, "♥K", "♦K"), g.Teams[Team1].Prize.Cards)
	assert.Equal(t, 1, g.Teams[Team1].Prize.Scopas)
}

func TestPlayAceSweeps(t *testing.T) {
	g := setupGame(t, []string{"♥A", "♦2"}, "♣A")

	out, err := g.Play(Team1, Player1, 0)
	require.NoError(t, err)
	assert.Equal(t, shared.AceSweep, out.Kind)
	assert.True(t, out.Scopa)
	assert.Empty(t, g.Board)
	assert.ElementsMatch(t, cards(t, "♥A", "♦2", "♣A"), g.Teams[Team1].Prize.Cards)
	assert.Equal(t, 1, g.Teams[Team1].Prize.Scopas)
}

func TestPlayAceOnEmptyBoard(t *testing.T) {
	g := setupGame(t, nil, "♣A")

	out, err := g.Play(Team1, Player1, 0)
	require.NoError(t, err)
	assert.Equal(t, shared.AceSweep, out.Kind)
	assert.False(t, out.Scopa)
	assert.Empty(t, out.Captured)
	assert.Empty(t, g.Board)
	assert.Equal(t, cards(t, "♣A"), g.Teams[Team1].Prize.Cards, "the ace still goes to the prize pile")
	assert.Zero(t, g.Teams[Team1].Prize.Scopas)
}

func TestPlayDirectMatchTakesOnlyFirst(t *testing.T) {
	g := setupGame(t, []string{"♥3", "♦5", "♣5", "♠2"}, "♥5")

	out, err := g.Play(Team1, Player1, 0)
	require.NoError(t, err)
	assert.Equal(t, shared.DirectMatch, out.Kind)
	assert.Equal(t, cards(t, "♦5"), out.Captured)
	assert.Equal(t, cards(t, "♥3", "♣5", "♠2"), g.Board)
	assert.False(t, out.Scopa)
}

func TestPlayNoMatchAppendsToBoard(t *testing.T) {
	g := setupGame(t, []string{"♥K", "♦Q"}, "♣4")

	out, err := g.Play(Team1, Player1, 0)
	require.NoError(t, err)
	assert.Equal(t, shared.NoCapture, out.Kind)
	assert.False(t, out.Scopa)
	assert.Equal(t, cards(t, "♥K", "♦Q", "♣4"), g.Board)
	assert.Empty(t, g.Teams[Team1].Prize.Cards)
}

func TestPlayOnEmptyBoardPlacesCard(t *testing.T) {
	g := setupGame(t, nil, "♣4")

	out, err := g.Play(Team1, Player1, 0)
	require.NoError(t, err)
	assert.Equal(t, shared.NoCapture, out.Kind)
	assert.Equal(t, cards(t, "♣4"), g.Board)
	assert.Zero(t, g.Teams[Team1].Prize.Scopas)
}

func TestPlayRemovesCardFromHand(t *testing.T) {
	g := setupGame(t, []string{"♥K"}, "♣4", "♦K", "♠2")

	_, err := g.Play(Team1, Player1, 1)
	require.NoError(t, err)
	hand, err := g.Hand(Team1, Player1)
	require.NoError(t, err)
	assert.Equal(t, cards(t, "♣4", "♠2"), hand)
}

func TestPlayIndexOutOfRange(t *testing.T) {
	g := setupGame(t, []string{"♥K"}, "♣4")

	_, err := g.Play(Team1, Player1, 1)
	assert.ErrorIs(t, err, shared.ErrIndexOutOfRange)
	_, err = g.Play(Team1, Player1, -1)
	assert.ErrorIs(t, err, shared.ErrIndexOutOfRange)
	_, err = g.Play(Team2, Player2, 0)
	assert.ErrorIs(t, err, shared.ErrIndexOutOfRange, "empty hand")
	_, err = g.Play(Side(2), Player1, 0)
	assert.ErrorIs(t, err, shared.ErrIndexOutOfRange)
	_, err = g.Play(Team1, Seat(5), 0)
	assert.ErrorIs(t, err, shared.ErrIndexOutOfRange)

	assert.Equal(t, cards(t, "♥K"), g.Board, "failed plays leave the board alone")
	hand, _ := g.Hand(Team1, Player1)
	assert.Len(t, hand, 1)
}

func TestPlayCreditsActingTeam(t *testing.T) {
	teams := newTeams()
	teams[Team2].Players[Player2].Hand = cards(t, "♠6")
	g := New(cards(t, "♥6", "♦2"), teams, WithLogger(quietLogger()))

	out, err := g.Play(Team2, Player2, 0)
	require.NoError(t, err)
	assert.False(t, out.Scopa)
	assert.Equal(t, cards(t, "♥6", "♠6"), g.Teams[Team2].Prize.Cards)
	assert.Empty(t, g.Teams[Team1].Prize.Cards)
}

func TestSumPolicyOption(t *testing.T) {
	board := []string{"♥2", "♦3", "♣J"}

	legacy := setupGame(t, board, "♠K")
	out, err := legacy.Play(Team1, Player1, 0)
	require.NoError(t, err)
	assert.Equal(t, cards(t, "♦3"), out.Captured)

	teams := newTeams()
	teams[Team1].Players[Player1].Hand = cards(t, "♠K")
	strict := New(cards(t, board...), teams, WithSumPolicy(shared.SumPolicyStrict), WithLogger(quietLogger()))
	out, err = strict.Play(Team1, Player1, 0)
	require.NoError(t, err)
	assert.Equal(t, cards(t, "♥2", "♣J"), out.Captured)
	assert.Equal(t, cards(t, "♦3"), strict.Board)
}

func TestAccessors(t *testing.T) {
	g := setupGame(t, []string{"♥K"}, "♣4")
	g.Teams[Team2].AddScore(7)

	assert.Equal(t, 7, g.TeamPoints(Team2))
	assert.Zero(t, g.TeamPoints(Team1))
	assert.Zero(t, g.TeamPoints(Side(9)))
	assert.Nil(t, g.Team(Side(-1)))

	hand, err := g.Hand(Team1, Player1)
	require.NoError(t, err)
	hand[0] = shared.Card{}
	again, _ := g.Hand(Team1, Player1)
	assert.Equal(t, cards(t, "♣4"), again, "Hand returns a copy")

	_, err = g.Hand(Side(3), Player1)
	assert.ErrorIs(t, err, shared.ErrIndexOutOfRange)

	b := g.BoardCards()
	b[0] = shared.Card{}
	assert.Equal(t, cards(t, "♥K"), g.Board)
}

func TestDeal(t *testing.T) {
	teams := newTeams()
	deck := shared.NewShuffledDeck(rand.New(rand.NewPCG(1, 2)))
	board, err := Deal(deck, teams)
	require.NoError(t, err)
	assert.Len(t, board, BoardSize)
	assert.Zero(t, deck.Remaining())

	seen := make(map[shared.Card]bool)
	for _, c := range board {
		seen[c] = true
	}
	for _, team := range teams {
		for _, p := range team.Players {
			assert.Len(t, p.Hand, HandSize)
			for _, c := range p.Hand {
				require.False(t, seen[c], "duplicate %s", c)
				seen[c] = true
			}
		}
	}
	assert.Len(t, seen, shared.DeckSize)
}

func TestDealSeatOrder(t *testing.T) {
	teams := newTeams()
	_, err := Deal(shared.NewDeck(), teams)
	require.NoError(t, err)
	// Board takes ♥A..♥4, then one card each to T1P1, T2P1, T1P2, T2P2.
	assert.Equal(t, shared.MustParseCard("♥5"), teams[Team1].Players[Player1].Hand[0])
	assert.Equal(t, shared.MustParseCard("♥6"), teams[Team2].Players[Player1].Hand[0])
	assert.Equal(t, shared.MustParseCard("♥7"), teams[Team1].Players[Player2].Hand[0])
	assert.Equal(t, shared.MustParseCard("♥J"), teams[Team2].Players[Player2].Hand[0])
}

func TestDealShortDeck(t *testing.T) {
	deck := shared.NewDeck()
	for i := 0; i < 10; i++ {
		deck.Draw()
	}
	_, err := Deal(deck, newTeams())
	assert.ErrorIs(t, err, ErrDeckExhausted)
}

func TestDealNeedsFullTeams(t *testing.T) {
	teams := newTeams()
	teams[Team2].Players[Player2] = nil
	_, err := Deal(shared.NewDeck(), teams)
	assert.Error(t, err)
}

// TestFullHandConservesCards plays a whole hand and checks no card is lost or duplicated.
func TestFullHandConservesCards(t *testing.T) {
	for _, policy := range []shared.SumPolicy{shared.SumPolicyLegacy, shared.SumPolicyStrict} {
		t.Run(policy.String(), func(t *testing.T) {
			rng := rand.New(rand.NewPCG(11, 12))
			teams := newTeams()
			g, err := NewHand(shared.NewShuffledDeck(rng), teams, WithSumPolicy(policy), WithLogger(quietLogger()))
			require.NoError(t, err)

			seats := []struct {
				side Side
				seat Seat
			}{{Team1, Player1}, {Team2, Player1}, {Team1, Player2}, {Team2, Player2}}
			scopas := [2]int{}
			for turn := 0; !g.Done(); turn++ {
				s := seats[turn%len(seats)]
				out, err := g.Play(s.side, s.seat, 0)
				require.NoError(t, err)
				if out.Scopa {
					scopas[s.side]++
					assert.Empty(t, g.Board)
				}
			}

			total := len(g.Board)
			seen := make(map[shared.Card]bool)
			for _, c := range g.Board {
				seen[c] = true
			}
			for side, team := range g.Teams {
				total += len(team.Prize.Cards)
				for _, c := range team.Prize.Cards {
					require.False(t, seen[c], "duplicate %s", c)
					seen[c] = true
				}
				assert.Equal(t, scopas[side], team.Prize.Scopas)
			}
			assert.Equal(t, shared.DeckSize, total)
		})
	}
}
