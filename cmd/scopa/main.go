package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"scopa-game/internal/config"
	"scopa-game/internal/game"
	"scopa-game/internal/protocol"
	"scopa-game/internal/shared"

	log "github.com/sirupsen/logrus"
)

func main() {
	mode := flag.String("mode", "play", "shuffle: print the deck after each riffle pass; play: deal and play out one hand")
	seed := flag.Uint64("seed", 0, "random seed (overrides "+config.EnvSeed+"; 0 keeps the configured seed)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	log.SetOutput(os.Stderr)
	log.SetLevel(cfg.LogLevel)
	log.Infof("Starting scopa (mode=%s seed=%d passes=%d sum_policy=%s)", *mode, cfg.Seed, cfg.ShufflePasses, cfg.SumPolicy)

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x5c0fa))

	switch *mode {
	case "shuffle":
		runShuffle(rng, cfg.ShufflePasses)
	case "play":
		if err := runHand(os.Stdout, rng, cfg); err != nil {
			log.Fatalf("Hand failed: %v", err)
		}
	default:
		log.Fatalf("Unknown mode %q", *mode)
	}
}

// runShuffle prints the whole deck after every single riffle pass.
func runShuffle(rng *rand.Rand, passes int) {
	deck := shared.NewDeck()
	for i := 1; i <= passes; i++ {
		deck.Shuffle(rng, 1)
		printDeck(i, deck)
	}
}

// runHand deals a hand and plays it out, each player in turn throwing the first card
// of their hand. Every event is written to w as one JSON message per line.
func runHand(w io.Writer, rng *rand.Rand, cfg config.Config) error {
	teams := [2]*shared.Team{
		shared.NewTeam(1, shared.NewPlayer("North"), shared.NewPlayer("South")),
		shared.NewTeam(2, shared.NewPlayer("East"), shared.NewPlayer("West")),
	}
	deck := shared.NewDeck()
	deck.Shuffle(rng, cfg.ShufflePasses)

	g, err := game.NewHand(deck, teams, game.WithSumPolicy(cfg.SumPolicy))
	if err != nil {
		return err
	}
	if err := emit(w, protocol.TypeDeal, g.DealPayload()); err != nil {
		return err
	}

	order := []struct {
		side game.Side
		seat game.Seat
	}{
		{game.Team1, game.Player1},
		{game.Team2, game.Player1},
		{game.Team1, game.Player2},
		{game.Team2, game.Player2},
	}
	for turn := 0; !g.Done(); turn++ {
		next := order[turn%len(order)]
		out, err := g.Play(next.side, next.seat, 0)
		if err != nil {
			return fmt.Errorf("turn %d: %w", turn, err)
		}
		if err := emit(w, protocol.TypePlay, g.PlayPayload(next.side, next.seat, out)); err != nil {
			return err
		}
	}

	for _, t := range g.Teams {
		log.Infof("Team %d captured %d cards with %d scopa(s).", t.TeamNumber, len(t.Prize.Cards), t.Prize.Scopas)
	}
	log.Infof("Left on the board: %v", g.BoardCards())
	return emit(w, protocol.TypeHandEnd, g.HandEndPayload())
}

func emit(w io.Writer, msgType string, payload interface{}) error {
	msg, err := protocol.NewMessage(msgType, payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", msg)
	return err
}
