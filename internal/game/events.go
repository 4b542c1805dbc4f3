package game

import (
	"scopa-game/internal/protocol"
)

// DealPayload describes the board and every hand as dealt.
func (g *Game) DealPayload() protocol.DealPayload {
	payload := protocol.DealPayload{
		GameID: g.ID,
		Board:  g.BoardCards(),
	}
	for _, seat := range []Seat{Player1, Player2} {
		for _, side := range []Side{Team1, Team2} {
			payload.Hands = append(payload.Hands, protocol.HandInfo{
				Team:   int(side) + 1,
				Player: int(seat) + 1,
				Cards:  g.Teams[side].Players[seat].HandCopy(),
			})
		}
	}
	return payload
}

// PlayPayload describes a play and the board it left behind.
func (g *Game) PlayPayload(side Side, seat Seat, out Outcome) protocol.PlayPayload {
	return protocol.PlayPayload{
		Team:     int(side) + 1,
		Player:   int(seat) + 1,
		Card:     out.Played,
		Rule:     out.Kind.String(),
		Captured: out.Captured,
		Scopa:    out.Scopa,
		Board:    g.BoardCards(),
	}
}

// HandEndPayload summarises both prize piles. Scoring them is left to the caller.
func (g *Game) HandEndPayload() protocol.HandEndPayload {
	payload := protocol.HandEndPayload{
		GameID: g.ID,
		Board:  g.BoardCards(),
	}
	for _, t := range g.Teams {
		payload.Teams = append(payload.Teams, protocol.TeamResult{
			TeamNumber: t.TeamNumber,
			Captured:   len(t.Prize.Cards),
			Scopas:     t.Prize.Scopas,
			Score:      t.Score,
		})
	}
	return payload
}
