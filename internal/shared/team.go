package shared

import "github.com/google/uuid"

// Prize is a team's pile of captured cards plus the number of sweeps it scored.
// It only grows during a hand.
type Prize struct {
	Cards  []Card `json:"cards"`
	Scopas int    `json:"scopas"`
}

// Add appends captured cards to the pile.
func (p *Prize) Add(cards ...Card) {
	p.Cards = append(p.Cards, cards...)
}

// Team represents a team of two players in the Scopa game.
type Team struct {
	ID         string     `json:"id"`
	Players    [2]*Player `json:"-"`
	Prize      Prize      `json:"prize"`
	Score      int        `json:"score"` // Running total, written by end-of-hand scoring
	TeamNumber int        `json:"team_number"`
}

// NewTeam creates a new team with the given logical number and players.
// It generates a unique UUID for the team ID.
func NewTeam(teamNumber int, player1, player2 *Player) *Team {
	return &Team{
		ID:         uuid.NewString(),
		Players:    [2]*Player{player1, player2},
		TeamNumber: teamNumber,
	}
}

// AddScore adds points to the team's total score.
func (t *Team) AddScore(points int) {
	t.Score += points
}

// ResetScore resets the score to 0.
func (t *Team) ResetScore() {
	t.Score = 0
}

// ResetPrize empties the prize pile for a new hand. The score is kept.
func (t *Team) ResetPrize() {
	t.Prize = Prize{}
}
