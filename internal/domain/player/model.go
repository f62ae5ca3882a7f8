package player

import (
	"fmt"
	"strings"
)

// Position represents football position categories.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// Player is an athlete registered to a team.
type Player struct {
	ID           string
	TeamID       string
	LeagueID     string
	FirstName    string
	LastName     string
	Position     Position
	IsGoalkeeper bool
}

// FullName joins first and last name, tolerating either being empty.
func (p Player) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

// Goalkeeper reports whether the player keeps goal, either flagged explicitly
// or registered in the GK position.
func (p Player) Goalkeeper() bool {
	return p.IsGoalkeeper || p.Position == PositionGoalkeeper
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if p.FullName() == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Position != "" {
		if _, ok := AllPositions[p.Position]; !ok {
			return fmt.Errorf("invalid player position: %s", p.Position)
		}
	}

	return nil
}
