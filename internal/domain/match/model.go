package match

import (
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle state of a match.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusHalftime  Status = "halftime"
	StatusCompleted Status = "completed"
	StatusPostponed Status = "postponed"
	StatusCancelled Status = "cancelled"
	StatusDisputed  Status = "disputed"
)

var allStatuses = map[Status]struct{}{
	StatusScheduled: {},
	StatusLive:      {},
	StatusHalftime:  {},
	StatusCompleted: {},
	StatusPostponed: {},
	StatusCancelled: {},
	StatusDisputed:  {},
}

func NormalizeStatus(value string) Status {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	if status == "" {
		return StatusScheduled
	}
	return status
}

// Match is one fixture between two teams inside a season.
type Match struct {
	ID             string
	SeasonID       string
	HomeTeamID     string
	AwayTeamID     string
	KickoffAt      time.Time
	HomeScore      int
	AwayScore      int
	Status         Status
	HomeCleanSheet bool
	AwayCleanSheet bool
}

func (m Match) IsCompleted() bool {
	return NormalizeStatus(string(m.Status)) == StatusCompleted
}

// Involves reports whether teamID plays in the match.
func (m Match) Involves(teamID string) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

// Conceded returns the goals the given side let in. The second value is false
// when the team did not play the match.
func (m Match) Conceded(teamID string) (int, bool) {
	switch teamID {
	case m.HomeTeamID:
		return m.AwayScore, true
	case m.AwayTeamID:
		return m.HomeScore, true
	default:
		return 0, false
	}
}

// CleanSheetFlags derives the shutout flags from the final score.
func (m Match) CleanSheetFlags() (home, away bool) {
	return m.AwayScore == 0, m.HomeScore == 0
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.SeasonID == "" {
		return fmt.Errorf("match season id is required")
	}
	if m.HomeTeamID == "" || m.AwayTeamID == "" {
		return fmt.Errorf("match teams are required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("home team and away team must differ")
	}
	if m.HomeScore < 0 || m.AwayScore < 0 {
		return fmt.Errorf("match scores cannot be negative")
	}
	if _, ok := allStatuses[NormalizeStatus(string(m.Status))]; !ok {
		return fmt.Errorf("invalid match status: %s", m.Status)
	}

	return nil
}
