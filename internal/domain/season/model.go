package season

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-stats/internal/domain/league"
)

// TieBreaker identifies a rule used to separate teams level on points.
type TieBreaker string

const (
	TieBreakerGoalDifference TieBreaker = "goal_difference"
	TieBreakerGoalsFor       TieBreaker = "goals_for"
	TieBreakerHeadToHead     TieBreaker = "head_to_head"
	TieBreakerAwayGoals      TieBreaker = "away_goals"
)

var knownTieBreakers = map[TieBreaker]struct{}{
	TieBreakerGoalDifference: {},
	TieBreakerGoalsFor:       {},
	TieBreakerHeadToHead:     {},
	TieBreakerAwayGoals:      {},
}

// ParseTieBreaker normalizes a stored identifier.
func ParseTieBreaker(value string) (TieBreaker, bool) {
	candidate := TieBreaker(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := knownTieBreakers[candidate]; !ok {
		return "", false
	}
	return candidate, true
}

// PointsRule is the number of table points awarded per outcome.
type PointsRule struct {
	Win  int
	Draw int
	Loss int
}

// Season is a bounded competition cycle within a league. Nil points fields
// fall back to the league defaults.
type Season struct {
	ID                  string
	LeagueID            string
	Name                string
	PointsPerWin        *int
	PointsPerDraw       *int
	PointsPerLoss       *int
	PrimaryTieBreaker   TieBreaker
	SecondaryTieBreaker TieBreaker
	StartDate           time.Time
	EndDate             time.Time
}

func (s Season) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("season id is required")
	}
	if s.LeagueID == "" {
		return fmt.Errorf("season league id is required")
	}
	if !s.StartDate.IsZero() && !s.EndDate.IsZero() && !s.StartDate.Before(s.EndDate) {
		return fmt.Errorf("season end date must be after start date")
	}
	for _, v := range []*int{s.PointsPerWin, s.PointsPerDraw, s.PointsPerLoss} {
		if v != nil && *v < 0 {
			return fmt.Errorf("season points cannot be negative")
		}
	}

	return nil
}

// EffectivePoints resolves each outcome independently: the season override
// when set, the league default otherwise.
func EffectivePoints(s Season, l league.League) PointsRule {
	return PointsRule{
		Win:  pick(s.PointsPerWin, l.PointsPerWin),
		Draw: pick(s.PointsPerDraw, l.PointsPerDraw),
		Loss: pick(s.PointsPerLoss, l.PointsPerLoss),
	}
}

// LeaguePoints is the rule a team of another league plays under.
func LeaguePoints(l league.League) PointsRule {
	return PointsRule{Win: l.PointsPerWin, Draw: l.PointsPerDraw, Loss: l.PointsPerLoss}
}

// TieBreakerRules returns the configured rules in order. Unknown and repeated
// identifiers are dropped; a season with nothing configured gets goal
// difference then goals for.
func (s Season) TieBreakerRules() []TieBreaker {
	out := make([]TieBreaker, 0, 2)
	seen := make(map[TieBreaker]struct{}, 2)
	for _, raw := range []TieBreaker{s.PrimaryTieBreaker, s.SecondaryTieBreaker} {
		rule, ok := ParseTieBreaker(string(raw))
		if !ok {
			continue
		}
		if _, dup := seen[rule]; dup {
			continue
		}
		seen[rule] = struct{}{}
		out = append(out, rule)
	}
	if len(out) == 0 {
		return []TieBreaker{TieBreakerGoalDifference, TieBreakerGoalsFor}
	}
	return out
}

func pick(override *int, fallback int) int {
	if override != nil {
		return *override
	}
	return fallback
}
