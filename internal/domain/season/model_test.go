package season

import (
	"testing"

	"github.com/riskibarqy/league-stats/internal/domain/league"
	"github.com/stretchr/testify/assert"
)

func TestEffectivePoints(t *testing.T) {
	t.Parallel()

	lg := league.New("l1", "League One")
	two := 2
	zero := 0

	tests := []struct {
		name   string
		season Season
		want   PointsRule
	}{
		{name: "league defaults", season: Season{ID: "s1"}, want: PointsRule{Win: 3, Draw: 1, Loss: 0}},
		{name: "win override only", season: Season{ID: "s1", PointsPerWin: &two}, want: PointsRule{Win: 2, Draw: 1, Loss: 0}},
		{name: "zero draw override is honoured", season: Season{ID: "s1", PointsPerDraw: &zero}, want: PointsRule{Win: 3, Draw: 0, Loss: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectivePoints(tt.season, lg))
		})
	}
}

func TestSeason_TieBreakerRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		season Season
		want   []TieBreaker
	}{
		{
			name:   "defaults when unset",
			season: Season{},
			want:   []TieBreaker{TieBreakerGoalDifference, TieBreakerGoalsFor},
		},
		{
			name:   "configured order",
			season: Season{PrimaryTieBreaker: TieBreakerHeadToHead, SecondaryTieBreaker: TieBreakerAwayGoals},
			want:   []TieBreaker{TieBreakerHeadToHead, TieBreakerAwayGoals},
		},
		{
			name:   "duplicate collapsed",
			season: Season{PrimaryTieBreaker: TieBreakerGoalsFor, SecondaryTieBreaker: "GOALS_FOR"},
			want:   []TieBreaker{TieBreakerGoalsFor},
		},
		{
			name:   "unknown dropped",
			season: Season{PrimaryTieBreaker: "coin_toss", SecondaryTieBreaker: TieBreakerAwayGoals},
			want:   []TieBreaker{TieBreakerAwayGoals},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.season.TieBreakerRules())
		})
	}
}

func TestSeason_Validate(t *testing.T) {
	t.Parallel()

	negative := -1
	if err := (Season{ID: "s1", LeagueID: "l1", PointsPerLoss: &negative}).Validate(); err == nil {
		t.Fatalf("expected negative points to fail validation")
	}
	if err := (Season{ID: "s1", LeagueID: "l1"}).Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}
