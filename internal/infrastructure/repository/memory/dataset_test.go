package memory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/league-stats/internal/domain/match"
	"github.com/riskibarqy/league-stats/internal/domain/season"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDataset(t *testing.T) {
	t.Parallel()

	data, err := LoadDataset(filepath.Join("testdata", "dataset.yaml"))
	require.NoError(t, err)

	require.Len(t, data.Leagues, 2)
	assert.Equal(t, 2, data.Leagues[0].PointsPerWin)
	assert.Equal(t, 1, data.Leagues[0].PointsPerDraw)
	assert.Equal(t, 3, data.Leagues[1].PointsPerWin)

	require.Len(t, data.Seasons, 1)
	assert.Equal(t, season.TieBreakerHeadToHead, data.Seasons[0].PrimaryTieBreaker)
	require.NotNil(t, data.Seasons[0].PointsPerWin)
	assert.Equal(t, 3, *data.Seasons[0].PointsPerWin)
	assert.Nil(t, data.Seasons[0].PointsPerDraw)

	require.Len(t, data.Players, 3)
	assert.True(t, data.Players[0].IsGoalkeeper)
	assert.Equal(t, "league-a", data.Players[0].LeagueID)
	assert.Equal(t, "Ade Putra", data.Players[0].FullName())

	assert.Equal(t, match.StatusCompleted, data.Matches[1].Status)
	assert.True(t, data.Events[1].IsOwnGoal)
}

func TestParseDataset_RejectsInvalidRecords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "malformed yaml", raw: "leagues: ["},
		{name: "league without name", raw: "leagues:\n  - id: l1\n"},
		{name: "match against itself", raw: "matches:\n  - {id: m1, season_id: s1, home_team_id: t1, away_team_id: t1, status: completed}\n"},
		{name: "unknown match status", raw: "matches:\n  - {id: m1, season_id: s1, home_team_id: t1, away_team_id: t2, status: abandoned}\n"},
		{name: "event without match", raw: "events:\n  - {id: e1, type: goal}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseDataset([]byte(tt.raw)); err == nil {
				t.Fatalf("expected error for %s", tt.name)
			}
		})
	}
}

func TestSeasonDataRepository_FromDataset(t *testing.T) {
	t.Parallel()

	data, err := LoadDataset(filepath.Join("testdata", "dataset.yaml"))
	require.NoError(t, err)
	repo := NewSeasonDataRepository(data)
	ctx := context.Background()

	matches, err := repo.ListCompletedMatches(ctx, "season-a")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "m-1", matches[0].ID)
	assert.Equal(t, "m-2", matches[1].ID)

	cards, err := repo.ListEvents(ctx, "season-a", match.CardEventTypes)
	require.NoError(t, err)
	require.Len(t, cards, 1, "events of scheduled matches are excluded")
	assert.Equal(t, "e-3", cards[0].ID)

	all, err := repo.ListEvents(ctx, "season-a", nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	teams, err := repo.ListTeams(ctx, "league-a")
	require.NoError(t, err)
	assert.Len(t, teams, 2)

	players, err := repo.ListPlayers(ctx, "league-b")
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestSeasonDataRepository_UpdateMatchCleanSheetFlags(t *testing.T) {
	t.Parallel()

	repo := NewSeasonDataRepository(SeedDataset())
	ctx := context.Background()

	require.NoError(t, repo.UpdateMatchCleanSheetFlags(ctx, "mt-idn-002", true, true))
	item, ok, err := repo.GetMatch(ctx, "mt-idn-002")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, item.HomeCleanSheet)
	assert.True(t, item.AwayCleanSheet)

	require.NoError(t, repo.UpdateMatchCleanSheetFlags(ctx, "missing", true, false))
}
