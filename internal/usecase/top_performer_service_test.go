package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/league-stats/internal/domain/leaguestats"
	"github.com/riskibarqy/league-stats/internal/domain/match"
	"github.com/riskibarqy/league-stats/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopPerformerService_TopScorers_ExcludesOwnGoals(t *testing.T) {
	t.Parallel()

	svc := NewTopPerformerService(memory.NewSeasonDataRepository(baseDataset()), nil)

	got, err := svc.TopScorers(context.Background(), testSeasonID, 10)
	require.NoError(t, err)
	assert.Equal(t, []leaguestats.PlayerLeaderboardEntry{
		{PlayerID: "a-fw", Name: "Bima Striker", TeamName: "Alpha", Count: 1},
		{PlayerID: "b-fw", Name: "Eko Forward", TeamName: "Bravo", Count: 1},
	}, got.Entries)
	assert.Empty(t, got.SkippedEventIDs)
}

func TestTopPerformerService_TopScorers_RanksAndTruncates(t *testing.T) {
	t.Parallel()

	data := baseDataset()
	data.Events = append(data.Events,
		match.Event{ID: "x1", MatchID: "m2", Type: match.EventGoal, PlayerID: "b-fw", TeamID: "team-b"},
		match.Event{ID: "x2", MatchID: "m2", Type: match.EventPenaltyGoal, PlayerID: "b-fw", TeamID: "team-b"},
		match.Event{ID: "x3", MatchID: "m2", Type: match.EventGoal, PlayerID: "a-mf", TeamID: "team-a"},
	)
	svc := NewTopPerformerService(memory.NewSeasonDataRepository(data), nil)

	got, err := svc.TopScorers(context.Background(), testSeasonID, 2)
	require.NoError(t, err)
	require.Len(t, got.Entries, 2)
	assert.Equal(t, "b-fw", got.Entries[0].PlayerID)
	assert.Equal(t, 3, got.Entries[0].Count)
	// Bima and Cahya both have one; name order keeps Bima.
	assert.Equal(t, "a-fw", got.Entries[1].PlayerID)

	for i := 1; i < len(got.Entries); i++ {
		if got.Entries[i].Count > got.Entries[i-1].Count {
			t.Fatalf("leaderboard not sorted by count: %+v", got.Entries)
		}
	}
}

func TestTopPerformerService_TopAssists_SkipsIncompleteEvents(t *testing.T) {
	t.Parallel()

	svc := NewTopPerformerService(memory.NewSeasonDataRepository(baseDataset()), nil)

	got, err := svc.TopAssists(context.Background(), testSeasonID, 5)
	require.NoError(t, err)
	assert.Equal(t, []leaguestats.PlayerLeaderboardEntry{
		{PlayerID: "a-mf", Name: "Cahya Mid", TeamName: "Alpha", Count: 1},
	}, got.Entries)
	assert.Equal(t, []string{"e22"}, got.SkippedEventIDs)
	require.Len(t, got.Warnings, 1)
	assert.Equal(t, leaguestats.ReasonMissingRelatedPlayer, got.Warnings[0].Reason)
}

func TestTopPerformerService_TopScorers_IntegrityWarnings(t *testing.T) {
	t.Parallel()

	data := baseDataset()
	data.Events = append(data.Events,
		match.Event{ID: "w2", MatchID: "m2", Type: match.EventGoal, PlayerID: "nobody", TeamID: "team-a"},
		match.Event{ID: "w1", MatchID: "m2", Type: match.EventGoal, PlayerID: "a-fw", TeamID: "team-b"},
	)
	svc := NewTopPerformerService(memory.NewSeasonDataRepository(data), nil)

	got, err := svc.TopScorers(context.Background(), testSeasonID, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"w1", "w2"}, got.SkippedEventIDs)
	assert.Equal(t, leaguestats.ReasonPlayerNotOnTeam, got.Warnings[0].Reason)
	assert.Equal(t, leaguestats.ReasonUnknownPlayer, got.Warnings[1].Reason)
	assert.Equal(t, 1, got.Entries[0].Count)
}

func TestTopPerformerService_InvalidInput(t *testing.T) {
	t.Parallel()

	svc := NewTopPerformerService(memory.NewSeasonDataRepository(baseDataset()), nil)
	ctx := context.Background()

	for _, limit := range []int{0, -3} {
		if _, err := svc.TopScorers(ctx, testSeasonID, limit); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("limit %d: expected ErrInvalidInput, got %v", limit, err)
		}
		if _, err := svc.TopAssists(ctx, testSeasonID, limit); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("limit %d: expected ErrInvalidInput, got %v", limit, err)
		}
	}
	if _, err := svc.TopScorers(ctx, "missing", 5); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown season, got %v", err)
	}
}

func TestTopPerformerService_EmptySeason(t *testing.T) {
	t.Parallel()

	data := baseDataset()
	data.Matches = nil
	svc := NewTopPerformerService(memory.NewSeasonDataRepository(data), nil)

	got, err := svc.TopScorers(context.Background(), testSeasonID, 10)
	require.NoError(t, err)
	assert.Empty(t, got.Entries)
	assert.NotNil(t, got.Entries)
}
