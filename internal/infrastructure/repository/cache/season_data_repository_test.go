package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/league-stats/internal/domain/match"
	"github.com/riskibarqy/league-stats/internal/domain/season"
	"github.com/riskibarqy/league-stats/internal/domain/team"
	seasondatamock "github.com/riskibarqy/league-stats/internal/mocks/domain/seasondata"
	basecache "github.com/riskibarqy/league-stats/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSeasonDataRepository_GetSeasonLoadsOnce(t *testing.T) {
	ctx := context.Background()
	next := seasondatamock.NewRepository(t)
	next.On("GetSeason", mock.Anything, "s1").Return(season.Season{ID: "s1", LeagueID: "l1"}, true, nil).Once()
	next.On("GetSeason", mock.Anything, "missing").Return(season.Season{}, false, nil).Once()

	repo := NewSeasonDataRepository(next, basecache.NewStore(time.Minute))

	for i := 0; i < 3; i++ {
		got, exists, err := repo.GetSeason(ctx, "s1")
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, "l1", got.LeagueID)
	}

	for i := 0; i < 2; i++ {
		_, exists, err := repo.GetSeason(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, exists)
	}
}

func TestSeasonDataRepository_ErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	next := seasondatamock.NewRepository(t)
	next.On("ListTeams", mock.Anything, "l1").Return([]team.Team(nil), errors.New("connection reset")).Once()
	next.On("ListTeams", mock.Anything, "l1").Return([]team.Team{{ID: "t1", LeagueID: "l1", Name: "Persib"}}, nil).Once()

	repo := NewSeasonDataRepository(next, basecache.NewStore(time.Minute))

	_, err := repo.ListTeams(ctx, "l1")
	require.Error(t, err)

	teams, err := repo.ListTeams(ctx, "l1")
	require.NoError(t, err)
	require.Len(t, teams, 1)

	teams, err = repo.ListTeams(ctx, "l1")
	require.NoError(t, err)
	require.Len(t, teams, 1)
}

func TestSeasonDataRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	next := seasondatamock.NewRepository(t)
	next.On("ListCompletedMatches", mock.Anything, "s1").Return([]match.Match{{ID: "m1", HomeScore: 2}}, nil).Once()

	repo := NewSeasonDataRepository(next, basecache.NewStore(time.Minute))

	first, err := repo.ListCompletedMatches(ctx, "s1")
	require.NoError(t, err)
	first[0].HomeScore = 9

	second, err := repo.ListCompletedMatches(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, second[0].HomeScore)
}

func TestSeasonDataRepository_EventTypeOrderSharesEntry(t *testing.T) {
	ctx := context.Background()
	next := seasondatamock.NewRepository(t)
	events := []match.Event{{ID: "e1", Type: match.EventYellowCard}}
	next.On("ListEvents", mock.Anything, "s1", mock.Anything).Return(events, nil).Once()

	repo := NewSeasonDataRepository(next, basecache.NewStore(time.Minute))

	_, err := repo.ListEvents(ctx, "s1", []match.EventType{match.EventYellowCard, match.EventRedCard})
	require.NoError(t, err)
	got, err := repo.ListEvents(ctx, "s1", []match.EventType{match.EventRedCard, match.EventYellowCard})
	require.NoError(t, err)
	assert.Equal(t, events, got)
}

func TestSeasonDataRepository_CleanSheetWriteInvalidatesMatches(t *testing.T) {
	ctx := context.Background()
	next := seasondatamock.NewRepository(t)
	before := match.Match{ID: "m1", SeasonID: "s1", Status: match.StatusCompleted}
	after := before
	after.HomeCleanSheet, after.AwayCleanSheet = true, true

	next.On("GetMatch", mock.Anything, "m1").Return(before, true, nil).Once()
	next.On("ListCompletedMatches", mock.Anything, "s1").Return([]match.Match{before}, nil).Once()
	next.On("UpdateMatchCleanSheetFlags", mock.Anything, "m1", true, true).Return(nil).Once()
	next.On("GetMatch", mock.Anything, "m1").Return(after, true, nil).Once()
	next.On("ListCompletedMatches", mock.Anything, "s1").Return([]match.Match{after}, nil).Once()

	store := basecache.NewStore(time.Minute)
	repo := NewSeasonDataRepository(next, store)

	_, _, err := repo.GetMatch(ctx, "m1")
	require.NoError(t, err)
	_, err = repo.ListCompletedMatches(ctx, "s1")
	require.NoError(t, err)

	require.NoError(t, repo.UpdateMatchCleanSheetFlags(ctx, "m1", true, true))

	got, _, err := repo.GetMatch(ctx, "m1")
	require.NoError(t, err)
	assert.True(t, got.HomeCleanSheet)

	list, err := repo.ListCompletedMatches(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, list[0].AwayCleanSheet)
}

func TestSeasonDataRepository_FailedWriteKeepsCache(t *testing.T) {
	ctx := context.Background()
	next := seasondatamock.NewRepository(t)
	next.On("UpdateMatchCleanSheetFlags", mock.Anything, "m1", false, true).Return(errors.New("deadlock detected")).Once()

	store := basecache.NewStore(time.Minute)
	store.Set(ctx, keyMatches+"s1", []match.Match{{ID: "m1"}})
	repo := NewSeasonDataRepository(next, store)

	require.Error(t, repo.UpdateMatchCleanSheetFlags(ctx, "m1", false, true))
	assert.Equal(t, 1, store.Len())
}

func TestTypesKey(t *testing.T) {
	if got := typesKey(nil); got != "*" {
		t.Fatalf("expected wildcard key, got %q", got)
	}
	if got := typesKey([]match.EventType{match.EventRedCard, match.EventAssist}); got != "assist,red_card" {
		t.Fatalf("unexpected key %q", got)
	}
}
