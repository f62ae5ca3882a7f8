package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/riskibarqy/league-stats/internal/domain/match"
	"github.com/riskibarqy/league-stats/internal/domain/player"
	"github.com/riskibarqy/league-stats/internal/domain/season"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletedMatchesQuery(t *testing.T) {
	query, args, err := completedMatchesQuery("idn-liga-1-2025")
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT public_id, season_public_id, home_team_public_id, away_team_public_id, kickoff_at, home_score, away_score, status, home_clean_sheet, away_clean_sheet"+
			" FROM matches WHERE season_public_id = $1 AND status = $2 AND deleted_at IS NULL ORDER BY kickoff_at, public_id",
		query,
	)
	assert.Equal(t, []any{"idn-liga-1-2025", "completed"}, args)
}

func TestSeasonEventsQuery(t *testing.T) {
	t.Run("filters by event types", func(t *testing.T) {
		query, args, err := seasonEventsQuery("s1", match.CardEventTypes)
		require.NoError(t, err)

		assert.Contains(t, query, "FROM match_events e JOIN matches m ON m.public_id = e.match_public_id")
		assert.Contains(t, query, "WHERE m.season_public_id = $1 AND m.status = $2 AND m.deleted_at IS NULL AND e.deleted_at IS NULL AND e.event_type = ANY($3)")
		assert.Contains(t, query, "ORDER BY m.kickoff_at, m.public_id, e.minute, e.id")
		require.Len(t, args, 3)
		assert.Equal(t, "s1", args[0])
		assert.IsType(t, (*pq.StringArray)(nil), args[2])
	})

	t.Run("empty types means every type", func(t *testing.T) {
		query, args, err := seasonEventsQuery("s1", nil)
		require.NoError(t, err)

		assert.NotContains(t, query, "ANY(")
		assert.Len(t, args, 2)
	})
}

func TestMatchEventsQuery(t *testing.T) {
	query, args, err := matchEventsQuery("m1", []match.EventType{match.EventYellowCard})
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE e.match_public_id = $1 AND e.deleted_at IS NULL AND e.event_type = ANY($2)")
	assert.Len(t, args, 2)
}

func TestCleanSheetUpdateQuery(t *testing.T) {
	query, args, err := cleanSheetUpdateQuery("m1", true, false)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE matches SET home_clean_sheet = $1, away_clean_sheet = $2, updated_at = NOW() WHERE public_id = $3 AND deleted_at IS NULL",
		query,
	)
	assert.Equal(t, []any{true, false, "m1"}, args)
}

func TestSeasonFromRow(t *testing.T) {
	got := seasonFromRow(seasonTableModel{
		PublicID:          "s1",
		LeagueID:          "l1",
		Name:              "2025/26",
		PointsPerWin:      sql.NullInt64{Int64: 2, Valid: true},
		PrimaryTieBreaker: "head_to_head",
		StartDate:         sql.NullTime{Time: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), Valid: true},
	})

	require.NotNil(t, got.PointsPerWin)
	assert.Equal(t, 2, *got.PointsPerWin)
	assert.Nil(t, got.PointsPerDraw)
	assert.Nil(t, got.PointsPerLoss)
	assert.Equal(t, season.TieBreakerHeadToHead, got.PrimaryTieBreaker)
	assert.True(t, got.EndDate.IsZero())
}

func TestMatchAndEventFromRow(t *testing.T) {
	m := matchFromRow(matchTableModel{PublicID: "m1", Status: " Completed ", HomeScore: 1})
	assert.Equal(t, match.StatusCompleted, m.Status)
	assert.True(t, m.IsCompleted())

	og := eventFromRow(matchEventTableModel{PublicID: "e1", EventType: "OWN_GOAL"})
	assert.Equal(t, match.EventOwnGoal, og.Type)
	assert.True(t, og.IsOwnGoal)
	assert.False(t, og.CountsAsGoal())

	pen := eventFromRow(matchEventTableModel{PublicID: "e2", EventType: "penalty_goal"})
	assert.True(t, pen.IsPenalty)
	assert.True(t, pen.CountsAsGoal())
}

func TestPlayerFromRow(t *testing.T) {
	got := playerFromRow(playerTableModel{PublicID: "p1", Position: "GK", LastName: "Kurniawan"})
	assert.Equal(t, player.PositionGoalkeeper, got.Position)
	assert.True(t, got.Goalkeeper())
}
