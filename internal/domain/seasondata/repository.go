package seasondata

import (
	"context"

	"github.com/riskibarqy/league-stats/internal/domain/league"
	"github.com/riskibarqy/league-stats/internal/domain/match"
	"github.com/riskibarqy/league-stats/internal/domain/player"
	"github.com/riskibarqy/league-stats/internal/domain/season"
	"github.com/riskibarqy/league-stats/internal/domain/team"
)

// Repository is the read port the statistics engines pull a season snapshot
// through. UpdateMatchCleanSheetFlags is its only write.
//
// Get* methods return (zero, false, nil) when the record does not exist.
type Repository interface {
	GetSeason(ctx context.Context, seasonID string) (season.Season, bool, error)
	GetLeague(ctx context.Context, leagueID string) (league.League, bool, error)
	// ListCompletedMatches returns matches ordered by kickoff ascending, then id.
	ListCompletedMatches(ctx context.Context, seasonID string) ([]match.Match, error)
	GetMatch(ctx context.Context, matchID string) (match.Match, bool, error)
	// ListEvents returns events of completed matches of the season. An empty
	// types slice means every type.
	ListEvents(ctx context.Context, seasonID string, types []match.EventType) ([]match.Event, error)
	ListMatchEvents(ctx context.Context, matchID string, types []match.EventType) ([]match.Event, error)
	ListTeams(ctx context.Context, leagueID string) ([]team.Team, error)
	GetTeam(ctx context.Context, teamID string) (team.Team, bool, error)
	ListPlayers(ctx context.Context, leagueID string) ([]player.Player, error)
	GetPlayer(ctx context.Context, playerID string) (player.Player, bool, error)
	UpdateMatchCleanSheetFlags(ctx context.Context, matchID string, homeCleanSheet, awayCleanSheet bool) error
}
