package resilient

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/league-stats/internal/domain/league"
	"github.com/riskibarqy/league-stats/internal/domain/match"
	"github.com/riskibarqy/league-stats/internal/domain/player"
	"github.com/riskibarqy/league-stats/internal/domain/season"
	"github.com/riskibarqy/league-stats/internal/domain/seasondata"
	"github.com/riskibarqy/league-stats/internal/domain/team"
	"github.com/riskibarqy/league-stats/internal/platform/logging"
	"github.com/riskibarqy/league-stats/internal/platform/resilience"
	"github.com/riskibarqy/league-stats/internal/usecase"
)

// SeasonDataRepository guards a season data port with a circuit breaker.
// Calls are never retried; a rejected call fails fast with
// usecase.ErrDependencyUnavailable.
type SeasonDataRepository struct {
	next    seasondata.Repository
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger
}

var _ seasondata.Repository = (*SeasonDataRepository)(nil)

func NewSeasonDataRepository(next seasondata.Repository, breaker *resilience.CircuitBreaker, logger *logging.Logger) *SeasonDataRepository {
	if logger == nil {
		logger = logging.Default()
	}
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("season data circuit breaker state changed", "from", from, "to", to)
	})
	return &SeasonDataRepository{next: next, breaker: breaker, logger: logger}
}

func (r *SeasonDataRepository) guard(ctx context.Context, op string, fn func(context.Context) error) error {
	err := r.breaker.Execute(ctx, fn)
	if errors.Is(err, resilience.ErrCircuitOpen) {
		r.logger.WarnContext(ctx, "season data call rejected", "operation", op, "state", r.breaker.State())
		return fmt.Errorf("%w: season data %s: %w", usecase.ErrDependencyUnavailable, op, err)
	}
	return err
}

func (r *SeasonDataRepository) GetSeason(ctx context.Context, seasonID string) (out season.Season, exists bool, err error) {
	err = r.guard(ctx, "get season", func(ctx context.Context) error {
		out, exists, err = r.next.GetSeason(ctx, seasonID)
		return err
	})
	return out, exists, err
}

func (r *SeasonDataRepository) GetLeague(ctx context.Context, leagueID string) (out league.League, exists bool, err error) {
	err = r.guard(ctx, "get league", func(ctx context.Context) error {
		out, exists, err = r.next.GetLeague(ctx, leagueID)
		return err
	})
	return out, exists, err
}

func (r *SeasonDataRepository) ListCompletedMatches(ctx context.Context, seasonID string) (out []match.Match, err error) {
	err = r.guard(ctx, "list completed matches", func(ctx context.Context) error {
		out, err = r.next.ListCompletedMatches(ctx, seasonID)
		return err
	})
	return out, err
}

func (r *SeasonDataRepository) GetMatch(ctx context.Context, matchID string) (out match.Match, exists bool, err error) {
	err = r.guard(ctx, "get match", func(ctx context.Context) error {
		out, exists, err = r.next.GetMatch(ctx, matchID)
		return err
	})
	return out, exists, err
}

func (r *SeasonDataRepository) ListEvents(ctx context.Context, seasonID string, types []match.EventType) (out []match.Event, err error) {
	err = r.guard(ctx, "list events", func(ctx context.Context) error {
		out, err = r.next.ListEvents(ctx, seasonID, types)
		return err
	})
	return out, err
}

func (r *SeasonDataRepository) ListMatchEvents(ctx context.Context, matchID string, types []match.EventType) (out []match.Event, err error) {
	err = r.guard(ctx, "list match events", func(ctx context.Context) error {
		out, err = r.next.ListMatchEvents(ctx, matchID, types)
		return err
	})
	return out, err
}

func (r *SeasonDataRepository) ListTeams(ctx context.Context, leagueID string) (out []team.Team, err error) {
	err = r.guard(ctx, "list teams", func(ctx context.Context) error {
		out, err = r.next.ListTeams(ctx, leagueID)
		return err
	})
	return out, err
}

func (r *SeasonDataRepository) GetTeam(ctx context.Context, teamID string) (out team.Team, exists bool, err error) {
	err = r.guard(ctx, "get team", func(ctx context.Context) error {
		out, exists, err = r.next.GetTeam(ctx, teamID)
		return err
	})
	return out, exists, err
}

func (r *SeasonDataRepository) ListPlayers(ctx context.Context, leagueID string) (out []player.Player, err error) {
	err = r.guard(ctx, "list players", func(ctx context.Context) error {
		out, err = r.next.ListPlayers(ctx, leagueID)
		return err
	})
	return out, err
}

func (r *SeasonDataRepository) GetPlayer(ctx context.Context, playerID string) (out player.Player, exists bool, err error) {
	err = r.guard(ctx, "get player", func(ctx context.Context) error {
		out, exists, err = r.next.GetPlayer(ctx, playerID)
		return err
	})
	return out, exists, err
}

func (r *SeasonDataRepository) UpdateMatchCleanSheetFlags(ctx context.Context, matchID string, homeCleanSheet, awayCleanSheet bool) error {
	return r.guard(ctx, "update clean sheet flags", func(ctx context.Context) error {
		return r.next.UpdateMatchCleanSheetFlags(ctx, matchID, homeCleanSheet, awayCleanSheet)
	})
}
