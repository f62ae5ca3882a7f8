package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/league-stats/internal/domain/league"
	"github.com/riskibarqy/league-stats/internal/domain/leaguestats"
	"github.com/riskibarqy/league-stats/internal/domain/match"
	"github.com/riskibarqy/league-stats/internal/domain/player"
	"github.com/riskibarqy/league-stats/internal/domain/season"
	"github.com/riskibarqy/league-stats/internal/domain/seasondata"
	"github.com/riskibarqy/league-stats/internal/domain/team"
)

type seasonScope struct {
	season season.Season
	league league.League
}

func loadSeasonScope(ctx context.Context, repo seasondata.Repository, seasonID string) (seasonScope, error) {
	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return seasonScope{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetSeason(ctx, seasonID)
	if err != nil {
		return seasonScope{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return seasonScope{}, fmt.Errorf("%w: season=%s does not exist", ErrInvalidInput, seasonID)
	}

	lg, exists, err := repo.GetLeague(ctx, item.LeagueID)
	if err != nil {
		return seasonScope{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return seasonScope{}, fmt.Errorf("%w: league=%s of season=%s", ErrNotFound, item.LeagueID, seasonID)
	}

	return seasonScope{season: item, league: lg}, nil
}

func (s seasonScope) points() season.PointsRule {
	return season.EffectivePoints(s.season, s.league)
}

// listChronologicalMatches keeps completed matches only and orders them by
// kickoff then id, whatever order the port returned.
func listChronologicalMatches(ctx context.Context, repo seasondata.Repository, seasonID string) ([]match.Match, error) {
	items, err := repo.ListCompletedMatches(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list completed matches: %w", err)
	}

	out := make([]match.Match, 0, len(items))
	for _, item := range items {
		if item.IsCompleted() {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].KickoffAt.Equal(out[j].KickoffAt) {
			return out[i].KickoffAt.Before(out[j].KickoffAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// roster resolves teams and players for one computation. League members are
// loaded up front; anything else is fetched once on demand and cached.
type roster struct {
	repo seasondata.Repository

	teams         map[string]team.Team
	teamOrder     []string
	players       map[string]player.Player
	missingTeam   map[string]struct{}
	missingPlayer map[string]struct{}
}

func loadRoster(ctx context.Context, repo seasondata.Repository, leagueID string, withPlayers bool) (*roster, error) {
	teams, err := repo.ListTeams(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	r := &roster{
		repo:          repo,
		teams:         make(map[string]team.Team, len(teams)),
		teamOrder:     make([]string, 0, len(teams)),
		players:       make(map[string]player.Player),
		missingTeam:   make(map[string]struct{}),
		missingPlayer: make(map[string]struct{}),
	}
	for _, item := range teams {
		if _, ok := r.teams[item.ID]; ok {
			continue
		}
		r.teams[item.ID] = item
		r.teamOrder = append(r.teamOrder, item.ID)
	}

	if withPlayers {
		players, err := repo.ListPlayers(ctx, leagueID)
		if err != nil {
			return nil, fmt.Errorf("list players: %w", err)
		}
		for _, item := range players {
			r.players[item.ID] = item
		}
	}

	return r, nil
}

// leagueTeams returns the league's own teams in port order.
func (r *roster) leagueTeams() []team.Team {
	out := make([]team.Team, 0, len(r.teamOrder))
	for _, id := range r.teamOrder {
		out = append(out, r.teams[id])
	}
	return out
}

func (r *roster) team(ctx context.Context, teamID string) (team.Team, bool, error) {
	if item, ok := r.teams[teamID]; ok {
		return item, true, nil
	}
	if _, ok := r.missingTeam[teamID]; ok || teamID == "" {
		return team.Team{}, false, nil
	}

	item, exists, err := r.repo.GetTeam(ctx, teamID)
	if err != nil {
		return team.Team{}, false, fmt.Errorf("get team=%s: %w", teamID, err)
	}
	if !exists {
		r.missingTeam[teamID] = struct{}{}
		return team.Team{}, false, nil
	}
	r.teams[teamID] = item
	return item, true, nil
}

// teamName falls back to the id for teams the port cannot resolve.
func (r *roster) teamName(ctx context.Context, teamID string) (string, error) {
	item, exists, err := r.team(ctx, teamID)
	if err != nil {
		return "", err
	}
	if !exists {
		return teamID, nil
	}
	return item.Name, nil
}

func (r *roster) player(ctx context.Context, playerID string) (player.Player, bool, error) {
	if item, ok := r.players[playerID]; ok {
		return item, true, nil
	}
	if _, ok := r.missingPlayer[playerID]; ok || playerID == "" {
		return player.Player{}, false, nil
	}

	item, exists, err := r.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return player.Player{}, false, fmt.Errorf("get player=%s: %w", playerID, err)
	}
	if !exists {
		r.missingPlayer[playerID] = struct{}{}
		return player.Player{}, false, nil
	}
	r.players[playerID] = item
	return item, true, nil
}

// checkEvent resolves the acting player and reports why the event must be
// skipped, if it must.
func (r *roster) checkEvent(ctx context.Context, event match.Event) (player.Player, *leaguestats.IntegrityWarning, error) {
	warn := func(reason leaguestats.WarningReason) *leaguestats.IntegrityWarning {
		return &leaguestats.IntegrityWarning{
			EventID:  event.ID,
			MatchID:  event.MatchID,
			PlayerID: event.PlayerID,
			Reason:   reason,
		}
	}

	actor, exists, err := r.player(ctx, event.PlayerID)
	if err != nil {
		return player.Player{}, nil, err
	}
	if !exists {
		return player.Player{}, warn(leaguestats.ReasonUnknownPlayer), nil
	}
	if actor.TeamID != event.TeamID {
		return player.Player{}, warn(leaguestats.ReasonPlayerNotOnTeam), nil
	}
	if event.RequiresRelatedPlayer() && strings.TrimSpace(event.RelatedPlayerID) == "" {
		return player.Player{}, warn(leaguestats.ReasonMissingRelatedPlayer), nil
	}

	return actor, nil, nil
}

// integrityLog collects skipped events for one computation.
type integrityLog struct {
	warnings []leaguestats.IntegrityWarning
}

func (l *integrityLog) add(w leaguestats.IntegrityWarning) {
	l.warnings = append(l.warnings, w)
}

func (l *integrityLog) count() int {
	return len(l.warnings)
}

// result returns warnings ordered by event id and the distinct skipped ids.
func (l *integrityLog) result() ([]string, []leaguestats.IntegrityWarning) {
	warnings := make([]leaguestats.IntegrityWarning, len(l.warnings))
	copy(warnings, l.warnings)
	sort.SliceStable(warnings, func(i, j int) bool {
		return warnings[i].EventID < warnings[j].EventID
	})

	ids := make([]string, 0, len(warnings))
	for _, w := range warnings {
		ids = append(ids, w.EventID)
	}
	return leaguestats.SortedUnique(ids), warnings
}
