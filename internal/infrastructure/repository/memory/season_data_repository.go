package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/league-stats/internal/domain/league"
	"github.com/riskibarqy/league-stats/internal/domain/match"
	"github.com/riskibarqy/league-stats/internal/domain/player"
	"github.com/riskibarqy/league-stats/internal/domain/season"
	"github.com/riskibarqy/league-stats/internal/domain/team"
)

// Dataset is a full snapshot the in-memory repository serves.
type Dataset struct {
	Leagues []league.League
	Seasons []season.Season
	Teams   []team.Team
	Players []player.Player
	Matches []match.Match
	Events  []match.Event
}

type SeasonDataRepository struct {
	mu sync.RWMutex

	leagues map[string]league.League
	seasons map[string]season.Season
	teams   map[string]team.Team
	players map[string]player.Player
	matches map[string]match.Match

	teamsByLeague   map[string][]string
	playersByLeague map[string][]string
	matchesBySeason map[string][]string
	eventsByMatch   map[string][]match.Event
}

func NewSeasonDataRepository(data Dataset) *SeasonDataRepository {
	r := &SeasonDataRepository{
		leagues:         make(map[string]league.League, len(data.Leagues)),
		seasons:         make(map[string]season.Season, len(data.Seasons)),
		teams:           make(map[string]team.Team, len(data.Teams)),
		players:         make(map[string]player.Player, len(data.Players)),
		matches:         make(map[string]match.Match, len(data.Matches)),
		teamsByLeague:   make(map[string][]string),
		playersByLeague: make(map[string][]string),
		matchesBySeason: make(map[string][]string),
		eventsByMatch:   make(map[string][]match.Event),
	}

	for _, item := range data.Leagues {
		r.leagues[item.ID] = item
	}
	for _, item := range data.Seasons {
		r.seasons[item.ID] = item
	}
	for _, item := range data.Teams {
		if _, ok := r.teams[item.ID]; !ok {
			r.teamsByLeague[item.LeagueID] = append(r.teamsByLeague[item.LeagueID], item.ID)
		}
		r.teams[item.ID] = item
	}
	for _, item := range data.Players {
		leagueID := item.LeagueID
		if leagueID == "" {
			leagueID = r.teams[item.TeamID].LeagueID
			item.LeagueID = leagueID
		}
		if _, ok := r.players[item.ID]; !ok {
			r.playersByLeague[leagueID] = append(r.playersByLeague[leagueID], item.ID)
		}
		r.players[item.ID] = item
	}
	for _, item := range data.Matches {
		if _, ok := r.matches[item.ID]; !ok {
			r.matchesBySeason[item.SeasonID] = append(r.matchesBySeason[item.SeasonID], item.ID)
		}
		r.matches[item.ID] = item
	}
	for _, item := range data.Events {
		r.eventsByMatch[item.MatchID] = append(r.eventsByMatch[item.MatchID], item)
	}

	return r
}

func (r *SeasonDataRepository) GetSeason(_ context.Context, seasonID string) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.seasons[seasonID]
	return item, ok, nil
}

func (r *SeasonDataRepository) GetLeague(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.leagues[leagueID]
	return item, ok, nil
}

func (r *SeasonDataRepository) ListCompletedMatches(_ context.Context, seasonID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.completedMatchesLocked(seasonID), nil
}

func (r *SeasonDataRepository) completedMatchesLocked(seasonID string) []match.Match {
	ids := r.matchesBySeason[seasonID]
	out := make([]match.Match, 0, len(ids))
	for _, id := range ids {
		item := r.matches[id]
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
	return out
}

func (r *SeasonDataRepository) GetMatch(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.matches[matchID]
	return item, ok, nil
}

func (r *SeasonDataRepository) ListEvents(_ context.Context, seasonID string, types []match.EventType) ([]match.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	allowed := eventTypeSet(types)
	out := make([]match.Event, 0)
	for _, m := range r.completedMatchesLocked(seasonID) {
		out = appendEvents(out, r.eventsByMatch[m.ID], allowed)
	}
	return out, nil
}

func (r *SeasonDataRepository) ListMatchEvents(_ context.Context, matchID string, types []match.EventType) ([]match.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return appendEvents(make([]match.Event, 0), r.eventsByMatch[matchID], eventTypeSet(types)), nil
}

func (r *SeasonDataRepository) ListTeams(_ context.Context, leagueID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.teamsByLeague[leagueID]
	out := make([]team.Team, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.teams[id])
	}
	return out, nil
}

func (r *SeasonDataRepository) GetTeam(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.teams[teamID]
	return item, ok, nil
}

func (r *SeasonDataRepository) ListPlayers(_ context.Context, leagueID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.playersByLeague[leagueID]
	out := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.players[id])
	}
	return out, nil
}

func (r *SeasonDataRepository) GetPlayer(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.players[playerID]
	return item, ok, nil
}

// UpdateMatchCleanSheetFlags is a no-op for unknown matches, like an UPDATE
// matching zero rows.
func (r *SeasonDataRepository) UpdateMatchCleanSheetFlags(_ context.Context, matchID string, homeCleanSheet, awayCleanSheet bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.matches[matchID]
	if !ok {
		return nil
	}
	item.HomeCleanSheet = homeCleanSheet
	item.AwayCleanSheet = awayCleanSheet
	r.matches[matchID] = item
	return nil
}

func eventTypeSet(types []match.EventType) map[match.EventType]struct{} {
	if len(types) == 0 {
		return nil
	}
	out := make(map[match.EventType]struct{}, len(types))
	for _, t := range types {
		out[t] = struct{}{}
	}
	return out
}

func appendEvents(dst, src []match.Event, allowed map[match.EventType]struct{}) []match.Event {
	for _, item := range src {
		if allowed != nil {
			if _, ok := allowed[item.Type]; !ok {
				continue
			}
		}
		dst = append(dst, item)
	}
	return dst
}
