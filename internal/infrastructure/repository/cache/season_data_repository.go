package cache

import (
	"context"
	"sort"
	"strings"

	"github.com/riskibarqy/league-stats/internal/domain/league"
	"github.com/riskibarqy/league-stats/internal/domain/match"
	"github.com/riskibarqy/league-stats/internal/domain/player"
	"github.com/riskibarqy/league-stats/internal/domain/season"
	"github.com/riskibarqy/league-stats/internal/domain/seasondata"
	"github.com/riskibarqy/league-stats/internal/domain/team"
	basecache "github.com/riskibarqy/league-stats/internal/platform/cache"
)

const (
	keySeason      = "season:"
	keyLeague      = "league:"
	keyMatches     = "matches:"
	keyEvents      = "events:"
	keyMatch       = "match:"
	keyMatchEvents = "match-events:"
	keyTeams       = "teams:"
	keyTeam        = "team:"
	keyPlayers     = "players:"
	keyPlayer      = "player:"
)

// SeasonDataRepository is a read-through cache in front of another season
// data port. Slices are copied on the way in and out so callers never share
// backing arrays with the cache.
type SeasonDataRepository struct {
	next  seasondata.Repository
	cache *basecache.Store
}

var _ seasondata.Repository = (*SeasonDataRepository)(nil)

func NewSeasonDataRepository(next seasondata.Repository, cache *basecache.Store) *SeasonDataRepository {
	return &SeasonDataRepository{next: next, cache: cache}
}

type found[T any] struct {
	value  T
	exists bool
}

func lookup[T any](ctx context.Context, store *basecache.Store, key string, get func(context.Context) (T, bool, error)) (T, bool, error) {
	cached, err := basecache.Load(ctx, store, key, func(ctx context.Context) (found[T], error) {
		value, exists, err := get(ctx)
		if err != nil {
			return found[T]{}, err
		}
		return found[T]{value: value, exists: exists}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return cached.value, cached.exists, nil
}

func list[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	items, err := basecache.Load(ctx, store, key, func(ctx context.Context) ([]T, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]T(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]T(nil), items...), nil
}

func (r *SeasonDataRepository) GetSeason(ctx context.Context, seasonID string) (season.Season, bool, error) {
	return lookup(ctx, r.cache, keySeason+seasonID, func(ctx context.Context) (season.Season, bool, error) {
		return r.next.GetSeason(ctx, seasonID)
	})
}

func (r *SeasonDataRepository) GetLeague(ctx context.Context, leagueID string) (league.League, bool, error) {
	return lookup(ctx, r.cache, keyLeague+leagueID, func(ctx context.Context) (league.League, bool, error) {
		return r.next.GetLeague(ctx, leagueID)
	})
}

func (r *SeasonDataRepository) ListCompletedMatches(ctx context.Context, seasonID string) ([]match.Match, error) {
	return list(ctx, r.cache, keyMatches+seasonID, func(ctx context.Context) ([]match.Match, error) {
		return r.next.ListCompletedMatches(ctx, seasonID)
	})
}

func (r *SeasonDataRepository) GetMatch(ctx context.Context, matchID string) (match.Match, bool, error) {
	return lookup(ctx, r.cache, keyMatch+matchID, func(ctx context.Context) (match.Match, bool, error) {
		return r.next.GetMatch(ctx, matchID)
	})
}

func (r *SeasonDataRepository) ListEvents(ctx context.Context, seasonID string, types []match.EventType) ([]match.Event, error) {
	key := keyEvents + seasonID + ":" + typesKey(types)
	return list(ctx, r.cache, key, func(ctx context.Context) ([]match.Event, error) {
		return r.next.ListEvents(ctx, seasonID, types)
	})
}

func (r *SeasonDataRepository) ListMatchEvents(ctx context.Context, matchID string, types []match.EventType) ([]match.Event, error) {
	key := keyMatchEvents + matchID + ":" + typesKey(types)
	return list(ctx, r.cache, key, func(ctx context.Context) ([]match.Event, error) {
		return r.next.ListMatchEvents(ctx, matchID, types)
	})
}

func (r *SeasonDataRepository) ListTeams(ctx context.Context, leagueID string) ([]team.Team, error) {
	return list(ctx, r.cache, keyTeams+leagueID, func(ctx context.Context) ([]team.Team, error) {
		return r.next.ListTeams(ctx, leagueID)
	})
}

func (r *SeasonDataRepository) GetTeam(ctx context.Context, teamID string) (team.Team, bool, error) {
	return lookup(ctx, r.cache, keyTeam+teamID, func(ctx context.Context) (team.Team, bool, error) {
		return r.next.GetTeam(ctx, teamID)
	})
}

func (r *SeasonDataRepository) ListPlayers(ctx context.Context, leagueID string) ([]player.Player, error) {
	return list(ctx, r.cache, keyPlayers+leagueID, func(ctx context.Context) ([]player.Player, error) {
		return r.next.ListPlayers(ctx, leagueID)
	})
}

func (r *SeasonDataRepository) GetPlayer(ctx context.Context, playerID string) (player.Player, bool, error) {
	return lookup(ctx, r.cache, keyPlayer+playerID, func(ctx context.Context) (player.Player, bool, error) {
		return r.next.GetPlayer(ctx, playerID)
	})
}

// UpdateMatchCleanSheetFlags writes through and drops the cached match and the
// match lists it may appear in. When the match's season is unknown to the
// cache every season's list is dropped.
func (r *SeasonDataRepository) UpdateMatchCleanSheetFlags(ctx context.Context, matchID string, homeCleanSheet, awayCleanSheet bool) error {
	if err := r.next.UpdateMatchCleanSheetFlags(ctx, matchID, homeCleanSheet, awayCleanSheet); err != nil {
		return err
	}

	matchKey := keyMatch + matchID
	if cached, ok := r.cache.Get(ctx, matchKey); ok {
		if m, ok := cached.(found[match.Match]); ok && m.exists {
			r.cache.Delete(ctx, matchKey, keyMatches+m.value.SeasonID)
			return nil
		}
	}
	r.cache.Delete(ctx, matchKey)
	r.cache.DeletePrefix(ctx, keyMatches)
	return nil
}

func typesKey(types []match.EventType) string {
	if len(types) == 0 {
		return "*"
	}
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, string(t))
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}
