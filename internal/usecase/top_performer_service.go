package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/league-stats/internal/domain/leaguestats"
	"github.com/riskibarqy/league-stats/internal/domain/match"
	"github.com/riskibarqy/league-stats/internal/domain/seasondata"
	"github.com/riskibarqy/league-stats/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type TopPerformerService struct {
	repo   seasondata.Repository
	logger *logging.Logger
}

func NewTopPerformerService(repo seasondata.Repository, logger *logging.Logger) *TopPerformerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TopPerformerService{
		repo:   repo,
		logger: logger,
	}
}

// TopScorers ranks players by goals and penalty goals. Own goals never count.
func (s *TopPerformerService) TopScorers(ctx context.Context, seasonID string, limit int) (leaguestats.Leaderboard, error) {
	return s.leaderboard(ctx, engineTopScorers, seasonID, limit, match.ScoringEventTypes, match.Event.CountsAsGoal)
}

// TopAssists ranks players by assist events.
func (s *TopPerformerService) TopAssists(ctx context.Context, seasonID string, limit int) (leaguestats.Leaderboard, error) {
	return s.leaderboard(ctx, engineTopAssists, seasonID, limit, match.AssistEventTypes, func(e match.Event) bool {
		return e.Type == match.EventAssist
	})
}

func (s *TopPerformerService) leaderboard(
	ctx context.Context,
	engine string,
	seasonID string,
	limit int,
	types []match.EventType,
	qualifies func(match.Event) bool,
) (result leaguestats.Leaderboard, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TopPerformerService."+engine,
		attribute.String("season.id", seasonID),
		attribute.Int("limit", limit),
	)
	startedAt := time.Now()
	var skipped integrityLog
	defer func() {
		statsMetrics.observe(ctx, engine, startedAt, skipped.count(), err)
		endUsecaseSpan(span, err)
	}()

	if limit <= 0 {
		return leaguestats.Leaderboard{}, fmt.Errorf("%w: limit must be greater than zero", ErrInvalidInput)
	}

	scope, err := loadSeasonScope(ctx, s.repo, seasonID)
	if err != nil {
		return leaguestats.Leaderboard{}, err
	}
	lookup, err := loadRoster(ctx, s.repo, scope.league.ID, true)
	if err != nil {
		return leaguestats.Leaderboard{}, err
	}
	events, err := s.repo.ListEvents(ctx, scope.season.ID, types)
	if err != nil {
		return leaguestats.Leaderboard{}, fmt.Errorf("list events: %w", err)
	}

	counts := make(map[string]*leaguestats.PlayerLeaderboardEntry)
	for _, event := range events {
		if !qualifies(event) {
			continue
		}
		actor, warning, err := lookup.checkEvent(ctx, event)
		if err != nil {
			return leaguestats.Leaderboard{}, err
		}
		if warning != nil {
			skipped.add(*warning)
			continue
		}

		entry, ok := counts[actor.ID]
		if !ok {
			teamName, err := lookup.teamName(ctx, actor.TeamID)
			if err != nil {
				return leaguestats.Leaderboard{}, err
			}
			entry = &leaguestats.PlayerLeaderboardEntry{
				PlayerID: actor.ID,
				Name:     actor.FullName(),
				TeamName: teamName,
			}
			counts[actor.ID] = entry
		}
		entry.Count++
	}

	entries := make([]leaguestats.PlayerLeaderboardEntry, 0, len(counts))
	for _, entry := range counts {
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}

	skippedIDs, warnings := skipped.result()
	if len(warnings) > 0 {
		s.logger.WarnContext(ctx, "leaderboard skipped events",
			"engine", engine,
			"season_id", scope.season.ID,
			"skipped", len(skippedIDs),
		)
	}

	return leaguestats.Leaderboard{
		SeasonID:        scope.season.ID,
		Entries:         entries,
		SkippedEventIDs: skippedIDs,
		Warnings:        warnings,
	}, nil
}
