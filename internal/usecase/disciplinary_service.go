package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/league-stats/internal/domain/leaguestats"
	"github.com/riskibarqy/league-stats/internal/domain/match"
	"github.com/riskibarqy/league-stats/internal/domain/seasondata"
	"github.com/riskibarqy/league-stats/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// yellowCardsForAutomaticRed is how many bookings in one match trigger a
// sending off.
const yellowCardsForAutomaticRed = 2

type DisciplinaryService struct {
	repo   seasondata.Repository
	logger *logging.Logger
}

func NewDisciplinaryService(repo seasondata.Repository, logger *logging.Logger) *DisciplinaryService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DisciplinaryService{
		repo:   repo,
		logger: logger,
	}
}

// validCards returns the card events that pass integrity checks.
func (s *DisciplinaryService) validCards(ctx context.Context, scope seasonScope, lookup *roster, skipped *integrityLog) ([]match.Event, error) {
	events, err := s.repo.ListEvents(ctx, scope.season.ID, match.CardEventTypes)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	out := make([]match.Event, 0, len(events))
	for _, event := range events {
		if !event.IsCard() {
			continue
		}
		_, warning, err := lookup.checkEvent(ctx, event)
		if err != nil {
			return nil, err
		}
		if warning != nil {
			skipped.add(*warning)
			continue
		}
		out = append(out, event)
	}
	return out, nil
}

// PlayerDisciplinaryStats aggregates bookings per player. Straight reds and
// second yellows both count as red cards.
func (s *DisciplinaryService) PlayerDisciplinaryStats(ctx context.Context, seasonID string) (result leaguestats.PlayerDiscipline, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DisciplinaryService.PlayerDisciplinaryStats", attribute.String("season.id", seasonID))
	startedAt := time.Now()
	var skipped integrityLog
	defer func() {
		statsMetrics.observe(ctx, enginePlayerCards, startedAt, skipped.count(), err)
		endUsecaseSpan(span, err)
	}()

	scope, err := loadSeasonScope(ctx, s.repo, seasonID)
	if err != nil {
		return leaguestats.PlayerDiscipline{}, err
	}
	lookup, err := loadRoster(ctx, s.repo, scope.league.ID, true)
	if err != nil {
		return leaguestats.PlayerDiscipline{}, err
	}
	cards, err := s.validCards(ctx, scope, lookup, &skipped)
	if err != nil {
		return leaguestats.PlayerDiscipline{}, err
	}

	byPlayer := make(map[string]*leaguestats.PlayerDisciplinaryStat)
	for _, card := range cards {
		row, ok := byPlayer[card.PlayerID]
		if !ok {
			actor, _, err := lookup.player(ctx, card.PlayerID)
			if err != nil {
				return leaguestats.PlayerDiscipline{}, err
			}
			teamName, err := lookup.teamName(ctx, actor.TeamID)
			if err != nil {
				return leaguestats.PlayerDiscipline{}, err
			}
			row = &leaguestats.PlayerDisciplinaryStat{
				PlayerID: actor.ID,
				Name:     actor.FullName(),
				TeamName: teamName,
			}
			byPlayer[card.PlayerID] = row
		}
		if card.IsSendingOff() {
			row.RedCards++
		} else {
			row.YellowCards++
		}
	}

	rows := make([]leaguestats.PlayerDisciplinaryStat, 0, len(byPlayer))
	for _, row := range byPlayer {
		row.TotalCards = row.YellowCards + row.RedCards
		row.SuspensionGames = leaguestats.SuspensionGames(row.YellowCards, row.RedCards)
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalCards != rows[j].TotalCards {
			return rows[i].TotalCards > rows[j].TotalCards
		}
		if rows[i].RedCards != rows[j].RedCards {
			return rows[i].RedCards > rows[j].RedCards
		}
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		return rows[i].PlayerID < rows[j].PlayerID
	})

	skippedIDs, warnings := skipped.result()
	s.warnSkipped(ctx, enginePlayerCards, scope.season.ID, skippedIDs)
	return leaguestats.PlayerDiscipline{
		SeasonID:        scope.season.ID,
		Rows:            rows,
		SkippedEventIDs: skippedIDs,
		Warnings:        warnings,
	}, nil
}

// TeamDisciplinaryStats aggregates bookings per team and rates fair play
// against the number of completed matches.
func (s *DisciplinaryService) TeamDisciplinaryStats(ctx context.Context, seasonID string) (result leaguestats.TeamDiscipline, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DisciplinaryService.TeamDisciplinaryStats", attribute.String("season.id", seasonID))
	startedAt := time.Now()
	var skipped integrityLog
	defer func() {
		statsMetrics.observe(ctx, engineTeamCards, startedAt, skipped.count(), err)
		endUsecaseSpan(span, err)
	}()

	scope, err := loadSeasonScope(ctx, s.repo, seasonID)
	if err != nil {
		return leaguestats.TeamDiscipline{}, err
	}
	lookup, err := loadRoster(ctx, s.repo, scope.league.ID, true)
	if err != nil {
		return leaguestats.TeamDiscipline{}, err
	}
	matches, err := listChronologicalMatches(ctx, s.repo, scope.season.ID)
	if err != nil {
		return leaguestats.TeamDiscipline{}, err
	}
	cards, err := s.validCards(ctx, scope, lookup, &skipped)
	if err != nil {
		return leaguestats.TeamDiscipline{}, err
	}

	rows := make(map[string]*leaguestats.TeamDisciplinaryStat)
	played := make(map[string]int)
	order := make([]string, 0)
	ensure := func(teamID string) (*leaguestats.TeamDisciplinaryStat, error) {
		if row, ok := rows[teamID]; ok {
			return row, nil
		}
		name, err := lookup.teamName(ctx, teamID)
		if err != nil {
			return nil, err
		}
		row := &leaguestats.TeamDisciplinaryStat{TeamID: teamID, Name: name}
		rows[teamID] = row
		order = append(order, teamID)
		return row, nil
	}

	for _, item := range lookup.leagueTeams() {
		if _, err := ensure(item.ID); err != nil {
			return leaguestats.TeamDiscipline{}, err
		}
	}
	for _, m := range matches {
		for _, teamID := range []string{m.HomeTeamID, m.AwayTeamID} {
			if _, err := ensure(teamID); err != nil {
				return leaguestats.TeamDiscipline{}, err
			}
			played[teamID]++
		}
	}
	for _, card := range cards {
		row, err := ensure(card.TeamID)
		if err != nil {
			return leaguestats.TeamDiscipline{}, err
		}
		if card.IsSendingOff() {
			row.RedCards++
		} else {
			row.YellowCards++
		}
	}

	out := make([]leaguestats.TeamDisciplinaryStat, 0, len(order))
	for _, id := range order {
		row := rows[id]
		row.TotalCards = row.YellowCards + row.RedCards
		row.FairPlayRating = leaguestats.FairPlayRating(row.YellowCards, row.RedCards, played[id])
		out = append(out, *row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].FairPlayRating != out[j].FairPlayRating {
			return out[i].FairPlayRating > out[j].FairPlayRating
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].TeamID < out[j].TeamID
	})

	skippedIDs, warnings := skipped.result()
	s.warnSkipped(ctx, engineTeamCards, scope.season.ID, skippedIDs)
	return leaguestats.TeamDiscipline{
		SeasonID:        scope.season.ID,
		Rows:            out,
		SkippedEventIDs: skippedIDs,
		Warnings:        warnings,
	}, nil
}

// CheckAutomaticRedCard reports whether the player already has two yellow
// cards in the match. It is advisory and records nothing.
func (s *DisciplinaryService) CheckAutomaticRedCard(ctx context.Context, playerID, matchID string) (result bool, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DisciplinaryService.CheckAutomaticRedCard",
		attribute.String("player.id", playerID),
		attribute.String("match.id", matchID),
	)
	defer func() { endUsecaseSpan(span, err) }()

	playerID = strings.TrimSpace(playerID)
	matchID = strings.TrimSpace(matchID)
	if playerID == "" || matchID == "" {
		return false, fmt.Errorf("%w: player id and match id are required", ErrInvalidInput)
	}

	_, exists, err := s.repo.GetMatch(ctx, matchID)
	if err != nil {
		return false, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return false, fmt.Errorf("%w: match=%s does not exist", ErrInvalidInput, matchID)
	}

	events, err := s.repo.ListMatchEvents(ctx, matchID, []match.EventType{match.EventYellowCard})
	if err != nil {
		return false, fmt.Errorf("list match events: %w", err)
	}

	yellows := 0
	for _, event := range events {
		if event.Type == match.EventYellowCard && event.PlayerID == playerID {
			yellows++
		}
	}
	return yellows >= yellowCardsForAutomaticRed, nil
}

func (s *DisciplinaryService) warnSkipped(ctx context.Context, engine, seasonID string, skippedIDs []string) {
	if len(skippedIDs) == 0 {
		return
	}
	s.logger.WarnContext(ctx, "disciplinary stats skipped events",
		"engine", engine,
		"season_id", seasonID,
		"skipped", len(skippedIDs),
	)
}
