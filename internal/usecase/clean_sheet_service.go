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

type CleanSheetService struct {
	repo   seasondata.Repository
	logger *logging.Logger
}

func NewCleanSheetService(repo seasondata.Repository, logger *logging.Logger) *CleanSheetService {
	if logger == nil {
		logger = logging.Default()
	}
	return &CleanSheetService{
		repo:   repo,
		logger: logger,
	}
}

type defensiveRecord struct {
	teamID        string
	name          string
	matchesPlayed int
	cleanSheets   int
	goalsAgainst  int
}

// defensiveRecords folds completed matches into per-team shutout counters,
// league teams first in port order, then any outside team met along the way.
func (s *CleanSheetService) defensiveRecords(ctx context.Context, seasonID string, withPlayers bool) (seasonScope, *roster, map[string]*defensiveRecord, []string, error) {
	scope, err := loadSeasonScope(ctx, s.repo, seasonID)
	if err != nil {
		return seasonScope{}, nil, nil, nil, err
	}
	lookup, err := loadRoster(ctx, s.repo, scope.league.ID, withPlayers)
	if err != nil {
		return seasonScope{}, nil, nil, nil, err
	}
	matches, err := listChronologicalMatches(ctx, s.repo, scope.season.ID)
	if err != nil {
		return seasonScope{}, nil, nil, nil, err
	}

	records := make(map[string]*defensiveRecord)
	order := make([]string, 0)
	ensure := func(teamID string) (*defensiveRecord, error) {
		if rec, ok := records[teamID]; ok {
			return rec, nil
		}
		name, err := lookup.teamName(ctx, teamID)
		if err != nil {
			return nil, err
		}
		rec := &defensiveRecord{teamID: teamID, name: name}
		records[teamID] = rec
		order = append(order, teamID)
		return rec, nil
	}

	for _, item := range lookup.leagueTeams() {
		if _, err := ensure(item.ID); err != nil {
			return seasonScope{}, nil, nil, nil, err
		}
	}
	for _, m := range matches {
		for _, teamID := range []string{m.HomeTeamID, m.AwayTeamID} {
			rec, err := ensure(teamID)
			if err != nil {
				return seasonScope{}, nil, nil, nil, err
			}
			conceded, _ := m.Conceded(teamID)
			rec.matchesPlayed++
			rec.goalsAgainst += conceded
			if conceded == 0 {
				rec.cleanSheets++
			}
		}
	}

	return scope, lookup, records, order, nil
}

// TeamCleanSheets lists every team with its shutout count and percentage.
func (s *CleanSheetService) TeamCleanSheets(ctx context.Context, seasonID string) (result leaguestats.TeamCleanSheets, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CleanSheetService.TeamCleanSheets", attribute.String("season.id", seasonID))
	startedAt := time.Now()
	defer func() {
		statsMetrics.observe(ctx, engineTeamSheets, startedAt, 0, err)
		endUsecaseSpan(span, err)
	}()

	scope, _, records, order, err := s.defensiveRecords(ctx, seasonID, false)
	if err != nil {
		return leaguestats.TeamCleanSheets{}, err
	}

	rows := make([]leaguestats.TeamCleanSheetStat, 0, len(order))
	for _, id := range order {
		rec := records[id]
		rows = append(rows, leaguestats.TeamCleanSheetStat{
			TeamID:               rec.teamID,
			Name:                 rec.name,
			CleanSheets:          rec.cleanSheets,
			MatchesPlayed:        rec.matchesPlayed,
			CleanSheetPercentage: leaguestats.CleanSheetPercentage(rec.cleanSheets, rec.matchesPlayed),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].CleanSheets != rows[j].CleanSheets {
			return rows[i].CleanSheets > rows[j].CleanSheets
		}
		if rows[i].CleanSheetPercentage != rows[j].CleanSheetPercentage {
			return rows[i].CleanSheetPercentage > rows[j].CleanSheetPercentage
		}
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		return rows[i].TeamID < rows[j].TeamID
	})

	return leaguestats.TeamCleanSheets{SeasonID: scope.season.ID, Rows: rows}, nil
}

// GoalkeeperCleanSheets credits every match of a team to each of its
// goalkeepers. No lineup data is consulted.
func (s *CleanSheetService) GoalkeeperCleanSheets(ctx context.Context, seasonID string) (result leaguestats.GoalkeeperCleanSheets, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CleanSheetService.GoalkeeperCleanSheets", attribute.String("season.id", seasonID))
	startedAt := time.Now()
	defer func() {
		statsMetrics.observe(ctx, engineKeeperSheets, startedAt, 0, err)
		endUsecaseSpan(span, err)
	}()

	scope, lookup, records, _, err := s.defensiveRecords(ctx, seasonID, true)
	if err != nil {
		return leaguestats.GoalkeeperCleanSheets{}, err
	}

	rows := make([]leaguestats.GoalkeeperCleanSheetStat, 0)
	for _, keeper := range lookup.players {
		if !keeper.Goalkeeper() {
			continue
		}
		row := leaguestats.GoalkeeperCleanSheetStat{
			PlayerID: keeper.ID,
			Name:     keeper.FullName(),
		}
		if rec, ok := records[keeper.TeamID]; ok {
			row.TeamName = rec.name
			row.CleanSheets = rec.cleanSheets
			row.MatchesPlayed = rec.matchesPlayed
			row.GoalsAgainst = rec.goalsAgainst
		} else {
			name, err := lookup.teamName(ctx, keeper.TeamID)
			if err != nil {
				return leaguestats.GoalkeeperCleanSheets{}, err
			}
			row.TeamName = name
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CleanSheets != rows[j].CleanSheets {
			return rows[i].CleanSheets > rows[j].CleanSheets
		}
		if rows[i].GoalsAgainst != rows[j].GoalsAgainst {
			return rows[i].GoalsAgainst < rows[j].GoalsAgainst
		}
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		return rows[i].PlayerID < rows[j].PlayerID
	})

	return leaguestats.GoalkeeperCleanSheets{SeasonID: scope.season.ID, Rows: rows}, nil
}

// MarkMatchCleanSheet derives both clean-sheet flags from the final score and
// writes them back. It is the only mutation the engines perform.
func (s *CleanSheetService) MarkMatchCleanSheet(ctx context.Context, matchID string) (result match.Match, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CleanSheetService.MarkMatchCleanSheet", attribute.String("match.id", matchID))
	defer func() { endUsecaseSpan(span, err) }()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetMatch(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s does not exist", ErrInvalidInput, matchID)
	}
	if !item.IsCompleted() {
		return match.Match{}, fmt.Errorf("%w: match=%s is %s, not completed", ErrInvalidInput, matchID, item.Status)
	}

	home, away := item.CleanSheetFlags()
	if err := s.repo.UpdateMatchCleanSheetFlags(ctx, item.ID, home, away); err != nil {
		return match.Match{}, fmt.Errorf("update clean sheet flags: %w", err)
	}
	item.HomeCleanSheet = home
	item.AwayCleanSheet = away

	s.logger.InfoContext(ctx, "match clean sheets marked",
		"match_id", item.ID,
		"home_clean_sheet", home,
		"away_clean_sheet", away,
	)
	return item, nil
}
