package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/league-stats/internal/domain/leaguestats"
	"github.com/riskibarqy/league-stats/internal/domain/match"
	"github.com/riskibarqy/league-stats/internal/domain/season"
	"github.com/riskibarqy/league-stats/internal/domain/seasondata"
	"github.com/riskibarqy/league-stats/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type StandingsService struct {
	repo   seasondata.Repository
	logger *logging.Logger
}

func NewStandingsService(repo seasondata.Repository, logger *logging.Logger) *StandingsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StandingsService{
		repo:   repo,
		logger: logger,
	}
}

type standingAccumulator struct {
	row       leaguestats.TeamStanding
	rule      season.PointsRule
	awayGoals int
}

// ComputeStandings builds the ordered league table of a season. Only
// completed matches count; teams without matches still get a zeroed row.
func (s *StandingsService) ComputeStandings(ctx context.Context, seasonID string) (result leaguestats.Standings, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.ComputeStandings", attribute.String("season.id", seasonID))
	startedAt := time.Now()
	defer func() {
		statsMetrics.observe(ctx, engineStandings, startedAt, 0, err)
		endUsecaseSpan(span, err)
	}()

	scope, err := loadSeasonScope(ctx, s.repo, seasonID)
	if err != nil {
		return leaguestats.Standings{}, err
	}
	lookup, err := loadRoster(ctx, s.repo, scope.league.ID, false)
	if err != nil {
		return leaguestats.Standings{}, err
	}
	matches, err := listChronologicalMatches(ctx, s.repo, scope.season.ID)
	if err != nil {
		return leaguestats.Standings{}, err
	}

	table := newStandingTable(scope, lookup)
	for _, item := range lookup.leagueTeams() {
		table.add(item.ID, item.Name, scope.points())
	}
	for _, m := range matches {
		if err := table.ensure(ctx, m.HomeTeamID); err != nil {
			return leaguestats.Standings{}, err
		}
		if err := table.ensure(ctx, m.AwayTeamID); err != nil {
			return leaguestats.Standings{}, err
		}
		table.fold(m)
	}

	rows := table.rank(scope.season.TieBreakerRules(), matches)
	s.logger.DebugContext(ctx, "standings computed",
		"season_id", scope.season.ID,
		"teams", len(rows),
		"matches", len(matches),
	)

	return leaguestats.Standings{
		SeasonID: scope.season.ID,
		Rows:     rows,
	}, nil
}

type standingTable struct {
	scope   seasonScope
	roster  *roster
	rows    map[string]*standingAccumulator
	order   []string
	leagues map[string]season.PointsRule
}

func newStandingTable(scope seasonScope, r *roster) *standingTable {
	return &standingTable{
		scope:   scope,
		roster:  r,
		rows:    make(map[string]*standingAccumulator),
		leagues: map[string]season.PointsRule{scope.league.ID: scope.points()},
	}
}

func (t *standingTable) add(teamID, name string, rule season.PointsRule) {
	if _, ok := t.rows[teamID]; ok {
		return
	}
	t.rows[teamID] = &standingAccumulator{
		row: leaguestats.TeamStanding{
			TeamID: teamID,
			Name:   name,
			Form:   []leaguestats.Result{},
		},
		rule: rule,
	}
	t.order = append(t.order, teamID)
}

// ensure adds a row for a team met in a match but not listed in the league.
// Such a team scores with its own league's points.
func (t *standingTable) ensure(ctx context.Context, teamID string) error {
	if _, ok := t.rows[teamID]; ok {
		return nil
	}

	item, exists, err := t.roster.team(ctx, teamID)
	if err != nil {
		return err
	}
	if !exists {
		t.add(teamID, teamID, t.scope.points())
		return nil
	}

	rule, ok := t.leagues[item.LeagueID]
	if !ok {
		lg, found, err := t.roster.repo.GetLeague(ctx, item.LeagueID)
		if err != nil {
			return fmt.Errorf("get league=%s: %w", item.LeagueID, err)
		}
		rule = t.scope.points()
		if found {
			rule = season.LeaguePoints(lg)
		}
		t.leagues[item.LeagueID] = rule
	}
	t.add(item.ID, item.Name, rule)
	return nil
}

func (t *standingTable) fold(m match.Match) {
	home := t.rows[m.HomeTeamID]
	away := t.rows[m.AwayTeamID]

	home.row = applyResult(home.row, home.rule, m.HomeScore, m.AwayScore)
	away.row = applyResult(away.row, away.rule, m.AwayScore, m.HomeScore)
	away.awayGoals += m.AwayScore
}

// applyResult returns the row after one more match; the input is untouched.
func applyResult(row leaguestats.TeamStanding, rule season.PointsRule, scored, conceded int) leaguestats.TeamStanding {
	next := row
	next.MatchesPlayed++
	next.GoalsFor += scored
	next.GoalsAgainst += conceded
	next.GoalDifference = next.GoalsFor - next.GoalsAgainst

	var result leaguestats.Result
	switch {
	case scored > conceded:
		next.Wins++
		next.Points += rule.Win
		result = leaguestats.ResultWin
	case scored < conceded:
		next.Losses++
		next.Points += rule.Loss
		result = leaguestats.ResultLoss
	default:
		next.Draws++
		next.Points += rule.Draw
		result = leaguestats.ResultDraw
	}
	next.Form = leaguestats.AppendForm(row.Form, result)
	return next
}

// rank orders rows by points, then each tie-break rule, then name and id.
func (t *standingTable) rank(rules []season.TieBreaker, matches []match.Match) []leaguestats.TeamStanding {
	keys := make(map[string][]int, len(t.order))
	for _, id := range t.order {
		acc := t.rows[id]
		acc.row.GoalDifference = acc.row.GoalsFor - acc.row.GoalsAgainst
		keys[id] = []int{acc.row.Points}
	}

	for _, rule := range rules {
		switch rule {
		case season.TieBreakerGoalDifference:
			for _, id := range t.order {
				keys[id] = append(keys[id], t.rows[id].row.GoalDifference)
			}
		case season.TieBreakerGoalsFor:
			for _, id := range t.order {
				keys[id] = append(keys[id], t.rows[id].row.GoalsFor)
			}
		case season.TieBreakerAwayGoals:
			for _, id := range t.order {
				keys[id] = append(keys[id], t.rows[id].awayGoals)
			}
		case season.TieBreakerHeadToHead:
			t.appendHeadToHead(keys, matches)
		}
	}

	ids := make([]string, len(t.order))
	copy(ids, t.order)
	sort.SliceStable(ids, func(i, j int) bool {
		if c := compareKeys(keys[ids[i]], keys[ids[j]]); c != 0 {
			return c > 0
		}
		a, b := t.rows[ids[i]].row, t.rows[ids[j]].row
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.TeamID < b.TeamID
	})

	out := make([]leaguestats.TeamStanding, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id].row)
	}
	return out
}

// appendHeadToHead groups teams level on every key so far and ranks each
// group on a mini table of the matches played among its members: mini points
// first, then mini goal difference.
func (t *standingTable) appendHeadToHead(keys map[string][]int, matches []match.Match) {
	groups := make(map[string][]string)
	for _, id := range t.order {
		sig := fmt.Sprint(keys[id])
		groups[sig] = append(groups[sig], id)
	}

	miniPoints := make(map[string]int, len(t.order))
	miniDiff := make(map[string]int, len(t.order))
	for _, members := range groups {
		if len(members) < 2 {
			continue
		}
		inGroup := make(map[string]struct{}, len(members))
		for _, id := range members {
			inGroup[id] = struct{}{}
		}
		for _, m := range matches {
			_, homeIn := inGroup[m.HomeTeamID]
			_, awayIn := inGroup[m.AwayTeamID]
			if !homeIn || !awayIn {
				continue
			}
			home := t.rows[m.HomeTeamID].rule
			away := t.rows[m.AwayTeamID].rule
			miniDiff[m.HomeTeamID] += m.HomeScore - m.AwayScore
			miniDiff[m.AwayTeamID] += m.AwayScore - m.HomeScore
			switch {
			case m.HomeScore > m.AwayScore:
				miniPoints[m.HomeTeamID] += home.Win
				miniPoints[m.AwayTeamID] += away.Loss
			case m.HomeScore < m.AwayScore:
				miniPoints[m.HomeTeamID] += home.Loss
				miniPoints[m.AwayTeamID] += away.Win
			default:
				miniPoints[m.HomeTeamID] += home.Draw
				miniPoints[m.AwayTeamID] += away.Draw
			}
		}
	}

	for _, id := range t.order {
		keys[id] = append(keys[id], miniPoints[id], miniDiff[id])
	}
}

func compareKeys(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}
