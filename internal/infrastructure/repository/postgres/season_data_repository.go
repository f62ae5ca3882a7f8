package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/league-stats/internal/domain/league"
	"github.com/riskibarqy/league-stats/internal/domain/match"
	"github.com/riskibarqy/league-stats/internal/domain/player"
	"github.com/riskibarqy/league-stats/internal/domain/season"
	"github.com/riskibarqy/league-stats/internal/domain/team"
	qb "github.com/riskibarqy/league-stats/internal/platform/querybuilder"
)

// SeasonDataRepository serves season snapshots from the league-stats schema.
type SeasonDataRepository struct {
	db *sqlx.DB
}

func NewSeasonDataRepository(db *sqlx.DB) *SeasonDataRepository {
	return &SeasonDataRepository{db: db}
}

func (r *SeasonDataRepository) GetSeason(ctx context.Context, seasonID string) (season.Season, bool, error) {
	query, args, err := qb.Select(seasonColumns...).From("seasons").
		Where(qb.Eq("public_id", seasonID), qb.Expr(notDeleted)).
		ToSQL()
	if err != nil {
		return season.Season{}, false, crerr.Wrap(err, "build get season query")
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, crerr.Wrapf(err, "get season %s", seasonID)
	}
	return seasonFromRow(row), true, nil
}

func (r *SeasonDataRepository) GetLeague(ctx context.Context, leagueID string) (league.League, bool, error) {
	query, args, err := qb.Select(leagueColumns...).From("leagues").
		Where(qb.Eq("public_id", leagueID), qb.Expr(notDeleted)).
		ToSQL()
	if err != nil {
		return league.League{}, false, crerr.Wrap(err, "build get league query")
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, crerr.Wrapf(err, "get league %s", leagueID)
	}
	return leagueFromRow(row), true, nil
}

func (r *SeasonDataRepository) ListCompletedMatches(ctx context.Context, seasonID string) ([]match.Match, error) {
	query, args, err := completedMatchesQuery(seasonID)
	if err != nil {
		return nil, crerr.Wrap(err, "build list completed matches query")
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "list completed matches of season %s", seasonID)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *SeasonDataRepository) GetMatch(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").
		Where(qb.Eq("public_id", matchID), qb.Expr(notDeleted)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, crerr.Wrap(err, "build get match query")
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, crerr.Wrapf(err, "get match %s", matchID)
	}
	return matchFromRow(row), true, nil
}

func (r *SeasonDataRepository) ListEvents(ctx context.Context, seasonID string, types []match.EventType) ([]match.Event, error) {
	query, args, err := seasonEventsQuery(seasonID, types)
	if err != nil {
		return nil, crerr.Wrap(err, "build list season events query")
	}
	events, err := r.selectEvents(ctx, query, args)
	if err != nil {
		return nil, crerr.Wrapf(err, "list events of season %s", seasonID)
	}
	return events, nil
}

func (r *SeasonDataRepository) ListMatchEvents(ctx context.Context, matchID string, types []match.EventType) ([]match.Event, error) {
	query, args, err := matchEventsQuery(matchID, types)
	if err != nil {
		return nil, crerr.Wrap(err, "build list match events query")
	}
	events, err := r.selectEvents(ctx, query, args)
	if err != nil {
		return nil, crerr.Wrapf(err, "list events of match %s", matchID)
	}
	return events, nil
}

func (r *SeasonDataRepository) selectEvents(ctx context.Context, query string, args []any) ([]match.Event, error) {
	var rows []matchEventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	out := make([]match.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, eventFromRow(row))
	}
	return out, nil
}

func (r *SeasonDataRepository) ListTeams(ctx context.Context, leagueID string) ([]team.Team, error) {
	query, args, err := qb.Select(teamColumns...).From("teams").
		Where(qb.Eq("league_public_id", leagueID), qb.Expr(notDeleted)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list teams query")
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "list teams of league %s", leagueID)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func (r *SeasonDataRepository) GetTeam(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns...).From("teams").
		Where(qb.Eq("public_id", teamID), qb.Expr(notDeleted)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, crerr.Wrap(err, "build get team query")
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, crerr.Wrapf(err, "get team %s", teamID)
	}
	return teamFromRow(row), true, nil
}

func (r *SeasonDataRepository) ListPlayers(ctx context.Context, leagueID string) ([]player.Player, error) {
	query, args, err := qb.Select(playerColumns...).From("players").
		Where(qb.Eq("league_public_id", leagueID), qb.Expr(notDeleted)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list players query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "list players of league %s", leagueID)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *SeasonDataRepository) GetPlayer(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerColumns...).From("players").
		Where(qb.Eq("public_id", playerID), qb.Expr(notDeleted)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, crerr.Wrap(err, "build get player query")
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, crerr.Wrapf(err, "get player %s", playerID)
	}
	return playerFromRow(row), true, nil
}

// UpdateMatchCleanSheetFlags is a single-row UPDATE; zero affected rows is
// not an error.
func (r *SeasonDataRepository) UpdateMatchCleanSheetFlags(ctx context.Context, matchID string, homeCleanSheet, awayCleanSheet bool) error {
	query, args, err := cleanSheetUpdateQuery(matchID, homeCleanSheet, awayCleanSheet)
	if err != nil {
		return crerr.Wrap(err, "build update clean sheet query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "update clean sheet flags of match %s", matchID)
	}
	return nil
}

func completedMatchesQuery(seasonID string) (string, []any, error) {
	return qb.Select(matchColumns...).From("matches").
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.Eq("status", string(match.StatusCompleted)),
			qb.Expr(notDeleted),
		).
		OrderBy("kickoff_at", "public_id").
		ToSQL()
}

func seasonEventsQuery(seasonID string, types []match.EventType) (string, []any, error) {
	return qb.Select(matchEventColumns...).From("match_events e").
		Join("JOIN matches m ON m.public_id = e.match_public_id").
		Where(
			qb.Eq("m.season_public_id", seasonID),
			qb.Eq("m.status", string(match.StatusCompleted)),
			qb.Expr("m.deleted_at IS NULL"),
			qb.Expr("e.deleted_at IS NULL"),
			eventTypeFilter(types),
		).
		OrderBy("m.kickoff_at", "m.public_id", "e.minute", "e.id").
		ToSQL()
}

func matchEventsQuery(matchID string, types []match.EventType) (string, []any, error) {
	return qb.Select(matchEventColumns...).From("match_events e").
		Where(
			qb.Eq("e.match_public_id", matchID),
			qb.Expr("e.deleted_at IS NULL"),
			eventTypeFilter(types),
		).
		OrderBy("e.minute", "e.id").
		ToSQL()
}

func eventTypeFilter(types []match.EventType) qb.Condition {
	if len(types) == 0 {
		return nil
	}
	return qb.Any("e.event_type", pq.Array(eventTypeStrings(types)))
}

func cleanSheetUpdateQuery(matchID string, homeCleanSheet, awayCleanSheet bool) (string, []any, error) {
	return qb.Update("matches").
		Set("home_clean_sheet", homeCleanSheet).
		Set("away_clean_sheet", awayCleanSheet).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", matchID), qb.Expr(notDeleted)).
		ToSQL()
}

func leagueFromRow(row leagueTableModel) league.League {
	return league.League{
		ID:            row.PublicID,
		Name:          row.Name,
		CountryCode:   row.CountryCode,
		PointsPerWin:  row.PointsPerWin,
		PointsPerDraw: row.PointsPerDraw,
		PointsPerLoss: row.PointsPerLoss,
	}
}

func seasonFromRow(row seasonTableModel) season.Season {
	return season.Season{
		ID:                  row.PublicID,
		LeagueID:            row.LeagueID,
		Name:                row.Name,
		PointsPerWin:        nullInt64ToIntPtr(row.PointsPerWin),
		PointsPerDraw:       nullInt64ToIntPtr(row.PointsPerDraw),
		PointsPerLoss:       nullInt64ToIntPtr(row.PointsPerLoss),
		PrimaryTieBreaker:   season.TieBreaker(row.PrimaryTieBreaker),
		SecondaryTieBreaker: season.TieBreaker(row.SecondaryTieBreaker),
		StartDate:           nullTimeToTime(row.StartDate),
		EndDate:             nullTimeToTime(row.EndDate),
	}
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:       row.PublicID,
		LeagueID: row.LeagueID,
		Name:     row.Name,
		Short:    row.Short,
	}
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:           row.PublicID,
		TeamID:       row.TeamID,
		LeagueID:     row.LeagueID,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Position:     player.Position(row.Position),
		IsGoalkeeper: row.IsGoalkeeper,
	}
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:             row.PublicID,
		SeasonID:       row.SeasonID,
		HomeTeamID:     row.HomeTeamID,
		AwayTeamID:     row.AwayTeamID,
		KickoffAt:      row.KickoffAt.UTC(),
		HomeScore:      row.HomeScore,
		AwayScore:      row.AwayScore,
		Status:         match.NormalizeStatus(row.Status),
		HomeCleanSheet: row.HomeCleanSheet,
		AwayCleanSheet: row.AwayCleanSheet,
	}
}

func eventFromRow(row matchEventTableModel) match.Event {
	eventType := match.NormalizeEventType(row.EventType)
	return match.Event{
		ID:              row.PublicID,
		MatchID:         row.MatchID,
		Type:            eventType,
		PlayerID:        row.PlayerID,
		RelatedPlayerID: row.RelatedPlayerID,
		TeamID:          row.TeamID,
		Minute:          row.Minute,
		IsOwnGoal:       row.IsOwnGoal || eventType == match.EventOwnGoal,
		IsPenalty:       row.IsPenalty || eventType == match.EventPenaltyGoal,
	}
}
