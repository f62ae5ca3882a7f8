package postgres

import (
	"database/sql"
	"time"
)

type leagueTableModel struct {
	PublicID      string `db:"public_id"`
	Name          string `db:"name"`
	CountryCode   string `db:"country_code"`
	PointsPerWin  int    `db:"points_per_win"`
	PointsPerDraw int    `db:"points_per_draw"`
	PointsPerLoss int    `db:"points_per_loss"`
}

type seasonTableModel struct {
	PublicID            string        `db:"public_id"`
	LeagueID            string        `db:"league_public_id"`
	Name                string        `db:"name"`
	PointsPerWin        sql.NullInt64 `db:"points_per_win"`
	PointsPerDraw       sql.NullInt64 `db:"points_per_draw"`
	PointsPerLoss       sql.NullInt64 `db:"points_per_loss"`
	PrimaryTieBreaker   string        `db:"primary_tie_breaker"`
	SecondaryTieBreaker string        `db:"secondary_tie_breaker"`
	StartDate           sql.NullTime  `db:"start_date"`
	EndDate             sql.NullTime  `db:"end_date"`
}

type teamTableModel struct {
	PublicID string `db:"public_id"`
	LeagueID string `db:"league_public_id"`
	Name     string `db:"name"`
	Short    string `db:"short"`
}

type playerTableModel struct {
	PublicID     string `db:"public_id"`
	TeamID       string `db:"team_public_id"`
	LeagueID     string `db:"league_public_id"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	Position     string `db:"position"`
	IsGoalkeeper bool   `db:"is_goalkeeper"`
}

type matchTableModel struct {
	PublicID       string    `db:"public_id"`
	SeasonID       string    `db:"season_public_id"`
	HomeTeamID     string    `db:"home_team_public_id"`
	AwayTeamID     string    `db:"away_team_public_id"`
	KickoffAt      time.Time `db:"kickoff_at"`
	HomeScore      int       `db:"home_score"`
	AwayScore      int       `db:"away_score"`
	Status         string    `db:"status"`
	HomeCleanSheet bool      `db:"home_clean_sheet"`
	AwayCleanSheet bool      `db:"away_clean_sheet"`
}

type matchEventTableModel struct {
	PublicID        string `db:"public_id"`
	MatchID         string `db:"match_public_id"`
	EventType       string `db:"event_type"`
	PlayerID        string `db:"player_public_id"`
	RelatedPlayerID string `db:"related_player_public_id"`
	TeamID          string `db:"team_public_id"`
	Minute          int    `db:"minute"`
	IsOwnGoal       bool   `db:"is_own_goal"`
	IsPenalty       bool   `db:"is_penalty"`
}

var (
	leagueColumns = []string{"public_id", "name", "country_code", "points_per_win", "points_per_draw", "points_per_loss"}
	seasonColumns = []string{
		"public_id", "league_public_id", "name", "points_per_win", "points_per_draw", "points_per_loss",
		"primary_tie_breaker", "secondary_tie_breaker", "start_date", "end_date",
	}
	teamColumns   = []string{"public_id", "league_public_id", "name", "short"}
	playerColumns = []string{
		"public_id", "team_public_id", "league_public_id", "first_name", "last_name", "position", "is_goalkeeper",
	}
	matchColumns = []string{
		"public_id", "season_public_id", "home_team_public_id", "away_team_public_id", "kickoff_at",
		"home_score", "away_score", "status", "home_clean_sheet", "away_clean_sheet",
	}
	matchEventColumns = []string{
		"e.public_id", "e.match_public_id", "e.event_type", "e.player_public_id", "e.related_player_public_id",
		"e.team_public_id", "e.minute", "e.is_own_goal", "e.is_penalty",
	}
)
