package memory

import (
	"fmt"
	"os"
	"time"

	"github.com/riskibarqy/league-stats/internal/domain/league"
	"github.com/riskibarqy/league-stats/internal/domain/match"
	"github.com/riskibarqy/league-stats/internal/domain/player"
	"github.com/riskibarqy/league-stats/internal/domain/season"
	"github.com/riskibarqy/league-stats/internal/domain/team"
	"gopkg.in/yaml.v3"
)

type datasetFile struct {
	Leagues []leagueDoc `yaml:"leagues"`
	Seasons []seasonDoc `yaml:"seasons"`
	Teams   []teamDoc   `yaml:"teams"`
	Players []playerDoc `yaml:"players"`
	Matches []matchDoc  `yaml:"matches"`
	Events  []eventDoc  `yaml:"events"`
}

type leagueDoc struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	CountryCode   string `yaml:"country_code"`
	PointsPerWin  *int   `yaml:"points_per_win"`
	PointsPerDraw *int   `yaml:"points_per_draw"`
	PointsPerLoss *int   `yaml:"points_per_loss"`
}

type seasonDoc struct {
	ID                  string    `yaml:"id"`
	LeagueID            string    `yaml:"league_id"`
	Name                string    `yaml:"name"`
	PointsPerWin        *int      `yaml:"points_per_win"`
	PointsPerDraw       *int      `yaml:"points_per_draw"`
	PointsPerLoss       *int      `yaml:"points_per_loss"`
	PrimaryTieBreaker   string    `yaml:"primary_tie_breaker"`
	SecondaryTieBreaker string    `yaml:"secondary_tie_breaker"`
	StartDate           time.Time `yaml:"start_date"`
	EndDate             time.Time `yaml:"end_date"`
}

type teamDoc struct {
	ID       string `yaml:"id"`
	LeagueID string `yaml:"league_id"`
	Name     string `yaml:"name"`
	Short    string `yaml:"short"`
}

type playerDoc struct {
	ID           string `yaml:"id"`
	TeamID       string `yaml:"team_id"`
	FirstName    string `yaml:"first_name"`
	LastName     string `yaml:"last_name"`
	Position     string `yaml:"position"`
	IsGoalkeeper bool   `yaml:"is_goalkeeper"`
}

type matchDoc struct {
	ID         string    `yaml:"id"`
	SeasonID   string    `yaml:"season_id"`
	HomeTeamID string    `yaml:"home_team_id"`
	AwayTeamID string    `yaml:"away_team_id"`
	KickoffAt  time.Time `yaml:"kickoff_at"`
	HomeScore  int       `yaml:"home_score"`
	AwayScore  int       `yaml:"away_score"`
	Status     string    `yaml:"status"`
}

type eventDoc struct {
	ID              string `yaml:"id"`
	MatchID         string `yaml:"match_id"`
	Type            string `yaml:"type"`
	PlayerID        string `yaml:"player_id"`
	RelatedPlayerID string `yaml:"related_player_id"`
	TeamID          string `yaml:"team_id"`
	Minute          int    `yaml:"minute"`
	IsOwnGoal       bool   `yaml:"is_own_goal"`
	IsPenalty       bool   `yaml:"is_penalty"`
}

// LoadDataset reads a YAML dataset from disk.
func LoadDataset(path string) (Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset file: %w", err)
	}
	return ParseDataset(raw)
}

// ParseDataset decodes and validates a YAML dataset. League points left out
// of the document default to 3/1/0.
func ParseDataset(raw []byte) (Dataset, error) {
	var doc datasetFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Dataset{}, fmt.Errorf("decode dataset: %w", err)
	}

	var out Dataset
	for _, item := range doc.Leagues {
		lg := league.New(item.ID, item.Name)
		lg.CountryCode = item.CountryCode
		if item.PointsPerWin != nil {
			lg.PointsPerWin = *item.PointsPerWin
		}
		if item.PointsPerDraw != nil {
			lg.PointsPerDraw = *item.PointsPerDraw
		}
		if item.PointsPerLoss != nil {
			lg.PointsPerLoss = *item.PointsPerLoss
		}
		if err := lg.Validate(); err != nil {
			return Dataset{}, fmt.Errorf("league %q: %w", item.ID, err)
		}
		out.Leagues = append(out.Leagues, lg)
	}

	for _, item := range doc.Seasons {
		s := season.Season{
			ID:                  item.ID,
			LeagueID:            item.LeagueID,
			Name:                item.Name,
			PointsPerWin:        item.PointsPerWin,
			PointsPerDraw:       item.PointsPerDraw,
			PointsPerLoss:       item.PointsPerLoss,
			PrimaryTieBreaker:   season.TieBreaker(item.PrimaryTieBreaker),
			SecondaryTieBreaker: season.TieBreaker(item.SecondaryTieBreaker),
			StartDate:           item.StartDate,
			EndDate:             item.EndDate,
		}
		if err := s.Validate(); err != nil {
			return Dataset{}, fmt.Errorf("season %q: %w", item.ID, err)
		}
		out.Seasons = append(out.Seasons, s)
	}

	teamLeague := make(map[string]string, len(doc.Teams))
	for _, item := range doc.Teams {
		t := team.Team{ID: item.ID, LeagueID: item.LeagueID, Name: item.Name, Short: item.Short}
		if err := t.Validate(); err != nil {
			return Dataset{}, fmt.Errorf("team %q: %w", item.ID, err)
		}
		teamLeague[t.ID] = t.LeagueID
		out.Teams = append(out.Teams, t)
	}

	for _, item := range doc.Players {
		p := player.Player{
			ID:        item.ID,
			TeamID:    item.TeamID,
			LeagueID:  teamLeague[item.TeamID],
			FirstName: item.FirstName,
			LastName:  item.LastName,
			Position:  player.Position(item.Position),
		}
		p.IsGoalkeeper = item.IsGoalkeeper || p.Position == player.PositionGoalkeeper
		if err := p.Validate(); err != nil {
			return Dataset{}, fmt.Errorf("player %q: %w", item.ID, err)
		}
		out.Players = append(out.Players, p)
	}

	for _, item := range doc.Matches {
		m := match.Match{
			ID:         item.ID,
			SeasonID:   item.SeasonID,
			HomeTeamID: item.HomeTeamID,
			AwayTeamID: item.AwayTeamID,
			KickoffAt:  item.KickoffAt,
			HomeScore:  item.HomeScore,
			AwayScore:  item.AwayScore,
			Status:     match.NormalizeStatus(item.Status),
		}
		if err := m.Validate(); err != nil {
			return Dataset{}, fmt.Errorf("match %q: %w", item.ID, err)
		}
		out.Matches = append(out.Matches, m)
	}

	for _, item := range doc.Events {
		if item.ID == "" || item.MatchID == "" {
			return Dataset{}, fmt.Errorf("event requires id and match_id")
		}
		eventType := match.NormalizeEventType(item.Type)
		out.Events = append(out.Events, match.Event{
			ID:              item.ID,
			MatchID:         item.MatchID,
			Type:            eventType,
			PlayerID:        item.PlayerID,
			RelatedPlayerID: item.RelatedPlayerID,
			TeamID:          item.TeamID,
			Minute:          item.Minute,
			IsOwnGoal:       item.IsOwnGoal || eventType == match.EventOwnGoal,
			IsPenalty:       item.IsPenalty || eventType == match.EventPenaltyGoal,
		})
	}

	return out, nil
}
