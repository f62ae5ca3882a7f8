package memory

import (
	"time"

	"github.com/riskibarqy/league-stats/internal/domain/league"
	"github.com/riskibarqy/league-stats/internal/domain/match"
	"github.com/riskibarqy/league-stats/internal/domain/player"
	"github.com/riskibarqy/league-stats/internal/domain/season"
	"github.com/riskibarqy/league-stats/internal/domain/team"
)

const (
	LeagueIDLiga1Indonesia     = "idn-liga-1"
	SeasonIDLiga1Indonesia2025 = "idn-liga-1-2025"
)

// SeedDataset is the demo snapshot served when no dataset file is configured.
func SeedDataset() Dataset {
	return Dataset{
		Leagues: []league.League{
			{
				ID:            LeagueIDLiga1Indonesia,
				Name:          "Liga 1 Indonesia",
				CountryCode:   "ID",
				PointsPerWin:  league.DefaultPointsPerWin,
				PointsPerDraw: league.DefaultPointsPerDraw,
				PointsPerLoss: league.DefaultPointsPerLoss,
			},
		},
		Seasons: []season.Season{
			{
				ID:                  SeasonIDLiga1Indonesia2025,
				LeagueID:            LeagueIDLiga1Indonesia,
				Name:                "2025/2026",
				PrimaryTieBreaker:   season.TieBreakerGoalDifference,
				SecondaryTieBreaker: season.TieBreakerHeadToHead,
				StartDate:           time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
				EndDate:             time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC),
			},
		},
		Teams:   seedTeams(),
		Players: seedPlayers(),
		Matches: seedMatches(),
		Events:  seedEvents(),
	}
}

func seedTeams() []team.Team {
	return []team.Team{
		{ID: "idn-persija", LeagueID: LeagueIDLiga1Indonesia, Name: "Persija Jakarta", Short: "PSJ"},
		{ID: "idn-persib", LeagueID: LeagueIDLiga1Indonesia, Name: "Persib Bandung", Short: "PSB"},
		{ID: "idn-persebaya", LeagueID: LeagueIDLiga1Indonesia, Name: "Persebaya Surabaya", Short: "PRB"},
		{ID: "idn-baliutd", LeagueID: LeagueIDLiga1Indonesia, Name: "Bali United", Short: "BU"},
	}
}

func seedPlayers() []player.Player {
	gk := func(id, teamID, first, last string) player.Player {
		return player.Player{ID: id, TeamID: teamID, LeagueID: LeagueIDLiga1Indonesia, FirstName: first, LastName: last, Position: player.PositionGoalkeeper, IsGoalkeeper: true}
	}
	outfield := func(id, teamID, first, last string, position player.Position) player.Player {
		return player.Player{ID: id, TeamID: teamID, LeagueID: LeagueIDLiga1Indonesia, FirstName: first, LastName: last, Position: position}
	}

	return []player.Player{
		gk("idn-gk-01", "idn-persija", "Andritany", "Ardhiyasa"),
		gk("idn-gk-02", "idn-persib", "Teja", "Paku Alam"),
		gk("idn-gk-03", "idn-persebaya", "Ernando", "Ari"),
		gk("idn-gk-04", "idn-baliutd", "Adilson", "Maringa"),
		outfield("idn-def-01", "idn-persija", "Hansamu", "Yama", player.PositionDefender),
		outfield("idn-def-02", "idn-persib", "Nick", "Kuipers", player.PositionDefender),
		outfield("idn-def-03", "idn-persebaya", "Dusan", "Stevanovic", player.PositionDefender),
		outfield("idn-def-04", "idn-baliutd", "Ricky", "Fajrin", player.PositionDefender),
		outfield("idn-mid-01", "idn-persija", "Maciej", "Gajos", player.PositionMidfielder),
		outfield("idn-mid-02", "idn-persib", "Marc", "Klok", player.PositionMidfielder),
		outfield("idn-mid-03", "idn-persebaya", "Bruno", "Moreira", player.PositionMidfielder),
		outfield("idn-mid-04", "idn-baliutd", "Eber", "Bessa", player.PositionMidfielder),
		outfield("idn-fwd-01", "idn-persija", "Gustavo", "Almeida", player.PositionForward),
		outfield("idn-fwd-02", "idn-persib", "David", "da Silva", player.PositionForward),
		outfield("idn-fwd-03", "idn-persebaya", "Paulo", "Henrique", player.PositionForward),
	}
}

func seedMatches() []match.Match {
	kickoff := func(month time.Month, day int) time.Time {
		return time.Date(2025, month, day, 12, 30, 0, 0, time.UTC)
	}

	return []match.Match{
		{ID: "mt-idn-001", SeasonID: SeasonIDLiga1Indonesia2025, HomeTeamID: "idn-persija", AwayTeamID: "idn-persib", KickoffAt: kickoff(8, 9), HomeScore: 2, AwayScore: 1, Status: match.StatusCompleted},
		{ID: "mt-idn-002", SeasonID: SeasonIDLiga1Indonesia2025, HomeTeamID: "idn-persebaya", AwayTeamID: "idn-baliutd", KickoffAt: kickoff(8, 10), HomeScore: 0, AwayScore: 0, Status: match.StatusCompleted},
		{ID: "mt-idn-003", SeasonID: SeasonIDLiga1Indonesia2025, HomeTeamID: "idn-persib", AwayTeamID: "idn-persebaya", KickoffAt: kickoff(8, 16), HomeScore: 3, AwayScore: 0, Status: match.StatusCompleted},
		{ID: "mt-idn-004", SeasonID: SeasonIDLiga1Indonesia2025, HomeTeamID: "idn-baliutd", AwayTeamID: "idn-persija", KickoffAt: kickoff(8, 17), HomeScore: 1, AwayScore: 1, Status: match.StatusCompleted},
		{ID: "mt-idn-005", SeasonID: SeasonIDLiga1Indonesia2025, HomeTeamID: "idn-persija", AwayTeamID: "idn-persebaya", KickoffAt: kickoff(8, 23), Status: match.StatusScheduled},
		{ID: "mt-idn-006", SeasonID: SeasonIDLiga1Indonesia2025, HomeTeamID: "idn-persib", AwayTeamID: "idn-baliutd", KickoffAt: kickoff(8, 24), Status: match.StatusPostponed},
	}
}

func seedEvents() []match.Event {
	return []match.Event{
		{ID: "ev-001", MatchID: "mt-idn-001", Type: match.EventGoal, PlayerID: "idn-fwd-01", TeamID: "idn-persija", Minute: 12},
		{ID: "ev-002", MatchID: "mt-idn-001", Type: match.EventAssist, PlayerID: "idn-mid-01", RelatedPlayerID: "idn-fwd-01", TeamID: "idn-persija", Minute: 12},
		{ID: "ev-003", MatchID: "mt-idn-001", Type: match.EventPenaltyGoal, PlayerID: "idn-fwd-02", TeamID: "idn-persib", Minute: 40, IsPenalty: true},
		{ID: "ev-004", MatchID: "mt-idn-001", Type: match.EventGoal, PlayerID: "idn-fwd-01", TeamID: "idn-persija", Minute: 77},
		{ID: "ev-005", MatchID: "mt-idn-001", Type: match.EventYellowCard, PlayerID: "idn-def-02", TeamID: "idn-persib", Minute: 30},
		{ID: "ev-006", MatchID: "mt-idn-001", Type: match.EventYellowCard, PlayerID: "idn-def-02", TeamID: "idn-persib", Minute: 81},
		{ID: "ev-007", MatchID: "mt-idn-001", Type: match.EventSecondYellow, PlayerID: "idn-def-02", TeamID: "idn-persib", Minute: 81},
		{ID: "ev-008", MatchID: "mt-idn-002", Type: match.EventYellowCard, PlayerID: "idn-mid-04", TeamID: "idn-baliutd", Minute: 55},
		{ID: "ev-009", MatchID: "mt-idn-003", Type: match.EventGoal, PlayerID: "idn-fwd-02", TeamID: "idn-persib", Minute: 8},
		{ID: "ev-010", MatchID: "mt-idn-003", Type: match.EventAssist, PlayerID: "idn-mid-02", RelatedPlayerID: "idn-fwd-02", TeamID: "idn-persib", Minute: 8},
		{ID: "ev-011", MatchID: "mt-idn-003", Type: match.EventGoal, PlayerID: "idn-mid-02", TeamID: "idn-persib", Minute: 51},
		{ID: "ev-012", MatchID: "mt-idn-003", Type: match.EventOwnGoal, PlayerID: "idn-def-03", TeamID: "idn-persebaya", Minute: 70, IsOwnGoal: true},
		{ID: "ev-013", MatchID: "mt-idn-003", Type: match.EventRedCard, PlayerID: "idn-mid-03", TeamID: "idn-persebaya", Minute: 88},
		{ID: "ev-014", MatchID: "mt-idn-004", Type: match.EventGoal, PlayerID: "idn-mid-04", TeamID: "idn-baliutd", Minute: 33},
		{ID: "ev-015", MatchID: "mt-idn-004", Type: match.EventGoal, PlayerID: "idn-mid-01", TeamID: "idn-persija", Minute: 64},
		{ID: "ev-016", MatchID: "mt-idn-004", Type: match.EventAssist, PlayerID: "idn-fwd-01", TeamID: "idn-persija", Minute: 64},
	}
}
