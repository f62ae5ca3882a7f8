package usecase

import (
	"time"

	"github.com/riskibarqy/league-stats/internal/domain/league"
	"github.com/riskibarqy/league-stats/internal/domain/match"
	"github.com/riskibarqy/league-stats/internal/domain/player"
	"github.com/riskibarqy/league-stats/internal/domain/season"
	"github.com/riskibarqy/league-stats/internal/domain/team"
	"github.com/riskibarqy/league-stats/internal/infrastructure/repository/memory"
)

const (
	testLeagueID = "league-1"
	testSeasonID = "season-1"
)

func day(d int) time.Time {
	return time.Date(2025, 3, d, 15, 0, 0, 0, time.UTC)
}

func completed(id, homeID, awayID string, home, away int, kickoff time.Time) match.Match {
	return match.Match{
		ID:         id,
		SeasonID:   testSeasonID,
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		KickoffAt:  kickoff,
		HomeScore:  home,
		AwayScore:  away,
		Status:     match.StatusCompleted,
	}
}

func testPlayer(id, teamID, first, last string, position player.Position) player.Player {
	return player.Player{
		ID:           id,
		TeamID:       teamID,
		LeagueID:     testLeagueID,
		FirstName:    first,
		LastName:     last,
		Position:     position,
		IsGoalkeeper: position == player.PositionGoalkeeper,
	}
}

func leagueDataset(teams []team.Team, matches []match.Match) memory.Dataset {
	return memory.Dataset{
		Leagues: []league.League{league.New(testLeagueID, "Test League")},
		Seasons: []season.Season{{ID: testSeasonID, LeagueID: testLeagueID, Name: "2025"}},
		Teams:   teams,
		Matches: matches,
	}
}

// baseDataset: Alpha beat Bravo 2-1, then drew 0-0 away at Bravo. Charlie has
// not played. A scheduled match must be ignored everywhere.
func baseDataset() memory.Dataset {
	data := leagueDataset(
		[]team.Team{
			{ID: "team-a", LeagueID: testLeagueID, Name: "Alpha"},
			{ID: "team-b", LeagueID: testLeagueID, Name: "Bravo"},
			{ID: "team-c", LeagueID: testLeagueID, Name: "Charlie"},
		},
		[]match.Match{
			completed("m1", "team-a", "team-b", 2, 1, day(1)),
			completed("m2", "team-b", "team-a", 0, 0, day(8)),
			{ID: "m3", SeasonID: testSeasonID, HomeTeamID: "team-a", AwayTeamID: "team-c", KickoffAt: day(15), Status: match.StatusScheduled},
		},
	)

	b := testPlayer("b-gk", "team-b", "Dodi", "Gloves", player.PositionGoalkeeper)
	b.IsGoalkeeper = false
	data.Players = []player.Player{
		testPlayer("a-gk", "team-a", "Ari", "Keeper", player.PositionGoalkeeper),
		testPlayer("a-fw", "team-a", "Bima", "Striker", player.PositionForward),
		testPlayer("a-mf", "team-a", "Cahya", "Mid", player.PositionMidfielder),
		b,
		testPlayer("b-fw", "team-b", "Eko", "Forward", player.PositionForward),
		testPlayer("c-gk", "team-c", "Fajar", "Wall", player.PositionGoalkeeper),
	}

	data.Events = []match.Event{
		{ID: "e01", MatchID: "m1", Type: match.EventGoal, PlayerID: "a-fw", TeamID: "team-a", Minute: 10},
		{ID: "e02", MatchID: "m1", Type: match.EventAssist, PlayerID: "a-mf", RelatedPlayerID: "a-fw", TeamID: "team-a", Minute: 10},
		{ID: "e03", MatchID: "m1", Type: match.EventPenaltyGoal, PlayerID: "b-fw", TeamID: "team-b", Minute: 30, IsPenalty: true},
		{ID: "e04", MatchID: "m1", Type: match.EventOwnGoal, PlayerID: "b-fw", TeamID: "team-b", Minute: 60, IsOwnGoal: true},
		{ID: "e05", MatchID: "m1", Type: match.EventGoal, PlayerID: "b-fw", TeamID: "team-b", Minute: 70, IsOwnGoal: true},

		{ID: "e10", MatchID: "m1", Type: match.EventYellowCard, PlayerID: "a-mf", TeamID: "team-a", Minute: 20},
		{ID: "e11", MatchID: "m2", Type: match.EventYellowCard, PlayerID: "a-mf", TeamID: "team-a", Minute: 25},
		{ID: "e12", MatchID: "m2", Type: match.EventYellowCard, PlayerID: "b-fw", TeamID: "team-b", Minute: 40},
		{ID: "e13", MatchID: "m2", Type: match.EventYellowCard, PlayerID: "b-fw", TeamID: "team-b", Minute: 70},
		{ID: "e14", MatchID: "m2", Type: match.EventSecondYellow, PlayerID: "b-fw", TeamID: "team-b", Minute: 70},
		{ID: "e15", MatchID: "m2", Type: match.EventRedCard, PlayerID: "a-fw", TeamID: "team-a", Minute: 89},

		{ID: "e22", MatchID: "m1", Type: match.EventAssist, PlayerID: "a-fw", TeamID: "team-a", Minute: 60},
		{ID: "e21", MatchID: "m2", Type: match.EventYellowCard, PlayerID: "a-fw", TeamID: "team-b", Minute: 50},
		{ID: "e20", MatchID: "m2", Type: match.EventYellowCard, PlayerID: "ghost", TeamID: "team-b", Minute: 50},

		{ID: "e30", MatchID: "m3", Type: match.EventYellowCard, PlayerID: "a-fw", TeamID: "team-a", Minute: 5},
	}

	return data
}

func intPtr(v int) *int {
	return &v
}
