package leaguestats

import "time"

// Result is one entry of a team's form guide.
type Result string

const (
	ResultWin  Result = "W"
	ResultDraw Result = "D"
	ResultLoss Result = "L"
)

// TeamStanding is a league table row.
type TeamStanding struct {
	TeamID         string   `json:"teamId"`
	Name           string   `json:"name"`
	MatchesPlayed  int      `json:"matchesPlayed"`
	Wins           int      `json:"wins"`
	Draws          int      `json:"draws"`
	Losses         int      `json:"losses"`
	GoalsFor       int      `json:"goalsFor"`
	GoalsAgainst   int      `json:"goalsAgainst"`
	GoalDifference int      `json:"goalDifference"`
	Points         int      `json:"points"`
	Form           []Result `json:"form"`
}

type PlayerLeaderboardEntry struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	TeamName string `json:"teamName"`
	Count    int    `json:"count"`
}

type TeamCleanSheetStat struct {
	TeamID               string  `json:"teamId"`
	Name                 string  `json:"name"`
	CleanSheets          int     `json:"cleanSheets"`
	MatchesPlayed        int     `json:"matchesPlayed"`
	CleanSheetPercentage float64 `json:"cleanSheetPercentage"`
}

// GoalkeeperCleanSheetStat attributes every match of the keeper's team to
// the keeper; there is no lineup awareness.
type GoalkeeperCleanSheetStat struct {
	PlayerID      string `json:"playerId"`
	Name          string `json:"name"`
	TeamName      string `json:"teamName"`
	CleanSheets   int    `json:"cleanSheets"`
	MatchesPlayed int    `json:"matchesPlayed"`
	GoalsAgainst  int    `json:"goalsAgainst"`
}

type PlayerDisciplinaryStat struct {
	PlayerID        string `json:"playerId"`
	Name            string `json:"name"`
	TeamName        string `json:"teamName"`
	YellowCards     int    `json:"yellowCards"`
	RedCards        int    `json:"redCards"`
	TotalCards      int    `json:"totalCards"`
	SuspensionGames int    `json:"suspensionGames"`
}

type TeamDisciplinaryStat struct {
	TeamID         string  `json:"teamId"`
	Name           string  `json:"name"`
	YellowCards    int     `json:"yellowCards"`
	RedCards       int     `json:"redCards"`
	TotalCards     int     `json:"totalCards"`
	FairPlayRating float64 `json:"fairPlayRating"`
}

// WarningReason names why an event was left out of an aggregation.
type WarningReason string

const (
	ReasonUnknownPlayer        WarningReason = "unknown_player"
	ReasonPlayerNotOnTeam      WarningReason = "player_not_on_team"
	ReasonMissingRelatedPlayer WarningReason = "missing_related_player"
)

// IntegrityWarning reports one skipped event. It is never an error.
type IntegrityWarning struct {
	EventID  string        `json:"eventId"`
	MatchID  string        `json:"matchId"`
	PlayerID string        `json:"playerId,omitempty"`
	Reason   WarningReason `json:"reason"`
}

type Standings struct {
	SeasonID string         `json:"seasonId"`
	Rows     []TeamStanding `json:"rows"`
}

// Leaderboard is a ranked goal or assist table plus the events skipped while
// building it.
type Leaderboard struct {
	SeasonID        string                   `json:"seasonId"`
	Entries         []PlayerLeaderboardEntry `json:"entries"`
	SkippedEventIDs []string                 `json:"skippedEventIds"`
	Warnings        []IntegrityWarning       `json:"warnings"`
}

type TeamCleanSheets struct {
	SeasonID string               `json:"seasonId"`
	Rows     []TeamCleanSheetStat `json:"rows"`
}

type GoalkeeperCleanSheets struct {
	SeasonID string                     `json:"seasonId"`
	Rows     []GoalkeeperCleanSheetStat `json:"rows"`
}

type PlayerDiscipline struct {
	SeasonID        string                   `json:"seasonId"`
	Rows            []PlayerDisciplinaryStat `json:"rows"`
	SkippedEventIDs []string                 `json:"skippedEventIds"`
	Warnings        []IntegrityWarning       `json:"warnings"`
}

type TeamDiscipline struct {
	SeasonID        string                 `json:"seasonId"`
	Rows            []TeamDisciplinaryStat `json:"rows"`
	SkippedEventIDs []string               `json:"skippedEventIds"`
	Warnings        []IntegrityWarning     `json:"warnings"`
}

// SeasonReport bundles every read output for one season.
type SeasonReport struct {
	SeasonID              string                `json:"seasonId"`
	GeneratedAt           time.Time             `json:"generatedAt"`
	Standings             Standings             `json:"standings"`
	TopScorers            Leaderboard           `json:"topScorers"`
	TopAssists            Leaderboard           `json:"topAssists"`
	TeamCleanSheets       TeamCleanSheets       `json:"teamCleanSheets"`
	GoalkeeperCleanSheets GoalkeeperCleanSheets `json:"goalkeeperCleanSheets"`
	PlayerDiscipline      PlayerDiscipline      `json:"playerDiscipline"`
	TeamDiscipline        TeamDiscipline        `json:"teamDiscipline"`
}
