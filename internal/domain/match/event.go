package match

import "strings"

// EventType classifies something that happened during a match.
type EventType string

const (
	EventGoal            EventType = "goal"
	EventPenaltyGoal     EventType = "penalty_goal"
	EventOwnGoal         EventType = "own_goal"
	EventPenaltyMiss     EventType = "penalty_miss"
	EventYellowCard      EventType = "yellow_card"
	EventRedCard         EventType = "red_card"
	EventSecondYellow    EventType = "second_yellow"
	EventAssist          EventType = "assist"
	EventSubstitutionIn  EventType = "substitution_in"
	EventSubstitutionOut EventType = "substitution_out"
	EventInjury          EventType = "injury"
	EventVAR             EventType = "var_decision"
)

var (
	ScoringEventTypes = []EventType{EventGoal, EventPenaltyGoal, EventOwnGoal}
	AssistEventTypes  = []EventType{EventAssist}
	CardEventTypes    = []EventType{EventYellowCard, EventRedCard, EventSecondYellow}
)

func NormalizeEventType(value string) EventType {
	return EventType(strings.ToLower(strings.TrimSpace(value)))
}

// Event is a single timeline entry of a match.
type Event struct {
	ID              string
	MatchID         string
	Type            EventType
	PlayerID        string
	RelatedPlayerID string
	TeamID          string
	Minute          int
	IsOwnGoal       bool
	IsPenalty       bool
}

// CountsAsGoal reports whether the event adds to the scorer's tally.
// Own goals never do, whether typed as such or flagged.
func (e Event) CountsAsGoal() bool {
	if e.IsOwnGoal {
		return false
	}
	return e.Type == EventGoal || e.Type == EventPenaltyGoal
}

func (e Event) IsCard() bool {
	switch e.Type {
	case EventYellowCard, EventRedCard, EventSecondYellow:
		return true
	default:
		return false
	}
}

// IsSendingOff is true for straight reds and second bookings.
func (e Event) IsSendingOff() bool {
	return e.Type == EventRedCard || e.Type == EventSecondYellow
}

// RequiresRelatedPlayer lists event types that pair two players.
func (e Event) RequiresRelatedPlayer() bool {
	switch e.Type {
	case EventAssist, EventSubstitutionIn, EventSubstitutionOut:
		return true
	default:
		return false
	}
}
