package match

import "testing"

func TestMatch_CleanSheetFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		home     int
		away     int
		wantHome bool
		wantAway bool
	}{
		{name: "goalless draw", home: 0, away: 0, wantHome: true, wantAway: true},
		{name: "home shutout win", home: 2, away: 0, wantHome: true, wantAway: false},
		{name: "away shutout win", home: 0, away: 1, wantHome: false, wantAway: true},
		{name: "score draw", home: 1, away: 1, wantHome: false, wantAway: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home, away := Match{HomeScore: tt.home, AwayScore: tt.away}.CleanSheetFlags()
			if home != tt.wantHome || away != tt.wantAway {
				t.Fatalf("unexpected flags home=%v away=%v", home, away)
			}
		})
	}
}

func TestMatch_IsCompletedNormalizesStatus(t *testing.T) {
	t.Parallel()

	if !(Match{Status: " Completed "}).IsCompleted() {
		t.Fatalf("expected completed status to be recognised")
	}
	if (Match{Status: StatusDisputed}).IsCompleted() {
		t.Fatalf("disputed match must not count as completed")
	}
}

func TestEvent_CountsAsGoal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{name: "open play goal", event: Event{Type: EventGoal}, want: true},
		{name: "penalty goal", event: Event{Type: EventPenaltyGoal, IsPenalty: true}, want: true},
		{name: "own goal type", event: Event{Type: EventOwnGoal}, want: false},
		{name: "goal flagged own goal", event: Event{Type: EventGoal, IsOwnGoal: true}, want: false},
		{name: "assist", event: Event{Type: EventAssist}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.CountsAsGoal(); got != tt.want {
				t.Fatalf("CountsAsGoal=%v want %v", got, tt.want)
			}
		})
	}
}
