package leaguestats

import (
	"math"
	"sort"
)

const (
	MaxFormLength            = 5
	YellowCardsPerSuspension = 5
	MaxFairPlayRating        = 10.0

	fairPlayYellowWeight  = 1.0
	fairPlayRedWeight     = 3.0
	fairPlayCardsPerMatch = 5.0
)

// AppendForm adds the newest result and keeps only the last MaxFormLength
// entries, oldest first. The input slice is not modified.
func AppendForm(form []Result, result Result) []Result {
	next := make([]Result, 0, MaxFormLength)
	start := 0
	if len(form)+1 > MaxFormLength {
		start = len(form) + 1 - MaxFormLength
	}
	next = append(next, form[start:]...)
	return append(next, result)
}

// SuspensionGames counts one game per red card plus one per completed block
// of yellow cards.
func SuspensionGames(yellowCards, redCards int) int {
	if yellowCards < 0 {
		yellowCards = 0
	}
	if redCards < 0 {
		redCards = 0
	}
	return redCards + yellowCards/YellowCardsPerSuspension
}

// FairPlayRating scores discipline on a 0..10 scale normalised by matches
// played. A team without matches is spotless.
func FairPlayRating(yellowCards, redCards, matchesPlayed int) float64 {
	if matchesPlayed <= 0 {
		return MaxFairPlayRating
	}
	penalty := float64(max(yellowCards, 0))*fairPlayYellowWeight + float64(max(redCards, 0))*fairPlayRedWeight
	scale := float64(matchesPlayed) * fairPlayCardsPerMatch
	rating := MaxFairPlayRating - (penalty/scale)*MaxFairPlayRating
	return clamp(Round1(rating), 0, MaxFairPlayRating)
}

// CleanSheetPercentage is 0 when no match was played.
func CleanSheetPercentage(cleanSheets, matchesPlayed int) float64 {
	if matchesPlayed <= 0 || cleanSheets <= 0 {
		return 0
	}
	pct := float64(cleanSheets) / float64(matchesPlayed) * 100
	return clamp(Round1(pct), 0, 100)
}

// Round1 rounds to one decimal place, ties to even (31.25 -> 31.2).
func Round1(value float64) float64 {
	return math.RoundToEven(value*10) / 10
}

// SortedUnique returns the distinct ids in ascending order.
func SortedUnique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func clamp(value, lo, hi float64) float64 {
	return math.Min(math.Max(value, lo), hi)
}
