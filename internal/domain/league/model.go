package league

import "fmt"

const (
	DefaultPointsPerWin  = 3
	DefaultPointsPerDraw = 1
	DefaultPointsPerLoss = 0
)

// League is a competition that owns teams and seasons. Points values are the
// defaults every season of the league inherits unless it overrides them.
type League struct {
	ID            string
	Name          string
	CountryCode   string
	PointsPerWin  int
	PointsPerDraw int
	PointsPerLoss int
}

// New returns a league carrying the standard 3/1/0 scoring.
func New(id, name string) League {
	return League{
		ID:            id,
		Name:          name,
		PointsPerWin:  DefaultPointsPerWin,
		PointsPerDraw: DefaultPointsPerDraw,
		PointsPerLoss: DefaultPointsPerLoss,
	}
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.PointsPerWin < 0 || l.PointsPerDraw < 0 || l.PointsPerLoss < 0 {
		return fmt.Errorf("league points cannot be negative")
	}

	return nil
}
