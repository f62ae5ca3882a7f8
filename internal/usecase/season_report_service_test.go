package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/league-stats/internal/domain/seasondata"
	"github.com/riskibarqy/league-stats/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReportService(repo seasondata.Repository, workers int) *SeasonReportService {
	svc := NewSeasonReportService(
		NewStandingsService(repo, nil),
		NewTopPerformerService(repo, nil),
		NewCleanSheetService(repo, nil),
		NewDisciplinaryService(repo, nil),
		workers,
		nil,
	)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestSeasonReportService_Build(t *testing.T) {
	t.Parallel()

	repo := memory.NewSeasonDataRepository(baseDataset())
	svc := newTestReportService(repo, 2)

	got, err := svc.Build(context.Background(), testSeasonID, 1)
	require.NoError(t, err)
	assert.Equal(t, testSeasonID, got.SeasonID)
	assert.Equal(t, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), got.GeneratedAt)
	assert.Len(t, got.Standings.Rows, 3)
	assert.Len(t, got.TopScorers.Entries, 1)
	assert.Len(t, got.TopAssists.Entries, 1)
	assert.Len(t, got.TeamCleanSheets.Rows, 3)
	assert.Len(t, got.GoalkeeperCleanSheets.Rows, 3)
	assert.Len(t, got.PlayerDiscipline.Rows, 3)
	assert.Len(t, got.TeamDiscipline.Rows, 3)

	standings, err := NewStandingsService(repo, nil).ComputeStandings(context.Background(), testSeasonID)
	require.NoError(t, err)
	assert.Equal(t, standings, got.Standings)
}

func TestSeasonReportService_Build_InvalidInput(t *testing.T) {
	t.Parallel()

	svc := newTestReportService(memory.NewSeasonDataRepository(baseDataset()), 2)

	if _, err := svc.Build(context.Background(), testSeasonID, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero limit, got %v", err)
	}
	if _, err := svc.Build(context.Background(), "missing", 5); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown season, got %v", err)
	}
}

func TestSeasonReportService_Build_UnknownSeasonReportsOneError(t *testing.T) {
	t.Parallel()

	svc := newTestReportService(memory.NewSeasonDataRepository(baseDataset()), 2)

	_, err := svc.Build(context.Background(), "missing", 5)
	require.ErrorIs(t, err, ErrInvalidInput)
	if n := strings.Count(err.Error(), ErrInvalidInput.Error()); n != 1 {
		t.Fatalf("expected a single engine error, got %d in %q", n, err.Error())
	}
}

func TestSeasonReportService_BuildMany_KeepsInputOrder(t *testing.T) {
	t.Parallel()

	svc := newTestReportService(memory.NewSeasonDataRepository(baseDataset()), 8)

	items, err := svc.BuildMany(context.Background(), []string{testSeasonID, "missing", " " + testSeasonID}, 0)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, testSeasonID, items[0].SeasonID)
	assert.NoError(t, items[0].Err)
	assert.Equal(t, "missing", items[1].SeasonID)
	assert.ErrorIs(t, items[1].Err, ErrInvalidInput)
	assert.Equal(t, testSeasonID, items[2].SeasonID)
	assert.NoError(t, items[2].Err)
	assert.Equal(t, items[0].Report, items[2].Report)
}

func TestSeasonReportService_BuildMany_RequiresSeasons(t *testing.T) {
	t.Parallel()

	svc := newTestReportService(memory.NewSeasonDataRepository(baseDataset()), 1)
	if _, err := svc.BuildMany(context.Background(), nil, 10); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestNormalizeReportWorkerCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, defaultReportWorkers, normalizeReportWorkerCount(0, 100))
	assert.Equal(t, 2, normalizeReportWorkerCount(8, 2))
	assert.Equal(t, maxReportWorkers, normalizeReportWorkerCount(1000, 1000))
}
