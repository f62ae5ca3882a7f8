package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/league-stats/internal/domain/leaguestats"
	"github.com/riskibarqy/league-stats/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultReportLimit   = 10
	defaultReportWorkers = 4
	maxReportWorkers     = 32
)

type SeasonReportService struct {
	standings   *StandingsService
	performers  *TopPerformerService
	cleanSheets *CleanSheetService
	discipline  *DisciplinaryService
	maxWorkers  int
	logger      *logging.Logger
	now         func() time.Time
}

func NewSeasonReportService(
	standings *StandingsService,
	performers *TopPerformerService,
	cleanSheets *CleanSheetService,
	discipline *DisciplinaryService,
	maxWorkers int,
	logger *logging.Logger,
) *SeasonReportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SeasonReportService{
		standings:   standings,
		performers:  performers,
		cleanSheets: cleanSheets,
		discipline:  discipline,
		maxWorkers:  maxWorkers,
		logger:      logger,
		now:         time.Now,
	}
}

// SeasonReportItem is one season's outcome of BuildMany. Err is set instead of
// Report when that season failed.
type SeasonReportItem struct {
	SeasonID string
	Report   leaguestats.SeasonReport
	Err      error
}

// Build runs every engine for the season concurrently. Engines share no
// state, so each goroutine writes its own report field.
func (s *SeasonReportService) Build(ctx context.Context, seasonID string, limit int) (result leaguestats.SeasonReport, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonReportService.Build", attribute.String("season.id", seasonID))
	startedAt := time.Now()
	defer func() {
		statsMetrics.observe(ctx, engineSeasonReport, startedAt, 0, err)
		endUsecaseSpan(span, err)
	}()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return leaguestats.SeasonReport{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	if limit <= 0 {
		return leaguestats.SeasonReport{}, fmt.Errorf("%w: limit must be greater than zero", ErrInvalidInput)
	}

	report := leaguestats.SeasonReport{SeasonID: seasonID}
	p := pool.New().WithErrors().WithFirstError().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) (err error) {
		report.Standings, err = s.standings.ComputeStandings(ctx, seasonID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		report.TopScorers, err = s.performers.TopScorers(ctx, seasonID, limit)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		report.TopAssists, err = s.performers.TopAssists(ctx, seasonID, limit)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		report.TeamCleanSheets, err = s.cleanSheets.TeamCleanSheets(ctx, seasonID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		report.GoalkeeperCleanSheets, err = s.cleanSheets.GoalkeeperCleanSheets(ctx, seasonID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		report.PlayerDiscipline, err = s.discipline.PlayerDisciplinaryStats(ctx, seasonID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		report.TeamDiscipline, err = s.discipline.TeamDisciplinaryStats(ctx, seasonID)
		return err
	})
	if err := p.Wait(); err != nil {
		return leaguestats.SeasonReport{}, fmt.Errorf("build season report: %w", err)
	}

	report.GeneratedAt = s.now().UTC()
	return report, nil
}

// BuildMany builds reports for several seasons through a bounded worker pool.
// Items come back in input order and one failing season does not stop the
// others.
func (s *SeasonReportService) BuildMany(ctx context.Context, seasonIDs []string, limit int) ([]SeasonReportItem, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonReportService.BuildMany", attribute.Int("season.count", len(seasonIDs)))
	defer span.End()

	if len(seasonIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one season id is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultReportLimit
	}

	items := make([]SeasonReportItem, len(seasonIDs))
	workerCount := normalizeReportWorkerCount(s.maxWorkers, len(seasonIDs))
	workers, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer workers.Release()

	var wg sync.WaitGroup
	for idx, seasonID := range seasonIDs {
		items[idx].SeasonID = strings.TrimSpace(seasonID)
		wg.Add(1)
		if err := workers.Submit(func() {
			defer wg.Done()

			report, err := s.Build(ctx, items[idx].SeasonID, limit)
			items[idx].Report = report
			items[idx].Err = err
		}); err != nil {
			wg.Done()
			items[idx].Err = fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	wg.Wait()

	failed := 0
	for _, item := range items {
		if item.Err != nil {
			failed++
		}
	}
	s.logger.InfoContext(ctx, "season reports built",
		"seasons", len(items),
		"failed", failed,
		"workers", workerCount,
	)
	return items, nil
}

func normalizeReportWorkerCount(requested, tasks int) int {
	count := requested
	if count <= 0 {
		count = defaultReportWorkers
	}
	if count > maxReportWorkers {
		count = maxReportWorkers
	}
	if tasks > 0 && count > tasks {
		count = tasks
	}
	return count
}
