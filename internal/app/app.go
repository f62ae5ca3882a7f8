package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/league-stats/internal/config"
	"github.com/riskibarqy/league-stats/internal/domain/seasondata"
	cacherepo "github.com/riskibarqy/league-stats/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/league-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/league-stats/internal/infrastructure/repository/resilient"
	"github.com/riskibarqy/league-stats/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/league-stats/internal/platform/cache"
	"github.com/riskibarqy/league-stats/internal/platform/logging"
	"github.com/riskibarqy/league-stats/internal/platform/resilience"
	"github.com/riskibarqy/league-stats/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

// Services groups the statistics engines built on one Season Data Port.
type Services struct {
	Standings   *usecase.StandingsService
	Performers  *usecase.TopPerformerService
	CleanSheets *usecase.CleanSheetService
	Discipline  *usecase.DisciplinaryService
	Reports     *usecase.SeasonReportService
}

// NewSeasonDataRepository builds the port chain for cfg: the configured source,
// wrapped by the circuit breaker and then the read cache when enabled. The
// returned close func releases the source.
func NewSeasonDataRepository(cfg config.Config, logger *logging.Logger) (seasondata.Repository, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		repo    seasondata.Repository
		closeFn = func() error { return nil }
	)

	switch cfg.DataSource {
	case config.DataSourcePostgres:
		db, err := openDatabase(cfg)
		if err != nil {
			return nil, nil, err
		}
		repo = postgres.NewSeasonDataRepository(db)
		closeFn = db.Close
		logger.Info("season data source ready", "source", cfg.DataSource, "db_name", dbNameFromURL(cfg.DBURL))
	case config.DataSourceMemory, "":
		dataset := memory.SeedDataset()
		if cfg.DataSeedFile != "" {
			loaded, err := memory.LoadDataset(cfg.DataSeedFile)
			if err != nil {
				return nil, nil, fmt.Errorf("load seed file %s: %w", cfg.DataSeedFile, err)
			}
			dataset = loaded
		}
		repo = memory.NewSeasonDataRepository(dataset)
		logger.Info("season data source ready",
			"source", config.DataSourceMemory,
			"seed_file", cfg.DataSeedFile,
			"seasons", len(dataset.Seasons),
		)
	default:
		return nil, nil, fmt.Errorf("unsupported data source %q", cfg.DataSource)
	}

	if cfg.DataCircuitEnabled {
		breaker := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: cfg.DataCircuitFailureCount,
			OpenTimeout:      cfg.DataCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.DataCircuitHalfOpenMaxReq,
		})
		repo = resilient.NewSeasonDataRepository(repo, breaker, logger)
	}
	if cfg.CacheEnabled {
		repo = cacherepo.NewSeasonDataRepository(repo, basecache.NewStore(cfg.CacheTTL))
	}

	return repo, closeFn, nil
}

func NewServices(repo seasondata.Repository, cfg config.Config, logger *logging.Logger) Services {
	standings := usecase.NewStandingsService(repo, logger)
	performers := usecase.NewTopPerformerService(repo, logger)
	cleanSheets := usecase.NewCleanSheetService(repo, logger)
	discipline := usecase.NewDisciplinaryService(repo, logger)

	return Services{
		Standings:   standings,
		Performers:  performers,
		CleanSheets: cleanSheets,
		Discipline:  discipline,
		Reports:     usecase.NewSeasonReportService(standings, performers, cleanSheets, discipline, cfg.ReportMaxWorkers, logger),
	}
}

// NewHTTPServer wires the API server. metricsHandler may be nil.
func NewHTTPServer(cfg config.Config, logger *logging.Logger, metricsHandler http.Handler) (*http.Server, func() error, error) {
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repo, closeFn, err := NewSeasonDataRepository(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	svc := NewServices(repo, cfg, logger)

	handler := httpapi.NewHandler(svc.Standings, svc.Performers, svc.CleanSheets, svc.Discipline, svc.Reports, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		InternalJobToken:   cfg.InternalJobToken,
		MetricsHandler:     metricsHandler,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, closeFn, nil
}

func openDatabase(cfg config.Config) (*sqlx.DB, error) {
	dsn := DatabaseURL(cfg)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}
