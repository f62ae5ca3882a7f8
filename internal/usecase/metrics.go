package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	engineStandings    = "standings"
	engineTopScorers   = "top_scorers"
	engineTopAssists   = "top_assists"
	engineTeamSheets   = "team_clean_sheets"
	engineKeeperSheets = "goalkeeper_clean_sheets"
	enginePlayerCards  = "player_discipline"
	engineTeamCards    = "team_discipline"
	engineSeasonReport = "season_report"
)

type engineMetrics struct {
	computations metric.Int64Counter
	duration     metric.Float64Histogram
	skipped      metric.Int64Counter
}

// Instruments come from the global meter, so they follow whichever provider
// internal/metrics installs at startup.
var statsMetrics = newEngineMetrics(otel.Meter("league-stats/internal/usecase"))

func newEngineMetrics(meter metric.Meter) *engineMetrics {
	fallback := noop.NewMeterProvider().Meter("")

	computations, err := meter.Int64Counter(
		"league_stats_computations_total",
		metric.WithDescription("Statistics computations by engine and outcome"),
	)
	if err != nil {
		otel.Handle(err)
		computations, _ = fallback.Int64Counter("league_stats_computations_total")
	}

	duration, err := meter.Float64Histogram(
		"league_stats_computation_duration_ms",
		metric.WithDescription("Statistics computation latency"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		otel.Handle(err)
		duration, _ = fallback.Float64Histogram("league_stats_computation_duration_ms")
	}

	skipped, err := meter.Int64Counter(
		"league_stats_skipped_events_total",
		metric.WithDescription("Events skipped because of data integrity problems"),
	)
	if err != nil {
		otel.Handle(err)
		skipped, _ = fallback.Int64Counter("league_stats_skipped_events_total")
	}

	return &engineMetrics{
		computations: computations,
		duration:     duration,
		skipped:      skipped,
	}
}

func (m *engineMetrics) observe(ctx context.Context, engine string, startedAt time.Time, skippedEvents int, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	engineAttr := attribute.String("engine", engine)

	m.computations.Add(ctx, 1, metric.WithAttributes(engineAttr, attribute.String("outcome", outcome)))
	m.duration.Record(ctx, float64(time.Since(startedAt).Microseconds())/1000, metric.WithAttributes(engineAttr))
	if skippedEvents > 0 {
		m.skipped.Add(ctx, int64(skippedEvents), metric.WithAttributes(engineAttr))
	}
}
