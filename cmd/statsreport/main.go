package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/league-stats/internal/app"
	"github.com/riskibarqy/league-stats/internal/config"
	"github.com/riskibarqy/league-stats/internal/domain/leaguestats"
	"github.com/riskibarqy/league-stats/internal/platform/logging"
)

var errReportsFailed = errors.New("one or more season reports failed")

type reportOutput struct {
	SeasonID string                    `json:"seasonId"`
	Report   *leaguestats.SeasonReport `json:"report,omitempty"`
	Error    string                    `json:"error,omitempty"`
}

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSONWriter(os.Stderr, cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], cfg, logger, os.Stdout); err != nil {
		if !errors.Is(err, errReportsFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, cfg config.Config, logger *logging.Logger, stdout io.Writer) error {
	fs := flag.NewFlagSet("statsreport", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	seasons := fs.String("season", "", "comma separated season ids")
	limit := fs.Int("limit", 10, "leaderboard size per report")
	workers := fs.Int("workers", cfg.ReportMaxWorkers, "concurrent season builds")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	seasonIDs := splitSeasons(*seasons)
	if len(seasonIDs) == 0 {
		return fmt.Errorf("-season is required")
	}
	if *limit < 1 || *limit > 100 {
		return fmt.Errorf("-limit must be between 1 and 100")
	}
	if *workers < 1 {
		return fmt.Errorf("-workers must be >= 1")
	}
	cfg.ReportMaxWorkers = *workers

	repo, closeData, err := app.NewSeasonDataRepository(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = closeData() }()

	svc := app.NewServices(repo, cfg, logger)
	items, err := svc.Reports.BuildMany(ctx, seasonIDs, *limit)
	if err != nil {
		return err
	}

	out := make([]reportOutput, 0, len(items))
	failed := false
	for _, item := range items {
		row := reportOutput{SeasonID: item.SeasonID}
		if item.Err != nil {
			failed = true
			row.Error = item.Err.Error()
			logger.ErrorContext(ctx, "season report failed", "season_id", item.SeasonID, "error", item.Err)
		} else {
			report := item.Report
			row.Report = &report
		}
		out = append(out, row)
	}

	raw, err := sonic.ConfigStd.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}
	if _, err := stdout.Write(append(raw, '\n')); err != nil {
		return fmt.Errorf("write reports: %w", err)
	}

	if failed {
		return errReportsFailed
	}
	return nil
}

func splitSeasons(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if id := strings.TrimSpace(part); id != "" {
			out = append(out, id)
		}
	}
	return out
}
