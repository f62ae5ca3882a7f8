package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/league-stats/internal/config"
	"github.com/riskibarqy/league-stats/internal/platform/logging"
)

func TestParseSteps(t *testing.T) {
	if got, err := parseSteps(nil); err != nil || got != 1 {
		t.Fatalf("expected default 1 step, got %d err=%v", got, err)
	}
	if got, err := parseSteps([]string{" 3 "}); err != nil || got != 3 {
		t.Fatalf("expected 3 steps, got %d err=%v", got, err)
	}
	if _, err := parseSteps([]string{"0"}); err == nil {
		t.Fatalf("expected error for zero steps")
	}
	if _, err := parseSteps([]string{"two"}); err == nil {
		t.Fatalf("expected error for non-numeric steps")
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if got, err := parseVersion("1"); err != nil || got != 1 {
		t.Fatalf("unexpected version %d err=%v", got, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected error for negative version")
	}
	if got, err := parseTarget("7"); err != nil || got != 7 {
		t.Fatalf("unexpected target %d err=%v", got, err)
	}
	if _, err := parseTarget("x"); err == nil {
		t.Fatalf("expected error for invalid target")
	}
}

func TestRun_UsageAndMissingDB(t *testing.T) {
	var out bytes.Buffer
	logger := logging.NewNop()

	if err := run(nil, config.Config{}, logger, &out); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if err := run([]string{"sideways"}, config.Config{}, logger, &out); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error for unknown command, got %v", err)
	}
	err := run([]string{"up"}, config.Config{}, logger, &out)
	if err == nil || errors.Is(err, errUsage) {
		t.Fatalf("expected DB_URL error, got %v", err)
	}
}

func TestResolveMigrationsDir(t *testing.T) {
	dir := t.TempDir()
	migrations := filepath.Join(dir, "sql")
	if err := os.Mkdir(migrations, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Setenv("MIGRATIONS_DIR", migrations)

	got, err := resolveMigrationsDir()
	if err != nil {
		t.Fatalf("resolve migrations dir: %v", err)
	}
	if got != migrations {
		t.Fatalf("unexpected migrations dir: %q", got)
	}
}
