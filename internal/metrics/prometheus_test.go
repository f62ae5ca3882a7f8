package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetup_DisabledReturnsEmptyProvider(t *testing.T) {
	t.Parallel()

	provider, err := Setup(context.Background(), Config{}, false)
	require.NoError(t, err)
	require.Nil(t, provider.Handler)
	require.Nil(t, provider.MeterProvider)
	require.NoError(t, provider.Shutdown(context.Background()))
}

func TestSetup_ExposesRecordedCounter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider, err := Setup(ctx, Config{Enabled: true, ServiceName: "league-stats-test"}, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	counter, err := provider.MeterProvider.Meter("metrics-test").Int64Counter("probe_requests")
	require.NoError(t, err)
	counter.Add(ctx, 3)

	rec := httptest.NewRecorder()
	provider.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	if !strings.Contains(string(body), "probe_requests") {
		t.Fatalf("expected probe_requests in scrape output, got:\n%s", body)
	}
}

func TestProviderShutdown_NilSafe(t *testing.T) {
	t.Parallel()

	var provider *Provider
	if err := provider.Shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
