package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-stats/internal/platform/id"
	"github.com/riskibarqy/league-stats/internal/platform/logging"
)

type RouterConfig struct {
	CORSAllowedOrigins []string
	InternalJobToken   string
	// MetricsHandler is mounted at GET /metrics when non-nil.
	MetricsHandler http.Handler
}

func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.MetricsHandler)
	registerSeasonStatsRoutes(mux, handler)
	registerInternalMatchRoutes(mux, handler, cfg.InternalJobToken)

	inner := CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, mux))
	return RequestTracing(RequestID(id.NewUUIDGenerator(), RequestLogging(logger, inner)))
}
