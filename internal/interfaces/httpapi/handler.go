package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/league-stats/internal/platform/logging"
	"github.com/riskibarqy/league-stats/internal/usecase"
)

const defaultLeaderboardLimit = 10

type Handler struct {
	standingsService    *usecase.StandingsService
	topPerformerService *usecase.TopPerformerService
	cleanSheetService   *usecase.CleanSheetService
	disciplinaryService *usecase.DisciplinaryService
	seasonReportService *usecase.SeasonReportService
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	standingsService *usecase.StandingsService,
	topPerformerService *usecase.TopPerformerService,
	cleanSheetService *usecase.CleanSheetService,
	disciplinaryService *usecase.DisciplinaryService,
	seasonReportService *usecase.SeasonReportService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		standingsService:    standingsService,
		topPerformerService: topPerformerService,
		cleanSheetService:   cleanSheetService,
		disciplinaryService: disciplinaryService,
		seasonReportService: seasonReportService,
		logger:              logger,
		validator:           validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

type seasonParams struct {
	SeasonID string `validate:"required,max=64"`
}

type leaderboardQuery struct {
	SeasonID string `validate:"required,max=64"`
	Limit    int    `validate:"min=1,max=100"`
}

type matchParams struct {
	MatchID string `validate:"required,max=64"`
}

type matchPlayerParams struct {
	MatchID  string `validate:"required,max=64"`
	PlayerID string `validate:"required,max=64"`
}

func (h *Handler) seasonParams(r *http.Request) (seasonParams, error) {
	params := seasonParams{SeasonID: strings.TrimSpace(r.PathValue("seasonID"))}
	if err := h.validateRequest(r.Context(), params); err != nil {
		return seasonParams{}, err
	}
	return params, nil
}

// leaderboardQuery reads ?limit=, defaulting to 10 when absent.
func (h *Handler) leaderboardQuery(r *http.Request) (leaderboardQuery, error) {
	query := leaderboardQuery{
		SeasonID: strings.TrimSpace(r.PathValue("seasonID")),
		Limit:    defaultLeaderboardLimit,
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return leaderboardQuery{}, fmt.Errorf("%w: limit must be an integer", usecase.ErrInvalidInput)
		}
		query.Limit = limit
	}
	if err := h.validateRequest(r.Context(), query); err != nil {
		return leaderboardQuery{}, err
	}
	return query, nil
}
