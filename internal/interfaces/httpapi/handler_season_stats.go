package httpapi

import (
	"net/http"
)

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	params, err := h.seasonParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	standings, err := h.standingsService.ComputeStandings(ctx, params.SeasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "compute standings failed", "season_id", params.SeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standings)
}

func (h *Handler) GetTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTopScorers")
	defer span.End()

	query, err := h.leaderboardQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	board, err := h.topPerformerService.TopScorers(ctx, query.SeasonID, query.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "top scorers failed", "season_id", query.SeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, board)
}

func (h *Handler) GetTopAssists(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTopAssists")
	defer span.End()

	query, err := h.leaderboardQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	board, err := h.topPerformerService.TopAssists(ctx, query.SeasonID, query.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "top assists failed", "season_id", query.SeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, board)
}

func (h *Handler) GetTeamCleanSheets(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamCleanSheets")
	defer span.End()

	params, err := h.seasonParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.cleanSheetService.TeamCleanSheets(ctx, params.SeasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "team clean sheets failed", "season_id", params.SeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stats)
}

// GetGoalkeeperCleanSheets attributes every match of a team to each of its
// goalkeepers; no lineup data is consulted.
func (h *Handler) GetGoalkeeperCleanSheets(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGoalkeeperCleanSheets")
	defer span.End()

	params, err := h.seasonParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.cleanSheetService.GoalkeeperCleanSheets(ctx, params.SeasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "goalkeeper clean sheets failed", "season_id", params.SeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stats)
}

func (h *Handler) GetPlayerDiscipline(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerDiscipline")
	defer span.End()

	params, err := h.seasonParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.disciplinaryService.PlayerDisciplinaryStats(ctx, params.SeasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "player discipline failed", "season_id", params.SeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stats)
}

func (h *Handler) GetTeamDiscipline(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamDiscipline")
	defer span.End()

	params, err := h.seasonParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.disciplinaryService.TeamDisciplinaryStats(ctx, params.SeasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "team discipline failed", "season_id", params.SeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stats)
}

func (h *Handler) GetSeasonReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonReport")
	defer span.End()

	query, err := h.leaderboardQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.seasonReportService.Build(ctx, query.SeasonID, query.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "season report failed", "season_id", query.SeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}
