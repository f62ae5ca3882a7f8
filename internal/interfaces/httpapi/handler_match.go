package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/league-stats/internal/domain/match"
)

type matchCleanSheetDTO struct {
	MatchID        string    `json:"matchId"`
	SeasonID       string    `json:"seasonId"`
	HomeTeamID     string    `json:"homeTeamId"`
	AwayTeamID     string    `json:"awayTeamId"`
	HomeScore      int       `json:"homeScore"`
	AwayScore      int       `json:"awayScore"`
	HomeCleanSheet bool      `json:"homeCleanSheet"`
	AwayCleanSheet bool      `json:"awayCleanSheet"`
	KickoffAt      time.Time `json:"kickoffAt"`
}

type automaticRedCardDTO struct {
	MatchID          string `json:"matchId"`
	PlayerID         string `json:"playerId"`
	AutomaticRedCard bool   `json:"automaticRedCard"`
}

func matchCleanSheetToDTO(m match.Match) matchCleanSheetDTO {
	return matchCleanSheetDTO{
		MatchID:        m.ID,
		SeasonID:       m.SeasonID,
		HomeTeamID:     m.HomeTeamID,
		AwayTeamID:     m.AwayTeamID,
		HomeScore:      m.HomeScore,
		AwayScore:      m.AwayScore,
		HomeCleanSheet: m.HomeCleanSheet,
		AwayCleanSheet: m.AwayCleanSheet,
		KickoffAt:      m.KickoffAt,
	}
}

// MarkMatchCleanSheet is called by the match finalization workflow once a
// score is final.
func (h *Handler) MarkMatchCleanSheet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MarkMatchCleanSheet")
	defer span.End()

	params := matchParams{MatchID: strings.TrimSpace(r.PathValue("matchID"))}
	if err := h.validateRequest(ctx, params); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.cleanSheetService.MarkMatchCleanSheet(ctx, params.MatchID)
	if err != nil {
		h.logger.WarnContext(ctx, "mark match clean sheet failed", "match_id", params.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "match clean sheet flags updated",
		"match_id", updated.ID,
		"home_clean_sheet", updated.HomeCleanSheet,
		"away_clean_sheet", updated.AwayCleanSheet,
	)
	writeSuccess(ctx, w, http.StatusOK, matchCleanSheetToDTO(updated))
}

func (h *Handler) CheckAutomaticRedCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CheckAutomaticRedCard")
	defer span.End()

	params := matchPlayerParams{
		MatchID:  strings.TrimSpace(r.PathValue("matchID")),
		PlayerID: strings.TrimSpace(r.PathValue("playerID")),
	}
	if err := h.validateRequest(ctx, params); err != nil {
		writeError(ctx, w, err)
		return
	}

	triggered, err := h.disciplinaryService.CheckAutomaticRedCard(ctx, params.PlayerID, params.MatchID)
	if err != nil {
		h.logger.WarnContext(ctx, "check automatic red card failed",
			"match_id", params.MatchID,
			"player_id", params.PlayerID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, automaticRedCardDTO{
		MatchID:          params.MatchID,
		PlayerID:         params.PlayerID,
		AutomaticRedCard: triggered,
	})
}
