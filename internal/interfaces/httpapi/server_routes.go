package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}
}

func registerSeasonStatsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons/{seasonID}/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/top-scorers", handler.GetTopScorers)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/top-assists", handler.GetTopAssists)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/clean-sheets/teams", handler.GetTeamCleanSheets)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/clean-sheets/goalkeepers", handler.GetGoalkeeperCleanSheets)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/discipline/players", handler.GetPlayerDiscipline)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/discipline/teams", handler.GetTeamDiscipline)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/report", handler.GetSeasonReport)
}

func registerInternalMatchRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/matches/{matchID}/clean-sheet",
		RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.MarkMatchCleanSheet)))
	mux.Handle("GET /v1/internal/matches/{matchID}/players/{playerID}/automatic-red-card",
		RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.CheckAutomaticRedCard)))
}
