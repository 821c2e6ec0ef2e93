// internal/handlers/stats_handler.go
package handlers

import (
	"net/http"

	"polingo/internal/middleware"
	"polingo/internal/service"
	"polingo/internal/webutil"
)

type StatsHandler struct {
	service service.StatsService
}

func NewStatsHandler(s service.StatsService) *StatsHandler {
	return &StatsHandler{service: s}
}

// GetWordStats は単語練習の統計を返します
func (h *StatsHandler) GetWordStats(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	stats, err := h.service.GetWordStats(r.Context())
	if err != nil {
		logger.Error("Error getting word stats in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}

// GetEndingsStats は語尾クイズの統計を返します
func (h *StatsHandler) GetEndingsStats(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	stats, err := h.service.GetEndingsStats(r.Context())
	if err != nil {
		logger.Error("Error getting endings stats in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}
