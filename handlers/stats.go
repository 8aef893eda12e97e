package handlers

import (
	"net/http"
	"strings"

	"github.com/sonerk/kelimeweb/middleware"
	"github.com/sonerk/kelimeweb/models"
	"github.com/sonerk/kelimeweb/store"
)

type statsResponse struct {
	Level string           `json:"level"`
	Words []store.WordStat `json:"words"`
}

// GetStats renders the per-word accuracy table, optionally filtered to one
// level. Unlike the quiz pool, an empty level stays empty here.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	level := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("level")))
	if !models.IsLevel(level) {
		level = "ALL"
	}

	stats, err := h.Words.Stats(r.Context(), user.Username, level)
	if err != nil {
		http.Error(w, "Failed to load stats", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Level: level,
		Words: stats,
	})
}
