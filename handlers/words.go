package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sonerk/kelimeweb/middleware"
	"github.com/sonerk/kelimeweb/store"
	"github.com/sonerk/kelimeweb/utils"
)

type addWordRequest struct {
	ForeignTerm string `json:"foreign_term" validate:"required"`
	NativeTerm  string `json:"native_term" validate:"required"`
	Level       string `json:"level"`
}

// AddWord inserts a user-submitted word pair into the caller's store.
func (h *Handler) AddWord(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req addWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		http.Error(w, "Both terms are required", http.StatusBadRequest)
		return
	}

	// A brand-new user may add a word before ever loading a question;
	// loading first keeps the seeded catalog underneath their additions.
	if _, err := h.Words.Load(r.Context(), user.Username, ""); err != nil {
		http.Error(w, "Failed to load words", http.StatusInternalServerError)
		return
	}

	err := h.Words.Add(r.Context(), user.Username, req.ForeignTerm, req.NativeTerm, req.Level)
	if errors.Is(err, store.ErrDuplicateWord) {
		http.Error(w, "Word already exists", http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, "Failed to add word", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "word added",
	})
}
