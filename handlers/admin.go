package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/sonerk/kelimeweb/middleware"
	"github.com/sonerk/kelimeweb/store"
)

type adminUserRow struct {
	Username  string `json:"username"`
	Role      string `json:"role"`
	PublicID  string `json:"public_id"`
	WordCount int64  `json:"word_count"`
}

// ListUsers shows every account with the size of its word store.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		http.Error(w, "Failed to list users", http.StatusInternalServerError)
		return
	}

	rows := make([]adminUserRow, 0, len(users))
	for _, u := range users {
		count, err := h.Words.Count(r.Context(), u.Username)
		if err != nil {
			http.Error(w, "Failed to count words", http.StatusInternalServerError)
			return
		}
		rows = append(rows, adminUserRow{
			Username:  u.Username,
			Role:      u.Role,
			PublicID:  u.PublicID,
			WordCount: count,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"users": rows,
	})
}

// DeleteUser removes an account together with its entire word store.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.UserFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	username := store.NormalizeUsername(r.PathValue("username"))
	if username == "" {
		http.Error(w, "Username is required", http.StatusBadRequest)
		return
	}
	if username == admin.Username {
		http.Error(w, "Cannot delete your own account", http.StatusBadRequest)
		return
	}

	// Words go first so a failed user delete cannot leave counters behind
	// for a future account with the same name.
	if err := h.Words.DeleteAll(r.Context(), username); err != nil {
		http.Error(w, "Failed to delete words", http.StatusInternalServerError)
		return
	}

	err := h.Users.Delete(r.Context(), username)
	if errors.Is(err, store.ErrUserNotFound) {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to delete user", http.StatusInternalServerError)
		return
	}

	h.Log.Info("admin deleted user",
		zap.String("admin", admin.Username), zap.String("username", username))
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "user deleted",
	})
}

// ExportUsers downloads the user table as a JSON attachment. Password
// hashes never serialize.
func (h *Handler) ExportUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		http.Error(w, "Failed to list users", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="users_export.json"`)
	writeJSON(w, http.StatusOK, users)
}
