package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/sonerk/kelimeweb/auth"
	"github.com/sonerk/kelimeweb/middleware"
	"github.com/sonerk/kelimeweb/models"
	"github.com/sonerk/kelimeweb/store"
	"github.com/sonerk/kelimeweb/utils"
)

type credentials struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=4"`
}

// Register creates an account and logs it in immediately.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	creds.Username = store.NormalizeUsername(creds.Username)
	if err := utils.ValidateStruct(creds); err != nil {
		http.Error(w, "Username must be at least 3 and password at least 4 characters", http.StatusBadRequest)
		return
	}

	user, err := h.Users.Register(r.Context(), creds.Username, creds.Password)
	if errors.Is(err, store.ErrUserExists) {
		http.Error(w, "Username already taken", http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	if err := h.issueSession(w, user); err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"user": user,
	})
}

// Login checks credentials and sets the session cookie.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.Users.Authenticate(r.Context(), creds.Username, creds.Password)
	if errors.Is(err, store.ErrInvalidCredentials) {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.issueSession(w, user); err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	h.Log.Info("user logged in", zap.String("username", user.Username))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user": user,
	})
}

// Logout expires the session cookie.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "logged out",
	})
}

func (h *Handler) issueSession(w http.ResponseWriter, user *models.User) error {
	token, err := auth.CreateToken(h.Secret, user.Username, user.Role)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(auth.TokenTTL.Seconds()),
	})
	return nil
}
