package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/sonerk/kelimeweb/models"
	"github.com/sonerk/kelimeweb/store"
)

// WordProvider is the slice of the word store the handlers consume.
type WordProvider interface {
	Load(ctx context.Context, owner, level string) ([]models.WordEntry, error)
	Add(ctx context.Context, owner, foreign, native, level string) error
	RecordAnswer(ctx context.Context, owner, foreign string, correct bool) error
	Stats(ctx context.Context, owner, level string) ([]store.WordStat, error)
	Count(ctx context.Context, owner string) (int64, error)
	DeleteAll(ctx context.Context, owner string) error
}

// Handler carries the dependencies shared by every route.
type Handler struct {
	Words  WordProvider
	Users  *store.UserStore
	Log    *zap.Logger
	Secret string
	Secure bool // cookie Secure flag, off for local development
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
