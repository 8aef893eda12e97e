package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/sonerk/kelimeweb/middleware"
	"github.com/sonerk/kelimeweb/models"
	"github.com/sonerk/kelimeweb/quiz"
	"github.com/sonerk/kelimeweb/store"
)

type quizSubmission struct {
	Level    string `json:"level"`
	Term     string `json:"term"`     // English term of the question being answered
	Answer   string `json:"answer"`   // what the user typed
	Expected string `json:"expected"` // echoed from the previous question
}

type gradeResult struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
}

type quizResponse struct {
	Level    string           `json:"level"`
	Result   *gradeResult     `json:"result,omitempty"`
	Question *models.Question `json:"question"`
}

// NextQuestion serves the first question of a session.
func (h *Handler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	level := models.ParseLevel(r.URL.Query().Get("level"))
	h.respondWithQuestion(w, r, user.Username, level, "", nil)
}

// SubmitAnswer grades the previous question and serves the next one in the
// same round trip.
func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var sub quizSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	level := models.ParseLevel(sub.Level)

	var result *gradeResult
	exclude := ""
	if sub.Term != "" {
		correct := quiz.Grade(sub.Answer, sub.Expected)
		err := h.Words.RecordAnswer(r.Context(), user.Username, sub.Term, correct)
		switch {
		case errors.Is(err, store.ErrWordNotFound):
			// The entry is gone; skip the grade and keep quizzing.
			h.Log.Warn("graded term no longer exists",
				zap.String("owner", user.Username), zap.String("term", sub.Term))
		case err != nil:
			http.Error(w, "Failed to record answer", http.StatusInternalServerError)
			return
		default:
			result = &gradeResult{Correct: correct}
			if !correct {
				result.CorrectAnswer = sub.Expected
			}
			exclude = sub.Term
		}
	}

	h.respondWithQuestion(w, r, user.Username, level, exclude, result)
}

func (h *Handler) respondWithQuestion(w http.ResponseWriter, r *http.Request, owner, level, exclude string, result *gradeResult) {
	pool, err := h.loadPool(r.Context(), owner, level)
	if err != nil {
		http.Error(w, "Failed to load words", http.StatusInternalServerError)
		return
	}

	question, err := quiz.SelectQuestion(pool, exclude)
	if err != nil {
		http.Error(w, "No words available", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, quizResponse{
		Level:    level,
		Result:   result,
		Question: &question,
	})
}

// loadPool fetches the owner's words at the requested level, falling back
// to the full store when that level has no entries.
func (h *Handler) loadPool(ctx context.Context, owner, level string) ([]models.WordEntry, error) {
	words, err := h.Words.Load(ctx, owner, level)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return h.Words.Load(ctx, owner, "")
	}
	return words, nil
}
