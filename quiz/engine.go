// Package quiz holds the question-selection and grading logic.
package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sonerk/kelimeweb/models"
)

// ErrNoCandidates is returned when selection is asked for a question out of
// nothing. Seeding guarantees callers never hit this in normal operation.
var ErrNoCandidates = errors.New("no candidate words to choose from")

// SelectQuestion draws the next question from the candidate pool. Entries
// whose English term equals excludeTerm are skipped so the same word is not
// asked twice in a row, unless skipping them would empty the pool — a
// single-word store keeps quizzing that word. Direction is a coin flip.
func SelectQuestion(candidates []models.WordEntry, excludeTerm string) (models.Question, error) {
	if len(candidates) == 0 {
		return models.Question{}, ErrNoCandidates
	}

	pool := candidates
	if excludeTerm != "" {
		reduced := make([]models.WordEntry, 0, len(candidates))
		for _, e := range candidates {
			if e.ForeignTerm != excludeTerm {
				reduced = append(reduced, e)
			}
		}
		if len(reduced) > 0 {
			pool = reduced
		}
	}

	entry := pool[rand.IntN(len(pool))]

	direction := models.DirectionENToTR
	if rand.IntN(2) == 1 {
		direction = models.DirectionTRToEN
	}

	q := models.Question{
		Term:      entry.ForeignTerm,
		Direction: direction,
	}
	if direction == models.DirectionENToTR {
		q.Prompt = fmt.Sprintf("%s → Türkçe?", entry.ForeignTerm)
		q.Answer = entry.NativeTerm
	} else {
		q.Prompt = fmt.Sprintf("%s → İngilizce?", entry.NativeTerm)
		q.Answer = entry.ForeignTerm
	}
	return q, nil
}

// Grade checks a submitted answer against the expected one. Comparison is
// whitespace-insensitive and case-insensitive; the Turkish lowercase pass
// keeps dotted/dotless I pairs (İ/i, I/ı) from producing false negatives,
// while EqualFold covers plain Latin input typed in capitals.
func Grade(submitted, expected string) bool {
	s := strings.TrimSpace(submitted)
	e := strings.TrimSpace(expected)
	if strings.EqualFold(s, e) {
		return true
	}

	lower := cases.Lower(language.Turkish)
	return lower.String(s) == lower.String(e)
}
