package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonerk/kelimeweb/seed"
	"github.com/sonerk/kelimeweb/store"
)

func findStat(t *testing.T, ts *testServer, owner, term string) store.WordStat {
	t.Helper()

	stats, err := ts.words.Stats(context.Background(), owner, "ALL")
	require.NoError(t, err)
	for _, s := range stats {
		if s.ForeignTerm == term {
			return s
		}
	}
	t.Fatalf("no stat row for %q", term)
	return store.WordStat{}
}

func TestQuizFlow(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	cookie := ts.register(t, "ayse", "parola")

	// First question seeds the catalog for the new account.
	rec := ts.do(t, http.MethodGet, "/api/quiz?level=A1", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var first quizResponse
	decodeBody(t, rec, &first)
	require.NotNil(t, first.Question)
	assert.Equal(t, "A1", first.Level)
	assert.Nil(t, first.Result)
	assert.NotEmpty(t, first.Question.Prompt)
	assert.NotEmpty(t, first.Question.Answer)

	count, err := ts.words.Count(context.Background(), "ayse")
	require.NoError(t, err)
	assert.Equal(t, int64(len(seed.Catalog())), count)

	// Correct answer.
	q := first.Question
	rec = ts.do(t, http.MethodPost, "/api/quiz", quizSubmission{
		Level:    "A1",
		Term:     q.Term,
		Answer:   q.Answer,
		Expected: q.Answer,
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var second quizResponse
	decodeBody(t, rec, &second)
	require.NotNil(t, second.Result)
	assert.True(t, second.Result.Correct)
	assert.Empty(t, second.Result.CorrectAnswer)
	require.NotNil(t, second.Question)
	assert.NotEqual(t, q.Term, second.Question.Term)

	stat := findStat(t, ts, "ayse", q.Term)
	assert.Equal(t, 1, stat.CorrectCount)
	assert.Equal(t, 0, stat.IncorrectCount)

	// Wrong answer embeds the correction.
	q2 := second.Question
	rec = ts.do(t, http.MethodPost, "/api/quiz", quizSubmission{
		Level:    "A1",
		Term:     q2.Term,
		Answer:   "kesinlikle yanlis",
		Expected: q2.Answer,
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var third quizResponse
	decodeBody(t, rec, &third)
	require.NotNil(t, third.Result)
	assert.False(t, third.Result.Correct)
	assert.Equal(t, q2.Answer, third.Result.CorrectAnswer)

	stat = findStat(t, ts, "ayse", q2.Term)
	assert.Equal(t, 1, stat.IncorrectCount)
}

func TestSubmitAnswer_VanishedTermKeepsQuizzing(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	cookie := ts.register(t, "ayse", "parola")

	rec := ts.do(t, http.MethodPost, "/api/quiz", quizSubmission{
		Level:    "A1",
		Term:     "no-such-term",
		Answer:   "anything",
		Expected: "anything",
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp quizResponse
	decodeBody(t, rec, &resp)
	assert.Nil(t, resp.Result)
	require.NotNil(t, resp.Question)
}

func TestNextQuestion_EmptyLevelFallsBack(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	cookie := ts.register(t, "ayse", "parola")

	ctx := context.Background()
	_, err := ts.words.Load(ctx, "ayse", "")
	require.NoError(t, err)
	require.NoError(t, ts.words.DeleteAll(ctx, "ayse"))
	require.NoError(t, ts.words.Add(ctx, "ayse", "apple", "elma", "A1"))

	rec := ts.do(t, http.MethodGet, "/api/quiz?level=C2", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp quizResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "C2", resp.Level)
	require.NotNil(t, resp.Question)
	assert.Equal(t, "apple", resp.Question.Term)
}

func TestNextQuestion_Unauthorized(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/api/quiz", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
