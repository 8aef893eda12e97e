package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonerk/kelimeweb/seed"
)

func TestAddWord(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	cookie := ts.register(t, "ayse", "parola")

	rec := ts.do(t, http.MethodPost, "/api/words", addWordRequest{
		ForeignTerm: "Lighthouse",
		NativeTerm:  "Deniz Feneri",
		Level:       "b2",
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Adding before the first quiz still leaves the seed catalog underneath.
	count, err := ts.words.Count(context.Background(), "ayse")
	require.NoError(t, err)
	assert.Equal(t, int64(len(seed.Catalog())+1), count)

	stat := findStat(t, ts, "ayse", "lighthouse")
	assert.Equal(t, "deniz feneri", stat.NativeTerm)
	assert.Equal(t, "B2", stat.Level)
}

func TestAddWord_Duplicate(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	cookie := ts.register(t, "ayse", "parola")

	body := addWordRequest{ForeignTerm: "lighthouse", NativeTerm: "deniz feneri", Level: "B2"}
	rec := ts.do(t, http.MethodPost, "/api/words", body, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	body.ForeignTerm = "LIGHTHOUSE"
	rec = ts.do(t, http.MethodPost, "/api/words", body, cookie)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAddWord_MissingTerms(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	cookie := ts.register(t, "ayse", "parola")

	rec := ts.do(t, http.MethodPost, "/api/words", addWordRequest{
		ForeignTerm: "lighthouse",
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetStats(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	cookie := ts.register(t, "ayse", "parola")

	ctx := context.Background()
	_, err := ts.words.Load(ctx, "ayse", "")
	require.NoError(t, err)
	require.NoError(t, ts.words.RecordAnswer(ctx, "ayse", "apple", true))
	require.NoError(t, ts.words.RecordAnswer(ctx, "ayse", "apple", true))
	require.NoError(t, ts.words.RecordAnswer(ctx, "ayse", "water", false))

	rec := ts.do(t, http.MethodGet, "/api/stats?level=a1", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp statsResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "A1", resp.Level)
	require.NotEmpty(t, resp.Words)

	byTerm := map[string]int{}
	for _, w := range resp.Words {
		byTerm[w.ForeignTerm] = w.AccuracyPercent
	}
	assert.Equal(t, 100, byTerm["apple"])
	assert.Equal(t, 0, byTerm["water"])
}

func TestGetStats_UnknownLevelMeansAll(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	cookie := ts.register(t, "ayse", "parola")

	_, err := ts.words.Load(context.Background(), "ayse", "")
	require.NoError(t, err)

	rec := ts.do(t, http.MethodGet, "/api/stats?level=Z9", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp statsResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "ALL", resp.Level)
	assert.Len(t, resp.Words, len(seed.Catalog()))
}
