package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sonerk/kelimeweb/middleware"
	"github.com/sonerk/kelimeweb/models"
	"github.com/sonerk/kelimeweb/store"
)

const testJWTSecret = "handler-test-secret"

// testServer wires the real stores and middleware against an in-memory
// database, the same way main does.
type testServer struct {
	mux   *http.ServeMux
	words *store.WordStore
	users *store.UserStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.WordEntry{}))

	logger := zap.NewNop()
	words := store.NewWordStore(db, logger)
	users := store.NewUserStore(db, logger)

	h := &Handler{
		Words:  words,
		Users:  users,
		Log:    logger,
		Secret: testJWTSecret,
	}
	authn := &middleware.Authenticator{Secret: testJWTSecret, Users: users}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/register", h.Register)
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.HandleFunc("GET /api/quiz", authn.RequireUser(h.NextQuestion))
	mux.HandleFunc("POST /api/quiz", authn.RequireUser(h.SubmitAnswer))
	mux.HandleFunc("POST /api/words", authn.RequireUser(h.AddWord))
	mux.HandleFunc("GET /api/stats", authn.RequireUser(h.GetStats))
	mux.HandleFunc("GET /api/admin/users", authn.RequireAdmin(h.ListUsers))
	mux.HandleFunc("DELETE /api/admin/users/{username}", authn.RequireAdmin(h.DeleteUser))
	mux.HandleFunc("GET /api/admin/export/users", authn.RequireAdmin(h.ExportUsers))

	return &testServer{mux: mux, words: words, users: users}
}

// do runs a request through the mux, attaching the session cookie if given.
func (ts *testServer) do(t *testing.T, method, target string, body interface{}, session *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != nil {
		req.AddCookie(session)
	}

	rec := httptest.NewRecorder()
	ts.mux.ServeHTTP(rec, req)
	return rec
}

// register creates an account through the API and returns its session cookie.
func (ts *testServer) register(t *testing.T, username, password string) *http.Cookie {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/api/auth/register", map[string]string{
		"username": username,
		"password": password,
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return sessionCookie(t, rec)
}

// login authenticates through the API and returns the session cookie.
func (ts *testServer) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	return sessionCookie(t, rec)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.CookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", middleware.CookieName)
	return nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}
