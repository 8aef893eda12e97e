package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/sonerk/kelimeweb/config"
	"github.com/sonerk/kelimeweb/handlers"
	"github.com/sonerk/kelimeweb/middleware"
	"github.com/sonerk/kelimeweb/store"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	db, err := config.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	words := store.NewWordStore(db, logger)
	users := store.NewUserStore(db, logger)

	// Guarantee the configured admin account on every start.
	if cfg.AdminUser != "" && cfg.AdminPass != "" {
		if err := users.EnsureAdmin(context.Background(), cfg.AdminUser, cfg.AdminPass); err != nil {
			logger.Fatal("failed to ensure admin user", zap.Error(err))
		}
	}

	h := &handlers.Handler{
		Words:  words,
		Users:  users,
		Log:    logger,
		Secret: cfg.JWTSecret,
		Secure: !cfg.IsDevelopment(),
	}
	authn := &middleware.Authenticator{Secret: cfg.JWTSecret, Users: users}

	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/auth/register", h.Register)
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)

	// Quiz
	mux.HandleFunc("GET /api/quiz", authn.RequireUser(h.NextQuestion))
	mux.HandleFunc("POST /api/quiz", authn.RequireUser(h.SubmitAnswer))

	// Words and stats
	mux.HandleFunc("POST /api/words", authn.RequireUser(h.AddWord))
	mux.HandleFunc("GET /api/stats", authn.RequireUser(h.GetStats))

	// Admin
	mux.HandleFunc("GET /api/admin/users", authn.RequireAdmin(h.ListUsers))
	mux.HandleFunc("DELETE /api/admin/users/{username}", authn.RequireAdmin(h.DeleteUser))
	mux.HandleFunc("GET /api/admin/export/users", authn.RequireAdmin(h.ExportUsers))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(mux)

	serverAddr := "0.0.0.0:" + cfg.Port
	logger.Info("server listening", zap.String("addr", serverAddr))

	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
