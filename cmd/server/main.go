package main

import (
	"log/slog"
	"net/http"
	"os"

	"cheff-backend/internal/api"
	"cheff-backend/internal/auth"
	"cheff-backend/internal/config"
	"cheff-backend/internal/images"
	"cheff-backend/internal/middleware"
	"cheff-backend/internal/storage/sqlite"
	"cheff-backend/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	imgStore, err := images.NewStore(cfg.ImageDir)
	if err != nil {
		slog.Error("Failed to initialize image storage", "error", err)
		os.Exit(1)
	}
	slog.Info("Serving uploaded images", "path", cfg.ImageDir)

	authenticator := auth.NewPasswordAuthenticator(store)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	server := api.NewServer(store, authenticator, jwtManager, imgStore)
	handler := middleware.Logging(middleware.CORS(server.Router()))

	slog.Info("Server starting", "address", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
