package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/readle-app/readle/internal/api"
	"github.com/readle-app/readle/internal/app"
	"github.com/readle-app/readle/internal/chatbot"
	"github.com/readle-app/readle/internal/config"
	"github.com/readle-app/readle/internal/db"
	"github.com/readle-app/readle/internal/middleware"
	"github.com/readle-app/readle/internal/utils"
)

func main() {
	cfg := config.Load()
	logger := app.NewLogger(cfg.Environment)
	defer func() { _ = logger.Sync() }()

	var store api.Store
	if cfg.SQLitePath != "" {
		sqlDB, err := db.Open(cfg.SQLitePath)
		if err != nil {
			logger.Fatal("open sqlite", zap.Error(err))
		}
		defer func() { _ = sqlDB.Close() }()
		if err := db.RunMigrations(sqlDB, cfg.MigrationsDir); err != nil {
			logger.Fatal("run migrations", zap.Error(err))
		}
		store, err = db.NewSQLiteStore(sqlDB, logger)
		if err != nil {
			logger.Fatal("init sqlite store", zap.Error(err))
		}
		logger.Info("using sqlite store", zap.String("path", cfg.SQLitePath))
	} else {
		store = api.NewMemoryStore()
		logger.Info("using in-memory store; sessions will not survive restarts")
	}

	chatClient := chatbot.NewClientFromEnv(logger)
	logger.Info("chatbot collaborator", zap.String("base_url", chatClient.BaseURL()))

	mux := http.NewServeMux()
	api.NewRouter(store, chatClient, logger).Register(mux)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		locale := middleware.LocaleFromContext(r.Context())
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":      true,
			"name":    "Readle API",
			"locale":  locale,
			"msg":     utils.T(locale, "health.ok"),
			"service": "readle-server",
		})
	})

	handler := middleware.RequestLogger(logger)(
		middleware.NoStore(
			middleware.SecureHeaders(
				middleware.CORS(
					middleware.Locale(
						middleware.WithAuth(mux))))))

	srv := &http.Server{Addr: cfg.Addr, Handler: handler}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
