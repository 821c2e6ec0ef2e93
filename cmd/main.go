// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"polingo/internal/config"
	"polingo/internal/handlers"
	"polingo/internal/llm"
	"polingo/internal/middleware"
	"polingo/internal/repository"
	"polingo/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	// .env があれば読み込む（無ければ環境変数をそのまま使う）
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	// Configを読み込み
	if err := config.LoadConfig("../configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	// 開発環境では色付きのテキストログ、それ以外ではJSONログを使う
	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// 3. Dependency Injection
	wordRepo := repository.NewGormWordRepository()
	optionRepo := repository.NewGormWordOptionRepository()
	practiceRepo := repository.NewGormPracticeRepository()
	sessionRepo := repository.NewGormSessionRepository()
	sessionWordRepo := repository.NewGormSessionWordRepository()
	verbRepo := repository.NewGormVerbRepository()
	conjugationRepo := repository.NewGormVerbConjugationRepository()
	sessionVerbRepo := repository.NewGormSessionVerbRepository()
	verbPracticeRepo := repository.NewGormVerbPracticeRepository()
	deviceRepo := repository.NewGormDeviceRepository()

	llmClient := llm.NewOpenAIClient(&config.Cfg, logger)

	wordService := service.NewWordService(db, wordRepo, optionRepo, sessionWordRepo, practiceRepo, llmClient, &config.Cfg)
	sessionService := service.NewSessionService(db, sessionRepo, sessionWordRepo, wordRepo)
	practiceService := service.NewPracticeService(db, wordRepo, optionRepo, practiceRepo, sessionRepo, sessionWordRepo, llmClient)
	statsService := service.NewStatsService(db, wordRepo, verbRepo, practiceRepo, verbPracticeRepo)
	verbService := service.NewVerbService(db, verbRepo, conjugationRepo, sessionRepo, sessionVerbRepo, verbPracticeRepo, llmClient)
	adminService := service.NewAdminService(db, deviceRepo, &config.Cfg)

	wordHandler := handlers.NewWordHandler(wordService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	practiceHandler := handlers.NewPracticeHandler(practiceService)
	statsHandler := handlers.NewStatsHandler(statsService)
	verbHandler := handlers.NewVerbHandler(verbService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// 4. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	// CORS 設定と適用 (設定ファイルから読み込んだ値を使用)
	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health Check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unavailable","service":"polingo"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"polingo"}`))
	})

	// API Routes
	r.Route("/api", func(r chi.Router) {
		// アクセス元端末の記録（失敗してもリクエストは続行する）
		r.Use(middleware.DeviceTrackingMiddleware(adminService))

		r.Route("/words", func(r chi.Router) {
			r.Get("/initial", wordHandler.GetInitialWords)
			r.Post("/check", wordHandler.CheckWord)
			r.Post("/check/bulk", wordHandler.CheckWordsBulk)
			r.Delete("/{word_id}", wordHandler.DeleteWord)
		})

		r.Route("/session", func(r chi.Router) {
			r.Get("/", sessionHandler.GetSession)
			r.Put("/language", sessionHandler.UpdateLanguage)
			r.Post("/words", sessionHandler.AddWord)
			r.Post("/words/bulk", sessionHandler.AddWordsBulk)
			r.Put("/words/toggle", sessionHandler.ToggleWord)
			r.Delete("/words/{word_id}", sessionHandler.RemoveWord)
		})

		r.Route("/practice", func(r chi.Router) {
			r.Post("/submit", practiceHandler.Submit)
			r.Post("/validate", practiceHandler.Validate)
			r.Post("/skip", practiceHandler.Skip)
			r.Get("/question", practiceHandler.GetQuestion)
			r.Post("/pronunciation", practiceHandler.ValidatePronunciation)
		})

		r.Get("/stats", statsHandler.GetWordStats)

		r.Route("/verbs", func(r chi.Router) {
			r.Post("/add", verbHandler.AddVerb)
			r.Get("/session", verbHandler.GetSession)
			r.Post("/session", verbHandler.AddToSession)
			r.Put("/session/toggle", verbHandler.ToggleVerb)
			r.Delete("/session/{verb_id}", verbHandler.RemoveFromSession)
			r.Get("/question", verbHandler.GetQuestion)
			r.Post("/validate", verbHandler.ValidateEndings)
			r.Get("/stats", statsHandler.GetEndingsStats)
			r.Delete("/{verb_id}", verbHandler.DeleteVerb)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/devices", adminHandler.GetDevices)
			r.Delete("/devices/{device_id}", adminHandler.DeleteDevice)
			r.Delete("/devices", adminHandler.ClearDevices)
		})
	})

	// 5. Start Server
	server := &http.Server{
		Addr:        config.Cfg.Server.Port,
		Handler:     r,
		ReadTimeout: 5 * time.Second,
		// オラクル呼び出しを含むエンドポイントに合わせて長めに設定
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1) // Listen失敗は致命的
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
