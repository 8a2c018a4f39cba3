package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	_ "github.com/navyashreebh2-create/diary-baby/docs" // swagger docs

	"github.com/navyashreebh2-create/diary-baby/internal/ai"
	"github.com/navyashreebh2-create/diary-baby/internal/auth"
	"github.com/navyashreebh2-create/diary-baby/internal/config"
	"github.com/navyashreebh2-create/diary-baby/internal/db"
	"github.com/navyashreebh2-create/diary-baby/internal/handler"
	"github.com/navyashreebh2-create/diary-baby/internal/model"
	"github.com/navyashreebh2-create/diary-baby/internal/repository"
	"github.com/navyashreebh2-create/diary-baby/internal/router"
	"github.com/navyashreebh2-create/diary-baby/internal/service"
)

// @title Diary Baby API
// @version 1.0
// @description Personal journaling API with AI companion replies and cookie-based session authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.DiaryEntry{},
	); err != nil {
		logger.Fatal("auto-migrate", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	entryRepo := repository.NewDiaryEntryRepository(gormDB)

	// The signing secret is injected here and nowhere else.
	tokens := auth.NewTokenService(cfg.JWTSecret)
	replies := ai.NewClient(cfg.OpenAIBaseURL)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	diaryService := service.NewDiaryService(entryRepo, replies, logger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, tokens, cfg.IsProduction())
	diaryHandler := handler.NewDiaryHandler(diaryService)
	pageHandler := handler.NewPageHandler()

	e := echo.New()
	e.HideBanner = true

	router.Register(e, tokens, authHandler, diaryHandler, pageHandler)

	addr := ":" + cfg.ServerPort
	logger.Info("starting server", zap.String("addr", addr), zap.String("env", cfg.AppEnv))
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server start", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
