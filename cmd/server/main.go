package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bogadeji/trivia/internal/config"
	"github.com/bogadeji/trivia/internal/handlers"
	"github.com/bogadeji/trivia/internal/models"
	"github.com/bogadeji/trivia/internal/repositories/postgres"
	"github.com/bogadeji/trivia/internal/services"
	"github.com/bogadeji/trivia/internal/utils"
	"github.com/bogadeji/trivia/internal/validator"
	"github.com/bogadeji/trivia/pkg"
	"github.com/gin-gonic/gin"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var slogger *slog.Logger
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
		slogger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	} else {
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	logger := utils.NewSlogLogger(slogger)

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	if err := db.AutoMigrate(&models.Category{}, &models.Question{}); err != nil {
		log.Fatalf("migrate db: %v", err)
	}

	publisher, err := cfg.Events.CreateEventPublisher(slogger)
	if err != nil {
		log.Fatalf("event publisher: %v", err)
	}
	defer publisher.Close()

	repo := postgres.NewRepository(db)
	v := validator.New()

	categoryService := services.NewCategoryService(repo, slogger)
	questionService := services.NewQuestionService(repo, slogger, v, publisher)
	exportService := services.NewExportService(repo, slogger)

	hm := handlers.NewHandlerManager(categoryService, questionService, exportService, logger)

	router := gin.New()
	router.Use(gin.CustomRecovery(handlers.RecoveryHandler(logger)))
	router.Use(utils.LoggerMiddleware(logger))
	hm.SetupRoutes(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		slogger.Info("trivia api listening", "port", cfg.Port, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	slogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
