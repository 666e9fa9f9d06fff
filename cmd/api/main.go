package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "taskclaim/internal/adapter/db"
	httpadapter "taskclaim/internal/adapter/http"
	"taskclaim/internal/adapter/http/handlers"
	httpmiddleware "taskclaim/internal/adapter/http/middleware"
	appservice "taskclaim/internal/app/service"
	"taskclaim/internal/config"
	"taskclaim/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	if err := dbadapter.Bootstrap(context.Background(), db); err != nil {
		logger.Fatal("failed to bootstrap database", zap.Error(err))
	}

	taskRepository := dbadapter.NewTaskRepository(db)
	userRepository := dbadapter.NewUserRepository(db)
	statsRepository := dbadapter.NewStatsRepository(db)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("failed to set trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:       handlers.NewHealthHandler(db),
		Task:         handlers.NewTaskHandler(appservice.NewTaskService(taskRepository)),
		User:         handlers.NewUserHandler(appservice.NewUserService(userRepository, taskRepository)),
		Stats:        handlers.NewStatsHandler(appservice.NewStatsService(statsRepository)),
		Notification: handlers.NewNotificationHandler(appservice.NewNotificationService(taskRepository)),
	})

	port := cfg.AppPort
	if port == "" {
		port = "3001"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
