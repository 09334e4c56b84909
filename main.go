package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fintrack/api"
	"fintrack/config"
	_ "fintrack/docs"
	"fintrack/service"
	"fintrack/store"
)

// @title        Fintrack API
// @version      1.0
// @description  Transaction persistence and query service for a personal finance tracker.
// @BasePath     /
func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	var st store.Store
	switch cfg.DataBackend {
	case "memory":
		st = store.NewMemoryStore()
	default:
		fs, err := store.NewFileStore(cfg.DataFile)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DataFile).Msg("failed to open data file store")
		}
		st = fs
	}

	svc := service.NewTransactionService(st)
	handler := api.NewHandler(svc)

	r := gin.New()
	r.Use(gin.Recovery(), api.RequestLogger())
	r.GET("/healthz", api.Health)
	handler.Register(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.DataBackend).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
