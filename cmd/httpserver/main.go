// Package main runs the mflix movie catalog API.
//
// @title mflix API
// @version 1.0
// @description Read-only movie catalog backed by MongoDB.
// @BasePath /
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "mflix/docs"
	"mflix/httpserver"
	"mflix/mongodb"
	"mflix/movie"
	"mflix/pkg/config"
	"mflix/pkg/logger"
	"mflix/pkg/sentry"

	sentrygo "github.com/getsentry/sentry-go"
)

const shutdownTimeout = 10 * time.Second

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		slog.Error("Cannot init logger", "error", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	conn, err := mongodb.NewConnection(mongodb.Options{
		URI:              cfg.Mongo.URI,
		Database:         cfg.Mongo.Database,
		ConnectTimeout:   cfg.Mongo.ConnectTimeout,
		OperationTimeout: cfg.Mongo.OperationTimeout,
	})
	if err != nil {
		sentry.Fatal(err)
		log.Errorw("Cannot open mongodb connection", "error", err)
		os.Exit(1)
	}

	server := httpserver.Default(cfg)
	server.Logger = log
	server.MovieService = movie.NewUsecase(mongodb.NewMovieRepository(conn), log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infow("server started!", "addr", server.Addr, "database", cfg.Mongo.Database)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("server stopped with error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server shutdown failed", "error", err)
	}
	if err := conn.Close(shutdownCtx); err != nil {
		log.Errorw("mongodb disconnect failed", "error", err)
	}
	log.Info("server stopped")
}
