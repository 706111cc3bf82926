package main

import (
	"context"
	"log/slog"
	"os"

	"mflix/mongodb"
	"mflix/pkg/config"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	conn, err := mongodb.NewConnection(mongodb.Options{
		URI:              cfg.Mongo.URI,
		Database:         cfg.Mongo.Database,
		ConnectTimeout:   cfg.Mongo.ConnectTimeout,
		OperationTimeout: cfg.Mongo.OperationTimeout,
	})
	if err != nil {
		logger.Error("cannot connect to mongodb", "error", err)
		os.Exit(1)
	}
	defer func() { _ = conn.Close(context.Background()) }()

	total, err := mongodb.EnsureIndexes(context.Background(), conn)
	if err != nil {
		logger.Error("cannot create indexes", "error", err)
		os.Exit(1)
	}

	logger.Info("applied indexes", "total", total, "database", cfg.Mongo.Database)
}
