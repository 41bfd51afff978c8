package main

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"golang.org/x/exp/slog"

	"github.com/MayoSR/cornell-student-housing-backend/config"
	"github.com/MayoSR/cornell-student-housing-backend/routes"
	"github.com/MayoSR/cornell-student-housing-backend/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("loading configuration", "err", err)
		os.Exit(1)
	}

	db, err := storage.InitializeDB(cfg.DatabaseDSN)
	if err != nil {
		logger.Error("initializing database", "err", err)
		os.Exit(1)
	}

	artifacts, err := storage.NewArtifactStore(cfg)
	if err != nil {
		logger.Error("initializing artifact store", "err", err)
		os.Exit(1)
	}
	logger.Info("artifact store ready", "backend", string(cfg.ArtifactBackend))

	var cache *storage.Cache
	if cfg.RedisURL != "" {
		cache = storage.NewCache(cfg.RedisURL)
		logger.Info("redis cache enabled", "addr", cfg.RedisURL)
	}

	store := storage.NewStore(db, artifacts, cache, logger)

	app := iris.New()
	app.Validator = validator.New()

	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(corsMiddleware(cfg))
	app.Use(iris.Compression)

	routes.Register(app, store, cfg)

	if cfg.TestMode {
		logger.Warn("test mode enabled: bulk reset endpoint is live")
	}

	if err := app.Listen(cfg.ListenAddr); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func corsMiddleware(cfg config.Config) iris.Handler {
	return func(ctx iris.Context) {
		origin := ctx.GetHeader("Origin")
		if origin != "" && cfg.AllowsOrigin(origin) {
			ctx.Header("Access-Control-Allow-Origin", origin)
			ctx.Header("Vary", "Origin")
			ctx.Header("Access-Control-Allow-Credentials", "true")
			ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
			ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		}
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	}
}
