package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"etkinlikHub/internal/aggregator"
	"etkinlikHub/internal/config"
	"etkinlikHub/internal/graceful"
	"etkinlikHub/internal/repositories"
	"etkinlikHub/internal/sources"
	"etkinlikHub/internal/telegram"
	"etkinlikHub/internal/transport/httpServer"
	"etkinlikHub/internal/transport/httpServer/handlers"
	"etkinlikHub/internal/transport/httpServer/routers"
	"etkinlikHub/internal/utils/logger/handlers/slogpretty"
	"etkinlikHub/internal/utils/logger/sl"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

var Version = "0.1"

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info(
		"starting events hub",
		slog.String("env", cfg.Env),
		slog.String("version", Version),
	)

	repositoryService, err := repositories.New(log, cfg)
	if err != nil {
		log.Error("cannot connect to database", sl.Err(err))
		os.Exit(1)
	}

	notifier := telegram.New(log, cfg)

	cache := sources.NewCache(cfg.SourcesConfig.CacheTTL)
	ticketmaster := sources.NewTicketmaster(log, cfg.SourcesConfig, cache)
	aggregatorService := aggregator.New(log,
		ticketmaster,
		sources.NewKulturSanat(log, cfg.SourcesConfig, cache),
		sources.NewSportsDB(log, cfg.SourcesConfig, cache),
		sources.NewBiletino(log, cfg.SourcesConfig, cache),
	)

	// HTTP Server
	eventHandler := handlers.NewEventHandler(log, aggregatorService, ticketmaster, cache)
	waitlistHandler := handlers.NewWaitlistHandler(log, repositoryService, notifier)
	router := routers.NewRouter(eventHandler, waitlistHandler, cfg.HttpServer.Secret)
	httpSrv := httpServer.NewHttpServer(log, router, cfg)

	maxSecond := 15 * time.Second
	waitShutdown := graceful.GracefulShutdown(
		context.Background(),
		maxSecond,
		map[string]graceful.Operation{
			"Repository service": func(ctx context.Context) error {
				return repositoryService.Shutdown(ctx)
			},
			"Telegram notifier": func(ctx context.Context) error {
				return notifier.Shutdown(ctx)
			},
			"HTTP server": func(ctx context.Context) error {
				return httpSrv.Shutdown(ctx)
			},
		},
		log,
	)

	go httpSrv.Listen()

	<-waitShutdown
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog(slog.LevelDebug)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = setupPrettySlog(slog.LevelInfo)
	default: // If env config is invalid, set prod settings by default due to security
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}

func setupPrettySlog(level slog.Level) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: level,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}
