package httpServer

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"etkinlikHub/internal/config"
	"etkinlikHub/internal/utils/logger/sl"

	"github.com/go-chi/chi/v5"
)

// Router монтирует маршруты приложения в chi-мультиплексор.
type Router interface {
	Mount(mux *chi.Mux)
}

type HttpServer struct {
	log    *slog.Logger
	server *http.Server
}

func NewHttpServer(log *slog.Logger, router Router, cfg *config.Config) *HttpServer {
	op := "httpServer.NewHttpServer()"
	log = log.With(slog.String("op", op))

	mux := chi.NewMux()
	router.Mount(mux)

	addr := net.JoinHostPort(cfg.HttpServer.Address, cfg.HttpServer.Port)

	log.Info("Creating http server", slog.String("address", addr))

	return &HttpServer{
		log: log,
		server: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  cfg.HttpServer.Timeout,
			WriteTimeout: cfg.HttpServer.Timeout,
		},
	}
}

func (s *HttpServer) Listen() {
	op := "httpServer.Listen()"
	log := s.log.With(slog.String("op", op))

	log.Info("http server started", slog.String("address", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("http server stopped", sl.Err(err))
	}
}

func (s *HttpServer) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
