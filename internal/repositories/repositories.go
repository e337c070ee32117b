package repositories

import (
	"context"
	"fmt"
	"log/slog"

	"etkinlikHub/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type Repository struct {
	log *slog.Logger
	DB  *sqlx.DB
}

// New открывает соединение с Postgres и проверяет его пингом.
func New(log *slog.Logger, cfg *config.Config) (*Repository, error) {
	op := "repository.New()"
	log = log.With(slog.String("op", op))

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBConfig.Host,
		cfg.DBConfig.Port,
		cfg.DBConfig.User,
		cfg.DBConfig.Password,
		cfg.DBConfig.Name,
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("Creating repository service",
		slog.String("host", cfg.DBConfig.Host),
		slog.String("db", cfg.DBConfig.Name),
	)

	return &Repository{
		log: log,
		DB:  db,
	}, nil
}

func (r *Repository) Shutdown(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("force exit repository: %w", ctx.Err())
	default:
		return r.DB.Close()
	}
}
