package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"etkinlikHub/internal/models/domain"
	"etkinlikHub/internal/models/repositories"

	"github.com/google/uuid"
)

// ErrSubscriberExists возвращается при повторной подписке того же email.
var ErrSubscriberExists = errors.New("subscriber already exists")

func (r *Repository) CreateSubscriber(ctx context.Context, sub domain.Subscriber) (domain.Subscriber, error) {
	op := "repository.CreateSubscriber()"

	existing, err := r.FindSubscriberByEmail(ctx, sub.Email)
	if err == nil && existing.ID != "" {
		return existing, ErrSubscriberExists
	}

	id := uuid.New()

	insertQuery := `INSERT INTO waitlist_subscribers (id, email, city, created_at, updated_at)
	                VALUES ($1, $2, $3, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`

	_, err = r.DB.ExecContext(ctx, insertQuery, id, sub.Email, sub.City)
	if err != nil {
		return domain.Subscriber{}, fmt.Errorf("%s: %w", op, err)
	}

	sub.ID = id.String()

	return sub, nil
}

func (r *Repository) FindSubscriberByEmail(ctx context.Context, email string) (domain.Subscriber, error) {
	var row repositories.Subscriber
	query := `SELECT id, email, city, created_at, updated_at
	          FROM waitlist_subscribers WHERE email = $1 LIMIT 1`

	err := r.DB.GetContext(ctx, &row, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Subscriber{}, fmt.Errorf("subscriber not found with email: %s", email)
		}
		return domain.Subscriber{}, fmt.Errorf("error in FindSubscriberByEmail(): %w", err)
	}

	return domain.Subscriber{
		ID:    row.ID.String(),
		Email: row.Email,
		City:  row.City,
	}, nil
}

func (r *Repository) CountSubscribers(ctx context.Context) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM waitlist_subscribers`)
	if err != nil {
		return 0, fmt.Errorf("error in CountSubscribers(): %w", err)
	}
	return count, nil
}
