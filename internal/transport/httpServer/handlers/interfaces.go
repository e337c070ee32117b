package handlers

import (
	"context"

	"etkinlikHub/internal/models/domain"
)

// EventAggregator — интерфейс агрегатора событий из хэндлеров.
type EventAggregator interface {
	Aggregate(ctx context.Context, tab domain.Tab, city string) domain.AggregateResult
}

// DiscoveryProvider — единственный провайдер легаси-эндпоинта.
type DiscoveryProvider interface {
	Discovery(ctx context.Context, city string, size int) ([]domain.EventItem, int, error)
}

// CachePurger сбрасывает кэш ответов провайдеров.
type CachePurger interface {
	Purge()
}

// WaitlistRepository — хранилище подписчиков листа ожидания.
type WaitlistRepository interface {
	CreateSubscriber(ctx context.Context, sub domain.Subscriber) (domain.Subscriber, error)
}

// SubscriberNotifier уведомляет админов о новой подписке.
type SubscriberNotifier interface {
	NotifySubscriber(sub domain.Subscriber) error
}
