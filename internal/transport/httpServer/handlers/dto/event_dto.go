package dto

import "etkinlikHub/internal/models/domain"

// EventResponse — DTO события в ответе API.
type EventResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Venue      string `json:"venue"`
	City       string `json:"city"`
	Image      string `json:"image"`
	URL        string `json:"url"`
	Category   string `json:"category"`
	Source     string `json:"source"`
	PriceRange string `json:"priceRange,omitempty"`
}

// EventsEnvelope — конверт ответа агрегирующего эндпоинта.
// Поле error заполняется только при полном отказе конвейера.
type EventsEnvelope struct {
	Events  []EventResponse `json:"events"`
	Total   int             `json:"total"`
	Sources []string        `json:"sources,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// DiscoveryEnvelope — конверт легаси-эндпоинта (прокси одного провайдера).
type DiscoveryEnvelope struct {
	Source  string          `json:"source"`
	Events  []EventResponse `json:"events"`
	Total   int             `json:"total,omitempty"`
	Message string          `json:"message,omitempty"`
}

// WaitlistRequest — заявка на подписку с лендинга.
type WaitlistRequest struct {
	Email string `json:"email"`
	City  string `json:"city"`
}

type WaitlistResponse struct {
	Status string `json:"status"`
}

func MapDomainToEventResponse(e domain.EventItem) EventResponse {
	return EventResponse{
		ID:         e.ID,
		Name:       e.Name,
		Date:       e.Date,
		Time:       e.Time,
		Venue:      e.Venue,
		City:       e.City,
		Image:      e.Image,
		URL:        e.URL,
		Category:   e.Category,
		Source:     e.Source,
		PriceRange: e.PriceRange,
	}
}

func MapDomainToEventResponseList(events []domain.EventItem) []EventResponse {
	result := make([]EventResponse, len(events))
	for i, e := range events {
		result[i] = MapDomainToEventResponse(e)
	}
	return result
}
