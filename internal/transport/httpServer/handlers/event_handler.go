package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"etkinlikHub/internal/models/domain"
	"etkinlikHub/internal/sources"
	"etkinlikHub/internal/transport/httpServer/handlers/dto"
	"etkinlikHub/internal/utils"
	"etkinlikHub/internal/utils/logger/sl"
)

const (
	defaultDiscoveryCity = "Istanbul"
	defaultDiscoverySize = 12
)

type EventHandler struct {
	log        *slog.Logger
	aggregator EventAggregator
	discovery  DiscoveryProvider
	cache      CachePurger
}

func NewEventHandler(log *slog.Logger, aggregator EventAggregator, discovery DiscoveryProvider, cache CachePurger) *EventHandler {
	return &EventHandler{
		log:        log,
		aggregator: aggregator,
		discovery:  discovery,
		cache:      cache,
	}
}

// GetEvents обрабатывает GET /api/v1/events?tab=...&city=...
//
// Всегда отвечает 200: при полном отказе конвейера — пустой конверт с полем
// error. Деградация видна по телу ответа, не по статусу.
func (h *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.EventHandler.GetEvents()"
	log := h.log.With(slog.String("op", op))

	// Последний рубеж: паника где угодно в конвейере не должна дойти до клиента
	defer func() {
		if rec := recover(); rec != nil {
			log.Error("pipeline panic", slog.Any("panic", rec))
			h.respondEnvelope(log, w, dto.EventsEnvelope{
				Events: []dto.EventResponse{},
				Error:  "etkinlikler yüklenemedi",
			})
		}
	}()

	tab := domain.Tab(r.URL.Query().Get("tab"))
	if tab == "" {
		tab = domain.TabAll
	}
	city := r.URL.Query().Get("city")

	result := h.aggregator.Aggregate(r.Context(), tab, city)

	h.respondEnvelope(log, w, dto.EventsEnvelope{
		Events:  dto.MapDomainToEventResponseList(result.Events),
		Total:   result.Total,
		Sources: result.Sources,
	})
}

// GetDiscovery обрабатывает GET /api/events?city=...&size=... — легаси-эндпоинт
// первого поколения: прокси одного билетного провайдера с фолбэком на
// статический список. Тоже всегда 200.
func (h *EventHandler) GetDiscovery(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.EventHandler.GetDiscovery()"
	log := h.log.With(slog.String("op", op))

	city := r.URL.Query().Get("city")
	if city == "" {
		city = defaultDiscoveryCity
	}

	size := defaultDiscoverySize
	if raw := r.URL.Query().Get("size"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			size = parsed
		}
	}

	events, total, err := h.discovery.Discovery(r.Context(), city, size)
	if err != nil {
		message := "API bağlantı hatası"
		if errors.Is(err, sources.ErrNoAPIKey) {
			message = "Ticketmaster API key tanımlı değil. Örnek etkinlikler gösteriliyor."
		} else {
			log.Warn("discovery failed, serving fallback", sl.Err(err))
		}

		h.respondJson(log, w, dto.DiscoveryEnvelope{
			Source:  "fallback",
			Events:  dto.MapDomainToEventResponseList(sources.FallbackEvents()),
			Message: message,
		})
		return
	}

	h.respondJson(log, w, dto.DiscoveryEnvelope{
		Source: "ticketmaster",
		Events: dto.MapDomainToEventResponseList(events),
		Total:  total,
	})
}

// PurgeCache обрабатывает POST /api/v1/admin/cache/purge
func (h *EventHandler) PurgeCache(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.EventHandler.PurgeCache()"
	log := h.log.With(slog.String("op", op))

	h.cache.Purge()
	log.Info("source cache purged")

	if err := utils.Json(w, http.StatusOK, map[string]string{"status": "ok"}); err != nil {
		log.Error("error encoding response", sl.Err(err))
	}
}

func (h *EventHandler) respondEnvelope(log *slog.Logger, w http.ResponseWriter, envelope dto.EventsEnvelope) {
	if envelope.Events == nil {
		envelope.Events = []dto.EventResponse{}
	}
	h.respondJson(log, w, envelope)
}

func (h *EventHandler) respondJson(log *slog.Logger, w http.ResponseWriter, v interface{}) {
	if err := utils.Json(w, http.StatusOK, v); err != nil {
		log.Error("error encoding response", sl.Err(fmt.Errorf("encode: %w", err)))
	}
}
