package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"etkinlikHub/internal/models/domain"
	"etkinlikHub/internal/repositories"
	"etkinlikHub/internal/transport/httpServer/handlers/dto"
	"etkinlikHub/internal/utils"
	"etkinlikHub/internal/utils/logger/sl"
)

type WaitlistHandler struct {
	log      *slog.Logger
	repo     WaitlistRepository
	notifier SubscriberNotifier
}

func NewWaitlistHandler(log *slog.Logger, repo WaitlistRepository, notifier SubscriberNotifier) *WaitlistHandler {
	return &WaitlistHandler{
		log:      log,
		repo:     repo,
		notifier: notifier,
	}
}

// Subscribe обрабатывает POST /api/v1/waitlist
func (h *WaitlistHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.WaitlistHandler.Subscribe()"
	log := h.log.With(slog.String("op", op))

	var req dto.WaitlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(log, fmt.Errorf("cannot decode json: %w", err), w, http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		h.respondError(log, fmt.Errorf("invalid email"), w, http.StatusBadRequest)
		return
	}

	sub := domain.Subscriber{
		Email: email,
		City:  strings.TrimSpace(req.City),
	}

	created, err := h.repo.CreateSubscriber(r.Context(), sub)
	if err != nil {
		if errors.Is(err, repositories.ErrSubscriberExists) {
			if jsonErr := utils.Json(w, http.StatusOK, dto.WaitlistResponse{Status: "already_subscribed"}); jsonErr != nil {
				log.Error("error encoding response", sl.Err(jsonErr))
			}
			return
		}
		h.respondError(log, fmt.Errorf("failed to create subscriber: %w", err), w, http.StatusInternalServerError)
		return
	}

	log.Info("new waitlist subscriber", slog.String("subscriberID", created.ID))

	// Уведомление — best effort: его сбой не ломает подписку
	if err := h.notifier.NotifySubscriber(created); err != nil {
		log.Warn("failed to notify about subscriber", sl.Err(err))
	}

	if err := utils.Json(w, http.StatusCreated, dto.WaitlistResponse{Status: "ok"}); err != nil {
		log.Error("error encoding response", sl.Err(err))
	}
}

func (h *WaitlistHandler) respondError(log *slog.Logger, err error, w http.ResponseWriter, status int) {
	log.Error("handler error", sl.Err(err))
	if httpErr := utils.Err(w, status, err); httpErr != nil {
		log.Error("error sending http response", sl.Err(httpErr))
	}
}
