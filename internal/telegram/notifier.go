package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"etkinlikHub/internal/config"
	"etkinlikHub/internal/models/domain"
	"etkinlikHub/internal/utils/logger/sl"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier шлёт админам уведомления о новых подписчиках листа ожидания.
// Выключенный или неправильно сконфигурированный нотификатор молча ничего не делает:
// подписка не должна ломаться из-за телеграма.
type Notifier struct {
	log *slog.Logger
	cfg config.BotConfig
	bot *tgbotapi.BotAPI
}

func New(log *slog.Logger, cfg *config.Config) *Notifier {
	op := "telegram.New()"
	log = log.With(slog.String("op", op))

	n := &Notifier{
		log: log,
		cfg: cfg.BotConfig,
	}

	if !cfg.BotConfig.Enabled || cfg.BotConfig.TgbotApiToken == "" {
		log.Info("telegram notifier disabled")
		return n
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotConfig.TgbotApiToken)
	if err != nil {
		log.Error("cannot create telegram bot, notifier disabled", sl.Err(err))
		return n
	}

	log.Info("Creating telegram notifier", slog.String("botName", bot.Self.UserName))
	n.bot = bot

	return n
}

// NotifySubscriber отправляет сообщение о новой подписке в админский чат.
func (n *Notifier) NotifySubscriber(sub domain.Subscriber) error {
	op := "telegram.Notifier.NotifySubscriber()"

	if n.bot == nil || n.cfg.AdminChatID == 0 {
		return nil
	}

	text := fmt.Sprintf("Yeni abone: %s", sub.Email)
	if sub.City != "" {
		text += fmt.Sprintf(" (%s)", sub.City)
	}

	msg := tgbotapi.NewMessage(n.cfg.AdminChatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (n *Notifier) Shutdown(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("force exit telegram notifier: %w", ctx.Err())
	default:
		return nil
	}
}
