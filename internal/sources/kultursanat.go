package sources

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"etkinlikHub/internal/config"
	"etkinlikHub/internal/models/domain"
	"etkinlikHub/internal/utils/logger/sl"

	"github.com/PuerkitoBio/goquery"
)

const monthAlternation = `Ocak|Şubat|Subat|Mart|Nisan|Mayıs|Mayis|Haziran|Temmuz|Ağustos|Agustos|Eylül|Eylul|Ekim|Kasım|Kasim|Aralık|Aralik`

var (
	// Дата или диапазон дат внутри свободного текста: "12 Nisan 2025", "3 Mayıs - 7 Mayıs"
	kulturDateRe = regexp.MustCompile(`(?i)\d{1,2}\s+(?:` + monthAlternation + `)(?:\s+\d{4})?(?:\s*[-–]\s*\d{1,2}\s+(?:` + monthAlternation + `)(?:\s+\d{4})?)?`)
	// Площадка после метки "Mekan:", "Yer:" или "Salon:"
	kulturVenueRe = regexp.MustCompile(`(?i)(?:Mekan|Yer|Salon)\s*:\s*([^\n\r.;|]+)`)
	// Время "19:30" внутри текста
	kulturTimeRe = regexp.MustCompile(`\b(\d{2}:\d{2})\b`)
)

// KulturSanat — адаптер городской афиши культурных событий. Провайдер отдаёт
// JSON, но описание события — свободный HTML; дата и площадка вытаскиваются
// из текста эвристиками по фиксированным паттернам.
type KulturSanat struct {
	log    *slog.Logger
	cfg    config.KulturSanatConfig
	client *http.Client
	cache  *Cache
}

func NewKulturSanat(log *slog.Logger, cfg config.SourcesConfig, cache *Cache) *KulturSanat {
	return &KulturSanat{
		log:    log,
		cfg:    cfg.KulturSanat,
		client: newHTTPClient(cfg.Timeout),
		cache:  cache,
	}
}

func (k *KulturSanat) Name() string { return "kultursanat" }

func (k *KulturSanat) Fetch(ctx context.Context, q Query) []domain.EventItem {
	op := "sources.KulturSanat.Fetch()"
	log := k.log.With(slog.String("op", op))

	var resp kulturResponse
	if err := fetchJSON(ctx, k.client, k.cache, k.cfg.BaseURL, &resp); err != nil {
		log.Warn("fetch failed", sl.Err(err))
		return nil
	}

	items := make([]domain.EventItem, 0, len(resp.Etkinlikler))
	for i, e := range resp.Etkinlikler {
		item := domain.EventItem{
			ID:       fmt.Sprintf("ks-%d", i+1),
			Name:     strings.TrimSpace(e.Baslik),
			City:     strings.TrimSpace(e.Sehir),
			Image:    e.Resim,
			URL:      e.Link,
			Category: "Kültür",
			Source:   k.Name(),
		}

		if item.Name == "" {
			continue
		}
		if item.URL == "" {
			item.URL = domain.PlaceholderURL
		}

		text := htmlToText(e.Icerik)
		item.Date = extractDate(text)
		item.Venue = extractVenue(text)
		item.Time = extractTime(text)

		items = append(items, item)
	}

	return items
}

// htmlToText срезает разметку из HTML-описания; на невалидном HTML
// возвращает исходную строку.
func htmlToText(content string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content
	}
	return doc.Text()
}

// extractDate находит первую дату или диапазон дат в тексте.
// Нет совпадения — пустое поле, не ошибка.
func extractDate(text string) string {
	return strings.TrimSpace(kulturDateRe.FindString(text))
}

// extractVenue находит площадку по метке "Mekan/Yer/Salon:".
func extractVenue(text string) string {
	m := kulturVenueRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func extractTime(text string) string {
	return kulturTimeRe.FindString(text)
}

type kulturResponse struct {
	Etkinlikler []kulturEvent `json:"etkinlikler"`
}

type kulturEvent struct {
	Baslik string `json:"baslik"`
	Icerik string `json:"icerik"` // свободный HTML с датой и площадкой внутри
	Resim  string `json:"resim"`
	Link   string `json:"link"`
	Sehir  string `json:"sehir"`
}
