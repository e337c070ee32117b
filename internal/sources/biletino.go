package sources

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"etkinlikHub/internal/config"
	"etkinlikHub/internal/models/domain"
	"etkinlikHub/internal/utils/logger/sl"
)

// Метка категории для показа по ключевому слову поиска.
var categoryLabels = map[string]string{
	"cocuk":   "Çocuk",
	"tiyatro": "Tiyatro",
	"konser":  "Konser",
	"kultur":  "Kültür",
	"sergi":   "Sergi",
	"atolye":  "Atölye",
}

const defaultCategoryLabel = "Etkinlik"

// Biletino — адаптер поиска билетных событий по ключевому слову категории.
type Biletino struct {
	log    *slog.Logger
	cfg    config.BiletinoConfig
	client *http.Client
	cache  *Cache
}

func NewBiletino(log *slog.Logger, cfg config.SourcesConfig, cache *Cache) *Biletino {
	return &Biletino{
		log:    log,
		cfg:    cfg.Biletino,
		client: newHTTPClient(cfg.Timeout),
		cache:  cache,
	}
}

func (b *Biletino) Name() string { return "biletino" }

func (b *Biletino) Fetch(ctx context.Context, q Query) []domain.EventItem {
	op := "sources.Biletino.Fetch()"
	log := b.log.With(slog.String("op", op))

	keyword := q.Keyword
	if keyword == "" {
		keyword = "cocuk"
	}

	params := url.Values{}
	params.Set("q", keyword)
	if q.City != "" {
		params.Set("city", q.City)
	}

	var resp biletinoResponse
	if err := fetchJSON(ctx, b.client, b.cache, b.cfg.BaseURL+"?"+params.Encode(), &resp); err != nil {
		log.Warn("fetch failed", slog.String("keyword", keyword), sl.Err(err))
		return nil
	}

	category := CategoryLabel(keyword)

	items := make([]domain.EventItem, 0, len(resp.Events))
	for i, e := range resp.Events {
		id := e.ID
		if id == "" {
			id = fmt.Sprintf("%d", i+1)
		}

		item := domain.EventItem{
			ID:       "bil-" + id,
			Name:     e.Name,
			Date:     e.Date,
			Time:     e.Time,
			Venue:    e.Venue,
			City:     e.City,
			Image:    e.Image,
			URL:      e.URL,
			Category: category,
			Source:   b.Name(),
		}

		if item.URL == "" {
			item.URL = domain.PlaceholderURL
		}

		if e.PriceMin > 0 || e.PriceMax > 0 {
			if e.PriceMin == e.PriceMax {
				item.PriceRange = fmt.Sprintf("%g %s", e.PriceMin, e.Currency)
			} else {
				item.PriceRange = fmt.Sprintf("%g - %g %s", e.PriceMin, e.PriceMax, e.Currency)
			}
		}

		items = append(items, item)
	}

	return items
}

// CategoryLabel переводит ключевое слово категории в метку для показа.
// Неизвестное слово получает общую метку.
func CategoryLabel(keyword string) string {
	if label, ok := categoryLabels[keyword]; ok {
		return label
	}
	return defaultCategoryLabel
}

type biletinoResponse struct {
	Events []biletinoEvent `json:"events"`
}

type biletinoEvent struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Venue    string  `json:"venue"`
	City     string  `json:"city"`
	Image    string  `json:"image"`
	URL      string  `json:"url"`
	PriceMin float64 `json:"price_min"`
	PriceMax float64 `json:"price_max"`
	Currency string  `json:"currency"`
}
