package sources

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"etkinlikHub/internal/config"
	"etkinlikHub/internal/models/domain"
	"etkinlikHub/internal/utils/logger/sl"
)

// ErrNoAPIKey означает, что ключ Ticketmaster не сконфигурирован.
var ErrNoAPIKey = errors.New("ticketmaster api key is not configured")

// Ticketmaster — адаптер Ticketmaster Discovery API v2.
type Ticketmaster struct {
	log      *slog.Logger
	cfg      config.TicketmasterConfig
	pageSize int
	client   *http.Client
	cache    *Cache
}

func NewTicketmaster(log *slog.Logger, cfg config.SourcesConfig, cache *Cache) *Ticketmaster {
	return &Ticketmaster{
		log:      log,
		cfg:      cfg.Ticketmaster,
		pageSize: cfg.PageSize,
		client:   newHTTPClient(cfg.Timeout),
		cache:    cache,
	}
}

func (t *Ticketmaster) Name() string { return "ticketmaster" }

// Fetch реализует контракт Source: любая ошибка деградирует в пустой список.
func (t *Ticketmaster) Fetch(ctx context.Context, q Query) []domain.EventItem {
	op := "sources.Ticketmaster.Fetch()"
	log := t.log.With(slog.String("op", op))

	if t.cfg.APIKey == "" {
		log.Debug("api key not configured, skipping")
		return nil
	}

	city := q.City
	if city == "" {
		city = t.cfg.DefaultCity
	}

	events, _, err := t.Discovery(ctx, city, t.pageSize)
	if err != nil {
		log.Warn("fetch failed", sl.Err(err))
		return nil
	}

	return events
}

// Discovery запрашивает события с фильтром «только семейные»; если таких нет,
// повторяет запрос без фильтра. Возвращает ошибку — её различает легаси-эндпоинт,
// чтобы решить, отдавать ли фолбэк.
func (t *Ticketmaster) Discovery(ctx context.Context, city string, size int) ([]domain.EventItem, int, error) {
	if t.cfg.APIKey == "" {
		return nil, 0, ErrNoAPIKey
	}

	events, total, err := t.query(ctx, city, size, true)
	if err != nil {
		return nil, 0, err
	}
	if len(events) == 0 {
		// Семейных событий нет — пробуем без фильтра
		return t.query(ctx, city, size, false)
	}

	return events, total, nil
}

func (t *Ticketmaster) query(ctx context.Context, city string, size int, familyOnly bool) ([]domain.EventItem, int, error) {
	params := url.Values{}
	params.Set("apikey", t.cfg.APIKey)
	params.Set("countryCode", t.cfg.CountryCode)
	params.Set("city", city)
	params.Set("size", strconv.Itoa(size))
	params.Set("sort", "date,asc")
	if familyOnly {
		params.Set("includeFamily", "only")
	}

	var resp tmResponse
	if err := fetchJSON(ctx, t.client, t.cache, t.cfg.BaseURL+"?"+params.Encode(), &resp); err != nil {
		return nil, 0, err
	}

	items := make([]domain.EventItem, 0, len(resp.Embedded.Events))
	for _, raw := range resp.Embedded.Events {
		items = append(items, t.mapEvent(raw))
	}

	return items, resp.Page.TotalElements, nil
}

func (t *Ticketmaster) mapEvent(raw tmEvent) domain.EventItem {
	item := domain.EventItem{
		ID:     "tm-" + raw.ID,
		Name:   raw.Name,
		Date:   raw.Dates.Start.LocalDate,
		URL:    raw.URL,
		City:   "İstanbul",
		Source: t.Name(),
	}

	if item.URL == "" {
		item.URL = domain.PlaceholderURL
	}

	if lt := raw.Dates.Start.LocalTime; len(lt) >= 5 {
		item.Time = lt[:5]
	}

	if len(raw.Embedded.Venues) > 0 {
		v := raw.Embedded.Venues[0]
		item.Venue = v.Name
		if v.City.Name != "" {
			item.City = v.City.Name
		}
	}

	// Самая широкая картинка
	if len(raw.Images) > 0 {
		images := append([]tmImage(nil), raw.Images...)
		sort.Slice(images, func(i, j int) bool { return images[i].Width > images[j].Width })
		item.Image = images[0].URL
	}

	if len(raw.Classifications) > 0 {
		c := raw.Classifications[0]
		item.Category = c.Segment.Name
		if item.Category == "" {
			item.Category = c.Genre.Name
		}
	}

	if len(raw.PriceRanges) > 0 {
		p := raw.PriceRanges[0]
		if p.Min == p.Max {
			item.PriceRange = fmt.Sprintf("%g %s", p.Min, p.Currency)
		} else {
			item.PriceRange = fmt.Sprintf("%g - %g %s", p.Min, p.Max, p.Currency)
		}
	}

	return item
}

// Формы ответа Discovery API (только используемые поля).
type tmResponse struct {
	Embedded struct {
		Events []tmEvent `json:"events"`
	} `json:"_embedded"`
	Page struct {
		TotalElements int `json:"totalElements"`
	} `json:"page"`
}

type tmEvent struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	URL   string `json:"url"`
	Dates struct {
		Start struct {
			LocalDate string `json:"localDate"`
			LocalTime string `json:"localTime"`
		} `json:"start"`
	} `json:"dates"`
	Embedded struct {
		Venues []struct {
			Name string `json:"name"`
			City struct {
				Name string `json:"name"`
			} `json:"city"`
		} `json:"venues"`
	} `json:"_embedded"`
	Images          []tmImage `json:"images"`
	Classifications []struct {
		Segment struct {
			Name string `json:"name"`
		} `json:"segment"`
		Genre struct {
			Name string `json:"name"`
		} `json:"genre"`
	} `json:"classifications"`
	PriceRanges []struct {
		Min      float64 `json:"min"`
		Max      float64 `json:"max"`
		Currency string  `json:"currency"`
	} `json:"priceRanges"`
}

type tmImage struct {
	URL   string `json:"url"`
	Width int    `json:"width"`
}
