package aggregator

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"etkinlikHub/internal/dates"
	"etkinlikHub/internal/models/domain"
	"etkinlikHub/internal/sources"
)

// PageSize — размер страницы ответа после всех фильтров.
const PageSize = 30

// tabSources задаёт, какие провайдеры опрашиваются для каждой вкладки,
// в фиксированном порядке приоритета. Вкладка "all" опрашивает всех.
var tabSources = map[domain.Tab][]string{
	domain.TabCocuk:   {"ticketmaster", "biletino"},
	domain.TabTiyatro: {"kultursanat", "biletino"},
	domain.TabSpor:    {"thesportsdb"},
	domain.TabKultur:  {"kultursanat"},
	domain.TabKonser:  {"ticketmaster", "biletino"},
}

// Aggregator собирает события из набора провайдеров для запрошенной вкладки.
type Aggregator struct {
	log     *slog.Logger
	sources []sources.Source // порядок приоритета при конкатенации
	now     func() time.Time
}

func New(log *slog.Logger, srcs ...sources.Source) *Aggregator {
	op := "Aggregator.New()"
	log.With(slog.String("op", op)).Info("creating aggregator", slog.Int("sources", len(srcs)))

	return &Aggregator{
		log:     log,
		sources: srcs,
		now:     time.Now,
	}
}

// Aggregate выполняет конвейер вкладки: опрос провайдеров (параллельно, порядок
// результата фиксирован порядком приоритета), отсев прошедших событий,
// форматирование дат, дедупликация по имени, фильтр по городу, усечение страницы.
func (a *Aggregator) Aggregate(ctx context.Context, tab domain.Tab, city string) domain.AggregateResult {
	op := "Aggregator.Aggregate()"
	log := a.log.With(
		slog.String("op", op),
		slog.String("tab", string(tab)),
		slog.String("city", city),
	)

	selected := a.selectSources(tab)

	query := sources.Query{
		Keyword: tabKeyword(tab),
		City:    city,
	}

	// Провайдеры независимы: результаты склеиваются конкатенацией и дальше
	// дедуплицируются, поэтому параллельный опрос безопасен.
	results := make([][]domain.EventItem, len(selected))
	var wg sync.WaitGroup
	for i, src := range selected {
		wg.Add(1)
		go func(i int, src sources.Source) {
			defer wg.Done()
			results[i] = src.Fetch(ctx, query)
		}(i, src)
	}
	wg.Wait()

	var merged []domain.EventItem
	for _, r := range results {
		merged = append(merged, r...)
	}

	now := a.now()
	merged = dropPastEvents(merged, now)

	for i := range merged {
		merged[i].Date = dates.FormatEventDate(merged[i].Date, now)
	}

	merged = dedupByName(merged)

	if city != "" {
		merged = filterByCity(merged, city)
	}

	total := len(merged)
	if len(merged) > PageSize {
		merged = merged[:PageSize]
	}

	names := make([]string, len(selected))
	for i, src := range selected {
		names[i] = src.Name()
	}

	log.Info("aggregation completed",
		slog.Int("total", total),
		slog.Int("returned", len(merged)),
	)

	return domain.AggregateResult{
		Events:  merged,
		Total:   total,
		Sources: names,
	}
}

// Sources возвращает имена всех зарегистрированных провайдеров.
func (a *Aggregator) Sources() []string {
	names := make([]string, len(a.sources))
	for i, src := range a.sources {
		names[i] = src.Name()
	}
	return names
}

func (a *Aggregator) selectSources(tab domain.Tab) []sources.Source {
	wanted, ok := tabSources[tab]
	if !ok {
		// "all" и всё неизвестное — полный набор
		return a.sources
	}

	var selected []sources.Source
	for _, src := range a.sources {
		for _, name := range wanted {
			if src.Name() == name {
				selected = append(selected, src)
				break
			}
		}
	}
	return selected
}

// tabKeyword — ключевое слово для поисковых провайдеров. Вкладка "all"
// ищет по детской тематике: продукт про семейные активности.
func tabKeyword(tab domain.Tab) string {
	if tab == domain.TabAll || !tab.IsValid() {
		return string(domain.TabCocuk)
	}
	return string(tab)
}

// dropPastEvents отсеивает события с разобранной датой строго раньше сегодня
// (время суток обнулено). Неразобранные даты сохраняются: лучше показать
// лишнее, чем спрятать валидное.
func dropPastEvents(items []domain.EventItem, now time.Time) []domain.EventItem {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	kept := items[:0]
	for _, item := range items {
		if d, ok := dates.ParseEventDate(item.Date, now); ok && d.Before(today) {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

// dedupByName убирает дубли по имени без учёта регистра и краевых пробелов.
// Остаётся первое вхождение — порядок приоритета провайдеров решает.
func dedupByName(items []domain.EventItem) []domain.EventItem {
	seen := make(map[string]bool, len(items))

	kept := items[:0]
	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item.Name))
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, item)
	}
	return kept
}

// filterByCity пропускает события с пустым городом (город неизвестен) либо
// содержащие фильтр как подстроку без учёта регистра.
func filterByCity(items []domain.EventItem, city string) []domain.EventItem {
	filter := strings.ToLower(city)

	kept := items[:0]
	for _, item := range items {
		if item.City == "" || strings.Contains(strings.ToLower(item.City), filter) {
			kept = append(kept, item)
		}
	}
	return kept
}
