package sources

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"etkinlikHub/internal/config"
	"etkinlikHub/internal/models/domain"
	"etkinlikHub/internal/utils/logger/sl"
)

// Подстроки названий лиг, считающихся турецкими.
var turkishLeagues = []string{
	"turkish",
	"turkey",
	"süper lig",
	"super lig",
	"türkiye",
}

// Фиксированный список вариантов названий турецких команд. Компенсирует
// отсутствие у провайдера фильтра по стране для футбола: достаточно совпадения
// домашней или гостевой команды, даже если лига иностранная (еврокубки и т.п.).
var turkishTeams = []string{
	"galatasaray",
	"fenerbahçe",
	"fenerbahce",
	"beşiktaş",
	"besiktas",
	"trabzonspor",
	"başakşehir",
	"basaksehir",
	"adana demirspor",
	"samsunspor",
}

// Команды, по которым делается именной поиск матчей.
var searchTeams = []string{"Galatasaray", "Fenerbahce", "Besiktas"}

// SportsDB — адаптер TheSportsDB (бесплатный тариф).
type SportsDB struct {
	log    *slog.Logger
	cfg    config.SportsDBConfig
	client *http.Client
	cache  *Cache
	now    func() time.Time
}

func NewSportsDB(log *slog.Logger, cfg config.SourcesConfig, cache *Cache) *SportsDB {
	return &SportsDB{
		log:    log,
		cfg:    cfg.SportsDB,
		client: newHTTPClient(cfg.Timeout),
		cache:  cache,
		now:    time.Now,
	}
}

func (s *SportsDB) Name() string { return "thesportsdb" }

// Fetch собирает матчи из трёх видов запросов (матчи дня, именной поиск по
// командам, календарь лиги), убирает дубли по нативному id провайдера и
// оставляет только релевантные турецкие события.
func (s *SportsDB) Fetch(ctx context.Context, q Query) []domain.EventItem {
	op := "sources.SportsDB.Fetch()"
	log := s.log.With(slog.String("op", op))

	var raw []sdbEvent

	day := fmt.Sprintf("%s/eventsday.php?d=%s&s=Soccer", s.cfg.BaseURL, s.now().Format("2006-01-02"))
	raw = append(raw, s.queryEvents(ctx, log, day)...)

	for _, team := range searchTeams {
		search := fmt.Sprintf("%s/searchevents.php?e=%s", s.cfg.BaseURL, url.QueryEscape(team))
		raw = append(raw, s.queryEvents(ctx, log, search)...)
	}

	league := fmt.Sprintf("%s/eventsnextleague.php?id=%s", s.cfg.BaseURL, url.QueryEscape(s.cfg.LeagueID))
	raw = append(raw, s.queryEvents(ctx, log, league)...)

	seen := make(map[string]bool, len(raw))
	items := make([]domain.EventItem, 0, len(raw))

	for _, e := range raw {
		if e.ID == "" || seen[e.ID] {
			continue
		}
		seen[e.ID] = true

		if !isRelevant(e) {
			continue
		}

		items = append(items, s.mapEvent(e))
	}

	return items
}

func (s *SportsDB) queryEvents(ctx context.Context, log *slog.Logger, u string) []sdbEvent {
	var resp sdbResponse
	if err := fetchJSON(ctx, s.client, s.cache, u, &resp); err != nil {
		log.Warn("query failed", slog.String("url", u), sl.Err(err))
		return nil
	}

	// searchevents.php кладёт результат в "event", остальные эндпоинты — в "events"
	if len(resp.Events) > 0 {
		return resp.Events
	}
	return resp.Event
}

// isRelevant: лига содержит турецкую подстроку ИЛИ одна из команд в списке.
func isRelevant(e sdbEvent) bool {
	league := strings.ToLower(e.League)
	for _, sub := range turkishLeagues {
		if strings.Contains(league, sub) {
			return true
		}
	}

	home := strings.ToLower(e.HomeTeam)
	away := strings.ToLower(e.AwayTeam)
	for _, team := range turkishTeams {
		if strings.Contains(home, team) || strings.Contains(away, team) {
			return true
		}
	}

	return false
}

func (s *SportsDB) mapEvent(e sdbEvent) domain.EventItem {
	item := domain.EventItem{
		ID:       "tsdb-" + e.ID,
		Name:     e.Name,
		Date:     e.DateEvent,
		Venue:    e.Venue,
		City:     e.City,
		Image:    e.Thumb,
		URL:      domain.PlaceholderURL,
		Category: "Futbol",
		Source:   s.Name(),
	}

	if item.Name == "" && e.HomeTeam != "" {
		item.Name = e.HomeTeam + " - " + e.AwayTeam
	}

	if len(e.Time) >= 5 {
		item.Time = e.Time[:5]
	}

	// Счёт сыгранного матча показывается в том же поле, что и цены
	if e.HomeScore != "" && e.AwayScore != "" {
		item.PriceRange = e.HomeScore + " - " + e.AwayScore
	}

	return item
}

type sdbResponse struct {
	Events []sdbEvent `json:"events"`
	Event  []sdbEvent `json:"event"`
}

type sdbEvent struct {
	ID        string `json:"idEvent"`
	Name      string `json:"strEvent"`
	League    string `json:"strLeague"`
	HomeTeam  string `json:"strHomeTeam"`
	AwayTeam  string `json:"strAwayTeam"`
	HomeScore string `json:"intHomeScore"`
	AwayScore string `json:"intAwayScore"`
	DateEvent string `json:"dateEvent"`
	Time      string `json:"strTime"`
	Venue     string `json:"strVenue"`
	City      string `json:"strCity"`
	Thumb     string `json:"strThumb"`
}
