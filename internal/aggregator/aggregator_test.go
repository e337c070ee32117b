package aggregator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"etkinlikHub/internal/models/domain"
	"etkinlikHub/internal/sources"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC)

type stubSource struct {
	name  string
	items []domain.EventItem
	query *sources.Query // последний полученный Query
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(_ context.Context, q sources.Query) []domain.EventItem {
	s.query = &q
	return s.items
}

func newTestAggregator(srcs ...sources.Source) *Aggregator {
	a := New(slog.New(slog.NewTextHandler(io.Discard, nil)), srcs...)
	a.now = func() time.Time { return testNow }
	return a
}

func event(id, name, date string) domain.EventItem {
	return domain.EventItem{ID: id, Name: name, Date: date}
}

func TestAggregate_TabSelectsOnlyMatchingSources(t *testing.T) {
	sports := &stubSource{name: "thesportsdb", items: []domain.EventItem{event("tsdb-1", "Derbi", "2025-04-01")}}
	tickets := &stubSource{name: "ticketmaster", items: []domain.EventItem{event("tm-1", "Konser", "2025-04-02")}}

	a := newTestAggregator(tickets, sports)

	res := a.Aggregate(context.Background(), domain.TabSpor, "")

	assert.Equal(t, []string{"thesportsdb"}, res.Sources)
	require.Len(t, res.Events, 1)
	assert.Equal(t, "Derbi", res.Events[0].Name)
	assert.Nil(t, tickets.query, "ticketmaster must not be invoked for tab=spor")
}

func TestAggregate_AllTabInvokesEverySource(t *testing.T) {
	s1 := &stubSource{name: "ticketmaster"}
	s2 := &stubSource{name: "kultursanat"}
	s3 := &stubSource{name: "thesportsdb"}

	a := newTestAggregator(s1, s2, s3)
	res := a.Aggregate(context.Background(), domain.TabAll, "")

	assert.Equal(t, []string{"ticketmaster", "kultursanat", "thesportsdb"}, res.Sources)
	assert.NotNil(t, s1.query)
	assert.NotNil(t, s2.query)
	assert.NotNil(t, s3.query)
	assert.Equal(t, "cocuk", s1.query.Keyword)
}

func TestAggregate_DropsPastKeepsUnparseable(t *testing.T) {
	src := &stubSource{name: "ticketmaster", items: []domain.EventItem{
		event("1", "Geçmiş", "2025-03-01"),
		event("2", "Bugün", "2025-03-10"),
		event("3", "Gelecek", "2025-04-01"),
		event("4", "Belirsiz", "her hafta sonu"),
	}}

	a := newTestAggregator(src)
	res := a.Aggregate(context.Background(), domain.TabKonser, "")

	names := make([]string, 0, len(res.Events))
	for _, e := range res.Events {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Bugün", "Gelecek", "Belirsiz"}, names)
}

func TestAggregate_FormatsDates(t *testing.T) {
	src := &stubSource{name: "kultursanat", items: []domain.EventItem{
		event("1", "Sergi", "2025-03-15"),
		event("2", "Festival", "03 Şubat - 28 Şubat 2026"),
		event("3", "Atölye", "her pazar"),
	}}

	a := newTestAggregator(src)
	res := a.Aggregate(context.Background(), domain.TabKultur, "")

	require.Len(t, res.Events, 3)
	assert.Equal(t, "15.03.2025", res.Events[0].Date)
	assert.Equal(t, "03.02.2026 - 28.02.2026", res.Events[1].Date)
	assert.Equal(t, "her pazar", res.Events[2].Date)
}

func TestAggregate_DedupKeepsFirstOccurrence(t *testing.T) {
	first := &stubSource{name: "kultursanat", items: []domain.EventItem{
		event("ks-1", "Karagöz ile Hacivat", "2025-04-01"),
	}}
	second := &stubSource{name: "biletino", items: []domain.EventItem{
		event("bil-1", "  karagöz ile hacivat ", "2025-04-02"),
		event("bil-2", "Başka Oyun", "2025-04-03"),
	}}

	a := newTestAggregator(first, second)
	res := a.Aggregate(context.Background(), domain.TabTiyatro, "")

	require.Len(t, res.Events, 2)
	assert.Equal(t, "ks-1", res.Events[0].ID, "first occurrence wins")
	assert.Equal(t, "bil-2", res.Events[1].ID)
}

func TestAggregate_CityFilterPermissiveOnEmptyCity(t *testing.T) {
	src := &stubSource{name: "ticketmaster", items: []domain.EventItem{
		{ID: "1", Name: "A", Date: "2025-04-01", City: "İstanbul"},
		{ID: "2", Name: "B", Date: "2025-04-01", City: "Ankara"},
		{ID: "3", Name: "C", Date: "2025-04-01", City: ""},
	}}

	a := newTestAggregator(src)
	res := a.Aggregate(context.Background(), domain.TabKonser, "istanbul")

	require.Len(t, res.Events, 2)
	assert.Equal(t, "A", res.Events[0].Name)
	assert.Equal(t, "C", res.Events[1].Name, "empty city passes the filter")
}

func TestAggregate_TruncatesToPageSizeReportsTotal(t *testing.T) {
	var items []domain.EventItem
	for i := 0; i < PageSize+7; i++ {
		items = append(items, event(fmt.Sprintf("%d", i), fmt.Sprintf("Etkinlik %d", i), "2025-04-01"))
	}
	src := &stubSource{name: "biletino", items: items}

	a := newTestAggregator(src)
	res := a.Aggregate(context.Background(), domain.TabCocuk, "")

	assert.Len(t, res.Events, PageSize)
	assert.Equal(t, PageSize+7, res.Total)
}

func TestAggregate_AllSourcesEmpty(t *testing.T) {
	a := newTestAggregator(
		&stubSource{name: "ticketmaster"},
		&stubSource{name: "thesportsdb"},
	)

	res := a.Aggregate(context.Background(), domain.TabAll, "")

	assert.Empty(t, res.Events)
	assert.Zero(t, res.Total)
	assert.Equal(t, []string{"ticketmaster", "thesportsdb"}, res.Sources)
}
