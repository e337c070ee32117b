package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"etkinlikHub/internal/models/domain"
)

// Query — параметры одного запроса к провайдеру.
type Query struct {
	Keyword string // ключевое слово категории (вкладка), провайдер может игнорировать
	City    string // город-подсказка, провайдер может игнорировать
}

// Source — адаптер одного внешнего провайдера событий.
//
// Контракт: Fetch никогда не возвращает ошибку наружу. Любой сбой транспорта
// или неожиданная форма ответа дают пустой список — частичные данные лучше
// сломанной страницы.
type Source interface {
	Name() string
	Fetch(ctx context.Context, q Query) []domain.EventItem
}

const maxResponseBody = 4 << 20

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// fetchJSON выполняет GET с кэшированием тела ответа по URL и декодирует JSON.
func fetchJSON(ctx context.Context, client *http.Client, cache *Cache, url string, v interface{}) error {
	if body, ok := cache.Get(url); ok {
		return json.Unmarshal(body, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	cache.Set(url, body)

	return nil
}
