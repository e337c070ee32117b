package domain

// Tab — категория-вкладка, определяющая набор опрашиваемых провайдеров.
type Tab string

const (
	TabAll     Tab = "all"
	TabCocuk   Tab = "cocuk"
	TabTiyatro Tab = "tiyatro"
	TabSpor    Tab = "spor"
	TabKultur  Tab = "kultur"
	TabKonser  Tab = "konser"
)

// IsValid проверяет, является ли вкладка одной из известных.
func (t Tab) IsValid() bool {
	switch t {
	case TabAll, TabCocuk, TabTiyatro, TabSpor, TabKultur, TabKonser:
		return true
	default:
		return false
	}
}

// PlaceholderURL помечает событие без внешней ссылки (некликабельная карточка).
const PlaceholderURL = "#"

// EventItem — доменная модель события. Живёт ровно один цикл запрос/ответ:
// создаётся адаптером, проходит фильтрацию и форматирование, сериализуется.
type EventItem struct {
	ID         string
	Name       string
	Date       string // ISO, турецкая дата или диапазон; перед ответом приводится к dd.mm.yyyy
	Time       string // "HH:MM", пустая строка если неизвестно
	Venue      string
	City       string // пустая строка = город неизвестен, фильтром не отсекается
	Image      string
	URL        string
	Category   string
	Source     string
	PriceRange string // диапазон цен, либо счёт матча для спортивных событий
}

// AggregateResult — результат агрегации по одной вкладке.
type AggregateResult struct {
	Events  []EventItem
	Total   int // количество до усечения страницы
	Sources []string
}

// Subscriber — подписчик листа ожидания с лендинга.
type Subscriber struct {
	ID    string
	Email string
	City  string
}
