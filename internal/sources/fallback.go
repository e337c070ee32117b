package sources

import "etkinlikHub/internal/models/domain"

// FallbackEvents — статический список, который показывается, когда живые
// данные недоступны или провайдер не сконфигурирован.
func FallbackEvents() []domain.EventItem {
	return []domain.EventItem{
		{
			ID:         "f1",
			Name:       "Kukla Tiyatrosu: Karagöz ile Hacivat",
			Date:       "2025-03-22",
			Time:       "11:00",
			Venue:      "Zorlu PSM",
			City:       "İstanbul",
			URL:        domain.PlaceholderURL,
			Category:   "Tiyatro",
			Source:     "fallback",
			PriceRange: "150 - 300 ₺",
		},
		{
			ID:         "f2",
			Name:       "Çocuk Resim Atölyesi",
			Date:       "2025-03-23",
			Time:       "10:30",
			Venue:      "İstanbul Modern",
			City:       "İstanbul",
			URL:        domain.PlaceholderURL,
			Category:   "Atölye",
			Source:     "fallback",
			PriceRange: "200 ₺",
		},
		{
			ID:         "f3",
			Name:       "Buz Pateni Gösterisi",
			Date:       "2025-03-29",
			Time:       "15:00",
			Venue:      "Silivri Buz Pisti",
			City:       "İstanbul",
			URL:        domain.PlaceholderURL,
			Category:   "Gösteri",
			Source:     "fallback",
			PriceRange: "100 - 250 ₺",
		},
		{
			ID:         "f4",
			Name:       "Masal Müzikali: Pamuk Prenses",
			Date:       "2025-04-05",
			Time:       "13:00",
			Venue:      "CKM Tiyatro Salonu",
			City:       "İstanbul",
			URL:        domain.PlaceholderURL,
			Category:   "Müzikal",
			Source:     "fallback",
			PriceRange: "120 - 280 ₺",
		},
		{
			ID:         "f5",
			Name:       "Bilim Şenliği — Deney Atölyesi",
			Date:       "2025-04-12",
			Time:       "11:00",
			Venue:      "Rahmi M. Koç Müzesi",
			City:       "İstanbul",
			URL:        domain.PlaceholderURL,
			Category:   "Atölye",
			Source:     "fallback",
			PriceRange: "Ücretsiz",
		},
		{
			ID:         "f6",
			Name:       "Çocuk Senfoni Konseri",
			Date:       "2025-04-19",
			Time:       "14:00",
			Venue:      "Lütfi Kırdar ICEC",
			City:       "İstanbul",
			URL:        domain.PlaceholderURL,
			Category:   "Konser",
			Source:     "fallback",
			PriceRange: "80 - 200 ₺",
		},
	}
}
