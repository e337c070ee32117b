package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// turkishMonths — фиксированная таблица турецких месяцев. Для каждого месяца
// принимается и ASCII-вариант без диакритики: провайдеры присылают и так, и так.
var turkishMonths = map[string]time.Month{
	"ocak":    time.January,
	"şubat":   time.February,
	"subat":   time.February,
	"mart":    time.March,
	"nisan":   time.April,
	"mayıs":   time.May,
	"mayis":   time.May,
	"haziran": time.June,
	"temmuz":  time.July,
	"ağustos": time.August,
	"agustos": time.August,
	"eylül":   time.September,
	"eylul":   time.September,
	"ekim":    time.October,
	"kasım":   time.November,
	"kasim":   time.November,
	"aralık":  time.December,
	"aralik":  time.December,
}

var (
	// "03 Şubat - 28 Şubat 2025", год опционален
	rangeRe = regexp.MustCompile(`^(\d{1,2})\s+(\p{L}+)\s*[-–]\s*(\d{1,2})\s+(\p{L}+)(?:\s+(\d{4}))?$`)
	// "15 Nisan 2025", год опционален
	singleRe = regexp.MustCompile(`^(\d{1,2})\s+(\p{L}+)(?:\s+(\d{4}))?$`)
)

// lookupMonth ищет месяц в таблице без учёта регистра.
// Турецкая İ при strings.ToLower даёт "i" + combining dot, поэтому сначала заменяем её.
func lookupMonth(name string) (time.Month, bool) {
	name = strings.ReplaceAll(name, "İ", "i")
	m, ok := turkishMonths[strings.ToLower(name)]
	return m, ok
}

// makeDate собирает календарную дату и отклоняет несуществующие дни (30 февраля и т.п.).
func makeDate(year int, month time.Month, day int) (time.Time, bool) {
	if day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}
	return t, true
}

// ParseEventDate интерпретирует строку даты события.
// Понимает три формы:
//   - ISO-префикс "YYYY-MM-DD..."
//   - турецкий диапазон "03 Şubat - 28 Şubat [2025]" — возвращается дата КОНЦА
//     (диапазон считается «открытым до», фильтр свежести должен смотреть на конец)
//   - одиночная турецкая дата "15 Nisan [2025]"
//
// Отсутствующий год — текущий год из now. Всё остальное — неразобранная дата
// (второе значение false); такие события ниже по конвейеру сохраняются.
func ParseEventDate(s string, now time.Time) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if len(s) >= 10 && s[4] == '-' && s[7] == '-' {
		t, err := time.Parse("2006-01-02", s[:10])
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	if m := rangeRe.FindStringSubmatch(s); m != nil {
		startMonth, ok := lookupMonth(m[2])
		if !ok {
			return time.Time{}, false
		}
		endMonth, ok := lookupMonth(m[4])
		if !ok {
			return time.Time{}, false
		}
		year := now.Year()
		if m[5] != "" {
			year, _ = strconv.Atoi(m[5])
		}
		startDay, _ := strconv.Atoi(m[1])
		if _, ok := makeDate(year, startMonth, startDay); !ok {
			return time.Time{}, false
		}
		endDay, _ := strconv.Atoi(m[3])
		return makeDate(year, endMonth, endDay)
	}

	if m := singleRe.FindStringSubmatch(s); m != nil {
		month, ok := lookupMonth(m[2])
		if !ok {
			return time.Time{}, false
		}
		year := now.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		day, _ := strconv.Atoi(m[1])
		return makeDate(year, month, day)
	}

	return time.Time{}, false
}

// FormatEventDate приводит строку даты к виду для показа:
//   - одиночная разбираемая дата → "dd.mm.yyyy"
//   - диапазон → "dd.mm.yyyy - dd.mm.yyyy" (оба конца в одном разрешённом году)
//   - всё остальное возвращается как есть, без ошибок и потери данных
func FormatEventDate(s string, now time.Time) string {
	trimmed := strings.TrimSpace(s)

	if m := rangeRe.FindStringSubmatch(trimmed); m != nil {
		startMonth, okStart := lookupMonth(m[2])
		endMonth, okEnd := lookupMonth(m[4])
		if okStart && okEnd {
			year := now.Year()
			if m[5] != "" {
				year, _ = strconv.Atoi(m[5])
			}
			startDay, _ := strconv.Atoi(m[1])
			endDay, _ := strconv.Atoi(m[3])
			start, okS := makeDate(year, startMonth, startDay)
			end, okE := makeDate(year, endMonth, endDay)
			if okS && okE {
				return start.Format("02.01.2006") + " - " + end.Format("02.01.2006")
			}
		}
		return s
	}

	if t, ok := ParseEventDate(trimmed, now); ok {
		return t.Format("02.01.2006")
	}

	return s
}
