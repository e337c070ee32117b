package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now2025 = time.Date(2025, time.March, 10, 12, 30, 0, 0, time.UTC)

func TestParseEventDate_ISO(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{"plain date", "2025-03-15", time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"datetime suffix ignored", "2025-03-15T19:30:00Z", time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"invalid calendar day", "2025-02-31", time.Time{}, false},
		{"invalid month", "2025-13-01", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseEventDate(tt.input, now2025)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseEventDate_Turkish(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{"single with year", "15 Nisan 2025", time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), true},
		{"single without year defaults to current", "15 Nisan", time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), true},
		{"ascii folded month", "5 Subat", time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC), true},
		{"diacritic month", "5 Şubat", time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC), true},
		{"uppercase with turkish dotted I", "15 NİSAN", time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), true},
		{"range resolves to end date", "03 Şubat - 28 Şubat", time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), true},
		{"range with year", "1 Ocak - 5 Ocak 2026", time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), true},
		{"range across months", "28 Mart - 2 Nisan", time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), true},
		{"unknown month", "15 Brumaire", time.Time{}, false},
		{"unknown month in range", "3 Ocak - 5 Nonsuch", time.Time{}, false},
		{"day out of range", "32 Ocak", time.Time{}, false},
		{"nonexistent february day", "30 Şubat", time.Time{}, false},
		{"free text", "her pazar", time.Time{}, false},
		{"empty", "", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseEventDate(tt.input, now2025)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFormatEventDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"iso", "2025-03-15", "15.03.2025"},
		{"turkish single", "15 Nisan 2025", "15.04.2025"},
		{"turkish single no year", "15 Nisan", "15.04.2025"},
		{"range both ends rendered", "03 Şubat - 28 Şubat", "03.02.2025 - 28.02.2025"},
		{"range with explicit year", "1 Ocak - 5 Ocak 2026", "01.01.2026 - 05.01.2026"},
		{"unparseable passes through", "her hafta sonu", "her hafta sonu"},
		{"broken range passes through", "3 Ocak - 5 Nonsuch", "3 Ocak - 5 Nonsuch"},
		{"empty passes through", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatEventDate(tt.input, now2025))
		})
	}
}

// Форматирование ISO-даты и обратный разбор дают ту же календарную дату.
func TestFormatParseRoundTrip(t *testing.T) {
	inputs := []string{"2025-03-15", "2025-12-31", "2026-01-01"}

	for _, in := range inputs {
		orig, ok := ParseEventDate(in, now2025)
		require.True(t, ok)

		formatted := FormatEventDate(in, now2025)
		back, err := time.Parse("02.01.2006", formatted)
		require.NoError(t, err)
		assert.Equal(t, orig, back)
	}
}
