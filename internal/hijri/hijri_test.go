package hijri

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromTime_KnownDates(t *testing.T) {
	cases := []struct {
		gregorian string
		day       int
		month     int
		year      int
		monthName string
	}{
		{"2024-06-01", 24, 11, 1445, "Dhu al-Qi'dah"},
		{"2000-01-01", 24, 9, 1420, "Ramadan"},
		{"2023-07-19", 1, 1, 1445, "Muharram"},
		{"2025-03-30", 30, 9, 1446, "Ramadan"},
	}

	for _, tc := range cases {
		t.Run(tc.gregorian, func(t *testing.T) {
			g, err := time.Parse("2006-01-02", tc.gregorian)
			assert.NoError(t, err)

			h := FromTime(g)
			assert.Equal(t, tc.day, h.Day, "day")
			assert.Equal(t, tc.month, h.Month, "month")
			assert.Equal(t, tc.year, h.Year, "year")
			assert.Equal(t, tc.monthName, h.MonthName)
		})
	}
}

func TestFromTime_RoundTripMonotonic(t *testing.T) {
	// Consecutive Gregorian days never move the Hijri date backwards.
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	prev := FromTime(start)
	for i := 1; i < 400; i++ {
		cur := FromTime(start.AddDate(0, 0, i))
		prevOrd := prev.Year*12*30 + (prev.Month-1)*30 + prev.Day
		curOrd := cur.Year*12*30 + (cur.Month-1)*30 + cur.Day
		assert.Greater(t, curOrd, prevOrd, "day %d", i)
		assert.GreaterOrEqual(t, cur.Day, 1)
		assert.LessOrEqual(t, cur.Day, 30)
		assert.GreaterOrEqual(t, cur.Month, 1)
		assert.LessOrEqual(t, cur.Month, 12)
		prev = cur
	}
}

func TestFormat(t *testing.T) {
	g := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "24 Dhu al-Qi'dah 1445 AH", Format(FromTime(g)))
}

func TestUpcoming(t *testing.T) {
	events := DefaultEvents()

	all := Upcoming(events, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Len(t, all, len(events))

	mid := Upcoming(events, time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC))
	assert.NotEmpty(t, mid)
	assert.Equal(t, "Eid al-Adha", mid[0].Event)

	none := Upcoming(events, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Empty(t, none)
}
