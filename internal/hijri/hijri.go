// Package hijri converts Gregorian dates to the Islamic lunar calendar using
// the arithmetic (civil tabular) calendar: 12 alternating 30/29-day months
// with 11 leap days per 30-year cycle. Observation-based calendars can
// differ from it by a day.
package hijri

import (
	"fmt"
	"time"

	"github.com/zee00111/islamic-project/internal/model"
)

// MonthNames holds the twelve Islamic month names, index 0 = Muharram.
var MonthNames = [12]string{
	"Muharram", "Safar", "Rabi al-Awwal", "Rabi al-Thani",
	"Jumada al-Awwal", "Jumada al-Thani", "Rajab", "Sha'ban",
	"Ramadan", "Shawwal", "Dhu al-Qi'dah", "Dhu al-Hijjah",
}

// civilEpoch is the Julian day number of 1 Muharram 1 AH (Friday epoch).
const civilEpoch = 1948440

// FromTime converts a moment in time to its Hijri date, evaluated in the
// moment's own time zone.
func FromTime(t time.Time) model.HijriDate {
	year, month, day := t.Date()
	jdn := jdnOf(year, int(month), day)

	hy := (30*(jdn-civilEpoch) + 10646) / 10631
	hm := (jdn - (29 + hijriJDN(hy, 1, 1)))
	hmonth := ceilDiv(2*hm, 59) + 1 // ceil(hm / 29.5) + 1
	if hmonth > 12 {
		hmonth = 12
	}
	if hmonth < 1 {
		hmonth = 1
	}
	hday := jdn - hijriJDN(hy, hmonth, 1) + 1

	return model.HijriDate{
		Day:           hday,
		Month:         hmonth,
		Year:          hy,
		MonthName:     MonthNames[hmonth-1],
		GregorianDate: t.Format("Monday, January 2, 2006"),
		DayName:       t.Format("Monday"),
	}
}

// Format renders a Hijri date the way the calendar endpoint serves it,
// e.g. "24 Dhu al-Qi'dah 1445 AH".
func Format(d model.HijriDate) string {
	return fmt.Sprintf("%d %s %d AH", d.Day, d.MonthName, d.Year)
}

// hijriJDN returns the Julian day number of a civil-tabular Hijri date.
func hijriJDN(year, month, day int) int {
	return day +
		ceilDiv(59*(month-1), 2) + // ceil(29.5 * (month-1))
		(year-1)*354 +
		(3+11*year)/30 +
		civilEpoch - 1
}

// jdnOf returns the Julian day number (at noon) of a Gregorian date.
func jdnOf(year, month, day int) int {
	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}
	a := y / 100
	b := 2 - a + a/4
	return (365*(y+4716)*100+25*(y+4716))/100 + (306001*(m+1))/10000 + day + b - 1524
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
