package model

// HijriDate is a date in the Islamic lunar calendar alongside its Gregorian
// counterpart.
type HijriDate struct {
	Day   int
	Month int // 1..12
	Year  int

	MonthName     string
	GregorianDate string // "Monday, June 1, 2026"
	DayName       string // "Monday"
}

// IslamicEvent is one entry of the observance calendar.
type IslamicEvent struct {
	Date        string `json:"date"` // ISO calendar date
	Event       string `json:"event"`
	Description string `json:"description"`
}
