package model

import (
	"fmt"
	"time"
)

// PrayerTimeSet holds the six daily prayer times for one location and date,
// all expressed in the location's local time zone.
type PrayerTimeSet struct {
	Location Location
	Date     time.Time // midnight of the civil date, local zone
	Fajr     time.Time
	Sunrise  time.Time
	Dhuhr    time.Time
	Asr      time.Time
	Maghrib  time.Time
	Isha     time.Time
}

// Ordered returns the six times in canonical order.
func (p PrayerTimeSet) Ordered() [6]time.Time {
	return [6]time.Time{p.Fajr, p.Sunrise, p.Dhuhr, p.Asr, p.Maghrib, p.Isha}
}

// Validate checks that the six times are strictly increasing in canonical
// order and fall within the 24-hour window of the set's date.
func (p PrayerTimeSet) Validate() error {
	names := [6]string{"fajr", "sunrise", "dhuhr", "asr", "maghrib", "isha"}
	times := p.Ordered()
	dayEnd := p.Date.Add(24 * time.Hour)
	for i, t := range times {
		if t.Before(p.Date) || !t.Before(dayEnd) {
			return fmt.Errorf("%s %s outside the window of %s",
				names[i], t.Format("15:04"), p.Date.Format("2006-01-02"))
		}
		if i > 0 && !times[i-1].Before(t) {
			return fmt.Errorf("%s (%s) is not after %s (%s)",
				names[i], t.Format("15:04"), names[i-1], times[i-1].Format("15:04"))
		}
	}
	return nil
}

// PrayerCacheRecord is the persisted form of a computed timetable: one row
// per (city, date, method), six "HH:MM" local times, coordinates, and the
// creation timestamp that drives the 24-hour expiry. It is also the JSON
// payload stored in the cache tier and served over HTTP.
type PrayerCacheRecord struct {
	City      string    `json:"city" db:"city"`
	Lat       float64   `json:"lat" db:"lat"`
	Lng       float64   `json:"lng" db:"lng"`
	Date      string    `json:"date" db:"date"`
	Method    string    `json:"method" db:"method"`
	Fajr      string    `json:"fajr" db:"fajr"`
	Sunrise   string    `json:"sunrise" db:"sunrise"`
	Dhuhr     string    `json:"dhuhr" db:"dhuhr"`
	Asr       string    `json:"asr" db:"asr"`
	Maghrib   string    `json:"maghrib" db:"maghrib"`
	Isha      string    `json:"isha" db:"isha"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Record flattens the set into its persisted form.
func (p PrayerTimeSet) Record(method string, createdAt time.Time) PrayerCacheRecord {
	const clock = "15:04"
	return PrayerCacheRecord{
		City:      p.Location.City,
		Lat:       p.Location.Lat,
		Lng:       p.Location.Lng,
		Date:      p.Date.Format("2006-01-02"),
		Method:    method,
		Fajr:      p.Fajr.Format(clock),
		Sunrise:   p.Sunrise.Format(clock),
		Dhuhr:     p.Dhuhr.Format(clock),
		Asr:       p.Asr.Format(clock),
		Maghrib:   p.Maghrib.Format(clock),
		Isha:      p.Isha.Format(clock),
		CreatedAt: createdAt,
	}
}

// QiblaBearing is the great-circle direction from a location to the Kaaba.
type QiblaBearing struct {
	Location   Location
	Direction  float64 // initial bearing, degrees clockwise from true north, [0, 360)
	DistanceKm float64
}
