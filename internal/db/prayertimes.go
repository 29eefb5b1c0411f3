package db

import (
	"database/sql"
	"errors"
	"time"

	"github.com/zee00111/islamic-project/internal/model"
)

// SavePrayerTimes upserts a computed timetable. Concurrent computations of
// the same (city, date, method) produce identical rows, so last writer wins.
func (s *pgStore) SavePrayerTimes(rec model.PrayerCacheRecord) error {
	_, err := s.db.NamedExec(`
		INSERT INTO prayer_times_cache
			(city, lat, lng, date, method, fajr, sunrise, dhuhr, asr, maghrib, isha, created_at)
		VALUES
			(:city, :lat, :lng, :date, :method, :fajr, :sunrise, :dhuhr, :asr, :maghrib, :isha, :created_at)
		ON CONFLICT (city, date, method) DO UPDATE SET
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng,
			fajr = EXCLUDED.fajr,
			sunrise = EXCLUDED.sunrise,
			dhuhr = EXCLUDED.dhuhr,
			asr = EXCLUDED.asr,
			maghrib = EXCLUDED.maghrib,
			isha = EXCLUDED.isha,
			created_at = EXCLUDED.created_at`,
		rec)
	return err
}

// GetFreshPrayerTimes returns the stored timetable for (city, method, date)
// if one exists and is younger than maxAge, else (nil, nil).
func (s *pgStore) GetFreshPrayerTimes(city, method, date string, maxAge time.Duration) (*model.PrayerCacheRecord, error) {
	var rec model.PrayerCacheRecord
	err := s.db.Get(&rec, `
		SELECT city, lat, lng, date, method, fajr, sunrise, dhuhr, asr, maghrib, isha, created_at
		FROM prayer_times_cache
		WHERE city = $1 AND method = $2 AND date = $3 AND created_at > $4`,
		city, method, date, time.Now().Add(-maxAge))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
