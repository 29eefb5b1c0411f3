// Package db exposes a Store interface that is passed to API controllers.
package db

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/zee00111/islamic-project/internal/model"
)

type Store interface {
	// prayer timetable persistence
	SavePrayerTimes(rec model.PrayerCacheRecord) error
	GetFreshPrayerTimes(city, method, date string, maxAge time.Duration) (*model.PrayerCacheRecord, error)

	// status checks
	CreateStatusCheck(id, clientName string) (*model.StatusCheck, error)
	ListStatusChecks(limit int) ([]model.StatusCheck, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore() Store {
	return &pgStore{db: DB}
}
