package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationValidate(t *testing.T) {
	assert.NoError(t, Location{Lat: 0, Lng: 0}.Validate())
	assert.NoError(t, Location{Lat: -90, Lng: 180}.Validate())
	assert.NoError(t, Location{Lat: 90, Lng: -180}.Validate())

	assert.ErrorIs(t, Location{Lat: 90.01, Lng: 0}.Validate(), ErrInvalidLocation)
	assert.ErrorIs(t, Location{Lat: 0, Lng: 180.01}.Validate(), ErrInvalidLocation)
}

func TestCityDirectoryResolve(t *testing.T) {
	cities := DefaultCities()

	loc, err := cities.Resolve("Mecca")
	require.NoError(t, err)
	assert.Equal(t, "Mecca", loc.City)
	assert.InDelta(t, 21.4225, loc.Lat, 1e-9)

	_, err = cities.Resolve("Atlantis")
	assert.ErrorIs(t, err, ErrUnknownCity)

	// lookup is case-sensitive by design: names come from a fixed UI list
	_, err = cities.Resolve("mecca")
	assert.ErrorIs(t, err, ErrUnknownCity)
}

func TestPrayerTimeSetValidate(t *testing.T) {
	day := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	good := PrayerTimeSet{
		Date: day,
		Fajr: at(4, 6), Sunrise: at(5, 34), Dhuhr: at(12, 18),
		Asr: at(15, 35), Maghrib: at(19, 1), Isha: at(20, 20),
	}
	assert.NoError(t, good.Validate())

	swapped := good
	swapped.Asr, swapped.Dhuhr = swapped.Dhuhr, swapped.Asr
	assert.Error(t, swapped.Validate())

	outside := good
	outside.Isha = day.Add(25 * time.Hour)
	assert.Error(t, outside.Validate())

	equal := good
	equal.Sunrise = equal.Fajr
	assert.Error(t, equal.Validate(), "equal adjacent times are not strictly increasing")
}

func TestPrayerTimeSetRecord(t *testing.T) {
	zone := time.FixedZone("UTC+03", 3*3600)
	day := time.Date(2024, time.June, 1, 0, 0, 0, 0, zone)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	set := PrayerTimeSet{
		Location: Location{City: "Mecca", Lat: 21.4225, Lng: 39.8262},
		Date:     day,
		Fajr:     at(4, 6), Sunrise: at(5, 34), Dhuhr: at(12, 18),
		Asr: at(15, 35), Maghrib: at(19, 1), Isha: at(20, 20),
	}

	createdAt := time.Now().UTC()
	rec := set.Record("MWL", createdAt)

	assert.Equal(t, "Mecca", rec.City)
	assert.Equal(t, "2024-06-01", rec.Date)
	assert.Equal(t, "MWL", rec.Method)
	assert.Equal(t, "04:06", rec.Fajr)
	assert.Equal(t, "20:20", rec.Isha)
	assert.Equal(t, createdAt, rec.CreatedAt)
}
