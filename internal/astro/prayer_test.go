package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zee00111/islamic-project/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPrayerTimes_StrictlyIncreasing(t *testing.T) {
	cities := model.DefaultCities()
	dates := []time.Time{
		date(2024, time.January, 15),
		date(2024, time.June, 1),
		date(2024, time.September, 23),
		date(2025, time.December, 21),
	}

	for name := range cities {
		loc, err := cities.Resolve(name)
		require.NoError(t, err)
		for _, d := range dates {
			for _, methodName := range MethodNames() {
				m, ok := MethodByName(methodName)
				require.True(t, ok)

				set, err := PrayerTimes(loc, d, m, AsrShafi, nil)
				require.NoError(t, err, "%s %s %s", name, d.Format("2006-01-02"), methodName)

				times := set.Ordered()
				for i := 1; i < len(times); i++ {
					assert.True(t, times[i-1].Before(times[i]),
						"%s %s %s: time %d not after time %d", name, d.Format("2006-01-02"), methodName, i, i-1)
				}
				assert.NoError(t, set.Validate())
			}
		}
	}
}

func TestPrayerTimes_MeccaJune2024(t *testing.T) {
	m, ok := MethodByName("MWL")
	require.True(t, ok)

	set, err := PrayerTimes(Kaaba, date(2024, time.June, 1), m, AsrShafi, nil)
	require.NoError(t, err)

	dayStart := set.Date
	dayEnd := dayStart.Add(24 * time.Hour)
	for _, pt := range set.Ordered() {
		assert.False(t, pt.Before(dayStart))
		assert.True(t, pt.Before(dayEnd))
	}

	// Sanity anchors: Mecca sits close to its zone meridian, so solar noon
	// lands near 12:20 local in early June.
	assert.InDelta(t, 12.3, hoursOfDay(set.Dhuhr), 0.2)
	assert.InDelta(t, 5.6, hoursOfDay(set.Sunrise), 0.2)
	assert.InDelta(t, 19.0, hoursOfDay(set.Maghrib), 0.2)
}

func hoursOfDay(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}

func TestPrayerTimes_MethodsDiffer(t *testing.T) {
	loc := model.Location{City: "Cairo", Lat: 30.0444, Lng: 31.2357}
	d := date(2024, time.June, 1)

	mwl, _ := MethodByName("MWL")
	isna, _ := MethodByName("ISNA")
	makkah, _ := MethodByName("Makkah")

	a, err := PrayerTimes(loc, d, mwl, AsrShafi, nil)
	require.NoError(t, err)
	b, err := PrayerTimes(loc, d, isna, AsrShafi, nil)
	require.NoError(t, err)

	// A shallower fajr angle means dawn is declared later.
	assert.True(t, b.Fajr.After(a.Fajr), "ISNA fajr should be after MWL fajr")
	assert.True(t, b.Isha.Before(a.Isha), "ISNA isha should be before MWL isha")
	assert.Equal(t, a.Dhuhr, b.Dhuhr)

	c, err := PrayerTimes(loc, d, makkah, AsrShafi, nil)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, c.Isha.Sub(c.Maghrib))
}

func TestPrayerTimes_AsrJuristic(t *testing.T) {
	loc := model.Location{City: "Istanbul", Lat: 41.0082, Lng: 28.9784}
	m, _ := MethodByName("MWL")

	shafi, err := PrayerTimes(loc, date(2024, time.June, 1), m, AsrShafi, nil)
	require.NoError(t, err)
	hanafi, err := PrayerTimes(loc, date(2024, time.June, 1), m, AsrHanafi, nil)
	require.NoError(t, err)

	assert.True(t, hanafi.Asr.After(shafi.Asr), "Hanafi asr should fall later")
}

func TestPrayerTimes_InvalidLocation(t *testing.T) {
	m, _ := MethodByName("MWL")
	_, err := PrayerTimes(model.Location{Lat: 91, Lng: 0}, date(2024, time.June, 1), m, AsrShafi, nil)
	assert.ErrorIs(t, err, model.ErrInvalidLocation)

	_, err = PrayerTimes(model.Location{Lat: 0, Lng: -181}, date(2024, time.June, 1), m, AsrShafi, nil)
	assert.ErrorIs(t, err, model.ErrInvalidLocation)
}

func TestPrayerTimes_HighLatitudeSummer(t *testing.T) {
	// In June at London's latitude the sun never gets 18 degrees below the
	// horizon, so fajr and isha come from the night-portion rule instead of
	// erroring out.
	m, _ := MethodByName("MWL")
	london := model.Location{City: "London", Lat: 51.5074, Lng: -0.1278}

	set, err := PrayerTimes(london, date(2024, time.June, 21), m, AsrShafi, nil)
	require.NoError(t, err)
	require.NoError(t, set.Validate())
	assert.True(t, set.Fajr.Before(set.Sunrise))
	assert.True(t, set.Isha.After(set.Maghrib))
}

func TestPrayerTimes_NearAntimeridian(t *testing.T) {
	// Solar noon for longitudes past about 177 degrees falls on the other
	// side of midnight UTC; the timetable must still land inside the local
	// calendar day on both sides of the antimeridian.
	m, _ := MethodByName("MWL")
	cases := []struct {
		name string
		loc  model.Location
	}{
		{"Suva", model.Location{City: "Suva", Lat: -18.1416, Lng: 178.4419}},
		{"Adak", model.Location{City: "Adak", Lat: 51.88, Lng: -176.6581}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set, err := PrayerTimes(tc.loc, date(2024, time.November, 1), m, AsrShafi, nil)
			require.NoError(t, err)
			require.NoError(t, set.Validate())
			assert.InDelta(t, 11.7, hoursOfDay(set.Dhuhr), 0.5)
		})
	}
}

func TestPrayerTimes_PolarSummer(t *testing.T) {
	m, _ := MethodByName("MWL")
	svalbard := model.Location{City: "Longyearbyen", Lat: 78.2232, Lng: 15.6267}
	_, err := PrayerTimes(svalbard, date(2024, time.June, 21), m, AsrShafi, nil)
	assert.ErrorIs(t, err, ErrNoSunEvent)
}

func TestApproxZone(t *testing.T) {
	_, offset := time.Now().In(ApproxZone(39.8262)).Zone()
	assert.Equal(t, 3*3600, offset)

	_, offset = time.Now().In(ApproxZone(-74.006)).Zone()
	assert.Equal(t, -5*3600, offset)

	_, offset = time.Now().In(ApproxZone(0)).Zone()
	assert.Equal(t, 0, offset)
}
