package astro

import (
	"fmt"
	"sort"
	"time"

	"github.com/zee00111/islamic-project/internal/model"
)

// Method is an angle convention for the twilight prayers. Conventions differ
// on how far below the horizon the sun must be for Fajr and Isha; Umm
// al-Qura instead fixes Isha at a minute offset after sunset.
type Method struct {
	Name        string
	FajrAngle   float64
	IshaAngle   float64
	IshaMinutes float64 // used instead of IshaAngle when non-zero
}

// DefaultMethod is the convention used when a request does not name one.
const DefaultMethod = "MWL"

var methods = map[string]Method{
	"MWL":     {Name: "MWL", FajrAngle: 18, IshaAngle: 17},
	"ISNA":    {Name: "ISNA", FajrAngle: 15, IshaAngle: 15},
	"Egypt":   {Name: "Egypt", FajrAngle: 19.5, IshaAngle: 17.5},
	"Makkah":  {Name: "Makkah", FajrAngle: 18.5, IshaMinutes: 90},
	"Karachi": {Name: "Karachi", FajrAngle: 18, IshaAngle: 18},
}

// MethodByName resolves a convention by its identifier.
func MethodByName(name string) (Method, bool) {
	m, ok := methods[name]
	return m, ok
}

// MethodNames lists the supported conventions, sorted.
func MethodNames() []string {
	out := make([]string, 0, len(methods))
	for name := range methods {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// AsrJuristic selects the shadow factor for Asr.
type AsrJuristic int

const (
	AsrShafi  AsrJuristic = 1 // shadow equals object height
	AsrHanafi AsrJuristic = 2 // shadow equals twice object height
)

// horizonAngle accounts for refraction plus the solar radius at rise/set.
const horizonAngle = 0.833

// nightPortion is the angle-based high-latitude rule: when twilight never
// reaches the convention's angle, fajr and isha take angle/60 of the night
// on their side of the sun's path.
func nightPortion(angle, night float64) float64 {
	return angle / 60 * night
}

// PrayerTimes computes the six daily prayer times for the given location and
// civil date. The zone determines which calendar day is evaluated and the
// zone of the returned times; pass nil to derive a fixed zone from the
// longitude.
//
// At high latitudes the sun can stay shallower than the fajr/isha angles all
// night; those two times then fall back to the angle-based night portion so
// the timetable stays well ordered. Returns model.ErrInvalidLocation for
// out-of-range coordinates and ErrNoSunEvent where the sun does not rise or
// set at all on that date.
func PrayerTimes(loc model.Location, date time.Time, m Method, asr AsrJuristic, zone *time.Location) (model.PrayerTimeSet, error) {
	if err := loc.Validate(); err != nil {
		return model.PrayerTimeSet{}, err
	}
	if zone == nil {
		zone = ApproxZone(loc.Lng)
	}
	if asr != AsrShafi && asr != AsrHanafi {
		asr = AsrShafi
	}

	year, month, day := date.In(zone).Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, zone)

	// Evaluate the sun near local solar noon of the date; declination and
	// the equation of time drift slowly enough that one sample suffices.
	jd := julianDay(year, int(month), day) + 0.5 - loc.Lng/360
	decl, eqt := sunPosition(jd)

	// Solar noon in UTC hours. Near the antimeridian this can sit slightly
	// outside [0, 24); at() resolves it into the local day, so no wrapping.
	noonUTC := 12 - loc.Lng/15 - eqt

	riseHA, err := hourAngle(horizonAngle, loc.Lat, decl)
	if err != nil {
		return model.PrayerTimeSet{}, err
	}
	asrHA, err := asrHourAngle(float64(asr), loc.Lat, decl)
	if err != nil {
		return model.PrayerTimeSet{}, fmt.Errorf("asr: %w", err)
	}

	sunriseUTC := noonUTC - riseHA
	sunsetUTC := noonUTC + riseHA
	night := 24 - 2*riseHA

	fajrUTC := sunriseUTC - nightPortion(m.FajrAngle, night)
	if fajrHA, err := hourAngle(m.FajrAngle, loc.Lat, decl); err == nil &&
		fajrHA-riseHA <= nightPortion(m.FajrAngle, night) {
		fajrUTC = noonUTC - fajrHA
	}

	var ishaUTC float64
	if m.IshaMinutes > 0 {
		ishaUTC = sunsetUTC + m.IshaMinutes/60
	} else {
		ishaUTC = sunsetUTC + nightPortion(m.IshaAngle, night)
		if ishaHA, err := hourAngle(m.IshaAngle, loc.Lat, decl); err == nil &&
			ishaHA-riseHA <= nightPortion(m.IshaAngle, night) {
			ishaUTC = noonUTC + ishaHA
		}
	}

	at := func(utcHours float64) time.Time {
		_, offsetSec := midnight.Zone()
		local := utcHours + float64(offsetSec)/3600
		return midnight.Add(time.Duration(local * float64(time.Hour))).Round(time.Second)
	}

	set := model.PrayerTimeSet{
		Location: loc,
		Date:     midnight,
		Fajr:     at(fajrUTC),
		Sunrise:  at(sunriseUTC),
		Dhuhr:    at(noonUTC),
		Asr:      at(noonUTC + asrHA),
		Maghrib:  at(sunsetUTC),
		Isha:     at(ishaUTC),
	}
	if err := set.Validate(); err != nil {
		return model.PrayerTimeSet{}, fmt.Errorf("computed times inconsistent: %w", err)
	}
	return set, nil
}
