// Package astro computes daily prayer times and the qibla bearing from
// geographic coordinates using closed-form solar-position formulas.
package astro

import (
	"errors"
	"math"
	"time"
)

// ErrNoSunEvent means the sun never reaches the requested depression angle
// at the given latitude and date (polar day or night).
var ErrNoSunEvent = errors.New("sun does not reach the requested angle at this latitude and date")

func sinDeg(d float64) float64  { return math.Sin(d * math.Pi / 180) }
func cosDeg(d float64) float64  { return math.Cos(d * math.Pi / 180) }
func tanDeg(d float64) float64  { return math.Tan(d * math.Pi / 180) }
func asinDeg(x float64) float64 { return math.Asin(x) * 180 / math.Pi }
func acosDeg(x float64) float64 { return math.Acos(x) * 180 / math.Pi }

// acotDeg returns the arc-cotangent in degrees for x > 0.
func acotDeg(x float64) float64 { return math.Atan(1/x) * 180 / math.Pi }

func atan2Deg(y, x float64) float64 { return math.Atan2(y, x) * 180 / math.Pi }

// fixAngle normalizes an angle into [0, 360).
func fixAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// fixHour normalizes an hour value into [0, 24).
func fixHour(h float64) float64 {
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	return h
}

// julianDay converts a Gregorian calendar date to the Julian day number at
// 00:00 UT.
func julianDay(year, month, day int) float64 {
	if month <= 2 {
		year--
		month += 12
	}
	a := math.Floor(float64(year) / 100)
	b := 2 - a + math.Floor(a/4)
	return math.Floor(365.25*float64(year+4716)) +
		math.Floor(30.6001*float64(month+1)) +
		float64(day) + b - 1524.5
}

// sunPosition returns the solar declination (degrees) and the equation of
// time (hours) for the given Julian day, using the low-precision series from
// the Astronomical Almanac. Accurate to well under a minute, which is ample
// for prayer timetables.
func sunPosition(jd float64) (decl, eqt float64) {
	d := jd - 2451545.0

	g := fixAngle(357.529 + 0.98560028*d)  // mean anomaly
	q := fixAngle(280.459 + 0.98564736*d)  // mean longitude
	l := fixAngle(q + 1.915*sinDeg(g) + 0.020*sinDeg(2*g))

	e := 23.439 - 0.00000036*d // obliquity of the ecliptic

	decl = asinDeg(sinDeg(e) * sinDeg(l))

	ra := fixHour(atan2Deg(cosDeg(e)*sinDeg(l), cosDeg(l)) / 15)
	eqt = q/15 - ra
	for eqt > 12 {
		eqt -= 24
	}
	for eqt < -12 {
		eqt += 24
	}
	return decl, eqt
}

// hourAngle returns the hour angle (in hours from solar noon) at which the
// sun sits `angle` degrees below the horizon, for the given latitude and
// solar declination. ErrNoSunEvent when the sun never reaches that depth.
func hourAngle(angle, lat, decl float64) (float64, error) {
	cosHA := (-sinDeg(angle) - sinDeg(lat)*sinDeg(decl)) /
		(cosDeg(lat) * cosDeg(decl))
	if cosHA < -1 || cosHA > 1 {
		return 0, ErrNoSunEvent
	}
	return acosDeg(cosHA) / 15, nil
}

// asrHourAngle returns the hour angle after solar noon at which an object's
// shadow equals `factor` times its height plus the noon shadow.
func asrHourAngle(factor, lat, decl float64) (float64, error) {
	altitude := acotDeg(factor + tanDeg(math.Abs(lat-decl)))
	cosHA := (sinDeg(altitude) - sinDeg(lat)*sinDeg(decl)) /
		(cosDeg(lat) * cosDeg(decl))
	if cosHA < -1 || cosHA > 1 {
		return 0, ErrNoSunEvent
	}
	return acosDeg(cosHA) / 15, nil
}

// ApproxZone builds a fixed time zone from the longitude's natural offset.
// Used when a request carries bare coordinates with no resolved zone; civil
// zones can differ by an hour or so but the offset keeps every prayer time
// inside the location's own calendar day.
func ApproxZone(lng float64) *time.Location {
	offset := int(math.Round(lng / 15))
	return time.FixedZone(zoneName(offset), offset*3600)
}

func zoneName(offset int) string {
	if offset == 0 {
		return "UTC"
	}
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return "UTC" + sign + itoa2(offset)
}

func itoa2(n int) string {
	if n < 10 {
		return string(rune('0' + n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}
