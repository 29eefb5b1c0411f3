package astro

import (
	"math"

	"github.com/zee00111/islamic-project/internal/model"
)

// Kaaba is the fixed reference point all qibla bearings point to.
var Kaaba = model.Location{City: "Mecca", Lat: 21.4225, Lng: 39.8262}

const earthRadiusKm = 6371

// Qibla returns the great-circle initial bearing and distance from the
// location to the Kaaba. Pure function of the location. At the Kaaba
// coordinate itself the bearing is degenerate; by convention this returns a
// zero bearing and zero distance instead of NaN.
func Qibla(loc model.Location) (model.QiblaBearing, error) {
	if err := loc.Validate(); err != nil {
		return model.QiblaBearing{}, err
	}

	if loc.Lat == Kaaba.Lat && loc.Lng == Kaaba.Lng {
		return model.QiblaBearing{Location: loc}, nil
	}

	lat1 := loc.Lat * math.Pi / 180
	lat2 := Kaaba.Lat * math.Pi / 180
	dLng := (Kaaba.Lng - loc.Lng) * math.Pi / 180

	y := math.Sin(dLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)
	bearing := fixAngle(math.Atan2(y, x) * 180 / math.Pi)

	dLat := lat2 - lat1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	distance := 2 * earthRadiusKm * math.Asin(math.Sqrt(a))

	return model.QiblaBearing{
		Location:   loc,
		Direction:  bearing,
		DistanceKm: distance,
	}, nil
}
