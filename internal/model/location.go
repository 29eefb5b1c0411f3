package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLocation means the coordinates fall outside the valid
	// latitude/longitude ranges.
	ErrInvalidLocation = errors.New("invalid location coordinates")

	// ErrUnknownCity means a city name could not be resolved to coordinates.
	ErrUnknownCity = errors.New("unknown city")
)

// Location is a named point on the globe in floating-point degrees.
type Location struct {
	City string  `json:"city,omitempty"`
	Lat  float64 `json:"lat" db:"lat"`
	Lng  float64 `json:"lng" db:"lng"`
}

// Validate checks the coordinate ranges: lat in [-90, 90], lng in [-180, 180].
func (l Location) Validate() error {
	if l.Lat < -90 || l.Lat > 90 || l.Lng < -180 || l.Lng > 180 {
		return fmt.Errorf("%w: lat=%f lng=%f", ErrInvalidLocation, l.Lat, l.Lng)
	}
	return nil
}

// CityDirectory resolves city names to coordinates. It is plain configuration
// passed into whatever layer needs resolution, never ambient state.
type CityDirectory map[string]Location

// Resolve looks up a city by its exact name.
func (d CityDirectory) Resolve(city string) (Location, error) {
	loc, ok := d[city]
	if !ok {
		return Location{}, fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}
	loc.City = city
	return loc, nil
}

// DefaultCities is the city table served by the platform frontend.
func DefaultCities() CityDirectory {
	return CityDirectory{
		"Mecca":    {Lat: 21.4225, Lng: 39.8262},
		"Medina":   {Lat: 24.4686, Lng: 39.6142},
		"New York": {Lat: 40.7128, Lng: -74.0060},
		"London":   {Lat: 51.5074, Lng: -0.1278},
		"Dubai":    {Lat: 25.2048, Lng: 55.2708},
		"Istanbul": {Lat: 41.0082, Lng: 28.9784},
		"Cairo":    {Lat: 30.0444, Lng: 31.2357},
		"Jakarta":  {Lat: -6.2088, Lng: 106.8456},
		"Karachi":  {Lat: 24.8607, Lng: 67.0011},
		"Riyadh":   {Lat: 24.7136, Lng: 46.6753},
	}
}
