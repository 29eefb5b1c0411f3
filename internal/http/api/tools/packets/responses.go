package packets

// Coordinates echoes a resolved lat/lng pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PrayerTimesResponse is the cached daily timetable for one city. Source
// reports whether this request hit the cache or computed fresh.
type PrayerTimesResponse struct {
	City        string      `json:"city"`
	Coordinates Coordinates `json:"coordinates"`
	Date        string      `json:"date"`
	Method      string      `json:"method"`
	Fajr        string      `json:"fajr"`
	Sunrise     string      `json:"sunrise"`
	Dhuhr       string      `json:"dhuhr"`
	Asr         string      `json:"asr"`
	Maghrib     string      `json:"maghrib"`
	Isha        string      `json:"isha"`
	Source      string      `json:"source"`
}

// QiblaResponse is the bearing to the Kaaba from a city or coordinate pair.
type QiblaResponse struct {
	City        string      `json:"city,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
	Direction   float64     `json:"direction"`
	DistanceKm  float64     `json:"distance_km"`
}

// IslamicDateResponse is today's Hijri date.
type IslamicDateResponse struct {
	HijriDate     string `json:"hijri_date"`
	GregorianDate string `json:"gregorian_date"`
	DayName       string `json:"day_name"`
}

// QuoteResponse is one randomly chosen quote.
type QuoteResponse struct {
	Quote string `json:"quote"`
}

// BannerResponse identifies the service on the API root.
type BannerResponse struct {
	Message string `json:"message"`
}
