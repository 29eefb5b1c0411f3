package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/zee00111/islamic-project/internal/model"
)

// ErrNoWeatherData means neither the upstream nor the fallback dataset can
// answer for the requested city.
var ErrNoWeatherData = errors.New("no weather data available for city")

// DefaultOpenMeteoURL is the production Open-Meteo endpoint.
const DefaultOpenMeteoURL = "https://api.open-meteo.com"

// OpenMeteoClient fetches current conditions by coordinates.
type OpenMeteoClient struct {
	baseURL string
	client  *http.Client
}

func NewOpenMeteo(baseURL string, client *http.Client) *OpenMeteoClient {
	if baseURL == "" {
		baseURL = DefaultOpenMeteoURL
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &OpenMeteoClient{baseURL: baseURL, client: client}
}

func (c *OpenMeteoClient) Current(ctx context.Context, loc model.Location) (model.WeatherReport, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(loc.Lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(loc.Lng, 'f', 4, 64))
	q.Set("current", "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/forecast?"+q.Encode(), nil)
	if err != nil {
		return model.WeatherReport{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return model.WeatherReport{}, fmt.Errorf("open-meteo request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return model.WeatherReport{}, fmt.Errorf("open-meteo status %d", resp.StatusCode)
	}

	var body struct {
		Current struct {
			Temperature float64 `json:"temperature_2m"`
			Humidity    float64 `json:"relative_humidity_2m"`
			WeatherCode int     `json:"weather_code"`
			WindSpeed   float64 `json:"wind_speed_10m"`
		} `json:"current"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.WeatherReport{}, fmt.Errorf("open-meteo decode: %w", err)
	}

	return model.WeatherReport{
		City:        loc.City,
		Temperature: body.Current.Temperature,
		Condition:   describeWeatherCode(body.Current.WeatherCode),
		Humidity:    body.Current.Humidity,
		WindSpeed:   body.Current.WindSpeed,
		LastUpdated: time.Now().UTC(),
	}, nil
}

// describeWeatherCode folds WMO weather codes into the short labels the
// frontend shows.
func describeWeatherCode(code int) string {
	switch {
	case code == 0:
		return "Clear"
	case code <= 2:
		return "Partly Cloudy"
	case code == 3:
		return "Cloudy"
	case code <= 48:
		return "Fog"
	case code <= 57:
		return "Drizzle"
	case code <= 67:
		return "Rain"
	case code <= 77:
		return "Snow"
	case code <= 82:
		return "Showers"
	case code <= 86:
		return "Snow Showers"
	default:
		return "Thunderstorm"
	}
}

// Weather is the breaker-and-fallback wrapper handed to the HTTP layer.
type Weather struct {
	upstream WeatherProvider
	cb       *gobreaker.CircuitBreaker[model.WeatherReport]
	fallback map[string]model.WeatherReport
}

func NewWeather(upstream WeatherProvider, fallback map[string]model.WeatherReport) *Weather {
	return &Weather{
		upstream: upstream,
		cb:       newBreaker[model.WeatherReport]("weather"),
		fallback: fallback,
	}
}

func (w *Weather) Current(ctx context.Context, loc model.Location) (model.WeatherReport, error) {
	report, err := w.cb.Execute(func() (model.WeatherReport, error) {
		return w.upstream.Current(ctx, loc)
	})
	if err == nil {
		return report, nil
	}

	if mock, ok := w.fallback[loc.City]; ok {
		log.Warn().Err(err).Str("city", loc.City).Msg("weather upstream unavailable, serving fallback dataset")
		mock.LastUpdated = time.Now().UTC()
		return mock, nil
	}
	return model.WeatherReport{}, fmt.Errorf("%w: %s: %v", ErrNoWeatherData, loc.City, err)
}
