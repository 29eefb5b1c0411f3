package market

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zee00111/islamic-project/internal/model"
)

func TestCoinGeckoClient_Prices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/coins/markets", r.URL.Path)
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currency"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"symbol":"btc","name":"Bitcoin","current_price":45250.30,"price_change_percentage_24h":2.45},
			{"symbol":"eth","name":"Ethereum","current_price":2890.75,"price_change_percentage_24h":-1.23}
		]`))
	}))
	defer srv.Close()

	client := NewCoinGecko(srv.URL, srv.Client())
	prices, err := client.Prices(context.Background())
	require.NoError(t, err)
	require.Len(t, prices, 2)
	assert.Equal(t, "BTC", prices[0].Symbol)
	assert.Equal(t, "Bitcoin", prices[0].Name)
	assert.InDelta(t, 45250.30, prices[0].Price, 1e-9)
	assert.InDelta(t, -1.23, prices[1].Change24h, 1e-9)
	assert.False(t, prices[0].LastUpdated.IsZero())
}

func TestCoinGeckoClient_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewCoinGecko(srv.URL, srv.Client()).Prices(context.Background())
	assert.Error(t, err)
}

func TestOpenMeteoClient_Current(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, "21.4225", r.URL.Query().Get("latitude"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"current":{"temperature_2m":32.5,"relative_humidity_2m":45,"weather_code":0,"wind_speed_10m":12.3}}`))
	}))
	defer srv.Close()

	client := NewOpenMeteo(srv.URL, srv.Client())
	report, err := client.Current(context.Background(), model.Location{City: "Mecca", Lat: 21.4225, Lng: 39.8262})
	require.NoError(t, err)
	assert.Equal(t, "Mecca", report.City)
	assert.InDelta(t, 32.5, report.Temperature, 1e-9)
	assert.Equal(t, "Clear", report.Condition)
	assert.InDelta(t, 45, report.Humidity, 1e-9)
	assert.InDelta(t, 12.3, report.WindSpeed, 1e-9)
}

func TestExchangeRateClient_Rates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v6/latest/USD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":"success","base_code":"USD","rates":{"USD":1.0,"EUR":0.85,"SAR":3.75}}`))
	}))
	defer srv.Close()

	rates, err := NewExchangeRate(srv.URL, srv.Client()).Rates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "USD", rates.Base)
	assert.InDelta(t, 3.75, rates.Rates["SAR"], 1e-9)
}

type failingCrypto struct{}

func (failingCrypto) Prices(context.Context) ([]model.CryptoPrice, error) {
	return nil, errors.New("upstream down")
}

func TestCrypto_FallsBackOnError(t *testing.T) {
	fallback := DefaultFallback()
	provider := NewCrypto(failingCrypto{}, fallback.Crypto)

	prices, err := provider.Prices(context.Background())
	require.NoError(t, err)
	require.Len(t, prices, len(fallback.Crypto))
	assert.Equal(t, "BTC", prices[0].Symbol)
	assert.False(t, prices[0].LastUpdated.IsZero(), "fallback quotes are stamped at serve time")
}

type failingWeather struct{}

func (failingWeather) Current(context.Context, model.Location) (model.WeatherReport, error) {
	return model.WeatherReport{}, errors.New("upstream down")
}

func TestWeather_FallsBackForKnownCity(t *testing.T) {
	provider := NewWeather(failingWeather{}, DefaultFallback().Weather)

	report, err := provider.Current(context.Background(), model.Location{City: "Mecca", Lat: 21.4225, Lng: 39.8262})
	require.NoError(t, err)
	assert.Equal(t, "Mecca", report.City)
	assert.InDelta(t, 32, report.Temperature, 1e-9)
}

func TestWeather_NoFallbackForUnknownCity(t *testing.T) {
	provider := NewWeather(failingWeather{}, DefaultFallback().Weather)

	_, err := provider.Current(context.Background(), model.Location{City: "Reykjavik", Lat: 64.15, Lng: -21.94})
	assert.ErrorIs(t, err, ErrNoWeatherData)
}

type failingCurrency struct{}

func (failingCurrency) Rates(context.Context) (model.CurrencyRates, error) {
	return model.CurrencyRates{}, errors.New("upstream down")
}

func TestCurrency_FallsBackOnError(t *testing.T) {
	provider := NewCurrency(failingCurrency{}, DefaultFallback().Rates)

	rates, err := provider.Rates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "USD", rates.Base)
	assert.InDelta(t, 3.75, rates.Rates["SAR"], 1e-9)
}

func TestDescribeWeatherCode(t *testing.T) {
	assert.Equal(t, "Clear", describeWeatherCode(0))
	assert.Equal(t, "Partly Cloudy", describeWeatherCode(2))
	assert.Equal(t, "Rain", describeWeatherCode(63))
	assert.Equal(t, "Thunderstorm", describeWeatherCode(95))
}
