package endpoints

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/zee00111/islamic-project/internal/cache"
	"github.com/zee00111/islamic-project/internal/http/api"
	"github.com/zee00111/islamic-project/internal/market"
	"github.com/zee00111/islamic-project/internal/model"
)

type MarketController struct {
	crypto   market.CryptoProvider
	weather  market.WeatherProvider
	currency market.CurrencyProvider
	cache    cache.Store
	cities   model.CityDirectory
}

// MarketModule mounts the proxied data feed endpoints: crypto prices,
// weather, and currency rates.
func MarketModule(crypto market.CryptoProvider, weather market.WeatherProvider, currency market.CurrencyProvider, cacheStore cache.Store, cities model.CityDirectory) api.Module {
	ctl := &MarketController{
		crypto:   crypto,
		weather:  weather,
		currency: currency,
		cache:    cacheStore,
		cities:   cities,
	}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/crypto/prices", ctl.getCryptoPrices)
		c.GET("/weather/:city", ctl.getWeather)
		c.GET("/currency/rates", ctl.getCurrencyRates)
	})
}

// GET /api/crypto/prices
func (m *MarketController) getCryptoPrices(ctx *gin.Context) (any, *api.APIError) {
	prices, _, err := cache.Fetch(ctx, m.cache, cache.Key("crypto", "prices"), cache.TTLCrypto,
		func(fctx context.Context) ([]model.CryptoPrice, error) {
			return m.crypto.Prices(fctx)
		})
	if err != nil {
		log.Error().Err(err).Msg("crypto prices unavailable")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "crypto prices unavailable"}
	}
	return prices, nil
}

// GET /api/weather/:city
func (m *MarketController) getWeather(ctx *gin.Context) (any, *api.APIError) {
	city := ctx.Param("city")
	loc, err := m.cities.Resolve(city)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "city not found"}
	}

	report, _, err := cache.Fetch(ctx, m.cache, cache.Key("weather", city), cache.TTLWeather,
		func(fctx context.Context) (model.WeatherReport, error) {
			return m.weather.Current(fctx, loc)
		})
	if err != nil {
		if errors.Is(err, market.ErrNoWeatherData) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "weather data not available for this city"}
		}
		log.Error().Err(err).Str("city", city).Msg("weather unavailable")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "weather data unavailable"}
	}
	return report, nil
}

// GET /api/currency/rates
func (m *MarketController) getCurrencyRates(ctx *gin.Context) (any, *api.APIError) {
	rates, _, err := cache.Fetch(ctx, m.cache, cache.Key("currency", "rates"), cache.TTLCurrency,
		func(fctx context.Context) (model.CurrencyRates, error) {
			return m.currency.Rates(fctx)
		})
	if err != nil {
		log.Error().Err(err).Msg("currency rates unavailable")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "currency rates unavailable"}
	}
	return rates, nil
}
