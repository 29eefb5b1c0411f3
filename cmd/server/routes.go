package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/zee00111/islamic-project/internal/cache"
	"github.com/zee00111/islamic-project/internal/db"
	"github.com/zee00111/islamic-project/internal/hijri"
	"github.com/zee00111/islamic-project/internal/http/api"
	"github.com/zee00111/islamic-project/internal/http/api/tools/endpoints"
	"github.com/zee00111/islamic-project/internal/market"
	"github.com/zee00111/islamic-project/internal/model"
	"github.com/zee00111/islamic-project/internal/zakat"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(
	r *gin.Engine,
	env Environment,
	store db.Store,
	cacheStore cache.Store,
	crypto market.CryptoProvider,
	weather market.WeatherProvider,
	currency market.CurrencyProvider,
) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	cities := model.DefaultCities()

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
	},
		endpoints.MiscModule(endpoints.DefaultQuotes()),
		endpoints.PrayerModule(store, cacheStore, cities, env.DefaultPrayerMethod),
		endpoints.QiblaModule(cacheStore, cities),
		endpoints.ZakatModule(zakat.DefaultNisab()),
		endpoints.MarketModule(crypto, weather, currency, cacheStore, cities),
		endpoints.CalendarModule(cacheStore, hijri.DefaultEvents()),
		endpoints.StatusModule(store),
	)
}
