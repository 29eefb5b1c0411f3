package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/zee00111/islamic-project/internal/cache"
	"github.com/zee00111/islamic-project/internal/db"
	"github.com/zee00111/islamic-project/internal/market"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	env := LoadEnvironment()

	if env.Environment != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// initialize PostgreSQL
	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}

	// run pending migrations
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	store := db.NewStore()

	cacheStore := buildCache(env)

	fallback := market.DefaultFallback()
	crypto := market.NewCrypto(market.NewCoinGecko(env.CoinGeckoURL, nil), fallback.Crypto)
	weather := market.NewWeather(market.NewOpenMeteo(env.OpenMeteoURL, nil), fallback.Weather)
	currency := market.NewCurrency(market.NewExchangeRate(env.ExchangeRateURL, nil), fallback.Rates)

	r := gin.Default()
	RegisterRoutes(r, env, store, cacheStore, crypto, weather, currency)

	log.Info().Str("address", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

// buildCache prefers redis and degrades to the in-process store, so the
// service still runs on a laptop with nothing but Postgres.
func buildCache(env Environment) cache.Store {
	if env.RedisAddress == "" {
		log.Info().Msg("REDIS_ADDRESS not set, using in-process cache")
		return cache.NewMemory()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := cache.NewRedis(ctx, env.RedisAddress, env.RedisUsername, env.RedisPassword)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, using in-process cache")
		return cache.NewMemory()
	}
	return store
}
