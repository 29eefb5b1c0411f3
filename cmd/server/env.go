package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

type Environment struct {
	Environment    string
	ServerAddress  string
	DatabaseURL    string
	MigrationsPath string

	RedisAddress  string
	RedisUsername string
	RedisPassword string

	// upstream overrides, empty means the production endpoints
	CoinGeckoURL    string
	OpenMeteoURL    string
	ExchangeRateURL string

	DefaultPrayerMethod string
}

// LoadEnvironment reads and validates env vars
func LoadEnvironment() Environment {
	env := Environment{
		Environment:    os.Getenv("APP_ENV"),
		ServerAddress:  os.Getenv("SERVER_ADDRESS"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		CoinGeckoURL:    os.Getenv("COINGECKO_URL"),
		OpenMeteoURL:    os.Getenv("OPENMETEO_URL"),
		ExchangeRateURL: os.Getenv("EXCHANGE_RATE_URL"),

		DefaultPrayerMethod: os.Getenv("DEFAULT_PRAYER_METHOD"),
	}

	if env.ServerAddress == "" {
		env.ServerAddress = ":8080"
	}
	if env.MigrationsPath == "" {
		env.MigrationsPath = "./migrations"
	}

	// Basic validation
	if env.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	return env
}
