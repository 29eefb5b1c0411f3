// Package market wraps the external data feeds (crypto prices, weather,
// currency rates) behind provider interfaces. Each live provider sits behind
// a circuit breaker and degrades to a configured static dataset when the
// upstream is down, so the frontend widgets never go blank.
package market

import (
	"context"

	"github.com/zee00111/islamic-project/internal/model"
)

type CryptoProvider interface {
	Prices(ctx context.Context) ([]model.CryptoPrice, error)
}

type WeatherProvider interface {
	Current(ctx context.Context, loc model.Location) (model.WeatherReport, error)
}

type CurrencyProvider interface {
	Rates(ctx context.Context) (model.CurrencyRates, error)
}

// Fallback is the static dataset served when an upstream is unreachable.
// It is explicit configuration handed to the providers, not ambient state.
type Fallback struct {
	Crypto  []model.CryptoPrice
	Weather map[string]model.WeatherReport
	Rates   model.CurrencyRates
}

// DefaultFallback mirrors the datasets the platform shipped with before the
// live feeds were wired up.
func DefaultFallback() Fallback {
	return Fallback{
		Crypto: []model.CryptoPrice{
			{Symbol: "BTC", Name: "Bitcoin", Price: 45250.30, Change24h: 2.45},
			{Symbol: "ETH", Name: "Ethereum", Price: 2890.75, Change24h: -1.23},
			{Symbol: "BNB", Name: "Binance Coin", Price: 315.40, Change24h: 3.67},
			{Symbol: "ADA", Name: "Cardano", Price: 1.45, Change24h: 0.85},
			{Symbol: "SOL", Name: "Solana", Price: 98.75, Change24h: 4.23},
			{Symbol: "DOT", Name: "Polkadot", Price: 23.80, Change24h: -2.15},
			{Symbol: "MATIC", Name: "Polygon", Price: 0.89, Change24h: 1.87},
			{Symbol: "AVAX", Name: "Avalanche", Price: 34.60, Change24h: -0.95},
			{Symbol: "LINK", Name: "Chainlink", Price: 14.25, Change24h: 2.10},
			{Symbol: "UNI", Name: "Uniswap", Price: 6.75, Change24h: 1.45},
			{Symbol: "LTC", Name: "Litecoin", Price: 95.30, Change24h: -1.85},
			{Symbol: "XRP", Name: "Ripple", Price: 0.52, Change24h: 3.25},
			{Symbol: "ALGO", Name: "Algorand", Price: 0.31, Change24h: 2.80},
			{Symbol: "VET", Name: "VeChain", Price: 0.023, Change24h: 1.95},
			{Symbol: "ATOM", Name: "Cosmos", Price: 12.85, Change24h: -0.65},
		},
		Weather: map[string]model.WeatherReport{
			"Mecca":    {City: "Mecca", Temperature: 32, Condition: "Sunny", Humidity: 45, WindSpeed: 12},
			"Medina":   {City: "Medina", Temperature: 29, Condition: "Clear", Humidity: 40, WindSpeed: 8},
			"Istanbul": {City: "Istanbul", Temperature: 18, Condition: "Partly Cloudy", Humidity: 65, WindSpeed: 15},
			"Cairo":    {City: "Cairo", Temperature: 25, Condition: "Sunny", Humidity: 35, WindSpeed: 10},
			"Dubai":    {City: "Dubai", Temperature: 35, Condition: "Hot", Humidity: 50, WindSpeed: 20},
			"Jakarta":  {City: "Jakarta", Temperature: 28, Condition: "Humid", Humidity: 85, WindSpeed: 5},
		},
		Rates: model.CurrencyRates{
			Base: "USD",
			Rates: map[string]float64{
				"USD": 1.0,
				"EUR": 0.85,
				"GBP": 0.73,
				"AED": 3.67,
				"SAR": 3.75,
				"PKR": 280.50,
				"INR": 82.75,
				"TRY": 18.90,
				"EGP": 30.85,
				"IDR": 15750,
			},
		},
	}
}
