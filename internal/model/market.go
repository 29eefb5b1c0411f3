package model

import "time"

// CryptoPrice is one cryptocurrency quote in USD.
type CryptoPrice struct {
	Symbol      string    `json:"symbol"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Change24h   float64   `json:"change_24h"`
	LastUpdated time.Time `json:"last_updated"`
}

// WeatherReport is the current conditions for one city.
type WeatherReport struct {
	City        string    `json:"city"`
	Temperature float64   `json:"temperature"` // celsius
	Condition   string    `json:"condition"`
	Humidity    float64   `json:"humidity"`   // percent
	WindSpeed   float64   `json:"wind_speed"` // km/h
	LastUpdated time.Time `json:"last_updated"`
}

// CurrencyRates maps currency codes to their rate against the base currency.
type CurrencyRates struct {
	Base        string             `json:"base"`
	Rates       map[string]float64 `json:"rates"`
	LastUpdated time.Time          `json:"last_updated"`
}
