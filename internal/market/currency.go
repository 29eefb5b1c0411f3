package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/zee00111/islamic-project/internal/model"
)

// DefaultExchangeRateURL is the production open.er-api.com endpoint.
const DefaultExchangeRateURL = "https://open.er-api.com"

// ExchangeRateClient fetches USD-based rates from open.er-api.com.
type ExchangeRateClient struct {
	baseURL string
	client  *http.Client
}

func NewExchangeRate(baseURL string, client *http.Client) *ExchangeRateClient {
	if baseURL == "" {
		baseURL = DefaultExchangeRateURL
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &ExchangeRateClient{baseURL: baseURL, client: client}
}

func (c *ExchangeRateClient) Rates(ctx context.Context) (model.CurrencyRates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v6/latest/USD", nil)
	if err != nil {
		return model.CurrencyRates{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return model.CurrencyRates{}, fmt.Errorf("exchange-rate request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return model.CurrencyRates{}, fmt.Errorf("exchange-rate status %d", resp.StatusCode)
	}

	var body struct {
		Result   string             `json:"result"`
		BaseCode string             `json:"base_code"`
		Rates    map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.CurrencyRates{}, fmt.Errorf("exchange-rate decode: %w", err)
	}
	if body.Result != "success" || len(body.Rates) == 0 {
		return model.CurrencyRates{}, fmt.Errorf("exchange-rate result %q", body.Result)
	}

	return model.CurrencyRates{
		Base:        body.BaseCode,
		Rates:       body.Rates,
		LastUpdated: time.Now().UTC(),
	}, nil
}

// Currency is the breaker-and-fallback wrapper handed to the HTTP layer.
type Currency struct {
	upstream CurrencyProvider
	cb       *gobreaker.CircuitBreaker[model.CurrencyRates]
	fallback model.CurrencyRates
}

func NewCurrency(upstream CurrencyProvider, fallback model.CurrencyRates) *Currency {
	return &Currency{
		upstream: upstream,
		cb:       newBreaker[model.CurrencyRates]("currency"),
		fallback: fallback,
	}
}

func (c *Currency) Rates(ctx context.Context) (model.CurrencyRates, error) {
	rates, err := c.cb.Execute(func() (model.CurrencyRates, error) {
		return c.upstream.Rates(ctx)
	})
	if err == nil {
		return rates, nil
	}

	log.Warn().Err(err).Msg("currency upstream unavailable, serving fallback dataset")
	out := c.fallback
	out.LastUpdated = time.Now().UTC()
	return out, nil
}
