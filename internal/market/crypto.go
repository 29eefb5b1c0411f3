package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/zee00111/islamic-project/internal/model"
)

// DefaultCoinGeckoURL is the production CoinGecko endpoint.
const DefaultCoinGeckoURL = "https://api.coingecko.com"

// coinGeckoIDs lists the coins the dashboard tracks, in display order.
var coinGeckoIDs = []string{
	"bitcoin", "ethereum", "binancecoin", "cardano", "solana",
	"polkadot", "matic-network", "avalanche-2", "chainlink", "uniswap",
	"litecoin", "ripple", "algorand", "vechain", "cosmos",
}

// CoinGeckoClient fetches USD quotes from the CoinGecko markets endpoint.
type CoinGeckoClient struct {
	baseURL string
	client  *http.Client
}

func NewCoinGecko(baseURL string, client *http.Client) *CoinGeckoClient {
	if baseURL == "" {
		baseURL = DefaultCoinGeckoURL
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &CoinGeckoClient{baseURL: baseURL, client: client}
}

func (c *CoinGeckoClient) Prices(ctx context.Context) ([]model.CryptoPrice, error) {
	q := url.Values{}
	q.Set("vs_currency", "usd")
	q.Set("ids", strings.Join(coinGeckoIDs, ","))
	q.Set("price_change_percentage", "24h")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/v3/coins/markets?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coingecko request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("coingecko status %d", resp.StatusCode)
	}

	var rows []struct {
		Symbol    string  `json:"symbol"`
		Name      string  `json:"name"`
		Price     float64 `json:"current_price"`
		Change24h float64 `json:"price_change_percentage_24h"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("coingecko decode: %w", err)
	}

	now := time.Now().UTC()
	out := make([]model.CryptoPrice, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.CryptoPrice{
			Symbol:      strings.ToUpper(r.Symbol),
			Name:        r.Name,
			Price:       r.Price,
			Change24h:   r.Change24h,
			LastUpdated: now,
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("coingecko returned no rows")
	}
	return out, nil
}

// Crypto is the breaker-and-fallback wrapper handed to the HTTP layer.
type Crypto struct {
	upstream CryptoProvider
	cb       *gobreaker.CircuitBreaker[[]model.CryptoPrice]
	fallback []model.CryptoPrice
}

func NewCrypto(upstream CryptoProvider, fallback []model.CryptoPrice) *Crypto {
	return &Crypto{
		upstream: upstream,
		cb:       newBreaker[[]model.CryptoPrice]("crypto"),
		fallback: fallback,
	}
}

func (c *Crypto) Prices(ctx context.Context) ([]model.CryptoPrice, error) {
	prices, err := c.cb.Execute(func() ([]model.CryptoPrice, error) {
		return c.upstream.Prices(ctx)
	})
	if err == nil {
		return prices, nil
	}

	log.Warn().Err(err).Msg("crypto upstream unavailable, serving fallback dataset")
	now := time.Now().UTC()
	out := make([]model.CryptoPrice, len(c.fallback))
	copy(out, c.fallback)
	for i := range out {
		out[i].LastUpdated = now
	}
	return out, nil
}
