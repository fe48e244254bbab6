package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hoteldesk/internal/domain"
)

// RatesClient fetches the exchange-rate table and asks the backend to start
// tracking new currencies.
type RatesClient struct {
	http    *http.Client
	baseURL string
}

func NewRatesClient(httpClient *http.Client, baseURL string) *RatesClient {
	return &RatesClient{http: httpClient, baseURL: strings.TrimSuffix(baseURL, "/")}
}

type ratesResponse struct {
	Rates       map[string]float64 `json:"rates"`
	LastUpdated string             `json:"last_updated"`
}

type trackCurrencyRequest struct {
	Code string `json:"code"`
}

type trackCurrencyResponse struct {
	Rate float64 `json:"rate"`
}

func (c *RatesClient) FetchRates(ctx context.Context) (domain.ExchangeRates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/currency/rates", nil)
	if err != nil {
		return domain.ExchangeRates{}, fmt.Errorf("failed to create rates request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.ExchangeRates{}, fmt.Errorf("failed to fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.ExchangeRates{}, fmt.Errorf("unexpected status %d fetching rates: %s", resp.StatusCode, resp.Status)
	}

	var body ratesResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.ExchangeRates{}, fmt.Errorf("failed to decode rates response: %w", err)
	}
	if len(body.Rates) == 0 {
		return domain.ExchangeRates{}, fmt.Errorf("rates response contains no rates")
	}

	out := domain.ExchangeRates{Rates: body.Rates}
	if body.LastUpdated != "" {
		if ts, parseErr := time.Parse(time.RFC3339, body.LastUpdated); parseErr == nil {
			out.LastUpdated = ts
		}
	}
	return out, nil
}

func (c *RatesClient) TrackCurrency(ctx context.Context, code string) (float64, error) {
	payload, err := json.Marshal(trackCurrencyRequest{Code: code})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal track request for %q: %w", code, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/currency/tracked", bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to create track request for %q: %w", code, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to track currency %q: %w", code, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("unexpected status %d tracking currency %q", resp.StatusCode, code)
	}

	var body trackCurrencyResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode track response for %q: %w", code, err)
	}
	if body.Rate <= 0 {
		return 0, fmt.Errorf("backend returned non-positive rate %v for %q", body.Rate, code)
	}
	return body.Rate, nil
}
