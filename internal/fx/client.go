// Package fx fetches the current USD/BRL quote from AwesomeAPI. Any
// non-success response or malformed body is a hard failure for the calling
// invocation; there is no retry.
package fx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

const defaultEndpoint = "https://economia.awesomeapi.com.br/last/USD-BRL"

// RateSource provides the current USD/BRL exchange rate.
type RateSource interface {
	USDBRL(ctx context.Context) (float64, error)
}

// Client is the concrete RateSource backed by AwesomeAPI.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient creates a Client against the public AwesomeAPI endpoint.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		endpoint:   defaultEndpoint,
	}
}

// NewClientWithEndpoint creates a Client against a custom endpoint, used by
// tests.
func NewClientWithEndpoint(endpoint string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		endpoint:   endpoint,
	}
}

type quoteResponse struct {
	USDBRL struct {
		Bid string `json:"bid"`
	} `json:"USDBRL"`
}

// USDBRL returns the current bid quote as a float.
func (c *Client) USDBRL(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("USDBRL: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("USDBRL: fetch quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("USDBRL: unexpected status %s", resp.Status)
	}

	var q quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&q); err != nil {
		return 0, fmt.Errorf("USDBRL: decode response: %w", err)
	}

	rate, err := strconv.ParseFloat(q.USDBRL.Bid, 64)
	if err != nil {
		return 0, fmt.Errorf("USDBRL: parse bid %q: %w", q.USDBRL.Bid, err)
	}
	return rate, nil
}
