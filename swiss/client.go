// Package swiss provides a client for a Swiss-ephemeris-style calculation
// API. The endpoint is operator-supplied; only the request/response shapes
// are fixed.
package swiss

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client represents a client for a Swiss-ephemeris-style API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new client for the given calculation endpoint.
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
	}
}

// NewClientWithHTTPClient creates a new client with a custom HTTP client.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// SetBaseURL sets the base URL for the API (useful for testing).
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// Calculate requests moon and sun rise/set, position, and phase data for
// the given date and coordinates.
func (c *Client) Calculate(ctx context.Context, date time.Time, latitude, longitude float64) (*CalculateResponse, error) {
	reqBody := CalculateRequest{
		Date:         date.Format(time.RFC3339),
		Latitude:     latitude,
		Longitude:    longitude,
		Objects:      []string{"moon", "sun"},
		Calculations: []string{"rise_set", "position", "phase"},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Operation: "calculate request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result CalculateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &result, nil
}
