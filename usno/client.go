// Package usno provides a client for the US Naval Observatory one-day
// rise/set API.
package usno

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client represents a client for the USNO rstt/oneday API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new client for the USNO rise/set API.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: "https://api.usno.navy.mil/rstt/oneday",
	}
}

// NewClientWithHTTPClient creates a new client with a custom HTTP client.
func NewClientWithHTTPClient(httpClient *http.Client) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    "https://api.usno.navy.mil/rstt/oneday",
	}
}

// SetBaseURL sets the base URL for the API (useful for testing).
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// OneDay retrieves sun and moon rise/set phenomena for the given date and
// coordinates.
func (c *Client) OneDay(ctx context.Context, date time.Time, latitude, longitude float64) (*OneDayResponse, error) {
	reqURL, err := c.buildURL(date, latitude, longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to build URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Operation: "oneday request", Err: err}
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

	var oneDay OneDayResponse
	if err := json.Unmarshal(body, &oneDay); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &oneDay, nil
}

// buildURL constructs the API URL with date and "lat,lon" query parameters.
func (c *Client) buildURL(date time.Time, latitude, longitude float64) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}

	query := u.Query()
	query.Set("date", date.Format("2006-01-02"))
	query.Set("coords", formatFloat(latitude)+","+formatFloat(longitude))
	u.RawQuery = query.Encode()

	return u.String(), nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
