package openmeteo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
)

// API Docs: https://open-meteo.com/en/docs/elevation-api
// Sample request: https://api.open-meteo.com/v1/elevation?latitude=45.0641&longitude=6.4078
const (
	baseElevationURL = "https://api.open-meteo.com/v1/elevation"
	defaultTimeout   = 10 * time.Second
)

type ElevationClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewElevationClient() *ElevationClient {
	return NewElevationClientWithBaseURL(baseElevationURL, &http.Client{Timeout: defaultTimeout})
}

// NewElevationClientWithBaseURL creates a client against a custom endpoint.
// This is useful for testing with httptest servers.
func NewElevationClientWithBaseURL(baseURL string, httpClient *http.Client) *ElevationClient {
	return &ElevationClient{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// GetElevation fetches the digital elevation model height in meters at the given coordinate
func (c *ElevationClient) GetElevation(ctx context.Context, latitude, longitude float64) (*ElevationAPIResponse, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	// Parse the JSON response
	var apiResp ElevationAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
