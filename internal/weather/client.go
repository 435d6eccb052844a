package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/stylecrate/outfit-service/internal/domain"
)

// Client fetches the current WeatherContext from the configured provider.
// Weather is a required input: any failure here is surfaced as
// ErrWeatherUnavailable so the handler can map it to 503.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// Fetch the weather snapshot for a user's location.
func (c *Client) Fetch(ctx context.Context, userID int64) (domain.WeatherContext, error) {
	url := fmt.Sprintf("%s?user_id=%d", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.WeatherContext{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.WeatherContext{}, fmt.Errorf("%w: %v", domain.ErrWeatherUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.WeatherContext{}, fmt.Errorf("%w: provider returned %d", domain.ErrWeatherUnavailable, resp.StatusCode)
	}

	var w domain.WeatherContext
	if err := json.NewDecoder(resp.Body).Decode(&w); err != nil {
		return domain.WeatherContext{}, fmt.Errorf("%w: decode response: %v", domain.ErrWeatherUnavailable, err)
	}

	return w, nil
}
