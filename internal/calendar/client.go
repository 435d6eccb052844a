package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/stylecrate/outfit-service/internal/domain"
)

// Client fetches the optional OccasionContext (day's events and planned
// activity level). It is an optional collaborator: callers treat any error as
// a degraded-context warning and continue with an empty context.
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

// Fetch today's occasion context for a user.
func (c *Client) Fetch(ctx context.Context, userID int64) (domain.OccasionContext, error) {
	url := fmt.Sprintf("%s?user_id=%d", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.OccasionContext{}, fmt.Errorf("build calendar request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.OccasionContext{}, fmt.Errorf("fetch calendar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.OccasionContext{}, fmt.Errorf("calendar provider returned %d", resp.StatusCode)
	}

	var occ domain.OccasionContext
	if err := json.NewDecoder(resp.Body).Decode(&occ); err != nil {
		return domain.OccasionContext{}, fmt.Errorf("decode calendar response: %w", err)
	}

	return occ, nil
}
