package geoclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"sport_events/internal/models"
)

// ErrNotFound is returned when the geolocation service answers 404 for an id.
// Transport and server failures are returned as distinct errors so callers can
// tell "does not exist" from "could not ask".
var ErrNotFound = errors.New("geolocation: resource not found")

// Client talks to the external geolocation service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the geolocation service at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// GetLocationByID fetches a point location by id.
func (c *Client) GetLocationByID(ctx context.Context, id uint) (*models.Location, error) {
	var location models.Location
	if err := c.get(ctx, fmt.Sprintf("%s/api/locations/%d", c.baseURL, id), &location); err != nil {
		return nil, err
	}
	return &location, nil
}

// GetRouteByID fetches a route by id.
func (c *Client) GetRouteByID(ctx context.Context, id uint) (*models.Route, error) {
	var route models.Route
	if err := c.get(ctx, fmt.Sprintf("%s/api/routes/%d", c.baseURL, id), &route); err != nil {
		return nil, err
	}
	return &route, nil
}

func (c *Client) get(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("geolocation: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("geolocation: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("geolocation: unexpected status %d from %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("geolocation: decode response: %w", err)
	}
	return nil
}
