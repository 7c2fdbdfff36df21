package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/i474232898/travel-planner/internal/trip"
	"github.com/sony/gobreaker"
)

const defaultGeoNamesURL = "http://api.geonames.org/searchJSON"

// GeoNamesClient implements the trip.Geocoder interface for the GeoNames
// search API.
type GeoNamesClient struct {
	name     string
	username string
	baseURL  string
	client   *http.Client
	circuit  *gobreaker.CircuitBreaker
}

// NewGeoNamesClient builds a GeoNames client. An empty baseURL selects the
// public endpoint; tests point it at a stub server.
func NewGeoNamesClient(client *http.Client, username, baseURL string) *GeoNamesClient {
	if baseURL == "" {
		baseURL = defaultGeoNamesURL
	}
	return &GeoNamesClient{
		name:     "geonames",
		username: username,
		baseURL:  baseURL,
		client:   client,
		circuit:  newBreaker("geonames"),
	}
}

func (c *GeoNamesClient) Name() string {
	return c.name
}

// Search looks up a place name and returns the matches, at most one.
// The maxRows=1 limit is part of the upstream contract: only the first
// match is ever consumed.
func (c *GeoNamesClient) Search(ctx context.Context, query string) ([]trip.LocationInfo, error) {
	if c.username == "" {
		return nil, fmt.Errorf("geonames username is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("q", query)
		values.Set("maxRows", "1")
		values.Set("username", c.username)

		u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, c.client, c.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Geonames []trip.LocationInfo `json:"geonames"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return payload.Geonames, nil
}

// Ping issues a minimal search so the watchdog can observe reachability.
func (c *GeoNamesClient) Ping(ctx context.Context) error {
	_, err := c.Search(ctx, "London")
	return err
}
