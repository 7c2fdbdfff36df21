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

const defaultPixabayURL = "https://pixabay.com/api/"

// PixabayClient implements the trip.ImageSearcher interface for the Pixabay
// image search API.
type PixabayClient struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewPixabayClient builds a Pixabay client. An empty baseURL selects the
// public endpoint; tests point it at a stub server.
func NewPixabayClient(client *http.Client, apiKey, baseURL string) *PixabayClient {
	if baseURL == "" {
		baseURL = defaultPixabayURL
	}
	return &PixabayClient{
		name:    "pixabay",
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
		circuit: newBreaker("pixabay"),
	}
}

func (c *PixabayClient) Name() string {
	return c.name
}

// SearchImages returns place photos matching the raw destination string.
// The search is pinned to photos in the "places" category.
func (c *PixabayClient) SearchImages(ctx context.Context, query string) ([]trip.ImageHit, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("pixabay api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("key", c.apiKey)
		values.Set("q", query)
		values.Set("image_type", "photo")
		values.Set("category", "places")

		u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, c.client, c.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Hits []trip.ImageHit `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return payload.Hits, nil
}

// Ping issues a minimal search so the watchdog can observe reachability.
func (c *PixabayClient) Ping(ctx context.Context) error {
	_, err := c.SearchImages(ctx, "city")
	return err
}
