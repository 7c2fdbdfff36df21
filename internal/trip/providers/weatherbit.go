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

const defaultWeatherbitURL = "https://api.weatherbit.io/v2.0/forecast/daily"

// WeatherbitClient implements the trip.ForecastProvider interface for the
// Weatherbit 16-day daily forecast API.
type WeatherbitClient struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewWeatherbitClient builds a Weatherbit client. An empty baseURL selects
// the public endpoint; tests point it at a stub server.
func NewWeatherbitClient(client *http.Client, apiKey, baseURL string) *WeatherbitClient {
	if baseURL == "" {
		baseURL = defaultWeatherbitURL
	}
	return &WeatherbitClient{
		name:    "weatherbit",
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
		circuit: newBreaker("weatherbit"),
	}
}

func (c *WeatherbitClient) Name() string {
	return c.name
}

// DailyForecast fetches the multi-day forecast for a coordinate pair.
// Lat/lng arrive as the strings GeoNames produced and are passed through
// unmodified.
func (c *WeatherbitClient) DailyForecast(ctx context.Context, lat, lng string) ([]trip.ForecastDay, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("weatherbit api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("lat", lat)
		values.Set("lon", lng)
		values.Set("key", c.apiKey)

		u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, c.client, c.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Data []trip.ForecastDay `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return payload.Data, nil
}

// Ping issues a minimal forecast request so the watchdog can observe
// reachability.
func (c *WeatherbitClient) Ping(ctx context.Context) error {
	_, err := c.DailyForecast(ctx, "0", "0")
	return err
}
