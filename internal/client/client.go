package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/i474232898/travel-planner/internal/trip"
)

// APIClient talks to the travel planner server.
type APIClient struct {
	baseURL string
	client  *http.Client
}

// NewAPIClient creates an APIClient for the server at baseURL
// (e.g. "http://localhost:8080").
func NewAPIClient(baseURL string, client *http.Client) *APIClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &APIClient{baseURL: baseURL, client: client}
}

// AddTrip submits the trip for enrichment and returns the merged record.
func (c *APIClient) AddTrip(ctx context.Context, destination, startDate, endDate string) (trip.EnrichedTrip, error) {
	body := trip.Request{
		Destination: destination,
		StartDate:   startDate,
		EndDate:     endDate,
	}

	var enriched trip.EnrichedTrip
	if err := c.post(ctx, "/addTrip", body, &enriched); err != nil {
		return trip.EnrichedTrip{}, err
	}
	return enriched, nil
}

// Forecast returns the raw forecast record for a single day at the
// destination, or nil when the server found no matching day.
func (c *APIClient) Forecast(ctx context.Context, destination, date string) (json.RawMessage, error) {
	body := map[string]string{"destination": destination, "date": date}

	var raw json.RawMessage
	if err := c.post(ctx, "/forecast", body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *APIClient) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: server responded %d: %s", path, resp.StatusCode, bytes.TrimSpace(msg))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
