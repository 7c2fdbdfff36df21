package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/travel-planner/internal/trip"
	"github.com/i474232898/travel-planner/internal/trip/providers"
)

// stubProviders spins up fake GeoNames/Weatherbit/Pixabay servers and wires
// real provider clients against them.
type stubProviders struct {
	geonames   string
	weatherbit string
	pixabay    string
}

func newStubApp(t *testing.T, stubs stubProviders, policies trip.Policies) *fiber.App {
	t.Helper()

	geoSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, stubs.geonames)
	}))
	t.Cleanup(geoSrv.Close)

	wbSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, stubs.weatherbit)
	}))
	t.Cleanup(wbSrv.Close)

	pixSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, stubs.pixabay)
	}))
	t.Cleanup(pixSrv.Close)

	httpClient := http.DefaultClient
	pipeline := trip.NewPipeline(
		providers.NewGeoNamesClient(httpClient, "demo", geoSrv.URL),
		providers.NewWeatherbitClient(httpClient, "secret", wbSrv.URL),
		providers.NewPixabayClient(httpClient, "secret", pixSrv.URL),
		policies,
	)

	app := fiber.New()
	RegisterRoutes(app, pipeline)
	return app
}

func defaultStubs() stubProviders {
	return stubProviders{
		geonames:   `{"geonames":[{"name":"Paris","countryName":"France","lat":"48.85341","lng":"2.3488"}]}`,
		weatherbit: `{"data":[{"valid_date":"2026-02-24","min_temp":2,"max_temp":8,"weather":{"description":"Light rain"}}]}`,
		pixabay:    `{"hits":[{"webformatURL":"https://img.example/paris.jpg"}]}`,
	}
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return resp
}

func TestAddTripSuccess(t *testing.T) {
	app := newStubApp(t, defaultStubs(), trip.DefaultPolicies())

	resp := postJSON(t, app, "/addTrip",
		`{"destination":"Paris","startDate":"2026-02-24","endDate":"2026-02-26"}`)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Message      string             `json:"message"`
		LocationInfo *trip.LocationInfo `json:"locationInfo"`
		Weather      *json.RawMessage   `json:"weather"`
		Image        *string            `json:"image"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if body.Message != "Trip added successfully" {
		t.Fatalf("message = %q", body.Message)
	}
	if body.LocationInfo == nil || body.LocationInfo.Name != "Paris" {
		t.Fatalf("locationInfo = %+v", body.LocationInfo)
	}
	if body.Image == nil || *body.Image != "https://img.example/paris.jpg" {
		t.Fatalf("image = %v", body.Image)
	}
}

func TestAddTripGeocodeEmptyIs500(t *testing.T) {
	stubs := defaultStubs()
	stubs.geonames = `{"geonames":[]}`
	app := newStubApp(t, stubs, trip.DefaultPolicies())

	resp := postJSON(t, app, "/addTrip",
		`{"destination":"Nowhereville","startDate":"2026-02-24","endDate":"2026-02-26"}`)

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Message != "Failed to add trip" {
		t.Fatalf("message = %q, want the generic failure", body.Message)
	}
}

func TestAddTripWeatherFailureStill200(t *testing.T) {
	stubs := defaultStubs()
	stubs.weatherbit = `not json`
	app := newStubApp(t, stubs, trip.DefaultPolicies())

	resp := postJSON(t, app, "/addTrip",
		`{"destination":"Paris","startDate":"2026-02-24","endDate":"2026-02-26"}`)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 despite weather failure", resp.StatusCode)
	}

	var body struct {
		Weather *json.RawMessage `json:"weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Weather != nil && string(*body.Weather) != "null" {
		t.Fatalf("weather = %s, want null", *body.Weather)
	}
}

func TestAddTripImageEmptyIs500ByDefault(t *testing.T) {
	stubs := defaultStubs()
	stubs.pixabay = `{"hits":[]}`
	app := newStubApp(t, stubs, trip.DefaultPolicies())

	resp := postJSON(t, app, "/addTrip",
		`{"destination":"Paris","startDate":"2026-02-24","endDate":"2026-02-26"}`)

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 under the required image policy", resp.StatusCode)
	}
}

func TestAddTripImageOptionalPolicy200(t *testing.T) {
	stubs := defaultStubs()
	stubs.pixabay = `{"hits":[]}`

	policies := trip.DefaultPolicies()
	policies.Image = trip.PolicyOptional
	app := newStubApp(t, stubs, policies)

	resp := postJSON(t, app, "/addTrip",
		`{"destination":"Paris","startDate":"2026-02-24","endDate":"2026-02-26"}`)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 under the optional image policy", resp.StatusCode)
	}
}

func TestAddTripMissingFieldsIs400(t *testing.T) {
	app := newStubApp(t, defaultStubs(), trip.DefaultPolicies())

	resp := postJSON(t, app, "/addTrip", `{"destination":"Paris"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	resp = postJSON(t, app, "/addTrip",
		`{"destination":"Paris","startDate":"24/02/2026","endDate":"2026-02-26"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for a malformed date", resp.StatusCode)
	}
}

func TestForecastReturnsMatchingDay(t *testing.T) {
	app := newStubApp(t, defaultStubs(), trip.DefaultPolicies())

	resp := postJSON(t, app, "/forecast",
		`{"destination":"Paris","date":"2026-02-24"}`)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var day struct {
		ValidDate string `json:"valid_date"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&day); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if day.ValidDate != "2026-02-24" {
		t.Fatalf("valid_date = %q", day.ValidDate)
	}
}

func TestForecastProviderFailureIs500(t *testing.T) {
	stubs := defaultStubs()
	stubs.weatherbit = `not json`
	app := newStubApp(t, stubs, trip.DefaultPolicies())

	resp := postJSON(t, app, "/forecast",
		`{"destination":"Paris","date":"2026-02-24"}`)

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}

	msg, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if string(msg) != "Error fetching weather forecast" {
		t.Fatalf("body = %q", msg)
	}
}

func TestForecastNoMatchingDayIsNull(t *testing.T) {
	app := newStubApp(t, defaultStubs(), trip.DefaultPolicies())

	resp := postJSON(t, app, "/forecast",
		`{"destination":"Paris","date":"2030-01-01"}`)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if string(bytes.TrimSpace(body)) != "null" {
		t.Fatalf("body = %q, want null", body)
	}
}
