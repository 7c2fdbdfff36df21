package trip

import (
	"encoding/json"
	"fmt"
)

// NoForecastDescription is reported when no forecast day falls inside the
// requested date range.
const NoForecastDescription = "No forecast available"

// Request is the payload of a trip enrichment request.
// Dates use the "2006-01-02" form.
type Request struct {
	Destination string `json:"destination" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate" validate:"required"`
}

// LocationInfo is the first GeoNames match for a destination.
// Lat/Lng are kept as strings exactly as GeoNames returns them; they are
// passed through unmodified to the forecast provider.
type LocationInfo struct {
	GeonameID   int64  `json:"geonameId,omitempty"`
	Name        string `json:"name"`
	CountryName string `json:"countryName"`
	CountryCode string `json:"countryCode,omitempty"`
	Lat         string `json:"lat"`
	Lng         string `json:"lng"`
	Population  int64  `json:"population,omitempty"`
}

// Temperature is a Celsius value that may be absent. It marshals to a JSON
// number when valid and to the string "N/A" otherwise, matching the wire
// format the renderer expects.
type Temperature struct {
	Valid   bool
	Celsius int
}

func (t Temperature) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return json.Marshal("N/A")
	}
	return json.Marshal(t.Celsius)
}

func (t *Temperature) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		t.Valid = true
		t.Celsius = n
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s != "N/A" {
		return fmt.Errorf("temperature: unexpected value %q", s)
	}
	*t = Temperature{}
	return nil
}

// String renders the value the way trip cards display it.
func (t Temperature) String() string {
	if !t.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%d", t.Celsius)
}

// WeatherSummary is the averaged forecast over the trip's date range.
type WeatherSummary struct {
	AvgMinTemp  Temperature `json:"avgMinTemp"`
	AvgMaxTemp  Temperature `json:"avgMaxTemp"`
	Description string      `json:"description"`
}

// ForecastDay is one daily record from the forecast provider. Raw preserves
// the full provider payload so /forecast can forward it untouched.
type ForecastDay struct {
	ValidDate string  `json:"valid_date"`
	MinTemp   float64 `json:"min_temp"`
	MaxTemp   float64 `json:"max_temp"`
	Weather   struct {
		Description string `json:"description"`
	} `json:"weather"`

	Raw json.RawMessage `json:"-"`
}

func (d *ForecastDay) UnmarshalJSON(b []byte) error {
	type alias ForecastDay
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*d = ForecastDay(a)
	d.Raw = append(json.RawMessage(nil), b...)
	return nil
}

// ImageHit is one result from the image provider.
type ImageHit struct {
	ID            int64  `json:"id,omitempty"`
	PageURL       string `json:"pageURL,omitempty"`
	Tags          string `json:"tags,omitempty"`
	WebformatURL  string `json:"webformatURL"`
	LargeImageURL string `json:"largeImageURL,omitempty"`
	User          string `json:"user,omitempty"`
}

// EnrichedTrip is the merged pipeline result returned to the client.
// Weather and Image are nil when their optional steps failed or were empty.
type EnrichedTrip struct {
	Message      string          `json:"message"`
	LocationInfo LocationInfo    `json:"locationInfo"`
	Weather      *WeatherSummary `json:"weather"`
	Image        *string         `json:"image"`
}

// Record is a persisted trip. ID is assigned by the trip store at persistence
// time from the wall clock; it is unique within a single store's collection.
type Record struct {
	ID           int64           `json:"id"`
	Destination  string          `json:"destination"`
	StartDate    string          `json:"startDate"`
	EndDate      string          `json:"endDate"`
	LocationInfo LocationInfo    `json:"locationInfo"`
	Weather      *WeatherSummary `json:"weather"`
	Image        *string         `json:"image"`
}
