package trip

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// ErrNoResults is returned when a provider answers successfully but with an
// empty result set.
var ErrNoResults = errors.New("provider returned no results")

// Geocoder abstracts the geocoding provider (GeoNames).
type Geocoder interface {
	Name() string
	Search(ctx context.Context, query string) ([]LocationInfo, error)
}

// ForecastProvider abstracts the daily-forecast provider (Weatherbit).
type ForecastProvider interface {
	Name() string
	DailyForecast(ctx context.Context, lat, lng string) ([]ForecastDay, error)
}

// ImageSearcher abstracts the stock-photo provider (Pixabay).
type ImageSearcher interface {
	Name() string
	SearchImages(ctx context.Context, query string) ([]ImageHit, error)
}

// StepPolicy controls how a pipeline step's failure is handled.
type StepPolicy string

const (
	// PolicyRequired aborts the whole enrichment when the step fails.
	PolicyRequired StepPolicy = "required"
	// PolicyOptional degrades the step's output to nil and continues.
	PolicyOptional StepPolicy = "optional"
)

// Policies assigns a failure policy to each pipeline step. Geocoding is the
// anchor of the pipeline and is always treated as required regardless of the
// table; the field exists so the asymmetry is visible in one place.
type Policies struct {
	Geocode StepPolicy
	Weather StepPolicy
	Image   StepPolicy
}

// DefaultPolicies mirrors the historical behavior: weather degrades
// gracefully, a missing image aborts the request.
func DefaultPolicies() Policies {
	return Policies{
		Geocode: PolicyRequired,
		Weather: PolicyOptional,
		Image:   PolicyRequired,
	}
}

// Pipeline enriches a trip request by querying the three providers in order:
// geocode, weather, image, then merging the results. Calls are strictly
// sequential; there is no internal parallelism and no retry.
type Pipeline struct {
	geocoder  Geocoder
	forecasts ForecastProvider
	images    ImageSearcher
	policies  Policies
}

// NewPipeline wires the three provider clients into a Pipeline.
func NewPipeline(geocoder Geocoder, forecasts ForecastProvider, images ImageSearcher, policies Policies) *Pipeline {
	return &Pipeline{
		geocoder:  geocoder,
		forecasts: forecasts,
		images:    images,
		policies:  policies,
	}
}

// Enrich runs the full enrichment for a destination and date range.
// startDate and endDate must be midnight-UTC day values.
func (p *Pipeline) Enrich(ctx context.Context, destination string, startDate, endDate time.Time) (EnrichedTrip, error) {
	reqID := uuid.NewString()

	locs, err := p.geocoder.Search(ctx, destination)
	if err != nil {
		return EnrichedTrip{}, fmt.Errorf("geocode %q: %w", destination, err)
	}
	if len(locs) == 0 {
		return EnrichedTrip{}, fmt.Errorf("geocode %q: %w", destination, ErrNoResults)
	}
	loc := locs[0]

	var weather *WeatherSummary
	days, err := p.forecasts.DailyForecast(ctx, loc.Lat, loc.Lng)
	if err != nil {
		if p.policies.Weather == PolicyRequired {
			return EnrichedTrip{}, fmt.Errorf("forecast for %q: %w", destination, err)
		}
		// Weather is nice to have; keep going without it.
		log.Printf("enrich %s: %s failed for %q, continuing without weather: %v",
			reqID, p.forecasts.Name(), destination, err)
	} else {
		summary := SummarizeForecast(days, startDate, endDate)
		weather = &summary
	}

	var image *string
	hits, err := p.images.SearchImages(ctx, destination)
	if err == nil && len(hits) == 0 {
		err = ErrNoResults
	}
	if err != nil {
		if p.policies.Image == PolicyRequired {
			return EnrichedTrip{}, fmt.Errorf("image for %q: %w", destination, err)
		}
		log.Printf("enrich %s: %s failed for %q, continuing without image: %v",
			reqID, p.images.Name(), destination, err)
	} else {
		image = &hits[0].WebformatURL
	}

	return EnrichedTrip{
		Message:      "Trip added successfully",
		LocationInfo: loc,
		Weather:      weather,
		Image:        image,
	}, nil
}

// DayForecast returns the raw provider record for a single forecast day.
// A geocoding failure degrades to the 0,0 coordinate rather than aborting;
// a forecast-provider failure is an error. When no day matches the requested
// date the result is nil.
func (p *Pipeline) DayForecast(ctx context.Context, destination, date string) ([]byte, error) {
	lat, lng := "0", "0"

	locs, err := p.geocoder.Search(ctx, destination)
	switch {
	case err != nil:
		log.Printf("day forecast: geocode %q failed, falling back to 0,0: %v", destination, err)
	case len(locs) == 0:
		log.Printf("day forecast: geocode %q returned no results, falling back to 0,0", destination)
	default:
		lat, lng = locs[0].Lat, locs[0].Lng
	}

	days, err := p.forecasts.DailyForecast(ctx, lat, lng)
	if err != nil {
		return nil, fmt.Errorf("forecast for %q: %w", destination, err)
	}

	for _, day := range days {
		if day.ValidDate == date {
			return day.Raw, nil
		}
	}
	return nil, nil
}
