package client

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/i474232898/travel-planner/internal/trip"
)

// cardDateLayout renders dates the way trip cards show them: "24 Feb, 2024".
const cardDateLayout = "2 Jan, 2006"

// RenderCard produces the text card for one persisted trip: destination,
// formatted dates, whole-day duration, average temperature range, and the
// forecast description, with fallbacks when weather is absent.
func RenderCard(rec trip.Record) string {
	minTemp, maxTemp := "N/A", "N/A"
	description := trip.NoForecastDescription
	if rec.Weather != nil {
		minTemp = rec.Weather.AvgMinTemp.String()
		maxTemp = rec.Weather.AvgMaxTemp.String()
		if rec.Weather.Description != "" {
			description = rec.Weather.Description
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "DESTINATION  %s, %s\n", rec.LocationInfo.Name, rec.LocationInfo.CountryName)
	fmt.Fprintf(&b, "START DATE   %s\n", formatCardDate(rec.StartDate))
	fmt.Fprintf(&b, "END DATE     %s\n", formatCardDate(rec.EndDate))
	fmt.Fprintf(&b, "DURATION     %d days\n", TripDurationDays(rec.StartDate, rec.EndDate))
	fmt.Fprintf(&b, "AVG TEMP     Min: %s°C, Max: %s°C\n", minTemp, maxTemp)
	fmt.Fprintf(&b, "FORECAST     %s\n", description)
	if rec.Image != nil {
		fmt.Fprintf(&b, "IMAGE        %s\n", *rec.Image)
	}
	fmt.Fprintf(&b, "ID           %d\n", rec.ID)
	return b.String()
}

// RenderAll reloads every persisted trip from the store and renders a card
// for each, reconstructing the visible list after a restart.
func RenderAll(s *TripStore) ([]string, error) {
	trips, err := s.List()
	if err != nil {
		return nil, err
	}

	cards := make([]string, 0, len(trips))
	for _, t := range trips {
		cards = append(cards, RenderCard(t))
	}
	return cards, nil
}

// TripDurationDays is the trip length in whole days: the ceiling of the
// difference between the two dates.
func TripDurationDays(startDate, endDate string) int {
	start, err := time.ParseInLocation(dateLayout, startDate, time.UTC)
	if err != nil {
		return 0
	}
	end, err := time.ParseInLocation(dateLayout, endDate, time.UTC)
	if err != nil {
		return 0
	}
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// formatCardDate reformats a "2006-01-02" date for display, falling back to
// the raw string when it does not parse.
func formatCardDate(date string) string {
	d, err := time.ParseInLocation(dateLayout, date, time.UTC)
	if err != nil {
		return date
	}
	return d.Format(cardDateLayout)
}
