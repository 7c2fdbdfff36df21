package trip

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// SummarizeForecast reduces a multi-day forecast to the averaged summary for
// the trip's date range. Only days whose valid_date falls inside
// [start, end] inclusive contribute; temperatures are the rounded arithmetic
// mean and the description comes from the first matching day. With zero
// matching days both temperatures are N/A and the description is the fixed
// placeholder.
func SummarizeForecast(days []ForecastDay, start, end time.Time) WeatherSummary {
	var (
		sumMin, sumMax float64
		n              int
		description    string
	)

	for _, day := range days {
		d, err := time.Parse(dateLayout, day.ValidDate)
		if err != nil {
			continue
		}
		if d.Before(start) || d.After(end) {
			continue
		}
		if n == 0 {
			description = day.Weather.Description
		}
		sumMin += day.MinTemp
		sumMax += day.MaxTemp
		n++
	}

	if n == 0 {
		return WeatherSummary{Description: NoForecastDescription}
	}

	return WeatherSummary{
		AvgMinTemp:  Temperature{Valid: true, Celsius: int(math.Round(sumMin / float64(n)))},
		AvgMaxTemp:  Temperature{Valid: true, Celsius: int(math.Round(sumMax / float64(n)))},
		Description: description,
	}
}
