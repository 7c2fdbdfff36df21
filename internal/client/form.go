// Package client holds the user-facing half of the travel planner: the trip
// form validator, the locally persisted trip store, the card renderer, and
// the HTTP client for the enrichment API.
package client

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// FormErrors reports per-field validation messages for the add-trip form.
// Empty strings mean the field passed; HasError is true iff any check fired.
type FormErrors struct {
	City      string
	StartDate string
	EndDate   string
	HasError  bool
}

// ValidateTripForm checks the add-trip form input. It is a pure function
// returning a fresh result per call, and all four checks run on every call:
// an end-date error never suppresses a start-date error or vice versa.
func ValidateTripForm(city, startDate, endDate string) FormErrors {
	return validateTripFormAt(city, startDate, endDate, time.Now().UTC())
}

// validateTripFormAt is the clock-injected core of ValidateTripForm.
func validateTripFormAt(city, startDate, endDate string, now time.Time) FormErrors {
	var errs FormErrors

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if strings.TrimSpace(city) == "" {
		errs.City = "Destination City is required"
		errs.HasError = true
	}

	if startDate == "" {
		errs.StartDate = "Trip Start Date is required"
		errs.HasError = true
	}

	if endDate == "" {
		errs.EndDate = "Trip End Date is required"
		errs.HasError = true
	}

	if startDate != "" && endDate != "" {
		start, startErr := time.ParseInLocation(dateLayout, startDate, time.UTC)
		end, endErr := time.ParseInLocation(dateLayout, endDate, time.UTC)

		if startErr != nil {
			errs.StartDate = "Trip Start Date is not a valid date"
			errs.HasError = true
		}
		if endErr != nil {
			errs.EndDate = "Trip End Date is not a valid date"
			errs.HasError = true
		}

		if startErr == nil && endErr == nil {
			if start.Before(today) {
				errs.StartDate = "Trip Start Date should be a future date"
				errs.HasError = true
			}
			if end.Before(start) {
				errs.EndDate = "Trip End Date should not be before the Trip Start Date"
				errs.HasError = true
			}
		}
	}

	return errs
}
